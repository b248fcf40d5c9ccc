package state

import (
	"context"
	"slices"

	"github.com/hearthapp/hearth/internal/api"
)

// FetchPeople replaces the people collection with the server's list.
func (s *Store) FetchPeople(ctx context.Context) error {
	s.mu.Lock()
	s.people.begin()
	s.mu.Unlock()
	s.persist()

	items, err := s.client.FetchPeople(ctx)

	s.mu.Lock()
	if err != nil {
		s.people.reject(err)
	} else {
		s.people.fulfill(slices.Clone(items))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// CreatePerson submits a new person and appends the server's representation.
func (s *Store) CreatePerson(ctx context.Context, p api.Person) (api.Person, error) {
	s.mu.Lock()
	s.people.begin()
	s.mu.Unlock()
	s.persist()

	created, err := s.client.CreatePerson(ctx, p)

	s.mu.Lock()
	if err != nil {
		s.people.reject(err)
	} else {
		s.people.fulfill(append(slices.Clone(s.people.Items), created))
	}
	s.mu.Unlock()
	s.persist()
	return created, err
}

// UpdatePerson replaces the matching person with the server's representation.
func (s *Store) UpdatePerson(ctx context.Context, id api.ID, p api.Person) (api.Person, error) {
	s.mu.Lock()
	s.people.begin()
	s.mu.Unlock()
	s.persist()

	updated, err := s.client.UpdatePerson(ctx, id, p)

	s.mu.Lock()
	if err != nil {
		s.people.reject(err)
	} else {
		s.people.fulfill(replaceMatch(s.people.Items, updated.ID, personID, updated))
	}
	s.mu.Unlock()
	s.persist()
	return updated, err
}

// DeletePerson removes the person from the server and the collection.
func (s *Store) DeletePerson(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	s.people.begin()
	s.mu.Unlock()
	s.persist()

	err := s.client.DeletePerson(ctx, id)

	s.mu.Lock()
	if err != nil {
		s.people.reject(err)
	} else {
		s.people.fulfill(removeMatch(s.people.Items, id, personID))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// ClearPersonError drops the recorded people error.
func (s *Store) ClearPersonError() {
	s.mu.Lock()
	s.people.Err = ""
	s.mu.Unlock()
	s.persist()
}
