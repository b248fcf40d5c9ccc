package state

import (
	"context"
	"slices"

	"github.com/hearthapp/hearth/internal/api"
)

// FetchCountries replaces the country collection with the server's list.
func (s *Store) FetchCountries(ctx context.Context) error {
	s.mu.Lock()
	s.countries.begin()
	s.mu.Unlock()
	s.persist()

	items, err := s.client.FetchCountries(ctx)

	s.mu.Lock()
	if err != nil {
		s.countries.reject(err)
	} else {
		s.countries.fulfill(slices.Clone(items))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// CreateCountry submits a new country and appends the server's
// representation. Countries are create-only; the store deliberately has no
// update or delete operation for them.
func (s *Store) CreateCountry(ctx context.Context, c api.Country) (api.Country, error) {
	s.mu.Lock()
	s.countries.begin()
	s.mu.Unlock()
	s.persist()

	created, err := s.client.CreateCountry(ctx, c)

	s.mu.Lock()
	if err != nil {
		s.countries.reject(err)
	} else {
		s.countries.fulfill(append(slices.Clone(s.countries.Items), created))
	}
	s.mu.Unlock()
	s.persist()
	return created, err
}

// ClearCountryError drops the recorded country error.
func (s *Store) ClearCountryError() {
	s.mu.Lock()
	s.countries.Err = ""
	s.mu.Unlock()
	s.persist()
}
