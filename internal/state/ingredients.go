package state

import (
	"context"
	"slices"

	"github.com/hearthapp/hearth/internal/api"
)

// FetchIngredients replaces the ingredient collection with the server's list.
func (s *Store) FetchIngredients(ctx context.Context) error {
	s.mu.Lock()
	s.ingredients.begin()
	s.mu.Unlock()
	s.persist()

	items, err := s.client.FetchIngredients(ctx)

	s.mu.Lock()
	if err != nil {
		s.ingredients.reject(err)
	} else {
		s.ingredients.fulfill(slices.Clone(items))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// CreateIngredient submits a new ingredient and appends the server's
// representation.
func (s *Store) CreateIngredient(ctx context.Context, i api.Ingredient) (api.Ingredient, error) {
	s.mu.Lock()
	s.ingredients.begin()
	s.mu.Unlock()
	s.persist()

	created, err := s.client.CreateIngredient(ctx, i)

	s.mu.Lock()
	if err != nil {
		s.ingredients.reject(err)
	} else {
		s.ingredients.fulfill(append(slices.Clone(s.ingredients.Items), created))
	}
	s.mu.Unlock()
	s.persist()
	return created, err
}

// UpdateIngredient replaces the matching ingredient with the server's
// representation.
func (s *Store) UpdateIngredient(ctx context.Context, id api.ID, i api.Ingredient) (api.Ingredient, error) {
	s.mu.Lock()
	s.ingredients.begin()
	s.mu.Unlock()
	s.persist()

	updated, err := s.client.UpdateIngredient(ctx, id, i)

	s.mu.Lock()
	if err != nil {
		s.ingredients.reject(err)
	} else {
		s.ingredients.fulfill(replaceMatch(s.ingredients.Items, updated.ID, ingredientID, updated))
	}
	s.mu.Unlock()
	s.persist()
	return updated, err
}

// DeleteIngredient removes the ingredient from the server and the collection.
func (s *Store) DeleteIngredient(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	s.ingredients.begin()
	s.mu.Unlock()
	s.persist()

	err := s.client.DeleteIngredient(ctx, id)

	s.mu.Lock()
	if err != nil {
		s.ingredients.reject(err)
	} else {
		s.ingredients.fulfill(removeMatch(s.ingredients.Items, id, ingredientID))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// ClearIngredientError drops the recorded ingredient error.
func (s *Store) ClearIngredientError() {
	s.mu.Lock()
	s.ingredients.Err = ""
	s.mu.Unlock()
	s.persist()
}
