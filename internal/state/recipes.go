package state

import (
	"context"
	"slices"

	"github.com/hearthapp/hearth/internal/api"
)

// FetchRecipes replaces the recipe collection with the server's list. On
// failure the items are left untouched and the error is recorded.
func (s *Store) FetchRecipes(ctx context.Context) error {
	s.mu.Lock()
	s.recipes.begin()
	s.mu.Unlock()
	s.persist()

	items, err := s.client.FetchRecipes(ctx)

	s.mu.Lock()
	if err != nil {
		s.recipes.reject(err)
	} else {
		s.recipes.fulfill(slices.Clone(items))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// CreateRecipe submits a new recipe and appends the server's representation.
func (s *Store) CreateRecipe(ctx context.Context, r api.Recipe) (api.Recipe, error) {
	s.mu.Lock()
	s.recipes.begin()
	s.mu.Unlock()
	s.persist()

	created, err := s.client.CreateRecipe(ctx, r)

	s.mu.Lock()
	if err != nil {
		s.recipes.reject(err)
	} else {
		s.recipes.fulfill(append(slices.Clone(s.recipes.Items), created))
	}
	s.mu.Unlock()
	s.persist()
	return created, err
}

// UpdateRecipe replaces the matching recipe with the server's representation.
func (s *Store) UpdateRecipe(ctx context.Context, id api.ID, r api.Recipe) (api.Recipe, error) {
	s.mu.Lock()
	s.recipes.begin()
	s.mu.Unlock()
	s.persist()

	updated, err := s.client.UpdateRecipe(ctx, id, r)

	s.mu.Lock()
	if err != nil {
		s.recipes.reject(err)
	} else {
		s.recipes.fulfill(replaceMatch(s.recipes.Items, updated.ID, recipeID, updated))
	}
	s.mu.Unlock()
	s.persist()
	return updated, err
}

// DeleteRecipe removes the recipe from the server and the collection.
// Callers are responsible for also removing the recipe's ingredient links via
// DeleteRecipeIngredientsByRecipe; the server does not cascade.
func (s *Store) DeleteRecipe(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	s.recipes.begin()
	s.mu.Unlock()
	s.persist()

	err := s.client.DeleteRecipe(ctx, id)

	s.mu.Lock()
	if err != nil {
		s.recipes.reject(err)
	} else {
		s.recipes.fulfill(removeMatch(s.recipes.Items, id, recipeID))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// MarkRecipeCooked bumps times_cooked by one. The count is read from the
// server and written back as an ordinary update, so concurrent cooks are
// last-write-wins rather than an atomic increment.
func (s *Store) MarkRecipeCooked(ctx context.Context, id api.ID) (api.Recipe, error) {
	s.mu.Lock()
	s.recipes.begin()
	s.mu.Unlock()
	s.persist()

	updated, err := s.incrementTimesCooked(ctx, id)

	s.mu.Lock()
	if err != nil {
		s.recipes.reject(err)
	} else {
		s.recipes.fulfill(replaceMatch(s.recipes.Items, updated.ID, recipeID, updated))
	}
	s.mu.Unlock()
	s.persist()
	return updated, err
}

func (s *Store) incrementTimesCooked(ctx context.Context, id api.ID) (api.Recipe, error) {
	current, err := s.client.FetchRecipe(ctx, id)
	if err != nil {
		return api.Recipe{}, err
	}
	current.TimesCooked++
	return s.client.UpdateRecipe(ctx, id, current)
}

// ClearRecipeError drops the recorded recipe error.
func (s *Store) ClearRecipeError() {
	s.mu.Lock()
	s.recipes.Err = ""
	s.mu.Unlock()
	s.persist()
}
