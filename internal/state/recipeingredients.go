package state

import (
	"context"
	"slices"

	"github.com/hearthapp/hearth/internal/api"
)

// FetchRecipeIngredients replaces the link collection with the server's list.
func (s *Store) FetchRecipeIngredients(ctx context.Context) error {
	s.mu.Lock()
	s.recipeIngredients.begin()
	s.mu.Unlock()
	s.persist()

	items, err := s.client.FetchRecipeIngredients(ctx)

	s.mu.Lock()
	if err != nil {
		s.recipeIngredients.reject(err)
	} else {
		s.recipeIngredients.fulfill(slices.Clone(items))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// CreateRecipeIngredient submits a new link and appends the server's
// representation.
func (s *Store) CreateRecipeIngredient(ctx context.Context, ri api.RecipeIngredient) (api.RecipeIngredient, error) {
	s.mu.Lock()
	s.recipeIngredients.begin()
	s.mu.Unlock()
	s.persist()

	created, err := s.client.CreateRecipeIngredient(ctx, ri)

	s.mu.Lock()
	if err != nil {
		s.recipeIngredients.reject(err)
	} else {
		s.recipeIngredients.fulfill(append(slices.Clone(s.recipeIngredients.Items), created))
	}
	s.mu.Unlock()
	s.persist()
	return created, err
}

// UpdateRecipeIngredient replaces the matching link with the server's
// representation.
func (s *Store) UpdateRecipeIngredient(ctx context.Context, id api.ID, ri api.RecipeIngredient) (api.RecipeIngredient, error) {
	s.mu.Lock()
	s.recipeIngredients.begin()
	s.mu.Unlock()
	s.persist()

	updated, err := s.client.UpdateRecipeIngredient(ctx, id, ri)

	s.mu.Lock()
	if err != nil {
		s.recipeIngredients.reject(err)
	} else {
		s.recipeIngredients.fulfill(replaceMatch(s.recipeIngredients.Items, updated.ID, linkID, updated))
	}
	s.mu.Unlock()
	s.persist()
	return updated, err
}

// DeleteRecipeIngredient removes the link from the server and the collection.
func (s *Store) DeleteRecipeIngredient(ctx context.Context, id api.ID) error {
	s.mu.Lock()
	s.recipeIngredients.begin()
	s.mu.Unlock()
	s.persist()

	err := s.client.DeleteRecipeIngredient(ctx, id)

	s.mu.Lock()
	if err != nil {
		s.recipeIngredients.reject(err)
	} else {
		s.recipeIngredients.fulfill(removeMatch(s.recipeIngredients.Items, id, linkID))
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// DeleteRecipeIngredientsByRecipe removes every link belonging to a recipe,
// one delete call per link. Used when a recipe is deleted, since the server
// does not cascade.
func (s *Store) DeleteRecipeIngredientsByRecipe(ctx context.Context, recipeID api.ID) error {
	s.mu.Lock()
	s.recipeIngredients.begin()
	s.mu.Unlock()
	s.persist()

	links, err := s.client.FetchRecipeIngredientsByRecipe(ctx, recipeID)
	if err == nil {
		for _, link := range links {
			if derr := s.client.DeleteRecipeIngredient(ctx, link.ID); derr != nil {
				err = derr
				break
			}
		}
	}

	s.mu.Lock()
	if err != nil {
		s.recipeIngredients.reject(err)
	} else {
		kept := make([]api.RecipeIngredient, 0, len(s.recipeIngredients.Items))
		for _, link := range s.recipeIngredients.Items {
			if link.Recipe != recipeID {
				kept = append(kept, link)
			}
		}
		s.recipeIngredients.fulfill(kept)
	}
	s.mu.Unlock()
	s.persist()
	return err
}

// RecipeIngredientsFor returns the links belonging to one recipe from the
// in-memory collection, in collection order.
func (s *Store) RecipeIngredientsFor(recipeID api.ID) []api.RecipeIngredient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matched []api.RecipeIngredient
	for _, link := range s.recipeIngredients.Items {
		if link.Recipe == recipeID {
			matched = append(matched, link)
		}
	}
	return slices.Clone(matched)
}

// ClearRecipeIngredientError drops the recorded link error.
func (s *Store) ClearRecipeIngredientError() {
	s.mu.Lock()
	s.recipeIngredients.Err = ""
	s.mu.Unlock()
	s.persist()
}
