package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hearthapp/hearth/internal/cache"
	"github.com/hearthapp/hearth/internal/state"
)

// Bootstrap runs the one-shot startup sequence: seed the store from the
// local cache for instant display, then refresh all five collections from
// the server concurrently. A failed fetch is logged and leaves its seeded
// collection in place; Bootstrap returns only after every fetch has settled.
func Bootstrap(ctx context.Context, lg *slog.Logger, store *state.Store, local *cache.Cache) {
	cols, err := local.Load()
	if err != nil {
		lg.Warn("cache load degraded, starting empty", "error", err)
	}
	store.Seed(cols.Recipes, cols.People, cols.Countries, cols.Ingredients, cols.RecipeIngredients)

	fetches := []struct {
		resource string
		run      func(context.Context) error
	}{
		{"recipes", store.FetchRecipes},
		{"people", store.FetchPeople},
		{"countries", store.FetchCountries},
		{"ingredients", store.FetchIngredients},
		{"recipe-ingredients", store.FetchRecipeIngredients},
	}

	var wg sync.WaitGroup
	for _, f := range fetches {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f.run(ctx); err != nil {
				lg.Error("bootstrap fetch failed", "resource", f.resource, "error", err)
			}
		}()
	}
	wg.Wait()
}
