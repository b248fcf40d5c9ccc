// Package cache persists the last-known resource collections as JSON files,
// one slot per resource, so the client can show stale-but-available data
// before the first remote refresh completes.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/hearthapp/hearth/internal/api"
	"github.com/hearthapp/hearth/internal/state"
)

// Slot names. Each maps to one file in the cache directory.
const (
	SlotRecipes           = "recipes"
	SlotPeople            = "people"
	SlotCountries         = "countries"
	SlotIngredients       = "ingredients"
	SlotRecipeIngredients = "recipe_ingredients"
)

// Collections bundles the deserialized contents of all five slots.
type Collections struct {
	Recipes           []api.Recipe
	People            []api.Person
	Countries         []api.Country
	Ingredients       []api.Ingredient
	RecipeIngredients []api.RecipeIngredient
}

// Cache reads and writes collection snapshots under one directory.
type Cache struct {
	dir string
	log *slog.Logger
}

// New builds a Cache rooted at dir. The logger is used for best-effort write
// failures; nil discards them.
func New(dir string, lg *slog.Logger) *Cache {
	if lg == nil {
		lg = slog.New(slog.DiscardHandler)
	}
	return &Cache{dir: dir, log: lg}
}

// Load reads all five slots in parallel. A missing slot yields an empty
// collection. Any deserialization or read failure degrades the whole load to
// empty collections rather than a partial mix; the returned error reports
// what went wrong and the Collections value is always usable.
func (c *Cache) Load() (Collections, error) {
	var (
		cols Collections
		errs [5]error
		wg   sync.WaitGroup
	)
	wg.Add(5)
	go func() { defer wg.Done(); cols.Recipes, errs[0] = loadSlot[api.Recipe](c.dir, SlotRecipes) }()
	go func() { defer wg.Done(); cols.People, errs[1] = loadSlot[api.Person](c.dir, SlotPeople) }()
	go func() { defer wg.Done(); cols.Countries, errs[2] = loadSlot[api.Country](c.dir, SlotCountries) }()
	go func() { defer wg.Done(); cols.Ingredients, errs[3] = loadSlot[api.Ingredient](c.dir, SlotIngredients) }()
	go func() {
		defer wg.Done()
		cols.RecipeIngredients, errs[4] = loadSlot[api.RecipeIngredient](c.dir, SlotRecipeIngredients)
	}()
	wg.Wait()

	if err := errors.Join(errs[0], errs[1], errs[2], errs[3], errs[4]); err != nil {
		return Collections{}, fmt.Errorf("load cache: %w", err)
	}
	return cols, nil
}

// Save serializes one slot's items to its file, creating the cache directory
// as needed.
func (c *Cache) Save(slot string, items any) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", slot, err)
	}
	if err := os.WriteFile(c.slotPath(slot), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", slot, err)
	}
	return nil
}

// SaveAll mirrors a store snapshot into every slot. Failures are logged and
// swallowed: cache persistence is best-effort and never fails the action
// that triggered it.
func (c *Cache) SaveAll(snap state.Snapshot) {
	c.saveLogged(SlotRecipes, snap.Recipes.Items)
	c.saveLogged(SlotPeople, snap.People.Items)
	c.saveLogged(SlotCountries, snap.Countries.Items)
	c.saveLogged(SlotIngredients, snap.Ingredients.Items)
	c.saveLogged(SlotRecipeIngredients, snap.RecipeIngredients.Items)
}

func (c *Cache) saveLogged(slot string, items any) {
	if err := c.Save(slot, items); err != nil {
		c.log.Warn("cache save failed", "slot", slot, "error", err)
	}
}

func (c *Cache) slotPath(slot string) string {
	return filepath.Join(c.dir, slot+".json")
}

func loadSlot[T any](dir, slot string) ([]T, error) {
	data, err := os.ReadFile(filepath.Join(dir, slot+".json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", slot, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", slot, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
