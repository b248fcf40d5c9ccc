package state

import (
	"slices"
	"sync"

	"github.com/hearthapp/hearth/internal/api"
)

// Collection holds one resource's in-memory items along with the loading and
// error flags of the most recent operation against it. Items keep server
// response order; created items are appended.
type Collection[T any] struct {
	Items   []T
	Loading bool
	Err     string
}

func (c *Collection[T]) begin() {
	c.Loading = true
	c.Err = ""
}

func (c *Collection[T]) reject(err error) {
	c.Loading = false
	c.Err = err.Error()
}

func (c *Collection[T]) fulfill(items []T) {
	c.Loading = false
	c.Items = items
}

func (c Collection[T]) clone() Collection[T] {
	c.Items = slices.Clone(c.Items)
	return c
}

// Snapshot is a copy of the full store state at a point in time.
type Snapshot struct {
	Recipes           Collection[api.Recipe]
	People            Collection[api.Person]
	Countries         Collection[api.Country]
	Ingredients       Collection[api.Ingredient]
	RecipeIngredients Collection[api.RecipeIngredient]
}

// Sink receives a snapshot after every store mutation, successful or not.
// Sinks are side-effect-only; their failures never influence an operation's
// result.
type Sink func(Snapshot)

// Store owns the current value of every resource collection for the session.
// All mutation happens through its operation methods; readers take snapshots.
type Store struct {
	mu     sync.RWMutex
	client api.ResourceClient
	sink   Sink

	recipes           Collection[api.Recipe]
	people            Collection[api.Person]
	countries         Collection[api.Country]
	ingredients       Collection[api.Ingredient]
	recipeIngredients Collection[api.RecipeIngredient]
}

// New builds a Store over the given client. The sink may be nil.
func New(client api.ResourceClient, sink Sink) *Store {
	return &Store{client: client, sink: sink}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Recipes:           s.recipes.clone(),
		People:            s.people.clone(),
		Countries:         s.countries.clone(),
		Ingredients:       s.ingredients.clone(),
		RecipeIngredients: s.recipeIngredients.clone(),
	}
}

// persist pushes the current state into the sink. Called after every
// mutation, unconditionally.
func (s *Store) persist() {
	if s.sink == nil {
		return
	}
	s.sink(s.Snapshot())
}

// Seed installs cached collections without touching loading or error flags.
// Used once at bootstrap before the remote refresh.
func (s *Store) Seed(recipes []api.Recipe, people []api.Person, countries []api.Country, ingredients []api.Ingredient, links []api.RecipeIngredient) {
	s.mu.Lock()
	s.recipes.Items = slices.Clone(recipes)
	s.people.Items = slices.Clone(people)
	s.countries.Items = slices.Clone(countries)
	s.ingredients.Items = slices.Clone(ingredients)
	s.recipeIngredients.Items = slices.Clone(links)
	s.mu.Unlock()
	s.persist()
}

// replaceMatch swaps the element whose identifier matches target, comparing
// identifiers in canonical string form. No-op when nothing matches.
func replaceMatch[T any](items []T, target api.ID, idOf func(T) api.ID, repl T) []T {
	next := slices.Clone(items)
	for i, item := range next {
		if idOf(item) == target {
			next[i] = repl
			break
		}
	}
	return next
}

// removeMatch drops the element whose identifier matches target, preserving
// the relative order of the rest.
func removeMatch[T any](items []T, target api.ID, idOf func(T) api.ID) []T {
	next := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != target {
			next = append(next, item)
		}
	}
	return next
}

func recipeID(r api.Recipe) api.ID          { return r.ID }
func personID(p api.Person) api.ID          { return p.ID }
func ingredientID(i api.Ingredient) api.ID  { return i.ID }
func linkID(ri api.RecipeIngredient) api.ID { return ri.ID }
