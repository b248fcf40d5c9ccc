package state

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/hearthapp/hearth/internal/api"
)

// fakeClient is an in-memory ResourceClient. Setting fail makes every call
// return that error. Calls records the method names invoked, in order.
type fakeClient struct {
	recipes     []api.Recipe
	people      []api.Person
	countries   []api.Country
	ingredients []api.Ingredient
	links       []api.RecipeIngredient

	nextID int
	fail   error
	calls  []string
}

func newFakeClient() *fakeClient {
	return &fakeClient{nextID: 1}
}

func (f *fakeClient) assign() api.ID {
	id := api.ID(strconv.Itoa(f.nextID))
	f.nextID++
	return id
}

func (f *fakeClient) record(name string) error {
	f.calls = append(f.calls, name)
	return f.fail
}

func (f *fakeClient) FetchRecipes(ctx context.Context) ([]api.Recipe, error) {
	if err := f.record("FetchRecipes"); err != nil {
		return nil, err
	}
	return f.recipes, nil
}

func (f *fakeClient) FetchRecipe(ctx context.Context, id api.ID) (api.Recipe, error) {
	if err := f.record("FetchRecipe"); err != nil {
		return api.Recipe{}, err
	}
	for _, r := range f.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return api.Recipe{}, errors.New("recipe not found")
}

func (f *fakeClient) CreateRecipe(ctx context.Context, r api.Recipe) (api.Recipe, error) {
	if err := f.record("CreateRecipe"); err != nil {
		return api.Recipe{}, err
	}
	r.ID = f.assign()
	f.recipes = append(f.recipes, r)
	return r, nil
}

func (f *fakeClient) UpdateRecipe(ctx context.Context, id api.ID, r api.Recipe) (api.Recipe, error) {
	if err := f.record("UpdateRecipe"); err != nil {
		return api.Recipe{}, err
	}
	r.ID = id
	for i := range f.recipes {
		if f.recipes[i].ID == id {
			f.recipes[i] = r
		}
	}
	return r, nil
}

func (f *fakeClient) DeleteRecipe(ctx context.Context, id api.ID) error {
	if err := f.record("DeleteRecipe"); err != nil {
		return err
	}
	f.recipes = removeMatch(f.recipes, id, recipeID)
	return nil
}

func (f *fakeClient) FetchPeople(ctx context.Context) ([]api.Person, error) {
	if err := f.record("FetchPeople"); err != nil {
		return nil, err
	}
	return f.people, nil
}

func (f *fakeClient) FetchPerson(ctx context.Context, id api.ID) (api.Person, error) {
	if err := f.record("FetchPerson"); err != nil {
		return api.Person{}, err
	}
	for _, p := range f.people {
		if p.ID == id {
			return p, nil
		}
	}
	return api.Person{}, errors.New("person not found")
}

func (f *fakeClient) CreatePerson(ctx context.Context, p api.Person) (api.Person, error) {
	if err := f.record("CreatePerson"); err != nil {
		return api.Person{}, err
	}
	p.ID = f.assign()
	f.people = append(f.people, p)
	return p, nil
}

func (f *fakeClient) UpdatePerson(ctx context.Context, id api.ID, p api.Person) (api.Person, error) {
	if err := f.record("UpdatePerson"); err != nil {
		return api.Person{}, err
	}
	p.ID = id
	for i := range f.people {
		if f.people[i].ID == id {
			f.people[i] = p
		}
	}
	return p, nil
}

func (f *fakeClient) DeletePerson(ctx context.Context, id api.ID) error {
	if err := f.record("DeletePerson"); err != nil {
		return err
	}
	f.people = removeMatch(f.people, id, personID)
	return nil
}

func (f *fakeClient) FetchCountries(ctx context.Context) ([]api.Country, error) {
	if err := f.record("FetchCountries"); err != nil {
		return nil, err
	}
	return f.countries, nil
}

func (f *fakeClient) FetchCountry(ctx context.Context, id api.ID) (api.Country, error) {
	if err := f.record("FetchCountry"); err != nil {
		return api.Country{}, err
	}
	for _, c := range f.countries {
		if c.ID == id {
			return c, nil
		}
	}
	return api.Country{}, errors.New("country not found")
}

func (f *fakeClient) CreateCountry(ctx context.Context, c api.Country) (api.Country, error) {
	if err := f.record("CreateCountry"); err != nil {
		return api.Country{}, err
	}
	c.ID = f.assign()
	f.countries = append(f.countries, c)
	return c, nil
}

func (f *fakeClient) FetchIngredients(ctx context.Context) ([]api.Ingredient, error) {
	if err := f.record("FetchIngredients"); err != nil {
		return nil, err
	}
	return f.ingredients, nil
}

func (f *fakeClient) FetchIngredient(ctx context.Context, id api.ID) (api.Ingredient, error) {
	if err := f.record("FetchIngredient"); err != nil {
		return api.Ingredient{}, err
	}
	for _, i := range f.ingredients {
		if i.ID == id {
			return i, nil
		}
	}
	return api.Ingredient{}, errors.New("ingredient not found")
}

func (f *fakeClient) CreateIngredient(ctx context.Context, i api.Ingredient) (api.Ingredient, error) {
	if err := f.record("CreateIngredient"); err != nil {
		return api.Ingredient{}, err
	}
	i.ID = f.assign()
	f.ingredients = append(f.ingredients, i)
	return i, nil
}

func (f *fakeClient) UpdateIngredient(ctx context.Context, id api.ID, i api.Ingredient) (api.Ingredient, error) {
	if err := f.record("UpdateIngredient"); err != nil {
		return api.Ingredient{}, err
	}
	i.ID = id
	for j := range f.ingredients {
		if f.ingredients[j].ID == id {
			f.ingredients[j] = i
		}
	}
	return i, nil
}

func (f *fakeClient) DeleteIngredient(ctx context.Context, id api.ID) error {
	if err := f.record("DeleteIngredient"); err != nil {
		return err
	}
	f.ingredients = removeMatch(f.ingredients, id, ingredientID)
	return nil
}

func (f *fakeClient) FetchRecipeIngredients(ctx context.Context) ([]api.RecipeIngredient, error) {
	if err := f.record("FetchRecipeIngredients"); err != nil {
		return nil, err
	}
	return f.links, nil
}

func (f *fakeClient) FetchRecipeIngredient(ctx context.Context, id api.ID) (api.RecipeIngredient, error) {
	if err := f.record("FetchRecipeIngredient"); err != nil {
		return api.RecipeIngredient{}, err
	}
	for _, l := range f.links {
		if l.ID == id {
			return l, nil
		}
	}
	return api.RecipeIngredient{}, errors.New("link not found")
}

func (f *fakeClient) CreateRecipeIngredient(ctx context.Context, ri api.RecipeIngredient) (api.RecipeIngredient, error) {
	if err := f.record("CreateRecipeIngredient"); err != nil {
		return api.RecipeIngredient{}, err
	}
	ri.ID = f.assign()
	f.links = append(f.links, ri)
	return ri, nil
}

func (f *fakeClient) UpdateRecipeIngredient(ctx context.Context, id api.ID, ri api.RecipeIngredient) (api.RecipeIngredient, error) {
	if err := f.record("UpdateRecipeIngredient"); err != nil {
		return api.RecipeIngredient{}, err
	}
	ri.ID = id
	for i := range f.links {
		if f.links[i].ID == id {
			f.links[i] = ri
		}
	}
	return ri, nil
}

func (f *fakeClient) DeleteRecipeIngredient(ctx context.Context, id api.ID) error {
	if err := f.record("DeleteRecipeIngredient"); err != nil {
		return err
	}
	f.links = removeMatch(f.links, id, linkID)
	return nil
}

func (f *fakeClient) FetchRecipeIngredientsByRecipe(ctx context.Context, recipeID api.ID) ([]api.RecipeIngredient, error) {
	if err := f.record("FetchRecipeIngredientsByRecipe"); err != nil {
		return nil, err
	}
	var matched []api.RecipeIngredient
	for _, l := range f.links {
		if l.Recipe == recipeID {
			matched = append(matched, l)
		}
	}
	return matched, nil
}

var _ api.ResourceClient = (*fakeClient)(nil)

func TestFetchRecipesReplacesCollection(t *testing.T) {
	client := newFakeClient()
	client.recipes = []api.Recipe{
		{ID: "1", Title: "Goulash"},
		{ID: "2", Title: "Bread"},
	}
	store := New(client, nil)
	store.Seed([]api.Recipe{{ID: "9", Title: "Stale"}}, nil, nil, nil, nil)

	if err := store.FetchRecipes(context.Background()); err != nil {
		t.Fatalf("FetchRecipes: %v", err)
	}

	snap := store.Snapshot()
	if len(snap.Recipes.Items) != 2 {
		t.Fatalf("got %d recipes, want 2", len(snap.Recipes.Items))
	}
	if snap.Recipes.Items[0].Title != "Goulash" || snap.Recipes.Items[1].Title != "Bread" {
		t.Errorf("server order not preserved: %+v", snap.Recipes.Items)
	}
	if snap.Recipes.Loading {
		t.Error("loading flag still set after fulfill")
	}
	if snap.Recipes.Err != "" {
		t.Errorf("unexpected error %q", snap.Recipes.Err)
	}
}

func TestFetchIsIdempotent(t *testing.T) {
	client := newFakeClient()
	client.recipes = []api.Recipe{{ID: "1", Title: "Goulash"}}
	store := New(client, nil)

	if err := store.FetchRecipes(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := store.FetchRecipes(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := len(store.Snapshot().Recipes.Items); n != 1 {
		t.Errorf("got %d recipes after repeated fetch, want 1", n)
	}
}

func TestCreateRecipeAppendsExactlyOne(t *testing.T) {
	client := newFakeClient()
	store := New(client, nil)
	store.Seed([]api.Recipe{{ID: "1", Title: "First"}}, nil, nil, nil, nil)

	created, err := store.CreateRecipe(context.Background(), api.Recipe{Title: "Second"})
	if err != nil {
		t.Fatalf("CreateRecipe: %v", err)
	}
	if !created.ID.Valid() {
		t.Error("created recipe has no id")
	}

	items := store.Snapshot().Recipes.Items
	if len(items) != 2 {
		t.Fatalf("got %d recipes, want 2", len(items))
	}
	if items[1].Title != "Second" {
		t.Errorf("new recipe not appended last: %+v", items)
	}
}

func TestUpdateRecipeReplacesOnlyTarget(t *testing.T) {
	client := newFakeClient()
	client.recipes = []api.Recipe{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
		{ID: "3", Title: "Third"},
	}
	store := New(client, nil)
	store.Seed(client.recipes, nil, nil, nil, nil)

	if _, err := store.UpdateRecipe(context.Background(), "2", api.Recipe{Title: "Renamed"}); err != nil {
		t.Fatalf("UpdateRecipe: %v", err)
	}

	items := store.Snapshot().Recipes.Items
	want := []string{"First", "Renamed", "Third"}
	for i, title := range want {
		if items[i].Title != title {
			t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, title)
		}
	}
}

func TestDeleteRecipePreservesOrder(t *testing.T) {
	client := newFakeClient()
	client.recipes = []api.Recipe{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "Second"},
		{ID: "3", Title: "Third"},
	}
	store := New(client, nil)
	store.Seed(client.recipes, nil, nil, nil, nil)

	if err := store.DeleteRecipe(context.Background(), "2"); err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}

	items := store.Snapshot().Recipes.Items
	if len(items) != 2 || items[0].ID != "1" || items[1].ID != "3" {
		t.Errorf("unexpected items after delete: %+v", items)
	}
}

func TestRejectedFetchKeepsItems(t *testing.T) {
	client := newFakeClient()
	store := New(client, nil)
	store.Seed([]api.Recipe{{ID: "1", Title: "Kept"}}, nil, nil, nil, nil)

	client.fail = errors.New("server exploded")
	if err := store.FetchRecipes(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	snap := store.Snapshot()
	if len(snap.Recipes.Items) != 1 || snap.Recipes.Items[0].Title != "Kept" {
		t.Errorf("items changed on failure: %+v", snap.Recipes.Items)
	}
	if snap.Recipes.Err != "server exploded" {
		t.Errorf("error flag = %q", snap.Recipes.Err)
	}
	if snap.Recipes.Loading {
		t.Error("loading flag still set after reject")
	}
}

func TestErrorClearsOnNextOperation(t *testing.T) {
	client := newFakeClient()
	store := New(client, nil)

	client.fail = errors.New("down")
	_ = store.FetchRecipes(context.Background())
	client.fail = nil

	if err := store.FetchRecipes(context.Background()); err != nil {
		t.Fatal(err)
	}
	if errText := store.Snapshot().Recipes.Err; errText != "" {
		t.Errorf("stale error %q survived a successful fetch", errText)
	}
}

func TestSinkRunsAfterEveryTransition(t *testing.T) {
	client := newFakeClient()
	var snaps []Snapshot
	store := New(client, func(s Snapshot) { snaps = append(snaps, s) })

	if _, err := store.CreateRecipe(context.Background(), api.Recipe{Title: "Bread"}); err != nil {
		t.Fatal(err)
	}

	// One snapshot for the pending transition, one for the fulfilled.
	if len(snaps) != 2 {
		t.Fatalf("sink ran %d times, want 2", len(snaps))
	}
	if !snaps[0].Recipes.Loading {
		t.Error("first snapshot should be mid-operation")
	}
	if snaps[1].Recipes.Loading {
		t.Error("second snapshot should be settled")
	}
	if len(snaps[1].Recipes.Items) != 1 {
		t.Errorf("settled snapshot has %d recipes, want 1", len(snaps[1].Recipes.Items))
	}
}

func TestSinkRunsOnFailureToo(t *testing.T) {
	client := newFakeClient()
	client.fail = errors.New("down")
	var count int
	store := New(client, func(Snapshot) { count++ })

	_ = store.FetchRecipes(context.Background())
	if count != 2 {
		t.Errorf("sink ran %d times for a failed fetch, want 2", count)
	}
}

func TestMarkRecipeCookedReadsThenWrites(t *testing.T) {
	client := newFakeClient()
	client.recipes = []api.Recipe{{ID: "1", Title: "Goulash", TimesCooked: 2}}
	store := New(client, nil)
	store.Seed(client.recipes, nil, nil, nil, nil)

	updated, err := store.MarkRecipeCooked(context.Background(), "1")
	if err != nil {
		t.Fatalf("MarkRecipeCooked: %v", err)
	}
	if updated.TimesCooked != 3 {
		t.Errorf("times cooked = %d, want 3", updated.TimesCooked)
	}

	want := []string{"FetchRecipe", "UpdateRecipe"}
	if len(client.calls) != 2 || client.calls[0] != want[0] || client.calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", client.calls, want)
	}
	if got := store.Snapshot().Recipes.Items[0].TimesCooked; got != 3 {
		t.Errorf("collection not updated: times cooked = %d", got)
	}
}

func TestCreateLinkUsesServerEcho(t *testing.T) {
	client := newFakeClient()
	client.nextID = 101
	store := New(client, nil)

	qty := 2.5
	created, err := store.CreateRecipeIngredient(context.Background(), api.RecipeIngredient{
		Recipe:     "10",
		Ingredient: "7",
		Quantity:   &qty,
	})
	if err != nil {
		t.Fatalf("CreateRecipeIngredient: %v", err)
	}
	if created.ID != "101" {
		t.Errorf("created id = %s, want 101", created.ID)
	}

	items := store.Snapshot().RecipeIngredients.Items
	if len(items) != 1 || items[0].ID != "101" {
		t.Errorf("collection holds %+v, want the server echo with id 101", items)
	}
}

func TestDeleteRecipeIngredientsByRecipe(t *testing.T) {
	client := newFakeClient()
	client.links = []api.RecipeIngredient{
		{ID: "1", Recipe: "10", Ingredient: "100"},
		{ID: "2", Recipe: "20", Ingredient: "100"},
		{ID: "3", Recipe: "10", Ingredient: "101"},
	}
	store := New(client, nil)
	store.Seed(nil, nil, nil, nil, client.links)

	if err := store.DeleteRecipeIngredientsByRecipe(context.Background(), "10"); err != nil {
		t.Fatalf("DeleteRecipeIngredientsByRecipe: %v", err)
	}

	items := store.Snapshot().RecipeIngredients.Items
	if len(items) != 1 || items[0].ID != "2" {
		t.Errorf("got %+v, want only the link for recipe 20", items)
	}

	var deletes int
	for _, call := range client.calls {
		if call == "DeleteRecipeIngredient" {
			deletes++
		}
	}
	if deletes != 2 {
		t.Errorf("server saw %d link deletes, want 2", deletes)
	}
}

func TestRecipeIngredientsFor(t *testing.T) {
	client := newFakeClient()
	store := New(client, nil)
	store.Seed(nil, nil, nil, nil, []api.RecipeIngredient{
		{ID: "1", Recipe: "10", Ingredient: "100"},
		{ID: "2", Recipe: "20", Ingredient: "100"},
		{ID: "3", Recipe: "10", Ingredient: "101"},
	})

	links := store.RecipeIngredientsFor("10")
	if len(links) != 2 || links[0].ID != "1" || links[1].ID != "3" {
		t.Errorf("got %+v", links)
	}
	if got := store.RecipeIngredientsFor("99"); len(got) != 0 {
		t.Errorf("expected no links for unknown recipe, got %+v", got)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	client := newFakeClient()
	store := New(client, nil)
	store.Seed([]api.Recipe{{ID: "1", Title: "Original"}}, nil, nil, nil, nil)

	snap := store.Snapshot()
	snap.Recipes.Items[0].Title = "Mutated"

	if got := store.Snapshot().Recipes.Items[0].Title; got != "Original" {
		t.Errorf("store state mutated through a snapshot: %q", got)
	}
}

func TestClearRecipeError(t *testing.T) {
	client := newFakeClient()
	client.fail = errors.New("down")
	store := New(client, nil)

	_ = store.FetchRecipes(context.Background())
	if store.Snapshot().Recipes.Err == "" {
		t.Fatal("expected an error flag")
	}

	store.ClearRecipeError()
	if errText := store.Snapshot().Recipes.Err; errText != "" {
		t.Errorf("error flag = %q after clear", errText)
	}
}
