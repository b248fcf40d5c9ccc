package state

import (
	"context"
	"errors"
	"testing"

	"github.com/hearthapp/hearth/internal/api"
)

func TestCreateCountryAppends(t *testing.T) {
	client := newFakeClient()
	store := New(client, nil)
	store.Seed(nil, nil, []api.Country{{ID: "1", Name: "Hungary"}}, nil, nil)

	created, err := store.CreateCountry(context.Background(), api.Country{Name: "Poland"})
	if err != nil {
		t.Fatalf("CreateCountry: %v", err)
	}
	if !created.ID.Valid() {
		t.Error("created country has no id")
	}

	items := store.Snapshot().Countries.Items
	if len(items) != 2 || items[1].Name != "Poland" {
		t.Errorf("countries = %+v", items)
	}
}

func TestCountryErrorFlagIndependent(t *testing.T) {
	client := newFakeClient()
	store := New(client, nil)

	client.fail = errors.New("down")
	_ = store.FetchCountries(context.Background())
	client.fail = nil
	if err := store.FetchRecipes(context.Background()); err != nil {
		t.Fatal(err)
	}

	snap := store.Snapshot()
	if snap.Countries.Err == "" {
		t.Error("country error flag lost")
	}
	if snap.Recipes.Err != "" {
		t.Errorf("recipe error flag = %q, want empty", snap.Recipes.Err)
	}

	store.ClearCountryError()
	if errText := store.Snapshot().Countries.Err; errText != "" {
		t.Errorf("error flag = %q after clear", errText)
	}
}

func TestUpdatePersonReplacesOnlyTarget(t *testing.T) {
	client := newFakeClient()
	client.people = []api.Person{
		{ID: "1", FirstName: "Maria"},
		{ID: "2", FirstName: "Jozsef"},
	}
	store := New(client, nil)
	store.Seed(nil, client.people, nil, nil, nil)

	if _, err := store.UpdatePerson(context.Background(), "2", api.Person{FirstName: "Joe"}); err != nil {
		t.Fatalf("UpdatePerson: %v", err)
	}

	items := store.Snapshot().People.Items
	if items[0].FirstName != "Maria" || items[1].FirstName != "Joe" {
		t.Errorf("people = %+v", items)
	}
}

func TestDeleteIngredient(t *testing.T) {
	client := newFakeClient()
	client.ingredients = []api.Ingredient{
		{ID: "1", Name: "Paprika"},
		{ID: "2", Name: "Flour"},
	}
	store := New(client, nil)
	store.Seed(nil, nil, nil, client.ingredients, nil)

	if err := store.DeleteIngredient(context.Background(), "1"); err != nil {
		t.Fatalf("DeleteIngredient: %v", err)
	}
	items := store.Snapshot().Ingredients.Items
	if len(items) != 1 || items[0].Name != "Flour" {
		t.Errorf("ingredients = %+v", items)
	}
}
