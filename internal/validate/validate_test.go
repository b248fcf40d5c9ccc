package validate

import (
	"strings"
	"testing"

	"github.com/hearthapp/hearth/internal/api"
)

func TestRecipe(t *testing.T) {
	rating := 4.5
	servings := 4
	good := api.Recipe{Title: "Goulash", Rating: &rating, Servings: &servings, SourceURL: "https://example.com"}
	if err := Recipe(good); err != nil {
		t.Errorf("valid recipe rejected: %v", err)
	}

	if err := Recipe(api.Recipe{}); err == nil {
		t.Error("recipe without title accepted")
	} else if !strings.Contains(err.Error(), "Title is required") {
		t.Errorf("message = %q", err)
	}

	bad := 6.0
	if err := Recipe(api.Recipe{Title: "x", Rating: &bad}); err == nil {
		t.Error("rating above 5 accepted")
	}

	zero := 0
	if err := Recipe(api.Recipe{Title: "x", Servings: &zero}); err == nil {
		t.Error("zero servings accepted")
	}

	if err := Recipe(api.Recipe{Title: "x", SourceURL: "not a url"}); err == nil {
		t.Error("malformed source url accepted")
	}
}

func TestRecipeCollectsAllFailures(t *testing.T) {
	bad := -1.0
	err := Recipe(api.Recipe{Rating: &bad})
	if err == nil {
		t.Fatal("expected errors")
	}
	msg := err.Error()
	if !strings.Contains(msg, "Title is required") || !strings.Contains(msg, "Rating must be") {
		t.Errorf("message missing a failure: %q", msg)
	}
}

func TestPerson(t *testing.T) {
	if err := Person(api.Person{FirstName: "Maria", BirthDate: "1931-05-02"}); err != nil {
		t.Errorf("valid person rejected: %v", err)
	}
	if err := Person(api.Person{}); err == nil {
		t.Error("person without first name accepted")
	}
	if err := Person(api.Person{FirstName: "Maria", BirthDate: "05/02/1931"}); err == nil {
		t.Error("non-ISO birth date accepted")
	}
	if err := Person(api.Person{FirstName: "Maria", DeathDate: "yesterday"}); err == nil {
		t.Error("bad death date accepted")
	}
}

func TestCountryAndIngredient(t *testing.T) {
	if err := Country(api.Country{Name: "Hungary"}); err != nil {
		t.Errorf("valid country rejected: %v", err)
	}
	if err := Country(api.Country{Name: "   "}); err == nil {
		t.Error("blank country name accepted")
	}
	if err := Ingredient(api.Ingredient{Name: "Paprika"}); err != nil {
		t.Errorf("valid ingredient rejected: %v", err)
	}
	if err := Ingredient(api.Ingredient{}); err == nil {
		t.Error("ingredient without name accepted")
	}
}

func TestRecipeIngredient(t *testing.T) {
	qty := 2.5
	good := api.RecipeIngredient{Recipe: "1", Ingredient: "2", Quantity: &qty}
	if err := RecipeIngredient(good); err != nil {
		t.Errorf("valid link rejected: %v", err)
	}

	if err := RecipeIngredient(api.RecipeIngredient{Ingredient: "2"}); err == nil {
		t.Error("link without recipe accepted")
	}
	if err := RecipeIngredient(api.RecipeIngredient{Recipe: "1"}); err == nil {
		t.Error("link without ingredient accepted")
	}

	zero := 0.0
	if err := RecipeIngredient(api.RecipeIngredient{Recipe: "1", Ingredient: "2", Quantity: &zero}); err == nil {
		t.Error("zero quantity accepted")
	}

	// Quantity is optional.
	if err := RecipeIngredient(api.RecipeIngredient{Recipe: "1", Ingredient: "2"}); err != nil {
		t.Errorf("link without quantity rejected: %v", err)
	}
}
