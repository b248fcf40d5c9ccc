package ui

import (
	"strings"
	"testing"

	"github.com/hearthapp/hearth/internal/api"
	"github.com/hearthapp/hearth/internal/state"
)

func testModel() *Model {
	m := &Model{}
	m.snapshot = state.Snapshot{}
	m.snapshot.People.Items = []api.Person{{ID: "1", FirstName: "Maria", LastName: "Kovacs"}}
	m.snapshot.Countries.Items = []api.Country{{ID: "2", Name: "Hungary"}}
	m.snapshot.Ingredients.Items = []api.Ingredient{
		{ID: "3", Name: "Paprika"},
		{ID: "4", Name: "Flour"},
	}
	return m
}

func TestBuildRecipeFromForm(t *testing.T) {
	m := testModel()
	f := m.newRecipeForm(nil, modeList)
	f.setValue("title", "Goulash")
	f.setValue("servings", "4")
	f.setValue("prep_time", "15")
	f.setValue("cook_time", "1:30:00")
	f.setValue("rating", "4.5")
	f.setValue("person", "Maria Kovacs")
	f.setValue("country", "Hungary")

	r, err := m.buildRecipe(f)
	if err != nil {
		t.Fatalf("buildRecipe: %v", err)
	}
	if r.Title != "Goulash" {
		t.Errorf("Title = %q", r.Title)
	}
	if r.Servings == nil || *r.Servings != 4 {
		t.Errorf("Servings = %v", r.Servings)
	}
	if r.PrepTime == nil || r.PrepTime.Seconds() != 900 {
		t.Errorf("PrepTime = %v", r.PrepTime)
	}
	if r.CookTime == nil || r.CookTime.Seconds() != 5400 {
		t.Errorf("CookTime = %v", r.CookTime)
	}
	if r.Rating == nil || *r.Rating != 4.5 {
		t.Errorf("Rating = %v", r.Rating)
	}
	if r.Person != "1" {
		t.Errorf("Person = %q, want resolved id 1", r.Person)
	}
	if r.Country != "2" {
		t.Errorf("Country = %q, want resolved id 2", r.Country)
	}
}

func TestBuildRecipeBlankOptionalsStayNil(t *testing.T) {
	m := testModel()
	f := m.newRecipeForm(nil, modeList)
	f.setValue("title", "Plain")

	r, err := m.buildRecipe(f)
	if err != nil {
		t.Fatalf("buildRecipe: %v", err)
	}
	if r.Servings != nil || r.PrepTime != nil || r.Rating != nil {
		t.Errorf("blank optionals populated: %+v", r)
	}
	if r.Person.Valid() || r.Country.Valid() {
		t.Errorf("blank references resolved: person=%q country=%q", r.Person, r.Country)
	}
}

func TestBuildRecipeRejectsUnknownPerson(t *testing.T) {
	m := testModel()
	f := m.newRecipeForm(nil, modeList)
	f.setValue("title", "Goulash")
	f.setValue("person", "Nobody Known")

	if _, err := m.buildRecipe(f); err == nil {
		t.Error("unknown person accepted")
	}
}

func TestBuildRecipeKeepsTimesCookedOnEdit(t *testing.T) {
	m := testModel()
	existing := api.Recipe{ID: "5", Title: "Goulash", TimesCooked: 7}
	f := m.newRecipeForm(&existing, modeList)

	r, err := m.buildRecipe(f)
	if err != nil {
		t.Fatalf("buildRecipe: %v", err)
	}
	if r.TimesCooked != 7 {
		t.Errorf("TimesCooked = %d, want 7", r.TimesCooked)
	}
	if r.ID != "5" {
		t.Errorf("ID = %q, want 5", r.ID)
	}
}

func TestEditRecipeFormHasNoDraftRows(t *testing.T) {
	m := testModel()
	existing := api.Recipe{ID: "5", Title: "Goulash"}
	f := m.newRecipeForm(&existing, modeList)
	if f.allowDrafts {
		t.Error("edit form should not accept draft ingredient rows")
	}
	f = m.newRecipeForm(nil, modeList)
	if !f.allowDrafts {
		t.Error("create form should accept draft ingredient rows")
	}
}

func TestAddDraft(t *testing.T) {
	m := testModel()
	f := m.newRecipeForm(nil, modeList)
	f.setValue("draft_ingredient", "paprika")
	f.setValue("draft_quantity", "2.5")

	f.addDraft(m.snapshot.Ingredients.Items)
	if f.err != "" {
		t.Fatalf("addDraft failed: %s", f.err)
	}
	if len(f.drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(f.drafts))
	}
	d := f.drafts[0]
	if d.Ingredient != "3" {
		t.Errorf("draft ingredient = %q, want 3", d.Ingredient)
	}
	if d.Name != "Paprika" {
		t.Errorf("draft name = %q", d.Name)
	}
	if d.Quantity == nil || *d.Quantity != 2.5 {
		t.Errorf("draft quantity = %v", d.Quantity)
	}
	if d.TempID == "" {
		t.Error("draft has no temp id")
	}
	// Input fields reset for the next row.
	if f.value("draft_ingredient") != "" || f.value("draft_quantity") != "" {
		t.Error("draft inputs not cleared")
	}
}

func TestAddDraftTempIDsAreUnique(t *testing.T) {
	m := testModel()
	f := m.newRecipeForm(nil, modeList)

	f.setValue("draft_ingredient", "Paprika")
	f.addDraft(m.snapshot.Ingredients.Items)
	f.setValue("draft_ingredient", "Flour")
	f.addDraft(m.snapshot.Ingredients.Items)

	if len(f.drafts) != 2 {
		t.Fatalf("got %d drafts, want 2", len(f.drafts))
	}
	if f.drafts[0].TempID == f.drafts[1].TempID {
		t.Error("temp ids collide")
	}
}

func TestAddDraftUnknownIngredient(t *testing.T) {
	m := testModel()
	f := m.newRecipeForm(nil, modeList)
	f.setValue("draft_ingredient", "saffron")

	f.addDraft(m.snapshot.Ingredients.Items)
	if len(f.drafts) != 0 {
		t.Errorf("unknown ingredient produced a draft: %+v", f.drafts)
	}
	if !strings.Contains(f.err, "saffron") {
		t.Errorf("err = %q, want the offending name", f.err)
	}
}

func TestSubmitFormValidation(t *testing.T) {
	m := testModel()

	f := m.newRecipeForm(nil, modeList)
	if _, err := m.submitForm(f); err == nil {
		t.Error("recipe without title passed submit")
	}

	f = m.newPersonForm(nil)
	if _, err := m.submitForm(f); err == nil {
		t.Error("person without first name passed submit")
	}

	f = m.newLinkForm("10")
	f.setValue("ingredient", "nothing here")
	if _, err := m.submitForm(f); err == nil {
		t.Error("link with unknown ingredient passed submit")
	}
}
