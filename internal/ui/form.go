package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/hearthapp/hearth/internal/api"
	"github.com/hearthapp/hearth/internal/validate"
)

type formKind int

const (
	formRecipe formKind = iota
	formPerson
	formCountry
	formIngredient
	formLink
)

type field struct {
	key   string
	label string
	input textinput.Model
}

// draftIngredient is an ingredient row captured while the parent recipe does
// not exist yet. TempID is a client-only identifier for list bookkeeping; it
// is never sent to the server.
type draftIngredient struct {
	TempID     string
	Ingredient api.ID
	Name       string
	Quantity   *float64
}

type form struct {
	kind     formKind
	title    string
	fields   []field
	focus    int
	err      string
	returnTo viewMode

	targetID   api.ID // edit target; empty means create
	linkRecipe api.ID // parent recipe for link forms
	base       api.Recipe

	allowDrafts bool
	drafts      []draftIngredient
}

func newField(key, label, placeholder, value string) field {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 250
	in.SetValue(value)
	return field{key: key, label: label, input: in}
}

func (f *form) focusField(i int) {
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	f.focus = i
	f.fields[i].input.Focus()
}

func (f *form) value(key string) string {
	for _, fl := range f.fields {
		if fl.key == key {
			return strings.TrimSpace(fl.input.Value())
		}
	}
	return ""
}

func (f *form) setValue(key, value string) {
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].input.SetValue(value)
			return
		}
	}
}

// addDraft captures the draft ingredient fields as a pending row.
func (f *form) addDraft(ingredients []api.Ingredient) {
	name := f.value("draft_ingredient")
	if name == "" {
		f.err = "Type an ingredient name before adding a row"
		return
	}
	id := resolveIngredientID(name, ingredients)
	if !id.Valid() {
		f.err = "Unknown ingredient: " + name
		return
	}
	qty, err := parseOptionalFloat(f.value("draft_quantity"))
	if err != nil {
		f.err = "Quantity must be a positive number"
		return
	}
	f.drafts = append(f.drafts, draftIngredient{
		TempID:     uuid.NewString(),
		Ingredient: id,
		Name:       ingredientDisplayName(id, ingredients),
		Quantity:   qty,
	})
	f.setValue("draft_ingredient", "")
	f.setValue("draft_quantity", "")
	f.err = ""
}

func (m *Model) newRecipeForm(existing *api.Recipe, returnTo viewMode) *form {
	f := &form{
		kind:     formRecipe,
		title:    "Add recipe",
		returnTo: returnTo,
	}
	var base api.Recipe
	if existing != nil {
		base = *existing
		f.title = "Edit recipe"
		f.targetID = existing.ID
	}
	f.base = base

	f.fields = []field{
		newField("title", "Title", "Grandma's goulash", base.Title),
		newField("description", "Description", "", base.Description),
		newField("servings", "Servings", "4", intValue(base.Servings)),
		newField("prep_time", "Prep time", "minutes or H:MM:SS", durationValue(base.PrepTime)),
		newField("cook_time", "Cook time", "minutes or H:MM:SS", durationValue(base.CookTime)),
		newField("total_time", "Total time", "minutes or H:MM:SS", durationValue(base.TotalTime)),
		newField("meal_type", "Meal type", "Dinner", base.MealType),
		newField("cuisine_type", "Cuisine", "Hungarian", base.CuisineType),
		newField("difficulty", "Difficulty", "Easy/Medium/Hard", base.Difficulty),
		newField("source_name", "Source", "", base.SourceName),
		newField("source_url", "Source URL", "https://", base.SourceURL),
		newField("rating", "Rating", "0-5", floatValue(base.Rating)),
		newField("person", "Person", "name or id", m.personName(base.Person)),
		newField("country", "Country", "name or id", m.countryName(base.Country)),
	}
	if existing == nil {
		f.allowDrafts = true
		f.fields = append(f.fields,
			newField("draft_ingredient", "Ingredient", "name, then ctrl+n", ""),
			newField("draft_quantity", "Quantity", "1.5", ""),
		)
	}
	f.focusField(0)
	return f
}

func (m *Model) newPersonForm(existing *api.Person) *form {
	f := &form{kind: formPerson, title: "Add person", returnTo: modeList}
	var base api.Person
	if existing != nil {
		base = *existing
		f.title = "Edit person"
		f.targetID = existing.ID
	}
	f.fields = []field{
		newField("first_name", "First name", "", base.FirstName),
		newField("last_name", "Last name", "", base.LastName),
		newField("birth_date", "Birth date", "YYYY-MM-DD", base.BirthDate),
		newField("death_date", "Death date", "YYYY-MM-DD", base.DeathDate),
		newField("notes", "Notes", "", base.Notes),
	}
	f.focusField(0)
	return f
}

func (m *Model) newCountryForm() *form {
	f := &form{kind: formCountry, title: "Add country", returnTo: modeList}
	f.fields = []field{
		newField("name", "Name", "", ""),
		newField("region", "Region", "", ""),
	}
	f.focusField(0)
	return f
}

func (m *Model) newIngredientForm(existing *api.Ingredient) *form {
	f := &form{kind: formIngredient, title: "Add ingredient", returnTo: modeList}
	var base api.Ingredient
	if existing != nil {
		base = *existing
		f.title = "Edit ingredient"
		f.targetID = existing.ID
	}
	f.fields = []field{
		newField("name", "Name", "", base.Name),
		newField("unit", "Unit", "g, cups, ...", base.Unit),
		newField("notes", "Notes", "", base.Notes),
	}
	f.focusField(0)
	return f
}

func (m *Model) newLinkEditForm(link api.RecipeIngredient) *form {
	f := &form{
		kind:       formLink,
		title:      "Edit " + m.ingredientName(link.Ingredient),
		returnTo:   modeDetail,
		targetID:   link.ID,
		linkRecipe: link.Recipe,
	}
	f.fields = []field{
		newField("ingredient", "Ingredient", "name or id", m.ingredientName(link.Ingredient)),
		newField("quantity", "Quantity", "1.5", floatValue(link.Quantity)),
	}
	f.focusField(0)
	return f
}

func (m *Model) newLinkForm(recipeID api.ID) *form {
	f := &form{
		kind:       formLink,
		title:      "Add ingredient to recipe",
		returnTo:   modeDetail,
		linkRecipe: recipeID,
	}
	f.fields = []field{
		newField("ingredient", "Ingredient", "name or id", ""),
		newField("quantity", "Quantity", "1.5", ""),
	}
	f.focusField(0)
	return f
}

// submitForm builds and validates the entity, returning the store command to
// run. A returned error is a validation failure for inline display.
func (m *Model) submitForm(f *form) (tea.Cmd, error) {
	switch f.kind {
	case formPerson:
		p := api.Person{
			ID:               f.targetID,
			FirstName:        f.value("first_name"),
			LastName:         f.value("last_name"),
			BirthDate:        f.value("birth_date"),
			DeathDate:        f.value("death_date"),
			Notes:            f.value("notes"),
			FamilySearchID:   "",
			AncestryTreeID:   "",
			AncestryPersonID: "",
		}
		if err := validate.Person(p); err != nil {
			return nil, err
		}
		if f.targetID.Valid() {
			return m.updatePersonCmd(f.targetID, p), nil
		}
		return m.createPersonCmd(p), nil

	case formCountry:
		c := api.Country{Name: f.value("name"), Region: f.value("region")}
		if err := validate.Country(c); err != nil {
			return nil, err
		}
		return m.createCountryCmd(c), nil

	case formIngredient:
		ing := api.Ingredient{
			ID:    f.targetID,
			Name:  f.value("name"),
			Unit:  f.value("unit"),
			Notes: f.value("notes"),
		}
		if err := validate.Ingredient(ing); err != nil {
			return nil, err
		}
		if f.targetID.Valid() {
			return m.updateIngredientCmd(f.targetID, ing), nil
		}
		return m.createIngredientCmd(ing), nil

	case formLink:
		id := resolveIngredientID(f.value("ingredient"), m.snapshot.Ingredients.Items)
		if !id.Valid() {
			return nil, fmt.Errorf("Unknown ingredient: %s", f.value("ingredient"))
		}
		qty, err := parseOptionalFloat(f.value("quantity"))
		if err != nil {
			return nil, fmt.Errorf("Quantity must be a positive number")
		}
		link := api.RecipeIngredient{Recipe: f.linkRecipe, Ingredient: id, Quantity: qty}
		if err := validate.RecipeIngredient(link); err != nil {
			return nil, err
		}
		if f.targetID.Valid() {
			return m.updateLinkCmd(f.targetID, link), nil
		}
		return m.createLinkCmd(link), nil

	default:
		r, err := m.buildRecipe(f)
		if err != nil {
			return nil, err
		}
		if err := validate.Recipe(r); err != nil {
			return nil, err
		}
		if f.targetID.Valid() {
			return m.updateRecipeCmd(f.targetID, r), nil
		}
		return m.createRecipeCmd(r, f.drafts), nil
	}
}

func (m *Model) buildRecipe(f *form) (api.Recipe, error) {
	servings, err := parseOptionalInt(f.value("servings"))
	if err != nil {
		return api.Recipe{}, fmt.Errorf("Servings must be a positive number")
	}
	rating, err := parseOptionalFloat(f.value("rating"))
	if err != nil {
		return api.Recipe{}, fmt.Errorf("Rating must be a number between 0 and 5")
	}
	prep, err := parseOptionalDuration(f.value("prep_time"))
	if err != nil {
		return api.Recipe{}, fmt.Errorf("Prep time must be minutes or H:MM:SS")
	}
	cook, err := parseOptionalDuration(f.value("cook_time"))
	if err != nil {
		return api.Recipe{}, fmt.Errorf("Cook time must be minutes or H:MM:SS")
	}
	total, err := parseOptionalDuration(f.value("total_time"))
	if err != nil {
		return api.Recipe{}, fmt.Errorf("Total time must be minutes or H:MM:SS")
	}

	person := resolvePersonID(f.value("person"), m.snapshot.People.Items)
	if f.value("person") != "" && !person.Valid() {
		return api.Recipe{}, fmt.Errorf("Unknown person: %s", f.value("person"))
	}
	country := resolveCountryID(f.value("country"), m.snapshot.Countries.Items)
	if f.value("country") != "" && !country.Valid() {
		return api.Recipe{}, fmt.Errorf("Unknown country: %s", f.value("country"))
	}

	return api.Recipe{
		ID:          f.targetID,
		Title:       f.value("title"),
		Description: f.value("description"),
		Servings:    servings,
		PrepTime:    prep,
		CookTime:    cook,
		TotalTime:   total,
		MealType:    f.value("meal_type"),
		CuisineType: f.value("cuisine_type"),
		Difficulty:  f.value("difficulty"),
		SourceName:  f.value("source_name"),
		SourceURL:   f.value("source_url"),
		Rating:      rating,
		TimesCooked: f.base.TimesCooked,
		Person:      person,
		Country:     country,
	}, nil
}

func intValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func durationValue(d *api.Duration) string {
	if d == nil {
		return ""
	}
	return d.Clock()
}
