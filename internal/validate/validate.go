// Package validate checks form input before it is submitted to the API,
// producing messages suitable for inline display.
package validate

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/hearthapp/hearth/internal/api"
)

var v = validator.New(validator.WithRequiredStructEnabled())

type recipeRules struct {
	Title     string   `validate:"required"`
	SourceURL string   `validate:"omitempty,url"`
	Rating    *float64 `validate:"omitempty,gte=0,lte=5"`
	Servings  *int     `validate:"omitempty,gt=0"`
}

// Recipe validates a recipe before create or update.
func Recipe(r api.Recipe) error {
	err := v.Struct(recipeRules{
		Title:     strings.TrimSpace(r.Title),
		SourceURL: strings.TrimSpace(r.SourceURL),
		Rating:    r.Rating,
		Servings:  r.Servings,
	})
	return friendly(err, map[string]string{
		"Title":     "Title is required",
		"SourceURL": "Please enter a valid URL (e.g., https://example.com)",
		"Rating":    "Rating must be a number between 0 and 5",
		"Servings":  "Servings must be a positive number",
	})
}

type personRules struct {
	FirstName string `validate:"required"`
	BirthDate string `validate:"omitempty,datetime=2006-01-02"`
	DeathDate string `validate:"omitempty,datetime=2006-01-02"`
}

// Person validates a person before create or update. Dates must be
// YYYY-MM-DD.
func Person(p api.Person) error {
	err := v.Struct(personRules{
		FirstName: strings.TrimSpace(p.FirstName),
		BirthDate: strings.TrimSpace(p.BirthDate),
		DeathDate: strings.TrimSpace(p.DeathDate),
	})
	return friendly(err, map[string]string{
		"FirstName": "First name is required",
		"BirthDate": "Please enter birth date in YYYY-MM-DD format",
		"DeathDate": "Please enter death date in YYYY-MM-DD format",
	})
}

type countryRules struct {
	Name string `validate:"required"`
}

// Country validates a country before create.
func Country(c api.Country) error {
	err := v.Struct(countryRules{Name: strings.TrimSpace(c.Name)})
	return friendly(err, map[string]string{
		"Name": "Name is required",
	})
}

type ingredientRules struct {
	Name string `validate:"required"`
}

// Ingredient validates an ingredient before create or update.
func Ingredient(i api.Ingredient) error {
	err := v.Struct(ingredientRules{Name: strings.TrimSpace(i.Name)})
	return friendly(err, map[string]string{
		"Name": "Name is required",
	})
}

type linkRules struct {
	Recipe     string   `validate:"required"`
	Ingredient string   `validate:"required"`
	Quantity   *float64 `validate:"omitempty,gt=0"`
}

// RecipeIngredient validates a recipe-ingredient link before create or
// update. A link without both references is meaningless.
func RecipeIngredient(ri api.RecipeIngredient) error {
	err := v.Struct(linkRules{
		Recipe:     ri.Recipe.String(),
		Ingredient: ri.Ingredient.String(),
		Quantity:   ri.Quantity,
	})
	return friendly(err, map[string]string{
		"Recipe":     "Recipe is required",
		"Ingredient": "Ingredient is required",
		"Quantity":   "Quantity must be a positive number",
	})
}

// friendly maps validator field errors onto display messages, joined with
// semicolons when several fields fail at once.
func friendly(err error, messages map[string]string) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	var msgs []string
	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.Field()]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, fe.Error())
	}
	return errors.New(strings.Join(msgs, "; "))
}
