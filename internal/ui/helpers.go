package ui

import (
	"strconv"
	"strings"

	"github.com/hearthapp/hearth/internal/api"
)

// Name lookups resolve foreign keys against the current snapshot. Unresolved
// references render as the raw id so stale links stay visible.

func (m *Model) personName(id api.ID) string {
	if !id.Valid() {
		return ""
	}
	for _, p := range m.snapshot.People.Items {
		if p.ID == id {
			return p.DisplayName()
		}
	}
	return id.String()
}

func (m *Model) countryName(id api.ID) string {
	if !id.Valid() {
		return ""
	}
	for _, c := range m.snapshot.Countries.Items {
		if c.ID == id {
			return c.Name
		}
	}
	return id.String()
}

func (m *Model) ingredientName(id api.ID) string {
	if !id.Valid() {
		return ""
	}
	for _, ing := range m.snapshot.Ingredients.Items {
		if ing.ID == id {
			return ing.Name
		}
	}
	return id.String()
}

// resolveIngredientID accepts an ingredient name (case-insensitive) or a
// literal id and returns the matching id, or the zero ID when nothing matches.
func resolveIngredientID(input string, items []api.Ingredient) api.ID {
	input = strings.TrimSpace(input)
	if input == "" {
		return api.ID("")
	}
	for _, ing := range items {
		if strings.EqualFold(ing.Name, input) {
			return ing.ID
		}
	}
	for _, ing := range items {
		if ing.ID.String() == input {
			return ing.ID
		}
	}
	return api.ID("")
}

func ingredientDisplayName(id api.ID, items []api.Ingredient) string {
	for _, ing := range items {
		if ing.ID == id {
			return ing.Name
		}
	}
	return id.String()
}

func resolvePersonID(input string, items []api.Person) api.ID {
	input = strings.TrimSpace(input)
	if input == "" {
		return api.ID("")
	}
	for _, p := range items {
		if strings.EqualFold(p.DisplayName(), input) {
			return p.ID
		}
	}
	for _, p := range items {
		if p.ID.String() == input {
			return p.ID
		}
	}
	return api.ID("")
}

func resolveCountryID(input string, items []api.Country) api.ID {
	input = strings.TrimSpace(input)
	if input == "" {
		return api.ID("")
	}
	for _, c := range items {
		if strings.EqualFold(c.Name, input) {
			return c.ID
		}
	}
	for _, c := range items {
		if c.ID.String() == input {
			return c.ID
		}
	}
	return api.ID("")
}

func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseOptionalFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalDuration(s string) (*api.Duration, error) {
	if s == "" {
		return nil, nil
	}
	d, err := api.ParseDurationInput(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
