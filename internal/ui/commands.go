package ui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthapp/hearth/internal/api"
)

// fetchAllCmd refreshes every collection concurrently and settles once all
// five attempts finish, like the bootstrap refresh.
func (m *Model) fetchAllCmd() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		fetches := []func(context.Context) error{
			store.FetchRecipes,
			store.FetchPeople,
			store.FetchCountries,
			store.FetchIngredients,
			store.FetchRecipeIngredients,
		}
		var wg sync.WaitGroup
		for _, fetch := range fetches {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = fetch(ctx) // failures land on the collection's error flag
			}()
		}
		wg.Wait()
		return opDoneMsg{label: "refreshed"}
	}
}

func (m *Model) createRecipeCmd(r api.Recipe, drafts []draftIngredient) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		created, err := store.CreateRecipe(ctx, r)
		if err != nil {
			return opDoneMsg{label: "create recipe", err: err}
		}
		// Draft rows lose their temporary identifiers here: each becomes a
		// real link under the server-assigned recipe id.
		for _, d := range drafts {
			link := api.RecipeIngredient{
				Recipe:     created.ID,
				Ingredient: d.Ingredient,
				Quantity:   d.Quantity,
			}
			if _, err := store.CreateRecipeIngredient(ctx, link); err != nil {
				return opDoneMsg{label: "create recipe", err: err}
			}
		}
		return opDoneMsg{label: "recipe added"}
	}
}

func (m *Model) updateRecipeCmd(id api.ID, r api.Recipe) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.UpdateRecipe(ctx, id, r)
		return opDoneMsg{label: "recipe saved", err: err}
	}
}

// deleteRecipeCmd removes the recipe's ingredient links first, then the
// recipe itself. The server does not cascade.
func (m *Model) deleteRecipeCmd(id api.ID) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		if err := store.DeleteRecipeIngredientsByRecipe(ctx, id); err != nil {
			return opDoneMsg{label: "delete recipe", err: err}
		}
		err := store.DeleteRecipe(ctx, id)
		return opDoneMsg{label: "recipe deleted", err: err}
	}
}

func (m *Model) markCookedCmd(id api.ID) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.MarkRecipeCooked(ctx, id)
		return opDoneMsg{label: "marked as cooked", err: err}
	}
}

func (m *Model) createPersonCmd(p api.Person) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.CreatePerson(ctx, p)
		return opDoneMsg{label: "person added", err: err}
	}
}

func (m *Model) updatePersonCmd(id api.ID, p api.Person) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.UpdatePerson(ctx, id, p)
		return opDoneMsg{label: "person saved", err: err}
	}
}

func (m *Model) deletePersonCmd(id api.ID) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		err := store.DeletePerson(ctx, id)
		return opDoneMsg{label: "person deleted", err: err}
	}
}

func (m *Model) createCountryCmd(c api.Country) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.CreateCountry(ctx, c)
		return opDoneMsg{label: "country added", err: err}
	}
}

func (m *Model) createIngredientCmd(i api.Ingredient) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.CreateIngredient(ctx, i)
		return opDoneMsg{label: "ingredient added", err: err}
	}
}

func (m *Model) updateIngredientCmd(id api.ID, i api.Ingredient) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.UpdateIngredient(ctx, id, i)
		return opDoneMsg{label: "ingredient saved", err: err}
	}
}

func (m *Model) deleteIngredientCmd(id api.ID) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		err := store.DeleteIngredient(ctx, id)
		return opDoneMsg{label: "ingredient deleted", err: err}
	}
}

func (m *Model) createLinkCmd(ri api.RecipeIngredient) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.CreateRecipeIngredient(ctx, ri)
		return opDoneMsg{label: "ingredient linked", err: err}
	}
}

func (m *Model) updateLinkCmd(id api.ID, ri api.RecipeIngredient) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		_, err := store.UpdateRecipeIngredient(ctx, id, ri)
		return opDoneMsg{label: "ingredient updated", err: err}
	}
}

func (m *Model) deleteLinkCmd(id api.ID) tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		err := store.DeleteRecipeIngredient(ctx, id)
		return opDoneMsg{label: "ingredient removed", err: err}
	}
}
