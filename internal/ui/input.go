package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthapp/hearth/internal/api"
)

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, keys.NextTab):
		m.tab = tabOrder[(int(m.tab)+1)%len(tabOrder)]
		return m, nil

	case key.Matches(msg, keys.PrevTab):
		m.tab = tabOrder[(int(m.tab)+len(tabOrder)-1)%len(tabOrder)]
		return m, nil

	case key.Matches(msg, keys.Recipes):
		m.tab = TabRecipes
		return m, nil
	case key.Matches(msg, keys.People):
		m.tab = TabPeople
		return m, nil
	case key.Matches(msg, keys.Countries):
		m.tab = TabCountries
		return m, nil
	case key.Matches(msg, keys.Ingredients):
		m.tab = TabIngredients
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.cursors[m.tab] > 0 {
			m.cursors[m.tab]--
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if m.cursors[m.tab] < m.listLen(m.tab)-1 {
			m.cursors[m.tab]++
		}
		return m, nil

	case key.Matches(msg, keys.Refresh):
		return m, tea.Batch(m.begin(), m.fetchAllCmd())

	case key.Matches(msg, keys.Escape):
		m.clearTabError()
		m.status = ""
		return m, nil

	case key.Matches(msg, keys.Open):
		if m.tab == TabRecipes {
			if r, ok := m.selectedRecipe(); ok {
				m.detailID = r.ID
				m.linkCursor = 0
				m.mode = modeDetail
			}
		}
		return m, nil

	case key.Matches(msg, keys.New):
		m.openForm(m.newFormForTab())
		return m, nil

	case key.Matches(msg, keys.Edit):
		return m.editSelected()

	case key.Matches(msg, keys.Delete):
		return m.confirmDeleteSelected()

	case key.Matches(msg, keys.MarkCooked):
		if m.tab == TabRecipes {
			if r, ok := m.selectedRecipe(); ok {
				return m, tea.Batch(m.begin(), m.markCookedCmd(r.ID))
			}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	links := m.store.RecipeIngredientsFor(m.detailID)
	switch {
	case key.Matches(msg, keys.Quit):
		m.savePrefs()
		return m, tea.Quit

	case key.Matches(msg, keys.Escape):
		m.mode = modeList
		m.detailID = ""
		return m, nil

	case key.Matches(msg, keys.Up):
		if m.linkCursor > 0 {
			m.linkCursor--
		}
		return m, nil
	case key.Matches(msg, keys.Down):
		if m.linkCursor < len(links)-1 {
			m.linkCursor++
		}
		return m, nil

	case key.Matches(msg, keys.MarkCooked):
		return m, tea.Batch(m.begin(), m.markCookedCmd(m.detailID))

	case key.Matches(msg, keys.Open):
		if m.linkCursor < len(links) {
			m.openForm(m.newLinkEditForm(links[m.linkCursor]))
		}
		return m, nil

	case key.Matches(msg, keys.Edit):
		if r, ok := m.recipeByID(m.detailID); ok {
			m.openForm(m.newRecipeForm(&r, modeDetail))
		}
		return m, nil

	case key.Matches(msg, keys.AddLink):
		m.openForm(m.newLinkForm(m.detailID))
		return m, nil

	case key.Matches(msg, keys.DropLink):
		if m.linkCursor < len(links) {
			link := links[m.linkCursor]
			name := m.ingredientName(link.Ingredient)
			m.confirm = &confirmState{
				prompt:   "Remove " + name + " from this recipe?",
				action:   m.deleteLinkCmd(link.ID),
				returnTo: modeDetail,
			}
			m.mode = modeConfirm
		}
		return m, nil

	case key.Matches(msg, keys.Delete):
		if r, ok := m.recipeByID(m.detailID); ok {
			m.confirm = &confirmState{
				prompt:   "Delete recipe \"" + r.Title + "\" and its ingredients?",
				action:   m.deleteRecipeCmd(r.ID),
				returnTo: modeList,
			}
			m.mode = modeConfirm
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Yes):
		if m.confirm == nil {
			m.mode = modeList
			return m, nil
		}
		action := m.confirm.action
		m.mode = m.confirm.returnTo
		m.confirm = nil
		return m, tea.Batch(m.begin(), action)

	case key.Matches(msg, keys.No), key.Matches(msg, keys.Quit):
		if m.confirm != nil {
			m.mode = m.confirm.returnTo
		} else {
			m.mode = modeList
		}
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	f := m.form
	if f == nil {
		m.mode = modeList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = f.returnTo
		m.form = nil
		return m, nil

	case key.Matches(msg, keys.AddDraft):
		if f.allowDrafts {
			f.addDraft(m.snapshot.Ingredients.Items)
		}
		return m, nil

	case key.Matches(msg, keys.Submit):
		// Enter moves between fields until the last one submits.
		if msg.String() == "enter" && f.focus < len(f.fields)-1 {
			f.focusField(f.focus + 1)
			return m, nil
		}
		cmd, err := m.submitForm(f)
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		return m, tea.Batch(m.begin(), cmd)

	case key.Matches(msg, keys.NextField):
		f.focusField((f.focus + 1) % len(f.fields))
		return m, nil

	case key.Matches(msg, keys.PrevField):
		f.focusField((f.focus + len(f.fields) - 1) % len(f.fields))
		return m, nil
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return m, cmd
}

func (m *Model) openForm(f *form) {
	m.form = f
	m.mode = modeForm
}

func (m *Model) selectedRecipe() (api.Recipe, bool) {
	items := m.snapshot.Recipes.Items
	if i := m.cursors[TabRecipes]; i < len(items) {
		return items[i], true
	}
	return api.Recipe{}, false
}

func (m *Model) recipeByID(id api.ID) (api.Recipe, bool) {
	for _, r := range m.snapshot.Recipes.Items {
		if r.ID == id {
			return r, true
		}
	}
	return api.Recipe{}, false
}

func (m Model) editSelected() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabRecipes:
		if r, ok := m.selectedRecipe(); ok {
			m.openForm(m.newRecipeForm(&r, modeList))
		}
	case TabPeople:
		items := m.snapshot.People.Items
		if i := m.cursors[TabPeople]; i < len(items) {
			p := items[i]
			m.openForm(m.newPersonForm(&p))
		}
	case TabIngredients:
		items := m.snapshot.Ingredients.Items
		if i := m.cursors[TabIngredients]; i < len(items) {
			ing := items[i]
			m.openForm(m.newIngredientForm(&ing))
		}
	case TabCountries:
		// Countries cannot be edited; the API has no update for them.
	}
	return m, nil
}

func (m Model) confirmDeleteSelected() (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabRecipes:
		if r, ok := m.selectedRecipe(); ok {
			m.confirm = &confirmState{
				prompt:   "Delete recipe \"" + r.Title + "\" and its ingredients?",
				action:   m.deleteRecipeCmd(r.ID),
				returnTo: modeList,
			}
			m.mode = modeConfirm
		}
	case TabPeople:
		items := m.snapshot.People.Items
		if i := m.cursors[TabPeople]; i < len(items) {
			p := items[i]
			m.confirm = &confirmState{
				prompt:   "Delete " + p.DisplayName() + "?",
				action:   m.deletePersonCmd(p.ID),
				returnTo: modeList,
			}
			m.mode = modeConfirm
		}
	case TabIngredients:
		items := m.snapshot.Ingredients.Items
		if i := m.cursors[TabIngredients]; i < len(items) {
			ing := items[i]
			m.confirm = &confirmState{
				prompt:   "Delete ingredient \"" + ing.Name + "\"?",
				action:   m.deleteIngredientCmd(ing.ID),
				returnTo: modeList,
			}
			m.mode = modeConfirm
		}
	case TabCountries:
		// Countries cannot be deleted; the API has no delete for them.
	}
	return m, nil
}

func (m *Model) newFormForTab() *form {
	switch m.tab {
	case TabPeople:
		return m.newPersonForm(nil)
	case TabCountries:
		return m.newCountryForm()
	case TabIngredients:
		return m.newIngredientForm(nil)
	default:
		return m.newRecipeForm(nil, modeList)
	}
}
