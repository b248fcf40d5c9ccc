package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n\n")

	switch m.mode {
	case modeDetail:
		b.WriteString(m.detailView())
	case modeForm:
		b.WriteString(m.formView())
	case modeConfirm:
		b.WriteString(m.confirmView())
	default:
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(m.statusView())
	if m.showHelp {
		b.WriteString("\n")
		b.WriteString(m.helpView())
	}
	return b.String()
}

func (m Model) headerView() string {
	tabs := make([]string, 0, len(tabOrder))
	for _, t := range tabOrder {
		label := fmt.Sprintf("%s (%d)", t.title(), m.listLen(t))
		if t == m.tab {
			tabs = append(tabs, m.theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(label))
		}
	}
	title := m.theme.Title.Render("Hearth")
	return title + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) listView() string {
	switch m.tab {
	case TabPeople:
		return m.peopleList()
	case TabCountries:
		return m.countriesList()
	case TabIngredients:
		return m.ingredientsList()
	default:
		return m.recipesList()
	}
}

func (m Model) recipesList() string {
	items := m.snapshot.Recipes.Items
	if len(items) == 0 {
		return m.emptyList("No recipes yet. Press a to add one.")
	}
	var b strings.Builder
	cursor := m.cursors[TabRecipes]
	for i, r := range items {
		meta := r.CuisineType
		if r.MealType != "" {
			if meta != "" {
				meta += " · "
			}
			meta += r.MealType
		}
		line := truncate(r.Title, m.width-30)
		if meta != "" {
			line += "  " + m.theme.Dim.Render(truncate(meta, 24))
		}
		if r.TimesCooked > 0 {
			line += m.theme.Dim.Render(fmt.Sprintf("  cooked %dx", r.TimesCooked))
		}
		b.WriteString(m.listRow(line, i == cursor))
	}
	return b.String()
}

func (m Model) peopleList() string {
	items := m.snapshot.People.Items
	if len(items) == 0 {
		return m.emptyList("No people yet. Press a to add one.")
	}
	var b strings.Builder
	cursor := m.cursors[TabPeople]
	for i, p := range items {
		line := p.DisplayName()
		if p.BirthDate != "" {
			dates := p.BirthDate
			if p.DeathDate != "" {
				dates += " to " + p.DeathDate
			}
			line += "  " + m.theme.Dim.Render(dates)
		}
		b.WriteString(m.listRow(line, i == cursor))
	}
	return b.String()
}

func (m Model) countriesList() string {
	items := m.snapshot.Countries.Items
	if len(items) == 0 {
		return m.emptyList("No countries yet. Press a to add one.")
	}
	var b strings.Builder
	cursor := m.cursors[TabCountries]
	for i, c := range items {
		line := c.Name
		if c.Region != "" {
			line += "  " + m.theme.Dim.Render(c.Region)
		}
		b.WriteString(m.listRow(line, i == cursor))
	}
	return b.String()
}

func (m Model) ingredientsList() string {
	items := m.snapshot.Ingredients.Items
	if len(items) == 0 {
		return m.emptyList("No ingredients yet. Press a to add one.")
	}
	var b strings.Builder
	cursor := m.cursors[TabIngredients]
	for i, ing := range items {
		line := ing.Name
		if ing.Unit != "" {
			line += "  " + m.theme.Dim.Render("("+ing.Unit+")")
		}
		b.WriteString(m.listRow(line, i == cursor))
	}
	return b.String()
}

func (m Model) listRow(line string, selected bool) string {
	if selected {
		return m.theme.Selected.Render("> "+line) + "\n"
	}
	return m.theme.Normal.Render("  "+line) + "\n"
}

func (m Model) emptyList(hint string) string {
	return m.theme.Dim.Render(hint) + "\n"
}

func (m Model) detailView() string {
	r, ok := m.recipeByID(m.detailID)
	if !ok {
		return m.theme.Dim.Render("Recipe not found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(r.Title))
	b.WriteString("\n\n")
	if r.Description != "" {
		b.WriteString(m.theme.Normal.Render(r.Description))
		b.WriteString("\n\n")
	}

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(m.theme.Label.Render(fmt.Sprintf("%-12s", label)))
		b.WriteString(m.theme.Normal.Render(value))
		b.WriteString("\n")
	}
	row("Servings", intValue(r.Servings))
	row("Prep", durationValue(r.PrepTime))
	row("Cook", durationValue(r.CookTime))
	row("Total", durationValue(r.TotalTime))
	row("Meal", r.MealType)
	row("Cuisine", r.CuisineType)
	row("Difficulty", r.Difficulty)
	row("Source", r.SourceName)
	row("URL", r.SourceURL)
	if r.Rating != nil {
		row("Rating", fmt.Sprintf("%.1f / 5", *r.Rating))
	}
	row("Cooked", fmt.Sprintf("%d times", r.TimesCooked))
	row("By", m.personName(r.Person))
	row("Country", m.countryName(r.Country))

	b.WriteString("\n")
	b.WriteString(m.theme.Label.Render("Ingredients"))
	b.WriteString("\n")
	links := m.store.RecipeIngredientsFor(r.ID)
	if len(links) == 0 {
		b.WriteString(m.theme.Dim.Render("  none linked; press i to add one"))
		b.WriteString("\n")
	}
	for i, link := range links {
		line := m.ingredientName(link.Ingredient)
		if link.Quantity != nil {
			line = fmt.Sprintf("%g %s", *link.Quantity, line)
		}
		b.WriteString(m.listRow(line, i == m.linkCursor))
	}
	return b.String()
}

func (m Model) formView() string {
	f := m.form
	if f == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(f.title))
	b.WriteString("\n\n")
	for i, fl := range f.fields {
		style := m.theme.FormBlur
		if i == f.focus {
			style = m.theme.FormFocus
		}
		b.WriteString(style.Render(fmt.Sprintf("%-14s", fl.label)))
		b.WriteString(fl.input.View())
		b.WriteString("\n")
	}

	if f.allowDrafts && len(f.drafts) > 0 {
		b.WriteString("\n")
		b.WriteString(m.theme.Label.Render("Pending ingredients"))
		b.WriteString("\n")
		for _, d := range f.drafts {
			line := "  " + d.Name
			if d.Quantity != nil {
				line = fmt.Sprintf("  %g %s", *d.Quantity, d.Name)
			}
			b.WriteString(m.theme.Normal.Render(line))
			b.WriteString("\n")
		}
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Error.Render(f.err))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) confirmView() string {
	if m.confirm == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.Normal.Render(m.confirm.prompt))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("y confirm · n cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusView() string {
	var parts []string
	if m.busy {
		parts = append(parts, m.spinner.View()+" working")
	}
	if errText := m.currentError(); errText != "" {
		parts = append(parts, m.theme.Error.Render(errText))
	} else if m.status != "" {
		parts = append(parts, m.theme.Status.Render(m.status))
	}
	if len(parts) == 0 {
		parts = append(parts, m.theme.Help.Render("? help"))
	}
	return strings.Join(parts, "  ")
}

func (m Model) helpView() string {
	lines := []string{
		"tab/shift+tab or 1-4: switch tabs · j/k: move · r: refresh",
		"a: add · e: edit · d: delete · enter: open recipe · c: mark cooked",
		"detail: i add ingredient · enter edit quantity · x remove ingredient · esc back",
		"form: tab/shift+tab fields · enter on last field saves · ctrl+n add ingredient row",
		"t: cycle theme · q: quit",
	}
	return m.theme.Help.Render(strings.Join(lines, "\n"))
}
