package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthapp/hearth/internal/api"
	"github.com/hearthapp/hearth/internal/prefs"
	"github.com/hearthapp/hearth/internal/state"
)

// Tab identifies one of the resource list views.
type Tab int

const (
	TabRecipes Tab = iota
	TabPeople
	TabCountries
	TabIngredients
)

var tabOrder = []Tab{TabRecipes, TabPeople, TabCountries, TabIngredients}

func (t Tab) title() string {
	switch t {
	case TabRecipes:
		return "Recipes"
	case TabPeople:
		return "People"
	case TabCountries:
		return "Countries"
	case TabIngredients:
		return "Ingredients"
	}
	return "?"
}

func tabFromName(name string) Tab {
	switch name {
	case "people":
		return TabPeople
	case "countries":
		return TabCountries
	case "ingredients":
		return TabIngredients
	default:
		return TabRecipes
	}
}

func (t Tab) prefName() string {
	switch t {
	case TabPeople:
		return "people"
	case TabCountries:
		return "countries"
	case TabIngredients:
		return "ingredients"
	default:
		return "recipes"
	}
}

// viewMode selects what the body of the screen shows.
type viewMode int

const (
	modeList viewMode = iota
	modeDetail
	modeForm
	modeConfirm
)

// confirmState is a pending destructive action awaiting y/n.
type confirmState struct {
	prompt   string
	action   tea.Cmd
	returnTo viewMode
}

// opDoneMsg reports a settled store operation.
type opDoneMsg struct {
	label string
	err   error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	store     *state.Store
	prefsPath string

	theme Theme
	keys  keyMap

	width  int
	height int
	ready  bool

	tab        Tab
	mode       viewMode
	cursors    map[Tab]int
	linkCursor int
	detailID   api.ID

	snapshot state.Snapshot
	spinner  spinner.Model
	busy     bool
	status   string
	showHelp bool

	form    *form
	confirm *confirmState
}

func newModel(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		ctx:       opts.Context,
		store:     opts.Store,
		prefsPath: opts.PrefsPath,
		theme:     themeByName(opts.ThemeName),
		keys:      defaultKeyMap(),
		tab:       tabFromName(opts.StartTab),
		cursors:   map[Tab]int{},
		snapshot:  opts.Store.Snapshot(),
		spinner:   sp,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case opDoneMsg:
		return m.handleOpDone(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) handleOpDone(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.snapshot = m.store.Snapshot()
	m.clampCursors()

	if msg.err != nil {
		m.status = ""
		if m.mode == modeForm && m.form != nil {
			// Leave the user on the form so nothing typed is lost.
			m.form.err = msg.err.Error()
		}
		return m, nil
	}

	m.status = msg.label
	if m.mode == modeForm && m.form != nil {
		returnTo := m.form.returnTo
		m.form = nil
		m.mode = returnTo
	}
	if m.mode == modeDetail && !m.hasRecipe(m.detailID) {
		// The open recipe was deleted; fall back to the list.
		m.mode = modeList
		m.detailID = ""
	}
	return m, nil
}

func (m *Model) hasRecipe(id api.ID) bool {
	for _, r := range m.snapshot.Recipes.Items {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (m *Model) clampCursors() {
	for _, t := range tabOrder {
		if n := m.listLen(t); m.cursors[t] >= n {
			m.cursors[t] = max(0, n-1)
		}
	}
	if links := m.store.RecipeIngredientsFor(m.detailID); m.linkCursor >= len(links) {
		m.linkCursor = max(0, len(links)-1)
	}
}

func (m *Model) listLen(t Tab) int {
	switch t {
	case TabRecipes:
		return len(m.snapshot.Recipes.Items)
	case TabPeople:
		return len(m.snapshot.People.Items)
	case TabCountries:
		return len(m.snapshot.Countries.Items)
	case TabIngredients:
		return len(m.snapshot.Ingredients.Items)
	}
	return 0
}

// begin marks an operation in flight and starts the spinner.
func (m *Model) begin() tea.Cmd {
	m.busy = true
	m.status = ""
	return m.spinner.Tick
}

func (m *Model) cycleTheme() {
	m.theme = nextTheme(m.theme.Name)
	m.savePrefs()
}

func (m *Model) savePrefs() {
	// Preference persistence is best-effort, same as the data cache.
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme:    m.theme.Name,
		StartTab: m.tab.prefName(),
	})
}

// clearTabError drops the active tab's error flag so the status bar stops
// showing a stale failure.
func (m *Model) clearTabError() {
	switch m.tab {
	case TabRecipes:
		m.store.ClearRecipeError()
		m.store.ClearRecipeIngredientError()
	case TabPeople:
		m.store.ClearPersonError()
	case TabCountries:
		m.store.ClearCountryError()
	case TabIngredients:
		m.store.ClearIngredientError()
	}
	m.snapshot = m.store.Snapshot()
}

// currentError returns the active tab's collection error, if any.
func (m *Model) currentError() string {
	var col string
	switch m.tab {
	case TabRecipes:
		col = m.snapshot.Recipes.Err
	case TabPeople:
		col = m.snapshot.People.Err
	case TabCountries:
		col = m.snapshot.Countries.Err
	case TabIngredients:
		col = m.snapshot.Ingredients.Err
	}
	if col == "" && (m.mode == modeDetail || m.tab == TabRecipes) {
		col = m.snapshot.RecipeIngredients.Err
	}
	return col
}

var _ tea.Model = Model{}
