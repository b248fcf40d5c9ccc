package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hearthapp/hearth/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	ThemeName string
	StartTab  string
	PrefsPath string
}

// Run starts the TUI and blocks until the user exits or the context is
// cancelled.
func Run(opts Options) error {
	program := tea.NewProgram(
		newModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(opts.Context),
	)
	_, err := program.Run()
	if err != nil && opts.Context.Err() != nil {
		// Cancelled via signal; a clean exit, not a failure.
		return nil
	}
	return err
}
