// Package ui provides the terminal user interface for the Hearth application.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. A single Model holds all view state and
// reads collection data from state.Store snapshots; it never talks to the
// API client directly. Store operations run inside tea.Cmd functions and
// settle back into the update loop as opDoneMsg values, so the interface
// stays responsive while requests are in flight.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - ui.go: the Run entry point and program options
//   - app.go: the root Model, message dispatch, and mode transitions
//   - input.go: per-mode key handling for lists, detail, forms, and confirms
//   - commands.go: tea.Cmd wrappers around state.Store operations
//   - form.go: form construction, draft ingredient rows, and submission
//   - view.go: all rendering
//   - theme.go: lipgloss style sets and theme cycling
//   - keys.go: key bindings
//
// # View Modes
//
// Four modes share the screen body:
//
//   - List: one tab per resource (recipes, people, countries, ingredients)
//   - Detail: a single recipe with its linked ingredients
//   - Form: add/edit entry for any resource, with inline validation errors
//   - Confirm: y/n prompt guarding deletes
//
// Collection errors reported by the store are rendered in the status bar
// rather than interrupting the current view, and a failed form submission
// keeps the form open with everything the user typed intact.
package ui
