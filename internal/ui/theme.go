package ui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used across views.
type Theme struct {
	Name string

	Title       lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	Dim         lipgloss.Style
	Label       lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	FormFocus   lipgloss.Style
	FormBlur    lipgloss.Style
}

func hearthTheme() Theme {
	accent := lipgloss.Color("208") // ember orange
	return Theme{
		Name:        "Hearth",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(accent).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("94")),
		Normal:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Label:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("180")),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FormFocus:   lipgloss.NewStyle().Foreground(accent),
		FormBlur:    lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	}
}

func slateTheme() Theme {
	accent := lipgloss.Color("75") // cool blue
	return Theme{
		Name:        "Slate",
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		TabActive:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("24")).Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("238")),
		Normal:      lipgloss.NewStyle().Foreground(lipgloss.Color("253")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Label:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110")),
		Error:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		FormFocus:   lipgloss.NewStyle().Foreground(accent),
		FormBlur:    lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
	}
}

var themes = []func() Theme{hearthTheme, slateTheme}

// themeByName returns the named theme, defaulting to the first.
func themeByName(name string) Theme {
	for _, build := range themes {
		if t := build(); t.Name == name {
			return t
		}
	}
	return themes[0]()
}

// nextTheme cycles to the theme after the named one.
func nextTheme(name string) Theme {
	for i, build := range themes {
		if t := build(); t.Name == name {
			return themes[(i+1)%len(themes)]()
		}
	}
	return themes[0]()
}
