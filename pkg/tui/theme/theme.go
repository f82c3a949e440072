// Package theme centralizes Lip Gloss styles for the planner TUI.
package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme groups the styles used across the calendar views.
type Theme struct {
	Tabs   TabsTheme
	Grid   GridTheme
	Chips  ChipTheme
	Footer FooterTheme
}

// TabsTheme styles the view-mode switcher in the header.
type TabsTheme struct {
	Title    lipgloss.Style
	Tab      lipgloss.Style
	Active   lipgloss.Style
	AnchorOn lipgloss.Style
}

// GridTheme styles calendar cells.
type GridTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Day      lipgloss.Style
	Busy     lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Past     lipgloss.Style
}

// ChipTheme styles task chips inside cells and lists.
type ChipTheme struct {
	Title    lipgloss.Style
	Done     lipgloss.Style
	Due      lipgloss.Style
	Selected lipgloss.Style
}

// FooterTheme styles the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Tabs: TabsTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Tab:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Active:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
			AnchorOn: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		},
		Grid: GridTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Busy:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
			Past:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		},
		Chips: ChipTheme{
			Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
			Due:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
			Selected: lipgloss.NewStyle().Reverse(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
