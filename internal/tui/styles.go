// Package tui is the terminal front-end: an address converter tab and a
// salary regression tab in one bubbletea program.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#4f46e5")
	accent  = lipgloss.Color("#9333ea")
	muted   = lipgloss.Color("#6b7280")
	danger  = lipgloss.Color("#e53935")
	warning = lipgloss.Color("#FFC107")
	success = lipgloss.Color("#8BC34A")
)

// Styles holds the lipgloss styles used by every tab.
type Styles struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Output    lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Help      lipgloss.Style
	Button    lipgloss.Style
	Selected  lipgloss.Style
	Card      lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Tab:       lipgloss.NewStyle().Padding(0, 2).Foreground(muted),
		ActiveTab: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(primary),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		Label:     lipgloss.NewStyle().Foreground(muted),
		Output:    lipgloss.NewStyle().Foreground(success),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(danger),
		Warning:   lipgloss.NewStyle().Foreground(warning),
		Help:      lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		Button:    lipgloss.NewStyle().Padding(0, 1).Foreground(muted),
		Selected:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(accent),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
	}
}
