package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/simonbystrom/warroom/internal/config"
)

// Styles holds every lipgloss style the dashboard renders with, built
// once from the configured colors.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Selected     lipgloss.Style
	PriorityHigh lipgloss.Style
	PriorityMed  lipgloss.Style
	PriorityLow  lipgloss.Style
	Border       lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Team         lipgloss.Style
}

// NewStyles builds Styles from configured colors.
func NewStyles(c config.Colors) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Header)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(c.SelectedBG)).
			Foreground(lipgloss.Color(c.SelectedFG)),
		PriorityHigh: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.PriorityHigh)).
			Bold(true),
		PriorityMed: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.PriorityMed)),
		PriorityLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.PriorityLow)),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(1, 2),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Help)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Error)).
			Bold(true),
		Team: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Team)),
	}
}
