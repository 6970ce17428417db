// Package ui is the terminal dashboard over a processing session.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"PoliceDigest/internal/domain"
)

var (
	brand   = lipgloss.Color("#1E3A8A")
	muted   = lipgloss.Color("#6B7280")
	danger  = lipgloss.Color("#DC2626")
	warning = lipgloss.Color("#D97706")
	calm    = lipgloss.Color("#16A34A")
	info    = lipgloss.Color("#2563EB")
)

// Styles groups the lipgloss styles used by the dashboard.
type Styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Header   lipgloss.Style
	Stat     lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Notice   lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the dashboard look.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(brand).Padding(0, 1),
		Subtle:   lipgloss.NewStyle().Foreground(muted),
		Header:   lipgloss.NewStyle().Bold(true).Foreground(brand),
		Stat:     lipgloss.NewStyle().Bold(true),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(info),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(danger),
		Notice:   lipgloss.NewStyle().Foreground(calm),
		Help:     lipgloss.NewStyle().Foreground(muted).Italic(true),
	}
}

func priorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return lipgloss.NewStyle().Bold(true).Foreground(danger)
	case domain.PriorityMedium:
		return lipgloss.NewStyle().Bold(true).Foreground(warning)
	case domain.PriorityLow:
		return lipgloss.NewStyle().Bold(true).Foreground(calm)
	default:
		return lipgloss.NewStyle().Foreground(muted)
	}
}
