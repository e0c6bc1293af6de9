package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
)

// ------- TUI styling (Lip Gloss) -------
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tomorrowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(13)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// deadlineStyle: red up to and including today, orange for tomorrow.
func deadlineStyle(u model.Urgency) lipgloss.Style {
	switch u {
	case model.UrgencyOverdue, model.UrgencyToday:
		return overdueStyle
	case model.UrgencyTomorrow:
		return tomorrowStyle
	default:
		return lipgloss.NewStyle()
	}
}

func panelString(inner string) string { return frameStyle.Render(inner) }
