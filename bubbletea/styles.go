package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/foodlink-la/foodlink"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	UserMsg   lipgloss.Style
	Assistant lipgloss.Style
	Title     lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Tag       lipgloss.Style
	Card      lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t foodlink.Theme) Styles {
	return Styles{
		UserMsg:   lipgloss.NewStyle().Foreground(ansiColor(t.UserMsg)).Bold(true),
		Assistant: lipgloss.NewStyle().Foreground(ansiColor(t.Assistant)),
		Title:     lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:   lipgloss.NewStyle().Foreground(ansiColor(t.Success)).Bold(true),
		Warning:   lipgloss.NewStyle().Foreground(ansiColor(t.Warning)),
		Muted:     lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:    lipgloss.NewStyle().Foreground(ansiColor(t.Accent)),
		Tag:       lipgloss.NewStyle().Foreground(ansiColor(t.Tag)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ansiColor(t.Muted)).
			Padding(0, 1),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
