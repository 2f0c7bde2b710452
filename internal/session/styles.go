package session

import "github.com/charmbracelet/lipgloss"

type styles struct {
	heading lipgloss.Style
	correct lipgloss.Style
	err     lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{heading: plain, correct: plain, err: plain}
	}
	return styles{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		correct: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
