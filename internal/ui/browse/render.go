package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quizbank/internal/gift"
)

// detailHeight is the number of lines reserved below the table.
const detailHeight = 8

// renderHeader renders the title line.
func renderHeader(title string, count int, noColor bool) string {
	line := fmt.Sprintf("%d questions", count)
	if title != "" {
		line = title + " | " + line
	}
	return stylize(line, noColor, lipgloss.Color("33"))
}

// renderDetail renders the body and choices of one question.
func renderDetail(q gift.Question, noColor bool) string {
	var b strings.Builder
	b.WriteString(stylize(q.Title+" ("+q.Type.String()+")", noColor, lipgloss.Color("252")))
	b.WriteByte('\n')
	b.WriteString(q.Body)
	for _, choice := range q.Choices {
		b.WriteString("\n  ")
		if choice.Correct {
			b.WriteString(stylize("= "+choice.Text, noColor, lipgloss.Color("42")))
		} else {
			b.WriteString("~ " + choice.Text)
		}
	}
	return b.String()
}

// renderFooter renders the key help line.
func renderFooter(noColor bool) string {
	return stylize("up/down move | enter toggle details | q quit", noColor, lipgloss.Color("244"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
