package browse

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"quizbank/internal/gift"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Selected = lipgloss.NewStyle().Reverse(true)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// columnsForWidth sizes the title column to the terminal width.
func columnsForWidth(width int) []table.Column {
	const fixed = 4 + 16 + 8 + 8
	titleWidth := 30
	if width > fixed+titleWidth {
		titleWidth = width - fixed
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Title", Width: titleWidth},
		{Title: "Type", Width: 16},
		{Title: "Choices", Width: 8},
	}
}

// rowsForQuestions converts questions into table rows.
func rowsForQuestions(questions []gift.Question) []table.Row {
	rows := make([]table.Row, 0, len(questions))
	for i, q := range questions {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			formatTitle(q.Title),
			q.Type.String(),
			strconv.Itoa(len(q.Choices)),
		})
	}
	return rows
}

func formatTitle(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")
	const limit = 80
	if len(normalized) <= limit {
		return normalized
	}
	return normalized[:limit-3] + "..."
}
