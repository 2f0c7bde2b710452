package browse

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizbank/internal/gift"
)

// Model renders a scrollable question table with a detail pane.
type Model struct {
	title      string
	questions  []gift.Question
	table      table.Model
	showDetail bool
	noColor    bool
}

// Options configures the browse model.
type Options struct {
	Title   string
	NoColor bool
	Height  int
}

// NewModel constructs a browse model over questions.
func NewModel(questions []gift.Question, opts Options) Model {
	height := opts.Height
	if height <= 0 {
		height = 15
	}
	t := table.New(
		table.WithColumns(columnsForWidth(0)),
		table.WithRows(rowsForQuestions(questions)),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		title:      opts.Title,
		questions:  questions,
		table:      t,
		showDetail: true,
		noColor:    opts.NoColor,
	}
}

// Init has no startup work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles navigation keys and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetColumns(columnsForWidth(typed.Width))
		m.table.SetHeight(max(typed.Height-detailHeight-4, 3))
		return m, nil
	case tea.KeyMsg:
		switch typed.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "enter", " ":
			m.showDetail = !m.showDetail
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m Model) View() string {
	parts := []string{
		renderHeader(m.title, len(m.questions), m.noColor),
		m.table.View(),
	}
	if m.showDetail {
		if q, ok := m.Selected(); ok {
			parts = append(parts, renderDetail(q, m.noColor))
		}
	}
	parts = append(parts, renderFooter(m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Selected returns the question under the cursor.
func (m Model) Selected() (gift.Question, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.questions) {
		return gift.Question{}, false
	}
	return m.questions[cursor], true
}
