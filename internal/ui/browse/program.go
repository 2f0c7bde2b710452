package browse

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"quizbank/internal/gift"
)

// Run shows the browser on out and blocks until the user quits.
func Run(in io.Reader, out io.Writer, questions []gift.Question, opts Options) error {
	program := tea.NewProgram(
		NewModel(questions, opts),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
