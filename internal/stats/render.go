package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

// RenderOptions controls text rendering.
type RenderOptions struct {
	NoColor bool
}

// RenderText writes the report as labelled bar charts.
func RenderText(w io.Writer, report Report, opts RenderOptions) error {
	var b strings.Builder
	b.WriteString(title(fmt.Sprintf("%s: %d questions", report.Name, report.Total), opts.NoColor))
	b.WriteByte('\n')
	if report.Skipped > 0 {
		fmt.Fprintf(&b, "%d malformed blocks skipped\n", report.Skipped)
	}
	writeSection(&b, "By type", report.ByType, opts)
	if len(report.BySource) > 1 {
		writeSection(&b, "By file", report.BySource, opts)
	}
	writeSection(&b, "By correct choices", report.ByCorrect, opts)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, heading string, counts []Count, opts RenderOptions) {
	if len(counts) == 0 {
		return
	}
	b.WriteByte('\n')
	b.WriteString(title(heading, opts.NoColor))
	b.WriteByte('\n')
	width := 0
	for _, c := range counts {
		width = max(width, len(c.Label))
	}
	peak := maxCount(counts)
	for _, c := range counts {
		fmt.Fprintf(b, "  %-*s %s %d\n", width, c.Label, bar(c.Count, peak, opts.NoColor), c.Count)
	}
}

// bar scales count against peak into a fixed-width bar.
func bar(count, peak int, noColor bool) string {
	n := count * barWidth / peak
	if count > 0 && n == 0 {
		n = 1
	}
	text := strings.Repeat("#", n)
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Render(text)
}

func title(text string, noColor bool) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Render(text)
}
