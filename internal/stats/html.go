package stats

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ReportPage renders the report as a standalone HTML page.
func ReportPage(report Report) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"><title>%s</title>%s</head><body>\n",
			templ.EscapeString(report.Name), pageStyle); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>%s</h1>\n<p class=\"summary\">%d questions, %d malformed blocks skipped</p>\n",
			templ.EscapeString(report.Name), report.Total, report.Skipped); err != nil {
			return err
		}
		sections := []struct {
			heading string
			counts  []Count
		}{
			{"By type", report.ByType},
			{"By file", report.BySource},
			{"By correct choices", report.ByCorrect},
		}
		for _, section := range sections {
			if err := histogramTable(section.heading, section.counts).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// histogramTable renders one section as a table with proportional bars.
func histogramTable(heading string, counts []Count) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(counts) == 0 {
			return nil
		}
		if _, err := fmt.Fprintf(w, "<h2>%s</h2>\n<table>\n", templ.EscapeString(heading)); err != nil {
			return err
		}
		peak := maxCount(counts)
		for _, c := range counts {
			if _, err := fmt.Fprintf(w,
				"<tr><th>%s</th><td><div class=\"bar\" style=\"width: %d%%\"></div></td><td>%d</td></tr>\n",
				templ.EscapeString(c.Label), c.Count*100/peak, c.Count); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n")
		return err
	})
}

const pageStyle = `<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 40rem; }
th { text-align: left; width: 12rem; font-weight: normal; }
td { padding: 0.2rem; }
.bar { background: #3b82f6; height: 1rem; }
.summary { color: #555; }
</style>`
