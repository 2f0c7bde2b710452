package stats

import (
	"context"

	"quizbank/internal/bank"
)

// Report is the frequency analysis of a bank or exam.
type Report struct {
	Name      string
	Total     int
	Skipped   int
	ByType    []Count
	BySource  []Count
	ByCorrect []Count
}

// Analyze loads b into a fresh in-memory store and computes its report.
func Analyze(ctx context.Context, name string, b bank.Bank) (Report, error) {
	store, err := Open(ctx)
	if err != nil {
		return Report{}, err
	}
	defer store.Close()

	if err := store.Ingest(ctx, b); err != nil {
		return Report{}, err
	}
	report := Report{Name: name, Skipped: b.Skipped}
	if report.Total, err = store.Total(ctx); err != nil {
		return Report{}, err
	}
	if report.ByType, err = store.TypeCounts(ctx); err != nil {
		return Report{}, err
	}
	if report.BySource, err = store.SourceCounts(ctx); err != nil {
		return Report{}, err
	}
	if report.ByCorrect, err = store.CorrectCounts(ctx); err != nil {
		return Report{}, err
	}
	return report, nil
}

// maxCount returns the largest bucket, at least 1.
func maxCount(counts []Count) int {
	best := 1
	for _, c := range counts {
		best = max(best, c.Count)
	}
	return best
}
