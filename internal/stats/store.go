package stats

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"

	"quizbank/internal/bank"
	"quizbank/internal/gift"
)

// schemaDDL holds the analytics table definition.
//
//go:embed schema.sql
var schemaDDL string

// Store is an in-memory DuckDB database holding one bank's questions.
type Store struct {
	db *sql.DB
}

// Open creates an empty in-memory store with the schema applied.
func Open(ctx context.Context) (*Store, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping duckdb: %w", err)
	}
	if _, err := db.ExecContext(ctx, schemaDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ingest inserts every question of b, tagged with its source file name.
func (s *Store) Ingest(ctx context.Context, b bank.Bank) error {
	if s == nil || s.db == nil {
		return errors.New("stats: store is closed")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin ingest: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO questions (position, source, title, qtype, choices, correct) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, q := range b.Questions {
		if _, err := stmt.ExecContext(ctx, i, sourceOf(b, i), q.Title, q.Type.String(), len(q.Choices), q.CorrectCount()); err != nil {
			return fmt.Errorf("insert question %q: %w", q.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit ingest: %w", err)
	}
	return nil
}

// sourceOf maps a question index back to the file it came from. Questions
// are stored in source order, so the per-file counts partition the slice.
func sourceOf(b bank.Bank, index int) string {
	offset := 0
	for _, src := range b.Sources {
		if index < offset+src.Parsed {
			return filepath.Base(src.Path)
		}
		offset += src.Parsed
	}
	return ""
}

// Count is one histogram bucket.
type Count struct {
	Label string
	Count int
}

// TypeCounts returns the number of questions per type, in report order,
// including types with no questions.
func (s *Store) TypeCounts(ctx context.Context) ([]Count, error) {
	found, err := s.groupCounts(ctx, `SELECT qtype, count(*) FROM questions GROUP BY qtype`)
	if err != nil {
		return nil, fmt.Errorf("count by type: %w", err)
	}
	byLabel := make(map[string]int, len(found))
	for _, c := range found {
		byLabel[c.Label] = c.Count
	}
	out := make([]Count, 0, len(gift.Types()))
	for _, t := range gift.Types() {
		out = append(out, Count{Label: t.String(), Count: byLabel[t.String()]})
	}
	return out, nil
}

// SourceCounts returns the number of questions per source file.
func (s *Store) SourceCounts(ctx context.Context) ([]Count, error) {
	out, err := s.groupCounts(ctx, `SELECT source, count(*) FROM questions GROUP BY source ORDER BY min(position)`)
	if err != nil {
		return nil, fmt.Errorf("count by source: %w", err)
	}
	return out, nil
}

// CorrectCounts returns how many questions have 0, 1, 2... correct choices.
func (s *Store) CorrectCounts(ctx context.Context) ([]Count, error) {
	out, err := s.groupCounts(ctx,
		`SELECT CAST(correct AS VARCHAR), count(*) FROM questions GROUP BY correct ORDER BY correct`)
	if err != nil {
		return nil, fmt.Errorf("count by correct choices: %w", err)
	}
	return out, nil
}

// Total returns the number of stored questions.
func (s *Store) Total(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM questions`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return total, nil
}

func (s *Store) groupCounts(ctx context.Context, query string) ([]Count, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Label, &c.Count); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
