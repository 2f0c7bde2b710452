package exam

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"quizbank/internal/gift"
)

// Default exam size bounds.
const (
	DefaultMinQuestions = 15
	DefaultMaxQuestions = 20
)

var (
	// ErrDuplicateTitle indicates a question with the same title is already selected.
	ErrDuplicateTitle = errors.New("question already in exam")
	// ErrDraftFull indicates the draft already holds the maximum number of questions.
	ErrDraftFull = errors.New("exam is full")
	// ErrTooFewQuestions indicates the draft is below the minimum exam size.
	ErrTooFewQuestions = errors.New("exam has too few questions")
	// ErrTooManyQuestions indicates the draft is above the maximum exam size.
	ErrTooManyQuestions = errors.New("exam has too many questions")
	// ErrEmptyTitle indicates a question without a title was offered.
	ErrEmptyTitle = errors.New("question has no title")
)

// Limits bounds the number of questions in a finalized exam.
type Limits struct {
	Min int
	Max int
}

// DefaultLimits returns the standard 15 to 20 question bounds.
func DefaultLimits() Limits {
	return Limits{Min: DefaultMinQuestions, Max: DefaultMaxQuestions}
}

// Draft is the exam being assembled by one interactive session. It owns
// copies of the questions it holds, so reloading the bank never changes an
// already selected question.
type Draft struct {
	ID        string
	limits    Limits
	questions []gift.Question
}

// NewDraft returns an empty draft with a fresh session ID.
func NewDraft(limits Limits) *Draft {
	return &Draft{ID: uuid.NewString(), limits: limits}
}

// Limits returns the size bounds of the draft.
func (d *Draft) Limits() Limits {
	return d.limits
}

// Add appends a copy of q. Titles must be unique within a draft.
func (d *Draft) Add(q gift.Question) error {
	if q.Title == "" {
		return ErrEmptyTitle
	}
	if d.Contains(q.Title) {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, q.Title)
	}
	if d.limits.Max > 0 && len(d.questions) >= d.limits.Max {
		return fmt.Errorf("%w: limit is %d", ErrDraftFull, d.limits.Max)
	}
	d.questions = append(d.questions, q.Clone())
	return nil
}

// Remove drops the question with the given title and reports whether it was present.
func (d *Draft) Remove(title string) bool {
	for i, q := range d.questions {
		if q.Title == title {
			d.questions = append(d.questions[:i], d.questions[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a question with the title is selected.
func (d *Draft) Contains(title string) bool {
	for _, q := range d.questions {
		if q.Title == title {
			return true
		}
	}
	return false
}

// Len returns the number of selected questions.
func (d *Draft) Len() int {
	return len(d.questions)
}

// Questions returns copies of the selected questions in selection order.
func (d *Draft) Questions() []gift.Question {
	out := make([]gift.Question, 0, len(d.questions))
	for _, q := range d.questions {
		out = append(out, q.Clone())
	}
	return out
}

// Clear empties the draft.
func (d *Draft) Clear() {
	d.questions = nil
}

// Validate checks the draft against its size bounds.
func (d *Draft) Validate() error {
	n := len(d.questions)
	if n < d.limits.Min {
		return fmt.Errorf("%w: %d selected, at least %d required", ErrTooFewQuestions, n, d.limits.Min)
	}
	if d.limits.Max > 0 && n > d.limits.Max {
		return fmt.Errorf("%w: %d selected, at most %d allowed", ErrTooManyQuestions, n, d.limits.Max)
	}
	return nil
}

// Finalize validates the draft, writes it as an exam named name and clears
// the draft. It returns the written path.
func (d *Draft) Finalize(w *Writer, name string) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}
	path, err := w.Write(name, d.ID, d.questions)
	if err != nil {
		return "", err
	}
	d.Clear()
	return path, nil
}
