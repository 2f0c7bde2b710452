package gift

// Type is the inferred kind of a question. It is derived from the parsed
// choices and body on every parse and never written to disk.
type Type int

const (
	Unknown Type = iota
	MultipleChoice
	TrueFalse
	FillInBlank
)

// String returns the stable name used in reports and exports.
func (t Type) String() string {
	switch t {
	case MultipleChoice:
		return "multiple-choice"
	case TrueFalse:
		return "true-false"
	case FillInBlank:
		return "fill-in-blank"
	default:
		return "unknown"
	}
}

// MarshalText encodes the type by name for JSON and YAML exports.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Types lists every type in report order.
func Types() []Type {
	return []Type{MultipleChoice, TrueFalse, FillInBlank, Unknown}
}

// Choice is one answer alternative of a question.
type Choice struct {
	Text    string `json:"text" yaml:"text"`
	Correct bool   `json:"correct" yaml:"correct"`
}

// Question is a parsed question block.
type Question struct {
	Title   string   `json:"title" yaml:"title"`
	Body    string   `json:"body" yaml:"body"`
	Choices []Choice `json:"choices" yaml:"choices"`
	Type    Type     `json:"type" yaml:"type"`
}

// Clone returns a deep copy of the question.
func (q Question) Clone() Question {
	out := q
	if q.Choices != nil {
		out.Choices = make([]Choice, len(q.Choices))
		copy(out.Choices, q.Choices)
	}
	return out
}

// CorrectCount returns the number of choices marked correct.
func (q Question) CorrectCount() int {
	count := 0
	for _, choice := range q.Choices {
		if choice.Correct {
			count++
		}
	}
	return count
}
