package gift

import "strings"

const (
	markerCorrect   = '='
	markerIncorrect = '~'
)

// Parse converts one block into a question.
//
// The title sits between the first two "::" delimiters, the body runs up to
// the first "{", and the choices are the "=" (correct) and "~" (incorrect)
// tokens between that brace and the next "}". A backslash is an ordinary character.
func Parse(block string) (Question, error) {
	title, rest, err := parseHeader(block)
	if err != nil {
		return Question{}, &ParseError{Err: err}
	}
	if title == "" {
		return Question{}, &ParseError{Err: ErrMissingTitle}
	}

	open := strings.IndexByte(rest, '{')
	body := rest
	if open >= 0 {
		body = rest[:open]
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return Question{}, &ParseError{Title: title, Err: ErrMissingBody}
	}
	if open < 0 {
		return Question{}, &ParseError{Title: title, Err: ErrMissingChoices}
	}

	section := rest[open+1:]
	end := strings.IndexByte(section, '}')
	if end < 0 {
		return Question{}, &ParseError{Title: title, Err: ErrUnterminatedChoices}
	}
	choices := scanChoices(section[:end])
	if len(choices) == 0 {
		return Question{}, &ParseError{Title: title, Err: ErrMissingChoices}
	}

	return Question{
		Title:   title,
		Body:    body,
		Choices: choices,
		Type:    Classify(len(choices), body, block),
	}, nil
}

// ParseAll splits raw text and parses every block, returning the questions
// that parsed and the number of blocks that did not.
func ParseAll(raw string) ([]Question, int) {
	blocks := Split(raw)
	questions := make([]Question, 0, len(blocks))
	skipped := 0
	for _, block := range blocks {
		q, err := Parse(block)
		if err != nil {
			skipped++
			continue
		}
		questions = append(questions, q)
	}
	return questions, skipped
}

// parseHeader returns the trimmed title and the text after the closing "::".
func parseHeader(block string) (string, string, error) {
	start := strings.Index(block, HeaderMarker)
	if start < 0 {
		return "", "", ErrMissingHeader
	}
	after := block[start+len(HeaderMarker):]
	end := strings.Index(after, HeaderMarker)
	if end < 0 {
		return "", "", ErrMissingHeader
	}
	return strings.TrimSpace(after[:end]), after[end+len(HeaderMarker):], nil
}

// scanChoices tokenizes a choice section in a single forward pass.
func scanChoices(section string) []Choice {
	var (
		choices []Choice
		text    strings.Builder
		marker  byte
	)
	emit := func() {
		if marker == 0 {
			return
		}
		if value := strings.TrimSpace(text.String()); value != "" {
			choices = append(choices, Choice{Text: value, Correct: marker == markerCorrect})
		}
	}
	for i := 0; i < len(section); i++ {
		c := section[i]
		switch {
		case c == markerCorrect || c == markerIncorrect:
			emit()
			marker = c
			text.Reset()
		default:
			text.WriteByte(c)
		}
	}
	emit()
	return choices
}
