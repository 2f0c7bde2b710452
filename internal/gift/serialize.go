package gift

import "strings"

// Serialize renders questions in the on-disk format, one block per question,
// separated by a blank line.
func Serialize(questions []Question) string {
	blocks := make([]string, 0, len(questions))
	for _, q := range questions {
		blocks = append(blocks, Format(q))
	}
	return strings.Join(blocks, "\n\n")
}

// Format renders a single question block.
//
// Fill-in-blank questions get a trailing empty "{}" so the type survives a
// re-parse.
func Format(q Question) string {
	var b strings.Builder
	b.WriteString(HeaderMarker)
	b.WriteString(q.Title)
	b.WriteString(HeaderMarker)
	b.WriteString(q.Body)
	b.WriteString("{\n")
	for _, choice := range q.Choices {
		if choice.Correct {
			b.WriteByte(markerCorrect)
		} else {
			b.WriteByte(markerIncorrect)
		}
		b.WriteString(choice.Text)
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	if q.Type == FillInBlank {
		b.WriteString("\n{}")
	}
	return b.String()
}
