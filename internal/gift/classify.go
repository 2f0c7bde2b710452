package gift

import (
	"strings"
	"unicode"
)

// Classify infers the question type from the number of parsed choices, the
// body text and the raw block. The checks run in a fixed order: more than one
// choice always means MultipleChoice, even when the body reads like a
// true/false question.
func Classify(choiceCount int, body, block string) Type {
	switch {
	case choiceCount > 1:
		return MultipleChoice
	case mentionsTruthValue(body):
		return TrueFalse
	case hasEmptyBraces(block):
		return FillInBlank
	default:
		return Unknown
	}
}

func mentionsTruthValue(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "true") || strings.Contains(lower, "false")
}

// hasEmptyBraces reports whether block contains "{" followed by "}" with only
// whitespace in between.
func hasEmptyBraces(block string) bool {
	for i := 0; i < len(block); i++ {
		if block[i] != '{' {
			continue
		}
		rest := strings.TrimLeftFunc(block[i+1:], unicode.IsSpace)
		if strings.HasPrefix(rest, "}") {
			return true
		}
	}
	return false
}
