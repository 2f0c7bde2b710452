package bank

import (
	"strings"

	"quizbank/internal/gift"
)

// Match is a search hit and its 0-based index in the searched slice.
type Match struct {
	Index    int
	Question gift.Question
}

// Search returns the questions whose body contains keyword, ignoring case.
// A blank keyword matches nothing.
func Search(questions []gift.Question, keyword string) []gift.Question {
	hits := SearchIndex(questions, keyword)
	if hits == nil {
		return nil
	}
	matches := make([]gift.Question, 0, len(hits))
	for _, hit := range hits {
		matches = append(matches, hit.Question)
	}
	return matches
}

// SearchIndex is Search keeping each hit's index, so callers can refer back
// to a question even when titles repeat.
func SearchIndex(questions []gift.Question, keyword string) []Match {
	needle := strings.ToLower(strings.TrimSpace(keyword))
	if needle == "" {
		return nil
	}
	var hits []Match
	for i, q := range questions {
		if strings.Contains(strings.ToLower(q.Body), needle) {
			hits = append(hits, Match{Index: i, Question: q})
		}
	}
	return hits
}

// Page returns the 1-based page of questions and the total page count.
// Out of range pages are clamped.
func Page(questions []gift.Question, page, size int) ([]gift.Question, int) {
	if size <= 0 {
		size = len(questions)
	}
	if len(questions) == 0 || size == 0 {
		return nil, 0
	}
	pages := (len(questions) + size - 1) / size
	page = min(max(page, 1), pages)
	start := (page - 1) * size
	end := min(start+size, len(questions))
	return questions[start:end], pages
}
