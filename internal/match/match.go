// Package match implements the substring matcher behind the job title
// autocomplete.
package match

import (
	"strings"
	"unicode/utf8"
)

// MinQueryLen is the shortest query that produces suggestions. Single
// characters match too much of the corpus to be useful.
const MinQueryLen = 2

// Suggestion is one autocomplete candidate. MatchStart is the byte offset of
// the first case-insensitive occurrence of the query inside Text, so a
// renderer can emphasize that span. Only the first occurrence is reported.
type Suggestion struct {
	Text       string
	MatchStart int
}

// Match scans corpus in order for candidates containing query
// (case-insensitive) and returns at most limit suggestions. Corpus order is
// preserved; there is no relevance re-ranking. Queries shorter than
// MinQueryLen return nil.
func Match(corpus []string, query string, limit int) []Suggestion {
	if utf8.RuneCountInString(query) < MinQueryLen || limit <= 0 {
		return nil
	}

	q := strings.ToLower(query)
	var out []Suggestion
	for _, candidate := range corpus {
		idx := strings.Index(strings.ToLower(candidate), q)
		if idx < 0 {
			continue
		}
		out = append(out, Suggestion{Text: candidate, MatchStart: idx})
		if len(out) == limit {
			break
		}
	}
	return out
}

// Span splits the suggestion text around the matched query span for
// highlight rendering.
func (s Suggestion) Span(query string) (before, matched, after string) {
	end := s.MatchStart + len(query)
	if s.MatchStart < 0 || end > len(s.Text) {
		return s.Text, "", ""
	}
	return s.Text[:s.MatchStart], s.Text[s.MatchStart:end], s.Text[end:]
}
