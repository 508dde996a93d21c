package pkg

import (
	"log/slog"

	"github.com/sahilm/fuzzy"
)

// Suggest returns the candidate that best fuzzy-matches word, ranked the way
// an interactive completer would rank it.
func Suggest(word string, candidates []string) (string, bool) {
	if word == "" || len(candidates) == 0 {
		return "", false
	}

	matches := fuzzy.Find(word, candidates)
	if len(matches) == 0 {
		return "", false
	}

	return matches[0].Str, true
}

// WithSuggestion adds a "suggest" attribute to err naming the candidate
// closest to word, if any candidate matches at all.
func WithSuggestion(err *Error, word string, candidates []string) *Error {
	if s, ok := Suggest(word, candidates); ok {
		return err.With(slog.String("suggest", s))
	}

	return err
}
