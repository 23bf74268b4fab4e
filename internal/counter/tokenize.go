package counter

import (
	"log/slog"
	"strings"
)

// SplitWords lowercases text and splits it on runs of whitespace.
// Punctuation stays attached to its word, so "end." and "end" are distinct.
// Empty input yields an empty, non-nil slice.
func SplitWords(text string) []string {
	words := strings.Fields(strings.ToLower(text))
	if words == nil {
		words = []string{}
	}

	slog.Debug("Text tokenized", "textLength", len(text), "wordCount", len(words))
	return words
}
