package counter

import (
	"log/slog"
	"unicode/utf8"
)

// DefaultMinLength is the shortest length at which a word counts as long.
const DefaultMinLength = 4

// FindLongWords returns every word whose character length is at least minLength,
// keeping duplicates and order. A minLength of 0 or less selects all words.
func FindLongWords(words []string, minLength int) []string {
	long := make([]string, 0, len(words))
	for _, word := range words {
		if utf8.RuneCountInString(word) >= minLength {
			long = append(long, word)
		}
	}

	slog.Debug("Long words filtered", "minLength", minLength, "words", len(words), "longWords", len(long))
	return long
}
