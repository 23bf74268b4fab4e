// Package counter provides the word counting core of the wordfreq CLI tool.
//
// Text is tokenized with SplitWords (lowercase, whitespace-delimited, punctuation
// kept), tallied into a FrequencyTable that remembers first-seen order, and
// filtered by length with FindLongWords.
//
// Usage Example:
//
//	words := counter.SplitWords(text)
//	table := counter.CountWords(words)
//	top := table.MostCommon(5)
//	long := counter.FindLongWords(words, counter.DefaultMinLength)
//
// The package also carries unit counters (characters, tokens) behind the
// Counter interface; these back the extended statistics of a report.
package counter

import "fmt"

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Characters counts runes including whitespace
	Characters CountingMethod = iota
	// Tokens uses tiktoken with cl100k_base encoding
	Tokens
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Characters:
		return "characters"
	case Tokens:
		return "tokens"
	default:
		return "unknown"
	}
}

// NewCounter returns the Counter for method.
// Returns an error for unknown methods or if the counter cannot be initialized
// (e.g., tiktoken encoding fails).
func NewCounter(method CountingMethod) (Counter, error) {
	switch method {
	case Characters:
		return NewCharCounter(), nil
	case Tokens:
		return NewTokenCounter()
	default:
		return nil, fmt.Errorf("unknown counting method: %d", int(method))
	}
}
