package counter

import (
	"log/slog"
	"slices"
)

// WordCount pairs a distinct word with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FrequencyTable maps each distinct word to its occurrence count and
// remembers the order in which words were first seen.
// A table is read-only once CountWords returns it.
type FrequencyTable struct {
	counts map[string]int
	order  []string // distinct words in first-seen order
	total  int
}

// CountWords builds a FrequencyTable from words, in order.
func CountWords(words []string) *FrequencyTable {
	table := &FrequencyTable{
		counts: make(map[string]int),
		order:  []string{},
	}

	for _, word := range words {
		if _, seen := table.counts[word]; !seen {
			table.order = append(table.order, word)
		}
		table.counts[word]++
		table.total++
	}

	slog.Debug("Frequency table built", "totalWords", table.total, "uniqueWords", len(table.order))
	return table
}

// Count returns the number of occurrences of word (0 if never seen).
func (ft *FrequencyTable) Count(word string) int {
	return ft.counts[word]
}

// Words returns the distinct words in first-seen order.
func (ft *FrequencyTable) Words() []string {
	return slices.Clone(ft.order)
}

// Total returns the sum of all counts.
func (ft *FrequencyTable) Total() int {
	return ft.total
}

// Unique returns the number of distinct words.
func (ft *FrequencyTable) Unique() int {
	return len(ft.order)
}

// MostCommon returns up to n words ordered by descending count.
// Words with equal counts keep their first-seen order.
// n <= 0 yields an empty slice; n larger than Unique yields every word.
func (ft *FrequencyTable) MostCommon(n int) []WordCount {
	if n <= 0 || len(ft.order) == 0 {
		return []WordCount{}
	}

	ranked := make([]WordCount, 0, len(ft.order))
	for _, word := range ft.order {
		ranked = append(ranked, WordCount{Word: word, Count: ft.counts[word]})
	}

	// stable sort keeps first-seen order among ties
	slices.SortStableFunc(ranked, func(a, b WordCount) int {
		return b.Count - a.Count
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
