// Package report formats word statistics for output.
//
// The text format is fixed and line-oriented:
//
//	Total words: 7
//	Unique words: 5
//	Most frequent words (top 5):
//	'the': 2
//	...
//	Long words (4 or more letters): 5
//
// Markdown and JSON renderings carry the same figures.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/chriscorrea/wordfreq/internal/counter"
)

// DefaultTopN is how many frequent words a report lists by default.
const DefaultTopN = 5

// Format defines the output format for reports
type Format int

const (
	// plain text output format (default)
	Text Format = iota
	// markdown output format
	Markdown
	// JSON output format
	JSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case Markdown:
		return "Markdown"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Options control how many words are ranked and what counts as long.
type Options struct {
	TopN      int
	MinLength int
}

// DefaultOptions returns TopN 5 and MinLength 4.
func DefaultOptions() Options {
	return Options{TopN: DefaultTopN, MinLength: counter.DefaultMinLength}
}

// Extended holds optional whole-text unit counts.
type Extended struct {
	Characters    int    `json:"characters"`
	Tokens        int    `json:"tokens"`
	TokenEncoding string `json:"tokenEncoding"`
}

// Report is the complete set of statistics for one analysis run.
type Report struct {
	TotalWords  int                 `json:"totalWords"`
	UniqueWords int                 `json:"uniqueWords"`
	TopN        int                 `json:"topN"`
	TopWords    []counter.WordCount `json:"topWords"`
	MinLength   int                 `json:"minLength"`
	LongWords   int                 `json:"longWords"`
	Extended    *Extended           `json:"extended,omitempty"`
}

// Build assembles a Report from a frequency table and the long-word list.
func Build(table *counter.FrequencyTable, longWords []string, opts Options) Report {
	return Report{
		TotalWords:  table.Total(),
		UniqueWords: table.Unique(),
		TopN:        opts.TopN,
		TopWords:    table.MostCommon(opts.TopN),
		MinLength:   opts.MinLength,
		LongWords:   len(longWords),
	}
}

// PrintReport writes the fixed text report for table and longWords to w.
func PrintReport(w io.Writer, table *counter.FrequencyTable, longWords []string, topN, minLength int) error {
	r := Build(table, longWords, Options{TopN: topN, MinLength: minLength})
	return r.Write(w, Text)
}

// Write renders the report to w in the given format.
func (r Report) Write(w io.Writer, format Format) error {
	var out string
	switch format {
	case Markdown:
		out = r.markdown()
	case JSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		out = string(data) + "\n"
	default:
		out = r.text()
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r Report) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total words: %d\n", r.TotalWords)
	fmt.Fprintf(&b, "Unique words: %d\n", r.UniqueWords)
	fmt.Fprintf(&b, "Most frequent words (top %d):\n", r.TopN)
	for _, wc := range r.TopWords {
		fmt.Fprintf(&b, "'%s': %d\n", wc.Word, wc.Count)
	}
	fmt.Fprintf(&b, "Long words (%d or more letters): %d\n", r.MinLength, r.LongWords)

	if r.Extended != nil {
		fmt.Fprintf(&b, "Characters: %d\n", r.Extended.Characters)
		fmt.Fprintf(&b, "Tokens (%s): %d\n", r.Extended.TokenEncoding, r.Extended.Tokens)
	}
	return b.String()
}

func (r Report) markdown() string {
	var b strings.Builder
	b.WriteString("## Word statistics\n\n")
	fmt.Fprintf(&b, "- **Total words:** %d\n", r.TotalWords)
	fmt.Fprintf(&b, "- **Unique words:** %d\n", r.UniqueWords)
	fmt.Fprintf(&b, "- **Long words (%d or more letters):** %d\n", r.MinLength, r.LongWords)
	if r.Extended != nil {
		fmt.Fprintf(&b, "- **Characters:** %d\n", r.Extended.Characters)
		fmt.Fprintf(&b, "- **Tokens (%s):** %d\n", r.Extended.TokenEncoding, r.Extended.Tokens)
	}

	fmt.Fprintf(&b, "\n### Most frequent words (top %d)\n\n", r.TopN)
	if len(r.TopWords) == 0 {
		b.WriteString("_none_\n")
		return b.String()
	}

	b.WriteString("| Rank | Word | Count |\n| ---: | --- | ---: |\n")
	for i, wc := range r.TopWords {
		// pipes would break the table row
		word := strings.ReplaceAll(wc.Word, "|", `\|`)
		fmt.Fprintf(&b, "| %d | `%s` | %d |\n", i+1, word, wc.Count)
	}
	return b.String()
}
