// Package app contains the core application logic for the wordfreq CLI tool.
// It runs the analysis pipeline and is kept separate from CLI concerns.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/chriscorrea/wordfreq/internal/classify"
	"github.com/chriscorrea/wordfreq/internal/counter"
	"github.com/chriscorrea/wordfreq/internal/extract"
	"github.com/chriscorrea/wordfreq/internal/fetch"
	"github.com/chriscorrea/wordfreq/internal/report"
	"github.com/chriscorrea/wordfreq/internal/spinner"
)

// DefaultSource is analyzed when no source is given.
const DefaultSource = "sample.txt"

// progress receives the spinner while remote sources load.
var progress io.Writer = os.Stderr

// Config holds all configuration options for one analysis run.
type Config struct {
	Source       string        // file path, URL, or "-" for stdin
	TopN         int           // how many frequent words to list
	MinLength    int           // shortest length counted as a long word
	OutputFormat report.Format // text (default), markdown or json
	Selector     string        // CSS selector for URL sources
	IncludeAll   bool          // skip readability and boilerplate filtering for URL sources
	Extended     bool          // add character and token counts
	Quiet        bool          // suppress progress output
	Debug        bool
}

// DefaultConfig returns the configuration used by AnalyzeFile.
func DefaultConfig() Config {
	opts := report.DefaultOptions()
	return Config{
		Source:       DefaultSource,
		TopN:         opts.TopN,
		MinLength:    opts.MinLength,
		OutputFormat: report.Text,
	}
}

// AnalyzeFile reports on path using the default top-N and long-word length.
func AnalyzeFile(ctx context.Context, path string) (string, error) {
	cfg := DefaultConfig()
	cfg.Source = path
	return Run(ctx, cfg)
}

// Run executes the analysis and returns the rendered report.
//
// Processing Pipeline:
// 1. Load the source text
// 2. Split it into lowercase words
// 3. Count word frequencies and filter long words, both over the full word list
// 4. Render the report
//
// Nothing is returned on error, so a failed run never yields a partial report.
func Run(ctx context.Context, cfg Config) (string, error) {
	if cfg.Source == "" {
		cfg.Source = DefaultSource
	}

	// step 1: load
	text, err := loadText(ctx, cfg)
	if err != nil {
		return "", err
	}

	// step 2: tokenize
	words := counter.SplitWords(text)

	// step 3: count and filter
	table := counter.CountWords(words)
	longWords := counter.FindLongWords(words, cfg.MinLength)

	// step 4: report
	r := report.Build(table, longWords, report.Options{TopN: cfg.TopN, MinLength: cfg.MinLength})
	if cfg.Extended {
		r.Extended, err = extendedCounts(text)
		if err != nil {
			return "", err
		}
	}

	var out strings.Builder
	if err := r.Write(&out, cfg.OutputFormat); err != nil {
		return "", err
	}

	slog.Debug("Analysis complete", "source", cfg.Source, "totalWords", r.TotalWords, "uniqueWords", r.UniqueWords)
	return out.String(), nil
}

// loadText reads local sources verbatim; URL sources are reduced to readable text.
func loadText(ctx context.Context, cfg Config) (string, error) {
	if !fetch.IsURL(cfg.Source) {
		// FileAccessError already names the path
		return fetch.ReadText(ctx, cfg.Source)
	}

	var text string
	load := func() error {
		var err error
		text, err = loadWebPage(ctx, cfg)
		return err
	}

	var err error
	if !cfg.Quiet && spinner.Enabled(progress) {
		err = spinner.While(ctx, progress, "Fetching "+cfg.Source+"...", load)
	} else {
		err = load()
	}
	if err != nil {
		return "", fmt.Errorf("failed to load %q: %w", cfg.Source, err)
	}
	return text, nil
}

// loadWebPage fetches a page, extracts its text and drops boilerplate paragraphs
func loadWebPage(ctx context.Context, cfg Config) (string, error) {
	reader, err := fetch.GetContent(ctx, cfg.Source)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	baseURL, _ := url.Parse(cfg.Source) // nil is fine for readability

	text, err := extract.ToText(reader, cfg.Selector, cfg.IncludeAll, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}

	if cfg.IncludeAll {
		return text, nil
	}

	paragraphs := classify.NewFilter().Keep(classify.SplitParagraphs(text))
	return strings.Join(paragraphs, "\n\n"), nil
}

// extendedCounts measures the raw text in characters and tokens
func extendedCounts(text string) (*report.Extended, error) {
	counts := make(map[counter.CountingMethod]int, 2)
	for _, method := range []counter.CountingMethod{counter.Characters, counter.Tokens} {
		c, err := counter.NewCounter(method)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s counter: %w", method, err)
		}
		counts[method] = c.Count(text)
		slog.Debug("Extended count", "counter", c.Name(), "count", counts[method])
	}

	return &report.Extended{
		Characters:    counts[counter.Characters],
		Tokens:        counts[counter.Tokens],
		TokenEncoding: counter.TokenEncoding,
	}, nil
}
