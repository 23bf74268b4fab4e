package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/wordfreq/internal/app"
	"github.com/chriscorrea/wordfreq/internal/counter"
	"github.com/chriscorrea/wordfreq/internal/fetch"
	"github.com/chriscorrea/wordfreq/internal/report"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	topN, _ := cmd.Flags().GetInt("top")
	minLength, _ := cmd.Flags().GetInt("min-length")
	selector, _ := cmd.Flags().GetString("selector")
	mdFlag, _ := cmd.Flags().GetBool("md")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	extended, _ := cmd.Flags().GetBool("extended")
	includeAll, _ := cmd.Flags().GetBool("include-all")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	// determine output format; --text is the default
	outputFormat := report.Text
	switch {
	case mdFlag:
		outputFormat = report.Markdown
	case jsonFlag:
		outputFormat = report.JSON
	}

	source := app.DefaultSource
	if len(args) > 0 {
		source = args[0]
	}

	if selector != "" && !fetch.IsURL(source) {
		return app.Config{}, fmt.Errorf("--selector only applies to URL sources")
	}

	return app.Config{
		Source:       source,
		TopN:         topN,
		MinLength:    minLength,
		OutputFormat: outputFormat,
		Selector:     selector,
		IncludeAll:   includeAll,
		Extended:     extended,
		Quiet:        quiet,
		Debug:        debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// newRootCmd builds the wordfreq command with its flags
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordfreq [file]",
		Short: "Word frequency statistics for a text file",
		Long: `Wordfreq reports total words, unique words, the most frequent words and the number of long words in a text file.

Words are whitespace-separated and lowercased; punctuation stays part of the word.
The source defaults to sample.txt. Use "-" for standard input or pass a URL to analyze a web page.

Examples:
  wordfreq
  wordfreq notes.txt --top 10 --min-length 6
  cat notes.txt | wordfreq - --json
  wordfreq https://example.com/article`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := buildConfig(cmd, args)
			if err != nil {
				return fmt.Errorf("configuration error: %w", err)
			}

			setupLogger(config.Debug)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			result, err := app.Run(ctx, config)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}

	rootCmd.Flags().IntP("top", "n", report.DefaultTopN, "Number of most frequent words to list")
	rootCmd.Flags().IntP("min-length", "m", counter.DefaultMinLength, "Minimum length of a long word")

	// output format flags
	rootCmd.Flags().Bool("text", false, "Output in plain text format (default)")
	rootCmd.Flags().Bool("md", false, "Output in Markdown format")
	rootCmd.Flags().Bool("json", false, "Output in JSON format")
	rootCmd.MarkFlagsMutuallyExclusive("text", "md", "json")

	rootCmd.Flags().BoolP("extended", "x", false, "Also report character and token counts")

	// web page sources
	rootCmd.Flags().StringP("selector", "s", "", "CSS selector for URL sources")
	rootCmd.Flags().BoolP("include-all", "i", false, "Count all page text without readability or boilerplate filtering")

	// other flags
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
