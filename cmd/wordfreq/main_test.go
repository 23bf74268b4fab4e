package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriscorrea/wordfreq/internal/report"
)

func TestBuildConfig(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantSource  string
		wantTopN    int
		wantMinLen  int
		wantFormat  report.Format
		expectError bool
	}{
		{
			name:       "defaults",
			args:       nil,
			wantSource: "sample.txt",
			wantTopN:   5,
			wantMinLen: 4,
			wantFormat: report.Text,
		},
		{
			name:       "overrides",
			args:       []string{"notes.txt", "--top", "10", "-m", "6", "--json"},
			wantSource: "notes.txt",
			wantTopN:   10,
			wantMinLen: 6,
			wantFormat: report.JSON,
		},
		{
			name:       "markdown and negative values",
			args:       []string{"-", "--md", "--top=-2", "--min-length=0"},
			wantSource: "-",
			wantTopN:   -2,
			wantMinLen: 0,
			wantFormat: report.Markdown,
		},
		{
			name:        "selector on local file",
			args:        []string{"notes.txt", "--selector", "article"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags(%q) error = %v", tt.args, err)
			}

			cfg, err := buildConfig(cmd, cmd.Flags().Args())
			if tt.expectError {
				if err == nil {
					t.Errorf("buildConfig() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("buildConfig() error = %v", err)
			}

			if cfg.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", cfg.Source, tt.wantSource)
			}
			if cfg.TopN != tt.wantTopN {
				t.Errorf("TopN = %d, want %d", cfg.TopN, tt.wantTopN)
			}
			if cfg.MinLength != tt.wantMinLen {
				t.Errorf("MinLength = %d, want %d", cfg.MinLength, tt.wantMinLen)
			}
			if cfg.OutputFormat != tt.wantFormat {
				t.Errorf("OutputFormat = %v, want %v", cfg.OutputFormat, tt.wantFormat)
			}
		})
	}
}

func TestRootCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("The quick brown fox. The fox runs."), 0o644); err != nil {
		t.Fatalf("Failed to write sample file: %v", err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path, "--top", "2"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	expected := "Total words: 7\nUnique words: 5\nMost frequent words (top 2):\n'the': 2\n'fox.': 2\nLong words (4 or more letters): 5\n"
	if out.String() != expected {
		t.Errorf("Execute() output =\n%s\nwant\n%s", out.String(), expected)
	}
}

func TestRootCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.txt")}, "missing.txt"},
		{"exclusive formats", []string{"x.txt", "--md", "--json"}, "none of the others"},
		{"too many args", []string{"a.txt", "b.txt"}, "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			if err == nil {
				t.Fatal("Execute() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Execute() error = %q, want it to contain %q", err.Error(), tt.contains)
			}
			if strings.Contains(out.String(), "Total words") {
				t.Errorf("Execute() should not print a report on error, got %q", out.String())
			}
		})
	}
}
