package fetch_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriscorrea/wordfreq/internal/fetch"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadText(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(t *testing.T) string
		expectError bool
		expectData  string
	}{
		{
			name: "local file",
			setupFunc: func(t *testing.T) string {
				return writeTempFile(t, "The quick brown fox.\n")
			},
			expectData: "The quick brown fox.\n",
		},
		{
			name: "empty file",
			setupFunc: func(t *testing.T) string {
				return writeTempFile(t, "")
			},
			expectData: "",
		},
		{
			name: "http URL success",
			setupFunc: func(t *testing.T) string {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte("test content from http"))
				}))
				t.Cleanup(server.Close)
				return server.URL
			},
			expectData: "test content from http",
		},
		{
			name: "http URL with error status",
			setupFunc: func(t *testing.T) string {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				}))
				t.Cleanup(server.Close)
				return server.URL
			},
			expectError: true,
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.txt")
			},
			expectError: true,
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := tt.setupFunc(t)

			text, err := fetch.ReadText(context.Background(), source)
			if tt.expectError {
				if err == nil {
					t.Errorf("ReadText(%q) expected error but got none", source)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadText(%q) error = %v", source, err)
			}
			if text != tt.expectData {
				t.Errorf("ReadText(%q) = %q, want %q", source, text, tt.expectData)
			}
		})
	}
}

func TestFileAccessError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	_, err := fetch.ReadText(context.Background(), path)
	if err == nil {
		t.Fatal("ReadText() expected error for missing file")
	}

	var accessErr *fetch.FileAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("ReadText() error = %T, want *fetch.FileAccessError", err)
	}
	if accessErr.Path != path {
		t.Errorf("FileAccessError.Path = %q, want %q", accessErr.Path, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false, want true")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error message %q should mention the path", err.Error())
	}
}

func TestGetContentSourceTypes(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		expectType string
	}{
		{"stdin detection", "-", "stdin"},
		{"http URL detection", "http://invalid-domain-that-definitely-does-not-exist.invalid", "http"},
		{"file path detection", "/path/to/file.txt", "file"},
		{"relative file path detection", "file-that-does-not-exist.txt", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := fetch.GetContent(context.Background(), tt.source)

			switch tt.expectType {
			case "stdin":
				if err != nil {
					t.Fatalf("GetContent() with stdin should not error, got %v", err)
				}
				reader.Close()
			case "http":
				if err == nil || !strings.Contains(err.Error(), "failed to fetch URL") {
					t.Errorf("GetContent() URL error should mention URL fetching, got %v", err)
				}
			case "file":
				var accessErr *fetch.FileAccessError
				if !errors.As(err, &accessErr) {
					t.Errorf("GetContent() file error = %v, want *fetch.FileAccessError", err)
				}
			}
		})
	}
}

func TestGetContentHTTPContentLengthLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "999999999999")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	reader, err := fetch.GetContent(context.Background(), server.URL)
	if err == nil {
		io.Copy(io.Discard, reader)
		reader.Close()
		t.Fatal("GetContent() expected error for oversized Content-Length")
	}
	if !strings.Contains(err.Error(), "too large") {
		t.Errorf("GetContent() error = %v, want size limit error", err)
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		source   string
		expected bool
	}{
		{"http://example.com", true},
		{"https://example.com/page", true},
		{"sample.txt", false},
		{"-", false},
		{"ftp://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := fetch.IsURL(tt.source); got != tt.expected {
				t.Errorf("IsURL(%q) = %v, want %v", tt.source, got, tt.expected)
			}
		})
	}
}
