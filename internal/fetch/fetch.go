// Package fetch loads the text that wordfreq analyzes.
// Sources may be local files, standard input ("-"), or http(s) URLs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Size limits; the whole source is held in memory.
const (
	MaxFileSizeBytes = 50 * 1024 * 1024  // 50MB limit for files and stdin
	MaxHTTPSizeBytes = 100 * 1024 * 1024 // 100MB limit for HTTP content (may not have Content-Length)
)

// HTTPRequestTimeout bounds a whole URL fetch.
const HTTPRequestTimeout = 30 * time.Second

var (
	HTTPDialTimeout           = HTTPRequestTimeout / 6
	HTTPTLSTimeout            = HTTPRequestTimeout / 6
	HTTPResponseHeaderTimeout = HTTPRequestTimeout / 2
)

// FileAccessError reports a local file that is missing, unreadable, or unusable.
type FileAccessError struct {
	Path string // file path as given
	Op   string // "stat", "open", "read"
	Err  error  // underlying cause
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot %s file %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		// content of exactly the limit is fine; only a further byte is an overflow
		var extra [1]byte
		n, err = l.ReadCloser.Read(extra[:])
		if n > 0 {
			return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
		}
		return 0, err
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// httpClient is shared across fetches and safe for concurrent use.
var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: HTTPDialTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPTLSTimeout,
		ResponseHeaderTimeout: HTTPResponseHeaderTimeout,
		DisableKeepAlives:     true,
	},
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// GetContent opens source for reading. The caller must close the result.
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// Local file failures are returned as *FileAccessError.
func GetContent(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case source == "-":
		slog.Debug("Reading from stdin")
		return &limitedReadCloser{
			ReadCloser: io.NopCloser(os.Stdin),
			N:          MaxFileSizeBytes,
			source:     "stdin",
		}, nil
	case IsURL(source):
		return fetchURL(ctx, source)
	default:
		return fetchFile(source)
	}
}

// ReadText returns the entire content of source as a string.
// The underlying handle is closed on every path.
func ReadText(ctx context.Context, source string) (string, error) {
	reader, err := GetContent(ctx, source)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		if IsURL(source) || source == "-" {
			return "", fmt.Errorf("failed to read %q: %w", source, err)
		}
		return "", &FileAccessError{Path: source, Op: "read", Err: err}
	}

	slog.Debug("Source loaded", "source", source, "bytes", len(data))
	return string(data), nil
}

// fetchURL retrieves content from an HTTP or HTTPS URL.
func fetchURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "wordfreq/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %s", url, resp.Status)
	}

	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > MaxHTTPSizeBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)", size, MaxHTTPSizeBytes)
		}
	}

	slog.Debug("URL fetched", "url", url, "status", resp.StatusCode)
	return &limitedReadCloser{
		ReadCloser: resp.Body,
		N:          MaxHTTPSizeBytes,
		source:     url,
	}, nil
}

// fetchFile opens a local file after checking it is a regular file within the size limit.
func fetchFile(path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "stat", Err: err}
	}

	if fileInfo.IsDir() {
		return nil, &FileAccessError{Path: path, Op: "open", Err: fmt.Errorf("is a directory")}
	}

	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, &FileAccessError{
			Path: path,
			Op:   "open",
			Err:  fmt.Errorf("file is too large (%d bytes > %d bytes limit)", fileInfo.Size(), MaxFileSizeBytes),
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Op: "open", Err: err}
	}

	slog.Debug("File opened", "path", path, "size", fileInfo.Size())
	return file, nil
}
