package counter

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// TokenEncoding is the tiktoken encoding used for token counts.
const TokenEncoding = "cl100k_base"

// TokenCounter counts BPE tokens using tiktoken.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	mu       sync.RWMutex // guards encoding
}

// NewTokenCounter loads the cl100k_base encoding.
// The first call may download the encoding's rank file.
func NewTokenCounter() (Counter, error) {
	slog.Debug("Initializing TokenCounter", "encoding", TokenEncoding)

	encoding, err := tiktoken.GetEncoding(TokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s encoding: %w", TokenEncoding, err)
	}

	return &TokenCounter{
		encoding: encoding,
	}, nil
}

// Count returns the number of tokens in text. Safe for concurrent use.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	tc.mu.RLock()
	defer tc.mu.RUnlock()

	// nil params: no special tokens allowed or disallowed
	tokenCount := len(tc.encoding.Encode(text, nil, nil))

	slog.Debug("Token count calculated", "textLength", len(text), "tokenCount", tokenCount)
	return tokenCount
}

// Name returns the name of this counting method (for logging and reports).
func (tc *TokenCounter) Name() string {
	return "tokens (" + TokenEncoding + ")"
}
