// Package spinner draws a progress indicator on stderr while a slow source loads.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Frames are drawn in order, one per tick.
var Frames = []string{"◜", "◠", "◝", "◞", "◡", "◟"}

const defaultDelay = 100 * time.Millisecond

// Spinner is a spinning progress indicator with a message.
type Spinner struct {
	writer  io.Writer
	delay   time.Duration
	message string
	active  bool
	cancel  context.CancelFunc
	mu      sync.RWMutex
	wg      sync.WaitGroup
}

// New creates a stopped spinner that writes to writer.
func New(writer io.Writer, message string) *Spinner {
	return &Spinner{
		writer:  writer,
		delay:   defaultDelay,
		message: message,
	}
}

// Enabled reports whether w is an interactive terminal worth animating.
func Enabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// While runs fn with a spinner shown on w, and stops the spinner before returning
// fn's error. The spinner stops early if ctx is cancelled.
func While(ctx context.Context, w io.Writer, message string, fn func() error) error {
	s := New(w, message)
	s.Start(ctx)
	defer s.Stop()
	return fn()
}

// Start begins the animation; a second call while running is a no-op.
func (s *Spinner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.active = true

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop halts the animation, waits for the drawing goroutine and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	if Enabled(s.writer) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

func (s *Spinner) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			message := s.message
			s.mu.RUnlock()

			fmt.Fprintf(s.writer, "\r%s %s", Frames[frame%len(Frames)], message)
		}
	}
}
