// Package logger provides the error sink for listing failures.
//
// Failures during a listing are recoverable: a broken entry or an
// unreadable path produces one line on the error sink and the run
// continues. The sink is safe for reuse across a whole traversal and
// counts what it has reported.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// ErrorSink writes per-path listing failures to a writer, one line per
// failure, in the form "ls: <detail>". A nil writer silently discards
// messages. Color output is enabled automatically when the writer is a
// TTY-backed os.Stderr or os.Stdout.
type ErrorSink struct {
	mu          sync.Mutex
	writer      io.Writer
	colorOutput bool
	count       int
}

// NewErrorSink creates an ErrorSink writing to w.
func NewErrorSink(w io.Writer) *ErrorSink {
	return &ErrorSink{
		writer:      w,
		colorOutput: isTerminal(w),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
// Returns true for os.Stdout and os.Stderr when they are TTYs.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if w == os.Stdout || w == os.Stderr {
		// color's built-in TTY detection also honors NO_COLOR
		return !color.NoColor
	}
	return false
}

// Report writes one failure line. The error text carries the affected
// path (os errors already embed it).
func (s *ErrorSink) Report(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	if s.writer == nil {
		return
	}

	prefix := "ls:"
	if s.colorOutput {
		prefix = color.New(color.FgRed).Sprint(prefix)
	}
	fmt.Fprintf(s.writer, "%s %v\n", prefix, err)
}

// Flush reports a batch of collected failures in order, typically the
// per-entry errors gathered during one directory scan.
func (s *ErrorSink) Flush(errs []error) {
	for _, err := range errs {
		s.Report(err)
	}
}

// Count returns the number of failures reported so far.
func (s *ErrorSink) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}
