package game

import (
	"io"
	"strings"
	"sync"
)

// WriterLines writes each batch to an io.Writer as newline separated words
type WriterLines struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterLines creates a LineWriter backed by w
func NewWriterLines(w io.Writer) *WriterLines {
	return &WriterLines{w: w}
}

// WriteLines writes the batch followed by a trailing newline
func (l *WriterLines) WriteLines(words []string) error {
	if len(words) == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := io.WriteString(l.w, strings.Join(words, "\n")+"\n")
	return err
}

var _ LineWriter = (*WriterLines)(nil)
