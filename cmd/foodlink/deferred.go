package main

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter buffers log output while a TUI owns the terminal. Flush
// replays it one line at a time, so each zerolog event reaches the target
// writer as its own write.
type DeferredWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *DeferredWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

// Flush writes buffered lines to dst and empties the buffer.
func (w *DeferredWriter) Flush(dst io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.buf.Len() > 0 {
		line, err := w.buf.ReadBytes('\n')
		if len(line) > 0 {
			if _, werr := dst.Write(line); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
	}
	w.buf.Reset()
	return nil
}
