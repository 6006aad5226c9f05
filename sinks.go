package cat

import (
	"bufio"
	"io"
)

// Sink is the buffered, append-only writer that all output goes through. The
// first failure to write or flush is kept, and every later call returns it
// without touching the destination again.
type Sink struct {
	w   *bufio.Writer
	n   int64
	err error
}

// NewSink returns a Sink writing to w through a buffer of size bytes.
func NewSink(w io.Writer, size int) *Sink {
	return &Sink{w: bufio.NewWriterSize(w, size)}
}

// Write buffers p, passing full buffers on to the destination. It returns the
// number of bytes accepted and, on failure, a *WriteError.
func (s *Sink) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err != nil {
		s.err = &WriteError{Err: err}
	}
	return n, s.err
}

// Flush passes any buffered output on to the destination. On failure it
// returns a *WriteError.
func (s *Sink) Flush() error {
	if s.err != nil {
		return s.err
	}
	if err := s.w.Flush(); err != nil {
		s.err = &WriteError{Err: err}
	}
	return s.err
}

// Written returns the number of bytes accepted so far.
func (s *Sink) Written() int64 {
	return s.n
}
