package cat

import (
	"io"
)

// ReadAutoCloser wraps an io.Reader, and closes it automatically, if closable,
// as soon as it reports end of stream or a read error. Closing is idempotent,
// so callers may still Close explicitly.
type ReadAutoCloser struct {
	r      io.Reader
	closed bool
}

// NewReadAutoCloser returns a ReadAutoCloser wrapping the supplied Reader. If
// the Reader is not a Closer, it is never closed.
func NewReadAutoCloser(r io.Reader) *ReadAutoCloser {
	if _, ok := r.(io.Closer); !ok {
		r = io.NopCloser(r)
	}
	return &ReadAutoCloser{r: r}
}

// Read reads up to len(b) bytes from the data source into b. At end of file,
// Read returns 0, io.EOF, and the data source is closed. Reads after that keep
// returning 0, io.EOF.
func (a *ReadAutoCloser) Read(b []byte) (n int, err error) {
	if a.r == nil || a.closed {
		return 0, io.EOF
	}
	n, err = a.r.Read(b)
	if err != nil {
		a.Close()
	}
	return n, err
}

// Close closes the data source associated with a, and returns the result of
// that close operation. Only the first call closes anything.
func (a *ReadAutoCloser) Close() error {
	if a.r == nil || a.closed {
		return nil
	}
	a.closed = true
	return a.r.(io.Closer).Close()
}
