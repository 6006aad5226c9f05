package cat

import (
	"errors"
	"syscall"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrIsDirectory is reported, wrapped in an *OpenError, for a source that
	// names a directory. Nothing is read from it.
	ErrIsDirectory error = syscall.EISDIR

	// ErrInputIsOutput is reported, wrapped in an *OpenError, when a regular
	// input file is the file that output is being written to, and reading it
	// would never reach the end.
	ErrInputIsOutput = errors.New("input file is output file")
)

// OpenError records a source that could not be opened. The run continues with
// the next source.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string { return e.Name + ": " + Reason(e.Err) }

func (e *OpenError) Unwrap() error { return e.Err }

// ReadError records a source that failed part way through. Whatever was read
// before the failure has already been written; the run continues with the
// next source.
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string { return e.Name + ": " + Reason(e.Err) }

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError means the output is unusable. It ends the run immediately.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "write error: " + Reason(e.Err) }

func (e *WriteError) Unwrap() error { return e.Err }

// Reason returns the human-readable cause of err, without any operation or
// path decoration: "No such file or directory" rather than "open x: no such
// file or directory". System errors are capitalised the way the C library
// prints them.
func Reason(err error) string {
	if err == nil {
		return ""
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return capitalize(errno.Error())
	}
	return err.Error()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
