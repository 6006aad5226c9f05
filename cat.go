// Package cat concatenates byte streams and displays them, the way the
// classic cat utility does: it reads a list of files, standard input, pipes,
// devices and sockets in order, and writes their contents to one output,
// optionally making non-printing characters, tabs and line ends visible,
// numbering lines, and squeezing runs of blank lines.
//
// The sources are treated as one logical stream. Line numbers and blank-line
// squeezing carry on from one source to the next, and a source that does not
// end with a newline runs straight on into the next one:
//
//	out, err := cat.New(cat.Options{Number: cat.NumberAll}).Run(cat.Sources(os.Args[1:]))
//
// A source that cannot be opened or read is recorded in the Outcome and
// skipped; the rest are still processed. Only a failure to write the output
// stops a run early.
package cat

import (
	"errors"
	"io"
	"os"
)

// DefaultBufferSize is the read chunk size, and the output buffer size, used
// unless WithBufferSize says otherwise.
const DefaultBufferSize = 32 * 1024

// Cat is a configured concatenation run.
type Cat struct {
	opts    Options
	stdin   io.Reader
	stdout  io.Writer
	bufSize int
	report  func(Failure)
}

// New returns a *Cat that applies opts, reading standard input from os.Stdin
// and writing to os.Stdout.
func New(opts Options) *Cat {
	return &Cat{
		opts:    opts,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		bufSize: DefaultBufferSize,
	}
}

// WithStdin makes r the source read for the "-" operand.
func (c *Cat) WithStdin(r io.Reader) *Cat {
	c.stdin = r
	return c
}

// WithStdout takes an io.Writer, and sends the output there instead of the
// default os.Stdout. This is primarily useful for testing.
func (c *Cat) WithStdout(w io.Writer) *Cat {
	c.stdout = w
	return c
}

// WithBufferSize sets the read chunk size and output buffer size. Values
// below 1 select DefaultBufferSize.
func (c *Cat) WithBufferSize(size int) *Cat {
	if size < 1 {
		size = DefaultBufferSize
	}
	c.bufSize = size
	return c
}

// WithReporter arranges for report to be called with each failure as soon as
// it happens, after any output already produced has been flushed. Failures
// are still collected in the Outcome.
func (c *Cat) WithReporter(report func(Failure)) *Cat {
	c.report = report
	return c
}

// Failure is a source that could not be opened or read, together with the
// *OpenError or *ReadError explaining why.
type Failure struct {
	Source Source
	Err    error
}

// Outcome is the result of a run.
type Outcome struct {
	// Failures lists the sources that failed, in the order they were met.
	Failures []Failure
	// BytesWritten counts everything sent to the output, including what was
	// written for sources that later failed.
	BytesWritten int64
}

// Failed reports whether any source failed.
func (o Outcome) Failed() bool {
	return len(o.Failures) > 0
}

// Err returns the errors of all failures joined together, or nil if there
// were none.
func (o Outcome) Err() error {
	errs := make([]error, 0, len(o.Failures))
	for _, f := range o.Failures {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// Run reads each source in turn and writes its transformed contents to the
// output. Sources that fail are recorded in the returned Outcome and do not
// stop the run. The error result is non-nil only if the output itself could
// not be written, in which case it is a *WriteError and the run stopped at
// that point.
//
// Run blocks for as long as a source keeps producing data, which for a
// device like /dev/zero is forever.
func (c *Cat) Run(sources []Source) (Outcome, error) {
	var out Outcome
	sink := NewSink(c.stdout, c.bufSize)
	outFile, _ := c.stdout.(*os.File)
	buf := make([]byte, c.bufSize)
	var dst []byte
	var st State
	for _, src := range sources {
		h, err := Open(src, c.stdin, outFile)
		if err == nil {
			dst, st, err = c.drain(h, sink, buf, dst, st)
			h.Close()
		}
		var werr *WriteError
		if errors.As(err, &werr) {
			out.BytesWritten = sink.Written()
			return out, werr
		}
		if err != nil {
			if werr := c.fail(&out, sink, Failure{Source: src, Err: err}); werr != nil {
				out.BytesWritten = sink.Written()
				return out, werr
			}
		}
	}
	dst, _ = Flush(dst[:0], st)
	if len(dst) > 0 {
		sink.Write(dst)
	}
	err := sink.Flush()
	out.BytesWritten = sink.Written()
	return out, err
}

// fail records f, and reports it if there is a reporter. Output so far is
// flushed first, so that diagnostics and output appear in the order they were
// produced.
func (c *Cat) fail(out *Outcome, sink *Sink, f Failure) error {
	out.Failures = append(out.Failures, f)
	if c.report == nil {
		return nil
	}
	if err := sink.Flush(); err != nil {
		return err
	}
	c.report(f)
	return nil
}

// drain copies h to the sink through the transformer until h is exhausted.
// dst is scratch space for transformed output, returned for reuse. A failure
// to read is returned as a *ReadError, a failure to write as a *WriteError.
func (c *Cat) drain(h *Handle, sink *Sink, buf, dst []byte, st State) ([]byte, State, error) {
	for {
		n, err := h.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if !c.opts.Plain() {
				dst, st = Transform(dst[:0], chunk, c.opts, st)
				chunk = dst
			}
			if _, werr := sink.Write(chunk); werr != nil {
				return dst, st, werr
			}
			if h.Streaming() {
				if werr := sink.Flush(); werr != nil {
					return dst, st, werr
				}
			}
		}
		if err == io.EOF {
			return dst, st, nil
		}
		if err != nil {
			return dst, st, &ReadError{Name: h.Source.String(), Err: err}
		}
	}
}
