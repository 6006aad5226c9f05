package cat

import (
	"bytes"
	"strconv"
)

// NumberMode selects which lines, if any, receive a line number prefix.
type NumberMode int

const (
	// NumberNone disables line numbering.
	NumberNone NumberMode = iota
	// NumberAll numbers every output line, blank or not.
	NumberAll
	// NumberNonBlank numbers only lines with at least one byte before the
	// terminator.
	NumberNonBlank
)

func (m NumberMode) String() string {
	switch m {
	case NumberNone:
		return "none"
	case NumberAll:
		return "all"
	case NumberNonBlank:
		return "nonblank"
	}
	return "NumberMode(" + strconv.Itoa(int(m)) + ")"
}

// numberWidth is the minimum width of a line number, which is right-justified
// and followed by a tab.
const numberWidth = 6

// Options is the set of display transforms applied to every source in a run.
// The zero value copies input to output unchanged.
type Options struct {
	ShowNonprinting bool
	ShowTabs        bool
	ShowEnds        bool
	Number          NumberMode
	SqueezeBlank    bool
}

// Plain reports whether o leaves the byte stream untouched.
func (o Options) Plain() bool {
	return o == Options{}
}

// State is the line-oriented context that Transform carries from one chunk to
// the next, and from one source to the next. The zero value is the state at
// the start of a run.
type State struct {
	// Lines is the count of line numbers assigned so far; the next numbered
	// line gets Lines+1.
	Lines uint64
	// BlankRun is the number of consecutive blank lines seen immediately
	// before the current position, including squeezed ones.
	BlankRun int
	// MidLine is true when the last byte consumed was not a newline, so the
	// next byte continues the same line.
	MidLine bool
}

// Transform appends the display form of chunk to dst under opts, starting from
// state st, and returns the extended slice together with the updated state.
// The result does not depend on how a stream is split into chunks: feeding the
// pieces of a stream in order, threading the state through each call, produces
// the same bytes as feeding the whole stream at once.
func Transform(dst, chunk []byte, opts Options, st State) ([]byte, State) {
	if opts.Plain() {
		if len(chunk) > 0 {
			st.MidLine = chunk[len(chunk)-1] != '\n'
		}
		return append(dst, chunk...), st
	}
	for len(chunk) > 0 {
		if !st.MidLine {
			if chunk[0] == '\n' {
				chunk = chunk[1:]
				squeezed := opts.SqueezeBlank && st.BlankRun > 0
				st.BlankRun++
				if squeezed {
					continue
				}
				if opts.Number == NumberAll {
					st.Lines++
					dst = appendNumber(dst, st.Lines)
				}
				dst = appendEnd(dst, opts)
				continue
			}
			st.BlankRun = 0
			st.MidLine = true
			if opts.Number != NumberNone {
				st.Lines++
				dst = appendNumber(dst, st.Lines)
			}
		}
		i := bytes.IndexByte(chunk, '\n')
		if i < 0 {
			return appendBody(dst, chunk, opts), st
		}
		dst = appendBody(dst, chunk[:i], opts)
		dst = appendEnd(dst, opts)
		st.MidLine = false
		chunk = chunk[i+1:]
	}
	return dst, st
}

// Flush ends the stream. A line left open by the last chunk has already been
// written as far as it goes and is not terminated; Flush only resets the
// continuation flag so that st can no longer join anything onto it.
func Flush(dst []byte, st State) ([]byte, State) {
	st.MidLine = false
	return dst, st
}

func appendNumber(dst []byte, n uint64) []byte {
	var buf [20]byte
	digits := strconv.AppendUint(buf[:0], n, 10)
	for i := len(digits); i < numberWidth; i++ {
		dst = append(dst, ' ')
	}
	dst = append(dst, digits...)
	return append(dst, '\t')
}

func appendEnd(dst []byte, opts Options) []byte {
	if opts.ShowEnds {
		dst = append(dst, '$')
	}
	return append(dst, '\n')
}

// appendBody appends the bytes of a line, excluding its terminator.
func appendBody(dst, body []byte, opts Options) []byte {
	if !opts.ShowNonprinting && !opts.ShowTabs {
		return append(dst, body...)
	}
	for _, b := range body {
		switch {
		case b == '\t':
			if opts.ShowTabs {
				dst = append(dst, '^', 'I')
			} else {
				dst = append(dst, '\t')
			}
		case opts.ShowNonprinting:
			dst = AppendCaret(dst, b)
		default:
			dst = append(dst, b)
		}
	}
	return dst
}
