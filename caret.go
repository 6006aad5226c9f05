package cat

// caretTable holds the encoding of every byte, so that the hot loop in
// Transform never allocates.
var caretTable [256]string

func init() {
	for i := range caretTable {
		caretTable[i] = Caret(byte(i))
	}
}

// Caret returns the printable representation of b used when showing
// non-printing characters. Control characters other than newline become ^X,
// DEL becomes ^?, and bytes with the high bit set are shown as M- followed by
// the encoding of the low seven bits. Newline is returned unchanged.
func Caret(b byte) string {
	if b == '\n' {
		return "\n"
	}
	if b >= 128 {
		return "M-" + caretLow(b-128)
	}
	return caretLow(b)
}

// caretLow encodes a seven-bit byte. Unlike Caret, it escapes newline too,
// since a meta-newline is not a line terminator.
func caretLow(b byte) string {
	switch {
	case b < 32:
		return string([]byte{'^', b + 64})
	case b == 127:
		return "^?"
	default:
		return string([]byte{b})
	}
}

// AppendCaret appends the Caret encoding of b to dst and returns the extended
// slice.
func AppendCaret(dst []byte, b byte) []byte {
	return append(dst, caretTable[b]...)
}
