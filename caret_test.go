package cat_test

import (
	"testing"

	"github.com/bitfield/cat"
)

func TestCaret(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		input byte
		want  string
	}{
		{0x00, "^@"},
		{0x01, "^A"},
		{'\t', "^I"},
		{'\n', "\n"},
		{0x0D, "^M"},
		{0x1B, "^["},
		{0x1F, "^_"},
		{' ', " "},
		{'A', "A"},
		{'~', "~"},
		{0x7F, "^?"},
		{0x80, "M-^@"},
		{0x89, "M-^I"},
		{0x8A, "M-^J"},
		{0x9F, "M-^_"},
		{0xA0, "M- "},
		{0xC1, "M-A"},
		{0xFE, "M-~"},
		{0xFF, "M-^?"},
	}
	for _, tc := range tcs {
		got := cat.Caret(tc.input)
		if tc.want != got {
			t.Errorf("%#02x: want %q, got %q", tc.input, tc.want, got)
		}
	}
}

func TestCaretCoversEveryByte(t *testing.T) {
	t.Parallel()
	for i := 0; i < 256; i++ {
		b := byte(i)
		got := cat.Caret(b)
		var want string
		switch {
		case b == '\n':
			want = "\n"
		case b < 32:
			want = "^" + string(rune(b+64))
		case b == 127:
			want = "^?"
		case b < 127:
			want = string(rune(b))
		default:
			low := b - 128
			switch {
			case low < 32:
				want = "M-^" + string(rune(low+64))
			case low == 127:
				want = "M-^?"
			default:
				want = "M-" + string(rune(low))
			}
		}
		if want != got {
			t.Errorf("%#02x: want %q, got %q", b, want, got)
		}
	}
}

func TestAppendCaretMatchesCaret(t *testing.T) {
	t.Parallel()
	var got []byte
	var want string
	for i := 0; i < 256; i++ {
		got = cat.AppendCaret(got, byte(i))
		want += cat.Caret(byte(i))
	}
	if want != string(got) {
		t.Errorf("want %q, got %q", want, got)
	}
}
