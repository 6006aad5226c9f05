package cat_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/bitfield/cat"
)

func TestReadAutoCloser(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/alpha.txt")
	if err != nil {
		t.Fatal(err)
	}
	input, err := os.Open("testdata/alpha.txt")
	if err != nil {
		t.Fatal(err)
	}
	acr := cat.NewReadAutoCloser(input)
	got, err := io.ReadAll(acr)
	if err != nil {
		t.Error(err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("want %q, got %q", want, got)
	}
	if _, err := input.Read(make([]byte, 1)); err == nil {
		t.Error("input not closed after reading")
	}
	if err := acr.Close(); err != nil {
		t.Errorf("want second Close to succeed, got %v", err)
	}
	if n, err := acr.Read(make([]byte, 1)); n != 0 || err != io.EOF {
		t.Errorf("want 0, EOF after close, got %d, %v", n, err)
	}
}

func TestReadAutoCloserNonCloser(t *testing.T) {
	t.Parallel()
	acr := cat.NewReadAutoCloser(strings.NewReader("abc"))
	got, err := io.ReadAll(acr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "abc" {
		t.Errorf("want %q, got %q", "abc", got)
	}
}
