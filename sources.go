package cat

import (
	"io"
	"io/fs"
	"net"
	"os"
)

// StdinName is the operand, and the display name, that stands for standard
// input.
const StdinName = "-"

// Source is one input operand.
type Source struct {
	// Name is the path to read, or StdinName.
	Name  string
	Stdin bool
}

// String returns the name used for src in diagnostics.
func (src Source) String() string {
	if src.Stdin {
		return StdinName
	}
	return src.Name
}

// Sources resolves command-line operands into sources, in order. A lone "-"
// is standard input, as is an empty operand list.
func Sources(args []string) []Source {
	if len(args) == 0 {
		return []Source{{Name: StdinName, Stdin: true}}
	}
	srcs := make([]Source, 0, len(args))
	for _, a := range args {
		srcs = append(srcs, Source{Name: a, Stdin: a == StdinName})
	}
	return srcs
}

// Kind classifies the object behind a source. It is decided once, at open
// time.
type Kind uint8

const (
	// KindUnknown is anything not listed below, including a standard input
	// that is not a file at all.
	KindUnknown Kind = iota
	// KindRegular is a regular file.
	KindRegular
	// KindDirectory is a directory; it is never read.
	KindDirectory
	// KindFIFO is a named or anonymous pipe.
	KindFIFO
	// KindCharDevice is a character device such as a terminal or /dev/zero.
	KindCharDevice
	// KindSocket is a unix-domain socket, which is connected to rather than
	// opened.
	KindSocket
)

func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular file"
	case KindDirectory:
		return "directory"
	case KindFIFO:
		return "fifo"
	case KindCharDevice:
		return "character device"
	case KindSocket:
		return "socket"
	}
	return "unknown"
}

func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindRegular
	case mode.IsDir():
		return KindDirectory
	case mode&fs.ModeNamedPipe != 0:
		return KindFIFO
	case mode&fs.ModeSocket != 0:
		return KindSocket
	case mode&fs.ModeCharDevice != 0:
		return KindCharDevice
	}
	return KindUnknown
}

// Handle is an open source. Reads block until data arrives; for pipes,
// devices and sockets there may be no end of stream at all. The underlying
// object is closed as soon as it is exhausted.
type Handle struct {
	Source Source
	Kind   Kind
	*ReadAutoCloser
}

// Streaming reports whether h is something other than a regular file, so
// that its output should be passed on as soon as it is read.
func (h *Handle) Streaming() bool {
	return h.Kind != KindRegular
}

// Open opens src for reading. Standard input is taken from stdin and is
// never closed. If out is not nil, it is the file output goes to, and a
// regular file that is out itself is refused with ErrInputIsOutput. Every
// error returned is an *OpenError.
func Open(src Source, stdin io.Reader, out *os.File) (*Handle, error) {
	if src.Stdin {
		return openStdin(src, stdin, out)
	}
	info, err := os.Stat(src.Name)
	if err != nil {
		return nil, &OpenError{Name: src.Name, Err: err}
	}
	switch kindOf(info.Mode()) {
	case KindDirectory:
		return nil, &OpenError{Name: src.Name, Err: ErrIsDirectory}
	case KindSocket:
		return openSocket(src)
	}
	f, err := os.Open(src.Name)
	if err != nil {
		return nil, &OpenError{Name: src.Name, Err: err}
	}
	// Stat again through the descriptor: the path may have changed since.
	info, err = f.Stat()
	if err != nil {
		f.Close()
		return nil, &OpenError{Name: src.Name, Err: err}
	}
	kind := kindOf(info.Mode())
	if err := checkReadable(kind, info, 0, out); err != nil {
		f.Close()
		return nil, &OpenError{Name: src.Name, Err: err}
	}
	if kind == KindRegular {
		adviseSequential(f)
	}
	return &Handle{Source: src, Kind: kind, ReadAutoCloser: NewReadAutoCloser(f)}, nil
}

func openStdin(src Source, stdin io.Reader, out *os.File) (*Handle, error) {
	kind := KindUnknown
	if f, ok := stdin.(*os.File); ok {
		info, err := f.Stat()
		if err != nil {
			return nil, &OpenError{Name: src.String(), Err: err}
		}
		kind = kindOf(info.Mode())
		var offset int64
		if kind == KindRegular {
			offset, _ = f.Seek(0, io.SeekCurrent)
		}
		if err := checkReadable(kind, info, offset, out); err != nil {
			return nil, &OpenError{Name: src.String(), Err: err}
		}
	}
	return &Handle{Source: src, Kind: kind, ReadAutoCloser: NewReadAutoCloser(io.NopCloser(stdin))}, nil
}

// openSocket connects to a unix-domain socket and reads whatever the other
// end sends. Nothing is ever written, so the write side is shut at once.
func openSocket(src Source) (*Handle, error) {
	conn, err := net.Dial("unix", src.Name)
	if err != nil {
		return nil, &OpenError{Name: src.Name, Err: err}
	}
	if uc, ok := conn.(*net.UnixConn); ok {
		_ = uc.CloseWrite()
	}
	return &Handle{Source: src, Kind: KindSocket, ReadAutoCloser: NewReadAutoCloser(conn)}, nil
}

// checkReadable rejects directories, and a regular input that is the output
// file with unread data left past offset.
func checkReadable(kind Kind, info fs.FileInfo, offset int64, out *os.File) error {
	if kind == KindDirectory {
		return ErrIsDirectory
	}
	if kind != KindRegular || out == nil {
		return nil
	}
	outInfo, err := out.Stat()
	if err != nil || !outInfo.Mode().IsRegular() {
		return nil
	}
	if os.SameFile(info, outInfo) && offset < info.Size() {
		return ErrInputIsOutput
	}
	return nil
}
