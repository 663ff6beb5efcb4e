package ep

import (
	"bytes"
	"errors"
	"io"
	"os"
)

var errEmbeddedSentinel = errors.New("input contains a NUL byte")

// maxHint caps the buffer preallocated from a size reported by Stat.
const maxHint = 1 << 30

/*
LoadFile reads the whole file at path and appends the Sentinel, ready for
Exec. Pipes and files that report a short size are read to the end. Every
failure is an *InputError.
*/
func LoadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: unwrapPath(err)}
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, &InputError{Path: path, Err: unwrapPath(err)}
	}
	return load(path, f, fi.Size())
}

/*
LoadListing reads the assembler listing at path and returns the command stream
it assembles to, with the Sentinel appended. Read and assembly failures are
both reported as an *InputError.
*/
func LoadListing(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputError{Path: path, Err: unwrapPath(err)}
	}
	code, err := Assemble(string(src))
	if err != nil {
		return nil, &InputError{Path: path, Err: err}
	}
	return append(code, Sentinel), nil
}

// load reads r to EOF and appends the sentinel. size is only a hint.
func load(path string, r io.Reader, size int64) ([]byte, error) {
	var b bytes.Buffer
	if size > 0 && size < maxHint {
		b.Grow(int(size) + 1)
	}
	if _, err := b.ReadFrom(r); err != nil {
		return nil, &InputError{Path: path, Err: unwrapPath(err)}
	}
	if bytes.IndexByte(b.Bytes(), Sentinel) >= 0 {
		return nil, &InputError{Path: path, Err: errEmbeddedSentinel}
	}
	b.WriteByte(Sentinel)
	return b.Bytes(), nil
}

// unwrapPath strips the *os.PathError around err, InputError carries the path itself.
func unwrapPath(err error) error {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
