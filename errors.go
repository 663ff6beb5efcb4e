package ep

import "fmt"

// ProtocolError reports a byte that does not start a command.
type ProtocolError struct {
	Offset int
	Byte   byte
	Reason string
}

func (e *ProtocolError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid input at offset %d: %s", e.Offset, e.Reason)
	}
	return fmt.Sprintf("invalid input at offset %d: unexpected byte 0x%02x", e.Offset, e.Byte)
}

// InputError reports a file that could not be opened, stat'ed or read.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }

// UsageError reports a bad command line.
type UsageError struct {
	Prog string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <file>", e.Prog)
}

// AsmError reports a bad line in an assembler listing.
type AsmError struct {
	Line int
	Msg  string
}

func (e *AsmError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}
