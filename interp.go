/*
Package ep is a cut down Forth text interpreter. It only knows how to define
names into wordlists, set the search order and look names up in it, which is
the part of a Forth system that most text interpreters spend their time in.

The input is a stream of commands:

	'\n' <wordlist> <name>   define name in the wordlist
	'\t' <wordlists>         set the search order, bottom first, top last
	' '  <name>              look name up in the search order

Names and wordlist identifiers never contain bytes <= ' '. Every definition
gets a serial number starting at 1, and the serial numbers of all names found
are folded into a hash, which is the result of a run.
*/
package ep

import (
	"bytes"
	"fmt"
	"io"
)

// Stats counts what an Interpreter did.
type Stats struct {
	Defined int // definitions, empty names included
	Orders  int // search order changes
	Lookups int
	Found   int
	Missed  int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithTrace writes "name = serial" for every lookup to w. Misses show 0.
func WithTrace(w io.Writer) Option {
	return func(in *Interpreter) { in.trace = w }
}

// WithLogger sends debug output to l.
func WithLogger(l *Logger) Option {
	return func(in *Interpreter) { in.log = l }
}

/*
Interpreter owns the wordlists, the search order and the hash of one run.
The buffer handed to Exec is borrowed by every definition and by the search
order, so it must not be modified while the Interpreter is in use.
*/
type Interpreter struct {
	store  *Store
	order  SearchOrder
	hash   Hash
	serial uint64 // serial number of the next definition

	buf []byte
	pos int

	stats Stats
	trace io.Writer
	log   *Logger
}

/*
Return a new interpreter with all wordlists empty and an empty search order.
*/
func New(opts ...Option) *Interpreter {
	in := &Interpreter{
		store:  NewStore(),
		serial: 1,
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.log == nil {
		in.log = Discard()
	}
	return in
}

func (in *Interpreter) Hash() uint64        { return uint64(in.hash) }
func (in *Interpreter) Stats() Stats        { return in.stats }
func (in *Interpreter) Store() *Store       { return in.store }
func (in *Interpreter) Order() *SearchOrder { return &in.order }

/*
Exec interprets buf, which must end in the Sentinel byte and must not contain
it anywhere else. State carries over between calls, so a stream can be fed
in pieces as long as no command is split across them.
*/
func (in *Interpreter) Exec(buf []byte) error {
	if len(buf) == 0 || buf[len(buf)-1] != Sentinel {
		return fmt.Errorf("exec: buffer does not end in the sentinel byte")
	}
	if i := bytes.IndexByte(buf, Sentinel); i != len(buf)-1 {
		return &ProtocolError{Offset: i, Byte: Sentinel, Reason: "sentinel byte before end of input"}
	}
	in.buf, in.pos = buf, 0
	for {
		more, err := in.Step()
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}
	in.log.Debug("exec: %d bytes, %d definitions, %d/%d lookups found, hash %x",
		len(buf)-1, in.store.Len(), in.stats.Found, in.stats.Lookups, uint64(in.hash))
	return nil
}

/*
Run interprets src, which must not contain the Sentinel byte. src is copied
once so that the sentinel can be appended; definitions borrow the copy.
*/
func (in *Interpreter) Run(src []byte) error {
	buf := make([]byte, len(src)+1)
	copy(buf, src)
	buf[len(src)] = Sentinel
	return in.Exec(buf)
}

/*
Step runs the command at the current position. It returns false once the
sentinel has been consumed.
*/
func (in *Interpreter) Step() (bool, error) {
	if in.buf == nil {
		return false, nil
	}
	at := in.pos
	c := in.buf[at]
	in.pos++
	switch c {
	case '\n':
		return true, in.define(at)
	case '\t':
		in.setOrder()
	case ' ':
		in.find()
	case Sentinel:
		in.buf = nil
		return false, nil
	default:
		return false, &ProtocolError{Offset: at, Byte: c}
	}
	return true, nil
}

/*
Process interprets a sentinel terminated buffer with a fresh Interpreter and
returns the hash.
*/
func Process(buf []byte, opts ...Option) (uint64, error) {
	in := New(opts...)
	if err := in.Exec(buf); err != nil {
		return 0, err
	}
	return in.Hash(), nil
}
