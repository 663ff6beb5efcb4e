package ep

import (
	"bytes"
	"strings"
)

/*
Assemble translates a listing into a command stream for Run. Each line holds
one command, and anything after a ';' is a comment:

	create X foo   ; define foo in wordlist X
	order XY       ; search Y, then X
	find foo       ; look foo up

The names of create and find and the wordlists of order may be left out,
which gives an empty name or an empty search order.
*/
func Assemble(src string) ([]byte, error) {
	var out bytes.Buffer
	for iline, line := range strings.Split(src, "\n") {
		if err := assembleLine(&out, line); err != nil {
			return nil, &AsmError{Line: iline + 1, Msg: err.Error()}
		}
	}
	return out.Bytes(), nil
}

// AssembleLine translates one listing line, used by the REPL.
func AssembleLine(line string) ([]byte, error) {
	var out bytes.Buffer
	if err := assembleLine(&out, line); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type asmErr string

func (e asmErr) Error() string { return string(e) }

func assembleLine(out *bytes.Buffer, line string) error {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	toks := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r'
	})
	if len(toks) == 0 {
		return nil
	}
	op, args := toks[0], toks[1:]
	switch op {
	case "create", ":":
		if len(args) < 1 || len(args) > 2 {
			return asmErr("create wants a wordlist and an optional name")
		}
		if len(args[0]) != 1 {
			return asmErr("wordlist " + args[0] + " is not a single byte")
		}
		out.WriteByte('\n')
		out.WriteString(args[0])
		if len(args) == 2 {
			out.WriteString(args[1])
		}
	case "order":
		if len(args) > 1 {
			return asmErr("order wants one run of wordlists")
		}
		out.WriteByte('\t')
		if len(args) == 1 {
			out.WriteString(args[0])
		}
	case "find":
		if len(args) > 1 {
			return asmErr("find wants one name")
		}
		out.WriteByte(' ')
		if len(args) == 1 {
			out.WriteString(args[0])
		}
	default:
		return asmErr("unknown command " + op)
	}
	return validName(toks)
}

func validName(toks []string) error {
	for _, tok := range toks {
		for i := 0; i < len(tok); i++ {
			if tok[i] <= Delim {
				return asmErr("control byte in " + tok)
			}
		}
	}
	return nil
}
