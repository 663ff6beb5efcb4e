package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/philatelist05/ep"
)

const (
	historyFile = ".ep_history"
	prompt      = "ep> "
)

const replHelp = `commands:
  create <wid> [name]   define name in wordlist wid
  order [wids]          set the search order, top last
  find [name]           look name up, prints "name = serial" and the hash
meta commands:
  :hash                 print the running hash
  :order                print the search order
  :words <wid>          list wordlist wid, newest first
  :stats                print counters
  :quit                 leave`

// prompter reads one line of input, io.EOF ends the session.
type prompter interface {
	Prompt(p string) (string, error)
}

// scanPrompter reads lines from a non-terminal input without echoing prompts.
type scanPrompter struct {
	sc *bufio.Scanner
}

func (p scanPrompter) Prompt(string) (string, error) {
	if p.sc.Scan() {
		return p.sc.Text(), nil
	}
	if err := p.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

/*
runRepl reads listing lines from stdin and runs each one in a single
interpreter, so definitions and the search order persist between lines. On a
terminal the line editor keeps a history in the home directory.
*/
func runRepl(stdin io.Reader, stdout io.Writer, log *ep.Logger) int {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		home, _ := os.UserHomeDir()
		histPath := filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				log.Warn("history: %v", err)
				return
			}
			if _, err := ln.WriteHistory(f); err != nil {
				log.Warn("history: %v", err)
			}
			_ = f.Close()
		}()
		fmt.Fprintln(stdout, "ep wordlist interpreter, :help for commands")
		return repl(ln, stdout, log, ln.AppendHistory)
	}
	return repl(scanPrompter{bufio.NewScanner(stdin)}, stdout, log, nil)
}

func repl(p prompter, out io.Writer, log *ep.Logger, remember func(string)) int {
	in := ep.New(ep.WithTrace(out), ep.WithLogger(log))
	for {
		line, err := p.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return 0
		}
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if remember != nil {
			remember(line)
		}
		if strings.HasPrefix(line, ":") {
			if quit := meta(in, line, out); quit {
				return 0
			}
			continue
		}
		code, err := ep.AssembleLine(line)
		if err != nil {
			log.Error("%v", err)
			continue
		}
		if err := in.Run(code); err != nil {
			log.Error("%v", err)
			continue
		}
		if strings.Fields(line)[0] == "find" {
			fmt.Fprintf(out, "hash %x\n", in.Hash())
		}
	}
}

// meta runs a ':' command and reports whether the session should end.
func meta(in *ep.Interpreter, line string, out io.Writer) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(out, replHelp)
	case ":hash":
		fmt.Fprintf(out, "%x\n", in.Hash())
	case ":order":
		fmt.Fprintln(out, in.Order().String())
	case ":words":
		if len(fields) != 2 || len(fields[1]) != 1 {
			fmt.Fprintln(out, "usage: :words <wid>")
			break
		}
		in.Store().Words(fields[1][0], func(name []byte, serial uint64) bool {
			fmt.Fprintf(out, "%s = %d\n", name, serial)
			return true
		})
	case ":stats":
		st := in.Stats()
		fmt.Fprintf(out, "%d definitions, %d order changes, %d lookups (%d found, %d missed)\n",
			st.Defined, st.Orders, st.Lookups, st.Found, st.Missed)
	default:
		fmt.Fprintln(out, "unknown command, :help lists them")
	}
	return false
}
