// Command ep runs a wordlist command stream and prints its hash.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/philatelist05/ep"
)

const progName = "ep"

type options struct {
	configPath  string
	verbose     bool
	trace       bool
	interactive bool
	asm         bool
	bench       int
	expect      string
	results     string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt options
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(fs) }
	fs.StringVar(&opt.configPath, "config", os.Getenv(ep.ConfigEnv), "read settings from this YAML file")
	fs.BoolVar(&opt.verbose, "v", false, "enable debug logging")
	fs.BoolVar(&opt.trace, "trace", false, "print every lookup and its serial number to stderr")
	fs.BoolVar(&opt.interactive, "i", false, "start an interactive session instead of reading a file")
	fs.BoolVar(&opt.asm, "asm", false, "read the file as an assembler listing")
	fs.IntVar(&opt.bench, "bench", 0, "run the file this many times and report timings")
	fs.StringVar(&opt.expect, "expect", "", "with -bench, fail unless the hash is this hex value")
	fs.StringVar(&opt.results, "results", "", "with -bench, append result rows to this file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := loadConfig(opt.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	bench := applyFlags(fs, &opt, cfg)
	log := ep.NewLogger(stderr, cfg.Verbose)
	if cfg.Path != "" {
		log.Debug("config %s", cfg.Path)
	}

	if opt.interactive {
		return runRepl(stdin, stdout, log)
	}
	if fs.NArg() != 1 {
		printUsage(fs)
		return 1
	}
	path := fs.Arg(0)
	if opt.asm {
		if bench {
			log.Error("-asm cannot be combined with -bench")
			return 1
		}
		return runListing(path, cfg, stdout, stderr, log)
	}
	if bench {
		return runBench(path, cfg, stdout, log)
	}
	return runFile(path, cfg, stdout, stderr, log)
}

func printUsage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, (&ep.UsageError{Prog: progName}).Error())
	fs.PrintDefaults()
}

func loadConfig(path string) (*ep.Config, error) {
	if path == "" {
		return ep.DefaultConfig(), nil
	}
	return ep.LoadConfig(path)
}

// applyFlags lets flags given on the command line override the config file.
// It reports whether any bench flag was given.
func applyFlags(fs *flag.FlagSet, opt *options, cfg *ep.Config) (bench bool) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cfg.Verbose = opt.verbose
		case "trace":
			cfg.Trace = opt.trace
		case "bench":
			cfg.Bench.Iterations = opt.bench
			bench = true
		case "expect":
			cfg.Bench.Expected = opt.expect
			bench = true
		case "results":
			cfg.Bench.Results = opt.results
			bench = true
		}
	})
	return bench
}

func runFile(path string, cfg *ep.Config, stdout, stderr io.Writer, log *ep.Logger) int {
	buf, err := ep.LoadFile(path)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	opts := []ep.Option{ep.WithLogger(log)}
	var trace *bufio.Writer
	if cfg.Trace {
		trace = bufio.NewWriter(stderr)
		defer trace.Flush()
		opts = append(opts, ep.WithTrace(trace))
	}
	in := ep.New(opts...)
	if err := in.Exec(buf); err != nil {
		if trace != nil {
			trace.Flush()
		}
		log.Error("%v", err)
		return 1
	}
	st := in.Stats()
	log.Debug("%d definitions, %d order changes, %d lookups (%d found, %d missed)",
		st.Defined, st.Orders, st.Lookups, st.Found, st.Missed)
	fmt.Fprintf(stdout, "%x\n", in.Hash())
	return 0
}

// runListing assembles the listing at path and prints the hash of the result.
func runListing(path string, cfg *ep.Config, stdout, stderr io.Writer, log *ep.Logger) int {
	buf, err := ep.LoadListing(path)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	opts := []ep.Option{ep.WithLogger(log)}
	if cfg.Trace {
		opts = append(opts, ep.WithTrace(stderr))
	}
	h, err := ep.Process(buf, opts...)
	if err != nil {
		log.Error("%v", err)
		return 1
	}
	fmt.Fprintf(stdout, "%x\n", h)
	return 0
}
