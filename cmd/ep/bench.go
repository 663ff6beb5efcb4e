package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/philatelist05/ep"
)

const benchHeader = "time;i;hash;defined;lookups;found;seconds"

type benchResult struct {
	hash    uint64
	stats   ep.Stats
	elapsed time.Duration
}

// benchOnce loads and interprets path the way a plain run does.
func benchOnce(path string) (benchResult, error) {
	start := time.Now()
	buf, err := ep.LoadFile(path)
	if err != nil {
		return benchResult{}, err
	}
	in := ep.New()
	if err := in.Exec(buf); err != nil {
		return benchResult{}, err
	}
	return benchResult{hash: in.Hash(), stats: in.Stats(), elapsed: time.Since(start)}, nil
}

/*
runBench interprets path cfg.Bench.Iterations times. Every run must produce
the expected hash, if one is configured, or the bench stops.
*/
func runBench(path string, cfg *ep.Config, stdout io.Writer, log *ep.Logger) int {
	b := cfg.Bench
	if b.Iterations < 1 {
		log.Error("bench: iterations must be at least 1, got %d", b.Iterations)
		return 1
	}
	var expected uint64
	if b.Expected == "" {
		log.Warn("bench: no expected hash, runs are not checked")
	} else {
		var err error
		if expected, err = ep.ParseHash(b.Expected); err != nil {
			log.Error("bench: expected hash %q: %v", b.Expected, err)
			return 1
		}
	}

	started := time.Now().UTC()
	results := make([]benchResult, 0, b.Iterations)
	for i := 0; i < b.Iterations; i++ {
		log.Debug("run #%d ...", i)
		res, err := benchOnce(path)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		if b.Expected != "" && res.hash != expected {
			log.Error("bench: unexpected output, expected %x, actual %x", expected, res.hash)
			return 1
		}
		results = append(results, res)
	}

	var total, best time.Duration
	for i, res := range results {
		total += res.elapsed
		if i == 0 || res.elapsed < best {
			best = res.elapsed
		}
	}
	log.Info("bench: %d runs of %s, best %v, mean %v",
		len(results), path, best, total/time.Duration(len(results)))

	if b.Results != "" {
		if err := writeResults(b.Results, started, results); err != nil {
			log.Error("bench: %v", err)
			return 1
		}
		log.Info("bench: results saved to %s", b.Results)
	}
	fmt.Fprintf(stdout, "%x\n", results[0].hash)
	return 0
}

// writeResults appends one ';' separated row per run, with a header for a new file.
func writeResults(path string, started time.Time, results []benchResult) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	fi, err := f.Stat()
	if err != nil {
		return err
	}
	if fi.Size() == 0 {
		if _, err = fmt.Fprintln(f, benchHeader); err != nil {
			return err
		}
	}
	stamp := started.Format(time.RFC3339)
	for i, res := range results {
		_, err = fmt.Fprintf(f, "%s;%d;%x;%d;%d;%d;%.6f\n", stamp, i,
			res.hash, res.stats.Defined, res.stats.Lookups, res.stats.Found, res.elapsed.Seconds())
		if err != nil {
			return err
		}
	}
	return nil
}
