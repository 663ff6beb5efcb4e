package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBench(t *testing.T) {
	results := filepath.Join(t.TempDir(), "results.csv")
	input := writeInput(t, "\nXfoo\tX foo")
	code, out, errOut := runCLI(t, "-bench", "3", "-expect", "b64d532aaaf18c7c", "-results", results, input)
	if code != 0 {
		t.Fatal("bench failed:", errOut)
	}
	if out != "b64d532aaaf18c7c\n" {
		t.Fatalf("printed %q", out)
	}
	if !strings.Contains(errOut, "bench: 3 runs of") {
		t.Fatal("missing summary in", errOut)
	}
	if strings.Contains(errOut, "WARN") {
		t.Fatal("checked bench should not warn:", errOut)
	}
	data, err := os.ReadFile(results)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 || lines[0] != benchHeader {
		t.Fatalf("results file:\n%s", data)
	}
	fields := strings.Split(lines[1], ";")
	if len(fields) != 7 || fields[1] != "0" || fields[2] != "b64d532aaaf18c7c" || fields[5] != "1" {
		t.Fatal("bad row", lines[1])
	}

	// a second bench appends rows without a second header
	code, _, errOut = runCLI(t, "-bench", "1", "-results", results, input)
	if code != 0 {
		t.Fatal("second bench failed:", errOut)
	}
	if !strings.Contains(errOut, "[ep WARN] bench: no expected hash") {
		t.Fatal("unchecked bench should warn:", errOut)
	}
	data, _ = os.ReadFile(results)
	if n := strings.Count(string(data), benchHeader); n != 1 {
		t.Fatal("header written", n, "times")
	}
}

func TestBenchUnexpected(t *testing.T) {
	code, out, errOut := runCLI(t, "-bench", "2", "-expect", "1ae56547f8865909", writeInput(t, "\nXfoo\tX foo"))
	if code != 1 || out != "" {
		t.Fatalf("exit %d, printed %q", code, out)
	}
	if !strings.Contains(errOut, "expected 1ae56547f8865909, actual b64d532aaaf18c7c") {
		t.Fatal("missing mismatch report in", errOut)
	}
}

func TestBenchBadIterations(t *testing.T) {
	code, _, _ := runCLI(t, "-bench", "-1", writeInput(t, ""))
	if code != 1 {
		t.Fatal("negative iterations should fail")
	}
}
