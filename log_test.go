package ep

import (
	"bytes"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out, false)
	l.Debug("hidden %d", 1)
	l.Info("shown %d", 2)
	l.Error("bad %s", "input")
	want := "[ep INFO] shown 2\n[ep ERROR] bad input\n"
	if out.String() != want {
		t.Fatalf("logged %q and not %q", out.String(), want)
	}
	if l.Verbose() {
		t.Fatal("logger should not be verbose")
	}
}

func TestLoggerVerbose(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(&out, true)
	l.Debug("x")
	if out.String() != "[ep DEBUG] x\n" {
		t.Fatalf("logged %q", out.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nobody hears this")
	if l.Verbose() {
		t.Fatal("discard logger should not be verbose")
	}
}
