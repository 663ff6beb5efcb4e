package ep

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// LogLevel is the severity of a log line, higher is more severe.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

const (
	colorYellow = "\x1b[93m"
	colorRed    = "\x1b[91m"
	colorReset  = "\x1b[0m"
)

// Logger writes leveled lines of the form "[ep LEVEL] message".
type Logger struct {
	out   io.Writer
	min   LogLevel
	color bool
}

// NewLogger logs to out. Debug lines are dropped unless verbose is set.
func NewLogger(out io.Writer, verbose bool) *Logger {
	l := &Logger{out: out, min: LevelInfo}
	if verbose {
		l.min = LevelDebug
	}
	if f, ok := out.(*os.File); ok {
		l.color = supportsColor(f)
	}
	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{out: io.Discard, min: LevelError + 1}
}

// supportsColor reports whether f is a terminal that wants colour.
func supportsColor(f *os.File) bool {
	if !term.IsTerminal(int(f.Fd())) {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return os.Getenv("TERM") != "dumb"
}

func (l *Logger) Verbose() bool { return l.min <= LevelDebug }

func (l *Logger) logf(level LogLevel, format string, args ...interface{}) {
	if level < l.min {
		return
	}
	prefix := fmt.Sprintf("[ep %s] ", level)
	if l.color {
		switch level {
		case LevelWarn:
			prefix = colorYellow + prefix + colorReset
		case LevelError:
			prefix = colorRed + prefix + colorReset
		}
	}
	fmt.Fprintln(l.out, prefix+fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...interface{}) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.logf(LevelError, format, args...) }
