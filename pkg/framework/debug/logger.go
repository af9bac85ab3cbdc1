// Package debug provides logging, profiling and buffer analysis helpers.
//
// Nothing in this package is safe to call from inside a real-time block
// callback except AudioProcessProfiler.Record.
package debug

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for detailed debugging information.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for general informational messages.
	LogLevelInfo
	// LogLevelWarn is for warning messages.
	LogLevelWarn
	// LogLevelError is for error messages.
	LogLevelError
	// LogLevelOff disables all logging.
	LogLevelOff
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name as printed by LogLevel.String, case insensitive.
func ParseLevel(s string) (LogLevel, error) {
	for l := LogLevelDebug; l <= LogLevelOff; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %s", strconv.Quote(s))
}

// Flags for logger output formatting.
const (
	FlagTime      = 1 << iota // Include timestamp
	FlagShortFile             // Include short file name and line number
	FlagLevel                 // Include log level
	FlagPrefix                // Include prefix
)

// DefaultFlags are the default formatting flags.
const DefaultFlags = FlagTime | FlagLevel | FlagPrefix

// Logger is a leveled logger. Loggers derived with With share the output
// and its lock.
type Logger struct {
	out    *output
	level  LogLevel
	prefix string
	flags  int
}

type output struct {
	mu  sync.Mutex
	w   io.Writer
	buf bytes.Buffer
}

var defaultLogger = New(os.Stderr, "", DefaultFlags)

// New creates a new logger at LogLevelInfo.
func New(w io.Writer, prefix string, flags int) *Logger {
	return &Logger{
		out:    &output{w: w},
		level:  LogLevelInfo,
		prefix: prefix,
		flags:  flags,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	l := New(io.Discard, "", 0)
	l.level = LogLevelOff
	return l
}

// Default returns the process wide logger writing to stderr.
func Default() *Logger {
	return defaultLogger
}

// With returns a copy of the logger with prefix appended to the current one.
func (l *Logger) With(prefix string) *Logger {
	child := *l
	if child.prefix != "" {
		child.prefix += "/" + prefix
	} else {
		child.prefix = prefix
	}
	return &child
}

// SetLevel sets the minimum log level. Not safe for concurrent use with
// logging calls; configure loggers before handing them out.
func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

// Level returns the minimum log level.
func (l *Logger) Level() LogLevel {
	return l.level
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level LogLevel) bool {
	return level >= l.level && l.level != LogLevelOff
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	o := l.out
	o.mu.Lock()
	defer o.mu.Unlock()

	b := &o.buf
	b.Reset()

	if l.flags&FlagTime != 0 {
		b.WriteString(time.Now().Format("2006-01-02 15:04:05.000 "))
	}
	if l.flags&FlagLevel != 0 {
		fmt.Fprintf(b, "[%s] ", level)
	}
	if l.flags&FlagPrefix != 0 && l.prefix != "" {
		fmt.Fprintf(b, "[%s] ", l.prefix)
	}
	if l.flags&FlagShortFile != 0 {
		// log, then Debug/Info/...
		if _, file, line, ok := runtime.Caller(2); ok {
			fmt.Fprintf(b, "%s:%d: ", filepath.Base(file), line)
		}
	}

	fmt.Fprintf(b, format, args...)
	if b.Len() == 0 || b.Bytes()[b.Len()-1] != '\n' {
		b.WriteByte('\n')
	}

	_, _ = o.w.Write(b.Bytes())
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LogLevelDebug, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log(LogLevelInfo, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LogLevelWarn, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log(LogLevelError, format, args...)
}
