// Package logging provides the leveled logger used by the conversion pipeline.
//
// Two output formats are supported: a human-readable single line per entry and
// a JSON object per entry. The logger writes to an injectable io.Writer so
// command tests can capture output.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Level is the severity of a log entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel maps a level name to a Level. Unknown names map to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Format selects the wire format of log entries.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
)

// Fields carries structured key/value context for one entry.
type Fields map[string]any

// Logger writes leveled entries to a single destination.
type Logger struct {
	level  Level
	format Format
	out    io.Writer
	clock  func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput redirects log output; the default is os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.out = w }
}

// WithClock overrides the timestamp source, used by tests.
func WithClock(clock func() time.Time) Option {
	return func(l *Logger) { l.clock = clock }
}

// New creates a Logger with the given minimum level and format.
func New(level Level, format Format, opts ...Option) *Logger {
	l := &Logger{
		level:  level,
		format: format,
		out:    os.Stderr,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(LevelError+1, FormatHuman, WithOutput(io.Discard))
}

func (l *Logger) Debug(msg string, fields Fields) { l.log(LevelDebug, msg, fields) }
func (l *Logger) Info(msg string, fields Fields)  { l.log(LevelInfo, msg, fields) }
func (l *Logger) Warn(msg string, fields Fields)  { l.log(LevelWarn, msg, fields) }
func (l *Logger) Error(msg string, fields Fields) { l.log(LevelError, msg, fields) }

type entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

func (l *Logger) log(level Level, msg string, fields Fields) {
	if level < l.level {
		return
	}
	e := entry{
		Timestamp: l.clock().UTC().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
		Fields:    fields,
	}
	if l.format == FormatJSON {
		data, err := json.Marshal(e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log marshal failed: %v\n", err)
			return
		}
		fmt.Fprintln(l.out, string(data))
		return
	}
	var b strings.Builder
	b.WriteString(e.Timestamp)
	b.WriteString(" [")
	b.WriteString(e.Level)
	b.WriteString("] ")
	b.WriteString(e.Message)
	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i == 0 {
				b.WriteString(" | ")
			} else {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, fields[k])
		}
	}
	fmt.Fprintln(l.out, b.String())
}
