// Package log provides leveled, structured logging on top of zerolog.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level is the severity of a log message.
type Level = zerolog.Level

// Levels understood by ParseLevel.
const (
	LevelDebug = zerolog.DebugLevel
	LevelInfo  = zerolog.InfoLevel
	LevelWarn  = zerolog.WarnLevel
	LevelError = zerolog.ErrorLevel
)

// ParseLevel parses a level name. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Config configures a Logger.
type Config struct {
	// Level is the minimum level written.
	Level Level

	// Output is where logs are written. Defaults to os.Stderr.
	Output io.Writer

	// Component, if set, is attached to every message.
	Component string

	// Console selects the human-readable console format instead of JSON.
	Console bool

	// NoColor disables ANSI colors in console format.
	NoColor bool
}

// Logger is a leveled logger. The zero value is not usable; use New or Nop.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Console {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.TimeOnly,
			NoColor:    cfg.NoColor,
		}
	}

	ctx := zerolog.New(out).Level(cfg.Level).With().Timestamp()
	if cfg.Component != "" {
		ctx = ctx.Str("component", cfg.Component)
	}
	return &Logger{zl: ctx.Logger()}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithComponent returns a child logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.With("component", component)
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(kv ...any) *Logger {
	return &Logger{zl: l.zl.With().Fields(kv).Logger()}
}

// Debug logs a debug message with optional key/value pairs.
func (l *Logger) Debug(msg string, kv ...any) {
	l.write(l.zl.Debug(), msg, kv)
}

// Info logs an info message with optional key/value pairs.
func (l *Logger) Info(msg string, kv ...any) {
	l.write(l.zl.Info(), msg, kv)
}

// Warn logs a warning with optional key/value pairs.
func (l *Logger) Warn(msg string, kv ...any) {
	l.write(l.zl.Warn(), msg, kv)
}

// Error logs an error message with optional key/value pairs.
// An error value under the key "error" is rendered with zerolog's error field.
func (l *Logger) Error(msg string, kv ...any) {
	l.write(l.zl.Error(), msg, kv)
}

func (l *Logger) write(ev *zerolog.Event, msg string, kv []any) {
	if ev == nil {
		return
	}
	if len(kv) > 0 {
		ev = ev.Fields(kv)
	}
	ev.Msg(msg)
}
