package table

import (
	"fmt"
	"strings"
)

// PaddingPolicy decides what gives way when a column is narrower than its
// content plus padding.
type PaddingPolicy int

const (
	// KeepPadding keeps both paddings as long as possible and clips the text first.
	KeepPadding PaddingPolicy = iota
	// CutPadding clips the right padding before the text.
	CutPadding
)

func (p PaddingPolicy) String() string {
	if p == CutPadding {
		return "cut-padding"
	}
	return "keep-padding"
}

// ParsePaddingPolicy accepts "keep-padding" or "cut-padding".
func ParsePaddingPolicy(s string) (PaddingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "keep-padding", "keep", "":
		return KeepPadding, nil
	case "cut-padding", "cut":
		return CutPadding, nil
	}
	return KeepPadding, fmt.Errorf("unknown padding policy %q (expected keep-padding or cut-padding)", s)
}

// Level is the severity of a diagnostic passed to a LogFunc.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLevel accepts error, warn, info or debug.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// LogFunc receives diagnostics such as out-of-range cell access.
type LogFunc func(level Level, msg string)

// Config carries the settings every render of a table reads: the padding
// policy, an optional output limit and the logging collaborator. Tables
// sharing one *Config all follow changes made to it.
//
// The zero value keeps padding, renders without limit and logs nothing.
type Config struct {
	Policy PaddingPolicy
	// MaxOutput bounds the rendered size in bytes; 0 means unbounded.
	MaxOutput int

	logFn     LogFunc
	threshold Level
	prefix    string
}

// NewConfig returns a default configuration.
func NewConfig() *Config {
	return &Config{}
}

// SetLogFunc registers fn as the diagnostic sink. Messages more verbose
// than threshold are dropped; prefix is prepended to every message.
// A nil fn disables logging.
func (c *Config) SetLogFunc(fn LogFunc, threshold Level, prefix string) {
	c.logFn = fn
	c.threshold = threshold
	c.prefix = prefix
}

func (c *Config) logf(level Level, format string, args ...any) {
	if c == nil || c.logFn == nil || level > c.threshold {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if c.prefix != "" {
		msg = c.prefix + " : " + msg
	}
	c.logFn(level, msg)
}
