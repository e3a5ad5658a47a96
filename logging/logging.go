// Package logging owns the process-wide slog logger of the elimination
// tools. Setup installs it from configuration names; New hands out
// component loggers that share one adjustable level.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the slog handler.
type Format string

const (
	Text Format = "text" // logfmt-style key=value lines
	JSON Format = "json" // one JSON object per record
)

var (
	// ErrUnknownLevel is returned by ParseLevel.
	ErrUnknownLevel = errors.New("logging: unknown level")

	// ErrUnknownFormat is returned by ParseFormat.
	ErrUnknownFormat = errors.New("logging: unknown format")
)

// level is shared by every handler Init installs, so SetLevel takes effect
// on loggers already handed out.
var level = new(slog.LevelVar)

// Setup parses the level and format names and installs the default logger
// writing to w (os.Stderr when nil).
func Setup(levelName, formatName string, w io.Writer) error {
	lv, err := ParseLevel(levelName)
	if err != nil {
		return err
	}
	f, err := ParseFormat(formatName)
	if err != nil {
		return err
	}
	Init(lv, f, w)
	return nil
}

// Init installs the default logger with the given level and format.
func Init(lv slog.Level, f Format, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	level.Set(lv)
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if f == JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(h))
}

// SetLevel changes the level of the installed logger.
func SetLevel(lv slog.Level) { level.Set(lv) }

// Level reports the current level.
func Level() slog.Level { return level.Level() }

// New returns the default logger tagged with component.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog.Level.
// The empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// ParseFormat maps text|json to a Format. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", Text:
		return Text, nil
	case JSON:
		return JSON, nil
	}
	return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
