// Package logger builds the daemon's structured logger, adapted from
// the teacher's internal/logger: a global level gate, a TUI output
// hook reserved for a future terminal dashboard, and a choice between
// JSON output (production) and a compact human-readable line format
// (development), both built on log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// TUIHandler receives every log line in addition to the configured
// writer(s), for a future terminal dashboard.
type TUIHandler interface {
	Write(level slog.Level, message string)
}

var (
	globalLevel  = slog.LevelInfo
	tuiHandler   TUIHandler
	handlerMutex sync.RWMutex
)

// SetLevel sets the global log level gate.
func SetLevel(levelStr string) {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	globalLevel = ParseLevel(levelStr)
}

// ParseLevel parses a level name, defaulting to Info for anything
// unrecognized.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// AddTUIHandler registers a TUI output hook.
func AddTUIHandler(h TUIHandler) {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	tuiHandler = h
}

// tuiForwardingHandler wraps a slog.Handler and additionally forwards
// every record to the registered TUIHandler, if any.
type tuiForwardingHandler struct {
	slog.Handler
}

func (h tuiForwardingHandler) Handle(ctx context.Context, record slog.Record) error {
	handlerMutex.RLock()
	tui := tuiHandler
	handlerMutex.RUnlock()
	if tui != nil {
		tui.Write(record.Level, record.Message)
	}
	return h.Handler.Handle(ctx, record)
}

func (h tuiForwardingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return tuiForwardingHandler{h.Handler.WithAttrs(attrs)}
}

func (h tuiForwardingHandler) WithGroup(name string) slog.Handler {
	return tuiForwardingHandler{h.Handler.WithGroup(name)}
}

// levelVar implements slog.Leveler against the package's global level,
// so a SetLevel call after New is still honored by handlers built
// against it.
type levelVar struct{}

func (levelVar) Level() slog.Level {
	handlerMutex.RLock()
	defer handlerMutex.RUnlock()
	return globalLevel
}

// New builds the daemon's root logger. json selects slog.JSONHandler
// (production); otherwise a slog.TextHandler is used (development).
func New(out io.Writer, json bool, levelStr string) *slog.Logger {
	SetLevel(levelStr)
	opts := &slog.HandlerOptions{Level: levelVar{}}
	var base slog.Handler
	if json {
		base = slog.NewJSONHandler(out, opts)
	} else {
		base = slog.NewTextHandler(out, opts)
	}
	return slog.New(tuiForwardingHandler{base})
}
