package tint

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level as disabled, so
// Debug calls on the default logger never build their attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// active is the only mutable package state.
var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silent)
}

// SetLogger routes tint's debug records to l. A nil l silences them again.
// It may be called while other goroutines convert colors.
//
// Records are emitted at [slog.LevelDebug] for each forward conversion
// (the step that grows a lineage) and each lightness adjustment that
// discards one:
//
//	tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
//		&slog.HandlerOptions{Level: slog.LevelDebug})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return active.Load()
}
