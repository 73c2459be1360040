package slogadapter

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/trickstertwo/xlevel"
)

// SlogAdapter adapts xlevel to the Go slog API (Sink Strategy).
// It builds slog.Attrs directly for low overhead and uses LogAttrs.
type SlogAdapter struct {
	l     *slog.Logger
	lv    *slog.LevelVar // optional, enables SetThreshold
	tsKey string
}

func toSlog(s xlevel.Severity) slog.Level {
	switch s {
	case xlevel.SeverityLog:
		return slog.LevelInfo
	case xlevel.SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func thresholdToSlog(l xlevel.Level) slog.Level {
	switch {
	case l <= xlevel.LevelInfo:
		return slog.LevelInfo
	case l == xlevel.LevelWarning:
		return slog.LevelWarn
	case l <= xlevel.LevelCritical:
		return slog.LevelError
	default:
		return slog.LevelError + 4
	}
}

func New(l *slog.Logger) *SlogAdapter {
	return NewWithTimestampKey(l, nil, "")
}

// NewWithTimestampKey wires an optional LevelVar (for SetThreshold) and the
// attribute key receiving xlevel's timestamp ("ts" when empty).
func NewWithTimestampKey(l *slog.Logger, lv *slog.LevelVar, tsKey string) *SlogAdapter {
	if l == nil {
		l = slog.Default()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &SlogAdapter{l: l, lv: lv, tsKey: tsKey}
}

func (a *SlogAdapter) Log(sev xlevel.Severity, msg string, at time.Time, ctx any) {
	lvl := toSlog(sev)
	if !a.l.Enabled(context.Background(), lvl) {
		return
	}
	attrs := make([]slog.Attr, 0, 3)

	// Single authoritative timestamp provided by Logger
	attrs = append(attrs,
		slog.Time(a.tsKey, at),
		slog.String("severity", sev.String()),
	)
	if ctx != nil {
		attrs = append(attrs, slog.Any("context", ctx))
	}

	// Use LogAttrs for minimal allocations
	a.l.LogAttrs(context.Background(), lvl, msg, attrs...)
}

func (a *SlogAdapter) LogException(err error, at time.Time, ctx any) {
	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs, slog.Time(a.tsKey, at), slog.Any("error", err))
	if ctx != nil {
		attrs = append(attrs, slog.Any("context", ctx))
	}
	a.l.LogAttrs(context.Background(), slog.LevelError, "exception", attrs...)
}

func (a *SlogAdapter) SetThreshold(l xlevel.Level) {
	if a.lv == nil {
		return
	}
	a.lv.Set(thresholdToSlog(l))
}

// NewJSONLogger builds an xlevel.Logger wired to a slog JSON handler.
func NewJSONLogger(w io.Writer, threshold xlevel.Level, opts *slog.HandlerOptions, observers ...xlevel.Observer) (*xlevel.Logger, error) {
	return newLogger(w, FormatJSON, threshold, opts, "", observers)
}

// NewTextLogger builds an xlevel.Logger wired to a slog text handler.
func NewTextLogger(w io.Writer, threshold xlevel.Level, opts *slog.HandlerOptions, observers ...xlevel.Observer) (*xlevel.Logger, error) {
	return newLogger(w, FormatText, threshold, opts, "", observers)
}

func newLogger(w io.Writer, f Format, threshold xlevel.Level, opts *slog.HandlerOptions, tsKey string, observers []xlevel.Observer) (*xlevel.Logger, error) {
	if w == nil {
		w = os.Stdout
	}
	var o slog.HandlerOptions
	if opts != nil {
		o = *opts
	}

	// Use a LevelVar to allow dynamic SetThreshold on the adapter.
	lv := new(slog.LevelVar)
	lv.Set(thresholdToSlog(threshold))
	o.Level = lv

	var h slog.Handler
	if f == FormatText {
		h = slog.NewTextHandler(w, &o)
	} else {
		h = slog.NewJSONHandler(w, &o)
	}
	ad := NewWithTimestampKey(slog.New(h), lv, tsKey)

	b := xlevel.NewBuilder().
		WithSink(ad).
		WithThreshold(threshold)
	for _, obs := range observers {
		b = b.AddObserver(obs)
	}
	return b.Build()
}
