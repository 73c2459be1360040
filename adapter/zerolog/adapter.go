package zerologadapter

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xlevel"
)

// Adapter bridges xlevel to rs/zerolog with low overhead.
//
// Optimizations:
//   - Fast pre-check against an atomically stored minimum level to avoid
//     allocating a zerolog.Event when the level is disabled.
//   - Uses Logger.WithLevel(...) to avoid a level switch at call sites.
type Adapter struct {
	l      zerolog.Logger
	min    atomic.Int32 // zerolog.Level kept in step with the xlevel threshold
	tsKey  string
	ctxKey string
}

func New(l zerolog.Logger) *Adapter {
	a := &Adapter{l: l, tsKey: "ts", ctxKey: "context"}
	a.min.Store(int32(l.GetLevel()))
	return a
}

// WithTimestampKey sets the field receiving xlevel's timestamp. Empty keeps "ts".
func (a *Adapter) WithTimestampKey(key string) *Adapter {
	if key != "" {
		a.tsKey = key
	}
	return a
}

// Log emits a single entry.
// - Single authoritative timestamp provided by xlevel passed as "ts".
// - Assertions are written at error level with severity=ASSERT.
func (a *Adapter) Log(sev xlevel.Severity, msg string, at time.Time, ctx any) {
	zlvl := toZerologLevel(sev)

	// Fast path: drop early if below min level (no Event allocation).
	if zlvl < zerolog.Level(a.min.Load()) {
		return
	}

	ev := a.l.WithLevel(zlvl)
	if ev == nil {
		return
	}

	// Ensure RFC3339Nano precision regardless of zerolog.TimeFieldFormat defaults.
	// Using a string avoids global config changes and keeps output deterministic.
	ev.Str(a.tsKey, at.UTC().Format(time.RFC3339Nano))
	ev.Str("severity", sev.String())
	if ctx != nil {
		ev.Interface(a.ctxKey, ctx)
	}
	ev.Msg(msg)
}

func (a *Adapter) LogException(err error, at time.Time, ctx any) {
	if zerolog.ErrorLevel < zerolog.Level(a.min.Load()) {
		return
	}
	ev := a.l.WithLevel(zerolog.ErrorLevel)
	if ev == nil {
		return
	}
	ev.Str(a.tsKey, at.UTC().Format(time.RFC3339Nano)).Err(err)
	if ctx != nil {
		ev.Interface(a.ctxKey, ctx)
	}
	ev.Msg("exception")
}

// SetThreshold keeps the zerolog filter in step with the xlevel threshold
// (optional interface picked up by xlevel.Logger).
func (a *Adapter) SetThreshold(l xlevel.Level) {
	a.min.Store(int32(thresholdToZerolog(l)))
}

// toZerologLevel converts a sink severity to a zerolog.Level.
// zerolog.Fatal/Panic are never used: they would exit or panic.
func toZerologLevel(s xlevel.Severity) zerolog.Level {
	switch s {
	case xlevel.SeverityLog:
		return zerolog.InfoLevel
	case xlevel.SeverityWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func thresholdToZerolog(l xlevel.Level) zerolog.Level {
	switch {
	case l <= xlevel.LevelInfo:
		return zerolog.InfoLevel
	case l == xlevel.LevelWarning:
		return zerolog.WarnLevel
	case l <= xlevel.LevelCritical:
		return zerolog.ErrorLevel
	default:
		return zerolog.Disabled
	}
}
