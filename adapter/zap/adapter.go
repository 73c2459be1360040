package zapadapter

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xlevel"
)

// Adapter bridges xlevel to go.uber.org/zap with low overhead.
//
// Optimizations:
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Guarantees RFC3339Nano "ts" precision by writing it as a string field.
//
// Optional behavior:
//   - SetThreshold leverages zap.AtomicLevel when provided at construction time
//     to keep the backend filter in step with the xlevel threshold. If no
//     AtomicLevel is provided, SetThreshold is a no-op (xlevel filtering still applies).
type Adapter struct {
	l      *zap.Logger
	al     *zap.AtomicLevel // optional, enables SetThreshold
	tsKey  string           // timestamp field key; default "ts"
	ctxKey string           // context field key; default "context"
}

// New creates an adapter for the provided zap logger.
func New(l *zap.Logger) *Adapter {
	return NewWithAtomicLevel(l, nil)
}

// NewWithAtomicLevel creates an adapter and wires a zap.AtomicLevel so
// SetThreshold can dynamically adjust the backend's filter.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	return &Adapter{l: l, al: al, tsKey: "ts", ctxKey: "context"}
}

// WithKeys returns a copy using the given timestamp and context field keys.
// Empty keys keep the current ones.
func (a *Adapter) WithKeys(tsKey, ctxKey string) *Adapter {
	child := *a
	if tsKey != "" {
		child.tsKey = tsKey
	}
	if ctxKey != "" {
		child.ctxKey = ctxKey
	}
	return &child
}

// Log emits a single entry.
// - Uses xlevel's authoritative timestamp as tsKey with RFC3339Nano precision.
// - Adds "severity" so ASSERT stays distinguishable from ERROR.
func (a *Adapter) Log(sev xlevel.Severity, msg string, at time.Time, ctx any) {
	// Fast path: skip if disabled. Avoids building fields.
	ce := a.l.Check(toZapLevel(sev), msg)
	if ce == nil {
		return
	}
	zfs := make([]zap.Field, 0, 3)
	zfs = append(zfs,
		zap.String(a.tsKey, at.UTC().Format(time.RFC3339Nano)),
		zap.String("severity", sev.String()),
	)
	if ctx != nil {
		zfs = append(zfs, zap.Any(a.ctxKey, ctx))
	}
	ce.Write(zfs...)
}

// LogException writes err at error level under the message "exception".
func (a *Adapter) LogException(err error, at time.Time, ctx any) {
	ce := a.l.Check(zapcore.ErrorLevel, "exception")
	if ce == nil {
		return
	}
	zfs := make([]zap.Field, 0, 3)
	zfs = append(zfs,
		zap.String(a.tsKey, at.UTC().Format(time.RFC3339Nano)),
		zap.Error(err),
	)
	if ctx != nil {
		zfs = append(zfs, zap.Any(a.ctxKey, ctx))
	}
	ce.Write(zfs...)
}

// SetThreshold updates the backend filter when an AtomicLevel was supplied.
func (a *Adapter) SetThreshold(l xlevel.Level) {
	if a.al == nil {
		return
	}
	a.al.SetLevel(thresholdToZap(l))
}

// toZapLevel maps a sink severity. Assertions are logged at error level;
// zap's DPanic/Panic/Fatal are never used from library code.
func toZapLevel(s xlevel.Severity) zapcore.Level {
	switch s {
	case xlevel.SeverityLog:
		return zapcore.InfoLevel
	case xlevel.SeverityWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// thresholdToZap returns the lowest zap level any message admitted at the
// xlevel threshold l can map to.
func thresholdToZap(l xlevel.Level) zapcore.Level {
	switch {
	case l <= xlevel.LevelInfo:
		return zapcore.InfoLevel
	case l == xlevel.LevelWarning:
		return zapcore.WarnLevel
	case l <= xlevel.LevelCritical:
		return zapcore.ErrorLevel
	default:
		// SILENT: nothing is ever written above error.
		return zapcore.FatalLevel
	}
}
