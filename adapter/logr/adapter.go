package logradapter

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/trickstertwo/xlevel"
)

// Adapter writes xlevel messages to a logr.Logger, so the facade can feed
// controller-runtime, klog or any other logr.LogSink.
//
// Mapping:
//   - LOG and WARNING go to Info at V(0) with a "severity" key
//   - ERROR and ASSERT go to Error with a nil error
//   - exceptions go to Error(err, "exception")
type Adapter struct {
	l logr.Logger
}

var _ xlevel.Sink = (*Adapter)(nil)

func New(l logr.Logger) *Adapter {
	return &Adapter{l: l}
}

func (a *Adapter) Log(sev xlevel.Severity, msg string, at time.Time, ctx any) {
	kv := keysAndValues(at, ctx, "severity", sev.String())
	switch sev {
	case xlevel.SeverityLog, xlevel.SeverityWarning:
		a.l.Info(msg, kv...)
	default:
		a.l.Error(nil, msg, kv...)
	}
}

func (a *Adapter) LogException(err error, at time.Time, ctx any) {
	a.l.Error(err, "exception", keysAndValues(at, ctx)...)
}

func keysAndValues(at time.Time, ctx any, extra ...any) []any {
	kv := make([]any, 0, 4+len(extra))
	kv = append(kv, extra...)
	kv = append(kv, "ts", at.UTC().Format(time.RFC3339Nano))
	if ctx != nil {
		kv = append(kv, "context", ctx)
	}
	return kv
}

// Use builds a logr-backed xlevel logger, sets it as global, and returns it.
func Use(l logr.Logger, threshold xlevel.Level) *xlevel.Logger {
	return xlevel.UseSink(New(l), threshold)
}
