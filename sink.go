package xlevel

import (
	"io"
	"time"
)

// Sink is the rendering backend Strategy (console, zap, zerolog, slog...).
// Log receives the single authoritative timestamp 'at' from the Logger so the
// sink and observers agree on it. ctx is the opaque handle bound with
// Logger.With, or nil.
type Sink interface {
	Log(sev Severity, msg string, at time.Time, ctx any)
	LogException(err error, at time.Time, ctx any)
}

// defaultSinkFactory is set by an adapter package in its init() to avoid
// import cycles. Default() falls back to a ConsoleSink when unset.
var defaultSinkFactory func(w io.Writer) Sink

// RegisterDefaultSinkFactory registers the constructor used by xlevel.Default().
// Adapters call this from init():
//
//	func init() {
//	  xlevel.RegisterDefaultSinkFactory(func(w io.Writer) xlevel.Sink {
//	    return zerologadapter.New(zerolog.New(w))
//	  })
//	}
func RegisterDefaultSinkFactory(f func(io.Writer) Sink) {
	defaultSinkFactory = f
}
