package xleveltest

import (
	"testing"

	"github.com/trickstertwo/xlevel"
)

// Preserve snapshots l's threshold and colorize settings and restores them
// when the test finishes.
func Preserve(tb testing.TB, l *xlevel.Logger) {
	tb.Helper()
	saved := l.Snapshot()
	tb.Cleanup(func() { l.Restore(saved) })
}

// NewLogger builds a logger over a fresh Recorder with colorization off.
// Optional capabilities replace the process ones, e.g. to force Optimized mode.
func NewLogger(tb testing.TB, threshold xlevel.Level, caps ...xlevel.Capabilities) (*xlevel.Logger, *Recorder) {
	tb.Helper()
	rec := NewRecorder()
	b := xlevel.NewBuilder().
		WithSink(rec).
		WithThreshold(threshold).
		WithColorize(false)
	if len(caps) > 0 {
		b = b.WithCapabilities(caps[0])
	}
	l, err := b.Build()
	if err != nil {
		tb.Fatalf("xleveltest: build logger: %v", err)
	}
	return l, rec
}

// UseGlobal installs a recording logger as the xlevel global for the
// duration of the test. Tests using it must not run in parallel.
func UseGlobal(tb testing.TB, threshold xlevel.Level, caps ...xlevel.Capabilities) *Recorder {
	tb.Helper()
	l, rec := NewLogger(tb, threshold, caps...)
	prev := xlevel.L()
	xlevel.SetGlobal(l)
	tb.Cleanup(func() { xlevel.SetGlobal(prev) })
	return rec
}
