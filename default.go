package xlevel

import (
	"os"
	"sync/atomic"
)

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

func init() {
	global.Store(Default())
}

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("xlevel: global logger not set. Build one and call xlevel.SetGlobal(...)")
	}
	return l
}

// Default creates a logger with default settings and process capabilities.
// It uses the sink factory an adapter registered, writing to os.Stdout, and
// falls back to a ConsoleSink otherwise.
func Default() *Logger {
	var sink Sink
	if defaultSinkFactory != nil {
		sink = defaultSinkFactory(os.Stdout)
	} else {
		sink = NewConsoleSink(ConsoleOptions{})
	}
	cfg := Config{
		Sink:         sink,
		Settings:     DefaultSettings(),
		Capabilities: DefaultCapabilities(),
		Colors:       DefaultColorTable(),
	}
	return newLogger(cfg)
}

// New creates a default logger (via Default()) and sets it as global.
// It returns the global logger for convenience.
func New() *Logger {
	l := Default()
	SetGlobal(l)
	return l
}

// UseSink sets the given sink as the global logger with the provided threshold.
// It builds the logger, sets it as global, and returns it.
func UseSink(s Sink, threshold Level, observers ...Observer) *Logger {
	b := NewBuilder().
		WithSink(s).
		WithThreshold(threshold)
	for _, o := range observers {
		b.AddObserver(o)
	}
	l, err := b.Build()
	if err != nil {
		panic(err)
	}
	SetGlobal(l)
	return l
}
