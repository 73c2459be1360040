package xlevel

import "errors"

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Sink         Sink
	Settings     Settings
	Capabilities Capabilities
	Colors       ColorTable
	Observers    []Observer
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg  Config
	errs []error
}

// NewBuilder starts from DefaultSettings, the process capabilities and the
// default color table.
func NewBuilder() *Builder {
	return &Builder{cfg: Config{
		Settings:     DefaultSettings(),
		Capabilities: DefaultCapabilities(),
		Colors:       DefaultColorTable(),
	}}
}

func (b *Builder) WithSink(s Sink) *Builder {
	b.cfg.Sink = s
	return b
}

func (b *Builder) WithThreshold(l Level) *Builder {
	b.cfg.Settings.Threshold = l
	return b
}

func (b *Builder) WithColorize(on bool) *Builder {
	b.cfg.Settings.Colorize = on
	return b
}

func (b *Builder) WithCapabilities(c Capabilities) *Builder {
	b.cfg.Capabilities = c
	return b
}

// WithMode overrides only the build mode of the current capabilities.
func (b *Builder) WithMode(m BuildMode) *Builder {
	b.cfg.Capabilities.Mode = m
	return b
}

func (b *Builder) WithColors(t ColorTable) *Builder {
	b.cfg.Colors = t
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}
	if b.cfg.Sink == nil {
		return nil, ErrNoSink
	}
	return newLogger(b.cfg), nil
}
