package slogadapter

import (
	"io"
	"log/slog"

	"github.com/trickstertwo/xlevel"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xlevel.
// One call to Use wires a slog-backed xlevel logger and sets it global.
type Config struct {
	Writer             io.Writer            // default: os.Stdout
	Threshold          xlevel.Level         // xlevel + slog will both use this
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed by Use via LevelVar
	TimestampFieldName string               // default "ts" (aligns with xlevel's authoritative timestamp)
}

// Use builds a slog-backed xlevel logger from Config, sets it as global, and returns it.
func Use(cfg Config) *xlevel.Logger {
	l, err := newLogger(cfg.Writer, cfg.Format, cfg.Threshold, cfg.HandlerOptions, cfg.TimestampFieldName, nil)
	if err != nil {
		panic(err)
	}
	xlevel.SetGlobal(l)
	return l
}
