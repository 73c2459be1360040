package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xlevel"
)

// Config is an explicit, code-first configuration for zerolog + xlevel.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	Threshold          xlevel.Level
	Colorize           bool   // ANSI colors inside messages; pairs well with Console
	Console            bool   // pretty console output instead of JSON
	ConsoleTimeFormat  string // only used if Console==true; default time.RFC3339Nano
	TimestampFieldName string // default "ts" (aligns with xlevel's authoritative timestamp)
}

// Use builds a zerolog-backed xlevel logger from Config, wires it as the global
// xlevel logger, and returns it. Timestamps come from xclock.Default(), so
// frozen/offset clocks are respected.
func Use(cfg Config) *xlevel.Logger {
	logger, err := NewLogger(cfg)
	if err != nil {
		// In practice, Build only fails with a nil sink which cannot happen here.
		panic(err)
	}
	xlevel.SetGlobal(logger)
	return logger
}

func NewLogger(cfg Config) (*xlevel.Logger, error) {
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}
	zl := newZerolog(cfg.Writer, cfg.Console, cfg.ConsoleTimeFormat, cfg.TimestampFieldName)

	ad := New(zl).WithTimestampKey(cfg.TimestampFieldName)

	return xlevel.NewBuilder().
		WithSink(ad).
		WithThreshold(cfg.Threshold).
		WithColorize(cfg.Colorize).
		Build()
}

func newZerolog(w io.Writer, console bool, timeFormat, tsKey string) zerolog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if !console {
		return zerolog.New(w)
	}
	// Align console's leading timestamp column with our authoritative ts key
	zerolog.TimestampFieldName = tsKey
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
	if timeFormat == "" {
		cw.TimeFormat = time.RFC3339Nano
	} else {
		cw.TimeFormat = timeFormat
	}
	return zerolog.New(cw)
}
