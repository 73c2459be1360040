package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xlevel"
)

// Config is an explicit, code-first configuration for zap + xlevel.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	Threshold          xlevel.Level
	Colorize           bool                  // ANSI colors in messages; leave off for JSON
	Console            bool                  // pretty console-like output via zapcore.NewConsoleEncoder
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts" (aligns with xlevel's authoritative timestamp)
}

// Use builds a zap-backed xlevel logger from Config,
// wires it as the global xlevel logger, and returns it.
func Use(cfg Config) *xlevel.Logger {
	logger, err := NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	xlevel.SetGlobal(logger)
	return logger
}

// NewLogger builds a zap-backed xlevel logger without touching the global one.
func NewLogger(cfg Config) (*xlevel.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Encoder config defaults: do not let zap inject its own time (xlevel provides "ts")
	encCfg := cfg.EncoderConfig
	if encCfg.TimeKey == "" && encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "", // xlevel injects "ts"
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder, // used if you yourself add zap.Time fields
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	} else {
		// Ensure zap itself doesn't add an extra time field
		encCfg.TimeKey = ""
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// Use AtomicLevel so Adapter.SetThreshold can adjust dynamically.
	al := zap.NewAtomicLevelAt(thresholdToZap(cfg.Threshold))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)
	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1)) // effectively off

	ad := NewWithAtomicLevel(zl, &al).WithKeys(cfg.TimestampFieldName, "")

	return xlevel.NewBuilder().
		WithSink(ad).
		WithThreshold(cfg.Threshold).
		WithColorize(cfg.Colorize).
		Build()
}
