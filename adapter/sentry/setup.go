package sentryadapter

import (
	"github.com/getsentry/sentry-go"

	"github.com/trickstertwo/xlevel"
)

// Config is an explicit, code-first configuration for sentry + xlevel.
type Config struct {
	ClientOptions sentry.ClientOptions
	Threshold     xlevel.Level // WARNING keeps LOG breadcrumbs out; lower keeps them
}

// Use builds a Sentry-backed xlevel logger, sets it as global, and returns it.
// Colorization is turned off so events never carry ANSI codes.
func Use(cfg Config) *xlevel.Logger {
	s, err := NewFromOptions(cfg.ClientOptions)
	if err != nil {
		panic(err)
	}
	l, err := xlevel.NewBuilder().
		WithSink(s).
		WithThreshold(cfg.Threshold).
		WithColorize(false).
		Build()
	if err != nil {
		panic(err)
	}
	xlevel.SetGlobal(l)
	return l
}
