package xlevel

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Env:
//
//	XLEVEL_THRESHOLD: verbose|spam|debug|info|warning|error|critical|fatal|silent or 0..6
//	XLEVEL_COLORIZE : any strconv.ParseBool value
const (
	EnvThreshold = "XLEVEL_THRESHOLD"
	EnvColorize  = "XLEVEL_COLORIZE"
)

// FromEnv overrides settings from the environment. Invalid values are
// reported by Build.
func (b *Builder) FromEnv() *Builder {
	return b.fromLookup(os.LookupEnv)
}

func (b *Builder) fromLookup(lookup func(string) (string, bool)) *Builder {
	if v, ok := lookup(EnvThreshold); ok && strings.TrimSpace(v) != "" {
		lvl, err := ParseLevel(v)
		if err != nil {
			b.errs = append(b.errs, fmt.Errorf("%s: %w", EnvThreshold, err))
		} else {
			b.cfg.Settings.Threshold = lvl
		}
	}
	if v, ok := lookup(EnvColorize); ok && strings.TrimSpace(v) != "" {
		on, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			b.errs = append(b.errs, fmt.Errorf("%s: %w", EnvColorize, err))
		} else {
			b.cfg.Settings.Colorize = on
		}
	}
	return b
}
