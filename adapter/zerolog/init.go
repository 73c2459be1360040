package zerologadapter

import (
	"io"
	"os"

	"github.com/trickstertwo/xlevel"
)

// Env:
//
//	XLEVEL_ZEROLOG_CONSOLE=1         : enable ConsoleWriter (pretty output)
//	XLEVEL_ZEROLOG_TIMEFORMAT=...    : optional console time layout (default RFC3339Nano)
//
// Importing this package makes xlevel.Default() (and xlevel.New()) build
// zerolog-backed loggers.
const (
	EnvConsole    = "XLEVEL_ZEROLOG_CONSOLE"
	EnvTimeFormat = "XLEVEL_ZEROLOG_TIMEFORMAT"
)

func init() {
	xlevel.RegisterDefaultSinkFactory(factoryFromEnv(os.Getenv))
}

func factoryFromEnv(getenv func(string) string) func(io.Writer) xlevel.Sink {
	return func(w io.Writer) xlevel.Sink {
		console := getenv(EnvConsole) == "1"
		zl := newZerolog(w, console, getenv(EnvTimeFormat), "ts")
		return New(zl)
	}
}
