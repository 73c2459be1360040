package xlevel

import (
	"os"

	"github.com/mattn/go-isatty"
)

// BuildMode selects how much decoration work a logger performs.
type BuildMode uint8

const (
	// Diagnostic derives a "[Type.Method] " caller prefix for every emitted
	// message and logs an extra line before exceptions.
	Diagnostic BuildMode = iota
	// Optimized skips both.
	Optimized
)

func (m BuildMode) String() string {
	if m == Optimized {
		return "optimized"
	}
	return "diagnostic"
}

// Capabilities are resolved once per process and copied into every Logger.
// The compiled-in defaults come from build tags:
//
//	xlevel_optimized   Mode = Optimized
//	xlevel_noassert    Assertions = false
//	xlevel_norichtext  RichText = false (otherwise: stdout is a terminal)
type Capabilities struct {
	Mode       BuildMode
	RichText   bool
	Assertions bool
}

var processCapabilities = detectCapabilities()

func detectCapabilities() Capabilities {
	return Capabilities{
		Mode:       compiledMode,
		RichText:   compiledRichText && stdoutIsTerminal(),
		Assertions: compiledAssertions,
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// DefaultCapabilities returns the capabilities detected at process start.
func DefaultCapabilities() Capabilities { return processCapabilities }

// Flags lists the active build flags by name, in a stable order.
func (c Capabilities) Flags() []string {
	flags := make([]string, 0, 3)
	if c.Mode == Optimized {
		flags = append(flags, "XLEVEL_OPTIMIZED")
	} else {
		flags = append(flags, "XLEVEL_DIAGNOSTIC")
	}
	if c.RichText {
		flags = append(flags, "XLEVEL_RICH_TEXT")
	}
	if c.Assertions {
		flags = append(flags, "XLEVEL_ASSERTIONS")
	}
	return flags
}
