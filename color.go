package xlevel

// Color is an ANSI SGR prefix.
type Color string

const (
	ColorReset Color = "\033[0m"
	ColorBold  Color = "\033[1m"

	ColorRed     Color = "\033[31m"
	ColorGreen   Color = "\033[32m"
	ColorYellow  Color = "\033[33m"
	ColorBlue    Color = "\033[34m"
	ColorMagenta Color = "\033[35m"
	ColorCyan    Color = "\033[36m"

	ColorBrightBlack Color = "\033[90m"
	ColorBrightRed   Color = "\033[91m"
)

// ColorTable maps the colored categories to their color. Only verbose, info
// and critical messages are ever colored.
type ColorTable struct {
	Spam     Color
	Info     Color
	Critical Color
}

func DefaultColorTable() ColorTable {
	return ColorTable{
		Spam:     ColorBrightBlack,
		Info:     ColorGreen,
		Critical: ColorBrightRed + ColorBold,
	}
}

// colorFor returns the color for a level, or "" when the level is never colored.
func (t ColorTable) colorFor(l Level) Color {
	switch l {
	case LevelVerbose:
		return t.Spam
	case LevelInfo:
		return t.Info
	case LevelCritical:
		return t.Critical
	default:
		return ""
	}
}

func wrapColor(c Color, s string) string {
	if c == "" {
		return s
	}
	return string(c) + s + string(ColorReset)
}
