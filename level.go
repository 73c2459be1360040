package xlevel

import (
	"fmt"
	"strconv"
	"strings"
)

// Level orders log importance. A call is emitted when the process threshold
// is less than or equal to its level. Spam/Verbose and Fatal/Critical are
// aliases sharing one value; LevelSilent sits above every real level and is
// only meaningful as a threshold.
type Level int

const (
	LevelVerbose Level = iota
	LevelDebug
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
	LevelSilent
)

const (
	LevelSpam  = LevelVerbose
	LevelFatal = LevelCritical
)

var levelNames = [...]string{
	LevelVerbose:  "VERBOSE",
	LevelDebug:    "DEBUG",
	LevelInfo:     "INFO",
	LevelWarning:  "WARNING",
	LevelError:    "ERROR",
	LevelCritical: "CRITICAL",
	LevelSilent:   "SILENT",
}

// String returns the canonical name; aliases render as their canonical level.
func (l Level) String() string {
	if l.valid() {
		return levelNames[l]
	}
	return "LEVEL(" + strconv.Itoa(int(l)) + ")"
}

func (l Level) valid() bool {
	return l >= LevelVerbose && l <= LevelSilent
}

// Severity returns the sink class used for messages logged at l.
func (l Level) Severity() Severity {
	switch {
	case l <= LevelInfo:
		return SeverityLog
	case l == LevelWarning:
		return SeverityWarning
	default:
		return SeverityError
	}
}

// ParseLevel accepts level names and aliases case-insensitively, or the
// decimal value of a level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose", "spam", "trace":
		return LevelVerbose, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "critical", "fatal":
		return LevelCritical, nil
	case "silent", "off", "none":
		return LevelSilent, nil
	}
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && Level(n).valid() {
		return Level(n), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
