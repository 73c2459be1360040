package xlevel

// Severity is the coarse class a Sink receives with every message.
type Severity uint8

const (
	SeverityLog Severity = iota
	SeverityWarning
	SeverityError
	SeverityAssert
)

func (s Severity) String() string {
	switch s {
	case SeverityLog:
		return "LOG"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityAssert:
		return "ASSERT"
	default:
		return "UNKNOWN"
	}
}
