package xlevel

import "time"

// Entry is a read-only snapshot of one sink call.
type Entry struct {
	At       time.Time
	Level    Level
	Severity Severity
	Message  string // decorated text as handed to the sink
	Context  any
	Caller   Caller // zero in Optimized mode
	Err      error  // set for exception entries only
}

// Observer is notified for each entry after the sink has received it.
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(e Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }

// ConfigChange captures a threshold or colorize update.
type ConfigChange struct {
	Old Settings
	New Settings
}

// ConfigObserver is optionally implemented by observers that want to hear
// about settings changes made through the logger they are attached to.
type ConfigObserver interface {
	OnConfig(c ConfigChange)
}
