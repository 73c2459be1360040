package sentryadapter

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/trickstertwo/xlevel"
)

// Sink reports xlevel output to Sentry.
//
// LOG messages become breadcrumbs on the hub's scope and are attached to the
// next captured event. WARNING, ERROR and ASSERT messages are captured as
// Sentry messages; exceptions are captured with their type and stack trace.
type Sink struct {
	hub *sentry.Hub
}

var _ xlevel.Sink = (*Sink)(nil)

// New wraps hub. A nil hub means sentry.CurrentHub().
func New(hub *sentry.Hub) *Sink {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return &Sink{hub: hub}
}

// NewFromOptions creates a dedicated client and hub.
func NewFromOptions(opts sentry.ClientOptions) (*Sink, error) {
	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sentry client: %w", err)
	}
	return New(sentry.NewHub(client, sentry.NewScope())), nil
}

func (s *Sink) Hub() *sentry.Hub { return s.hub }

// Flush waits for buffered events to be sent.
func (s *Sink) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}

func (s *Sink) Log(sev xlevel.Severity, msg string, at time.Time, ctx any) {
	if sev == xlevel.SeverityLog {
		s.addBreadcrumb(msg, at, ctx)
		return
	}
	ev := newEvent(toSentryLevel(sev), at, ctx)
	ev.Message = msg
	ev.Tags["severity"] = sev.String()
	s.hub.CaptureEvent(ev)
}

func (s *Sink) LogException(err error, at time.Time, ctx any) {
	ev := newEvent(sentry.LevelError, at, ctx)
	ev.Message = err.Error()
	ev.Exception = []sentry.Exception{{
		Type:       fmt.Sprintf("%T", err),
		Value:      err.Error(),
		Stacktrace: sentry.ExtractStacktrace(err),
	}}
	ev.Tags["severity"] = "EXCEPTION"
	s.hub.CaptureEvent(ev)
}

func (s *Sink) addBreadcrumb(msg string, at time.Time, ctx any) {
	b := &sentry.Breadcrumb{
		Type:      "default",
		Category:  "log",
		Message:   msg,
		Level:     sentry.LevelInfo,
		Timestamp: at,
	}
	if ctx != nil {
		b.Data = map[string]any{"context": ctx}
	}
	s.hub.AddBreadcrumb(b, nil)
}

func newEvent(level sentry.Level, at time.Time, ctx any) *sentry.Event {
	ev := sentry.NewEvent()
	ev.Level = level
	ev.Timestamp = at
	ev.Logger = "xlevel"
	if ctx != nil {
		ev.Contexts["xlevel"] = sentry.Context{"context": ctx}
	}
	return ev
}

func toSentryLevel(s xlevel.Severity) sentry.Level {
	switch s {
	case xlevel.SeverityLog:
		return sentry.LevelInfo
	case xlevel.SeverityWarning:
		return sentry.LevelWarning
	default:
		return sentry.LevelError
	}
}
