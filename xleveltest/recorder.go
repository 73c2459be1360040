// Package xleveltest provides helpers for testing code that logs through xlevel.
package xleveltest

import (
	"sync"
	"time"

	"github.com/trickstertwo/xlevel"
)

// Record is one call received by a Recorder. Err is set for exceptions.
type Record struct {
	Severity xlevel.Severity
	Message  string
	At       time.Time
	Context  any
	Err      error
}

// Recorder is an xlevel.Sink that keeps everything it receives in memory.
// Safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

var _ xlevel.Sink = (*Recorder)(nil)

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Log(sev xlevel.Severity, msg string, at time.Time, ctx any) {
	r.mu.Lock()
	r.records = append(r.records, Record{Severity: sev, Message: msg, At: at, Context: ctx})
	r.mu.Unlock()
}

func (r *Recorder) LogException(err error, at time.Time, ctx any) {
	r.mu.Lock()
	r.records = append(r.records, Record{Severity: xlevel.SeverityError, Message: err.Error(), At: at, Context: ctx, Err: err})
	r.mu.Unlock()
}

// Records returns a copy of everything received so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Record(nil), r.records...)
}

// Messages returns the message text of every non-exception record.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.records))
	for _, rec := range r.records {
		if rec.Err == nil {
			out = append(out, rec.Message)
		}
	}
	return out
}

// Exceptions returns the errors passed to LogException, in order.
func (r *Recorder) Exceptions() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []error
	for _, rec := range r.records {
		if rec.Err != nil {
			out = append(out, rec.Err)
		}
	}
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}
