package xlevel

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
)

const defaultConsoleTimeFormat = "2006-01-02 15:04:05.000"

// ConsoleOptions configures a ConsoleSink. The zero value writes LOG lines to
// stdout and everything else to stderr, both through go-colorable so ANSI
// colors survive on Windows consoles.
type ConsoleOptions struct {
	Out io.Writer
	// Err receives WARNING, ERROR and ASSERT lines and exceptions.
	// Defaults to Out when Out is set.
	Err io.Writer
	// TimeFormat for the leading column; "-" drops the column.
	TimeFormat string
	// ErrorHandler receives write failures. Defaults to printing on stderr.
	ErrorHandler func(error)
}

// ConsoleSink writes one text line per call:
//
//	2025-01-01 00:00:00.000 [WARNING] [Cache.Evict] evicting 12 entries context=shard-3
type ConsoleSink struct {
	mu         sync.Mutex
	out        io.Writer
	err        io.Writer
	timeFormat string
	onError    func(error)
	buf        []byte
}

func defaultConsoleErrorHandler(err error) { fmt.Fprintf(os.Stderr, "xlevel error: %v\n", err) }

func NewConsoleSink(opts ConsoleOptions) *ConsoleSink {
	s := &ConsoleSink{
		out:        opts.Out,
		err:        opts.Err,
		timeFormat: opts.TimeFormat,
		onError:    opts.ErrorHandler,
		buf:        make([]byte, 0, 256),
	}
	if s.out == nil {
		s.out = colorable.NewColorableStdout()
		if s.err == nil {
			s.err = colorable.NewColorableStderr()
		}
	}
	if s.err == nil {
		s.err = s.out
	}
	if s.timeFormat == "" {
		s.timeFormat = defaultConsoleTimeFormat
	}
	if s.onError == nil {
		s.onError = defaultConsoleErrorHandler
	}
	return s
}

func (s *ConsoleSink) Log(sev Severity, msg string, at time.Time, ctx any) {
	w := s.out
	if sev != SeverityLog {
		w = s.err
	}
	s.write(w, sev.String(), msg, at, ctx)
}

func (s *ConsoleSink) LogException(err error, at time.Time, ctx any) {
	s.write(s.err, "EXCEPTION", err.Error(), at, ctx)
}

func (s *ConsoleSink) write(w io.Writer, tag, msg string, at time.Time, ctx any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.buf[:0]
	if s.timeFormat != "-" {
		b = at.AppendFormat(b, s.timeFormat)
		b = append(b, ' ')
	}
	b = append(b, '[')
	b = append(b, tag...)
	b = append(b, "] "...)
	b = append(b, msg...)
	if ctx != nil {
		b = append(b, " context="...)
		b = fmt.Append(b, ctx)
	}
	b = append(b, '\n')

	if _, err := w.Write(b); err != nil {
		s.onError(err)
	}
	// allow GC of large backing arrays by capping
	if cap(b) > 64<<10 {
		b = make([]byte, 0, 256)
	}
	s.buf = b
}
