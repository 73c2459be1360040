package xlevel

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConsoleSinkLines(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	s := NewConsoleSink(ConsoleOptions{Out: &out, Err: &errOut})
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Log(SeverityLog, "hello", at, nil)
	s.Log(SeverityWarning, "careful", at, "shard-3")
	s.LogException(errors.New("boom"), at, nil)

	if got, want := out.String(), "2025-01-01 00:00:00.000 [LOG] hello\n"; got != want {
		t.Fatalf("stdout = %q, want %q", got, want)
	}
	want := "2025-01-01 00:00:00.000 [WARNING] careful context=shard-3\n" +
		"2025-01-01 00:00:00.000 [EXCEPTION] boom\n"
	if got := errOut.String(); got != want {
		t.Fatalf("stderr = %q, want %q", got, want)
	}
}

func TestConsoleSinkSingleWriterNoTime(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewConsoleSink(ConsoleOptions{Out: &buf, TimeFormat: "-"})
	s.Log(SeverityAssert, "x", time.Time{}, nil)
	s.Log(SeverityLog, "y", time.Time{}, 7)

	if got, want := buf.String(), "[ASSERT] x\n[LOG] y context=7\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestConsoleSinkWriteError(t *testing.T) {
	t.Parallel()

	var got error
	s := NewConsoleSink(ConsoleOptions{
		Out:          failingWriter{},
		ErrorHandler: func(err error) { got = err },
	})
	s.Log(SeverityLog, "x", time.Time{}, nil)
	if got == nil || got.Error() != "disk full" {
		t.Fatalf("expected write error to reach the handler, got %v", got)
	}
}

func TestConsoleSinkThroughLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := NewBuilder().
		WithSink(NewConsoleSink(ConsoleOptions{Out: &buf, TimeFormat: "-"})).
		WithCapabilities(Capabilities{Mode: Optimized}).
		Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	l.Critical("down")
	if got, want := buf.String(), "[ERROR] !!! down !!!\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}
