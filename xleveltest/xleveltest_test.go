package xleveltest

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/trickstertwo/xlevel"
)

var optimized = xlevel.Capabilities{Mode: xlevel.Optimized, Assertions: true}

func TestRecorder_CollectsMessagesAndExceptions(t *testing.T) {
	l, rec := NewLogger(t, xlevel.LevelVerbose, optimized)

	l.With("req-1").Info("hello")
	l.Warning("careful")
	boom := errors.New("boom")
	l.Exception(boom)

	if got, want := rec.Messages(), []string{"hello", "careful"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Messages()=%q want %q", got, want)
	}
	if ex := rec.Exceptions(); len(ex) != 1 || ex[0] != boom {
		t.Fatalf("Exceptions()=%v", ex)
	}
	recs := rec.Records()
	if recs[0].Context != "req-1" || recs[0].Severity != xlevel.SeverityLog {
		t.Fatalf("first record=%+v", recs[0])
	}
	if recs[1].Severity != xlevel.SeverityWarning {
		t.Fatalf("second record severity=%s", recs[1].Severity)
	}

	rec.Reset()
	if rec.Len() != 0 {
		t.Fatalf("Len after Reset=%d", rec.Len())
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	l, rec := NewLogger(t, xlevel.LevelVerbose, optimized)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Info("x")
			}
		}()
	}
	wg.Wait()
	if rec.Len() != 800 {
		t.Fatalf("Len=%d want 800", rec.Len())
	}
}

func TestPreserve_RestoresSettings(t *testing.T) {
	l, _ := NewLogger(t, xlevel.LevelInfo)

	t.Run("mutates", func(t *testing.T) {
		Preserve(t, l)
		l.SetThreshold(xlevel.LevelSilent)
		l.SetColorize(true)
	})

	if got := l.Threshold(); got != xlevel.LevelInfo {
		t.Fatalf("threshold after subtest=%s want INFO", got)
	}
	if l.Colorize() {
		t.Fatal("colorize should be restored to false")
	}
}

func TestUseGlobal(t *testing.T) {
	prev := xlevel.L()

	t.Run("swapped", func(t *testing.T) {
		rec := UseGlobal(t, xlevel.LevelWarning, optimized)
		xlevel.Info("dropped")
		xlevel.Error("kept")
		if got := rec.Messages(); len(got) != 1 || got[0] != "kept" {
			t.Fatalf("Messages()=%q", got)
		}
	})

	if xlevel.L() != prev {
		t.Fatal("global logger not restored")
	}
}
