package zapadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xlevel"
)

func newTestZap(buf *bytes.Buffer, lvl zapcore.LevelEnabler) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "", // disable zap's own time; we inject "ts"
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(buf), lvl))
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("json unmarshal: %v; line=%s", err, line)
		}
		out = append(out, m)
	}
	return out
}

func TestZapAdapter_JSON_EmitsTSSeverityAndContext(t *testing.T) {
	var buf bytes.Buffer
	a := New(newTestZap(&buf, zapcore.DebugLevel))

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	a.Log(xlevel.SeverityWarning, "disk low", at, "shard-3")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("lines=%d want 1", len(lines))
	}
	m := lines[0]
	if m["level"] != "warn" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "disk low" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if got, want := m["ts"], at.Format(time.RFC3339Nano); got != want {
		t.Fatalf("ts mismatch: got %v want %q", got, want)
	}
	if m["severity"] != "WARNING" {
		t.Fatalf("severity mismatch: %v", m["severity"])
	}
	if m["context"] != "shard-3" {
		t.Fatalf("context mismatch: %v", m["context"])
	}
}

func TestZapAdapter_SeverityMapping(t *testing.T) {
	cases := []struct {
		sev  xlevel.Severity
		want string
	}{
		{xlevel.SeverityLog, "info"},
		{xlevel.SeverityWarning, "warn"},
		{xlevel.SeverityError, "error"},
		{xlevel.SeverityAssert, "error"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		New(newTestZap(&buf, zapcore.DebugLevel)).Log(tc.sev, "m", time.Unix(0, 0), nil)
		m := decodeLines(t, &buf)[0]
		if m["level"] != tc.want {
			t.Fatalf("%s: level=%v want %s", tc.sev, m["level"], tc.want)
		}
		if _, ok := m["context"]; ok {
			t.Fatalf("%s: nil context should be omitted: %v", tc.sev, m)
		}
	}
}

func TestZapAdapter_Exception(t *testing.T) {
	var buf bytes.Buffer
	a := New(newTestZap(&buf, zapcore.DebugLevel))
	a.LogException(errors.New("boom"), time.Unix(0, 0).UTC(), nil)

	m := decodeLines(t, &buf)[0]
	if m["level"] != "error" || m["message"] != "exception" || m["error"] != "boom" {
		t.Fatalf("unexpected exception entry: %v", m)
	}
}

func TestZapAdapter_WithKeys(t *testing.T) {
	var buf bytes.Buffer
	a := New(newTestZap(&buf, zapcore.DebugLevel)).WithKeys("time", "ctx")
	a.Log(xlevel.SeverityLog, "ok", time.Unix(0, 0).UTC(), 7)

	m := decodeLines(t, &buf)[0]
	if _, ok := m["time"]; !ok {
		t.Fatalf("custom ts key missing: %v", m)
	}
	if m["ctx"] != float64(7) {
		t.Fatalf("custom context key mismatch: %v", m)
	}
}

func TestZapAdapter_SetThresholdMovesAtomicLevel(t *testing.T) {
	cases := []struct {
		in   xlevel.Level
		want zapcore.Level
	}{
		{xlevel.LevelVerbose, zapcore.InfoLevel},
		{xlevel.LevelDebug, zapcore.InfoLevel},
		{xlevel.LevelInfo, zapcore.InfoLevel},
		{xlevel.LevelWarning, zapcore.WarnLevel},
		{xlevel.LevelError, zapcore.ErrorLevel},
		{xlevel.LevelCritical, zapcore.ErrorLevel},
		{xlevel.LevelSilent, zapcore.FatalLevel},
	}
	al := zap.NewAtomicLevel()
	a := NewWithAtomicLevel(zap.NewNop(), &al)
	for _, tc := range cases {
		a.SetThreshold(tc.in)
		if got := al.Level(); got != tc.want {
			t.Fatalf("SetThreshold(%s): zap level=%s want %s", tc.in, got, tc.want)
		}
	}

	// Without an AtomicLevel it is a no-op.
	New(zap.NewNop()).SetThreshold(xlevel.LevelError)
}

func TestNewLogger_EndToEnd(t *testing.T) {
	orig := xclock.Default()
	t.Cleanup(func() { xclock.SetDefault(orig) })
	frozen := time.Date(2025, 1, 2, 3, 4, 5, 6, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(frozen))

	var buf bytes.Buffer
	l, err := NewLogger(Config{Writer: &buf, Threshold: xlevel.LevelWarning})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	l.Info("dropped")
	l.Critical("down")
	if err := l.Errorf("code %d", 7); err != nil {
		t.Fatalf("Errorf: %v", err)
	}

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("lines=%d want 2: %s", len(lines), buf.String())
	}
	if msg, _ := lines[0]["message"].(string); !strings.HasSuffix(msg, "!!! down !!!") {
		t.Fatalf("critical message=%q", msg)
	}
	if lines[0]["ts"] != frozen.Format(time.RFC3339Nano) {
		t.Fatalf("ts=%v want frozen clock", lines[0]["ts"])
	}
	if msg, _ := lines[1]["message"].(string); !strings.HasSuffix(msg, "code 7") {
		t.Fatalf("error message=%q", msg)
	}

	// Lowering the xlevel threshold must reopen the zap filter too.
	buf.Reset()
	l.SetThreshold(xlevel.LevelVerbose)
	l.Info("now visible")
	if got := decodeLines(t, &buf); len(got) != 1 {
		t.Fatalf("after SetThreshold: lines=%d want 1", len(got))
	}
}

func TestNewLogger_ConsoleEncoder(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLogger(Config{Writer: &buf, Console: true})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	l.Warning("careful")
	out := buf.String()
	if !strings.Contains(out, "warn") || !strings.Contains(out, "careful") {
		t.Fatalf("console output=%q", out)
	}
}

func TestUse_SetsGlobal(t *testing.T) {
	prev := xlevel.L()
	t.Cleanup(func() { xlevel.SetGlobal(prev) })

	var buf bytes.Buffer
	l := Use(Config{Writer: &buf})
	if xlevel.L() != l {
		t.Fatal("Use did not install the global logger")
	}
	xlevel.Info("via facade")
	if !strings.Contains(buf.String(), "via facade") {
		t.Fatalf("output=%q", buf.String())
	}
}
