package xlevel

import (
	"fmt"
	"strings"

	"github.com/trickstertwo/xclock"
)

type Logger struct {
	sink   Sink
	st     *settings
	caps   Capabilities
	colors ColorTable

	ctx       any
	caller    Caller
	hasCaller bool
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		sink:   cfg.Sink,
		st:     newSettings(cfg.Settings, cfg.Observers),
		caps:   cfg.Capabilities,
		colors: cfg.Colors,
	}
	l.applyThreshold(cfg.Settings.Threshold)
	return l
}

// child shares sink, settings, observers and capabilities with l.
func (l *Logger) child() *Logger {
	return &Logger{
		sink:      l.sink,
		st:        l.st,
		caps:      l.caps,
		colors:    l.colors,
		ctx:       l.ctx,
		caller:    l.caller,
		hasCaller: l.hasCaller,
	}
}

// With returns a child logger that hands ctx to the sink with every message.
// Threshold and colorize stay shared with l.
func (l *Logger) With(ctx any) *Logger {
	c := l.child()
	c.ctx = ctx
	return c
}

// WithCaller returns a child logger whose messages carry the given caller
// prefix instead of one derived from the call stack. The prefix is still
// only rendered in Diagnostic mode.
func (l *Logger) WithCaller(typeName, method string) *Logger {
	c := l.child()
	c.caller = Caller{Type: typeName, Method: method}
	c.hasCaller = true
	return c
}

// Context returns the handle bound with With, or nil.
func (l *Logger) Context() any { return l.ctx }

func (l *Logger) Capabilities() Capabilities { return l.caps }

// Enabled reports whether a call at level would be emitted. Equality passes.
func (l *Logger) Enabled(level Level) bool {
	return Level(l.st.threshold.Load()) <= level
}

func (l *Logger) Threshold() Level { return Level(l.st.threshold.Load()) }

func (l *Logger) SetThreshold(level Level) {
	old := l.st.load()
	l.st.threshold.Store(int32(level))
	l.applyThreshold(level)
	l.notifyConfig(old)
}

func (l *Logger) Colorize() bool { return l.st.colorize.Load() }

func (l *Logger) SetColorize(on bool) {
	old := l.st.load()
	l.st.colorize.Store(on)
	l.notifyConfig(old)
}

// Snapshot returns the current settings, typically saved by test setup and
// handed back to Restore in teardown.
func (l *Logger) Snapshot() Settings { return l.st.load() }

func (l *Logger) Restore(s Settings) {
	old := l.st.load()
	l.st.store(s)
	l.applyThreshold(s.Threshold)
	l.notifyConfig(old)
}

// Reset restores DefaultSettings.
func (l *Logger) Reset() { l.Restore(DefaultSettings()) }

// sinkThresholdSetter is an optional interface sinks can implement to keep
// their own backend filter in step with the logger's threshold.
type sinkThresholdSetter interface {
	SetThreshold(Level)
}

func (l *Logger) applyThreshold(level Level) {
	if ts, ok := l.sink.(sinkThresholdSetter); ok {
		ts.SetThreshold(level)
	}
}

// AddObserver registers o with l and every logger sharing its settings:
// the root it was derived from and all children.
func (l *Logger) AddObserver(o Observer) { l.st.addObserver(o) }

func (l *Logger) loadObservers() []Observer { return l.st.loadObservers() }

func (l *Logger) notify(e Entry) {
	for _, o := range l.loadObservers() {
		o.OnLog(e)
	}
}

func (l *Logger) notifyConfig(old Settings) {
	obs := l.loadObservers()
	if len(obs) == 0 {
		return
	}
	change := ConfigChange{Old: old, New: l.st.load()}
	for _, o := range obs {
		if co, ok := o.(ConfigObserver); ok {
			co.OnConfig(change)
		}
	}
}

// The depth arguments below count the frames between the user's log call and
// the caller of the function receiving depth. Public entry points pass 0.

func (l *Logger) log(level Level, msg any, depth int) {
	if !l.Enabled(level) {
		return
	}
	l.emit(level, level.Severity(), render(msg), depth+1)
}

func (l *Logger) logf(level Level, format string, args []any, depth int) error {
	if !l.Enabled(level) {
		return nil
	}
	msg, err := sprintf(format, args)
	if err != nil {
		return err
	}
	l.emit(level, level.Severity(), msg, depth+1)
	return nil
}

// emit decorates an enabled message and forwards it to the sink.
func (l *Logger) emit(level Level, sev Severity, msg string, depth int) {
	if level == LevelCritical {
		msg = "!!! " + msg + " !!!"
	}

	var c Caller
	if l.caps.Mode == Diagnostic {
		c = l.resolveCaller(depth + 1)
		msg = c.Prefix() + msg
	}

	if l.caps.RichText && l.st.colorize.Load() {
		msg = wrapColor(l.colors.colorFor(level), msg)
	}

	// Single authoritative timestamp from xclock
	at := xclock.Now()
	l.sink.Log(sev, msg, at, l.ctx)

	if len(l.loadObservers()) == 0 {
		return
	}
	l.notify(Entry{
		At:       at,
		Level:    level,
		Severity: sev,
		Message:  msg,
		Context:  l.ctx,
		Caller:   c,
	})
}

func (l *Logger) resolveCaller(depth int) Caller {
	if l.hasCaller {
		return l.caller
	}
	return callerAt(depth + 1)
}

func (l *Logger) assertsEnabled() bool {
	return l.caps.Assertions && l.Enabled(LevelWarning)
}

func (l *Logger) assert(cond bool, msg []any, depth int) {
	if cond || !l.assertsEnabled() {
		return
	}
	text := "Assertion failed"
	switch len(msg) {
	case 0:
	case 1:
		text = render(msg[0])
	default:
		text = fmt.Sprint(msg...)
	}
	l.emit(LevelWarning, SeverityAssert, text, depth+1)
}

func (l *Logger) assertf(cond bool, format string, args []any, depth int) error {
	if cond || !l.assertsEnabled() {
		return nil
	}
	msg, err := sprintf(format, args)
	if err != nil {
		return err
	}
	l.emit(LevelWarning, SeverityAssert, msg, depth+1)
	return nil
}

// exception is gated at LevelCritical: only a Silent threshold drops it.
func (l *Logger) exception(err error, depth int) {
	if err == nil || !l.Enabled(LevelCritical) {
		return
	}
	if l.caps.Mode == Diagnostic {
		l.emit(LevelError, SeverityError, "exception occurred: "+fmt.Sprintf("%T", err), depth+1)
	}

	at := xclock.Now()
	l.sink.LogException(err, at, l.ctx)

	if len(l.loadObservers()) == 0 {
		return
	}
	l.notify(Entry{
		At:       at,
		Level:    LevelCritical,
		Severity: SeverityError,
		Message:  err.Error(),
		Context:  l.ctx,
		Err:      err,
	})
}

func (l *Logger) logBuildFlags(depth int) {
	if !l.Enabled(LevelDebug) {
		return
	}
	flags := l.caps.Flags()
	if len(flags) == 0 {
		return
	}
	lines := make([]string, len(flags))
	for i, f := range flags {
		lines[i] = f + " compiler flag set."
	}
	l.emit(LevelDebug, SeverityLog, strings.Join(lines, "\n"), depth+1)
}

// Level entry points. The plain forms stringify msg (nil logs NilMessage);
// the f forms return a *FormatError instead of logging when the verbs do not
// match the arguments.

func (l *Logger) Verbose(msg any)  { l.log(LevelVerbose, msg, 0) }
func (l *Logger) Spam(msg any)     { l.log(LevelSpam, msg, 0) }
func (l *Logger) Debug(msg any)    { l.log(LevelDebug, msg, 0) }
func (l *Logger) Info(msg any)     { l.log(LevelInfo, msg, 0) }
func (l *Logger) Warning(msg any)  { l.log(LevelWarning, msg, 0) }
func (l *Logger) Error(msg any)    { l.log(LevelError, msg, 0) }
func (l *Logger) Critical(msg any) { l.log(LevelCritical, msg, 0) }

// Fatal logs at LevelFatal. It does not exit the process.
func (l *Logger) Fatal(msg any) { l.log(LevelFatal, msg, 0) }

func (l *Logger) Verbosef(format string, args ...any) error {
	return l.logf(LevelVerbose, format, args, 0)
}

func (l *Logger) Spamf(format string, args ...any) error {
	return l.logf(LevelSpam, format, args, 0)
}

func (l *Logger) Debugf(format string, args ...any) error {
	return l.logf(LevelDebug, format, args, 0)
}

func (l *Logger) Infof(format string, args ...any) error {
	return l.logf(LevelInfo, format, args, 0)
}

func (l *Logger) Warningf(format string, args ...any) error {
	return l.logf(LevelWarning, format, args, 0)
}

func (l *Logger) Errorf(format string, args ...any) error {
	return l.logf(LevelError, format, args, 0)
}

func (l *Logger) Criticalf(format string, args ...any) error {
	return l.logf(LevelCritical, format, args, 0)
}

func (l *Logger) Fatalf(format string, args ...any) error {
	return l.logf(LevelFatal, format, args, 0)
}

// Log logs at a level chosen at runtime. LevelSilent and out-of-range
// levels are dropped.
func (l *Logger) Log(level Level, msg any) {
	if level >= LevelSilent || !level.valid() {
		return
	}
	l.log(level, msg, 0)
}

func (l *Logger) Logf(level Level, format string, args ...any) error {
	if level >= LevelSilent || !level.valid() {
		return nil
	}
	return l.logf(level, format, args, 0)
}

// Assert logs msg at SeverityAssert when cond is false. It never fires when
// the threshold is above LevelWarning or assertions are compiled out.
func (l *Logger) Assert(cond bool, msg ...any) { l.assert(cond, msg, 0) }

func (l *Logger) Assertf(cond bool, format string, args ...any) error {
	return l.assertf(cond, format, args, 0)
}

// Exception hands err to the sink's exception path. A nil err is ignored.
func (l *Logger) Exception(err error) { l.exception(err, 0) }

// LogBuildFlags emits one DEBUG message listing the active build flags,
// one "<FLAG> compiler flag set." line each.
func (l *Logger) LogBuildFlags() { l.logBuildFlags(0) }
