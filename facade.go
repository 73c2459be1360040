package xlevel

// Facade helpers using the global Singleton logger.
// Usage: xlevel.Warning("disk almost full"); xlevel.SetThreshold(xlevel.LevelInfo)

func Verbose(msg any)  { L().log(LevelVerbose, msg, 0) }
func Spam(msg any)     { L().log(LevelSpam, msg, 0) }
func Debug(msg any)    { L().log(LevelDebug, msg, 0) }
func Info(msg any)     { L().log(LevelInfo, msg, 0) }
func Warning(msg any)  { L().log(LevelWarning, msg, 0) }
func Error(msg any)    { L().log(LevelError, msg, 0) }
func Critical(msg any) { L().log(LevelCritical, msg, 0) }
func Fatal(msg any)    { L().log(LevelFatal, msg, 0) }

func Verbosef(format string, args ...any) error  { return L().logf(LevelVerbose, format, args, 0) }
func Spamf(format string, args ...any) error     { return L().logf(LevelSpam, format, args, 0) }
func Debugf(format string, args ...any) error    { return L().logf(LevelDebug, format, args, 0) }
func Infof(format string, args ...any) error     { return L().logf(LevelInfo, format, args, 0) }
func Warningf(format string, args ...any) error  { return L().logf(LevelWarning, format, args, 0) }
func Errorf(format string, args ...any) error    { return L().logf(LevelError, format, args, 0) }
func Criticalf(format string, args ...any) error { return L().logf(LevelCritical, format, args, 0) }
func Fatalf(format string, args ...any) error    { return L().logf(LevelFatal, format, args, 0) }

func Assert(cond bool, msg ...any) { L().assert(cond, msg, 0) }

func Assertf(cond bool, format string, args ...any) error {
	return L().assertf(cond, format, args, 0)
}

func Exception(err error) { L().exception(err, 0) }

// LogBuildFlags reports the global logger's active build flags at DEBUG.
func LogBuildFlags() { L().logBuildFlags(0) }

// With returns a child of the global logger bound to ctx.
func With(ctx any) *Logger { return L().With(ctx) }

// Process-wide settings of the global logger.

func Enabled(level Level) bool { return L().Enabled(level) }
func Threshold() Level         { return L().Threshold() }
func SetThreshold(level Level) { L().SetThreshold(level) }
func Colorize() bool           { return L().Colorize() }
func SetColorize(on bool)      { L().SetColorize(on) }
func Snapshot() Settings       { return L().Snapshot() }
func Restore(s Settings)       { L().Restore(s) }
func Reset()                   { L().Reset() }
