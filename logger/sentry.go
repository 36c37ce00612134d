package logger

import (
	"fmt"

	"github.com/getsentry/sentry-go"
)

// sentryFrames is the frame SentryLogger.report adds between a caller and ConsoleLogger.log.
const sentryFrames = 1

var sentryLevels = map[LogLevel]sentry.Level{
	LogLevelWarn:  sentry.LevelWarning,
	LogLevelError: sentry.LevelError,
	LogLevelFatal: sentry.LevelFatal,
}

// A SentryLogger prints through a ConsoleLogger
// and ships the errors logged at WARN and above to Sentry.
type SentryLogger struct {
	cl *ConsoleLogger
}

// NewSentryLogger constructs a SentryLogger printing through cl.
// If Sentry cannot be initialized with dsn, the error is logged and cl is returned.
func NewSentryLogger(cl *ConsoleLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: cl.env,
	})
	if err != nil {
		cl.Error(fmt.Sprintf("unable to init Sentry: %s", err), nil)
		return cl
	}

	return &SentryLogger{cl: cl.withSkip(cl.Skip() + sentryFrames)}
}

// AddSkip returns a copy of sl scrolling back i frames past its caller.
func (sl *SentryLogger) AddSkip(i int) SkipLogger {
	return &SentryLogger{cl: sl.cl.withSkip(i + sentryFrames)}
}

func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.report(LogLevelDebug, msg, ctx) }
func (sl *SentryLogger) Error(msg string, ctx *LogContext) { sl.report(LogLevelError, msg, ctx) }
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) { sl.report(LogLevelFatal, msg, ctx) }
func (sl *SentryLogger) Info(msg string, ctx *LogContext)  { sl.report(LogLevelInfo, msg, ctx) }
func (sl *SentryLogger) Warn(msg string, ctx *LogContext)  { sl.report(LogLevelWarn, msg, ctx) }

// LogLevel returns the LogLevel set for the SentryLogger.
func (sl *SentryLogger) LogLevel() LogLevel { return sl.cl.ll }

// Skip returns how many frames past its caller sl scrolls back.
func (sl *SentryLogger) Skip() int { return sl.cl.skip - sentryFrames }

// report prints msg and, for WARN and above, ships ctx.Error to Sentry
// tagged with the family and carrying ctx.Data.
func (sl *SentryLogger) report(level LogLevel, msg string, ctx *LogContext) {
	sl.cl.log(level, msg, ctx)

	sentryLevel, ok := sentryLevels[level]
	if !ok || level < sl.cl.ll || ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if ctx.Family != "" {
			scope.SetTag("family", ctx.Family)
		}

		if ctx.Data != nil {
			scope.SetExtra("data", ctx.Data)
		}

		scope.SetLevel(sentryLevel)
		sentry.CaptureException(ctx.Error)
	})
}
