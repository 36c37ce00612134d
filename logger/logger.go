package logger

import (
	"fmt"
	"log"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
)

const (
	knownFrames = 2
	callerTmpl  = "%s:%d"
)

var modulePathRegex = regexp.MustCompile("smartenum.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() LogLevel
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

type LogLevel int

const (
	LogLevelUnk LogLevel = iota
	LogLevelDebug
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

func NewLogLevel(val string) LogLevel {
	switch val {
	case "DEBUG":
		return LogLevelDebug
	case "INFO":
		return LogLevelInfo
	case "WARN":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	case "FATAL":
		return LogLevelFatal
	default:
		return LogLevelUnk
	}
}

func (ll LogLevel) String() string {
	return map[LogLevel]string{
		LogLevelDebug: "[DEBUG]",
		LogLevelInfo:  "[INFO]",
		LogLevelWarn:  "[WARN]",
		LogLevelError: "[ERROR]",
		LogLevelFatal: "[FATAL]",
		LogLevelUnk:   "[UNK]",
	}[ll]
}

// ConsoleLogger implements Logger using log.
type ConsoleLogger struct {
	skip    int
	colored bool
	env     string
	l       *log.Logger
	ll      LogLevel
}

// NewLogger constructs a ConsoleLogger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default environment is read from ENVIRONMENT, falling back to DEVELOPMENT.
// The default log level is INFO.
// Output is colored unless SMARTENUM_LOG_COLOR is false.
//
// If SENTRY_DSN is set, NewLogger returns a SentryLogger wrapping the ConsoleLogger.
func NewLogger(opts ...LoggerOptFn) Logger {
	l := &ConsoleLogger{
		colored: EnvVarOrBool("SMARTENUM_LOG_COLOR", true),
		env:     EnvVarOrString("ENVIRONMENT", "DEVELOPMENT"),
		l:       log.New(os.Stdout, "", log.LstdFlags),
		ll:      LogLevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	if sentryDsn := os.Getenv("SENTRY_DSN"); sentryDsn != "" {
		l.Info("SENTRY_DSN set, configuring SentryLogger", nil)
		return NewSentryLogger(l, sentryDsn)
	}

	return l
}

// AddSkip returns a copy of l scrolling back i frames past its caller.
func (l *ConsoleLogger) AddSkip(i int) SkipLogger { return l.withSkip(i) }

func (l *ConsoleLogger) withSkip(i int) *ConsoleLogger {
	c := *l
	WithSkip(i)(&c)
	return &c
}

func (l *ConsoleLogger) Debug(msg string, ctx *LogContext) { l.log(LogLevelDebug, msg, ctx) }
func (l *ConsoleLogger) Error(msg string, ctx *LogContext) { l.log(LogLevelError, msg, ctx) }
func (l *ConsoleLogger) Fatal(msg string, ctx *LogContext) { l.log(LogLevelFatal, msg, ctx) }
func (l *ConsoleLogger) Info(msg string, ctx *LogContext)  { l.log(LogLevelInfo, msg, ctx) }
func (l *ConsoleLogger) Warn(msg string, ctx *LogContext)  { l.log(LogLevelWarn, msg, ctx) }

// LogLevel returns the LogLevel set for the ConsoleLogger.
func (l *ConsoleLogger) LogLevel() LogLevel { return l.ll }

// Skip returns how many frames past its caller l scrolls back.
func (l *ConsoleLogger) Skip() int { return l.skip }

var levelColors = map[LogLevel]func(string, ...any) string{
	LogLevelDebug: color.WhiteString,
	LogLevelInfo:  color.BlueString,
	LogLevelWarn:  color.YellowString,
	LogLevelError: color.RedString,
	LogLevelFatal: color.MagentaString,
}

// log prints msg and ctx when level is at or above l's LogLevel.
// The call site is found knownFrames plus l's skip up the stack;
// wrappers adding frames between the caller and log raise the skip, as SentryLogger does.
func (l *ConsoleLogger) log(level LogLevel, msg string, ctx *LogContext) {
	if level < l.ll {
		return
	}

	_, file, line, _ := runtime.Caller(knownFrames + l.skip)
	caller := fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
	if ctx != nil && ctx.Caller != "" {
		caller = ctx.Caller
	}

	paint := fmt.Sprintf
	if l.colored {
		paint = levelColors[level]
	}

	out := paint("%s %s '%s'", level, caller, msg)
	if ctx == nil {
		l.l.Println(out)
		return
	}

	l.l.Println(out, "log_context:", ctx)
}

// immediateFilepath trims file down to the part inside this module,
// or, outside of it, the file and the directory it is in, e.g.:
//
//	/home/dev/my-project/main.go => my-project/main.go
//	/home/dev/my-project/internal/internal.go => internal/internal.go
func immediateFilepath(file string) string {
	if match := modulePathRegex.FindString(file); match != "" {
		return match
	}

	dir, base := path.Split(file)
	return path.Base(dir) + string(os.PathSeparator) + base
}
