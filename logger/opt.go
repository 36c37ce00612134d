package logger

import "log"

// A LoggerOptFn is a functional option configuring a ConsoleLogger when constructing a new one.
type LoggerOptFn func(*ConsoleLogger)

// WithColor sets whether ConsoleLogger colors its output by level.
func WithColor(colored bool) func(*ConsoleLogger) {
	return func(l *ConsoleLogger) {
		l.colored = colored
	}
}

// WithEnv sets the environment ConsoleLogger is operating in.
func WithEnv(env string) func(*ConsoleLogger) {
	return func(l *ConsoleLogger) {
		l.env = env
	}
}

// WithLevel sets the log level ConsoleLogger uses.
func WithLevel(level LogLevel) func(*ConsoleLogger) {
	return func(l *ConsoleLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger ConsoleLogger uses.
func WithLogger(log *log.Logger) func(*ConsoleLogger) {
	return func(l *ConsoleLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*ConsoleLogger) {
	return func(l *ConsoleLogger) {
		l.skip = skip
	}
}
