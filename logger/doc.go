/*

Package logger provides logging functionality to smartenum registries by defining the required behavior in [Logger]
and providing an implementation of it with [ConsoleLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [ConsoleLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*ConsoleLogger.Warn], [*ConsoleLogger.Error], and [*ConsoleLogger.Fatal] produce messages.

# ConsoleLogger

The [ConsoleLogger] is the implementation of [Logger] returned by the [NewLogger] function.

Log messages emitted by [ConsoleLogger] are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2022/04/28 15:55:21 [ERROR] smartenum/registry.go:154 'member rejected' log_context: {"data":{"code":"","text":"Duplicate","value":1},"error":"duplicate: Color already has a member with value 1","family":"Color"}

The file, line number, and parent directory of where a [ConsoleLogger] was called comprise the call site.
The message is the actual string passed into the [ConsoleLogger] method, in this example, [*ConsoleLogger.Error].
Lastly, the log context is a JSON-encoded [*LogContext].
The last component allows for including additional data inessential to the message proper,
but provides a fuller picture of the registry at the time of logging.

# SentryLogger

When the SENTRY_DSN environment variable is set, [NewLogger] wraps the [ConsoleLogger] in a [SentryLogger],
which additionally ships [LogContext.Error] to Sentry for WARN, ERROR and FATAL logs.

# SkipLogger

Sometimes the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
