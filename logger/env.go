package logger

import (
	"os"
	"strings"
)

// EnvVarOrBool gets the environment variable for the provided key and
// returns whether it matches "true" or "false" (after lower casing it)
// or the default value.
func EnvVarOrBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// EnvVarOrLogLevel gets the environment variable for the provided key,
// creates a LogLevel from the retrieved value,
// or returns the provided default LogLevel
// if the value is not a known LogLevel.
func EnvVarOrLogLevel(key string, def LogLevel) LogLevel {
	ll := NewLogLevel(strings.ToUpper(os.Getenv(key)))
	if ll == LogLevelUnk {
		return def
	}

	return ll
}

// EnvVarOrString gets the environment variable for the provided key or the provided default string.
func EnvVarOrString(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return val
}
