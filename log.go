package smartenum

import "log/slog"

const (
	LogKindKey   = "kind"
	LogFamilyKey = "family"
	LogValueKey  = "value"
	LogTextKey   = "text"
	LogCodeKey   = "code"

	LogAbsentVal = "<absent>"
)

// EnumLogKind marks log records emitted about families and their members.
var EnumLogKind = slog.StringValue("enum")

// LogAttr pairs m with the provided key and EnumLogKind,
// for use with a log/slog.Logger:
//
//	slog.Info("order shipped", smartenum.LogAttr("status", status))
func LogAttr[K Kind](key string, m Member[K]) slog.Attr {
	return slog.Group(key, slog.Attr{Key: LogKindKey, Value: EnumLogKind}, slog.Any("member", m))
}
