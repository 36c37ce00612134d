package smartenum_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/smartenum"
)

func newJSONLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}

			return a
		},
	}))
}

func TestMemberLogValue(t *testing.T) {
	for _, tc := range []struct {
		name     string
		member   slog.LogValuer
		expected string
	}{
		{
			"Text-And-Code",
			Red,
			`{"level":"INFO","msg":"zero","m":{"family":"Color","value":1,"text":"Red","code":"R"}}`,
		},
		{
			"No-Code",
			Bare,
			`{"level":"INFO","msg":"zero","m":{"family":"Level","value":2,"text":""}}`,
		},
		{
			"Absent",
			Color{},
			`{"level":"INFO","msg":"zero","m":"<absent>"}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			var buf bytes.Buffer
			l := newJSONLogger(&buf)

			// Act
			l.Info("zero", slog.Any("m", tc.member))

			// Assert
			require.JSONEq(t, tc.expected, buf.String())
		})
	}
}

func TestLogAttr(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	l := newJSONLogger(&buf)

	// Act
	l.Info("painted", smartenum.LogAttr("color", Blue))

	// Assert
	require.JSONEq(t, `{
		"level": "INFO",
		"msg": "painted",
		"color": {
			"kind": "enum",
			"member": {"family": "Color", "value": 2, "text": "Blue", "code": "B"}
		}
	}`, buf.String())
}
