package logger_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/smartenum/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	lc = logger.LogContext{Family: "Color", Caller: "somewhere.go:12"}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"family":"Color"}`, string(b))

	// Arrange
	expected := map[string]any{
		"data":   map[string]any{"value": float64(1), "text": "Red"},
		"error":  "duplicate",
		"family": "Color",
	}

	lc = logger.LogContext{
		Data:   map[string]any{"value": 1, "text": "Red"},
		Error:  errors.New("duplicate"),
		Family: "Color",
	}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, string(b), lc.String())
}

func TestLogContextMarshalTextBadData(t *testing.T) {
	// Arrange
	lc := logger.LogContext{Data: map[string]any{"ch": make(chan int)}}

	// Act
	_, err := lc.MarshalText()

	// Assert
	require.NotNil(t, err)
	require.Equal(t, "", lc.String())
}

func TestCurrentCaller(t *testing.T) {
	// Arrange + Act
	caller := func() string { return logger.CurrentCaller() }()

	// Assert
	require.Regexp(t, `context_test\.go:\d+$`, caller)
}
