package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "NONE", LevelNone.String())
	assert.Equal(t, "Level(42)", Level(42).String())
}

func TestLevelOrdering(t *testing.T) {
	assert.Less(t, LevelDebug, LevelInfo)
	assert.Less(t, LevelInfo, LevelWarn)
	assert.Less(t, LevelWarn, LevelError)
	assert.Less(t, LevelError, LevelNone)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   Level
		wantOk bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{" Warn ", LevelWarn, true},
		{"error", LevelError, true},
		{"none", LevelNone, true},
		{"", LevelNone, false},
		{"verbose", LevelNone, false},
		{"warning", LevelNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLevel(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelText(t *testing.T) {
	var lvl Level
	require.NoError(t, lvl.UnmarshalText([]byte("warn")))
	assert.Equal(t, LevelWarn, lvl)

	err := lvl.UnmarshalText([]byte("loud"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
	assert.Equal(t, LevelWarn, lvl, "failed unmarshal must leave the value untouched")

	text, err := LevelError.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "ERROR", string(text))

	_, err = Level(-1).MarshalText()
	assert.Error(t, err)
}

func TestShouldLog(t *testing.T) {
	messageLevels := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}
	thresholds := []Level{LevelDebug, LevelInfo, LevelWarn, LevelError, LevelNone}

	for _, msg := range messageLevels {
		for _, threshold := range thresholds {
			assert.Equal(t, msg >= threshold, shouldLog(msg, threshold), "message %s, threshold %s", msg, threshold)
		}
		assert.False(t, shouldLog(msg, LevelNone))
	}
	assert.False(t, shouldLog(LevelNone, LevelDebug), "nothing is emitted at NONE")
}

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("flat")
	assert.True(t, ok)
	assert.Equal(t, FormatFlat, f)

	f, ok = ParseFormat(" Struct")
	assert.True(t, ok)
	assert.Equal(t, FormatStruct, f)

	_, ok = ParseFormat("json")
	assert.False(t, ok)

	var parsed Format
	require.NoError(t, parsed.UnmarshalText([]byte("STRUCT")))
	assert.Equal(t, FormatStruct, parsed)
	assert.Error(t, parsed.UnmarshalText([]byte("xml")))
}
