package logger

import (
	"fmt"
	"strings"
)

// Level represents the severity of a message and the threshold a Logger filters against.
type Level int

// Log levels, in increasing order of severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	// LevelNone is a threshold only. Nothing is ever emitted at it, so using it as a
	// threshold silences every message.
	LevelNone
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelNone:  "NONE",
}

// String returns the canonical label of the level.
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel matches s case-insensitively against the level labels.
func ParseLevel(s string) (Level, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for lvl, label := range levelNames {
		if label == name {
			return lvl, true
		}
	}
	return LevelNone, false
}

func (l Level) MarshalText() ([]byte, error) {
	if _, ok := levelNames[l]; !ok {
		return nil, fmt.Errorf("log level: invalid value %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	lvl, ok := ParseLevel(string(text))
	if !ok {
		return fmt.Errorf("log level: unsupported value %q", string(text))
	}
	*l = lvl
	return nil
}

// shouldLog reports whether a message at msg passes threshold.
func shouldLog(msg, threshold Level) bool {
	return msg < LevelNone && msg >= threshold
}
