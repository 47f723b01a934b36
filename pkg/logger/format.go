package logger

import (
	"fmt"
	"strings"
)

// Format selects how a Logger renders a message.
type Format string

const (
	// FormatFlat passes timestamp, label, category and arguments to the sink as separate
	// tokens, for terminals and for platforms that already tag each line.
	FormatFlat Format = "FLAT"
	// FormatStruct emits one single-line JSON record per message.
	FormatStruct Format = "STRUCT"
)

func (f Format) String() string {
	return string(f)
}

// ParseFormat matches s case-insensitively against the known formats.
func ParseFormat(s string) (Format, bool) {
	switch Format(strings.ToUpper(strings.TrimSpace(s))) {
	case FormatFlat:
		return FormatFlat, true
	case FormatStruct:
		return FormatStruct, true
	default:
		return "", false
	}
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, ok := ParseFormat(string(text))
	if !ok {
		return fmt.Errorf("log format: unsupported value %q", string(text))
	}
	*f = parsed
	return nil
}
