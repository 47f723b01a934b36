package logger

import (
	"time"

	"github.com/olusolaa/lambda-logger/pkg/convert"
)

const (
	flatTimestampLayout   = "2006-01-02T15:04:05"
	structTimestampLayout = time.RFC3339
)

// record is the STRUCT output. Field order is the key order of the encoded line.
type record struct {
	Timestamp       string `json:"timestamp"`
	Level           string `json:"level"`
	Category        string `json:"category"`
	Message         string `json:"message"`
	AWSRegion       string `json:"aws_region,omitempty"`
	FunctionName    string `json:"function_name,omitempty"`
	FunctionVersion string `json:"function_version,omitempty"`
	Stage           string `json:"stage,omitempty"`
	RequestID       string `json:"aws_request_id,omitempty"`
	TraceID         string `json:"xray_trace_id,omitempty"`
}

// renderFlat builds the token list for a FLAT message. msg and args are passed through
// untouched so the sink prints them with its own value formatting.
func renderFlat(snap snapshot, level Level, category string, msg any, args []any) []any {
	tokens := make([]any, 0, 4+len(args))
	if snap.config.LogTimestamps {
		tokens = append(tokens, snap.now.UTC().Format(flatTimestampLayout))
	}
	if snap.config.OutputLevels {
		tokens = append(tokens, level.String())
	}
	tokens = append(tokens, category+":", msg)
	return append(tokens, args...)
}

// renderStruct encodes a STRUCT record. Extra positional arguments have no place in a
// single-line record and are not rendered.
func renderStruct(snap snapshot, level Level, category string, msg any) string {
	rec := record{
		Timestamp:       snap.now.UTC().Format(structTimestampLayout),
		Level:           level.String(),
		Category:        category,
		Message:         messageString(msg),
		AWSRegion:       snap.env.Region,
		FunctionName:    snap.env.FunctionName,
		FunctionVersion: snap.env.FunctionVersion,
		Stage:           snap.env.Stage,
		RequestID:       snap.invocation.RequestID,
		TraceID:         snap.invocation.TraceID,
	}
	line, err := recordAPI.MarshalToString(rec)
	if err != nil {
		return rec.Message
	}
	return line
}

// messageString coerces a message to the string stored in a record's message field.
func messageString(msg any) string {
	if s, ok := convert.ToString(msg); ok {
		return s
	}
	return serializeObject(msg, false)
}
