package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"

	"github.com/olusolaa/lambda-logger/pkg/convert"
)

// recordAPI encodes STRUCT records. Records are flat structs of strings, so the faster
// encoder is safe there; arbitrary caller objects go through serializeObject instead.
var recordAPI = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// serializeObject renders obj as JSON, indented by two spaces when pretty is set.
// It never fails: encoding errors and panicking MarshalJSON methods fall back to
// fallbackString.
func serializeObject(obj any, pretty bool) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fallbackString(obj, r)
		}
	}()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(obj); err != nil {
		return fallbackString(obj, err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// fallbackString renders obj with fmt's %+v. Self-referential values would recurse
// forever in fmt, so they are reported by type and cause instead.
func fallbackString(obj any, cause any) string {
	if convert.HasCycle(obj) {
		return fmt.Sprintf("<%T: %v>", obj, cause)
	}
	return fmt.Sprintf("%+v", obj)
}

// joinObject appends a serialized object to a message prefix with one separating space.
// A prefix that already ends in whitespace is used as is.
func joinObject(prefix, serialized string) string {
	if prefix == "" {
		return serialized
	}
	last := prefix[len(prefix)-1]
	if last < 0x80 && unicode.IsSpace(rune(last)) {
		return prefix + serialized
	}
	return prefix + " " + serialized
}
