package convert

import (
	"fmt"
	"reflect"
	"strings"
)

// DerefValue follows pointers and interfaces until it reaches a concrete value or a nil.
func DerefValue(v reflect.Value) reflect.Value {
	for (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

// IsComposite reports whether v holds a map, slice, array or struct (behind any number of pointers).
// Composite values have no natural single-line string form and are better rendered as JSON.
func IsComposite(v any) bool {
	if v == nil {
		return false
	}
	switch DerefValue(reflect.ValueOf(v)).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	default:
		return false
	}
}

// ToString coerces a scalar value to its string form.
// Errors render through Error() and fmt.Stringer values through String(); any panic raised
// by those methods is absorbed by fmt. The second result is false when v is composite,
// leaving the caller to pick a structured rendering.
func ToString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "<nil>", true
	case string:
		return t, true
	case []byte:
		return string(t), true
	case error, fmt.Stringer:
		return fmt.Sprint(t), true
	}
	if IsComposite(v) {
		return "", false
	}
	return fmt.Sprint(v), true
}

// ParseBool accepts the usual spellings of a boolean switch, case-insensitively.
// Blank or unrecognized input reports ok=false.
func ParseBool(s string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, true
	case "0", "f", "false", "n", "no", "off":
		return false, true
	default:
		return false, false
	}
}
