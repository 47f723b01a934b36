package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	apperrors "github.com/olusolaa/lambda-logger/internal/errors"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

// ParseLevelArg parses the --level flag of emit and object.
func ParseLevelArg(s string) (logger.Level, error) {
	lvl, ok := logger.ParseLevel(s)
	if !ok || lvl == logger.LevelNone {
		return logger.LevelNone, apperrors.NewUserFacing(apperrors.CodeInvalidArgument,
			fmt.Sprintf("invalid level %q", s), "Use one of debug, info, warn or error.")
	}
	return lvl, nil
}

// ParseArgs types positional arguments so the sink prints numbers and booleans as such.
func ParseArgs(raw []string) []any {
	if len(raw) == 0 {
		return nil
	}
	args := make([]any, 0, len(raw))
	for _, r := range raw {
		args = append(args, typedValue(r))
	}
	return args
}

func typedValue(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	// NaN and infinities have no JSON form, so they stay strings.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}

// ParseObject reads the object argument either as a JSON literal or as
// 'key=value;key2=value2' pairs.
func ParseObject(raw string) (any, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, apperrors.NewUserFacing(apperrors.CodeInvalidArgument, "empty object argument",
			"Pass a JSON value or key=value pairs separated by ';'.")
	}

	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var obj any
		var json = jsoniter.ConfigCompatibleWithStandardLibrary
		if err := json.UnmarshalFromString(trimmed, &obj); err != nil {
			return nil, apperrors.NewUserFacing(apperrors.CodeInvalidArgument,
				fmt.Sprintf("object argument is not valid JSON: %v", err), "Check quoting of the JSON literal.")
		}
		return obj, nil
	}

	obj := make(map[string]any)
	for _, pair := range strings.Split(trimmed, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.SplitN(pair, "=", 2)
		key := strings.TrimSpace(parts[0])
		if len(parts) != 2 || key == "" {
			return nil, apperrors.NewUserFacing(apperrors.CodeInvalidArgument,
				fmt.Sprintf("invalid object pair %q", pair), "Pairs look like key=value.")
		}
		obj[key] = typedValue(strings.TrimSpace(parts[1]))
	}
	return obj, nil
}
