package config

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	apperrors "github.com/olusolaa/lambda-logger/internal/errors"
	"github.com/olusolaa/lambda-logger/pkg/convert"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

// Load decodes v over the defaults and validates the result.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(mapstructure.DecodeHookFuncType(trimSpaceHook)))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigParseError, "failed to unmarshal configuration")
	}
	if err := Validate(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func trimSpaceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.String {
		return data, nil
	}
	return strings.TrimSpace(reflect.ValueOf(data).String()), nil
}

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation only fails on an empty tag name.
	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, ok := logger.ParseLevel(fl.Field().String())
		return ok
	})
	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		_, ok := logger.ParseFormat(fl.Field().String())
		return ok
	})
	_ = validate.RegisterValidation("switch", func(fl validator.FieldLevel) bool {
		_, ok := convert.ParseBool(fl.Field().String())
		return ok
	})
	return validate
}

// Validate reports every invalid field in one user-facing error.
func Validate(ctx context.Context, cfg *Config) error {
	err := newValidator().StructCtx(ctx, cfg)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.Wrap(err, apperrors.CodeInternal, "configuration validation could not run")
	}

	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return apperrors.NewUserFacing(apperrors.CodeConfigValidation, details.String(),
		"Levels are DEBUG, INFO, WARN, ERROR or NONE; formats are FLAT or STRUCT; switches are true or false.")
}
