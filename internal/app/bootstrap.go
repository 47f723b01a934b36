package app

import (
	"context"
	"io"

	"github.com/spf13/viper"

	"github.com/olusolaa/lambda-logger/internal/config"
	"github.com/olusolaa/lambda-logger/internal/core/ports"
	apperrors "github.com/olusolaa/lambda-logger/internal/errors"
	jsonreport "github.com/olusolaa/lambda-logger/internal/reporting/json"
	"github.com/olusolaa/lambda-logger/internal/reporting/text"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

// BuildApplicationFromViper loads the CLI configuration, applies it to settings and wires
// the reporter. Reports go to out.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, settings *logger.Settings, out io.Writer) (*Application, error) {
	cfg, err := config.Load(ctx, v)
	if err != nil {
		return nil, err
	}

	settings.Initialize(cfg.Settings.LoggerOptions()...)

	diagLevel := cfg.Settings.Diagnostics()
	diag := settings.NewWithOptions(logger.Options{Category: cfg.Settings.Category, Level: &diagLevel})
	effective := settings.Config()
	diag.Info("Logger initialized", "level", effective.Level, "format", effective.Format)
	if v.ConfigFileUsed() != "" {
		diag.Debug("Using configuration file:", v.ConfigFileUsed())
	} else {
		diag.Debug("No configuration file found, using defaults/env/flags.")
	}

	var reporter ports.Reporter
	switch cfg.Settings.Output {
	case text.ReporterTypeText:
		reporter, err = text.NewReporter(text.Config{NoColor: cfg.Settings.NoColor}, out, diag)
	case jsonreport.ReporterTypeJSON:
		reporter, err = jsonreport.NewReporter(out, diag)
	default:
		return nil, apperrors.NewUserFacing(apperrors.CodeConfigValidation,
			"unsupported output: "+cfg.Settings.Output, "Supported: text, json")
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to initialize reporter")
	}

	diag.Debug("Application bootstrap complete")
	return NewApplication(settings, reporter, diag), nil
}
