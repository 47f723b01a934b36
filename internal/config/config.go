package config

import (
	"github.com/olusolaa/lambda-logger/pkg/convert"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	Settings SettingsConfig `yaml:"settings" mapstructure:"settings"`
}

// SettingsConfig holds the CLI's view of the logger configuration. Empty values leave the
// environment-derived default in place.
type SettingsConfig struct {
	LogLevel      string `yaml:"log_level" mapstructure:"log_level" validate:"omitempty,loglevel"`
	LogFormat     string `yaml:"log_format" mapstructure:"log_format" validate:"omitempty,logformat"`
	LogTimestamps string `yaml:"log_timestamps" mapstructure:"log_timestamps" validate:"omitempty,switch"`
	OutputLevels  string `yaml:"output_levels" mapstructure:"output_levels" validate:"omitempty,switch"`

	Category string `yaml:"category" mapstructure:"category" validate:"required"`
	// DiagnosticsLevel is the threshold for the CLI's own messages, kept apart from the
	// global level so bootstrap chatter does not mix with emitted lines.
	DiagnosticsLevel string `yaml:"diagnostics_level" mapstructure:"diagnostics_level" validate:"required,loglevel"`
	Output           string `yaml:"output" mapstructure:"output" validate:"oneof=text json"`
	NoColor          bool   `yaml:"no_color" mapstructure:"no_color"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			Category:         "lambdalog",
			DiagnosticsLevel: logger.LevelWarn.String(),
			Output:           OutputText,
		},
	}
}

// LoggerOptions converts the set fields into logger options. It assumes the config passed
// validation; unparseable fields are skipped.
func (s SettingsConfig) LoggerOptions() []logger.Option {
	var opts []logger.Option
	if lvl, ok := logger.ParseLevel(s.LogLevel); ok {
		opts = append(opts, logger.WithLevel(lvl))
	}
	if format, ok := logger.ParseFormat(s.LogFormat); ok {
		opts = append(opts, logger.WithFormat(format))
	}
	if enabled, ok := convert.ParseBool(s.LogTimestamps); ok {
		opts = append(opts, logger.WithLogTimestamps(enabled))
	}
	if enabled, ok := convert.ParseBool(s.OutputLevels); ok {
		opts = append(opts, logger.WithOutputLevels(enabled))
	}
	return opts
}

func (s SettingsConfig) Diagnostics() logger.Level {
	lvl, ok := logger.ParseLevel(s.DiagnosticsLevel)
	if !ok {
		return logger.LevelWarn
	}
	return lvl
}
