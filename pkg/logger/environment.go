package logger

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/spf13/viper"

	"github.com/olusolaa/lambda-logger/pkg/convert"
)

// Environment variables inspected by ResolveEnvironment.
const (
	EnvFunctionName    = "AWS_LAMBDA_FUNCTION_NAME"
	EnvFunctionVersion = "AWS_LAMBDA_FUNCTION_VERSION"
	EnvRegion          = "AWS_REGION"
	EnvDefaultRegion   = "AWS_DEFAULT_REGION"
	EnvProfile         = "AWS_PROFILE"
	EnvConfigFile      = "AWS_CONFIG_FILE"
	EnvTraceID         = "_X_AMZN_TRACE_ID"

	EnvLogLevel     = "LOG_LEVEL"
	EnvLogFormat    = "LOG_FORMAT"
	EnvTimestamps   = "LOG_TIMESTAMPS"
	EnvOutputLevels = "LOG_OUTPUT_LEVELS"
)

// StageEnvKeys lists the deployment stage variables in priority order; the first
// non-empty one wins.
var StageEnvKeys = []string{"ENVIRONMENT", "STAGE", "SERVERLESS_STAGE"}

// Environment is what the process environment says about where the logger runs.
// Override fields hold the raw variable values; they are only interpreted by DefaultConfig.
type Environment struct {
	FunctionName    string `json:"function_name,omitempty"`
	FunctionVersion string `json:"function_version,omitempty"`
	Region          string `json:"aws_region,omitempty"`
	Stage           string `json:"stage,omitempty"`

	LevelOverride        string `json:"log_level,omitempty"`
	FormatOverride       string `json:"log_format,omitempty"`
	TimestampsOverride   string `json:"log_timestamps,omitempty"`
	OutputLevelsOverride string `json:"log_output_levels,omitempty"`
}

// ResolveEnvironment reads the process environment.
func ResolveEnvironment() Environment {
	v := viper.New()
	bindEnv(v, "function_name", EnvFunctionName)
	bindEnv(v, "function_version", EnvFunctionVersion)
	bindEnv(v, "stage", StageEnvKeys...)
	bindEnv(v, "log_level", EnvLogLevel)
	bindEnv(v, "log_format", EnvLogFormat)
	bindEnv(v, "log_timestamps", EnvTimestamps)
	bindEnv(v, "log_output_levels", EnvOutputLevels)

	functionName := v.GetString("function_name")
	return Environment{
		FunctionName:         functionName,
		FunctionVersion:      v.GetString("function_version"),
		Region:               resolveRegion(functionName != ""),
		Stage:                v.GetString("stage"),
		LevelOverride:        v.GetString("log_level"),
		FormatOverride:       v.GetString("log_format"),
		TimestampsOverride:   v.GetString("log_timestamps"),
		OutputLevelsOverride: v.GetString("log_output_levels"),
	}
}

// viper only rejects BindEnv calls without a key; empty values count as unset.
func bindEnv(v *viper.Viper, key string, envKeys ...string) {
	_ = v.BindEnv(append([]string{key}, envKeys...)...)
}

// resolveRegion takes AWS_REGION, then AWS_DEFAULT_REGION. Local processes without
// either fall back to the region of the selected shared config profile.
func resolveRegion(hosted bool) string {
	envCfg, err := awsconfig.NewEnvConfig()
	if err != nil {
		return ""
	}
	if envCfg.Region != "" || hosted {
		return envCfg.Region
	}

	profile := envCfg.SharedConfigProfile
	if profile == "" {
		profile = awsconfig.DefaultSharedConfigProfile
	}
	shared, err := awsconfig.LoadSharedConfigProfile(context.Background(), profile, func(o *awsconfig.LoadSharedConfigOptions) {
		if envCfg.SharedConfigFile != "" {
			o.ConfigFiles = []string{envCfg.SharedConfigFile}
		}
		o.CredentialsFiles = []string{}
	})
	if err != nil {
		return ""
	}
	return shared.Region
}

// Hosted reports whether the process runs inside AWS Lambda.
func (e Environment) Hosted() bool {
	return e.FunctionName != ""
}

// DefaultConfig derives the global configuration for this environment.
// Hosted processes default to INFO, STRUCT and no inline timestamps or labels, since
// the platform stamps and indexes each record itself; local ones default to DEBUG, FLAT
// and both visual cues. Override variables win when they parse and are ignored otherwise.
func (e Environment) DefaultConfig() Config {
	cfg := Config{
		Level:         LevelDebug,
		OutputLevels:  true,
		LogTimestamps: true,
		Format:        FormatFlat,
	}
	if e.Hosted() {
		cfg = Config{
			Level:         LevelInfo,
			OutputLevels:  false,
			LogTimestamps: false,
			Format:        FormatStruct,
		}
	}

	if lvl, ok := ParseLevel(e.LevelOverride); ok {
		cfg.Level = lvl
	}
	if format, ok := ParseFormat(e.FormatOverride); ok {
		cfg.Format = format
	}
	if enabled, ok := convert.ParseBool(e.TimestampsOverride); ok {
		cfg.LogTimestamps = enabled
	}
	if enabled, ok := convert.ParseBool(e.OutputLevelsOverride); ok {
		cfg.OutputLevels = enabled
	}
	return cfg
}
