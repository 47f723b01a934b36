package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olusolaa/lambda-logger/internal/app"
	apperrors "github.com/olusolaa/lambda-logger/internal/errors"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

var (
	cfgFile      string
	logLevel     string
	logFormat    string
	timestamps   string
	outputLevels string
)

var rootCmd = &cobra.Command{
	Use:   "lambdalog",
	Short: "Writes log lines the way a Lambda function logger would.",
	Long: `lambdalog drives the category logger from the command line. It resolves
the Lambda environment (function name, region, stage and LOG_* overrides) exactly
as a function would, then emits messages in FLAT or STRUCT format so the result
can be inspected locally or piped into log tooling.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .lambdalog.yaml in the working or home directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level (debug, info, warn, error, none)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Override log format (flat, struct)")
	rootCmd.PersistentFlags().StringVar(&timestamps, "timestamps", "", "Override timestamps in FLAT output (true, false)")
	rootCmd.PersistentFlags().StringVar(&outputLevels, "output-levels", "", "Override level labels in FLAT output (true, false)")

	viper.BindPFlag("settings.log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("settings.log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("settings.log_timestamps", rootCmd.PersistentFlags().Lookup("timestamps"))
	viper.BindPFlag("settings.output_levels", rootCmd.PersistentFlags().Lookup("output-levels"))

	viper.SetEnvPrefix("LAMBDALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(newEmitCmd(), newObjectCmd(), newEnvCmd())
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".lambdalog")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return reportError(apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file"))
		}
	}

	return nil
}

// bootstrap builds the application against the process-wide logger settings.
func bootstrap(cmd *cobra.Command) (*app.Application, error) {
	application, err := app.BuildApplicationFromViper(cmd.Context(), viper.GetViper(), logger.Default(), cmd.OutOrStdout())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Application initialization failed: %v\n", err)
		if appErr := (*apperrors.AppError)(nil); errors.As(err, &appErr) {
			if appErr.IsUserFacing {
				fmt.Fprintf(os.Stderr, "Error Details: %s\n", appErr.Message)
				if appErr.SuggestedAction != "" {
					fmt.Fprintf(os.Stderr, "Suggestion: %s\n", appErr.SuggestedAction)
				}
			}
		}
		return nil, err
	}
	return application, nil
}

func reportError(err error) error {
	if err == nil {
		return nil
	}
	userMsg, suggestion, _ := apperrors.GetUserFacingMessage(err)
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", userMsg)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
	}
	return err
}
