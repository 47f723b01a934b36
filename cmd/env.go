package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newEnvCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the resolved Lambda environment and effective logger configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" {
				viper.Set("settings.output", output)
			}

			application, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			return reportError(application.Describe(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Report format (text, json)")
	return cmd
}
