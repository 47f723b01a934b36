package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/lambda-logger/internal/app"
)

func newEmitCmd() *cobra.Command {
	var level, category string

	cmd := &cobra.Command{
		Use:   "emit [flags] message [args...]",
		Short: "Write one leveled message",
		Example: `  lambdalog emit --level info --category api "request served" 200 true
  LOG_LEVEL=warn lambdalog emit --level info "dropped"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := app.ParseLevelArg(level)
			if err != nil {
				return reportError(err)
			}

			application, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			return reportError(application.Emit(cmd.Context(), app.EmitRequest{
				Level:    lvl,
				Category: category,
				Message:  args[0],
				Args:     app.ParseArgs(args[1:]),
			}))
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "info", "Level of the message (debug, info, warn, error)")
	cmd.Flags().StringVar(&category, "category", "lambdalog", "Category the message is logged under")
	return cmd
}
