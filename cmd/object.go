package main

import (
	"github.com/spf13/cobra"

	"github.com/olusolaa/lambda-logger/internal/app"
)

func newObjectCmd() *cobra.Command {
	var level, category string

	cmd := &cobra.Command{
		Use:   "object [flags] prefix object",
		Short: "Write a prefix followed by a serialized object",
		Long: `Write a prefix followed by a serialized object. The object is either a JSON
literal or key=value pairs separated by ';'. FLAT output pretty-prints the
object, STRUCT output stores it compactly in the message field.`,
		Example: `  lambdalog object --level warn --category api "Response " '{"statusCode":418}'
  lambdalog object "Order" "id=42;paid=true"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := app.ParseLevelArg(level)
			if err != nil {
				return reportError(err)
			}
			obj, err := app.ParseObject(args[1])
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
				IsObject: true,
				Prefix:   args[0],
				Object:   obj,
			}))
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "info", "Level of the message (debug, info, warn, error)")
	cmd.Flags().StringVar(&category, "category", "lambdalog", "Category the message is logged under")
	return cmd
}
