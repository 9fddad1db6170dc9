package cmd

import (
	"fmt"

	"github.com/grovetools/remote-attach/errors"
	"github.com/grovetools/remote-attach/schema"
	"github.com/spf13/cobra"
)

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for remote attach debug configurations",
		Long: `Print the JSON Schema describing the debug configuration fields
remote-attach reads. Editors can use it for completion and validation.

Examples:
  remote-attach schema > remote-attach.schema.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := schema.GenerateDebugConfigSchema()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to generate schema")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
