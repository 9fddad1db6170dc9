package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/remote-attach/cli"
	"github.com/spf13/cobra"
)

// ClassifyOutput is the --json form of the classify command.
type ClassifyOutput struct {
	File    string `json:"file"`
	Label   string `json:"label,omitempty"`
	Request string `json:"request"`
}

func NewClassifyCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print whether a debug configuration is a launch or an attach request",
		Long: `Print the request kind of a debug configuration. Anything other than
"launch" in the request field, including a missing field, is an attach.

Examples:
  remote-attach classify --label remote-server
  remote-attach classify --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, flags, "classify")
			if err != nil {
				return err
			}
			kind := s.newTranslator().Classify(s.entry.Raw)

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(ClassifyOutput{
					File:    s.file,
					Label:   s.entry.Label,
					Request: kind.String(),
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), kind)
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}
