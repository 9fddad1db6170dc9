package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/remote-attach/cli"
	"github.com/grovetools/remote-attach/errors"
	"github.com/grovetools/remote-attach/logging"
	"github.com/grovetools/remote-attach/schema"
	"github.com/spf13/cobra"
)

// CheckOutput is the --json form of the check command.
type CheckOutput struct {
	File       string   `json:"file"`
	Label      string   `json:"label,omitempty"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

func NewCheckCmd() *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint a debug configuration against the schema",
		Long: `Validate a debug configuration against the remote-attach schema and
confirm it translates. Exits non-zero and lists every violation when the
configuration is rejected.

The schema is stricter than translation: a non-string program, or a
non-string entry in attachCommands or initCommands, is reported here even
though translate skips such values.

Examples:
  remote-attach check
  remote-attach check --file .zed/debug.json --label remote-server --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, flags, "check")
			if err != nil {
				return err
			}

			validator, err := schema.NewValidator()
			if err != nil {
				return errors.Wrap(err, errors.ErrCodeInternal, "failed to build schema validator")
			}
			checkErr := validator.Validate(s.entry.Raw)
			if checkErr == nil {
				// Translation has the final say on the target
				_, checkErr = s.translate()
			}

			out := CheckOutput{File: s.file, Label: s.entry.Label, Valid: checkErr == nil}
			if checkErr != nil {
				out.Violations = schema.Violations(checkErr)
				if len(out.Violations) == 0 {
					out.Violations = []string{checkErr.Error()}
				}
			}

			if cli.GetOptions(cmd).JSONOutput {
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return checkErr
			}

			if checkErr == nil {
				name := s.entry.Label
				if name == "" {
					name = s.file
				}
				logging.NewPrettyLogger().WithWriter(cmd.OutOrStdout()).
					Success(fmt.Sprintf("%s is a valid remote attach configuration", name))
			}
			return checkErr
		},
	}

	flags.register(cmd, true)
	return cmd
}
