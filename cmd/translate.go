package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/grovetools/remote-attach/errors"
	"github.com/grovetools/remote-attach/pkg/attach"
	"github.com/grovetools/remote-attach/pkg/dapreq"
	"github.com/spf13/cobra"
)

func NewTranslateCmd() *cobra.Command {
	var flags sourceFlags
	var asDAP bool

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate a debug configuration into an lldb-dap adapter binary",
		Long: `Classify a debug configuration and translate it into the command,
arguments, environment and attach configuration for lldb-dap.

The configuration is read from the debug file (debug_file in the tool config,
.zed/debug.json by default). Entries are picked by label, or the first one.

Examples:
  # Translate the first configuration in .zed/debug.json
  remote-attach translate

  # Pick a configuration by label and frame it as a DAP request
  remote-attach translate --label remote-server --dap

  # Read a single configuration from stdin
  cat config.json | remote-attach translate --file -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd, flags, "translate")
			if err != nil {
				return err
			}
			bin, err := s.translate()
			if err != nil {
				return err
			}
			if asDAP {
				return writeDAP(cmd.OutOrStdout(), bin)
			}
			return writeBinary(cmd.OutOrStdout(), bin)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().BoolVar(&asDAP, "dap", false, "Print the session-start request with DAP Content-Length framing")

	return cmd
}

func writeBinary(w io.Writer, bin *attach.AdapterBinary) error {
	data, err := json.MarshalIndent(bin, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to marshal adapter binary")
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeDAP(w io.Writer, bin *attach.AdapterBinary) error {
	msg, err := dapreq.NewRequest(bin, 1)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to build DAP request")
	}
	if err := dapreq.Write(w, msg); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "failed to write DAP request")
	}
	return nil
}
