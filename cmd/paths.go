package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/grovetools/remote-attach/config"
	"github.com/grovetools/remote-attach/pkg/paths"
	"github.com/spf13/cobra"
)

// PathsOutput lists the directories and files remote-attach uses.
type PathsOutput struct {
	ConfigDir    string `json:"config_dir"`
	GlobalConfig string `json:"global_config,omitempty"`
	StateDir     string `json:"state_dir"`
	LogDir       string `json:"log_dir"`
	CacheDir     string `json:"cache_dir"`
}

func NewPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the XDG-compliant paths used by remote-attach",
		Long: `Print the XDG-compliant paths used by remote-attach as JSON.

- config_dir: where the global config.yml lives
- global_config: the global config file in use, if any
- state_dir: runtime state
- log_dir: default location of the optional log file
- cache_dir: regenerable data

Set REMOTE_ATTACH_HOME to keep everything under one directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := PathsOutput{
				ConfigDir:    paths.ConfigDir(),
				GlobalConfig: config.FindGlobalConfigFile(),
				StateDir:     paths.StateDir(),
				LogDir:       paths.LogDir(),
				CacheDir:     paths.CacheDir(),
			}

			jsonData, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal paths to JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	return cmd
}
