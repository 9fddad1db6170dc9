package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/remote-attach/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config-layers",
		Short: "Display the layered tool configuration for the current directory",
		Long: `Shows how the final configuration is built by merging layers:
1. Global config (config.yml in the remote-attach config directory)
2. Project config (remote-attach.yml, searched upwards)
3. Override files (remote-attach.override.yml next to the project config)
This is useful for debugging configuration issues.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}

			layered, err := config.LoadLayered(cwd)
			if err != nil {
				return fmt.Errorf("failed to load layered config: %w", err)
			}

			w := cmd.OutOrStdout()
			printLayer(w, "DEFAULTS", "", layered.Default)
			printLayer(w, "GLOBAL CONFIG", layered.FilePaths[config.SourceGlobal], layered.Global)
			printLayer(w, "PROJECT CONFIG", layered.FilePaths[config.SourceProject], layered.Project)
			for _, override := range layered.Overrides {
				printLayer(w, "OVERRIDE CONFIG", override.Path, override.Config)
			}
			printLayer(w, "FINAL MERGED CONFIG", "", layered.Final)

			return nil
		},
	}
	return cmd
}

func printLayer(w io.Writer, title, path string, cfg *config.Config) {
	if cfg == nil {
		return
	}
	fmt.Fprintf(w, "--- # %s\n", title)
	if path != "" {
		fmt.Fprintf(w, "# Source: %s\n", path)
	}
	data, _ := yaml.Marshal(cfg)
	fmt.Fprintln(w, string(data))
}
