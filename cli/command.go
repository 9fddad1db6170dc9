package cli

import (
	"github.com/grovetools/remote-attach/config"
	"github.com/grovetools/remote-attach/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommandOptions holds common options for remote-attach commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to a remote-attach.yml config file")

	SetStyledHelp(cmd)

	return cmd
}

// GetLogger returns a logger for one command run. It is configured from the
// logging section of cfg, raised to debug level and routed to the command's
// stderr when --verbose is set. The cached component loggers are untouched.
func GetLogger(cmd *cobra.Command, component string, cfg *config.Config) *logrus.Entry {
	entry := logging.NewLoggerFromConfig(component, cfg)
	return ApplyLoggerOptions(entry, loggerOptions(cmd, entry.Logger)...)
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}

// LoadConfig loads the file named by --config, or the layered configuration
// found from dir when the flag is empty.
func LoadConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	if configFile := GetOptions(cmd).ConfigFile; configFile != "" {
		return config.Load(configFile)
	}
	return config.LoadFrom(dir)
}
