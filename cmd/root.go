// Package cmd holds the remote-attach subcommands.
package cmd

import (
	"github.com/grovetools/remote-attach/cli"
	"github.com/grovetools/remote-attach/version"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the remote-attach command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"remote-attach",
		"Translate editor debug configurations into lldb-dap remote attach sessions",
	)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	rootCmd.AddCommand(NewTranslateCmd())
	rootCmd.AddCommand(NewClassifyCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewPathsCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("remote-attach"))

	cli.ApplyStyledHelpRecursive(rootCmd)
	return rootCmd
}
