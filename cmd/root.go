// Package cmd defines the outerm subcommands.
package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/FocusTorn/outerm/cli"
	"github.com/FocusTorn/outerm/version"
)

// NewRootCmd assembles the outerm command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"outerm",
		"Contextual shell prompt with workspace and git awareness",
	)

	info := version.GetInfo()
	rootCmd.Version = info.Version
	cli.SetVersionTemplate(rootCmd, cli.VersionInfo{
		Version:   info.Version,
		Commit:    info.Commit,
		BuildDate: info.BuildDate,
		BuildArch: runtime.GOARCH,
	})

	rootCmd.AddCommand(NewPromptCmd())
	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewStatusCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
