package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/FocusTorn/outerm/cli"
	"github.com/FocusTorn/outerm/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	info := version.GetInfo()
	return cli.NewVersionCommand("outerm", cli.VersionInfo{
		Version:   info.Version,
		Commit:    info.Commit,
		BuildDate: info.BuildDate,
		BuildArch: runtime.GOARCH,
	})
}
