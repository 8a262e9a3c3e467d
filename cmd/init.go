package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FocusTorn/outerm/shell"
)

// NewInitCmd creates the init command, which prints the hook script for a
// shell. Users eval it from their shell rc file; nothing is written to disk.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <shell>",
		Short: "Print the shell hook script for bash or zsh",
		Long: `Prints the script that wires outerm into the shell's pre-prompt hook.

Examples:
  # ~/.bashrc
  eval "$(outerm init bash)"

  # ~/.zshrc
  eval "$(outerm init zsh)"`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: adapterNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			adapter, err := shell.ForName(args[0])
			if err != nil {
				return err
			}

			execPath, err := os.Executable()
			if err != nil {
				execPath = "outerm"
			}

			fmt.Print(adapter.InitScript(execPath))
			return nil
		},
	}
}

func adapterNames() []string {
	var names []string
	for _, a := range shell.All() {
		names = append(names, a.Name())
	}
	return names
}
