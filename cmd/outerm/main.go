package main

import (
	"os"

	"github.com/FocusTorn/outerm/cli"
	"github.com/FocusTorn/outerm/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		handler := cli.NewErrorHandler(rootCmd.PersistentFlags().Changed("verbose"))
		_ = handler.Handle(err)
		os.Exit(1)
	}
}
