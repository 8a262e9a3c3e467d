package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FocusTorn/outerm/cli"
	"github.com/FocusTorn/outerm/config"
	"github.com/FocusTorn/outerm/git"
	"github.com/FocusTorn/outerm/prompt"
	"github.com/FocusTorn/outerm/workspace"
)

// NewPromptCmd creates the hidden prompt command invoked by the shell hook
// before every interactive prompt. It never fails: any degraded state still
// renders a usable prompt block.
func NewPromptCmd() *cobra.Command {
	var (
		shellName string
		width     int
		noColor   bool
	)

	promptCmd := &cobra.Command{
		Use:    "prompt",
		Short:  "Render one prompt block (for internal use by the shell hook)",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cli.GetLogger(cmd)

			cfg, err := config.LoadDefault()
			if err != nil {
				// A broken config must not break the prompt.
				log.WithError(err).Debug("config load failed, using defaults")
				cfg = config.Default()
			}

			cwd, err := os.Getwd()
			if err != nil {
				cwd = "/"
			}

			classifier := workspace.NewClassifier(workspace.ResolveRoot(cfg), homeDir())
			displayPath, loc := classifier.Classify(cwd)

			status := git.NewClient().Aggregate(cmd.Context(), cwd)

			left := prompt.BuildLeft(time.Now(), workspace.DetectVenv(), displayPath, loc)
			right := prompt.FormatStatus(status)

			if width == 0 {
				width = prompt.TerminalWidth()
			}

			theme := prompt.ThemeByName(cfg.Theme)
			if noColor {
				theme = prompt.PlainTheme()
			} else {
				prompt.InitTerminal()
			}

			compositor := prompt.NewCompositor(theme, width, cfg.Prompt.Glyph)
			fmt.Print(compositor.Render(left, right))

			log.WithField("shell", shellName).Debug("prompt rendered")
			return nil
		},
	}

	promptCmd.Flags().StringVar(&shellName, "shell", "", "Host shell name (bash, zsh)")
	promptCmd.Flags().IntVar(&width, "width", 0, "Override the detected terminal width")
	promptCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colorized output")

	return promptCmd
}

// homeDir returns the user home directory, or an empty string which disables
// home-relative path display.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}
