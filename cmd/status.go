package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FocusTorn/outerm/git"
)

// NewStatusCmd creates the status command, a debugging aid that prints the
// aggregated repository status as JSON. Outside a repository it prints null,
// mirroring the absent status block in the prompt.
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the aggregated repository status as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			status := git.NewClient().Aggregate(cmd.Context(), cwd)

			data, err := json.MarshalIndent(status, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	}
}
