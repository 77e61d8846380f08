package commands

import (
	"os"

	"github.com/leapstack-labs/convy/internal/changelog"
	"github.com/spf13/cobra"
)

// NewChangelogCommand creates the changelog command group.
func NewChangelogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "changelog",
		Short: "Manage the project changelog",
	}
	cmd.AddCommand(newChangelogInitCommand())
	return cmd
}

func newChangelogInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize changelog management",
		Long: `Initialize changelog management for the repository by running the
external "change" tool. The tool must be available on PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			return changelog.Init(cmd.Context(), cwd, cmd.OutOrStdout())
		},
	}
}
