package commands

import (
	"os"

	"github.com/leapstack-labs/convy/internal/cli/config"
	"github.com/leapstack-labs/convy/internal/gitio"
	"github.com/leapstack-labs/convy/internal/hook"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Force bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := &InitOptions{}
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Install the commit-msg hook and a starter config",
		Long: `Install a commit-msg git hook that validates commit messages with
convy, and write a starter convy.yaml at the repository root.

Existing hooks and config files are left untouched unless --force is given.`,
		Example: `  # Set up the current repository
  convy init

  # Overwrite an existing hook and config
  convy init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing hook and config file")

	return cmd
}

func runInit(cmd *cobra.Command, opts *InitOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	logger := cmdCtx.Logger

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repo, err := gitio.OpenRepository(cwd)
	if err != nil {
		return err
	}
	root, err := gitio.RootDir(repo)
	if err != nil {
		return err
	}
	hooksDir, err := gitio.HooksDir(repo)
	if err != nil {
		return err
	}

	hookPath, err := hook.Install(hooksDir, opts.Force)
	if err != nil {
		return err
	}
	logger.Debug("installed hook", "path", hookPath)
	r.Success("installed commit-msg hook: " + hookPath)

	cfgPath, err := config.WriteStarter(root, opts.Force)
	if err != nil {
		return err
	}
	logger.Debug("wrote starter config", "path", cfgPath)
	r.Success("wrote starter config: " + cfgPath)

	return nil
}
