// Package commands contains the convy subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/leapstack-labs/convy/internal/cli/config"
	"github.com/leapstack-labs/convy/internal/cli/output"
	"github.com/spf13/cobra"
)

// CommandContext carries the shared dependencies a command needs.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext builds a CommandContext from the loaded configuration
// and the command's writers.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	return &config.Config{
		RequireBreakingChangeFooter: os.Getenv("CONVY_REQUIRE_BREAKING_CHANGE_FOOTER") != "false",
		StrictFooters:               os.Getenv("CONVY_STRICT_FOOTERS") == "true",
		Verbose:                     os.Getenv("CONVY_VERBOSE") == "true",
		OutputFormat:                os.Getenv("CONVY_OUTPUT"),
	}
}
