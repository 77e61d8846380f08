// Package config provides configuration management for the convy CLI.
//
// Configuration is loaded with koanf from a convy.yaml file, CONVY_-prefixed
// environment variables, and CLI flags, with precedence
// flags > env vars > config file > defaults.
package config

import "github.com/leapstack-labs/convy/pkg/lint"

// Config holds all CLI configuration options.
type Config struct {
	AdditionalTypes             []string `koanf:"additional_types"`
	RequireBreakingChangeFooter bool     `koanf:"require_breaking_change_footer"`
	StrictFooters               bool     `koanf:"strict_footers"`
	Verbose                     bool     `koanf:"verbose"`
	OutputFormat                string   `koanf:"output"`
}

// LintConfig converts the CLI configuration to the core validation policy.
func (c *Config) LintConfig() *lint.Config {
	return &lint.Config{
		AdditionalTypes:             c.AdditionalTypes,
		RequireBreakingChangeFooter: c.RequireBreakingChangeFooter,
	}
}

// Default configuration values.
const (
	// FileName is the name of the config file.
	FileName = "convy.yaml"
	// FileNameAlt is the alternate name of the config file.
	FileNameAlt = "convy.yml"

	DefaultOutput = "auto" // auto-detect: TTY=text, non-TTY=markdown

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. CONVY_STRICT_FOOTERS=true.
	EnvPrefix = "CONVY_"
)
