package lint

import "github.com/leapstack-labs/convy/pkg/commit"

// RuleDef is a data-driven validation rule. Rules are stateless; all context
// comes in via the Check function parameters, so a rule may run concurrently
// against many messages.
type RuleDef struct {
	ID          string // unique identifier, e.g. "CT01"
	Name        string // human-readable name, e.g. "type.allowed"
	Group       string // category, e.g. "type", "breaking"
	Description string // human-readable description
	Severity    Severity
	Check       CheckFunc
}

// CheckFunc analyzes an assembled message against the configured policy and
// returns diagnostics for every violation it finds.
type CheckFunc func(msg *commit.Message, cfg *Config) []Diagnostic

// Diagnostic represents a single validation finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Err      error // the typed error carried to callers that unwrap
}
