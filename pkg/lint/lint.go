// Package lint validates assembled commit messages against a configurable
// policy: an allow-list of commit types and the bidirectional
// breaking-change correlation between the header marker and the
// BREAKING-CHANGE footer.
//
// Rules live in a global ordered registry; importing pkg/lint/rules for side
// effects installs the built-in set.
package lint

import "github.com/leapstack-labs/convy/pkg/commit"

// Analyze runs every registered rule against the message in registration
// order and returns all diagnostics found.
func Analyze(msg *commit.Message, cfg *Config) []Diagnostic {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var diags []Diagnostic
	for _, rule := range All() {
		diags = append(diags, rule.Check(msg, cfg)...)
	}
	return diags
}

// Validate runs the registered rules in order and returns the error of the
// first violation, or nil when the message satisfies the policy.
func Validate(msg *commit.Message, cfg *Config) error {
	for _, d := range Analyze(msg, cfg) {
		if d.Severity == SeverityError {
			return d.Err
		}
	}
	return nil
}
