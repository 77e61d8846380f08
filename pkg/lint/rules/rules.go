// Package rules registers the built-in commit validation rules. Import it
// for side effects:
//
//	import _ "github.com/leapstack-labs/convy/pkg/lint/rules"
//
// Registration order is evaluation order: the type gate runs before the
// breaking-change correlation gates.
package rules

import (
	"fmt"

	"github.com/leapstack-labs/convy/pkg/commit"
	"github.com/leapstack-labs/convy/pkg/lint"
)

func init() {
	lint.Register(lint.RuleDef{
		ID:          "CT01",
		Name:        "type.allowed",
		Group:       "type",
		Description: "commit type must be a member of the configured allow-list",
		Severity:    lint.SeverityError,
		Check:       checkTypeAllowed,
	})
	lint.Register(lint.RuleDef{
		ID:          "BC01",
		Name:        "breaking.footer-required",
		Group:       "breaking",
		Description: "a header '!' marker requires a BREAKING-CHANGE footer (configurable)",
		Severity:    lint.SeverityError,
		Check:       checkBreakingFooterRequired,
	})
	lint.Register(lint.RuleDef{
		ID:          "BC02",
		Name:        "breaking.marker-required",
		Group:       "breaking",
		Description: "a BREAKING-CHANGE footer requires the header '!' marker (always enforced)",
		Severity:    lint.SeverityError,
		Check:       checkBreakingMarkerRequired,
	})
}

func checkTypeAllowed(msg *commit.Message, cfg *lint.Config) []lint.Diagnostic {
	if cfg.TypeAllowed(msg.Type) {
		return nil
	}
	err := &lint.InvalidTypeError{Type: msg.Type, Allowed: cfg.AllowedTypes()}
	return []lint.Diagnostic{{
		RuleID:   "CT01",
		Severity: lint.SeverityError,
		Message:  fmt.Sprintf("commit type %q is not allowed", msg.Type),
		Err:      err,
	}}
}

func checkBreakingFooterRequired(msg *commit.Message, cfg *lint.Config) []lint.Diagnostic {
	if !msg.Breaking || !cfg.RequireBreakingChangeFooter {
		return nil
	}
	if msg.HasBreakingChangeFooter() {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "BC01",
		Severity: lint.SeverityError,
		Message:  "breaking change declared in the header is not documented by a BREAKING-CHANGE footer",
		Err:      lint.ErrMissingBreakingChangeFooter,
	}}
}

func checkBreakingMarkerRequired(msg *commit.Message, cfg *lint.Config) []lint.Diagnostic {
	if !msg.HasBreakingChangeFooter() || msg.Breaking {
		return nil
	}
	return []lint.Diagnostic{{
		RuleID:   "BC02",
		Severity: lint.SeverityError,
		Message:  "BREAKING-CHANGE footer is present but the header does not carry the '!' marker",
		Err:      lint.ErrBreakingChangeFooterWithoutMarker,
	}}
}
