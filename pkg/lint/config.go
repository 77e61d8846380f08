package lint

import "strings"

// BuiltinTypes is the fixed set of commit types that is always accepted.
// Additional types from configuration are merged with this set, never
// replacing it.
var BuiltinTypes = []string{
	"feat", "fix", "docs", "style", "refactor", "perf", "test",
	"build", "ci", "chore", "revert", "merge", "wip",
}

// Config holds the validation policy. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// AdditionalTypes are extra allowed commit types merged with
	// BuiltinTypes.
	AdditionalTypes []string

	// RequireBreakingChangeFooter governs only the header-to-footer
	// direction of the breaking-change invariant: a header '!' must be
	// matched by a BREAKING-CHANGE footer. The reverse direction (footer
	// requires the marker) is unconditional and not configurable.
	RequireBreakingChangeFooter bool
}

// DefaultConfig returns the validation policy used when no external
// configuration is present.
func DefaultConfig() *Config {
	return &Config{
		RequireBreakingChangeFooter: true,
	}
}

// AllowedTypes returns the merged allow-list, built-in types first.
func (c *Config) AllowedTypes() []string {
	out := make([]string, 0, len(BuiltinTypes)+len(c.AdditionalTypes))
	out = append(out, BuiltinTypes...)
	out = append(out, c.AdditionalTypes...)
	return out
}

// TypeAllowed reports whether the commit type is a member of the allow-list.
// Comparison is case-insensitive, matching the grammar's treatment of every
// unit except the BREAKING CHANGE footer token.
func (c *Config) TypeAllowed(t string) bool {
	for _, allowed := range c.AllowedTypes() {
		if strings.EqualFold(t, allowed) {
			return true
		}
	}
	return false
}
