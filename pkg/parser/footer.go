package parser

import (
	"strings"

	"github.com/leapstack-labs/convy/pkg/commit"
)

// breakingChangeSpaced is the spaced spelling accepted as a footer token.
// It is the single exception to the one-word token rule, and the single
// case-sensitive token: only the uppercase spellings canonicalize.
const breakingChangeSpaced = "BREAKING CHANGE"

// parseFooterLine classifies a single candidate line as a footer. Two
// separator grammars are tried in order: "<token> # <value>", then
// "<token>: <value>". A line matching neither is not a footer.
func parseFooterLine(line string) (commit.Footer, bool) {
	if i := strings.Index(line, " # "); i > 0 {
		tok := line[:i]
		val := strings.TrimSpace(line[i+3:])
		if isFooterToken(tok) && !strings.Contains(tok, ":") && val != "" {
			return commit.Footer{Token: normalizeFooterToken(tok), Value: val}, true
		}
	}

	if i := strings.Index(line, ":"); i > 0 {
		tok := line[:i]
		val := strings.TrimSpace(line[i+1:])
		if !isFooterToken(tok) {
			return commit.Footer{}, false
		}
		norm := normalizeFooterToken(tok)
		// A value may be empty only for the breaking-marker-only case.
		if val == "" && norm != commit.BreakingChangeToken {
			return commit.Footer{}, false
		}
		return commit.Footer{Token: norm, Value: val}, true
	}

	return commit.Footer{}, false
}

// isFooterToken reports whether the text is a valid footer token: a single
// word of letters, digits, and hyphens starting with a letter, or the
// literal spaced BREAKING CHANGE spelling.
func isFooterToken(tok string) bool {
	if tok == breakingChangeSpaced {
		return true
	}
	if tok == "" {
		return false
	}
	for i, r := range tok {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// normalizeFooterToken canonicalizes the two accepted breaking-change
// spellings to BREAKING-CHANGE. No other token is rewritten; general token
// comparison elsewhere is case-insensitive, but the breaking-change
// canonicalization is deliberately exact-match.
func normalizeFooterToken(tok string) string {
	if tok == breakingChangeSpaced || tok == commit.BreakingChangeToken {
		return commit.BreakingChangeToken
	}
	return tok
}

// appendFooter adds a parsed footer to the ordered set. Duplicate tokens
// (case-insensitive) keep the first occurrence; BREAKING-CHANGE keeps its
// original position but takes the value of the last occurrence, privileging
// the most specific breaking-change description.
func appendFooter(footers []commit.Footer, f commit.Footer) []commit.Footer {
	if f.Token == commit.BreakingChangeToken {
		for i := range footers {
			if footers[i].Token == commit.BreakingChangeToken {
				footers[i] = f
				return footers
			}
		}
		return append(footers, f)
	}
	for _, existing := range footers {
		if strings.EqualFold(existing.Token, f.Token) {
			return footers
		}
	}
	return append(footers, f)
}
