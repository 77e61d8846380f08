// Package commit defines the structured representation of a conventional
// commit message: header fields, body, and ordered footers.
package commit

import "strings"

// BreakingChangeToken is the canonical footer key documenting a breaking
// change. Both the "BREAKING CHANGE" and "BREAKING-CHANGE" spellings
// canonicalize to this value during footer parsing.
const BreakingChangeToken = "BREAKING-CHANGE"

// Footer is a single structured trailer line, e.g. "Signed-off-by: Jane".
type Footer struct {
	Token string
	Value string
}

// Message is a fully parsed conventional commit message. Values are
// constructed fresh per parse call and never mutated afterwards, so a
// Message is safe to share across goroutines.
type Message struct {
	Type        string
	Scope       string
	Description string
	Body        string
	Footers     []Footer
	Breaking    bool
}

// Footer returns the first footer whose token matches under case-insensitive
// comparison. The canonical BREAKING-CHANGE token is stored normalized, so a
// case-sensitive caller can also compare against BreakingChangeToken directly.
func (m *Message) Footer(token string) (Footer, bool) {
	for _, f := range m.Footers {
		if strings.EqualFold(f.Token, token) {
			return f, true
		}
	}
	return Footer{}, false
}

// HasBreakingChangeFooter reports whether a canonical BREAKING-CHANGE footer
// is present.
func (m *Message) HasBreakingChangeFooter() bool {
	for _, f := range m.Footers {
		if f.Token == BreakingChangeToken {
			return true
		}
	}
	return false
}

// Header renders the canonical header line: type(scope)!: description.
func (m *Message) Header() string {
	var b strings.Builder
	b.WriteString(m.Type)
	if m.Scope != "" {
		b.WriteString("(")
		b.WriteString(m.Scope)
		b.WriteString(")")
	}
	if m.Breaking {
		b.WriteString("!")
	}
	b.WriteString(": ")
	b.WriteString(m.Description)
	return b.String()
}

// String renders the canonical serialization of the message. Parsing the
// result yields a structurally equal Message.
func (m *Message) String() string {
	var b strings.Builder
	b.WriteString(m.Header())
	if m.Body != "" {
		b.WriteString("\n\n")
		b.WriteString(m.Body)
	}
	if len(m.Footers) > 0 {
		b.WriteString("\n\n")
		for i, f := range m.Footers {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(f.Token)
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
	}
	return b.String()
}
