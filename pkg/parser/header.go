package parser

import (
	"strings"

	"github.com/leapstack-labs/convy/pkg/token"
)

// header holds the fields recovered from the first line of a message.
type header struct {
	commitType  string
	scope       string
	breaking    bool
	description string
}

// parseHeader recovers type, scope, breaking marker, and description from the
// header line. Grammar: type ['(' scope ')'] ['!'] ':' ' ' description.
//
// Whether the type is a member of the allowed set is policy, not grammar, and
// is checked by the lint package.
func parseHeader(line string) (header, error) {
	var h header

	lx := NewLexer(line)
	tok := lx.NextToken()

	// Whitespace runs are tokens, but carry no meaning ahead of the type.
	for tok.Type == token.SPACE {
		tok = lx.NextToken()
	}

	switch tok.Type {
	case token.EOF:
		return h, ErrMissingHeaderLine
	case token.WORD:
		h.commitType = tok.Literal
		tok = lx.NextToken()
	default:
		// A delimiter with no text before it: "(scope): x", ": x", "!: x".
		return h, ErrMissingCommitType
	}

	for tok.Type == token.SPACE {
		tok = lx.NextToken()
	}

	// Optional scope.
	if tok.Type == token.LPAREN {
		begin := tok.Span.End.Offset
		for tok.Type != token.RPAREN {
			if tok.Type == token.EOF {
				// Unterminated scope: no ": description" can follow.
				return h, ErrMissingDescription
			}
			tok = lx.NextToken()
		}
		h.scope = line[begin:tok.Span.Start.Offset]
		if strings.TrimSpace(h.scope) == "" {
			return h, ErrMissingDescription
		}
		tok = lx.NextToken()
		for tok.Type == token.SPACE {
			tok = lx.NextToken()
		}
	}

	// Optional breaking marker, valid only immediately before the colon.
	if tok.Type == token.BANG {
		h.breaking = true
		tok = lx.NextToken()
	}

	if tok.Type != token.COLON {
		// No terminal colon reachable from here; whatever remains cannot
		// form a ": description" suffix.
		return h, ErrMissingDescription
	}

	// The colon must be immediately followed by a single space, then the
	// rest of the line is the description verbatim (surrounding whitespace
	// trimmed, internal spacing preserved).
	rest := line[tok.Span.End.Offset:]
	if !strings.HasPrefix(rest, " ") {
		return h, ErrMissingDescription
	}
	h.description = strings.TrimSpace(rest[1:])
	if h.description == "" {
		return h, ErrMissingDescription
	}

	return h, nil
}
