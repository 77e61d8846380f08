// Package token defines the lexical token kinds produced when scanning a
// commit message, along with source positions and spans.
package token

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// WORD is a run of text free of structural delimiters and whitespace.
	WORD

	// Structural delimiters
	LPAREN // (
	RPAREN // )
	BANG   // !
	COLON  // :

	// Whitespace markers. Runs are retained as tokens because the header
	// grammar needs them to disambiguate separators; consumers filter them
	// where irrelevant.
	SPACE     // run of spaces and tabs
	NEWLINE   // \n
	BLANKLINE // \n\n paragraph break
)

var tokenNames = map[TokenType]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	WORD:      "WORD",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	BANG:      "BANG",
	COLON:     "COLON",
	SPACE:     "SPACE",
	NEWLINE:   "NEWLINE",
	BLANKLINE: "BLANKLINE",
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a single lexical unit with its original text and byte span.
type Token struct {
	Type    TokenType
	Literal string
	Span    Span
}
