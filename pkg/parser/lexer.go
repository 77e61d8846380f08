// Package parser implements the commit message processing pipeline: a
// lexical scanner, the header parser, the body/footer splitter, and the
// footer parser. The assembled entry point is Parse.
package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/leapstack-labs/convy/pkg/token"
)

// Lexer tokenizes a commit message in a single left-to-right pass over
// Unicode scalar boundaries. Position state threads through the lexer
// explicitly; each call site owns its own Lexer, so no synchronization is
// needed.
type Lexer struct {
	input   string
	pos     int  // byte offset of current rune
	readPos int  // byte offset after current rune
	ch      rune // current rune under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	// Diagnostics collected for byte sequences that were skipped.
	// Malformed input never aborts the scan.
	diags []string
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next rune.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
		l.pos = l.readPos
		l.readPos++
		return
	}
	r, width := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.pos = l.readPos
	l.readPos += width
	l.ch = r

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next rune without advancing.
func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// Diagnostics returns the non-fatal scan diagnostics collected so far.
func (l *Lexer) Diagnostics() []string {
	return l.diags
}

// NextToken returns the next token. Invalid UTF-8 sequences are skipped with
// a diagnostic rather than aborting the scan.
func (l *Lexer) NextToken() token.Token {
	// Skip unrecognizable byte sequences.
	for l.ch == utf8.RuneError && l.readPos-l.pos == 1 {
		l.diags = append(l.diags, fmt.Sprintf("skipped invalid byte at offset %d", l.pos))
		l.readChar()
	}

	start := l.currentPos()

	switch l.ch {
	case 0:
		return l.emit(token.EOF, "", start)
	case '(':
		l.readChar()
		return l.emit(token.LPAREN, "(", start)
	case ')':
		l.readChar()
		return l.emit(token.RPAREN, ")", start)
	case '!':
		l.readChar()
		return l.emit(token.BANG, "!", start)
	case ':':
		l.readChar()
		return l.emit(token.COLON, ":", start)
	case '\n':
		if l.peekChar() == '\n' {
			l.readChar()
			l.readChar()
			return l.emit(token.BLANKLINE, "\n\n", start)
		}
		l.readChar()
		return l.emit(token.NEWLINE, "\n", start)
	case ' ', '\t':
		begin := l.pos
		for l.ch == ' ' || l.ch == '\t' {
			l.readChar()
		}
		return l.emit(token.SPACE, l.input[begin:l.pos], start)
	default:
		begin := l.pos
		for !isDelimiter(l.ch) {
			l.readChar()
		}
		return l.emit(token.WORD, l.input[begin:l.pos], start)
	}
}

// emit builds a token whose span ends at the current position.
func (l *Lexer) emit(t token.TokenType, literal string, start token.Position) token.Token {
	return token.Token{
		Type:    t,
		Literal: literal,
		Span: token.Span{
			Start: start,
			End:   l.currentPos(),
		},
	}
}

// isDelimiter reports whether the rune terminates a WORD run.
func isDelimiter(r rune) bool {
	switch r {
	case 0, '(', ')', '!', ':', ' ', '\t', '\n':
		return true
	}
	return false
}

// Tokenize scans the whole input and returns the token stream, excluding the
// trailing EOF token.
func Tokenize(input string) []token.Token {
	l := NewLexer(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}
