package parser

import (
	"testing"

	"github.com/leapstack-labs/convy/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeHeader(t *testing.T) {
	toks := Tokenize("feat(api)!: add pagination")

	types := make([]token.TokenType, 0, len(toks))
	for _, tok := range toks {
		types = append(types, tok.Type)
	}
	assert.Equal(t, []token.TokenType{
		token.WORD,   // feat
		token.LPAREN, // (
		token.WORD,   // api
		token.RPAREN, // )
		token.BANG,   // !
		token.COLON,  // :
		token.SPACE,  // " "
		token.WORD,   // add
		token.SPACE,
		token.WORD, // pagination
	}, types)

	assert.Equal(t, "feat", toks[0].Literal)
	assert.Equal(t, "api", toks[2].Literal)
	assert.Equal(t, "pagination", toks[9].Literal)
}

func TestTokenizeNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.TokenType
	}{
		{
			name:  "single newline",
			input: "a\nb",
			want:  []token.TokenType{token.WORD, token.NEWLINE, token.WORD},
		},
		{
			name:  "blank line",
			input: "a\n\nb",
			want:  []token.TokenType{token.WORD, token.BLANKLINE, token.WORD},
		},
		{
			name:  "three newlines are blankline then newline",
			input: "a\n\n\nb",
			want:  []token.TokenType{token.WORD, token.BLANKLINE, token.NEWLINE, token.WORD},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)
			types := make([]token.TokenType, 0, len(toks))
			for _, tok := range toks {
				types = append(types, tok.Type)
			}
			assert.Equal(t, tt.want, types)
		})
	}
}

func TestTokenizeWhitespaceRuns(t *testing.T) {
	toks := Tokenize("a \t b")
	require.Len(t, toks, 3)
	assert.Equal(t, token.SPACE, toks[1].Type)
	assert.Equal(t, " \t ", toks[1].Literal)
}

func TestTokenizeSpans(t *testing.T) {
	toks := Tokenize("fix: x")
	require.Len(t, toks, 4)

	fix := toks[0]
	assert.Equal(t, 0, fix.Span.Start.Offset)
	assert.Equal(t, 3, fix.Span.End.Offset)
	assert.Equal(t, 1, fix.Span.Start.Line)
	assert.Equal(t, 1, fix.Span.Start.Column)

	colon := toks[1]
	assert.Equal(t, 3, colon.Span.Start.Offset)
	assert.Equal(t, 4, colon.Span.End.Offset)
}

func TestTokenizeUnicodeWords(t *testing.T) {
	toks := Tokenize("feat: améliorer café")
	require.Len(t, toks, 6)
	assert.Equal(t, "améliorer", toks[3].Literal)
	assert.Equal(t, "café", toks[5].Literal)
}

func TestLexerSkipsInvalidBytes(t *testing.T) {
	lex := NewLexer("\xffabc")
	var toks []token.Token
	for {
		tok := lex.NextToken()
		if tok.Type == token.EOF {
			break
		}
		toks = append(toks, tok)
	}

	// The invalid leading byte is skipped with a diagnostic; scanning never
	// aborts.
	require.Len(t, toks, 1)
	assert.Equal(t, "abc", toks[0].Literal)
	diags := lex.Diagnostics()
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "offset 0")
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}
