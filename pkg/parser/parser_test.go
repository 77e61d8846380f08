package parser_test

import (
	"testing"

	"github.com/leapstack-labs/convy/pkg/commit"
	"github.com/leapstack-labs/convy/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullMessage(t *testing.T) {
	msg, err := parser.Parse("feat: add new API endpoint\n\nThis introduces a new endpoint.\n\nSigned-off-by: Jane Doe <jane@example.com>")
	require.NoError(t, err)

	assert.Equal(t, "feat", msg.Type)
	assert.Empty(t, msg.Scope)
	assert.Equal(t, "add new API endpoint", msg.Description)
	assert.False(t, msg.Breaking)
	assert.Equal(t, "This introduces a new endpoint.", msg.Body)
	require.Len(t, msg.Footers, 1)
	assert.Equal(t, commit.Footer{Token: "Signed-off-by", Value: "Jane Doe <jane@example.com>"}, msg.Footers[0])
}

func TestParseHeaderOnly(t *testing.T) {
	msg, err := parser.Parse("fix(lexer)!: handle tabs")
	require.NoError(t, err)

	assert.Equal(t, "fix", msg.Type)
	assert.Equal(t, "lexer", msg.Scope)
	assert.True(t, msg.Breaking)
	assert.Equal(t, "handle tabs", msg.Description)
	assert.Empty(t, msg.Body)
	assert.Empty(t, msg.Footers)
}

func TestParseBreakingChangeFooterIsCanonical(t *testing.T) {
	msg, err := parser.Parse("refactor!: major API overhaul\n\nDetails.\n\nBREAKING CHANGE: The entire API surface has changed.")
	require.NoError(t, err)

	count := 0
	for _, f := range msg.Footers {
		if f.Token == commit.BreakingChangeToken {
			count++
		}
	}
	assert.Equal(t, 1, count, "exactly one canonical BREAKING-CHANGE footer")
	assert.True(t, msg.HasBreakingChangeFooter())

	f, ok := msg.Footer(commit.BreakingChangeToken)
	require.True(t, ok)
	assert.Equal(t, "The entire API surface has changed.", f.Value)
}

func TestParseMalformedFooterLineFoldsIntoBody(t *testing.T) {
	msg, err := parser.Parse("chore: cleanup\n\nSome cleanup tasks.\nInvalid Footer Line\nAnother: valid-footer")
	require.NoError(t, err)

	assert.Equal(t, "Some cleanup tasks.\nInvalid Footer Line", msg.Body)
	require.Len(t, msg.Footers, 1)
	assert.Equal(t, "Another", msg.Footers[0].Token)
}

func TestParseStrictFooters(t *testing.T) {
	input := "chore: cleanup\n\nSome cleanup tasks.\nInvalid Footer Line\nAnother: valid-footer"

	_, err := parser.ParseWithOptions(input, parser.Options{StrictFooters: true})
	require.Error(t, err)
	var ferr *parser.InvalidFooterLineError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "Invalid Footer Line", ferr.Line)
}

func TestParseNormalizesCRLF(t *testing.T) {
	msg, err := parser.Parse("fix: wrap lines\r\n\r\nBody text.\r\n\r\nSigned-off-by: Jane\r\n")
	require.NoError(t, err)
	assert.Equal(t, "Body text.", msg.Body)
	require.Len(t, msg.Footers, 1)
	assert.Equal(t, "Signed-off-by", msg.Footers[0].Token)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty message", input: "", wantErr: parser.ErrMissingHeaderLine},
		{name: "whitespace only", input: "  \n \n", wantErr: parser.ErrMissingHeaderLine},
		{name: "no type", input: "(api): thing", wantErr: parser.ErrMissingCommitType},
		{name: "no description", input: "feat:", wantErr: parser.ErrMissingDescription},
		{name: "missing space after colon", input: "feat:description", wantErr: parser.ErrMissingDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseDuplicateFooters(t *testing.T) {
	msg, err := parser.Parse("feat: thing\n\nReviewed-by: Alice\nreviewed-by: Bob\nBREAKING-CHANGE: first\nSigned-off-by: Jane\nBREAKING-CHANGE: second")
	require.NoError(t, err)

	// Header lacks '!', so this message will fail validation, but the parse
	// itself records the footers deterministically.
	require.Len(t, msg.Footers, 3)
	assert.Equal(t, commit.Footer{Token: "Reviewed-by", Value: "Alice"}, msg.Footers[0])
	assert.Equal(t, commit.BreakingChangeToken, msg.Footers[1].Token)
	assert.Equal(t, "second", msg.Footers[1].Value)
	assert.Equal(t, "Signed-off-by", msg.Footers[2].Token)
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"feat: add new API endpoint",
		"fix(lexer)!: handle tabs",
		"feat: add new API endpoint\n\nThis introduces a new endpoint.\n\nSigned-off-by: Jane Doe <jane@example.com>",
		"refactor(core)!: major overhaul\n\nFirst paragraph.\n\nSecond paragraph.\n\nBREAKING-CHANGE: everything changed\nReviewed-by: Alice",
	}

	for _, input := range inputs {
		msg, err := parser.Parse(input)
		require.NoError(t, err, input)

		again, err := parser.Parse(msg.String())
		require.NoError(t, err, msg.String())
		assert.Equal(t, msg, again, "canonical serialization must re-parse to an equal message")
	}
}
