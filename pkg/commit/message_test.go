package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{
			name: "plain",
			msg:  Message{Type: "feat", Description: "add endpoint"},
			want: "feat: add endpoint",
		},
		{
			name: "with scope",
			msg:  Message{Type: "fix", Scope: "parser", Description: "handle tabs"},
			want: "fix(parser): handle tabs",
		},
		{
			name: "breaking",
			msg:  Message{Type: "feat", Breaking: true, Description: "remove v1"},
			want: "feat!: remove v1",
		},
		{
			name: "scope and breaking",
			msg:  Message{Type: "refactor", Scope: "core", Breaking: true, Description: "overhaul"},
			want: "refactor(core)!: overhaul",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.Header())
		})
	}
}

func TestString(t *testing.T) {
	msg := Message{
		Type:        "feat",
		Scope:       "api",
		Description: "add pagination",
		Body:        "First paragraph.\n\nSecond paragraph.",
		Footers: []Footer{
			{Token: "Reviewed-by", Value: "Alice"},
			{Token: "Signed-off-by", Value: "Bob"},
		},
	}

	want := "feat(api): add pagination\n\nFirst paragraph.\n\nSecond paragraph.\n\nReviewed-by: Alice\nSigned-off-by: Bob"
	assert.Equal(t, want, msg.String())
}

func TestStringWithoutBody(t *testing.T) {
	msg := Message{
		Type:        "fix",
		Description: "patch leak",
		Footers:     []Footer{{Token: "Refs", Value: "42"}},
	}
	assert.Equal(t, "fix: patch leak\n\nRefs: 42", msg.String())
}

func TestFooterLookup(t *testing.T) {
	msg := Message{
		Footers: []Footer{
			{Token: "Signed-off-by", Value: "Jane"},
			{Token: BreakingChangeToken, Value: "api removed"},
		},
	}

	f, ok := msg.Footer("signed-off-by")
	require.True(t, ok, "footer lookup is case-insensitive")
	assert.Equal(t, "Jane", f.Value)

	_, ok = msg.Footer("Reviewed-by")
	assert.False(t, ok)
}

func TestHasBreakingChangeFooter(t *testing.T) {
	withFooter := Message{Footers: []Footer{{Token: BreakingChangeToken, Value: "x"}}}
	assert.True(t, withFooter.HasBreakingChangeFooter())

	// Only the canonical token counts; an uncanonicalized lowercase token
	// never reaches this check through the parser, and does not match here.
	lowercase := Message{Footers: []Footer{{Token: "breaking-change", Value: "x"}}}
	assert.False(t, lowercase.HasBreakingChangeFooter())

	assert.False(t, (&Message{}).HasBreakingChangeFooter())
}
