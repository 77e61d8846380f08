package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangelogInitTestMode(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONVY_TEST_MODE", "true")

	out, _, err := runCLI(t, "", "changelog", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Changelog initialized successfully.")
}

func TestChangelogInitFailsWithoutTool(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONVY_TEST_MODE", "false")
	// An empty PATH guarantees the external change binary is not found.
	t.Setenv("PATH", "")

	_, _, err := runCLI(t, "", "changelog", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "change init failed")
}
