package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	chdir(t, dir)

	out, _, err := runCLI(t, "", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "commit-msg")
	assert.Contains(t, out, "convy.yaml")

	hookData, err := os.ReadFile(filepath.Join(dir, ".git", "hooks", "commit-msg"))
	require.NoError(t, err)
	assert.Contains(t, string(hookData), "convy parse")

	cfgData, err := os.ReadFile(filepath.Join(dir, "convy.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(cfgData), "additional_types")
}

func TestInitCommandRefusesExistingHook(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	chdir(t, dir)

	hooksDir := filepath.Join(dir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "commit-msg"), []byte("existing"), 0o755))

	_, _, err = runCLI(t, "", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommandForce(t *testing.T) {
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	chdir(t, dir)

	hooksDir := filepath.Join(dir, ".git", "hooks")
	require.NoError(t, os.MkdirAll(hooksDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(hooksDir, "commit-msg"), []byte("existing"), 0o755))

	_, _, err = runCLI(t, "", "init", "--force")
	require.NoError(t, err)

	hookData, err := os.ReadFile(filepath.Join(hooksDir, "commit-msg"))
	require.NoError(t, err)
	assert.Contains(t, string(hookData), "convy parse")
}

func TestInitCommandOutsideRepo(t *testing.T) {
	chdir(t, t.TempDir())

	_, _, err := runCLI(t, "", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repository")
}
