package hook

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstall(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hooks")

	path, err := Install(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, Name), path)
	assert.True(t, Installed(dir))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "#!/bin/sh")
	assert.Contains(t, string(data), `convy parse --file "$1"`)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
	}
}

func TestInstallRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Name), []byte("existing"), 0o755))

	_, err := Install(dir, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Existing content untouched.
	data, err := os.ReadFile(filepath.Join(dir, Name))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestInstallForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, Name), []byte("existing"), 0o755))

	path, err := Install(dir, true)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "convy parse")
}

func TestInstalledFalseWhenMissing(t *testing.T) {
	assert.False(t, Installed(t.TempDir()))
}
