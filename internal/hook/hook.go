// Package hook installs the commit-msg git hook that validates commit
// messages with convy before they are recorded.
package hook

import (
	"fmt"
	"os"
	"path/filepath"
)

// Name is the git hook this package manages.
const Name = "commit-msg"

// script delegates to the convy binary on PATH; git passes the path to the
// message file as the first argument.
const script = `#!/bin/sh
# Installed by convy. Validates the commit message before the commit is
# recorded. Remove this file or commit with --no-verify to bypass.
exec convy parse --file "$1"
`

// Install writes the commit-msg hook into hooksDir. An existing hook is
// left untouched unless force is set. The returned path is the hook file.
func Install(hooksDir string, force bool) (string, error) {
	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create hooks directory: %w", err)
	}

	path := filepath.Join(hooksDir, Name)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("hook already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		return path, fmt.Errorf("failed to write hook: %w", err)
	}
	return path, nil
}

// Installed reports whether the commit-msg hook file exists in hooksDir.
func Installed(hooksDir string) bool {
	_, err := os.Stat(filepath.Join(hooksDir, Name))
	return err == nil
}
