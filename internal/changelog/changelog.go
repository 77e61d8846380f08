// Package changelog bootstraps changelog management by delegating to the
// external change CLI.
package changelog

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// TestModeEnv short-circuits the external tool invocation when set to
// "true", so the command path can be tested without the change binary.
const TestModeEnv = "CONVY_TEST_MODE"

// successLine is printed after a successful initialization, in test mode or
// otherwise.
const successLine = "Changelog initialized successfully."

// Init initializes changelog management in dir by running "change init".
// Output from the external tool is forwarded to out.
func Init(ctx context.Context, dir string, out io.Writer) error {
	if os.Getenv(TestModeEnv) == "true" {
		_, _ = fmt.Fprintln(out, successLine)
		return nil
	}

	cmd := exec.CommandContext(ctx, "change", "init")
	cmd.Dir = dir
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("change init failed: %w", err)
	}
	_, _ = fmt.Fprintln(out, successLine)
	return nil
}
