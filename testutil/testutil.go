package testutil

import (
	"os/exec"
	"testing"
)

// RequireGit skips the test if the git executable is not available.
func RequireGit(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
}
