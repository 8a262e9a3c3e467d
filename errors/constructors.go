package errors

import (
	"fmt"
	"os/exec"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *TermError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(reason string) *TermError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", reason))
}

// GitNotInstalled creates an error for a missing git binary
func GitNotInstalled() *TermError {
	return New(ErrCodeGitNotInstalled, "git executable not found in PATH")
}

// ShellUnknown creates an error for an unrecognized shell name
func ShellUnknown(name string) *TermError {
	return New(ErrCodeShellUnknown, fmt.Sprintf("unknown shell: %s", name)).
		WithDetail("shell", name)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *TermError {
	termErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	// Extract exit code if available
	if exitErr, ok := err.(*exec.ExitError); ok {
		termErr = termErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return termErr
}
