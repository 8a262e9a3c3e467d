package command

import (
	"context"
	"os/exec"
)

// Executor creates exec.Cmd instances. The indirection lets tests substitute
// canned commands for the real git binary without touching production code.
// Commands always run under the builder's timeout context, so only a
// context-aware constructor is needed.
type Executor interface {
	// CommandContext creates a context-aware exec.Cmd for the given command
	// and arguments.
	CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd
}

// RealExecutor runs commands through the standard os/exec package.
type RealExecutor struct{}

// CommandContext creates a standard context-aware exec.Cmd.
func (e *RealExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	return exec.CommandContext(ctx, name, args...)
}
