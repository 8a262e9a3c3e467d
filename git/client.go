package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/FocusTorn/outerm/command"
	"github.com/FocusTorn/outerm/logging"
)

// Client queries repository state through the git CLI. Every query is a
// blocking call bounded by the command builder's timeout; failures degrade
// to absent data rather than propagating as errors.
type Client struct {
	builder *command.SafeBuilder
	log     *logrus.Entry
}

// NewClient creates a git client backed by the real git executable.
func NewClient() *Client {
	return NewClientWithExecutor(nil)
}

// NewClientWithExecutor creates a git client with a custom command executor.
// Passing nil uses the real executor.
func NewClientWithExecutor(exec command.Executor) *Client {
	var builder *command.SafeBuilder
	if exec == nil {
		builder = command.NewSafeBuilder()
	} else {
		builder = command.NewSafeBuilderWithExecutor(exec)
	}
	return &Client{
		builder: builder,
		log:     logging.NewLogger("git"),
	}
}

// run executes a git subcommand in dir and returns its raw stdout. The
// working directory is validated before anything executes; refs never come
// from user input, so dir is the only injectable argument.
func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	if err := c.builder.Validate("workDir", dir); err != nil {
		return "", err
	}
	cmd, err := c.builder.Build(ctx, "git", args...)
	if err != nil {
		return "", err
	}
	defer cmd.Release()
	execCmd := cmd.Exec()
	execCmd.Dir = dir
	output, err := execCmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// IsRepo reports whether dir is inside a git repository.
func (c *Client) IsRepo(ctx context.Context, dir string) bool {
	_, err := c.run(ctx, dir, "rev-parse", "--git-dir")
	return err == nil
}

// Branch returns the current branch name, or an empty string when HEAD is
// detached or the branch cannot be resolved.
func (c *Client) Branch(ctx context.Context, dir string) string {
	output, err := c.run(ctx, dir, "branch", "--show-current")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(output)
}

// StashCount returns the number of stash entries, or 0 when the query fails.
func (c *Client) StashCount(ctx context.Context, dir string) int {
	output, err := c.run(ctx, dir, "stash", "list")
	if err != nil {
		return 0
	}
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// Upstream returns the remote-tracking ref of the current branch, or an
// empty string when no upstream is configured.
func (c *Client) Upstream(ctx context.Context, dir string) string {
	output, err := c.run(ctx, dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(output)
}

// AheadBehind counts the commits reachable only locally (ahead) and only on
// the upstream (behind) via a symmetric revision range. Failures resolve to
// 0/0.
func (c *Client) AheadBehind(ctx context.Context, dir string) (ahead, behind int) {
	output, err := c.run(ctx, dir, "rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0
	}
	parts := strings.Fields(output)
	if len(parts) < 2 {
		return 0, 0
	}
	ahead, _ = strconv.Atoi(parts[0])
	behind, _ = strconv.Atoi(parts[1])
	return ahead, behind
}

// Aggregate builds the RepoStatus for dir, or returns nil when dir is not a
// repository or the branch cannot be resolved. Sub-query failures degrade to
// zero values; nothing here surfaces an error to the prompt.
func (c *Client) Aggregate(ctx context.Context, dir string) *RepoStatus {
	if !c.IsRepo(ctx, dir) {
		return nil
	}

	branch := c.Branch(ctx, dir)
	if branch == "" {
		c.log.WithField("dir", dir).Debug("branch unresolvable, skipping status")
		return nil
	}

	status := &RepoStatus{Branch: branch}

	output, err := c.run(ctx, dir, "status", "--porcelain")
	if err != nil {
		c.log.WithError(err).Debug("git status query failed")
	} else {
		for _, line := range strings.Split(output, "\n") {
			// Porcelain lines are "XY path"; the leading columns are
			// significant so only the line terminator is trimmed.
			line = strings.TrimRight(line, "\r")
			if len(line) < 3 {
				continue
			}
			status.classify(line[0], line[1])
		}
	}

	status.Stashed = c.StashCount(ctx, dir)
	status.Clean = status.Staged == 0 && status.Changed == 0 &&
		status.Deleted == 0 && status.Untracked == 0

	if c.Upstream(ctx, dir) != "" {
		status.HasUpstream = true
		status.Ahead, status.Behind = c.AheadBehind(ctx, dir)
	}

	return status
}
