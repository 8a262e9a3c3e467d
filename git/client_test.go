package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FocusTorn/outerm/testutil"
)

// runGitCommand is a test helper to execute git commands.
func runGitCommand(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed with output: %s", strings.Join(args, " "), string(output))
}

// setupGitRepo creates a test git repository with one initial commit.
func setupGitRepo(t *testing.T, dir string) {
	t.Helper()
	runGitCommand(t, dir, "init", "--initial-branch=main")
	runGitCommand(t, dir, "config", "user.email", "test@example.com")
	runGitCommand(t, dir, "config", "user.name", "Test User")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "initial.txt"), []byte("initial"), 0644))
	runGitCommand(t, dir, "add", "initial.txt")
	runGitCommand(t, dir, "commit", "-m", "initial commit")
}

func TestAggregate(t *testing.T) {
	testutil.RequireGit(t)

	client := NewClient()
	ctx := context.Background()

	t.Run("non-git directory", func(t *testing.T) {
		status := client.Aggregate(ctx, t.TempDir())
		assert.Nil(t, status)
	})

	t.Run("clean repo", func(t *testing.T) {
		dir := t.TempDir()
		setupGitRepo(t, dir)

		status := client.Aggregate(ctx, dir)
		require.NotNil(t, status)
		assert.Equal(t, "main", status.Branch)
		assert.True(t, status.Clean)
		assert.Equal(t, 0, status.Staged)
		assert.Equal(t, 0, status.Changed)
		assert.Equal(t, 0, status.Deleted)
		assert.Equal(t, 0, status.Untracked)
		assert.Equal(t, 0, status.Stashed)
		assert.False(t, status.HasUpstream)
		assert.Equal(t, 0, status.Ahead)
		assert.Equal(t, 0, status.Behind)
	})

	t.Run("one file per category", func(t *testing.T) {
		dir := t.TempDir()
		setupGitRepo(t, dir)

		// Extra tracked file so one can be deleted
		require.NoError(t, os.WriteFile(filepath.Join(dir, "doomed.txt"), []byte("doomed"), 0644))
		runGitCommand(t, dir, "add", "doomed.txt")
		runGitCommand(t, dir, "commit", "-m", "add doomed")

		// Staged
		require.NoError(t, os.WriteFile(filepath.Join(dir, "staged.txt"), []byte("staged"), 0644))
		runGitCommand(t, dir, "add", "staged.txt")

		// Changed
		require.NoError(t, os.WriteFile(filepath.Join(dir, "initial.txt"), []byte("modified"), 0644))

		// Deleted
		require.NoError(t, os.Remove(filepath.Join(dir, "doomed.txt")))

		// Untracked
		require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("untracked"), 0644))

		status := client.Aggregate(ctx, dir)
		require.NotNil(t, status)
		assert.Equal(t, 1, status.Staged, "staged.txt should be staged")
		assert.Equal(t, 1, status.Changed, "initial.txt should be changed")
		assert.Equal(t, 1, status.Deleted, "doomed.txt should be deleted")
		assert.Equal(t, 1, status.Untracked, "untracked.txt should be untracked")
		assert.False(t, status.Clean)
	})

	t.Run("staged then further modified counts once as staged", func(t *testing.T) {
		dir := t.TempDir()
		setupGitRepo(t, dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "initial.txt"), []byte("v2"), 0644))
		runGitCommand(t, dir, "add", "initial.txt")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "initial.txt"), []byte("v3"), 0644))

		status := client.Aggregate(ctx, dir)
		require.NotNil(t, status)
		assert.Equal(t, 1, status.Staged)
		assert.Equal(t, 0, status.Changed)
	})

	t.Run("deletion staged in the index", func(t *testing.T) {
		dir := t.TempDir()
		setupGitRepo(t, dir)

		runGitCommand(t, dir, "rm", "initial.txt")

		status := client.Aggregate(ctx, dir)
		require.NotNil(t, status)
		assert.Equal(t, 1, status.Deleted)
		assert.Equal(t, 0, status.Staged)
	})

	t.Run("stash entries counted", func(t *testing.T) {
		dir := t.TempDir()
		setupGitRepo(t, dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "initial.txt"), []byte("wip"), 0644))
		runGitCommand(t, dir, "stash")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "initial.txt"), []byte("wip2"), 0644))
		runGitCommand(t, dir, "stash")

		status := client.Aggregate(ctx, dir)
		require.NotNil(t, status)
		assert.Equal(t, 2, status.Stashed)
		assert.True(t, status.Clean, "stash entries do not dirty the tree")
	})

	t.Run("counters sum to entry count", func(t *testing.T) {
		dir := t.TempDir()
		setupGitRepo(t, dir)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0644))
		runGitCommand(t, dir, "add", "a.txt")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "initial.txt"), []byte("m"), 0644))

		status := client.Aggregate(ctx, dir)
		require.NotNil(t, status)
		total := status.Staged + status.Changed + status.Deleted + status.Untracked
		assert.Equal(t, 3, total)
	})
}

func TestAggregateUpstream(t *testing.T) {
	testutil.RequireGit(t)

	client := NewClient()
	ctx := context.Background()

	// Setup remote and local repos
	baseDir := t.TempDir()
	remoteDir := filepath.Join(baseDir, "remote.git")
	localDir := filepath.Join(baseDir, "local")

	require.NoError(t, os.Mkdir(remoteDir, 0755))
	runGitCommand(t, remoteDir, "init", "--bare", "--initial-branch=main")

	runGitCommand(t, baseDir, "clone", "remote.git", "local")
	runGitCommand(t, localDir, "config", "user.email", "test@example.com")
	runGitCommand(t, localDir, "config", "user.name", "Test User")

	require.NoError(t, os.WriteFile(filepath.Join(localDir, "file.txt"), []byte("1"), 0644))
	runGitCommand(t, localDir, "add", ".")
	runGitCommand(t, localDir, "commit", "-m", "c1")
	runGitCommand(t, localDir, "push", "-u", "origin", "main")

	// One local commit not pushed
	require.NoError(t, os.WriteFile(filepath.Join(localDir, "file2.txt"), []byte("2"), 0644))
	runGitCommand(t, localDir, "add", ".")
	runGitCommand(t, localDir, "commit", "-m", "c2")

	status := client.Aggregate(ctx, localDir)
	require.NotNil(t, status)
	assert.True(t, status.HasUpstream)
	assert.Equal(t, 1, status.Ahead)
	assert.Equal(t, 0, status.Behind)

	// Push, then advance the remote from a second clone
	runGitCommand(t, localDir, "push", "origin", "main")

	otherDir := filepath.Join(baseDir, "other")
	runGitCommand(t, baseDir, "clone", "remote.git", "other")
	runGitCommand(t, otherDir, "config", "user.email", "test@example.com")
	runGitCommand(t, otherDir, "config", "user.name", "Test User")
	require.NoError(t, os.WriteFile(filepath.Join(otherDir, "remote-file.txt"), []byte("3"), 0644))
	runGitCommand(t, otherDir, "add", ".")
	runGitCommand(t, otherDir, "commit", "-m", "c3")
	runGitCommand(t, otherDir, "push", "origin", "main")

	runGitCommand(t, localDir, "fetch")

	status = client.Aggregate(ctx, localDir)
	require.NotNil(t, status)
	assert.True(t, status.HasUpstream)
	assert.Equal(t, 0, status.Ahead, "should be 0 ahead after pushing")
	assert.Equal(t, 1, status.Behind, "should be 1 behind remote")
}

func TestRunValidatesWorkDir(t *testing.T) {
	client := NewClient()
	ctx := context.Background()

	// Shell metacharacters in the working directory are rejected before any
	// command is built, so no git process ever sees them.
	_, err := client.run(ctx, "/tmp; rm -rf /", "status", "--porcelain")
	require.Error(t, err)

	status := client.Aggregate(ctx, "$(pwd)")
	assert.Nil(t, status)
}

// stubExecutor substitutes canned shell snippets for git subcommands so the
// aggregation pipeline can be driven without a repository.
type stubExecutor struct {
	calls []string
}

func (s *stubExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	s.calls = append(s.calls, name+" "+strings.Join(args, " "))

	script := "exit 1"
	switch {
	case len(args) > 1 && args[0] == "rev-parse" && args[1] == "--git-dir":
		script = "echo .git"
	case len(args) > 0 && args[0] == "branch":
		script = "echo feature/stub"
	case len(args) > 0 && args[0] == "status":
		script = `printf ' M changed.txt\n?? new.txt\n'`
	case len(args) > 0 && args[0] == "stash":
		script = "true"
	}
	return exec.CommandContext(ctx, "sh", "-c", script)
}

func TestAggregateWithStubExecutor(t *testing.T) {
	stub := &stubExecutor{}
	client := NewClientWithExecutor(stub)

	status := client.Aggregate(context.Background(), t.TempDir())
	require.NotNil(t, status)
	assert.Equal(t, "feature/stub", status.Branch)
	assert.Equal(t, 1, status.Changed)
	assert.Equal(t, 1, status.Untracked)
	assert.Equal(t, 0, status.Stashed)
	assert.False(t, status.HasUpstream)

	joined := strings.Join(stub.calls, "\n")
	assert.Contains(t, joined, "git branch --show-current")
	assert.Contains(t, joined, "git status --porcelain")
}

func TestClassify(t *testing.T) {
	// Classification precedence: untracked > deleted > staged > changed,
	// exactly one counter per entry.
	tests := []struct {
		name     string
		index    byte
		worktree byte
		want     func(*RepoStatus) int
	}{
		{"untracked", '?', '?', func(s *RepoStatus) int { return s.Untracked }},
		{"worktree delete", ' ', 'D', func(s *RepoStatus) int { return s.Deleted }},
		{"index delete", 'D', ' ', func(s *RepoStatus) int { return s.Deleted }},
		{"staged add", 'A', ' ', func(s *RepoStatus) int { return s.Staged }},
		{"staged modify", 'M', ' ', func(s *RepoStatus) int { return s.Staged }},
		{"staged rename", 'R', ' ', func(s *RepoStatus) int { return s.Staged }},
		{"staged copy", 'C', ' ', func(s *RepoStatus) int { return s.Staged }},
		{"staged and modified", 'M', 'M', func(s *RepoStatus) int { return s.Staged }},
		{"worktree modify", ' ', 'M', func(s *RepoStatus) int { return s.Changed }},
		{"unmerged falls through to changed", 'U', 'U', func(s *RepoStatus) int { return s.Changed }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := &RepoStatus{}
			status.classify(tt.index, tt.worktree)

			assert.Equal(t, 1, tt.want(status))
			total := status.Staged + status.Changed + status.Deleted + status.Untracked
			assert.Equal(t, 1, total, "entry must increment exactly one counter")
		})
	}
}
