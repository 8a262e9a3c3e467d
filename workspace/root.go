package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/FocusTorn/outerm/config"
)

// fallbackRoot is used when neither the environment nor the config names a
// workspace root.
const fallbackRoot = "~/projects"

// ResolveRoot determines the session workspace root once at startup:
// OUTERM_WORKSPACE_ROOT wins over the config value, which wins over the
// fallback constant. The result is expanded and absolute.
func ResolveRoot(cfg *config.Config) string {
	root := os.Getenv("OUTERM_WORKSPACE_ROOT")
	if root == "" && cfg != nil {
		root = cfg.Workspace.Root
	}
	if root == "" {
		root = fallbackRoot
	}

	expanded, err := Expand(root)
	if err != nil {
		return root
	}
	return expanded
}

// Expand expands the home directory (~) and environment variables in a path
// and returns it absolute.
func Expand(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	path = os.ExpandEnv(path)

	return filepath.Abs(path)
}
