package workspace

import (
	"strings"
)

// Location classifies where the working directory sits relative to the
// recognized roots.
type Location int

const (
	// LocationWorkspace means the directory is under the workspace root.
	LocationWorkspace Location = iota
	// LocationHome means the directory is under the home directory.
	LocationHome
	// LocationOther covers everything else.
	LocationOther
)

func (l Location) String() string {
	switch l {
	case LocationWorkspace:
		return "workspace"
	case LocationHome:
		return "home"
	default:
		return "other"
	}
}

// Classifier resolves working directories against the workspace root and the
// home directory. Both roots are fixed for the session; Classify itself
// cannot fail and falls back to the normalized raw path.
type Classifier struct {
	root string
	home string
}

// NewClassifier creates a classifier for the given workspace root and home
// directory. Either may be empty, disabling that match.
func NewClassifier(root, home string) *Classifier {
	return &Classifier{
		root: normalize(root),
		home: normalize(home),
	}
}

// Classify returns the display path and location for cwd. Matching is
// longest-prefix with the workspace root checked first: inside the workspace
// the display is the remainder with a leading slash (the root itself is "/"),
// inside home the prefix is replaced by "~", anywhere else the normalized
// absolute path is used unchanged.
func (c *Classifier) Classify(cwd string) (string, Location) {
	path := normalize(cwd)

	if rel, ok := trimPrefix(path, c.root); ok {
		if rel == "" {
			return "/", LocationWorkspace
		}
		return rel, LocationWorkspace
	}

	if rel, ok := trimPrefix(path, c.home); ok {
		return "~" + rel, LocationHome
	}

	return path, LocationOther
}

// normalize converts separators to forward slashes and strips any trailing
// slash except on the filesystem root. Backslashes are replaced explicitly
// so that Windows-style paths canonicalize on every platform.
func normalize(path string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// trimPrefix reports whether path is prefix itself or below it, returning
// the slash-prefixed remainder. A component boundary is required so that
// /workspace-other never matches /workspace.
func trimPrefix(path, prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	if path == prefix {
		return "", true
	}
	if strings.HasPrefix(path, prefix+"/") {
		return path[len(prefix):], true
	}
	return "", false
}
