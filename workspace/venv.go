package workspace

import (
	"os"
	"path"
	"path/filepath"
)

// DetectVenv reports the active isolated environment, if any. VIRTUAL_ENV is
// checked first and carries a path, so its basename is returned;
// CONDA_DEFAULT_ENV carries a plain name and is returned verbatim. An empty
// string means no environment is active.
func DetectVenv() string {
	if v := os.Getenv("VIRTUAL_ENV"); v != "" {
		return path.Base(filepath.ToSlash(v))
	}
	if v := os.Getenv("CONDA_DEFAULT_ENV"); v != "" {
		return v
	}
	return ""
}
