// Package shell wires the prompt renderer into interactive shells. Each
// adapter only supplies the hook script for its shell; rendering itself is
// shared, so every host produces identical visible output.
package shell

import (
	"github.com/FocusTorn/outerm/errors"
)

// Adapter integrates the renderer with one interactive shell.
type Adapter interface {
	// Name returns the shell identifier accepted by `outerm init`.
	Name() string

	// InitScript returns the script a user evals in their shell to run the
	// renderer before every interactive prompt. execPath is the absolute
	// path of the outerm binary.
	InitScript(execPath string) string
}

// ForName resolves a shell name to its adapter.
func ForName(name string) (Adapter, error) {
	for _, a := range All() {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, errors.ShellUnknown(name)
}

// All returns every supported adapter.
func All() []Adapter {
	return []Adapter{Bash{}, Zsh{}}
}
