package cli

import (
	"fmt"
	"os"

	"github.com/FocusTorn/outerm/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeShellUnknown:
		if termErr, ok := err.(*errors.TermError); ok {
			fmt.Fprintf(os.Stderr, "✗ Shell '%s' is not supported. Supported shells: bash, zsh\n", termErr.Details["shell"])
		}
		return err

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(os.Stderr, "✗ Configuration file could not be parsed. Fix it or remove it to use defaults.\n")
		return err

	case errors.ErrCodeGitNotInstalled:
		fmt.Fprintf(os.Stderr, "✗ git executable not found. Install git to enable repository status.\n")
		return err

	default:
		fmt.Fprintf(os.Stderr, "✗ Error: %v\n", err)

		if h.Verbose {
			if termErr, ok := err.(*errors.TermError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", termErr.ToJSON())
			}
		}
		return err
	}
}
