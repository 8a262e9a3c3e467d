package shell

import "fmt"

// Bash hooks the renderer into bash via PROMPT_COMMAND.
type Bash struct{}

// Name implements Adapter.
func (Bash) Name() string { return "bash" }

// InitScript implements Adapter. The block prints above an emptied PS1, so
// the glyph line acts as the input marker.
func (Bash) InitScript(execPath string) string {
	return fmt.Sprintf(`# outerm prompt hook for bash. Add to ~/.bashrc:
#   eval "$(outerm init bash)"
__outerm_prompt() {
    %q prompt --shell=bash
}
case ";${PROMPT_COMMAND};" in
    *";__outerm_prompt;"*) ;;
    *) PROMPT_COMMAND="__outerm_prompt${PROMPT_COMMAND:+;${PROMPT_COMMAND}}" ;;
esac
PS1=""
`, execPath)
}
