package shell

import "fmt"

// Zsh hooks the renderer into zsh via a precmd hook.
type Zsh struct{}

// Name implements Adapter.
func (Zsh) Name() string { return "zsh" }

// InitScript implements Adapter. The block prints above an emptied PROMPT,
// so the glyph line acts as the input marker.
func (Zsh) InitScript(execPath string) string {
	return fmt.Sprintf(`# outerm prompt hook for zsh. Add to ~/.zshrc:
#   eval "$(outerm init zsh)"
__outerm_prompt() {
    %q prompt --shell=zsh
}
autoload -Uz add-zsh-hook
add-zsh-hook precmd __outerm_prompt
PROMPT=""
`, execPath)
}
