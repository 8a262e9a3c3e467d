package prompt

// Category names the semantic role of a segment. Renderers map categories to
// concrete colors independently, so hosts never deal in literal codes.
type Category string

const (
	CategoryTime         Category = "time"
	CategoryDir          Category = "dir"
	CategoryVenv         Category = "venv"
	CategoryGitStaged    Category = "git-staged"
	CategoryGitChanged   Category = "git-changed"
	CategoryGitDeleted   Category = "git-deleted"
	CategoryGitUntracked Category = "git-untracked"
	CategoryGitStash     Category = "git-stash"
	CategoryGitClean     Category = "git-clean"
	CategoryGitBranch    Category = "git-branch"
	CategoryPromptGlyph  Category = "prompt-glyph"
)

// Segment is one colorizable unit of prompt text.
type Segment struct {
	Text     string
	Category Category
}
