package prompt

import (
	"strconv"
	"time"

	"github.com/FocusTorn/outerm/git"
	"github.com/FocusTorn/outerm/workspace"
)

// Status glyphs, one per change category.
const (
	glyphDeleted   = "✖"
	glyphStaged    = "●"
	glyphChanged   = "✚"
	glyphUntracked = "…"
	glyphStash     = "⚑"
	glyphClean     = "✔"
	glyphBehind    = "↓"
	glyphAhead     = "↑"
)

// rootMarker replaces the bracketed path when the session sits at the
// filesystem root outside any recognized workspace.
const rootMarker = "⟨/⟩"

// FormatStatus converts an aggregated status into the ordered segment
// sequence for the right-aligned block. Count segments appear only when
// nonzero, in the order deleted, staged, changed, untracked, stashed; the
// clean glyph appears iff the repository is clean; the branch closes the
// status block, followed by the optional behind and ahead indicators. A nil
// status yields no segments at all.
func FormatStatus(status *git.RepoStatus) []Segment {
	if status == nil {
		return nil
	}

	var segments []Segment
	count := func(n int, glyph string, category Category) {
		if n > 0 {
			segments = append(segments, Segment{Text: glyph + strconv.Itoa(n), Category: category})
		}
	}

	count(status.Deleted, glyphDeleted, CategoryGitDeleted)
	count(status.Staged, glyphStaged, CategoryGitStaged)
	count(status.Changed, glyphChanged, CategoryGitChanged)
	count(status.Untracked, glyphUntracked, CategoryGitUntracked)
	count(status.Stashed, glyphStash, CategoryGitStash)

	if status.Clean {
		segments = append(segments, Segment{Text: glyphClean, Category: CategoryGitClean})
	}

	segments = append(segments, Segment{Text: status.Branch, Category: CategoryGitBranch})

	count(status.Behind, glyphBehind, CategoryGitBranch)
	count(status.Ahead, glyphAhead, CategoryGitBranch)

	return segments
}

// BuildLeft assembles the left-hand segments: 24-hour timestamp, the active
// environment name when present, and the bracketed display path.
func BuildLeft(now time.Time, venv, displayPath string, loc workspace.Location) []Segment {
	segments := []Segment{{Text: now.Format("15:04:05"), Category: CategoryTime}}

	if venv != "" {
		segments = append(segments, Segment{Text: "(" + venv + ")", Category: CategoryVenv})
	}

	if loc == workspace.LocationOther && displayPath == "/" {
		segments = append(segments, Segment{Text: rootMarker, Category: CategoryDir})
	} else {
		segments = append(segments, Segment{Text: "[" + displayPath + "]", Category: CategoryDir})
	}

	return segments
}
