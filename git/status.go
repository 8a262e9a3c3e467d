package git

// RepoStatus contains the aggregated repository state for one prompt render.
// It is rebuilt from scratch on every render and never cached.
type RepoStatus struct {
	// Branch is the current branch name
	Branch string `json:"branch"`

	// Staged is the number of files with index changes (added/modified/renamed/copied)
	Staged int `json:"staged"`

	// Changed is the number of files modified in the working tree only
	Changed int `json:"changed"`

	// Deleted is the number of files deleted in either the index or the working tree
	Deleted int `json:"deleted"`

	// Untracked is the number of files not known to the index
	Untracked int `json:"untracked"`

	// Stashed is the number of stash entries
	Stashed int `json:"stashed"`

	// Clean is true iff the four file counters are all zero
	Clean bool `json:"clean"`

	// Ahead is the number of commits reachable only locally
	Ahead int `json:"ahead"`

	// Behind is the number of commits reachable only on the upstream
	Behind int `json:"behind"`

	// HasUpstream indicates if the branch has an upstream tracking branch
	HasUpstream bool `json:"has_upstream"`
}

// classify assigns a porcelain status entry to exactly one counter.
// Precedence: untracked > deleted (either column) > staged > changed.
// A file that is staged and further modified in the working tree therefore
// counts once, as staged. Entries that match none of the recognized codes
// (e.g. unmerged conflicts) fall through to the changed bucket so that the
// counters always sum to the number of entries.
func (s *RepoStatus) classify(index, worktree byte) {
	switch {
	case index == '?' && worktree == '?':
		s.Untracked++
	case index == 'D' || worktree == 'D':
		s.Deleted++
	case index == 'A' || index == 'M' || index == 'R' || index == 'C':
		s.Staged++
	default:
		s.Changed++
	}
}
