// Package libdiff computes textual diffs of encoded documents.
package libdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Strings diffs two encoded documents, cleaned up for readability.
func Strings(from, to string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, true)
	return diffCfg.DiffCleanupSemantic(diffs)
}

// Pretty renders diffs with ANSI color (insertions green, deletions red).
func Pretty(diffs []diffpatch.Diff) string {
	return diffpatch.New().DiffPrettyText(diffs)
}

// Equal reports whether the diffs contain no insertions or deletions.
func Equal(diffs []diffpatch.Diff) bool {
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return false
		}
	}
	return true
}
