package testutil

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns a readable character diff between expected and actual, or
// the empty string if they are equal.
func Diff(expected, actual string) string {
	if expected == actual {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	return dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs))
}
