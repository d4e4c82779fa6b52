package ui

import (
	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff renders a line-level diff between the stored snapshot and
// the fresh result, in conventional unified notation.
func UnifiedDiff(snapshot, current string) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(snapshot),
		B:        difflib.SplitLines(current),
		FromFile: "snapshot",
		ToFile:   "current",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}
