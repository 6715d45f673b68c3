package diff

import (
	"github.com/pmezard/go-difflib/difflib"
	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// RenderInlineDiff renders a character-level diff of two short strings
// (a header value, a status line) using sergi/go-diff, the same library
// the pack's pull-request tooling uses for comment-level diffs.
func RenderInlineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// RenderUnifiedDiff renders a git-style unified diff of two multi-line
// bodies using pmezard/go-difflib, for non-JSON request/response bodies
// where a line-oriented diff reads better than an inline one.
func RenderUnifiedDiff(a, b string) (string, error) {
	ud := difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "before",
		ToFile:   "after",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(ud)
}
