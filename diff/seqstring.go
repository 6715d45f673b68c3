package diff

import (
	lcs "github.com/yudai/golcs"
)

// stringSeq adapts []string to golcs's Sequence interface.
type stringSeq []string

func (s stringSeq) Length() int            { return len(s) }
func (s stringSeq) Get(i int) lcs.Value { return s[i] }

// DiffStringSeq diffs two string sequences (used for URI path segments)
// by computing their longest common subsequence with yudai/golcs and
// expanding the unmatched runs into Insert/Delete elements. As with the
// generic DiffSeq, an adjacent Delete immediately followed by an Insert
// is coalesced into a single Edit(Replace(...)): a path segment that
// changed in place (e.g. "/a/b/c" -> "/a/B/c") reports as one Edit
// surrounded by Equals, not a Delete/Insert splice.
func DiffStringSeq(a, b []string) Edit[[]string, []Element[string, Replace[string]]] {
	pairs, err := lcs.New(stringSeq(a), stringSeq(b)).IndexPairs()
	if err != nil {
		// golcs failed internally: fall back to a conservative full
		// replace rather than panicking or silently dropping data.
		return fullReplaceStringSeq(a, b)
	}

	var raw []Element[string, Replace[string]]
	ai, bi := 0, 0
	for _, p := range pairs {
		for ai < p.Left {
			raw = append(raw, deleteElem[string, Replace[string]](a[ai]))
			ai++
		}
		for bi < p.Right {
			raw = append(raw, insertElem[string, Replace[string]](b[bi]))
			bi++
		}
		raw = append(raw, equalElem[string, Replace[string]](a[ai]))
		ai++
		bi++
	}
	for ; ai < len(a); ai++ {
		raw = append(raw, deleteElem[string, Replace[string]](a[ai]))
	}
	for ; bi < len(b); bi++ {
		raw = append(raw, insertElem[string, Replace[string]](b[bi]))
	}

	elems := coalesceReplacements(raw, DiffPrimitive[string])

	if allEqual(elems) {
		return MakeEqual[[]string, []Element[string, Replace[string]]](a)
	}
	return MakeEdit[[]string, []Element[string, Replace[string]]](elems)
}

func fullReplaceStringSeq(a, b []string) Edit[[]string, []Element[string, Replace[string]]] {
	var raw []Element[string, Replace[string]]
	for _, v := range a {
		raw = append(raw, deleteElem[string, Replace[string]](v))
	}
	for _, v := range b {
		raw = append(raw, insertElem[string, Replace[string]](v))
	}
	elems := coalesceReplacements(raw, DiffPrimitive[string])
	if len(elems) == 0 {
		return MakeEqual[[]string, []Element[string, Replace[string]]](a)
	}
	return MakeEdit[[]string, []Element[string, Replace[string]]](elems)
}
