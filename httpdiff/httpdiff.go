// Package httpdiff composes the generic edit-script algebra in diff
// over the HTTP value model: URIs, headers, requests, responses, pairs,
// and whole logs. Every level applies the equal-collapse rule, so a log
// that matches closely serializes to a small diff instead of an
// all-fields-repeated one.
package httpdiff

import (
	"github.com/microsoft/restler-fuzzer-sub003/diff"
	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
)

type stringSeqEdit = diff.Edit[[]string, []diff.Element[string, diff.Replace[string]]]
type stringMapEdit = diff.Edit[map[string]string, []diff.Element[string, diff.Replace[string]]]

// UriEdit is the recursive payload for a changed Uri: the path diffed as
// a string sequence, the query string diffed as a string map.
type UriEdit struct {
	Path  stringSeqEdit
	Query stringMapEdit
}

// DiffUri diffs two Uris per spec: path via sequence diff, query via map
// diff, both over strings.
func DiffUri(a, b httpmodel.Uri) diff.Edit[httpmodel.Uri, UriEdit] {
	pathEdit := diff.DiffStringSeq(a.Path, b.Path)
	queryEdit := diff.DiffMap(a.QueryString, b.QueryString, diff.DiffPrimitive[string], diff.StringLess)
	if pathEdit.IsEqual() && queryEdit.IsEqual() {
		return diff.MakeEqual[httpmodel.Uri, UriEdit](a)
	}
	return diff.MakeEdit[httpmodel.Uri, UriEdit](UriEdit{Path: pathEdit, Query: queryEdit})
}

// DiffHeaders diffs two header maps as a string map.
func DiffHeaders(a, b httpmodel.Headers) stringMapEdit {
	return diff.DiffMap(map[string]string(a), map[string]string(b), diff.DiffPrimitive[string], diff.StringLess)
}
