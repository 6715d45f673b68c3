package httpdiff

import (
	"github.com/microsoft/restler-fuzzer-sub003/diff"
	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
)

// BodyDiffer compares two request/response bodies, returning the diff
// algebra's standard Edit shape. Callers pick diff.DiffPrimitive[string]
// for raw-text bodies or diff.DiffJSONBody for JSON ones.
type BodyDiffer[B any, R any] func(B, B) diff.Edit[B, R]

// RequestEdit is the recursive payload for a changed Request: one Edit
// per field, per spec.md's "diff each of version, method, uri, headers,
// body".
type RequestEdit[B, R any] struct {
	Version diff.Edit[string, diff.Replace[string]]
	Method  diff.Edit[string, diff.Replace[string]]
	Uri     diff.Edit[httpmodel.Uri, UriEdit]
	Headers stringMapEdit
	Body    diff.Edit[B, R]
}

// DiffRequest diffs two requests field-wise, applying the equal-collapse
// rule across all five fields.
func DiffRequest[B, R any](a, b httpmodel.Request[B], bodyDiffer BodyDiffer[B, R]) diff.Edit[httpmodel.Request[B], RequestEdit[B, R]] {
	e := RequestEdit[B, R]{
		Version: diff.DiffPrimitive(a.Version, b.Version),
		Method:  diff.DiffPrimitive(a.Method, b.Method),
		Uri:     DiffUri(a.Uri, b.Uri),
		Headers: DiffHeaders(a.Headers, b.Headers),
		Body:    bodyDiffer(a.Body, b.Body),
	}
	if e.Version.IsEqual() && e.Method.IsEqual() && e.Uri.IsEqual() && e.Headers.IsEqual() && e.Body.IsEqual() {
		return diff.MakeEqual[httpmodel.Request[B], RequestEdit[B, R]](a)
	}
	return diff.MakeEdit[httpmodel.Request[B], RequestEdit[B, R]](e)
}

// ResponseEdit is the recursive payload for a changed Response: Version,
// Headers and Body as in RequestEdit (a Response has no Method or Uri),
// plus StatusCode and StatusDescription.
type ResponseEdit[B, R any] struct {
	Version           diff.Edit[string, diff.Replace[string]]
	StatusCode        diff.Edit[int, diff.Replace[int]]
	StatusDescription diff.Edit[string, diff.Replace[string]]
	Headers           stringMapEdit
	Body              diff.Edit[B, R]
}

// DiffResponse diffs two responses field-wise.
func DiffResponse[B, R any](a, b httpmodel.Response[B], bodyDiffer BodyDiffer[B, R]) diff.Edit[httpmodel.Response[B], ResponseEdit[B, R]] {
	e := ResponseEdit[B, R]{
		Version:           diff.DiffPrimitive(a.Version, b.Version),
		StatusCode:        diff.DiffPrimitive(a.StatusCode, b.StatusCode),
		StatusDescription: diff.DiffPrimitive(a.StatusDescription, b.StatusDescription),
		Headers:           DiffHeaders(a.Headers, b.Headers),
		Body:              bodyDiffer(a.Body, b.Body),
	}
	if e.Version.IsEqual() && e.StatusCode.IsEqual() && e.StatusDescription.IsEqual() && e.Headers.IsEqual() && e.Body.IsEqual() {
		return diff.MakeEqual[httpmodel.Response[B], ResponseEdit[B, R]](a)
	}
	return diff.MakeEdit[httpmodel.Response[B], ResponseEdit[B, R]](e)
}

// PairEdit is the recursive payload for a changed RequestResponse: the
// request's diff plus an option diff over the (possibly absent)
// response.
type PairEdit[B, R any] struct {
	Request  diff.Edit[httpmodel.Request[B], RequestEdit[B, R]]
	Response diff.OptionEdit[httpmodel.Response[B], diff.Edit[httpmodel.Response[B], ResponseEdit[B, R]]]
}

// DiffPair diffs two RequestResponse pairs: request diff + option diff of
// response, per spec.
func DiffPair[B, R any](a, b httpmodel.RequestResponse[B], bodyDiffer BodyDiffer[B, R]) diff.Edit[httpmodel.RequestResponse[B], PairEdit[B, R]] {
	reqEdit := DiffRequest(a.Request, b.Request, bodyDiffer)
	respEdit := diff.DiffOption(a.Response, b.Response, func(x, y httpmodel.Response[B]) diff.Edit[httpmodel.Response[B], ResponseEdit[B, R]] {
		return DiffResponse(x, y, bodyDiffer)
	})
	if reqEdit.IsEqual() && respEdit.Kind == diff.OptEqual {
		return diff.MakeEqual[httpmodel.RequestResponse[B], PairEdit[B, R]](a)
	}
	return diff.MakeEdit[httpmodel.RequestResponse[B], PairEdit[B, R]](PairEdit[B, R]{Request: reqEdit, Response: respEdit})
}
