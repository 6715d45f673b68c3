package diff

import (
	"encoding/json"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// JSONBodyEdit is the recursive payload for a changed JSON body: the
// modification is kept as gojsondiff's own delta tree (Deltas), plus an
// ASCII-rendered rendering a human can read straight out of a report.
type JSONBodyEdit struct {
	Deltas   []gojsondiff.Delta
	Rendered string
}

// DiffJSONBody compares two request/response bodies as JSON documents.
// It is meant to be passed as the body differ to httpdiff when both
// sides' Content-Type is application/json; callers with a non-JSON body
// should fall back to DiffPrimitive on the raw string instead. A body
// that fails to parse as JSON on either side is reported as Edit with an
// empty delta list and the parse error's text in Rendered, rather than
// failing the whole comparison.
func DiffJSONBody(a, b string) Edit[string, JSONBodyEdit] {
	var left, right map[string]interface{}
	if err := json.Unmarshal([]byte(a), &left); err != nil {
		return MakeEdit[string, JSONBodyEdit](JSONBodyEdit{Rendered: "left body is not valid JSON: " + err.Error()})
	}
	if err := json.Unmarshal([]byte(b), &right); err != nil {
		return MakeEdit[string, JSONBodyEdit](JSONBodyEdit{Rendered: "right body is not valid JSON: " + err.Error()})
	}

	differ := gojsondiff.New()
	d := differ.CompareObjects(left, right)
	if !d.Modified() {
		return MakeEqual[string, JSONBodyEdit](a)
	}

	f := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{ShowArrayIndex: true})
	rendered, err := f.Format(d)
	if err != nil {
		rendered = "(unable to render diff: " + err.Error() + ")"
	}
	return MakeEdit[string, JSONBodyEdit](JSONBodyEdit{Deltas: d.Deltas(), Rendered: rendered})
}
