package diff

import "encoding/json"

// Rendering edit scripts as JSON for a report needs to be much terser
// than the Go struct shape: by default an Equal node collapses to the
// bare string "Equal" (the left value is, after all, recoverable from the
// "before" document), and every other variant flattens to a single-key
// object naming the variant. WithFullEqual keeps the equal value inline
// too, useful for a standalone diff report that doesn't also carry the
// original document.

type marshalOptions struct {
	fullEqual bool
}

// MarshalOption configures MarshalEdit/MarshalOptionEdit/MarshalElement.
type MarshalOption func(*marshalOptions)

// WithFullEqual keeps the shared value inline on an Equal node instead of
// collapsing it to the bare "Equal" sentinel.
func WithFullEqual() MarshalOption {
	return func(o *marshalOptions) { o.fullEqual = true }
}

func resolveOptions(opts []MarshalOption) marshalOptions {
	var o marshalOptions
	for _, f := range opts {
		f(&o)
	}
	return o
}

// MarshalEdit renders an Edit via its MarshalJSON ("Equal", or the
// recursive payload inlined with no wrapper), except that WithFullEqual
// keeps the shared value inline on an Equal node instead — MarshalJSON
// itself can't take that option, so this top-level entry point handles
// it before delegating the rest of the tree to the method.
func MarshalEdit[T, R any](e Edit[T, R], opts ...MarshalOption) ([]byte, error) {
	o := resolveOptions(opts)
	if o.fullEqual && e.Equal {
		return json.Marshal(map[string]any{"Equal": e.EqualV})
	}
	return json.Marshal(e)
}

// MarshalOptionEdit renders an OptionEdit via its MarshalJSON, with the
// same WithFullEqual carve-out as MarshalEdit.
func MarshalOptionEdit[T, R any](e OptionEdit[T, R], opts ...MarshalOption) ([]byte, error) {
	o := resolveOptions(opts)
	if o.fullEqual && e.Kind == OptEqual {
		if e.BothNil {
			return json.Marshal(map[string]any{"Equal": nil})
		}
		return json.Marshal(map[string]any{"Equal": e.EqualV})
	}
	return json.Marshal(e)
}

// MarshalElement renders a sequence/map Element via its MarshalJSON, with
// the same WithFullEqual carve-out as MarshalEdit. The map-only Key field
// is omitted either way — callers that need it serialize the surrounding
// map explicitly keyed, rather than embedding Key per entry.
func MarshalElement[T, R any](e Element[T, R], opts ...MarshalOption) ([]byte, error) {
	o := resolveOptions(opts)
	if o.fullEqual && e.Kind == ElemEqual {
		return json.Marshal(map[string]any{"Equal": e.Value})
	}
	return json.Marshal(e)
}
