// Package diff implements the generic edit-script algebra: a tagged
// Equal/Edit shape for single values, specialized shapes for optional and
// sequence/map elements that add Insert/Delete, and the mandatory
// "equal-collapse" rule — a composite edit whose children are all Equal
// must itself be reported as Equal, carrying the left input, never as an
// Edit wrapping an all-equal child script.
package diff

import "encoding/json"

// Edit is the base shape: either the two inputs were Equal (carrying the
// shared value), or they differ and the recursive payload R describes
// how.
type Edit[T any, R any] struct {
	Equal     bool
	EqualV    T
	Recursive R
}

// MakeEqual builds an Equal edit carrying v.
func MakeEqual[T, R any](v T) Edit[T, R] {
	return Edit[T, R]{Equal: true, EqualV: v}
}

// MakeEdit builds a non-equal edit carrying the recursive payload r.
func MakeEdit[T, R any](r R) Edit[T, R] {
	return Edit[T, R]{Equal: false, Recursive: r}
}

// IsEqual reports whether e is the Equal variant.
func (e Edit[T, R]) IsEqual() bool { return e.Equal }

// MarshalJSON renders e as the bare string "Equal" for the Equal variant,
// or the recursive payload inlined directly (no "Edit" wrapper) for the
// changed variant — callers needing the shared value kept inline on an
// Equal node use MarshalEdit(e, WithFullEqual()) instead, which this
// method does not support since json.Marshal cannot pass it options.
// Because R is itself frequently an Edit, Element, or OptionEdit (or a
// struct/slice of them), encoding/json calls this method recursively for
// every nested node, so a whole log-edit-script tree renders in the
// terse form without any caller having to walk it by hand.
func (e Edit[T, R]) MarshalJSON() ([]byte, error) {
	if e.Equal {
		return json.Marshal("Equal")
	}
	return json.Marshal(e.Recursive)
}

// Replace is the default leaf recursive edit: the before/after values of a
// primitive that changed.
type Replace[T any] struct {
	Before T
	After  T
}

// DiffPrimitive is the leaf differ for comparable values: Equal if a==b,
// else Edit(Replace(a,b)).
func DiffPrimitive[T comparable](a, b T) Edit[T, Replace[T]] {
	if a == b {
		return MakeEqual[T, Replace[T]](a)
	}
	return MakeEdit[T, Replace[T]](Replace[T]{Before: a, After: b})
}

// Recast changes an Edit's Equal-value type from T to U via convert,
// without disturbing which variant it is. Go's generic types require
// exact type-parameter identity, so a defined type built over a slice
// (e.g. httpmodel.HttpSeq, whose core type is []RequestResponse) can't be
// substituted for its core slice type in an already-instantiated Edit
// without an explicit rebuild; this is that rebuild.
func Recast[T, U, R any](e Edit[T, R], convert func(T) U) Edit[U, R] {
	if e.Equal {
		return MakeEqual[U, R](convert(e.EqualV))
	}
	return MakeEdit[U, R](e.Recursive)
}
