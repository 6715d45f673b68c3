package diff

import "sort"

// DiffMap compares two maps key-wise: a key present in both with equal
// values is Equal, present only in a is Delete, present only in b is
// Insert, present in both with differing values is Edit. Keys are walked
// in sorted order so the resulting element list is deterministic.
//
// The equal-collapse rule applies at the top: an all-Equal result
// collapses to Equal(a).
func DiffMap[K comparable, V any, R any](a, b map[K]V, valueDiffer func(V, V) Edit[V, R], less func(x, y K) bool) Edit[map[K]V, []Element[V, R]] {
	keys := unionKeys(a, b, less)

	var elems []Element[V, R]
	for _, k := range keys {
		av, aok := a[k]
		bv, bok := b[k]
		var e Element[V, R]
		switch {
		case aok && bok:
			d := valueDiffer(av, bv)
			if d.IsEqual() {
				e = equalElem[V, R](av)
			} else {
				e = editElem[V, R](d.Recursive)
			}
		case aok && !bok:
			e = deleteElem[V, R](av)
		case !aok && bok:
			e = insertElem[V, R](bv)
		}
		e.Key = k
		elems = append(elems, e)
	}

	if allEqual(elems) {
		return MakeEqual[map[K]V, []Element[V, R]](a)
	}
	return MakeEdit[map[K]V, []Element[V, R]](elems)
}

func unionKeys[K comparable, V any](a, b map[K]V, less func(x, y K) bool) []K {
	seen := make(map[K]struct{}, len(a)+len(b))
	keys := make([]K, 0, len(a)+len(b))
	for k := range a {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	for k := range b {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}

// StringLess is the common less func for DiffMap over string keys
// (header names, query parameter names).
func StringLess(x, y string) bool { return x < y }
