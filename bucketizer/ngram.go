package bucketizer

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/microsoft/restler-fuzzer-sub003/internal/cache"
)

// NgramSize is the sliding-window width n-grams are extracted at.
const NgramSize = 5

// delimiters is the exact set of word-boundary characters spec.md fixes:
// whitespace, path/slug punctuation, and backslash. "-" is one of them,
// which would otherwise shred a dash-formatted GUID into its hex groups
// before generalize ever sees the whole token — guidPattern below carves
// those out first so primitive generalization still applies to them.
const delimiters = " /:\",-';.<>!\r\n\\"

// guidPattern matches the canonical 8-4-4-4-12 hex-with-dashes GUID
// layout. tokenize replaces matches with the literal word "guid" before
// splitting on delimiters, since splitting first would break each match
// into five separate hex fragments at the "-" delimiter and a GUID would
// never fold to the "guid" generalized token scenario S1 requires.
var guidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// tokenize splits body on delimiters, generalizes primitive-looking
// words to generic tokens, and drops tokens of length <= 1. Words are
// tried as GUID, then signed int64, then unsigned int64, then double, in
// that order, so "-1" generalizes to int64 rather than uint64 or double.
func tokenize(body string) []string {
	body = norm.NFC.String(body)
	body = guidPattern.ReplaceAllString(body, " guid ")
	words := strings.FieldsFunc(body, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})

	tokens := make([]string, 0, len(words))
	for _, w := range words {
		w = generalize(w)
		if len(strings.TrimSpace(w)) <= 1 {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

func generalize(w string) string {
	if _, err := uuid.Parse(w); err == nil {
		return "guid"
	}
	if _, err := strconv.ParseInt(w, 10, 64); err == nil {
		return "int64"
	}
	if _, err := strconv.ParseUint(w, 10, 64); err == nil {
		return "uint64"
	}
	if _, err := strconv.ParseFloat(w, 64); err == nil {
		return "double"
	}
	return w
}

// ngrams slides a length-NgramSize window across tokens and returns the
// set of distinct comma-joined n-grams. Fewer than NgramSize tokens
// yields a single n-gram over all of them (a short body is still
// comparable, just coarsely).
func ngrams(tokens []string) map[string]struct{} {
	set := make(map[string]struct{})
	if len(tokens) == 0 {
		return set
	}
	if len(tokens) < NgramSize {
		set[strings.Join(tokens, ",")] = struct{}{}
		return set
	}
	for i := 0; i+NgramSize <= len(tokens); i++ {
		set[strings.Join(tokens[i:i+NgramSize], ",")] = struct{}{}
	}
	return set
}

// jaccard computes |A ∩ B| / |A ∪ B|, treating an empty union as
// similarity 0 rather than undefined.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for k := range a {
		if _, ok := b[k]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// ngramCache memoizes a body's n-gram set across one bucketization pass,
// keyed by the raw body string, per spec.md's memoization requirement.
// An optional backend (internal/cache.Cache) lets the memoization outlive
// one pass, serializing each set as a sorted, newline-joined list of
// n-grams (each n-gram itself comma-joined).
type ngramCache struct {
	m       map[string]map[string]struct{}
	backend cache.Cache
}

func newNgramCache() *ngramCache {
	return &ngramCache{m: make(map[string]map[string]struct{})}
}

// newNgramCacheWithBackend wires an external Cache backend in front of
// the in-process map, for callers re-bucketizing the same corpus of
// response bodies across process runs.
func newNgramCacheWithBackend(backend cache.Cache) *ngramCache {
	return &ngramCache{m: make(map[string]map[string]struct{}), backend: backend}
}

func (c *ngramCache) get(body string) map[string]struct{} {
	if set, ok := c.m[body]; ok {
		return set
	}
	if c.backend != nil {
		if encoded, ok, err := c.backend.Get(body); err == nil && ok {
			set := decodeNgramSet(encoded)
			c.m[body] = set
			return set
		}
	}
	set := ngrams(tokenize(body))
	c.m[body] = set
	if c.backend != nil {
		_ = c.backend.Set(body, encodeNgramSet(set))
	}
	return set
}

func encodeNgramSet(set map[string]struct{}) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\n")
}

func decodeNgramSet(encoded string) map[string]struct{} {
	set := make(map[string]struct{})
	if encoded == "" {
		return set
	}
	for _, k := range strings.Split(encoded, "\n") {
		set[k] = struct{}{}
	}
	return set
}
