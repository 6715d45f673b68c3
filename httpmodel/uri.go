// Package httpmodel holds the value types for the results-analysis core:
// URIs, headers, requests, responses, pairs, sequences, and logs. Every
// type here is immutable after construction; nothing in this package talks
// to a network or a file.
package httpmodel

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Uri is an ordered path with an unordered query mapping, exactly as
// described in the data model: components split on "/", duplicates in the
// query string collapse to the last value.
type Uri struct {
	Path        []string
	QueryString map[string]string
}

// ParseURI splits s on "?". More than one "?" is malformed.
func ParseURI(s string) (Uri, error) {
	parts := strings.Split(s, "?")
	switch len(parts) {
	case 1:
		return Uri{Path: splitPath(parts[0]), QueryString: map[string]string{}}, nil
	case 2:
		q, err := decodeQuery(parts[1])
		if err != nil {
			return Uri{}, fmt.Errorf("httpmodel: parse uri %q: %w", s, err)
		}
		return Uri{Path: splitPath(parts[0]), QueryString: q}, nil
	default:
		return Uri{}, fmt.Errorf("httpmodel: parse uri %q: more than one '?'", s)
	}
}

func splitPath(s string) []string {
	return strings.Split(s, "/")
}

// decodeQuery parses "a=1&b=2" into a mapping, last value wins per
// standard query-string semantics.
func decodeQuery(raw string) (map[string]string, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(values))
	for k, vs := range values {
		if len(vs) == 0 {
			continue
		}
		out[k] = vs[len(vs)-1]
	}
	return out, nil
}

// String renders the Uri: path components joined by "/", then "?" iff the
// query is non-empty, then "name=value" pairs joined by "&" in sorted
// key order (via SortedQueryKeys), so the rendering is deterministic.
func (u Uri) String() string {
	var b strings.Builder
	b.WriteString(strings.Join(u.Path, "/"))
	if len(u.QueryString) == 0 {
		return b.String()
	}
	b.WriteByte('?')
	first := true
	for _, k := range SortedQueryKeys(u) {
		if !first {
			b.WriteByte('&')
		}
		first = false
		fmt.Fprintf(&b, "%s=%s", k, u.QueryString[k])
	}
	return b.String()
}

// SortedQueryKeys returns the query's keys sorted, for deterministic
// rendering and serialization.
func SortedQueryKeys(u Uri) []string {
	keys := make([]string, 0, len(u.QueryString))
	for k := range u.QueryString {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
