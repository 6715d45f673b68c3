// Package bucketizer groups failing responses into error buckets by
// n-gram Jaccard similarity of their response bodies, with primitive
// values (GUIDs, integers, doubles) generalized to generic tokens so
// that two otherwise-identical error bodies differing only in an
// embedded request id still land in the same bucket.
package bucketizer

import (
	"strings"

	"github.com/microsoft/restler-fuzzer-sub003/internal/textutil"
)

// RequestTrace is either parsed request data or, for an unparseable
// send, the raw text that was sent.
type RequestTrace struct {
	Parsed bool
	Method string
	Path   string
	Query  string
	Body   string
	Text   string
}

// ResponseTrace is either parsed response data or, for an unparseable
// receive, the raw text that was received.
type ResponseTrace struct {
	Parsed          bool
	Code            int
	CodeDescription string
	Content         string
	Text            string
}

// RequestExecutionSummary is the de-normalized record of one executed
// request/response pair used for bucketing and reporting.
type RequestExecutionSummary struct {
	Request  RequestTrace
	Response ResponseTrace
}

// buildPath joins path components with "/", dropping whitespace-only
// components, per spec.md's "path is constructed by dropping
// whitespace-only components then folding with /".
func buildPath(components []string) string {
	return strings.Join(textutil.DropBlank(components), "/")
}

// buildQuery renders a query mapping as "k=v&k=v..." in the given key
// order (callers pass the map's iteration via httpmodel.SortedQueryKeys
// or whatever order the URI's mapping preserves).
func buildQuery(keys []string, query map[string]string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+query[k])
	}
	return strings.Join(parts, "&")
}
