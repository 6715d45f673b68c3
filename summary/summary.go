// Package summary reduces a bucketized run into the aggregate counts a
// report renders: per-code totals, failure/bug counts, and per-bucket
// sizes.
package summary

import (
	"fmt"

	"github.com/microsoft/restler-fuzzer-sub003/bucketizer"
	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
)

// bugStatusCode is the single status code spec.md designates a "bug": a
// server-side failure distinct from a client failure or a success.
const bugStatusCode = 500

// ErrorBucketKey identifies one bucket within the run: its status code
// and the bucket's generated id, rendered as a stable string so it can
// key a plain Go map.
type ErrorBucketKey struct {
	Code     int
	BucketID string
}

func (k ErrorBucketKey) String() string {
	return fmt.Sprintf("%d/%s", k.Code, k.BucketID)
}

// RunSummary is the final reduction of one bucketization pass.
type RunSummary struct {
	FailedRequestsCount int
	BugCount            int
	CodeCounts          map[int]int
	ErrorBuckets        map[ErrorBucketKey]int
}

// Summarize computes a RunSummary from the result of bucketizer.Bucketize.
func Summarize(buckets map[int]*bucketizer.CodeBuckets) RunSummary {
	rs := RunSummary{
		CodeCounts:   make(map[int]int),
		ErrorBuckets: make(map[ErrorBucketKey]int),
	}
	for code, cb := range buckets {
		total := 0
		for _, b := range cb.Buckets {
			total += len(b.Items)
			rs.ErrorBuckets[ErrorBucketKey{Code: code, BucketID: b.ID.String()}] = len(b.Items)
		}
		rs.CodeCounts[code] = total
		if httpmodel.IsFailure(code) {
			rs.FailedRequestsCount += total
		}
		if code == bugStatusCode {
			rs.BugCount += total
		}
	}
	return rs
}
