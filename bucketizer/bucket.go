package bucketizer

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
	"github.com/microsoft/restler-fuzzer-sub003/internal/cache"
	"github.com/microsoft/restler-fuzzer-sub003/internal/logging"
)

// MaxBucketCountPerCode caps how many distinct buckets a single status
// code may accumulate in one pass; beyond it, new dissimilar summaries
// are dropped with a diagnostic rather than growing unbounded.
const MaxBucketCountPerCode = 100

// DistanceBound is the Jaccard similarity a summary must exceed (strictly)
// against a bucket's analyzed members to join that bucket.
const DistanceBound = 0.5

// MaxBucketSizeToAnalyze bounds how many of a bucket's earliest members
// (in insertion order) are compared against when scoring a candidate.
const MaxBucketSizeToAnalyze = 5

// Bucket is one cluster of RequestExecutionSummary values considered the
// same error. Items is in reverse arrival order: the most recently added
// summary is Items[0].
type Bucket struct {
	ID    uuid.UUID
	Items []RequestExecutionSummary
}

// CodeBuckets holds every bucket opened for one status code, in creation
// order (the order that matters for the "first bucket at max similarity"
// tie-break).
type CodeBuckets struct {
	Code    int
	Buckets []*Bucket
}

// Bucketize partitions log's well-formed responses by status code, then
// within each code clusters by n-gram Jaccard similarity of the response
// body. Malformed pairs (no response, or a response that never parsed)
// are ignored entirely, per spec. The n-gram cache is scoped to this call
// and discarded on return, per spec.md's lifecycle rule.
func Bucketize(log httpmodel.Log[string], logger *zap.Logger, sink httpmodel.DiagnosticSink) map[int]*CodeBuckets {
	return bucketize(log, newNgramCache(), logger, sink)
}

// BucketizeWithCache is Bucketize with an external Cache backend fronting
// the n-gram memoization, for a caller re-bucketizing the same corpus of
// response bodies across process runs (see internal/cache.Redis).
func BucketizeWithCache(log httpmodel.Log[string], backend cache.Cache, logger *zap.Logger, sink httpmodel.DiagnosticSink) map[int]*CodeBuckets {
	return bucketize(log, newNgramCacheWithBackend(backend), logger, sink)
}

func bucketize(log httpmodel.Log[string], ngCache *ngramCache, logger *zap.Logger, sink httpmodel.DiagnosticSink) map[int]*CodeBuckets {
	logger = logging.OrNop(logger)
	result := make(map[int]*CodeBuckets)

	for _, seq := range log {
		for _, rr := range seq {
			if rr.Response == nil {
				continue
			}
			resp := *rr.Response
			summary := buildSummary(rr.Request, resp)
			code := resp.StatusCode

			cb, ok := result[code]
			if !ok {
				cb = &CodeBuckets{Code: code}
				result[code] = cb
			}
			assign(cb, summary, resp.Body, ngCache, logger, sink)
		}
	}
	return result
}

func assign(cb *CodeBuckets, summary RequestExecutionSummary, body string, ngCache *ngramCache, logger *zap.Logger, sink httpmodel.DiagnosticSink) {
	if len(cb.Buckets) == 0 {
		cb.Buckets = append(cb.Buckets, &Bucket{ID: uuid.New(), Items: []RequestExecutionSummary{summary}})
		return
	}

	candidate := ngCache.get(body)
	bestIdx := -1
	bestScore := -1.0
	for i, b := range cb.Buckets {
		score := bucketSimilarity(b, candidate, ngCache)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestScore > DistanceBound {
		b := cb.Buckets[bestIdx]
		b.Items = append([]RequestExecutionSummary{summary}, b.Items...)
		return
	}
	if len(cb.Buckets) < MaxBucketCountPerCode {
		cb.Buckets = append(cb.Buckets, &Bucket{ID: uuid.New(), Items: []RequestExecutionSummary{summary}})
		return
	}

	logger.Error("bucketizer: bucket overflow, dropping summary", zap.Int("code", cb.Code), zap.Int("bucketCount", len(cb.Buckets)))
	httpmodel.Emit(sink, httpmodel.Diagnostic{Stage: "bucketizer", Message: "bucket overflow for code, summary dropped"})
}

// bucketSimilarity scores a candidate's n-gram set against the first
// MaxBucketSizeToAnalyze members of b (in insertion order, i.e. the tail
// of Items since Items is stored in reverse arrival order), taking the
// maximum.
func bucketSimilarity(b *Bucket, candidate map[string]struct{}, ngCache *ngramCache) float64 {
	members := oldestFirst(b.Items)
	if len(members) > MaxBucketSizeToAnalyze {
		members = members[:MaxBucketSizeToAnalyze]
	}
	best := 0.0
	for _, m := range members {
		score := jaccard(candidate, ngCache.get(m.Response.Content))
		if score > best {
			best = score
		}
	}
	return best
}

// oldestFirst reverses a reverse-arrival-order Items slice back to
// arrival order, without mutating the original.
func oldestFirst(items []RequestExecutionSummary) []RequestExecutionSummary {
	out := make([]RequestExecutionSummary, len(items))
	for i, v := range items {
		out[len(items)-1-i] = v
	}
	return out
}

func buildSummary(req httpmodel.Request[string], resp httpmodel.Response[string]) RequestExecutionSummary {
	keys := httpmodel.SortedQueryKeys(req.Uri)
	reqTrace := RequestTrace{
		Parsed: true,
		Method: req.Method,
		Path:   buildPath(req.Uri.Path),
		Query:  buildQuery(keys, req.Uri.QueryString),
		Body:   req.Body,
	}
	respTrace := ResponseTrace{
		Parsed:          true,
		Code:            resp.StatusCode,
		CodeDescription: resp.StatusDescription,
		Content:         resp.Body,
	}
	return RequestExecutionSummary{Request: reqTrace, Response: respTrace}
}
