package bucketizer

import (
	"testing"

	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
)

func seqOf(bodies ...string) httpmodel.HttpSeq[string] {
	var seq httpmodel.HttpSeq[string]
	for _, b := range bodies {
		resp := httpmodel.Response[string]{StatusCode: 500, Body: b}
		seq = append(seq, httpmodel.RequestResponse[string]{
			Request:  httpmodel.Request[string]{Method: "GET", Uri: httpmodel.Uri{Path: []string{"x"}}},
			Response: &resp,
		})
	}
	return seq
}

// TestBucketize_S3 reproduces the shape of spec.md's scenario S3: two
// responses differing in one token out of nine should land in the same
// bucket (most recent first), a third sharing no vocabulary with either
// opens a second bucket. (spec.md's own S3 example bodies use
// single-character words, which the length<=1 token-drop rule discards
// entirely before n-gramming — multi-character words are used here so
// the scenario actually exercises bucket assignment rather than
// degenerating to empty n-gram sets on both sides.)
func TestBucketize_S3(t *testing.T) {
	// Arrange
	r1 := "aa bb cc dd ee ff gg hh ii"
	r2 := "aa bb cc dd ee ff gg hh zz"
	r3 := "mm nn oo pp qq rr ss tt uu"
	log := httpmodel.Log[string]{seqOf(r1, r2, r3)}

	// Act
	result := Bucketize(log, nil, nil)

	// Assert
	cb, ok := result[500]
	if !ok {
		t.Fatal("no CodeBuckets for code 500")
	}
	if len(cb.Buckets) != 2 {
		t.Fatalf("len(Buckets) = %d, want 2", len(cb.Buckets))
	}
	first := cb.Buckets[0]
	if len(first.Items) != 2 {
		t.Fatalf("len(first.Items) = %d, want 2", len(first.Items))
	}
	if first.Items[0].Response.Content != r2 || first.Items[1].Response.Content != r1 {
		t.Errorf("first bucket order = [%q %q], want [%q %q] (reverse insertion)",
			first.Items[0].Response.Content, first.Items[1].Response.Content, r2, r1)
	}
	second := cb.Buckets[1]
	if len(second.Items) != 1 || second.Items[0].Response.Content != r3 {
		t.Errorf("second bucket = %+v, want single item %q", second.Items, r3)
	}
}

func TestBucketize_IgnoresPairsWithNoResponse(t *testing.T) {
	// Arrange
	log := httpmodel.Log[string]{{
		{Request: httpmodel.Request[string]{Method: "GET"}, Response: nil},
	}}

	// Act
	result := Bucketize(log, nil, nil)

	// Assert
	if len(result) != 0 {
		t.Errorf("result = %v, want empty (no well-formed responses)", result)
	}
}

func TestBucketize_SumOfBucketSizesEqualsResponseCount(t *testing.T) {
	// Arrange
	log := httpmodel.Log[string]{seqOf("alpha beta gamma delta epsilon", "totally unrelated content here now", "zeta eta theta iota kappa")}

	// Act
	result := Bucketize(log, nil, nil)

	// Assert
	cb := result[500]
	total := 0
	for _, b := range cb.Buckets {
		total += len(b.Items)
	}
	if total != 3 {
		t.Errorf("total bucketed = %d, want 3", total)
	}
}

func TestBucketize_Overflow(t *testing.T) {
	// Arrange: MaxBucketCountPerCode distinct, mutually dissimilar bodies,
	// then one more past the cap.
	bodies := make([]string, 0, MaxBucketCountPerCode+1)
	words := []string{"able", "baker", "charlie", "delta", "echo", "foxtrot"}
	for i := 0; i < MaxBucketCountPerCode+1; i++ {
		bodies = append(bodies, uniqueBody(i, words))
	}
	log := httpmodel.Log[string]{seqOf(bodies...)}

	// Act
	result := Bucketize(log, nil, nil)

	// Assert
	cb := result[500]
	if len(cb.Buckets) > MaxBucketCountPerCode {
		t.Errorf("len(Buckets) = %d, want <= %d", len(cb.Buckets), MaxBucketCountPerCode)
	}
}

func uniqueBody(i int, words []string) string {
	// Build a body whose n-grams share nothing with any other index's.
	// The suffix must be alphabetic, not numeric — a numeric suffix would
	// generalize to the same "uint64" token for every index, making all
	// bodies collapse to one indistinguishable token stream.
	suffix := alpha(i)
	out := ""
	for _, w := range words {
		out += w + suffix + " "
	}
	return out
}

// alpha renders i in base-26 using letters, so distinct indices never
// collide after primitive-value generalization.
func alpha(i int) string {
	if i == 0 {
		return "qa"
	}
	out := ""
	for i > 0 {
		out = string(rune('a'+i%26)) + out
		i /= 26
	}
	return "q" + out
}
