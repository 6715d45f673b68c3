package httpdiff

import (
	"github.com/microsoft/restler-fuzzer-sub003/diff"
	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
)

// HttpSeqEdit is the recursive payload for a changed HttpSeq: an ordered
// edit script over its RequestResponse pairs.
type HttpSeqEdit[B, R any] = []diff.Element[httpmodel.RequestResponse[B], PairEdit[B, R]]

// DiffHttpSeq diffs two test sequences pair-wise.
func DiffHttpSeq[B, R any](a, b httpmodel.HttpSeq[B], bodyDiffer BodyDiffer[B, R]) diff.Edit[httpmodel.HttpSeq[B], HttpSeqEdit[B, R]] {
	raw := diff.DiffSeq([]httpmodel.RequestResponse[B](a), []httpmodel.RequestResponse[B](b),
		func(x, y httpmodel.RequestResponse[B]) diff.Edit[httpmodel.RequestResponse[B], PairEdit[B, R]] {
			return DiffPair(x, y, bodyDiffer)
		})
	return diff.Recast(raw, func(s []httpmodel.RequestResponse[B]) httpmodel.HttpSeq[B] { return httpmodel.HttpSeq[B](s) })
}

// LogEdit is the recursive payload for a changed Log: an ordered edit
// script over its HttpSeqs.
type LogEdit[B, R any] = []diff.Element[httpmodel.HttpSeq[B], HttpSeqEdit[B, R]]

// DiffLog diffs two full logs: a sequence diff of HttpSeqs, per spec.
func DiffLog[B, R any](a, b httpmodel.Log[B], bodyDiffer BodyDiffer[B, R]) diff.Edit[httpmodel.Log[B], LogEdit[B, R]] {
	raw := diff.DiffSeq([]httpmodel.HttpSeq[B](a), []httpmodel.HttpSeq[B](b),
		func(x, y httpmodel.HttpSeq[B]) diff.Edit[httpmodel.HttpSeq[B], HttpSeqEdit[B, R]] {
			return DiffHttpSeq(x, y, bodyDiffer)
		})
	return diff.Recast(raw, func(s []httpmodel.HttpSeq[B]) httpmodel.Log[B] { return httpmodel.Log[B](s) })
}
