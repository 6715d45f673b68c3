// Package pairing splits a LogLine stream into per-sequence groups at
// each sequence boundary and, within a group, pairs each send with the
// receive that immediately follows it.
package pairing

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
	"github.com/microsoft/restler-fuzzer-sub003/internal/logging"
	"github.com/microsoft/restler-fuzzer-sub003/logparser"
)

// ErrMalformedTranscript is returned when a Received line has no pending
// Sending before it in its sequence (it follows another Received line, or
// opens the sequence): the transcript violates the
// send/receive protocol and further analysis is meaningless.
var ErrMalformedTranscript = errors.New("pairing: malformed transcript")

// LineSource yields LogLine tokens one at a time, matching the shape of
// *logparser.LineReader so pairing can consume it without importing the
// scanner's concrete type.
type LineSource interface {
	Next() (logparser.LogLine, bool, error)
}

// Pair consumes src to end of input and returns the fully paired,
// sequence-grouped log. It is not lazy beyond the line source itself:
// each HttpSeq is built in memory, but the overall log is never
// re-materialized as a flat token slice (see SPEC_FULL.md §4.2 on
// splitter laziness).
func Pair(src LineSource, logger *zap.Logger) (httpmodel.Log[string], error) {
	logger = logging.OrNop(logger)
	var log httpmodel.Log[string]
	var current httpmodel.HttpSeq[string]
	isFirstGroup := true // the leading subsequence before the first boundary is dropped iff empty
	lineNo := 0

	var pending *httpmodel.Request[string] // a Sending with no Received yet

	flushPending := func() {
		if pending != nil {
			current = append(current, httpmodel.RequestResponse[string]{Request: *pending})
			pending = nil
		}
	}
	// closeGroup ends the current subsequence, dropping it only if it is
	// both the very first group and empty (the splitter's leading
	// placeholder before any boundary has been seen).
	closeGroup := func() {
		if !(isFirstGroup && len(current) == 0) {
			log = append(log, current)
		}
		isFirstGroup = false
		current = httpmodel.HttpSeq[string]{}
	}

	for {
		line, ok, err := src.Next()
		if err != nil {
			return nil, fmt.Errorf("pairing: %w", err)
		}
		if !ok {
			break
		}
		lineNo++

		switch line.Kind {
		case logparser.KindSequenceBeginning:
			flushPending()
			closeGroup()

		case logparser.KindSending:
			flushPending()
			req := line.Request
			pending = &req

		case logparser.KindReceived:
			if pending == nil {
				logger.Error("pairing: received with no prior send", zap.Int("line", lineNo))
				return nil, fmt.Errorf("%w: line %d: received with no prior send", ErrMalformedTranscript, lineNo)
			}
			resp := line.Response
			current = append(current, httpmodel.RequestResponse[string]{Request: *pending, Response: &resp})
			pending = nil
		}
	}

	flushPending()
	closeGroup()

	if len(log) == 0 {
		logger.Info("pairing: empty log")
	}
	return log, nil
}
