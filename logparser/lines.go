package logparser

import (
	"bufio"
	"io"

	"go.uber.org/zap"

	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
	"github.com/microsoft/restler-fuzzer-sub003/internal/iohelpers"
	"github.com/microsoft/restler-fuzzer-sub003/internal/logging"
)

// LineReader pulls classified LogLine tokens from a transcript one line at
// a time, so a caller can process a multi-gigabyte log without
// materializing it. Lines that match none of the three recognized shapes
// are silently skipped, per the external-interface contract.
type LineReader struct {
	scanner *bufio.Scanner
	lineNo  int
	logger  *zap.Logger
	sink    httpmodel.DiagnosticSink
}

// NewLineReader wraps r (plain or gzip-compressed transcript bytes) for
// streaming line classification. logger and sink may both be nil.
func NewLineReader(r io.Reader, logger *zap.Logger, sink httpmodel.DiagnosticSink) (*LineReader, error) {
	br, err := iohelpers.NewReader(r)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	return &LineReader{
		scanner: scanner,
		logger:  logging.OrNop(logger),
		sink:    sink,
	}, nil
}

// Next returns the next classified LogLine. ok is false once the
// transcript is exhausted; err is non-nil only on an underlying I/O
// failure (never on a malformed line — those are recoverable and simply
// skipped after a diagnostic).
func (lr *LineReader) Next() (line LogLine, ok bool, err error) {
	for lr.scanner.Scan() {
		lr.lineNo++
		raw := lr.scanner.Text()
		kind, rawTime, rawPayload, matched := classify(raw)
		if !matched {
			continue
		}
		switch kind {
		case KindSequenceBeginning:
			return LogLine{Kind: KindSequenceBeginning}, true, nil
		case KindSending:
			if line, ok := lr.parseSending(rawTime, rawPayload); ok {
				return line, true, nil
			}
		case KindReceived:
			if line, ok := lr.parseReceived(rawTime, rawPayload); ok {
				return line, true, nil
			}
		}
	}
	if err := lr.scanner.Err(); err != nil {
		return LogLine{}, false, err
	}
	return LogLine{}, false, nil
}

// parseSending returns ok=false when the request text fails to parse; the
// caller skips this message entirely and keeps scanning, per the
// recoverable-error contract (log, skip, continue).
func (lr *LineReader) parseSending(rawTime, rawPayload string) (LogLine, bool) {
	ts, ok := parseTimestamp(rawTime)
	if !ok {
		lr.warn("bad timestamp, falling back to now", rawTime)
	}
	decoded := decodeEscapes(rawPayload)
	req, err := ParseRequestText(decoded)
	if err != nil {
		lr.warn("unparseable request, skipping message", err.Error())
		return LogLine{}, false
	}
	return LogLine{Kind: KindSending, Time: ts, Request: req}, true
}

func (lr *LineReader) parseReceived(rawTime, rawPayload string) (LogLine, bool) {
	ts, ok := parseTimestamp(rawTime)
	if !ok {
		lr.warn("bad timestamp, falling back to now", rawTime)
	}
	decoded := decodeEscapes(rawPayload)
	resp, err := ParseResponseText(decoded)
	if err != nil {
		lr.warn("unparseable response, skipping message", err.Error())
		return LogLine{}, false
	}
	return LogLine{Kind: KindReceived, Time: ts, Response: resp}, true
}

func (lr *LineReader) warn(message, detail string) {
	lr.logger.Warn("logparser: "+message, zap.Int("line", lr.lineNo), zap.String("detail", detail))
	httpmodel.Emit(lr.sink, httpmodel.Diagnostic{Line: lr.lineNo, Stage: "logparser", Message: message})
}
