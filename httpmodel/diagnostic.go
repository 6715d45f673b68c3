package httpmodel

import "fmt"

// Diagnostic is a recoverable-error report raised by the log parser or
// the bucketizer. Their recoverable-error paths (a bad date, a bad request
// line, a dropped bucket overflow) produce one of these in addition to a
// structured log line; an empty log is reported by pairing only as a log
// line, since pairing.Pair takes no sink. Callers that want to assert on
// specific failures programmatically collect them via a callback instead
// of scraping log output.
type Diagnostic struct {
	// Line is the 1-indexed source line the diagnostic refers to, or 0
	// when it doesn't correspond to one (e.g. bucket overflow).
	Line int
	// Stage names the component that raised it: "logparser" or
	// "bucketizer".
	Stage string
	// Message is a short, human-readable description.
	Message string
	// Err is the underlying error, if any.
	Err error
}

func (d Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", d.Stage, d.Line, d.Message)
	}
	return fmt.Sprintf("%s: %s", d.Stage, d.Message)
}

// DiagnosticSink receives diagnostics as they are raised. A nil sink is
// valid and simply discards them.
type DiagnosticSink func(Diagnostic)

// Emit calls sink with d if sink is non-nil; a no-op on a nil sink.
func Emit(sink DiagnosticSink, d Diagnostic) {
	if sink != nil {
		sink(d)
	}
}
