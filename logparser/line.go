// Package logparser turns the raw fuzzing transcript — one record per
// line, three recognized shapes — into a stream of LogLine tokens and,
// from there, parsed HTTP requests and responses. It never aborts on a
// malformed line or message; callers get a Diagnostic and the run
// continues, per the transcript's recoverable-error contract.
package logparser

import (
	"regexp"
	"strings"
	"time"

	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
)

var (
	sequenceBoundaryRe = regexp.MustCompile(`^Generation-\d+: Rendering Sequence-\d+`)
	sendingRe          = regexp.MustCompile(`^([^']*): Sending: '(.*)'$`)
	receivedRe         = regexp.MustCompile(`^([^']*): Received: '(.*)'$`)
)

// dateLayouts are tried in order; the first that parses wins. They
// correspond to the three formats the fuzzer has emitted historically.
var dateLayouts = []string{
	"Mon Jan 02 15:04:05 2006",
	"Mon Jan _2 15:04:05 2006",
	"2006-01-02 15:04:05.000",
}

// LineKind tags a parsed LogLine.
type LineKind int

const (
	// KindSequenceBeginning marks a sequence boundary line.
	KindSequenceBeginning LineKind = iota
	// KindSending marks a "Sending" line.
	KindSending
	// KindReceived marks a "Received" line.
	KindReceived
)

// LogLine is one classified, decoded line of the transcript.
type LogLine struct {
	Kind     LineKind
	Time     time.Time
	Request  httpmodel.Request[string]  // set iff Kind == KindSending
	Response httpmodel.Response[string] // set iff Kind == KindReceived
}

// classify matches line against the three recognized shapes. ok is false
// for any other line, which the caller silently ignores.
func classify(line string) (kind LineKind, timestamp string, payload string, ok bool) {
	if sequenceBoundaryRe.MatchString(line) {
		return KindSequenceBeginning, "", "", true
	}
	if m := sendingRe.FindStringSubmatch(line); m != nil {
		return KindSending, m[1], m[2], true
	}
	if m := receivedRe.FindStringSubmatch(line); m != nil {
		return KindReceived, m[1], m[2], true
	}
	return 0, "", "", false
}

// parseTimestamp tries each of dateLayouts in order, tolerating leading
// and trailing whitespace. It never fails the line: on exhaustion it
// returns time.Now() and ok=false so the caller can log a diagnostic.
func parseTimestamp(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Now(), false
}

// decodeEscapes decodes exactly \r \n \t \\ , leaving any other backslash
// sequence untouched (the transcript never emits one, but a corrupt log
// might; passing it through is safer than failing the whole line).
func decodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		switch s[i+1] {
		case 'r':
			b.WriteByte('\r')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
