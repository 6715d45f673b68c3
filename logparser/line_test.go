package logparser

import "testing"

func TestClassify_SequenceBoundary(t *testing.T) {
	// Arrange
	line := "Generation-1: Rendering Sequence-3"

	// Act
	kind, _, _, ok := classify(line)

	// Assert
	if !ok || kind != KindSequenceBeginning {
		t.Fatalf("classify(%q) = (%v, ok=%v), want KindSequenceBeginning", line, kind, ok)
	}
}

func TestClassify_Sending(t *testing.T) {
	// Arrange
	line := `Mon Jan 02 15:04:05 2026: Sending: 'GET / HTTP/1.1'`

	// Act
	kind, ts, payload, ok := classify(line)

	// Assert
	if !ok || kind != KindSending {
		t.Fatalf("classify(%q) = (%v, ok=%v), want KindSending", line, kind, ok)
	}
	if ts != "Mon Jan 02 15:04:05 2026" {
		t.Errorf("timestamp = %q", ts)
	}
	if payload != "GET / HTTP/1.1" {
		t.Errorf("payload = %q", payload)
	}
}

func TestClassify_Received(t *testing.T) {
	// Arrange
	line := `Mon Jan 02 15:04:06 2026: Received: 'HTTP/1.1 200 OK'`

	// Act
	kind, _, payload, ok := classify(line)

	// Assert
	if !ok || kind != KindReceived {
		t.Fatalf("classify(%q) = (%v, ok=%v), want KindReceived", line, kind, ok)
	}
	if payload != "HTTP/1.1 200 OK" {
		t.Errorf("payload = %q", payload)
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	// Arrange + Act
	_, _, _, ok := classify("just some noise in the log")

	// Assert
	if ok {
		t.Error("classify matched a line that should be ignored")
	}
}

func TestParseTimestamp_AllLayouts(t *testing.T) {
	cases := []string{
		"Mon Jan 02 15:04:05 2026",
		"Mon Jan  2 15:04:05 2026",
		"2026-01-02 15:04:05.000",
	}
	for _, raw := range cases {
		// Act
		_, ok := parseTimestamp(raw)

		// Assert
		if !ok {
			t.Errorf("parseTimestamp(%q) failed to parse", raw)
		}
	}
}

func TestParseTimestamp_FallsBackToNow(t *testing.T) {
	// Arrange + Act
	_, ok := parseTimestamp("not a date at all")

	// Assert
	if ok {
		t.Error("parseTimestamp should not have succeeded on garbage input")
	}
}

func TestDecodeEscapes(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`a\r\nb`, "a\r\nb"},
		{`tab\there`, "tab\there"},
		{`back\\slash`, `back\slash`},
		{`no escapes`, "no escapes"},
		{`trailing\`, `trailing\`},
		{`\xunknown`, `\xunknown`},
	}
	for _, c := range cases {
		// Act
		got := decodeEscapes(c.in)

		// Assert
		if got != c.want {
			t.Errorf("decodeEscapes(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
