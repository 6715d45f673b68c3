package logparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
)

// BodyParser decodes a raw body string into a caller-chosen representation
// B (raw text, JSON, or anything else). The base parser in this package
// always hands callers the raw string; BodyParser lets a higher layer
// (e.g. a JSON-bodied bucketizer) reparse it without re-splitting the
// message.
type BodyParser[B any] func(string) (B, error)

// splitHead splits raw once on CRLFCRLF into the start-line+headers block
// and the body. A message with no blank-line separator is treated as all
// head, empty body — the same leniency the base HTTP parser in the
// teacher repo applies to truncated captures.
func splitHead(raw string) (head string, body string) {
	if i := strings.Index(raw, "\r\n\r\n"); i >= 0 {
		return raw[:i], raw[i+4:]
	}
	return raw, ""
}

// splitStartLine splits head once on CRLF into the start line and the
// headers block.
func splitStartLine(head string) (startLine string, headersBlock string) {
	if i := strings.Index(head, "\r\n"); i >= 0 {
		return head[:i], head[i+2:]
	}
	return head, ""
}

// ParseRequestText parses a raw escape-decoded HTTP request message into a
// Request[string]. The request line must be exactly three
// space-separated tokens: METHOD URI VERSION.
func ParseRequestText(raw string) (httpmodel.Request[string], error) {
	head, body := splitHead(raw)
	startLine, headersBlock := splitStartLine(head)

	tokens := strings.Fields(strings.TrimSpace(startLine))
	if len(tokens) != 3 {
		return httpmodel.Request[string]{}, fmt.Errorf("logparser: malformed request line %q", startLine)
	}
	method, rawURI, version := tokens[0], tokens[1], tokens[2]

	uri, err := httpmodel.ParseURI(rawURI)
	if err != nil {
		return httpmodel.Request[string]{}, fmt.Errorf("logparser: %w", err)
	}
	headers, err := httpmodel.ParseHeaders(headersBlock)
	if err != nil {
		return httpmodel.Request[string]{}, fmt.Errorf("logparser: %w", err)
	}
	return httpmodel.Request[string]{
		Version: version,
		Method:  method,
		Uri:     uri,
		Headers: headers,
		Body:    body,
	}, nil
}

// ParseResponseText parses a raw escape-decoded HTTP response message
// into a Response[string]. The status line is "VERSION CODE DESCRIPTION":
// at most three tokens, since the description may itself contain spaces.
func ParseResponseText(raw string) (httpmodel.Response[string], error) {
	head, body := splitHead(raw)
	startLine, headersBlock := splitStartLine(head)

	tokens := strings.SplitN(strings.TrimSpace(startLine), " ", 3)
	if len(tokens) == 0 || tokens[0] == "" {
		return httpmodel.Response[string]{}, fmt.Errorf("logparser: malformed response line %q", startLine)
	}
	version := tokens[0]
	var codeStr, description string
	if len(tokens) > 1 {
		codeStr = tokens[1]
	}
	if len(tokens) > 2 {
		description = tokens[2]
	}
	code, err := strconv.Atoi(strings.TrimSpace(codeStr))
	if err != nil {
		return httpmodel.Response[string]{}, fmt.Errorf("logparser: malformed response code %q: %w", codeStr, err)
	}
	headers, err := httpmodel.ParseHeaders(headersBlock)
	if err != nil {
		return httpmodel.Response[string]{}, fmt.Errorf("logparser: %w", err)
	}
	return httpmodel.Response[string]{
		Version:           version,
		StatusCode:        code,
		StatusDescription: description,
		Headers:           headers,
		Body:              body,
	}, nil
}
