// Package hashing computes deterministic request fingerprints used to
// dedupe or cross-reference requests across runs without keeping the
// full request text around.
package hashing

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/microsoft/restler-fuzzer-sub003/httpmodel"
)

// RequestFingerprint is the first 16 bytes of SHA-1 over a request's
// canonical encoding, rendered as hex.
type RequestFingerprint [16]byte

// String renders the fingerprint as lowercase hex.
func (f RequestFingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Fingerprint computes a deterministic fingerprint of req: SHA-1 over
// "version|method|uri|sorted-headers|body", truncated to 16 bytes.
// Headers are sorted by name first since Headers is an unordered
// mapping — without that, two structurally identical requests captured
// with headers in different wire order would fingerprint differently.
func Fingerprint(req httpmodel.Request[string]) RequestFingerprint {
	var b strings.Builder
	b.WriteString(req.Version)
	b.WriteByte('|')
	b.WriteString(req.Method)
	b.WriteByte('|')
	b.WriteString(req.Uri.String())
	b.WriteByte('|')
	for i, k := range req.Headers.Keys() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(req.Headers[k])
	}
	b.WriteByte('|')
	b.WriteString(req.Body)

	sum := sha1.Sum([]byte(b.String()))
	var fp RequestFingerprint
	copy(fp[:], sum[:16])
	return fp
}
