// Package iohelpers wraps the handful of stream-construction helpers the
// parser needs: a buffered reader over either plain or gzip-compressed
// transcript bytes, picked by sniffing the gzip magic number rather than
// trusting a file extension.
package iohelpers

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"
)

// NewReader wraps r in a *bufio.Reader, transparently decompressing gzip
// input (detected by magic number, not filename) so a caller can point
// logparser.NewLineReader at either a plain-text transcript or a gzip-compressed
// one without branching.
func NewReader(r io.Reader) (*bufio.Reader, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	magic, err := br.Peek(2)
	if err != nil {
		// Fewer than 2 bytes available (empty or near-empty input): treat
		// as plain text, the caller's empty-log path handles the rest.
		return br, nil
	}
	if magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return bufio.NewReaderSize(gz, 64*1024), nil
	}
	return br, nil
}
