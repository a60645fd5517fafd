package seqio

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// gzipMagic is the two-byte gzip signature.
var gzipMagic = [2]byte{0x1f, 0x8b}

// multiReadCloser closes every closer, first error wins.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// Open returns a reader for path. "-" or "" selects stdin, which the caller
// passes in so tests can substitute it; closing it is a no-op.
// Gzip input is detected by magic number or ".gz" suffix and decompressed.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seqio: open %s: %w", path, err)
	}

	var sig [2]byte
	n, _ := io.ReadFull(fh, sig[:])
	if _, err := fh.Seek(0, io.SeekStart); err != nil {
		_ = fh.Close()
		return nil, fmt.Errorf("seqio: rewind %s: %w", path, err)
	}
	if (n == 2 && sig == gzipMagic) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, fmt.Errorf("seqio: gzip %s: %w", path, err)
		}

		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}

	return fh, nil
}

// Format names an input record format.
type Format string

// Supported input formats.
const (
	FormatDot   Format = "dot"
	FormatFasta Format = "fasta"
)

// ParseFormat maps "dot" or "fasta" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDot, FormatFasta:
		return f, nil
	}

	return "", fmt.Errorf("seqio: unknown input format %q (want dot or fasta)", s)
}

// NewSource returns the reader for format f over r.
func NewSource(f Format, r io.Reader, maxLen int) (Source, error) {
	switch f {
	case FormatDot, "":
		return NewDotReader(r, maxLen), nil
	case FormatFasta:
		return NewFastaReader(r, maxLen), nil
	}

	return nil, fmt.Errorf("seqio: unknown input format %q", string(f))
}
