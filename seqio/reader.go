package seqio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultMaxLen is the default cap on the length of one sequence (1 MiB).
const DefaultMaxLen = 1 << 20

// Sentinel errors.
var (
	// ErrSequenceTooLong indicates a record longer than the reader's maximum.
	ErrSequenceTooLong = errors.New("seqio: sequence exceeds maximum length")

	// ErrEmptyRecord indicates a record with no sequence bytes.
	ErrEmptyRecord = errors.New("seqio: empty record")

	// ErrEndOfInput is returned by ReadPair when no further pair can be read.
	// It wraps the cause (io.EOF, ErrEmptyRecord or ErrSequenceTooLong).
	ErrEndOfInput = errors.New("seqio: end of input")
)

// Sequence is one input sequence, case preserved.
type Sequence []byte

// Source yields sequences one record at a time.
//
// Next returns io.EOF when the input is exhausted before any byte of a new
// record, an empty Sequence for a record without data, and
// ErrSequenceTooLong for an oversized record.
type Source interface {
	Next() (Sequence, error)
}

// Compile-time assertions.
var (
	_ Source = (*DotReader)(nil)
	_ Source = (*FastaReader)(nil)
)

// DotReader reads '.'-terminated records.
type DotReader struct {
	r      *bufio.Reader
	maxLen int
}

// NewDotReader wraps r. maxLen <= 0 selects DefaultMaxLen.
func NewDotReader(r io.Reader, maxLen int) *DotReader {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	return &DotReader{r: bufio.NewReader(r), maxLen: maxLen}
}

// Next reads one record. The terminator line is consumed and not included.
// A final record without terminator is returned as is.
func (d *DotReader) Next() (Sequence, error) {
	var (
		seq       = Sequence{}
		seen      bool // any byte of this record consumed
		lineStart = true
		tooLong   bool
	)
	for {
		chunk, isPrefix, err := d.r.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("seqio: reading record: %w", err)
			}
			switch {
			case !seen:
				return nil, io.EOF
			case tooLong:
				return nil, ErrSequenceTooLong
			}

			return seq, nil
		}
		seen = true

		if lineStart && len(chunk) > 0 && chunk[0] == '.' {
			if err := skipRestOfLine(d.r, isPrefix); err != nil {
				return nil, err
			}
			if tooLong {
				return nil, ErrSequenceTooLong
			}

			return seq, nil
		}
		lineStart = !isPrefix

		if tooLong {
			continue
		}
		if len(seq)+len(chunk) > d.maxLen {
			tooLong = true
			seq = seq[:0]
			continue
		}
		seq = append(seq, chunk...)
	}
}

// FastaReader reads '>'-headed FASTA records.
type FastaReader struct {
	r      *bufio.Reader
	maxLen int
	next   string // header already consumed for the following record
	hasHdr bool
	name   string
}

// NewFastaReader wraps r. maxLen <= 0 selects DefaultMaxLen.
func NewFastaReader(r io.Reader, maxLen int) *FastaReader {
	if maxLen <= 0 {
		maxLen = DefaultMaxLen
	}

	return &FastaReader{r: bufio.NewReader(r), maxLen: maxLen}
}

// Name returns the identifier (first header word) of the last record read.
// Data before the first header forms a record with an empty name.
func (f *FastaReader) Name() string { return f.name }

// Next reads one record: its header (if any) and every sequence line up to
// the next header or the end of input.
func (f *FastaReader) Next() (Sequence, error) {
	var (
		seq       = Sequence{}
		seen      = f.hasHdr
		lineStart = true
		tooLong   bool
	)
	f.name, f.next, f.hasHdr = f.next, "", false

	for {
		chunk, isPrefix, err := f.r.ReadLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("seqio: reading record: %w", err)
			}
			switch {
			case !seen:
				return nil, io.EOF
			case tooLong:
				return nil, ErrSequenceTooLong
			}

			return seq, nil
		}

		if lineStart && len(chunk) > 0 && chunk[0] == '>' {
			hdr := headerID(chunk[1:])
			if err := skipRestOfLine(f.r, isPrefix); err != nil {
				return nil, err
			}
			if !seen {
				// first header of the stream names this record
				f.name, seen = hdr, true
				continue
			}
			f.next, f.hasHdr = hdr, true
			if tooLong {
				return nil, ErrSequenceTooLong
			}

			return seq, nil
		}
		if len(chunk) > 0 {
			seen = true
		}
		lineStart = !isPrefix

		if tooLong {
			continue
		}
		if len(seq)+len(chunk) > f.maxLen {
			tooLong = true
			seq = seq[:0]
			continue
		}
		seq = append(seq, chunk...)
	}
}

// headerID returns the first whitespace-separated word of a header line.
func headerID(b []byte) string {
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return ""
	}

	return fields[0]
}

// skipRestOfLine discards the remainder of a line that ReadLine returned in part.
func skipRestOfLine(r *bufio.Reader, isPrefix bool) error {
	for isPrefix {
		var err error
		if _, isPrefix, err = r.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("seqio: reading record: %w", err)
		}
	}

	return nil
}

// ReadPair reads the next two sequences from src.
// End of input, an empty record or an oversized record all end processing:
// they are reported as ErrEndOfInput wrapping the cause. Any other error is
// an I/O failure and is returned unchanged.
func ReadPair(src Source) (a, b Sequence, err error) {
	if a, err = next(src); err != nil {
		return nil, nil, err
	}
	if b, err = next(src); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// next reads one sequence and classifies the terminal conditions.
func next(src Source) (Sequence, error) {
	s, err := src.Next()
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, ErrSequenceTooLong):
		return nil, fmt.Errorf("%w: %w", ErrEndOfInput, err)
	case err != nil:
		return nil, err
	case len(s) == 0:
		return nil, fmt.Errorf("%w: %w", ErrEndOfInput, ErrEmptyRecord)
	}

	return s, nil
}
