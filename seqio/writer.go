package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/seqalign/sw"
)

// emptyResult is written in place of the span for a result without segments.
const emptyResult = "0:0,0:0,0"

// recordEnd closes every output record.
const recordEnd = ".\n"

// AppendResult appends the result line (without the record terminator) to dst.
func AppendResult(dst []byte, res sw.Result) []byte {
	if res.Empty() {
		return append(dst, emptyResult...)
	}

	dst = strconv.AppendInt(dst, int64(res.Score), 10)
	dst = append(dst, ',')
	dst = appendRanges(dst, res.Span)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(len(res.Segments)), 10)
	for _, g := range res.Segments {
		dst = append(dst, ';')
		dst = appendRanges(dst, g)
	}

	return dst
}

// appendRanges writes "sr:er,sc:ec".
func appendRanges(dst []byte, g sw.Segment) []byte {
	dst = strconv.AppendInt(dst, int64(g.StartRow), 10)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(g.EndRow), 10)
	dst = append(dst, ',')
	dst = strconv.AppendInt(dst, int64(g.StartCol), 10)
	dst = append(dst, ':')
	dst = strconv.AppendInt(dst, int64(g.EndCol), 10)

	return dst
}

// FormatResult returns the result line without trailing newline.
func FormatResult(res sw.Result) string {
	return string(AppendResult(nil, res))
}

// ResultWriter writes one terminated record per result and flushes it.
type ResultWriter struct {
	w   *bufio.Writer
	buf []byte
	n   int
}

// NewResultWriter wraps w.
func NewResultWriter(w io.Writer) *ResultWriter {
	return &ResultWriter{w: bufio.NewWriter(w)}
}

// Write emits the record for res followed by the "." line and flushes.
// A failed write or flush is returned wrapped; callers distinguish a closed
// downstream pipe with errors.Is.
func (rw *ResultWriter) Write(res sw.Result) error {
	rw.buf = AppendResult(rw.buf[:0], res)
	rw.buf = append(rw.buf, '\n')
	rw.buf = append(rw.buf, recordEnd...)
	if _, err := rw.w.Write(rw.buf); err != nil {
		return fmt.Errorf("seqio: writing record %d: %w", rw.n+1, err)
	}
	if err := rw.w.Flush(); err != nil {
		return fmt.Errorf("seqio: flushing record %d: %w", rw.n+1, err)
	}
	rw.n++

	return nil
}

// Records returns how many records have been written and flushed.
func (rw *ResultWriter) Records() int { return rw.n }
