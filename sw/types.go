// Package sw defines options, result types and errors for local alignment.
package sw

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/matrix"
)

// Sentinel errors.
var (
	// ErrEmptySequence indicates one or both inputs are empty.
	ErrEmptySequence = errors.New("sw: input sequences must be non-empty")

	// ErrBadOption indicates an Options value that cannot be honoured.
	ErrBadOption = errors.New("sw: invalid option")

	// ErrTracebackInconsistent is returned when the traceback reaches an
	// Undefined cell whose score is positive. The fill pass never produces
	// such a cell, so this always signals a bug or a corrupted arena.
	ErrTracebackInconsistent = errors.New("sw: traceback reached an undefined cell with positive score")

	// ErrNotFilled is returned by TracebackFrom before any Align call.
	ErrNotFilled = errors.New("sw: no matrix has been filled yet")
)

// Default scoring parameters.
const (
	DefaultMatch    = 1
	DefaultMismatch = -1
	DefaultGapInit  = DefaultMismatch - 2
	DefaultGapExt   = DefaultMismatch - 1

	// DefaultUnknown is the placeholder base that scores 0 against anything.
	DefaultUnknown = 'N'

	// maxAbsScore bounds every scoring parameter so that one recurrence step
	// stays inside int32. A cell's score is a sum along a path of at most
	// rows+cols steps, so it peaks at maxAbsScore*(rows+cols); callers feeding
	// long sequences must keep that product below math.MaxInt32, as
	// config.Validate does against max_len.
	maxAbsScore = 1 << 16
)

// GapModel selects the gap recurrence.
type GapModel int

const (
	// FlatGaps charges GapInit for every gap step; GapExt is inert.
	FlatGaps GapModel = iota

	// AffineGaps charges GapInit to open a gap and GapExt for each further step.
	AffineGaps
)

// String returns "flat" or "affine".
func (g GapModel) String() string {
	switch g {
	case FlatGaps:
		return "flat"
	case AffineGaps:
		return "affine"
	default:
		return fmt.Sprintf("GapModel(%d)", int(g))
	}
}

// ParseGapModel accepts "flat" or "affine" (case-insensitive); "" means flat.
func ParseGapModel(s string) (GapModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat":
		return FlatGaps, nil
	case "affine":
		return AffineGaps, nil
	default:
		return FlatGaps, fmt.Errorf("%w: unknown gap model %q", ErrBadOption, s)
	}
}

// TraceStep describes one cell visited by the traceback.
// Dir is the move taken out of the cell. Mismatch is set when that move is
// Diagonal across two different characters.
type TraceStep struct {
	Row, Col int
	RowBase  byte
	ColBase  byte
	Score    int
	Dir      matrix.Direction
	Mismatch bool
}

// Options configures the aligner.
//
// Fields:
//   - Match, Mismatch — pair scores for identical / different characters.
//   - GapInit         — penalty for a gap step (every step under FlatGaps).
//   - GapExt          — penalty for extending a gap; used only by AffineGaps.
//   - Gaps            — FlatGaps (default) or AffineGaps.
//   - Unknown         — placeholder base scoring 0 against anything; 0 disables it.
//   - BandWidth       — if > 0, only cells with |row-col| <= BandWidth are scored.
//   - OnTrace         — optional hook called for every traceback step.
type Options struct {
	Match     int
	Mismatch  int
	GapInit   int
	GapExt    int
	Gaps      GapModel
	Unknown   byte
	BandWidth int
	OnTrace   func(TraceStep)
}

// DefaultOptions returns match=1, mismatch=-1, gapInit=-3, gapExt=-2,
// flat gaps, 'N' as the unknown base, no band and no trace hook.
func DefaultOptions() Options {
	return Options{
		Match:    DefaultMatch,
		Mismatch: DefaultMismatch,
		GapInit:  DefaultGapInit,
		GapExt:   DefaultGapExt,
		Gaps:     FlatGaps,
		Unknown:  DefaultUnknown,
	}
}

// Validate reports the first option that cannot be honoured, wrapped in ErrBadOption.
func (o Options) Validate() error {
	for _, p := range []struct {
		name string
		v    int
	}{{"match", o.Match}, {"mismatch", o.Mismatch}, {"gapinit", o.GapInit}, {"gapext", o.GapExt}} {
		if p.v > maxAbsScore || p.v < -maxAbsScore {
			return fmt.Errorf("%w: %s=%d out of range ±%d", ErrBadOption, p.name, p.v, maxAbsScore)
		}
	}
	if o.Gaps != FlatGaps && o.Gaps != AffineGaps {
		return fmt.Errorf("%w: gap model %d", ErrBadOption, int(o.Gaps))
	}
	if o.Gaps == AffineGaps && (o.GapInit > 0 || o.GapExt > 0) {
		return fmt.Errorf("%w: affine gap penalties must be <= 0 (gapinit=%d, gapext=%d)", ErrBadOption, o.GapInit, o.GapExt)
	}
	if o.Unknown >= 'a' && o.Unknown <= 'z' {
		return fmt.Errorf("%w: unknown base %q must be upper case", ErrBadOption, o.Unknown)
	}
	if o.BandWidth < 0 {
		return fmt.Errorf("%w: band width %d must be >= 0", ErrBadOption, o.BandWidth)
	}

	return nil
}

// Coord addresses a cell: Row indexes sequence b, Col indexes sequence a (1-based).
type Coord struct {
	Row, Col int
}

// Segment is a maximal diagonal run of identical characters, inclusive, 1-based.
type Segment struct {
	StartRow, EndRow int
	StartCol, EndCol int
}

// Len returns the number of aligned positions in the segment.
func (s Segment) Len() int { return s.EndRow - s.StartRow + 1 }

// Result is the outcome of one alignment.
//   - Score    — the matrix maximum (the score at Endpoint).
//   - Span     — rows/cols covered from the first segment's start to the last segment's end;
//     zero when there are no segments.
//   - Segments — in increasing coordinate order.
//   - Endpoint — the cell the traceback started from.
type Result struct {
	Score    int
	Span     Segment
	Segments []Segment
	Endpoint Coord
}

// Empty reports whether the alignment produced no segments.
func (r Result) Empty() bool { return len(r.Segments) == 0 }
