package sw

import (
	"fmt"

	"github.com/katalvlaran/seqalign/matrix"
)

// scoring is Options narrowed to the arena's integer width.
type scoring struct {
	match, mismatch int32
	gapInit, gapExt int32
	unknown         byte
	affine          bool
	band            int
}

// Aligner runs repeated local alignments over one reusable arena.
// The zero value is not usable; call NewAligner.
type Aligner struct {
	opts  Options
	sc    scoring
	m     *matrix.ScoreMatrix
	a, b  []byte // uppercased working copies of the current pair
	ready bool   // a fill has completed for (a, b)
}

// NewAligner validates opts and returns an Aligner owning an empty arena.
func NewAligner(opts Options) (*Aligner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Aligner{
		opts: opts,
		sc: scoring{
			match:    int32(opts.Match),
			mismatch: int32(opts.Mismatch),
			gapInit:  int32(opts.GapInit),
			gapExt:   int32(opts.GapExt),
			unknown:  opts.Unknown,
			affine:   opts.Gaps == AffineGaps,
			band:     opts.BandWidth,
		},
		m: matrix.NewScoreMatrix(),
	}, nil
}

// Options returns the options the Aligner was built with.
func (x *Aligner) Options() Options { return x.opts }

// Align computes the best local alignment of a (columns) against b (rows).
// Both inputs are uppercased into private buffers; the caller's slices are not modified.
//
// Errors:
//   - ErrEmptySequence if either input is empty.
//   - ErrTracebackInconsistent on an internal invariant violation (fatal for callers).
func (x *Aligner) Align(a, b []byte) (Result, error) {
	if len(a) == 0 || len(b) == 0 {
		return Result{}, ErrEmptySequence
	}
	x.ready = false
	x.a = upperInto(x.a, a)
	x.b = upperInto(x.b, b)

	if err := x.m.Resize(len(x.b), len(x.a)); err != nil {
		return Result{}, fmt.Errorf("sw: sizing arena: %w", err)
	}
	end, err := x.fill()
	if err != nil {
		return Result{}, err
	}
	x.ready = true

	return x.traceback(end)
}

// TracebackFrom re-runs the traceback of the last filled pair from an arbitrary cell.
// Errors: ErrNotFilled before any successful fill; matrix.ErrOutOfRange for a bad cell.
func (x *Aligner) TracebackFrom(row, col int) (Result, error) {
	if !x.ready {
		return Result{}, ErrNotFilled
	}

	return x.traceback(Coord{Row: row, Col: col})
}

// Cell returns a cell of the last filled arena.
func (x *Aligner) Cell(row, col int) (matrix.Cell, error) {
	return x.m.At(row, col)
}

// Allocations reports how many times the arena buffer was allocated.
func (x *Aligner) Allocations() int { return x.m.Allocations() }

// Capacity reports the arena size in cells.
func (x *Aligner) Capacity() int { return x.m.Capacity() }

// Align is a one-shot helper: build an Aligner with opts and align a against b.
// Prefer a long-lived Aligner when aligning many pairs.
func Align(a, b []byte, opts Options) (Result, error) {
	x, err := NewAligner(opts)
	if err != nil {
		return Result{}, err
	}

	return x.Align(a, b)
}

// upperInto copies src into dst (reusing its capacity) with ASCII letters uppercased.
func upperInto(dst, src []byte) []byte {
	dst = append(dst[:0], src...)
	for i, c := range dst {
		if c >= 'a' && c <= 'z' {
			dst[i] = c - ('a' - 'A')
		}
	}

	return dst
}
