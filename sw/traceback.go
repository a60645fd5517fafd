package sw

import (
	"fmt"

	"github.com/katalvlaran/seqalign/matrix"
)

// walkState is the segment state of the traceback.
type walkState uint8

const (
	walking   walkState = iota // between segments
	inSegment                  // inside a run of identical characters
)

// lane selects which score of the current cell the walk is following.
// Under FlatGaps the walk never leaves laneScore.
type lane uint8

const (
	laneScore lane = iota // Cell.Score (the Smith–Waterman cell proper)
	laneVGap              // Cell.VGap: inside a vertical gap
	laneHGap              // Cell.HGap: inside a horizontal gap
)

// traceback walks from start back to the first zero-score cell and assembles
// the segments of the alignment.
//
// Loop invariant: (i, j) is the cell being visited and `l` says which of its
// scores the path went through. Identical characters open a segment (its end
// is fixed on opening, its start follows the walk); a difference or a gap
// step closes it.
// Segments are emitted high → low and reversed in place before returning.
func (x *Aligner) traceback(start Coord) (Result, error) {
	res := Result{Endpoint: start}

	first, err := x.m.At(start.Row, start.Col)
	if err != nil {
		return res, err
	}
	res.Score = int(first.Score)

	var (
		segs  []Segment
		open  Segment
		state = walking
		l     = laneScore
	)
	for i, j := start.Row, start.Col; ; {
		c, err := x.m.At(i, j)
		if err != nil {
			return res, err
		}

		score := c.Score
		switch l {
		case laneVGap:
			score = c.VGap
		case laneHGap:
			score = c.HGap
		}
		if score <= 0 {
			break
		}

		colBase, rowBase := x.a[j-1], x.b[i-1]
		if colBase == rowBase {
			open.StartRow, open.StartCol = i, j
			if state == walking {
				open.EndRow, open.EndCol = i, j
				state = inSegment
			}
		} else if state == inSegment {
			segs = append(segs, open)
			state = walking
		}

		move := c.Dir
		switch l {
		case laneVGap:
			move = matrix.Up
		case laneHGap:
			move = matrix.Left
		}

		if x.opts.OnTrace != nil {
			x.opts.OnTrace(TraceStep{
				Row: i, Col: j,
				RowBase: rowBase, ColBase: colBase,
				Score:    int(score),
				Dir:      move,
				Mismatch: move == matrix.Diagonal && colBase != rowBase,
			})
		}

		if move != matrix.Diagonal && state == inSegment {
			// a gap step ends the run even across identical characters
			segs = append(segs, open)
			state = walking
		}

		switch move {
		case matrix.Diagonal:
			i, j = i-1, j-1
		case matrix.Up:
			// The predecessor is the neighbour's gap score when this gap extends one.
			l = laneScore
			if c.VExt {
				l = laneVGap
			}
			i--
		case matrix.Left:
			l = laneScore
			if c.HExt {
				l = laneHGap
			}
			j--
		default:
			return res, fmt.Errorf("%w: cell (%d,%d) has score %d and direction %s",
				ErrTracebackInconsistent, i, j, score, move)
		}
	}
	if state == inSegment {
		segs = append(segs, open)
	}

	if len(segs) == 0 {
		return res, nil
	}
	res.Span = Segment{
		StartRow: segs[len(segs)-1].StartRow, EndRow: segs[0].EndRow,
		StartCol: segs[len(segs)-1].StartCol, EndCol: segs[0].EndCol,
	}
	// reverse in place: low → high coordinates
	for lo, hi := 0, len(segs)-1; lo < hi; lo, hi = lo+1, hi-1 {
		segs[lo], segs[hi] = segs[hi], segs[lo]
	}
	res.Segments = segs

	return res, nil
}
