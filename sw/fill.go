package sw

import "github.com/katalvlaran/seqalign/matrix"

// blank is written to cells outside the band so no stale value survives a reuse.
var blank = matrix.Cell{VGap: matrix.GapFloor, HGap: matrix.GapFloor, Dir: matrix.Undefined}

// fill scores every interior cell of the arena for the current (a, b) pair
// and returns the traceback start. Its score is read back by the traceback.
//
// Decision per cell, in order:
//  1. diagonal <= 0 and best gap <= 0  → {0, Undefined}
//  2. diagonal >= best gap             → Diagonal (diagonal wins ties)
//  3. up > left                        → Up, otherwise Left (left wins ties)
//
// The running best is updated with >=, so the last maximal cell in
// row-major order wins. Cells outside the band are never candidates.
func (x *Aligner) fill() (Coord, error) {
	rows, cols := len(x.b), len(x.a)
	sc := x.sc

	best := Coord{Row: 1, Col: 1}
	var bestScore int32

	prev, err := x.m.Row(0)
	if err != nil {
		return best, err
	}
	for i := 1; i <= rows; i++ {
		cur, err := x.m.Row(i)
		if err != nil {
			return best, err
		}
		rowBase := x.b[i-1]

		lo, hi := 1, cols
		if sc.band > 0 {
			lo, hi = max(1, i-sc.band), min(cols, i+sc.band)
			for j := 1; j <= cols; j++ {
				if j < lo || j > hi {
					cur[j] = blank
				}
			}
		}

		for j := lo; j <= hi; j++ {
			colBase := x.a[j-1]

			var pair int32
			switch {
			case colBase == sc.unknown || rowBase == sc.unknown:
				pair = 0
			case colBase == rowBase:
				pair = sc.match
			default:
				pair = sc.mismatch
			}

			c := matrix.Cell{VGap: matrix.GapFloor, HGap: matrix.GapFloor}
			diagonal := prev[j-1].Score + pair

			var up, left int32
			if sc.affine {
				// Opening wins ties against extending.
				up = prev[j].Score + sc.gapInit
				if ext := prev[j].VGap + sc.gapExt; ext > up {
					up, c.VExt = ext, true
				}
				left = cur[j-1].Score + sc.gapInit
				if ext := cur[j-1].HGap + sc.gapExt; ext > left {
					left, c.HExt = ext, true
				}
				c.VGap, c.HGap = up, left
			} else {
				up = prev[j].Score + sc.gapInit
				left = cur[j-1].Score + sc.gapInit
			}

			bestGap := max(up, left)
			switch {
			case diagonal <= 0 && bestGap <= 0:
				c.Score, c.Dir = 0, matrix.Undefined
			case diagonal >= bestGap:
				c.Score, c.Dir = diagonal, matrix.Diagonal
			case up > left:
				c.Score, c.Dir = up, matrix.Up
			default:
				c.Score, c.Dir = left, matrix.Left
			}
			cur[j] = c

			if c.Score >= bestScore {
				best = Coord{Row: i, Col: j}
				bestScore = c.Score
			}
		}
		prev = cur
	}

	return best, nil
}
