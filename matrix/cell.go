// SPDX-License-Identifier: MIT

package matrix

// Direction names the predecessor that produced a cell's score.
// The numeric values are stable and appear in debug traces.
type Direction uint8

const (
	// Undefined marks a zero-score cell: the local alignment may start here.
	Undefined Direction = iota

	// Diagonal means the score came from (row-1, col-1) plus the pair score.
	Diagonal

	// Left means the score came from (row, col-1) plus a gap penalty.
	Left

	// Up means the score came from (row-1, col) plus a gap penalty.
	Up
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case Undefined:
		return "undefined"
	case Diagonal:
		return "diagonal"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return "invalid"
	}
}

// Cell is one entry of the DP arena.
//   - Score and Dir are the Smith–Waterman cell proper; boundary cells
//     (row 0, col 0) are always {0, Undefined}.
//   - VGap/HGap hold the best score of a path ending at this cell in a
//     vertical (Up) or horizontal (Left) gap; VExt/HExt record whether that
//     gap extends the neighbour's gap rather than opening a new one.
//     They are only maintained by the affine recurrence.
//
// Fields are 32-bit to keep a Cell at 16 bytes; scores of realistic
// sequence pairs are far below the int32 range.
type Cell struct {
	Score int32
	VGap  int32
	HGap  int32
	Dir   Direction
	VExt  bool
	HExt  bool
}

// boundary is the fixed value of every row-0 and col-0 cell.
var boundary = Cell{Score: 0, VGap: GapFloor, HGap: GapFloor, Dir: Undefined}

// GapFloor is the "no gap possible" sentinel stored in VGap/HGap.
// It is low enough that adding any realistic penalty cannot overflow
// and can never beat an opening move.
const GapFloor int32 = -(1 << 29)
