// SPDX-License-Identifier: MIT

// Package matrix - ScoreMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major arena with the explicit index formula i*(cols+1) + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Grow only: reuse the previous allocation whenever it already has enough capacity.
//
// Complexity quicksheet:
//   - Resize: O(rows+cols) when capacity suffices, O((rows+1)*(cols+1)) on growth.
//   - At/Set/Row: O(1). String: O(rows*cols).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// dirGlyph renders a Direction in String dumps.
var dirGlyph = [...]byte{Undefined: '.', Diagonal: '\\', Left: '<', Up: '^'}

// ScoreMatrix is a growth-only DP arena for a pair of sequences.
//   - rows, cols are the sequence lengths; the addressable shape is (rows+1)×(cols+1).
//   - data is the flat backing buffer; len(data) is the capacity in cells and never shrinks.
//   - index is the row-index table: index[i] is the view of row i inside data.
//   - allocs counts how many times data had to be (re)allocated.
type ScoreMatrix struct {
	rows, cols int
	data       []Cell
	index      [][]Cell
	allocs     int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*ScoreMatrix)(nil)

// NewScoreMatrix returns an empty arena. The first Resize allocates.
func NewScoreMatrix() *ScoreMatrix {
	return &ScoreMatrix{}
}

// Resize prepares the arena for a pair of sequences of lengths rows and cols.
// MAIN DESCRIPTION:
//   - Ensure at least (rows+1)*(cols+1) cells of backing storage, rebuild the
//     row-index table when the shape changes and reset the boundary row/column.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: reallocate data only when the requested cell count exceeds capacity.
//   - Stage 3: rebuild index when the shape (or the backing buffer) changed.
//   - Stage 4: write the boundary cell into row 0 and column 0.
//
// Behavior highlights:
//   - Growth-only: a smaller request keeps the larger buffer.
//   - Interior cells keep stale values from the previous pair; callers must
//     overwrite every interior cell they read.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (wrapped with "ScoreMatrix.Resize(rows,cols)").
//
// Complexity:
//   - Time O(rows+cols) on reuse, O((rows+1)*(cols+1)) on growth (zeroing by runtime).
func (m *ScoreMatrix) Resize(rows, cols int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if rows < 0 || cols < 0 {
		return matrixErrorf(ctxResize, rows, cols, ErrBadShape)
	}

	need := (rows + 1) * (cols + 1)
	grown := false
	if need > len(m.data) {
		// Old contents are dead; no copy.
		m.data = make([]Cell, need)
		m.allocs++
		grown = true
	}

	if grown || m.index == nil || rows != m.rows || cols != m.cols {
		m.rebuildIndex(rows, cols)
	}
	m.rows, m.cols = rows, cols

	// Boundary: row 0 and column 0.
	top := m.index[0]
	for j := range top {
		top[j] = boundary
	}
	for i := 1; i <= rows; i++ {
		m.index[i][0] = boundary
	}

	return nil
}

// rebuildIndex points index[i] at row i of data for width cols+1.
// The row table itself grows only when more rows are needed.
func (m *ScoreMatrix) rebuildIndex(rows, cols int) {
	if cap(m.index) < rows+1 {
		m.index = make([][]Cell, rows+1)
	} else {
		m.index = m.index[:rows+1]
	}
	w := cols + 1
	for i := 0; i <= rows; i++ {
		lo := i * w
		m.index[i] = m.data[lo : lo+w : lo+w] // capped: a row view cannot reach the next row
	}
}

// Rows returns the row sequence length (the addressable rows are 0..Rows()).
func (m *ScoreMatrix) Rows() int { return m.rows }

// Cols returns the column sequence length (the addressable cols are 0..Cols()).
func (m *ScoreMatrix) Cols() int { return m.cols }

// Capacity returns the number of cells in the backing buffer.
func (m *ScoreMatrix) Capacity() int { return len(m.data) }

// Allocations returns how many times the backing buffer has been allocated.
func (m *ScoreMatrix) Allocations() int { return m.allocs }

// inRange reports whether (row, col) lies inside the current shape.
func (m *ScoreMatrix) inRange(row, col int) bool {
	return m.index != nil && row >= 0 && row <= m.rows && col >= 0 && col <= m.cols
}

// At returns the cell at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange (wrapped with method and coordinates).
// Complexity: O(1).
func (m *ScoreMatrix) At(row, col int) (Cell, error) {
	if m == nil {
		return Cell{}, ErrNilMatrix
	}
	if !m.inRange(row, col) {
		return Cell{}, matrixErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.index[row][col], nil
}

// Set stores c at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange (wrapped with method and coordinates).
// Complexity: O(1).
func (m *ScoreMatrix) Set(row, col int, c Cell) error {
	if m == nil {
		return ErrNilMatrix
	}
	if !m.inRange(row, col) {
		return matrixErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.index[row][col] = c

	return nil
}

// Row returns the view of row `row` (length Cols()+1, capacity-capped).
// Mutations through the view are mutations of the arena. The view is
// invalidated by the next Resize.
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (m *ScoreMatrix) Row(row int) ([]Cell, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !m.inRange(row, 0) {
		return nil, matrixErrorf(ctxRow, row, 0, ErrOutOfRange)
	}

	return m.index[row], nil
}

// String renders the current shape as rows of "score+glyph" entries,
// where the glyph is '.', '\', '<' or '^' for Undefined, Diagonal, Left, Up.
// Complexity: O(rows*cols).
func (m *ScoreMatrix) String() string {
	if m == nil || m.index == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i <= m.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j, c := range m.index[i] {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			glyph := byte('?')
			if int(c.Dir) < len(dirGlyph) {
				glyph = dirGlyph[c.Dir]
			}
			fmt.Fprintf(&sb, "%d%c", c.Score, glyph)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
