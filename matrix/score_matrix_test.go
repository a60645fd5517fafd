// Package matrix_test contains unit tests for the growth-only ScoreMatrix arena.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/matrix"
)

// TestResizeBadShape ensures that Resize rejects negative dimensions.
func TestResizeBadShape(t *testing.T) {
	m := matrix.NewScoreMatrix()
	require.ErrorIs(t, m.Resize(-1, 3), matrix.ErrBadShape)
	require.ErrorIs(t, m.Resize(3, -1), matrix.ErrBadShape)
}

// TestNilReceiver verifies that a nil arena reports ErrNilMatrix instead of panicking.
func TestNilReceiver(t *testing.T) {
	var m *matrix.ScoreMatrix
	require.ErrorIs(t, m.Resize(1, 1), matrix.ErrNilMatrix)
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, m.Set(0, 0, matrix.Cell{}), matrix.ErrNilMatrix)
	_, err = m.Row(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestShapeAndBoundary checks the (rows+1)×(cols+1) shape and the zero boundary.
func TestShapeAndBoundary(t *testing.T) {
	m := matrix.NewScoreMatrix()
	require.NoError(t, m.Resize(3, 4))
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, 4*5, m.Capacity())

	for j := 0; j <= 4; j++ {
		c, err := m.At(0, j)
		require.NoError(t, err)
		require.Equal(t, int32(0), c.Score)
		require.Equal(t, matrix.Undefined, c.Dir)
	}
	for i := 0; i <= 3; i++ {
		c, err := m.At(i, 0)
		require.NoError(t, err)
		require.Equal(t, int32(0), c.Score)
		require.Equal(t, matrix.Undefined, c.Dir)
	}
}

// TestAtSetOutOfRange ensures At, Set and Row return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := matrix.NewScoreMatrix()
	require.NoError(t, m.Resize(2, 2))

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(3, 0, matrix.Cell{}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, matrix.Cell{}), matrix.ErrOutOfRange)
	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "ScoreMatrix.Row(3,0)")

	// Before the first Resize nothing is addressable.
	_, err = matrix.NewScoreMatrix().At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetAt validates Set followed by At and visibility through Row views.
func TestSetAt(t *testing.T) {
	m := matrix.NewScoreMatrix()
	require.NoError(t, m.Resize(2, 3))

	want := matrix.Cell{Score: 7, Dir: matrix.Diagonal}
	require.NoError(t, m.Set(1, 2, want))
	got, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, want, got)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 4)
	require.Equal(t, want, row[2])
	require.Equal(t, len(row), cap(row), "row views must not reach into the next row")

	row[3] = matrix.Cell{Score: 2, Dir: matrix.Left}
	got, err = m.At(1, 3)
	require.NoError(t, err)
	require.Equal(t, matrix.Left, got.Dir)
}

// TestGrowthOnly verifies that capacity never shrinks and that reallocation
// happens once per distinct increasing size.
func TestGrowthOnly(t *testing.T) {
	m := matrix.NewScoreMatrix()

	require.NoError(t, m.Resize(10, 10))
	require.Equal(t, 1, m.Allocations())
	require.Equal(t, 121, m.Capacity())

	// Smaller and differently shaped requests reuse the buffer.
	for _, shape := range [][2]int{{5, 5}, {1, 59}, {59, 1}, {10, 10}, {0, 0}} {
		require.NoError(t, m.Resize(shape[0], shape[1]))
		require.Equal(t, 1, m.Allocations(), "shape %v should reuse the buffer", shape)
		require.Equal(t, 121, m.Capacity())
		require.Equal(t, shape[0], m.Rows())
		require.Equal(t, shape[1], m.Cols())
	}

	// A larger request grows exactly once.
	require.NoError(t, m.Resize(20, 20))
	require.Equal(t, 2, m.Allocations())
	require.Equal(t, 441, m.Capacity())
	require.NoError(t, m.Resize(20, 20))
	require.Equal(t, 2, m.Allocations())
}

// TestGrowthOnly_CellCountNotShape checks that a thin shape needing one
// cell more than the capacity grows, while one cell fewer does not.
func TestGrowthOnly_CellCountNotShape(t *testing.T) {
	m := matrix.NewScoreMatrix()
	require.NoError(t, m.Resize(10, 10)) // 11*11 = 121 cells

	require.NoError(t, m.Resize(1, 59)) // 2*60 = 120 cells
	require.Equal(t, 1, m.Allocations())
	require.Equal(t, 121, m.Capacity())

	require.NoError(t, m.Resize(1, 60)) // 2*61 = 122 cells
	require.Equal(t, 2, m.Allocations())
	require.Equal(t, 122, m.Capacity())

	require.NoError(t, m.Resize(60, 1))
	require.Equal(t, 2, m.Allocations(), "the transposed shape fits the grown buffer")
}

// TestResizeResetsBoundaryOnReuse ensures stale interior values never leak into
// the boundary row/column of a reshaped matrix.
func TestResizeResetsBoundaryOnReuse(t *testing.T) {
	m := matrix.NewScoreMatrix()
	require.NoError(t, m.Resize(4, 4))
	for i := 1; i <= 4; i++ {
		for j := 1; j <= 4; j++ {
			require.NoError(t, m.Set(i, j, matrix.Cell{Score: 9, Dir: matrix.Up}))
		}
	}

	// Width 3: old interior cells now sit in row 0 and column 0 positions.
	require.NoError(t, m.Resize(5, 2))
	for j := 0; j <= 2; j++ {
		c, err := m.At(0, j)
		require.NoError(t, err)
		require.Equal(t, matrix.Undefined, c.Dir)
		require.Zero(t, c.Score)
	}
	for i := 0; i <= 5; i++ {
		c, err := m.At(i, 0)
		require.NoError(t, err)
		require.Equal(t, matrix.Undefined, c.Dir)
		require.Zero(t, c.Score)
	}
}

// TestDirectionString pins the debug names of each Direction.
func TestDirectionString(t *testing.T) {
	require.Equal(t, "undefined", matrix.Undefined.String())
	require.Equal(t, "diagonal", matrix.Diagonal.String())
	require.Equal(t, "left", matrix.Left.String())
	require.Equal(t, "up", matrix.Up.String())
	require.Equal(t, "invalid", matrix.Direction(9).String())
}

// TestString renders a tiny matrix.
func TestString(t *testing.T) {
	m := matrix.NewScoreMatrix()
	require.NoError(t, m.Resize(1, 2))
	require.NoError(t, m.Set(1, 1, matrix.Cell{Score: 1, Dir: matrix.Diagonal}))
	require.NoError(t, m.Set(1, 2, matrix.Cell{Score: 0, Dir: matrix.Undefined}))
	require.Equal(t, "[0., 0., 0.]\n[0., 1\\, 0.]\n", m.String())
}
