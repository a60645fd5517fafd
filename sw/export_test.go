package sw

import "github.com/katalvlaran/seqalign/matrix"

// SetCell overwrites one arena cell so tests can simulate a corrupted matrix.
func SetCell(x *Aligner, row, col int, c matrix.Cell) error {
	return x.m.Set(row, col, c)
}
