// Package matrix owns the dynamic-programming arena used by local alignment.
//
// The matrix package provides:
//
//   - Cell: one DP entry (score + predecessor direction, plus gap bookkeeping
//     for the affine recurrence).
//   - ScoreMatrix: a flat, row-major buffer of Cells with a row-index table,
//     sized (rows+1)×(cols+1) for a pair of sequences of length rows and cols.
//
// The buffer only grows. Resize reuses the previous allocation whenever its
// capacity already covers the requested shape, so a long stream of sequence
// pairs costs one allocation per distinct, increasing matrix size rather than
// one per pair.
//
// All public accessors are bounds-checked and return ErrOutOfRange instead of
// panicking. The package performs no scoring logic; see package sw.
//
// A ScoreMatrix is not safe for concurrent use.
package matrix
