// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All methods MUST return these sentinels (optionally wrapped with method and
// coordinates) and tests MUST check them via errors.Is. No method panics on a
// user-triggered error condition.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is invalid (negative rows or cols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the current shape.
	// Public indexers (At/Set/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *ScoreMatrix receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Method tags used in error wrappers.
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRow    = "Row"
	ctxResize = "Resize"
)

// matrixErrorf wraps a sentinel with a uniform ScoreMatrix context and callsite indices.
// Stable message shape: "ScoreMatrix.<method>(row,col): <sentinel>".
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("ScoreMatrix.%s(%d,%d): %w", method, row, col, err)
}
