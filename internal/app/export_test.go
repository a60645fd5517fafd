package app

import "github.com/katalvlaran/seqalign/sw"

// Aligner is the aligner interface exported for tests.
type Aligner = aligner

// SetAlignerFactory replaces the aligner constructor and returns a restore func.
func SetAlignerFactory(f func(sw.Options) (Aligner, error)) (restore func()) {
	prev := newAligner
	newAligner = f

	return func() { newAligner = prev }
}
