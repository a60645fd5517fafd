// Package sw computes Smith–Waterman local alignments between two character
// sequences (nucleotide or protein strings).
//
// What is computed?
//
//	The best-scoring local alignment of a (columns) against b (rows): its
//	score, the overall span it covers, and the maximal runs of identical
//	characters ("segments") along the alignment path.
//
// Algorithm outline:
//  1. Uppercase both sequences, size the (len(b)+1)×(len(a)+1) arena.
//  2. Fill row by row: H(i,j) = max(0, diagonal, up, left) with
//     diagonal = H(i-1,j-1) + pair score, up/left = neighbour + gap penalty.
//     A pair involving the unknown base ('N') scores 0.
//     Ties: diagonal beats gaps, left beats up.
//  3. Track the running maximum with >=, so among equal maxima the last cell
//     in row-major order becomes the traceback start.
//  4. Walk back from that cell until a zero score, opening a segment on
//     every identical pair and closing it on the first difference or gap step.
//
// Gap models:
//   - FlatGaps (default): every gap step costs GapInit; GapExt is accepted
//     but not used. This reproduces the historical output of the tool.
//   - AffineGaps: Gotoh recurrence, GapInit to open and GapExt to extend.
//     The two models diverge on any gap longer than one base.
//
// Usage:
//
//	al, err := sw.NewAligner(sw.DefaultOptions())
//	if err != nil { ... }
//	for each pair {
//		res, err := al.Align(a, b) // the arena is reused across calls
//	}
//
// Complexity:
//
//   - Time:   O(len(a)·len(b)) per pair (O(len(b)·band) cells scored with BandWidth > 0)
//   - Memory: O(len(a)·len(b)) cells, reused and grown only.
//
// An Aligner is not safe for concurrent use; one goroutine owns it.
package sw
