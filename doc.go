// Package seqalign is a Smith–Waterman local alignment engine for pairs of
// character sequences, plus the swalign command that streams pairs through it.
//
// 🚀 What is inside?
//
//	A small, allocation-conscious toolkit:
//		• matrix/ — growth-only DP arena: one flat cell buffer + row-index table
//		• sw/     — scoring options, fill pass, traceback, Result/Segment types
//		• seqio/  — '.'-terminated and FASTA record readers, result record writer
//		• config/ — YAML settings, .env files and SWALIGN_* environment overrides
//		• cmd/swalign — read pair → align → write record → flush, until input ends
//
// ✨ Behavior in one glance
//
//   - Scores: match / mismatch per pair of bases, 'N' scores 0 against anything,
//     every gap step costs GapInit (flat model, the default) or GapInit to open
//     and GapExt to extend (affine model, opt-in).
//   - Zero floor: no cell goes below 0; the best cell is the last maximum in
//     row-major order.
//   - Traceback keeps only runs of identical characters: mismatches and gaps
//     split the alignment into segments.
//   - One Aligner reuses its arena across pairs; it reallocates only when a
//     pair is larger than every pair before it.
//
// Quick example:
//
//	res, _ := sw.Align([]byte("ACGTCCCTGCA"), []byte("ACGTCCTGCA"), sw.DefaultOptions())
//	fmt.Println(seqio.FormatResult(res))
//
// Command line:
//
//	printf 'ACGT\n.\nACGT\n.\n' | swalign -gapinit -2
//	4,1:4,1:4,1;1:4,1:4
//	.
package seqalign
