// Package seqio reads sequence pairs from a byte stream and writes
// alignment results in the line-oriented record format.
//
// Input formats:
//   - Dot records (DotReader): a sequence is any number of lines followed by
//     a terminator line whose first byte is '.'. Line endings ("\n" or "\r\n")
//     are stripped and the lines are concatenated verbatim.
//   - FASTA records (FastaReader): a '>' header starts a record; the sequence
//     lines that follow are concatenated until the next header.
//
// Both readers enforce a maximum sequence length. A record that exceeds it is
// drained and reported as ErrSequenceTooLong, so the stream stays aligned on
// record boundaries.
//
// Output format (ResultWriter), one record per aligned pair:
//
//	<score>,<sr>:<er>,<sc>:<ec>,<n>;<sr>:<er>,<sc>:<ec>...
//	.
//
// where the first range pair is the overall span and each ';' group is one
// segment in ascending order. A result without segments is written as the
// literal line "0:0,0:0,0". Every record is flushed as soon as it is written.
//
// Case is preserved on input: the aligner normalizes case itself.
package seqio
