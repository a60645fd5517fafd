package cli

import (
	"flag"
	"fmt"

	"github.com/katalvlaran/seqalign/internal/version"
)

// NewFlagSet returns a ContinueOnError FlagSet with the program usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: Smith-Waterman local alignment of sequence pairs

Version: %s

Reads pairs of sequences from stdin (or -in FILE) and writes one
"score,span,count;segments" record per pair, each followed by a "." line.

Settings are layered: defaults < -config FILE < SWALIGN_* environment
(and .env files) < flags.

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}

	return fs
}
