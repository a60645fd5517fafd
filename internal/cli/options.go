package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/config"
)

// Options holds every CLI flag.
type Options struct {
	// Scoring
	Match    int
	Mismatch int
	GapInit  int
	GapExt   int
	Gaps     string
	Band     int

	// Input
	Input  string
	InFile string
	MaxLen int

	// Settings sources
	ConfigFile string
	EnvFiles   []string

	// Diagnostics
	Trace   bool
	Quiet   bool
	Version bool

	set map[string]bool // flags given explicitly on the command line
}

// IsSet reports whether the named flag appeared on the command line.
func (o Options) IsSet(name string) bool { return o.set[name] }

// ParseArgs registers and parses all flags, returns an Options struct.
// Scoring defaults shown in -h are the built-in ones; a flag only overrides
// the configuration when it is given explicitly.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	def := config.Default()
	var opt Options
	var help bool

	fs.IntVar(&opt.Match, "match", def.Scoring.Match, "score for identical characters")
	fs.IntVar(&opt.Mismatch, "mismatch", def.Scoring.Mismatch, "score for different characters")
	fs.IntVar(&opt.GapInit, "gapinit", def.Scoring.GapInit, "gap penalty (every gap step under flat gaps; gap opening under affine)")
	fs.IntVar(&opt.GapExt, "gapext", def.Scoring.GapExt, "gap extension penalty (affine gaps only)")
	fs.StringVar(&opt.Gaps, "gaps", def.Scoring.Gaps, "gap model: flat | affine")
	fs.IntVar(&opt.Band, "band", def.Scoring.Band, "score only cells with |row-col| <= N (0 = full matrix)")

	fs.StringVar(&opt.Input, "input", def.Input.Format, "input record format: dot | fasta")
	fs.StringVar(&opt.InFile, "in", "-", "input file ('-' = stdin; .gz accepted)")
	fs.IntVar(&opt.MaxLen, "maxlen", def.Input.MaxLen, "maximum sequence length; a longer record ends the run")

	fs.StringVar(&opt.ConfigFile, "config", "", "YAML settings file")
	var env stringSlice
	fs.Var(&env, "env", "extra .env file (repeatable; ./.env is always tried)")

	fs.BoolVar(&opt.Trace, "trace", false, "log every traceback step to stderr")
	fs.BoolVar(&opt.Quiet, "quiet", false, "log errors only")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit")
	fs.BoolVar(&help, "h", false, "show this help message")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.EnvFiles = env
	opt.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = true })

	// Validation
	if fs.NArg() > 0 {
		return opt, fmt.Errorf("unexpected argument %q (use -in FILE to read a file)", fs.Arg(0))
	}
	if opt.Trace && opt.Quiet {
		return opt, errors.New("-trace conflicts with -quiet")
	}
	if opt.InFile == "" {
		return opt, errors.New("-in must not be empty")
	}

	return opt, nil
}

// Apply writes the explicitly given flags over cfg.
func (o Options) Apply(cfg *config.Config) {
	ints := []struct {
		name string
		src  int
		dst  *int
	}{
		{"match", o.Match, &cfg.Scoring.Match},
		{"mismatch", o.Mismatch, &cfg.Scoring.Mismatch},
		{"gapinit", o.GapInit, &cfg.Scoring.GapInit},
		{"gapext", o.GapExt, &cfg.Scoring.GapExt},
		{"band", o.Band, &cfg.Scoring.Band},
		{"maxlen", o.MaxLen, &cfg.Input.MaxLen},
	}
	for _, f := range ints {
		if o.set[f.name] {
			*f.dst = f.src
		}
	}
	if o.set["gaps"] {
		cfg.Scoring.Gaps = o.Gaps
	}
	if o.set["input"] {
		cfg.Input.Format = o.Input
	}
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
