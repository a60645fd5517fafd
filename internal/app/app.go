// Package app wires flags, configuration, input, aligner and output into
// the swalign main loop.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/internal/cli"
	"github.com/katalvlaran/seqalign/internal/cmdutil"
	"github.com/katalvlaran/seqalign/internal/version"
	"github.com/katalvlaran/seqalign/seqio"
	"github.com/katalvlaran/seqalign/sw"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitInconsistent = 1 // traceback reached an undefined cell with positive score
	ExitUsage        = 2 // bad flags or configuration
	ExitIO           = 3 // input or output failure
	ExitInternal     = 4 // any other alignment failure, e.g. sizing the arena
	ExitInterrupted  = 130
)

const progName = "swalign"

// aligner is the part of *sw.Aligner the main loop uses.
type aligner interface {
	Align(a, b []byte) (sw.Result, error)
	Allocations() int
	Capacity() int
}

var newAligner = func(opts sw.Options) (aligner, error) {
	x, err := sw.NewAligner(opts)
	if err != nil {
		return nil, err
	}

	return x, nil
}

// Run executes swalign with a background context.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

// RunContext parses argv, resolves the settings, then aligns every pair read
// from the input and writes one flushed record per pair. Cancellation is
// checked between pairs.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(progName)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()

			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()

		return ExitUsage
	}
	if opts.Version {
		if _, err := fmt.Fprintf(stdout, "%s version %s\n", progName, version.Version); err != nil && !cmdutil.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitIO
		}

		return ExitOK
	}

	level := cmdutil.LevelInfo
	switch {
	case opts.Quiet:
		level = cmdutil.LevelQuiet
	case opts.Trace:
		level = cmdutil.LevelTrace
	}
	log := cmdutil.NewLogger(stderr, level)

	cfg, err := resolveConfig(opts)
	if err != nil {
		log.Error("configuration", "err", err)
		return ExitUsage
	}
	swOpts, err := cfg.Options()
	if err != nil {
		log.Error("configuration", "err", err)
		return ExitUsage
	}
	format, err := seqio.ParseFormat(cfg.Input.Format)
	if err != nil {
		log.Error("configuration", "err", err)
		return ExitUsage
	}
	if opts.Trace {
		swOpts.OnTrace = traceLogger(log)
	}

	x, err := newAligner(swOpts)
	if err != nil {
		log.Error("configuration", "err", err)
		return ExitUsage
	}

	log.Info("starting",
		"match", swOpts.Match, "mismatch", swOpts.Mismatch,
		"gapinit", swOpts.GapInit, "gapext", swOpts.GapExt,
		"gaps", swOpts.Gaps.String(), "band", swOpts.BandWidth,
		"input", string(format), "maxlen", cfg.Input.MaxLen)

	in, err := seqio.Open(opts.InFile, stdin)
	if err != nil {
		log.Error("input", "err", err)
		return ExitIO
	}
	defer func() { _ = in.Close() }()

	src, err := seqio.NewSource(format, in, cfg.Input.MaxLen)
	if err != nil {
		log.Error("input", "err", err)
		return ExitUsage
	}

	return loop(ctx, log, src, x, seqio.NewResultWriter(stdout), cfg.Input.MaxLen)
}

// resolveConfig layers defaults, the YAML file, .env files, the
// environment and explicit flags, then validates the result.
func resolveConfig(opts cli.Options) (*config.Config, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
	}
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err := config.LoadEnv(append([]string{".env"}, opts.EnvFiles...)...); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(nil); err != nil {
		return nil, err
	}
	opts.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loop is read pair → align → write → flush until the input ends.
func loop(ctx context.Context, log *slog.Logger, src seqio.Source, x aligner, out *seqio.ResultWriter, maxLen int) int {
	pairs := 0
	for {
		if err := ctx.Err(); err != nil {
			log.Warn("interrupted", "pairs", pairs)
			return ExitInterrupted
		}

		a, b, err := seqio.ReadPair(src)
		if err != nil {
			if !errors.Is(err, seqio.ErrEndOfInput) {
				log.Error("reading input", "pair", pairs+1, "err", err)
				return ExitIO
			}
			if errors.Is(err, seqio.ErrSequenceTooLong) {
				log.Warn("sequence exceeds maximum length; stopping", "pair", pairs+1, "maxlen", maxLen)
			}
			break
		}

		res, err := x.Align(a, b)
		if err != nil {
			log.Error("alignment failed", "pair", pairs+1, "err", err)
			if errors.Is(err, sw.ErrTracebackInconsistent) {
				return ExitInconsistent
			}

			return ExitInternal
		}

		if err := out.Write(res); err != nil {
			if cmdutil.IsBrokenPipe(err) {
				return ExitOK
			}
			log.Error("writing output", "pair", pairs+1, "err", err)
			return ExitIO
		}
		pairs++
	}

	log.Info("done", "pairs", pairs, "allocations", x.Allocations(), "capacity", x.Capacity())

	return ExitOK
}

// traceLogger emits one debug record per traceback step.
func traceLogger(log *slog.Logger) func(sw.TraceStep) {
	return func(s sw.TraceStep) {
		log.Debug("step",
			"row", s.Row, "row_base", string(s.RowBase),
			"col", s.Col, "col_base", string(s.ColBase),
			"score", s.Score, "dir", s.Dir.String(),
			"mismatch", s.Mismatch)
	}
}
