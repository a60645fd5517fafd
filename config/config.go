// Package config loads per-run alignment settings from a YAML file, a .env
// file and SWALIGN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqalign/seqio"
	"github.com/katalvlaran/seqalign/sw"
)

// ErrInvalid wraps every configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Environment variables consulted by ApplyEnv.
const (
	EnvMatch    = "SWALIGN_MATCH"
	EnvMismatch = "SWALIGN_MISMATCH"
	EnvGapInit  = "SWALIGN_GAPINIT"
	EnvGapExt   = "SWALIGN_GAPEXT"
	EnvGaps     = "SWALIGN_GAPS"
	EnvBand     = "SWALIGN_BAND"
	EnvMaxLen   = "SWALIGN_MAXLEN"
	EnvInput    = "SWALIGN_INPUT"
)

// ScoringConfig holds the pair scores and gap penalties.
type ScoringConfig struct {
	Match    int    `yaml:"match"`
	Mismatch int    `yaml:"mismatch"`
	GapInit  int    `yaml:"gap_init"`
	GapExt   int    `yaml:"gap_ext"`
	Gaps     string `yaml:"gaps"`
	Unknown  string `yaml:"unknown"`
	Band     int    `yaml:"band"`
}

// InputConfig selects the record format and the sequence length cap.
type InputConfig struct {
	Format string `yaml:"format"`
	MaxLen int    `yaml:"max_len"`
}

// Config is the root configuration structure.
type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Input   InputConfig   `yaml:"input"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			Match:    sw.DefaultMatch,
			Mismatch: sw.DefaultMismatch,
			GapInit:  sw.DefaultGapInit,
			GapExt:   sw.DefaultGapExt,
			Gaps:     sw.FlatGaps.String(),
			Unknown:  string(rune(sw.DefaultUnknown)),
		},
		Input: InputConfig{Format: string(seqio.FormatDot), MaxLen: seqio.DefaultMaxLen},
	}
}

// Load reads a config from path on top of the defaults.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(cfg)

	return cfg, nil
}

// Save writes cfg to path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills settings an explicit empty value would leave unusable.
func applyDefaults(cfg *Config) {
	if cfg.Scoring.Gaps == "" {
		cfg.Scoring.Gaps = sw.FlatGaps.String()
	}
	if cfg.Input.Format == "" {
		cfg.Input.Format = string(seqio.FormatDot)
	}
	if cfg.Input.MaxLen == 0 {
		cfg.Input.MaxLen = seqio.DefaultMaxLen
	}
}

// LoadEnv loads .env style files into the process environment without
// overriding variables already set. With no arguments it reads ./.env.
// Missing files are not an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides cfg with the SWALIGN_* variables found by lookup.
// A nil lookup uses os.LookupEnv.
func (cfg *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	ints := []struct {
		key string
		dst *int
	}{
		{EnvMatch, &cfg.Scoring.Match},
		{EnvMismatch, &cfg.Scoring.Mismatch},
		{EnvGapInit, &cfg.Scoring.GapInit},
		{EnvGapExt, &cfg.Scoring.GapExt},
		{EnvBand, &cfg.Scoring.Band},
		{EnvMaxLen, &cfg.Input.MaxLen},
	}
	for _, e := range ints {
		v, ok := lookup(e.key)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, e.key, v)
		}
		*e.dst = n
	}
	if v, ok := lookup(EnvGaps); ok && v != "" {
		cfg.Scoring.Gaps = v
	}
	if v, ok := lookup(EnvInput); ok && v != "" {
		cfg.Input.Format = v
	}

	return nil
}

// Options converts the scoring section into aligner options.
func (cfg *Config) Options() (sw.Options, error) {
	gaps, err := sw.ParseGapModel(cfg.Scoring.Gaps)
	if err != nil {
		return sw.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	var unknown byte
	switch len(cfg.Scoring.Unknown) {
	case 0:
	case 1:
		unknown = cfg.Scoring.Unknown[0]
	default:
		return sw.Options{}, fmt.Errorf("%w: unknown base %q must be a single character", ErrInvalid, cfg.Scoring.Unknown)
	}

	opts := sw.Options{
		Match:     cfg.Scoring.Match,
		Mismatch:  cfg.Scoring.Mismatch,
		GapInit:   cfg.Scoring.GapInit,
		GapExt:    cfg.Scoring.GapExt,
		Gaps:      gaps,
		Unknown:   unknown,
		BandWidth: cfg.Scoring.Band,
	}
	if err := opts.Validate(); err != nil {
		return sw.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return opts, nil
}

// Validate reports the first unusable setting.
func (cfg *Config) Validate() error {
	if _, err := cfg.Options(); err != nil {
		return err
	}
	if _, err := seqio.ParseFormat(cfg.Input.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if cfg.Input.MaxLen <= 0 {
		return fmt.Errorf("%w: max_len=%d must be > 0", ErrInvalid, cfg.Input.MaxLen)
	}
	// a path through the matrix has at most 2*max_len steps
	peak := int64(0)
	for _, v := range []int{cfg.Scoring.Match, cfg.Scoring.Mismatch, cfg.Scoring.GapInit, cfg.Scoring.GapExt} {
		if v < 0 {
			v = -v
		}
		peak = max(peak, int64(v))
	}
	if peak*2*int64(cfg.Input.MaxLen) > math.MaxInt32 {
		return fmt.Errorf("%w: scores up to %d over max_len=%d can overflow a cell", ErrInvalid, peak, cfg.Input.MaxLen)
	}

	return nil
}
