package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/config"
	"github.com/katalvlaran/seqalign/seqio"
	"github.com/katalvlaran/seqalign/sw"
)

// envMap adapts a map to the ApplyEnv lookup signature.
func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swalign.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring:\n  match: 2\n  gap_init: 0\n  gaps: \"\"\ninput:\n  format: fasta\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Scoring.Match)
	assert.Equal(t, 0, cfg.Scoring.GapInit, "an explicit zero is kept")
	assert.Equal(t, sw.DefaultMismatch, cfg.Scoring.Mismatch)
	assert.Equal(t, "flat", cfg.Scoring.Gaps, "empty gap model falls back to flat")
	assert.Equal(t, "fasta", cfg.Input.Format)
	assert.Equal(t, seqio.DefaultMaxLen, cfg.Input.MaxLen)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scoring: [1, 2"), 0o644))
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "swalign.yaml")
	cfg := config.Default()
	cfg.Scoring.Gaps = "affine"
	cfg.Scoring.Band = 16

	require.NoError(t, config.Save(path, cfg))
	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestApplyEnv(t *testing.T) {
	cfg := config.Default()
	err := cfg.ApplyEnv(envMap(map[string]string{
		config.EnvMatch:  "3",
		config.EnvGapExt: " -1 ",
		config.EnvGaps:   "affine",
		config.EnvBand:   "",
		config.EnvMaxLen: "64",
		config.EnvInput:  "fasta",
		"SWALIGN_UNUSED": "x",
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Scoring.Match)
	assert.Equal(t, -1, cfg.Scoring.GapExt)
	assert.Equal(t, sw.DefaultGapInit, cfg.Scoring.GapInit)
	assert.Equal(t, "affine", cfg.Scoring.Gaps)
	assert.Equal(t, 0, cfg.Scoring.Band)
	assert.Equal(t, 64, cfg.Input.MaxLen)
	assert.Equal(t, "fasta", cfg.Input.Format)
}

func TestApplyEnv_NotAnInteger(t *testing.T) {
	cfg := config.Default()
	err := cfg.ApplyEnv(envMap(map[string]string{config.EnvMismatch: "minus one"}))
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), config.EnvMismatch)
}

func TestApplyEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv(config.EnvGapInit, "-5")
	cfg := config.Default()
	require.NoError(t, cfg.ApplyEnv(nil))
	assert.Equal(t, -5, cfg.Scoring.GapInit)
}

func TestLoadEnv(t *testing.T) {
	const key = "SWALIGN_LOADENV_TEST"
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-file\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	require.NoError(t, config.LoadEnv(path, filepath.Join(t.TempDir(), "missing.env")))
	assert.Equal(t, "from-file", os.Getenv(key))
}

func TestOptions(t *testing.T) {
	cfg := config.Default()
	opts, err := cfg.Options()
	require.NoError(t, err)

	want := sw.DefaultOptions()
	assert.Equal(t, want.Match, opts.Match)
	assert.Equal(t, want.Mismatch, opts.Mismatch)
	assert.Equal(t, want.GapInit, opts.GapInit)
	assert.Equal(t, want.GapExt, opts.GapExt)
	assert.Equal(t, want.Gaps, opts.Gaps)
	assert.Equal(t, want.Unknown, opts.Unknown)
	assert.Equal(t, 0, opts.BandWidth)

	cfg.Scoring.Unknown = ""
	opts, err = cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, byte(0), opts.Unknown)
}

func TestValidate(t *testing.T) {
	require.NoError(t, config.Default().Validate())

	cases := map[string]func(*config.Config){
		"gap model":       func(c *config.Config) { c.Scoring.Gaps = "convex" },
		"unknown length":  func(c *config.Config) { c.Scoring.Unknown = "NN" },
		"unknown case":    func(c *config.Config) { c.Scoring.Unknown = "n" },
		"affine positive": func(c *config.Config) { c.Scoring.Gaps, c.Scoring.GapExt = "affine", 2 },
		"negative band":   func(c *config.Config) { c.Scoring.Band = -1 },
		"huge match":      func(c *config.Config) { c.Scoring.Match = 1 << 20 },
		"input format":    func(c *config.Config) { c.Input.Format = "xml" },
		"max len":         func(c *config.Config) { c.Input.MaxLen = -3 },
		"score overflow":  func(c *config.Config) { c.Scoring.Match = 1 << 12 },
		"gap overflow":    func(c *config.Config) { c.Scoring.GapInit = -(1 << 12) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	// the same scores are safe once max_len keeps the path short
	cfg := config.Default()
	cfg.Scoring.Match, cfg.Input.MaxLen = 1<<12, 1<<10
	require.NoError(t, cfg.Validate())
}
