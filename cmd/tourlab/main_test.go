package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/tourlab/cities"
	"github.com/katalvlaran/tourlab/config"
	"github.com/katalvlaran/tourlab/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(context.Background(), args, &out)

	return out.String(), err
}

func TestRun_Fixture(t *testing.T) {
	out, err := runArgs(t, "--fixture", "triangle345", "--algorithms", "exhaustive,nn")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "exhaustive: 3 city tour with length 12.0 in "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "nn: 3 city tour with length 12.0 in "), lines[1])
}

func TestRun_Generated(t *testing.T) {
	out, err := runArgs(t, "--cities", "7", "--seed", "3", "--algorithms", "repeated_nn,sampled_nn", "--samples", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "repeated_nn: 7 city tour")
	assert.Contains(t, out, "sampled_nn: 7 city tour")
}

func TestRun_CitiesFileBeatsFixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cities:\n  - {x: 0, y: 0}\n  - {x: 1, y: 0}\n"), 0o644))

	out, err := runArgs(t, "--cities-file", path, "--fixture", "square", "--algorithms", "nn")
	require.NoError(t, err)
	assert.Contains(t, out, "nn: 2 city tour with length 2.0")
}

func TestRun_Repeat(t *testing.T) {
	out, err := runArgs(t, "--cities", "6", "--repeat", "3", "--algorithms", "exhaustive,nn")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "exhaustive"))
	assert.True(t, strings.HasPrefix(lines[2], "nn"))
}

func TestRun_PlotDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")

	_, err := runArgs(t, "--fixture", "square", "--algorithms", "exhaustive,nn", "--plot-dir", dir)
	require.NoError(t, err)

	for _, name := range []string{"exhaustive.html", "nn.html"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(b), "on square")
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := runArgs(t, "--algorithms", "annealing")
	require.ErrorIs(t, err, report.ErrUnknownAlgorithm)

	_, err = runArgs(t, "--fixture", "atlantis")
	require.ErrorIs(t, err, cities.ErrUnknownFixture)

	_, err = runArgs(t, "--repeat", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = runArgs(t, "--no-such-flag")
	require.Error(t, err)
}

func TestParseConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cities: 11\nseed: 5\nalgorithms: [nn]\n"), 0o644))

	cfg, err := parseConfig([]string{"--config", path, "--seed", "9"})
	require.NoError(t, err)
	assert.Equal(t, 11, cfg.Cities, "from file")
	assert.Equal(t, int64(9), cfg.Seed, "flag wins")
	assert.Equal(t, []string{"nn"}, cfg.Algorithms, "from file")
	assert.Equal(t, config.Default().Width, cfg.Width, "default")

	_, err = parseConfig([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
