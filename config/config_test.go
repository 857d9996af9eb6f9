// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/armaexpected/catalog"
	"github.com/katalvlaran/armaexpected/config"
	"github.com/katalvlaran/armaexpected/sample"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, config.OutputFiles, cfg.Output.Kind)
	require.Equal(t, []int{1, 2, 25}, cfg.Catalog.NumElems)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, lvl)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader(`
output:
  kind: badger
  path: /tmp/expected.db
catalog:
  num_rows: [3]
drivers: [GenMatNormal]
jobs: 4
log_level: debug
`))
	require.NoError(t, err)
	require.Equal(t, config.OutputBadger, cfg.Output.Kind)
	require.Equal(t, []int{3}, cfg.Catalog.NumRows)
	require.Equal(t, []int{1, 2, 5}, cfg.Catalog.NumCols)
	require.Equal(t, []string{"GenMatNormal"}, cfg.Drivers)
	require.Equal(t, 4, cfg.Jobs)

	seq, err := catalog.New(cfg.CatalogOptions()...).Generate(catalog.ExtRowInd)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "1", "2", "3"}, sample.Labels(seq))
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"unknown key":     "colour: blue\n",
		"bad kind":        "output: {kind: s3, path: x}\n",
		"missing path":    "output: {kind: files, path: \"\"}\n",
		"zero count":      "catalog: {num_rows: [0]}\n",
		"empty counts":    "catalog: {num_cols: []}\n",
		"jobs":            "jobs: 0\n",
		"log level":       "log_level: loud\n",
		"empty driver":    "drivers: [\"\"]\n",
		"not yaml at all": "output: [\n",
	} {
		_, err := config.Parse(strings.NewReader(doc))
		require.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestParse_MemoryNeedsNoPath(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(strings.NewReader("output: {kind: memory, path: \"\"}\n"))
	require.NoError(t, err)
	require.Equal(t, config.OutputMemory, cfg.Output.Kind)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "armaexpected.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: 2\n"), 0o600))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Jobs)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
