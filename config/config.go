// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/armaexpected/catalog"
)

// ErrInvalidConfig is returned when a configuration cannot be decoded or
// fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output kinds.
const (
	OutputFiles  = "files"
	OutputBadger = "badger"
	OutputMemory = "memory"
)

// Config is the full generator configuration.
type Config struct {
	Output      Output   `yaml:"output"`
	Catalog     Catalog  `yaml:"catalog"`
	Drivers     []string `yaml:"drivers" validate:"dive,required"`
	Jobs        int      `yaml:"jobs" validate:"gte=1,lte=64"`
	LogLevel    string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	MetricsFile string   `yaml:"metrics_file"`
}

// Output selects where results are persisted.
type Output struct {
	Kind       string `yaml:"kind" validate:"oneof=files badger memory"`
	Path       string `yaml:"path" validate:"required_unless=Kind memory"`
	ArmaHeader bool   `yaml:"arma_header"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// Catalog holds the count samples every shape-dependent class derives from.
type Catalog struct {
	NumElems []int `yaml:"num_elems" validate:"required,min=1,dive,gt=0"`
	NumRows  []int `yaml:"num_rows" validate:"required,min=1,dive,gt=0"`
	NumCols  []int `yaml:"num_cols" validate:"required,min=1,dive,gt=0"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Output: Output{Kind: OutputFiles, Path: "expected"},
		Catalog: Catalog{
			NumElems: []int{1, 2, 25},
			NumRows:  []int{1, 2, 5},
			NumCols:  []int{1, 2, 5},
		},
		Jobs:     1,
		LogLevel: "info",
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Parse decodes YAML from r over Default() and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// CatalogOptions converts the count samples into catalog options.
// Call it on a validated Config; the options panic on empty or
// non-positive counts.
func (c Config) CatalogOptions() []catalog.Option {
	return []catalog.Option{
		catalog.WithNumElems(slices.Clone(c.Catalog.NumElems)...),
		catalog.WithNumRows(slices.Clone(c.Catalog.NumRows)...),
		catalog.WithNumCols(slices.Clone(c.Catalog.NumCols)...),
	}
}

// Level returns the zap level named by LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return lvl, nil
}
