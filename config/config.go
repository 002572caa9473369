// Package config holds the run configuration of the tourlab command.
//
// A Config starts from Default, is optionally overlaid with a YAML file
// (Load, LoadFile) and finally with command-line flags. Validate checks
// the result before anything runs.
//
// File format (every key optional):
//
//	cities: 10
//	width: 900
//	height: 600
//	seed: 42
//	samples: 0
//	repeat: 1
//	algorithms: [exhaustive, repeated_nn]
//	fixture: ""
//	cities_file: ""
//	plot_dir: ""
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig reports a configuration that cannot be decoded or used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config describes one tourlab run.
type Config struct {
	// Cities, Width, Height and Seed describe a generated city set. They are
	// ignored when Fixture or CitiesFile is set.
	Cities int     `mapstructure:"cities"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Seed   int64   `mapstructure:"seed"`

	// Samples is the number of start cities of the sampled multi-start search;
	// 0 means every city.
	Samples int `mapstructure:"samples"`

	// Repeat > 1 benchmarks over that many generated instances.
	Repeat int `mapstructure:"repeat"`

	Algorithms []string `mapstructure:"algorithms"`

	Fixture    string `mapstructure:"fixture"`
	CitiesFile string `mapstructure:"cities_file"`
	PlotDir    string `mapstructure:"plot_dir"`
}

// Default returns the configuration used when nothing else is given.
func Default() Config {
	return Config{
		Cities:     8,
		Width:      900,
		Height:     600,
		Seed:       42,
		Samples:    0,
		Repeat:     1,
		Algorithms: []string{"exhaustive", "repeated_nn", "nn"},
	}
}

// Load overlays the YAML document read from r onto Default.
// Unknown keys are rejected.
//
// Errors: ErrInvalidConfig wrapping the decoder error.
func Load(r io.Reader) (Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	var doc map[string]any
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg := Default()
	if len(doc) == 0 {
		return cfg, nil
	}
	// ZeroFields replaces list values instead of merging them element-wise.
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		ZeroFields:  true,
		Result:      &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err = dec.Decode(doc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// LoadFile is Load on the file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Fixture == "" && c.CitiesFile == "" && c.Cities < 1:
		return fmt.Errorf("%w: cities must be positive, got %d", ErrInvalidConfig, c.Cities)
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("%w: board must be positive, got %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.Samples < 0:
		return fmt.Errorf("%w: samples must not be negative, got %d", ErrInvalidConfig, c.Samples)
	case c.Repeat < 1:
		return fmt.Errorf("%w: repeat must be at least 1, got %d", ErrInvalidConfig, c.Repeat)
	case len(c.Algorithms) == 0:
		return fmt.Errorf("%w: no algorithms selected", ErrInvalidConfig)
	case c.Repeat > 1 && (c.Fixture != "" || c.CitiesFile != ""):
		return fmt.Errorf("%w: repeat needs generated cities", ErrInvalidConfig)
	}

	sorted := slices.Clone(c.Algorithms)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(c.Algorithms) {
		return fmt.Errorf("%w: algorithms listed twice: %v", ErrInvalidConfig, c.Algorithms)
	}

	return nil
}
