// Package config provides YAML-based configuration loading and difficulty
// presets for wirelight.
package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/engine"
	"github.com/vovakirdan/wirelight/internal/registry"
)

// Config contains all configuration for the CLI.
type Config struct {
	Puzzle     PuzzleConfig     `yaml:"puzzle"`
	Bias       BiasConfig       `yaml:"bias"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// PuzzleConfig defines the grid a puzzle is built on.
type PuzzleConfig struct {
	Shape   string        `yaml:"shape"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Station StationConfig `yaml:"station"`
	Seed    int64         `yaml:"seed"` // 0 = random based on time
}

// StationConfig is the power station's starting cell.
type StationConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// BiasConfig skews spanning tree generation towards one axis.
// Non-zero Horizontal/Vertical maxima override the preset.
type BiasConfig struct {
	Preset     string `yaml:"preset"` // "none", "horizontal" or "vertical"
	Horizontal int    `yaml:"horizontal"`
	Vertical   int    `yaml:"vertical"`
}

// StorageConfig locates the run database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // auto, text, logfmt, json
}

// Runtime converts the puzzle section to engine parameters.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		Width:   c.Puzzle.Width,
		Height:  c.Puzzle.Height,
		Station: core.C(c.Puzzle.Station.Col, c.Puzzle.Station.Row),
		Seed:    c.Puzzle.Seed,
	}
}

// EngineBias resolves the bias section for the configured grid size.
func (c Config) EngineBias() (engine.Bias, error) {
	preset, err := engine.ParseBiasPreset(c.Bias.Preset)
	if err != nil {
		return engine.Bias{}, err
	}
	b := preset.For(c.Puzzle.Width, c.Puzzle.Height)
	if c.Bias.Horizontal > 0 {
		b.Horizontal = c.Bias.Horizontal
	}
	if c.Bias.Vertical > 0 {
		b.Vertical = c.Bias.Vertical
	}
	return b, nil
}

// ValidationError describes one invalid setting.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks every section and reports all problems at once.
func (c Config) Validate() error {
	var errs error

	if !registry.Exists(c.Puzzle.Shape) {
		errs = multierror.Append(errs, ValidationError{
			Code:    "UNKNOWN_SHAPE",
			Message: fmt.Sprintf("puzzle.shape %q is not registered", c.Puzzle.Shape),
		})
	}
	rc := c.Runtime()
	if rc.Width < 1 || rc.Height < 1 {
		errs = multierror.Append(errs, ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("puzzle size %dx%d must be positive", rc.Width, rc.Height),
		})
	} else if !rc.InBounds(rc.Station) {
		errs = multierror.Append(errs, ValidationError{
			Code:    "STATION_OUT_OF_BOUNDS",
			Message: fmt.Sprintf("puzzle.station %v is not on a %dx%d grid", rc.Station, rc.Width, rc.Height),
		})
	}
	if _, err := c.EngineBias(); err != nil {
		errs = multierror.Append(errs, ValidationError{Code: "INVALID_BIAS", Message: err.Error()})
	}
	if c.Bias.Horizontal < 0 || c.Bias.Vertical < 0 {
		errs = multierror.Append(errs, ValidationError{
			Code:    "INVALID_BIAS",
			Message: "bias maxima cannot be negative",
		})
	}
	if c.Difficulty.MinSize < 1 || c.Difficulty.MaxSize < c.Difficulty.MinSize {
		errs = multierror.Append(errs, ValidationError{
			Code:    "INVALID_DIFFICULTY",
			Message: fmt.Sprintf("difficulty sizes %d..%d are not a valid range", c.Difficulty.MinSize, c.Difficulty.MaxSize),
		})
	}
	switch c.Log.Format {
	case "", "auto", "text", "logfmt", "json":
	default:
		errs = multierror.Append(errs, ValidationError{
			Code:    "INVALID_LOG_FORMAT",
			Message: fmt.Sprintf("log.format %q is not one of auto, text, logfmt, json", c.Log.Format),
		})
	}

	return errs
}
