// Package script drives a puzzle from a YAML action list.
//
// A script names the puzzle to build (shape, size, seed, station, bias)
// and the sequence of actions to apply to it. The CLI uses scripts to
// replay games and to record results; tests use them as fixtures.
package script

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wirelight/internal/core"
	"github.com/vovakirdan/wirelight/internal/engine"
	"github.com/vovakirdan/wirelight/internal/registry"
)

// YAMLScript is the on-disk structure of a script file.
type YAMLScript struct {
	Name    string     `yaml:"name"`
	Shape   string     `yaml:"shape"`
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Seed    int64      `yaml:"seed"`
	Station YAMLCell   `yaml:"station"`
	Bias    string     `yaml:"bias,omitempty"`
	Steps   []YAMLStep `yaml:"steps"`
}

// YAMLCell is a cell coordinate in a script.
type YAMLCell struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// YAMLStep is one action line.
type YAMLStep struct {
	Action string    `yaml:"action"`
	Cell   *YAMLCell `yaml:"cell,omitempty"`
	Dir    string    `yaml:"dir,omitempty"`
	Bias   string    `yaml:"bias,omitempty"`
	Times  int       `yaml:"times,omitempty"`
}

// Script is a parsed, validated script.
type Script struct {
	Name     string
	Shape    string
	Config   core.RuntimeConfig
	Bias     engine.BiasPreset
	Steps    []Step
	FilePath string
}

// Step is one resolved action. Dir is only meaningful for ActionMove,
// Cell only for ActionRotate and Bias only for ActionRegenerate.
type Step struct {
	Action core.Action
	Cell   core.Coord
	Dir    core.Dir
	Bias   engine.BiasPreset
	Times  int
}

// ValidationError describes one problem in a script.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Parse decodes and validates a YAML script. Every problem found is
// reported, combined into one error.
func Parse(data []byte) (Script, error) {
	var ys YAMLScript
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	shape := ys.Shape
	if shape == "" {
		shape = "square"
	}

	s := Script{
		Name:  ys.Name,
		Shape: shape,
		Config: core.RuntimeConfig{
			Width:   ys.Width,
			Height:  ys.Height,
			Station: core.C(ys.Station.Col, ys.Station.Row),
			Seed:    ys.Seed,
		},
	}

	var errs error
	topo, err := registry.Create(shape)
	if err != nil {
		errs = multierror.Append(errs, ValidationError{
			Code:    "UNKNOWN_SHAPE",
			Message: fmt.Sprintf("shape %q is not registered", shape),
		})
	}
	if ys.Width < 1 || ys.Height < 1 {
		errs = multierror.Append(errs, ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("size %dx%d must be positive", ys.Width, ys.Height),
		})
	} else if !s.Config.InBounds(s.Config.Station) {
		errs = multierror.Append(errs, ValidationError{
			Code:    "STATION_OUT_OF_BOUNDS",
			Message: fmt.Sprintf("station %v is not on a %dx%d grid", s.Config.Station, ys.Width, ys.Height),
		})
	}
	if s.Bias, err = engine.ParseBiasPreset(ys.Bias); err != nil {
		errs = multierror.Append(errs, ValidationError{Code: "INVALID_BIAS", Message: err.Error()})
	}

	for i, raw := range ys.Steps {
		step, verr := parseStep(raw, topo, s.Config)
		if verr != nil {
			errs = multierror.Append(errs, ValidationError{
				Code:    verr.Code,
				Message: fmt.Sprintf("step %d: %s", i+1, verr.Message),
			})
			continue
		}
		s.Steps = append(s.Steps, step)
	}

	if errs != nil {
		return Script{}, errs
	}
	return s, nil
}

func parseStep(ys YAMLStep, topo registry.Topology, cfg core.RuntimeConfig) (Step, *ValidationError) {
	action, ok := core.ParseAction(ys.Action)
	if !ok || action == core.ActionNone {
		return Step{}, &ValidationError{Code: "UNKNOWN_ACTION", Message: fmt.Sprintf("unknown action %q", ys.Action)}
	}

	step := Step{Action: action, Times: ys.Times}
	if step.Times <= 0 {
		step.Times = 1
	}

	switch action {
	case core.ActionRotate:
		if ys.Cell == nil {
			return Step{}, &ValidationError{Code: "MISSING_CELL", Message: "rotate needs a cell"}
		}
		step.Cell = core.C(ys.Cell.Col, ys.Cell.Row)
		if cfg.Width > 0 && cfg.Height > 0 && !cfg.InBounds(step.Cell) {
			return Step{}, &ValidationError{Code: "CELL_OUT_OF_BOUNDS", Message: fmt.Sprintf("cell %v is off the grid", step.Cell)}
		}
	case core.ActionMove:
		if topo == nil {
			return Step{}, &ValidationError{Code: "UNKNOWN_SHAPE", Message: "cannot resolve a direction without a shape"}
		}
		d, ok := topo.ParseDir(ys.Dir)
		if !ok {
			return Step{}, &ValidationError{Code: "INVALID_DIR", Message: fmt.Sprintf("%s grids have no direction %q", topo.ID(), ys.Dir)}
		}
		step.Dir = d
	case core.ActionRegenerate:
		b, err := engine.ParseBiasPreset(ys.Bias)
		if err != nil {
			return Step{}, &ValidationError{Code: "INVALID_BIAS", Message: err.Error()}
		}
		step.Bias = b
	}
	return step, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
