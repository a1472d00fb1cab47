package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyConfig bounds the grid size difficulty presets pick from.
type DifficultyConfig struct {
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset accepts a preset name, case-insensitively.
// An empty name is DifficultyFixed.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// LevelForPreset returns the difficulty level (0.0 to 1.0) for a preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// SizeFor interpolates a square grid side between MinSize and MaxSize.
func (d DifficultyConfig) SizeFor(level float64) int {
	level = clampF(level, 0.0, 1.0)
	span := float64(d.MaxSize - d.MinSize)
	return d.MinSize + int(math.Round(level*span))
}

// ApplyDifficultyPreset resizes the puzzle for a preset. DifficultyFixed
// keeps the configured width and height. The station is pulled back onto
// the grid when the new size no longer contains it.
func ApplyDifficultyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		return
	}
	side := cfg.Difficulty.SizeFor(LevelForPreset(preset))
	cfg.Puzzle.Width = side
	cfg.Puzzle.Height = side
	if cfg.Puzzle.Station.Col >= side {
		cfg.Puzzle.Station.Col = side - 1
	}
	if cfg.Puzzle.Station.Row >= side {
		cfg.Puzzle.Station.Row = side - 1
	}
}

func clampF(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
