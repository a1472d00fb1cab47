package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDifficultyPreset(t *testing.T) {
	for in, want := range map[string]DifficultyPreset{
		"":       DifficultyFixed,
		"easy":   DifficultyEasy,
		" Hard ": DifficultyHard,
		"NORMAL": DifficultyNormal,
		"fixed":  DifficultyFixed,
	} {
		got, err := ParseDifficultyPreset(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseDifficultyPreset("nightmare")
	assert.Error(t, err)
}

func TestSizeFor(t *testing.T) {
	d := DifficultyConfig{MinSize: 4, MaxSize: 16}
	assert.Equal(t, 4, d.SizeFor(LevelForPreset(DifficultyEasy)))
	assert.Equal(t, 8, d.SizeFor(LevelForPreset(DifficultyNormal)))
	assert.Equal(t, 12, d.SizeFor(LevelForPreset(DifficultyHard)))
	assert.Equal(t, 16, d.SizeFor(1.5), "level is clamped")
	assert.Equal(t, 4, d.SizeFor(-1))
}

func TestApplyDifficultyPreset(t *testing.T) {
	cfg := Default()
	cfg.Puzzle.Width, cfg.Puzzle.Height = 9, 7
	cfg.Puzzle.Station = StationConfig{Col: 6, Row: 5}

	ApplyDifficultyPreset(&cfg, DifficultyFixed)
	assert.Equal(t, 9, cfg.Puzzle.Width)
	assert.Equal(t, 7, cfg.Puzzle.Height)

	ApplyDifficultyPreset(&cfg, DifficultyEasy)
	assert.Equal(t, 4, cfg.Puzzle.Width)
	assert.Equal(t, 4, cfg.Puzzle.Height)
	assert.Equal(t, StationConfig{Col: 3, Row: 3}, cfg.Puzzle.Station, "station clamped onto the smaller grid")
	assert.NoError(t, cfg.Validate())
}
