package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg KittyConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultKittyConfig(), cfg)
}

func TestLoadKittyCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 0.5\n"), 0o600))

	cfg, err := LoadKitty(path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Physics.Gravity)
	// Untouched values keep their defaults
	assert.Equal(t, -6.8, cfg.Physics.JumpImpulse)
	assert.Equal(t, 160, cfg.Obstacles.SpawnEvery)
	assert.Equal(t, "kittyHigh", cfg.Storage.HighScoreKey)
}

func TestLoadKittyMissingCustomPath(t *testing.T) {
	_, err := LoadKitty(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadKittyRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("obstacles:\n  spawn_every: 0\n"), 0o600))

	_, err := LoadKitty(path)
	assert.Error(t, err)
}

func TestApplyKittyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		baseSpeed float64
		enabled   bool
	}{
		{DifficultyEasy, 1.0, true},
		{DifficultyNormal, 1.2, true},
		{DifficultyHard, 1.6, true},
		{DifficultyFixed, 1.2, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultKittyConfig()
			ApplyKittyPreset(&cfg, tc.preset)
			assert.Equal(t, tc.baseSpeed, cfg.Physics.BaseSpeed)
			assert.Equal(t, tc.enabled, cfg.Difficulty.Enabled)
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, ok := ParsePreset("")
	assert.True(t, ok)
	assert.Equal(t, DifficultyNormal, p)

	p, ok = ParsePreset("hard")
	assert.True(t, ok)
	assert.Equal(t, DifficultyHard, p)

	_, ok = ParsePreset("insane")
	assert.False(t, ok)
}

func TestDifficultySpeedIsStepwise(t *testing.T) {
	d := NewDifficultyManager(DefaultKittyConfig().Difficulty)

	assert.Equal(t, 1.2, d.Speed(1.2, 0))
	assert.Equal(t, 1.2, d.Speed(1.2, 599))
	assert.InDelta(t, 1.35, d.Speed(1.2, 600), 1e-9)
	assert.InDelta(t, 1.35, d.Speed(1.2, 1199), 1e-9)
	assert.InDelta(t, 1.5, d.Speed(1.2, 1200), 1e-9)

	assert.True(t, d.IsStep(600))
	assert.False(t, d.IsStep(601))
	assert.False(t, d.IsStep(0))

	prev := d.Speed(1.2, 0)
	for frame := 1; frame <= 5000; frame++ {
		s := d.Speed(1.2, frame)
		require.GreaterOrEqual(t, s, prev, "speed decreased at frame %d", frame)
		prev = s
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: false, StepEvery: 600, SpeedStep: 0.15})
	assert.False(t, d.IsEnabled())
	assert.Equal(t, 2.0, d.Speed(2.0, 100000))
	assert.False(t, d.IsStep(600))
}

func TestValidateRejectsZeroIntervals(t *testing.T) {
	require.NoError(t, DefaultKittyConfig().Validate())

	cfg := DefaultKittyConfig()
	cfg.Obstacles.SpawnEvery = 0
	assert.ErrorContains(t, cfg.Validate(), "spawn_every")

	cfg = DefaultKittyConfig()
	cfg.Difficulty.StepEvery = 0
	assert.ErrorContains(t, cfg.Validate(), "step_every")

	cfg.Difficulty.Enabled = false
	assert.NoError(t, cfg.Validate())
}
