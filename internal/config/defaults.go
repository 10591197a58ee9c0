package config

import (
	_ "embed"
)

//go:embed defaults/kitty.yaml
var defaultKittyYAML []byte

// DefaultKittyConfig returns the built-in kitty configuration.
func DefaultKittyConfig() KittyConfig {
	return KittyConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:     0.32,
			JumpImpulse: -6.8,
			MaxFall:     7.5,
			BaseSpeed:   1.2,
		},
		Actor: ActorConfig{
			X:    80,
			Y:    200,
			Size: 80,
		},
		Obstacles: ObstacleConfig{
			Width:      50,
			Gap:        160,
			SpawnEvery: 160,
			TopMin:     40,
			TopRange:   200,
		},
		Clouds: CloudConfig{
			SpawnEvery:   220,
			EntryOffset:  40,
			YMin:         20,
			YRange:       180,
			SizeMin:      80,
			SizeRange:    80,
			SpeedMin:     0.3,
			SpeedRange:   0.6,
			OpacityMin:   0.4,
			OpacityRange: 0.4,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			StepEvery: 600,
			SpeedStep: 0.15,
		},
		Input: InputConfig{
			DebounceMillis: 120,
		},
		Storage: StorageConfig{
			HighScoreKey: "kittyHigh",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultKittyYAML
}
