package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKitty loads the kitty configuration.
// Search order: customPath -> ~/.arcade/configs/kitty.yaml -> ./configs/kitty.yaml -> embedded default.
// Values missing from a file keep their defaults.
func LoadKitty(customPath string) (KittyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return KittyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseKitty(data)
		if err != nil {
			return KittyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("kitty.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseKitty(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "kitty.yaml")); err == nil {
		if cfg, err := parseKitty(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseKitty(defaultKittyYAML)
	if err != nil {
		return DefaultKittyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseKitty overlays YAML onto the defaults and validates the result.
func parseKitty(data []byte) (KittyConfig, error) {
	cfg := DefaultKittyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return KittyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return KittyConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c KittyConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %vx%v", c.Field.Width, c.Field.Height))
	}
	if c.Actor.Size <= 0 {
		errs = append(errs, fmt.Errorf("actor size must be positive, got %v", c.Actor.Size))
	}
	if c.Physics.MaxFall <= 0 {
		errs = append(errs, fmt.Errorf("max_fall must be positive, got %v", c.Physics.MaxFall))
	}
	if c.Obstacles.SpawnEvery <= 0 || c.Clouds.SpawnEvery <= 0 {
		errs = append(errs, errors.New("spawn_every must be positive"))
	}
	if c.Difficulty.Enabled && c.Difficulty.StepEvery <= 0 {
		errs = append(errs, errors.New("difficulty step_every must be positive when enabled"))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Gap <= 0 {
		errs = append(errs, errors.New("obstacle width and gap must be positive"))
	}
	if c.Input.DebounceMillis < 0 {
		errs = append(errs, fmt.Errorf("debounce_ms must not be negative, got %d", c.Input.DebounceMillis))
	}
	if c.Storage.HighScoreKey == "" {
		errs = append(errs, errors.New("high_score_key must not be empty"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyKittyPreset modifies the config based on a difficulty preset.
func ApplyKittyPreset(cfg *KittyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Physics.BaseSpeed = 1.0
		cfg.Difficulty.SpeedStep = 0.1
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Physics.BaseSpeed = 1.6
		cfg.Difficulty.SpeedStep = 0.2
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
