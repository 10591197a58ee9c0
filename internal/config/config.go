// Package config provides YAML-based game configuration loading and
// difficulty management for the kitty game.
package config

// KittyConfig contains all tuning for the kitty game.
type KittyConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Clouds     CloudConfig      `yaml:"clouds"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Input      InputConfig      `yaml:"input"`
	Storage    StorageConfig    `yaml:"storage"`
}

// FieldConfig is the size of the visible play field in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the per-tick physics parameters.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative = up
	MaxFall     float64 `yaml:"max_fall"`
	BaseSpeed   float64 `yaml:"base_speed"` // obstacle speed at frame 0
}

// ActorConfig defines the kitty's start position and size.
type ActorConfig struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// ObstacleConfig defines pipe geometry and spawn cadence.
// Gap tops are drawn uniformly from [TopMin, TopMin+TopRange).
type ObstacleConfig struct {
	Width      float64 `yaml:"width"`
	Gap        float64 `yaml:"gap"`
	SpawnEvery int     `yaml:"spawn_every"`
	TopMin     float64 `yaml:"top_min"`
	TopRange   float64 `yaml:"top_range"`
}

// CloudConfig defines decorative cloud spawning. Each randomized value is
// drawn uniformly from [Min, Min+Range).
type CloudConfig struct {
	SpawnEvery   int     `yaml:"spawn_every"`
	EntryOffset  float64 `yaml:"entry_offset"`
	YMin         float64 `yaml:"y_min"`
	YRange       float64 `yaml:"y_range"`
	SizeMin      float64 `yaml:"size_min"`
	SizeRange    float64 `yaml:"size_range"`
	SpeedMin     float64 `yaml:"speed_min"`
	SpeedRange   float64 `yaml:"speed_range"`
	OpacityMin   float64 `yaml:"opacity_min"`
	OpacityRange float64 `yaml:"opacity_range"`
}

// DifficultyConfig defines the stepwise obstacle speed ramp.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	StepEvery int     `yaml:"step_every"` // frames between speed increases
	SpeedStep float64 `yaml:"speed_step"` // added to speed at each step
}

// InputConfig defines input handling.
type InputConfig struct {
	DebounceMillis int64 `yaml:"debounce_ms"`
}

// StorageConfig defines persistence keys.
type StorageConfig struct {
	HighScoreKey string `yaml:"high_score_key"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
