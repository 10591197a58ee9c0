package config

// DifficultyManager computes the obstacle speed for a given frame.
// The ramp is stepwise: every StepEvery frames the speed grows by SpeedStep,
// and it never decreases.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the speed ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.StepEvery > 0 && d.cfg.SpeedStep > 0
}

// IsStep reports whether frame is one at which the speed increases.
func (d *DifficultyManager) IsStep(frame int) bool {
	return d.IsEnabled() && frame > 0 && frame%d.cfg.StepEvery == 0
}

// Steps returns how many speed increases have happened by frame.
func (d *DifficultyManager) Steps(frame int) int {
	if !d.IsEnabled() || frame <= 0 {
		return 0
	}
	return frame / d.cfg.StepEvery
}

// Speed returns base + SpeedStep * floor(frame / StepEvery).
func (d *DifficultyManager) Speed(base float64, frame int) float64 {
	return base + float64(d.Steps(frame))*d.cfg.SpeedStep
}
