package config

import "math"

// SpeedRamp calculates the speed multiplier for a gauntlet round from its progress.
type SpeedRamp struct {
	cfg SpeedConfig
}

// NewSpeedRamp creates a new speed ramp.
func NewSpeedRamp(cfg SpeedConfig) *SpeedRamp {
	if cfg.Base <= 0 {
		cfg.Base = 1
	}
	return &SpeedRamp{cfg: cfg}
}

// SetEnabled enables or disables speed progression.
func (r *SpeedRamp) SetEnabled(enabled bool) {
	r.cfg.Enabled = enabled
}

// IsEnabled returns whether speed progression is active.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.Progression.Type != "none"
}

// Level returns the current progression level (0.0 to 1.0) from rounds played and wins.
func (r *SpeedRamp) Level(rounds, wins int) float64 {
	if !r.IsEnabled() {
		return 0
	}

	maxAt := float64(r.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch r.cfg.Progression.Type {
	case "rounds":
		progress = float64(rounds) / maxAt
	case "wins":
		progress = float64(wins) / maxAt
	default:
		return 0
	}

	return clampF(progress, 0.0, 1.0)
}

// Multiplier returns the speed multiplier for the next round.
// It grows from base to base * (1 + max_boost).
func (r *SpeedRamp) Multiplier(rounds, wins int) float64 {
	return r.cfg.Base * (1.0 + r.Level(rounds, wins)*r.cfg.MaxBoost)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
