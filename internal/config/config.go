// Package config provides YAML-based microgame configuration loading and
// the speed progression used by gauntlet runs.
package config

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/microarcade/internal/core"
)

// TierRow holds the per-tier parameters of a game.
type TierRow struct {
	DurationMS int `yaml:"duration_ms"`
	Count      int `yaml:"count,omitempty"` // target drops, spots or dirt patches
}

// Duration returns the row's round length.
func (r TierRow) Duration() time.Duration {
	return time.Duration(r.DurationMS) * time.Millisecond
}

// TierTable maps each difficulty tier to its parameters.
type TierTable struct {
	Easy   TierRow `yaml:"easy"`
	Normal TierRow `yaml:"normal"`
	Hard   TierRow `yaml:"hard"`
}

// Lookup returns the row for t. Unknown tiers use the NORMAL row.
func (t TierTable) Lookup(tier core.Tier) TierRow {
	switch tier {
	case core.TierEasy:
		return t.Easy
	case core.TierHard:
		return t.Hard
	default:
		return t.Normal
	}
}

// checkReferenceFrame rejects frame lengths that motion cannot be scaled by.
func checkReferenceFrame(ms float64) error {
	if !(ms > 0) || math.IsInf(ms, 1) {
		return fmt.Errorf("reference_frame_ms must be a positive number, got %v", ms)
	}
	return nil
}

// DodgeConfig contains all configuration for the dodge microgame.
type DodgeConfig struct {
	ReferenceFrameMS float64      `yaml:"reference_frame_ms"`
	Ship             DodgeShip    `yaml:"ship"`
	Hazards          DodgeHazards `yaml:"hazards"`
	Tiers            TierTable    `yaml:"tiers"`
}

// Validate reports settings that would break the simulation.
func (c DodgeConfig) Validate() error {
	return checkReferenceFrame(c.ReferenceFrameMS)
}

// DodgeShip defines the player's ship.
type DodgeShip struct {
	Size float64 `yaml:"size"`
}

// DodgeHazards defines falling hazard parameters for dodge.
type DodgeHazards struct {
	SpawnIntervalMS float64 `yaml:"spawn_interval_ms"`
	SpawnY          float64 `yaml:"spawn_y"`
	MinRadius       float64 `yaml:"min_radius"`
	MaxRadius       float64 `yaml:"max_radius"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
}

// WaterConfig contains all configuration for the water microgame.
type WaterConfig struct {
	ReferenceFrameMS float64     `yaml:"reference_frame_ms"`
	Bucket           WaterBucket `yaml:"bucket"`
	Drops            WaterDrops  `yaml:"drops"`
	Tiers            TierTable   `yaml:"tiers"`
}

// Validate reports settings that would break the simulation.
func (c WaterConfig) Validate() error {
	return checkReferenceFrame(c.ReferenceFrameMS)
}

// WaterBucket defines the bucket the player moves.
type WaterBucket struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // distance from the surface bottom to the bucket top
}

// WaterDrops defines falling drop parameters for water.
type WaterDrops struct {
	SpawnIntervalMS float64 `yaml:"spawn_interval_ms"`
	SpawnY          float64 `yaml:"spawn_y"`
	Radius          float64 `yaml:"radius"`
	Margin          float64 `yaml:"margin"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
}

// ForestConfig contains all configuration for the forest microgame.
type ForestConfig struct {
	ReferenceFrameMS float64     `yaml:"reference_frame_ms"`
	Spots            ForestSpots `yaml:"spots"`
	Tiers            TierTable   `yaml:"tiers"`
}

// Validate reports settings that would break the simulation.
func (c ForestConfig) Validate() error {
	return checkReferenceFrame(c.ReferenceFrameMS)
}

// ForestSpots defines planting spot parameters.
type ForestSpots struct {
	Radius     float64 `yaml:"radius"`
	Margin     float64 `yaml:"margin"`
	GrowthRate float64 `yaml:"growth_rate"` // growth per reference frame
}

// SolarConfig contains all configuration for the solar microgame.
type SolarConfig struct {
	ReferenceFrameMS float64   `yaml:"reference_frame_ms"`
	Dirt             SolarDirt `yaml:"dirt"`
	WiperRadius      float64   `yaml:"wiper_radius"`
	WinRatio         float64   `yaml:"win_ratio"`
	Tiers            TierTable `yaml:"tiers"`
}

// Validate reports settings that would break the simulation.
func (c SolarConfig) Validate() error {
	return checkReferenceFrame(c.ReferenceFrameMS)
}

// SolarDirt defines dirt patch parameters.
type SolarDirt struct {
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	Margin    float64 `yaml:"margin"`
	CleanRate float64 `yaml:"clean_rate"` // opacity removed per reference frame
}

// GauntletConfig configures a run of consecutive microgame rounds.
type GauntletConfig struct {
	Lives    int            `yaml:"lives"`
	Rounds   int            `yaml:"rounds"` // 0 = play until out of lives
	Playlist []string       `yaml:"playlist"`
	Shuffle  bool           `yaml:"shuffle"`
	Schedule []ScheduleStep `yaml:"schedule"`
	Speed    SpeedConfig    `yaml:"speed"`
}

// ScheduleStep switches the tier starting at a round index.
type ScheduleStep struct {
	FromRound int    `yaml:"from_round"`
	Tier      string `yaml:"tier"`
}

// TierFor returns the tier scheduled for round (0-based).
// Without a matching step the tier is NORMAL.
func (g GauntletConfig) TierFor(round int) core.Tier {
	tier := core.TierNormal
	best := -1
	for _, step := range g.Schedule {
		if step.FromRound <= round && step.FromRound > best {
			best = step.FromRound
			tier = core.ParseTier(step.Tier)
		}
	}
	return tier
}

// SpeedConfig defines how the speed multiplier grows over a gauntlet.
type SpeedConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Base        float64           `yaml:"base"`
	Progression ProgressionConfig `yaml:"progression"`
	MaxBoost    float64           `yaml:"max_boost"` // multiplier added to base at full progression
}

// ProgressionConfig defines what drives the speed ramp.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "rounds", "wins", or "none"
	MaxAt int    `yaml:"max_at"` // rounds/wins at which max speed is reached
}
