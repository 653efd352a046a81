package core

import (
	"math"
	"strings"
)

// Tier is a difficulty classification controlling entity counts, targets and duration.
type Tier string

const (
	TierEasy   Tier = "EASY"
	TierNormal Tier = "NORMAL"
	TierHard   Tier = "HARD"
)

// Tiers lists the tiers in ascending difficulty.
var Tiers = []Tier{TierEasy, TierNormal, TierHard}

// ParseTier converts user input to a Tier, case-insensitively.
// Empty or unrecognized input yields TierNormal.
func ParseTier(s string) Tier {
	switch Tier(strings.ToUpper(strings.TrimSpace(s))) {
	case TierEasy:
		return TierEasy
	case TierHard:
		return TierHard
	default:
		return TierNormal
	}
}

// Difficulty is the per-round difficulty passed to Init.
// The zero value means NORMAL.
type Difficulty struct {
	Tier Tier `yaml:"tier"`
}

// DifficultyOf returns a Difficulty for the given tier.
func DifficultyOf(t Tier) Difficulty {
	return Difficulty{Tier: t}
}

// Normalized returns the tier to use, falling back to NORMAL for absent or malformed values.
func (d Difficulty) Normalized() Tier {
	return ParseTier(string(d.Tier))
}

// MinSpeedMultiplier is the smallest speed multiplier a round will run with.
const MinSpeedMultiplier = 0.05

// NormalizeSpeed clamps a speed multiplier to a usable positive value.
// NaN and infinities map to 1.0.
func NormalizeSpeed(m float64) float64 {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return 1.0
	}
	if m < MinSpeedMultiplier {
		return MinSpeedMultiplier
	}
	return m
}

// ValidStep reports whether dt (milliseconds) advances the simulation.
// Zero, negative and non-finite steps are no-ops.
func ValidStep(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 0) && !math.IsNaN(dt)
}
