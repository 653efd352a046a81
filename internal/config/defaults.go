package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

//go:embed defaults/water.yaml
var defaultWaterYAML []byte

//go:embed defaults/forest.yaml
var defaultForestYAML []byte

//go:embed defaults/solar.yaml
var defaultSolarYAML []byte

//go:embed defaults/gauntlet.yaml
var defaultGauntletYAML []byte

// DefaultDodgeConfig returns the default dodge configuration.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		ReferenceFrameMS: 16.67,
		Ship:             DodgeShip{Size: 40},
		Hazards: DodgeHazards{
			SpawnIntervalMS: 200,
			SpawnY:          -50,
			MinRadius:       20,
			MaxRadius:       40,
			MinSpeed:        10,
			MaxSpeed:        20,
		},
		Tiers: TierTable{
			Easy:   TierRow{DurationMS: 5000},
			Normal: TierRow{DurationMS: 6000},
			Hard:   TierRow{DurationMS: 7000},
		},
	}
}

// DefaultWaterConfig returns the default water configuration.
func DefaultWaterConfig() WaterConfig {
	return WaterConfig{
		ReferenceFrameMS: 16.67,
		Bucket: WaterBucket{
			Width:        60,
			Height:       40,
			BottomOffset: 100,
		},
		Drops: WaterDrops{
			SpawnIntervalMS: 500,
			SpawnY:          -20,
			Radius:          10,
			Margin:          20,
			MinSpeed:        5,
			MaxSpeed:        10,
		},
		Tiers: TierTable{
			Easy:   TierRow{DurationMS: 8000, Count: 1},
			Normal: TierRow{DurationMS: 8000, Count: 2},
			Hard:   TierRow{DurationMS: 8000, Count: 3},
		},
	}
}

// DefaultForestConfig returns the default forest configuration.
func DefaultForestConfig() ForestConfig {
	return ForestConfig{
		ReferenceFrameMS: 16,
		Spots: ForestSpots{
			Radius:     40,
			Margin:     50,
			GrowthRate: 0.05,
		},
		Tiers: TierTable{
			Easy:   TierRow{DurationMS: 8000, Count: 2},
			Normal: TierRow{DurationMS: 8000, Count: 4},
			Hard:   TierRow{DurationMS: 6000, Count: 5},
		},
	}
}

// DefaultSolarConfig returns the default solar configuration.
func DefaultSolarConfig() SolarConfig {
	return SolarConfig{
		ReferenceFrameMS: 16,
		Dirt: SolarDirt{
			MinRadius: 60,
			MaxRadius: 80,
			Margin:    100,
			CleanRate: 0.1,
		},
		WiperRadius: 50,
		WinRatio:    0.9,
		Tiers: TierTable{
			Easy:   TierRow{DurationMS: 8000, Count: 2},
			Normal: TierRow{DurationMS: 8000, Count: 4},
			Hard:   TierRow{DurationMS: 6000, Count: 5},
		},
	}
}

// DefaultGauntletConfig returns the default gauntlet configuration.
func DefaultGauntletConfig() GauntletConfig {
	return GauntletConfig{
		Lives:   3,
		Rounds:  12,
		Shuffle: true,
		Schedule: []ScheduleStep{
			{FromRound: 0, Tier: "EASY"},
			{FromRound: 4, Tier: "NORMAL"},
			{FromRound: 8, Tier: "HARD"},
		},
		Speed: SpeedConfig{
			Enabled: true,
			Base:    1.0,
			Progression: ProgressionConfig{
				Type:  "rounds",
				MaxAt: 12,
			},
			MaxBoost: 1.0,
		},
	}
}
