package config

import (
	_ "embed"
)

//go:embed defaults/climb.yaml
var defaultClimbYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultClimbYAML
}

// DefaultClimbConfig returns the hard-coded default configuration.
// It mirrors defaults/climb.yaml and is the fallback when that fails to parse.
func DefaultClimbConfig() ClimbConfig {
	return ClimbConfig{
		Viewport: ViewportConfig{Width: 400, Height: 600},
		Player: PlayerConfig{
			Width:       30,
			Height:      30,
			SpawnOffset: 100,
		},
		Physics: PhysicsConfig{
			Gravity:          0.8,
			Friction:         0.9,
			Acceleration:     0.8,
			MaxSpeed:         8,
			JumpImpulse:      -15,
			SpringMultiplier: 1.5,
			LandingTolerance: 10,
			ThrustAccel:      0.8,
			ThrustMaxRise:    -18,
			ThrustDurationMS: 3000,
			ReferenceFrameMS: 16.67,
			MaxElapsedMS:     16.67,
		},
		World: WorldConfig{
			PlatformHeight: 20,
			MinWidth:       80,
			WidthRange:     40,
			SpringWidth:    60,
			Spacing:        80,
			InitialCount:   100,
			StartWidth:     100,
			StartOffset:    50,
			MovingSpeed:    1,
			BreakDelayMS:   100,
			ExtendMargin:   200,
			PruneAbove:     400,
			PruneBelow:     100,
			CoinChance:     0.3,
			CoinSize:       20,
			CoinLift:       30,
			CoinValue:      1,
			ThrustChance:   0.15,
			ThrustInterval: 500,
			ThrustWindow:   50,
			ThrustSize:     24,
			ThrustLift:     35,
			ReanchorSpan:   400,
			ReanchorSkip:   50,
			ReanchorHead:   200,
			ReanchorClimb:  2000,
		},
		Camera: CameraConfig{
			Lead:      0.6,
			Smoothing: 0.1,
		},
		Score: ScoreConfig{
			Scale:          10,
			Continues:      2,
			ResumeFraction: 0.3,
			DeathMargin:    300,
			FallTrigger:    0.5,
		},
		Ghosts: GhostConfig{
			MinScore:    50,
			MaxScore:    20000,
			Step:        25,
			Jitter:      10,
			FloorScore:  20,
			RealSpacing: 80,
			FakeSpacing: 60,
			Cap:         100,
			Retries:     64,
			MinDensity:  0.02,
			Curve: []Breakpoint{
				{Score: 50, Probability: 0.90},
				{Score: 2500, Probability: 0.70},
				{Score: 5000, Probability: 0.40},
				{Score: 7500, Probability: 0.15},
				{Score: 10000, Probability: 0.05},
				{Score: 20000, Probability: 0.02},
			},
			Bands: []Band{
				{Min: 50, Max: 2500, Count: 8},
				{Min: 2500, Max: 5000, Count: 5},
				{Min: 5000, Max: 7500, Count: 3},
				{Min: 7500, Max: 10000, Count: 2},
				{Min: 10000, Max: 15000, Count: 1},
				{Min: 15000, Max: 20000, Count: 1},
			},
			SuffixChance: 0.7,
			Prefixes: []string{
				"Player", "Gamer", "Jump", "Sky", "Cloud", "Pixel", "Mine", "Doodle",
				"High", "Top", "Champ", "Walker", "Surfer", "Ninja", "Master", "Star",
				"Rider", "Dancer", "Warrior", "Legend", "Pilot", "Hopper", "Knight", "Hero",
				"Pro", "King", "Queen", "Lord", "Lady", "Boss", "Chief", "Elite", "Alpha",
				"Beta", "Gamma", "Omega", "Storm", "Fire", "Ice", "Wind", "Earth",
			},
			Suffixes: []string{
				"123", "456", "789", "2024", "2025", "X", "Z", "Pro", "Max", "Ultra",
				"Prime", "Gold", "Silver", "Bronze", "Diamond", "Platinum", "Master",
				"Champ", "King", "Queen", "Lord", "Boss", "Elite", "Alpha", "Beta",
				"Storm", "Fire", "Ice", "Wind", "Earth", "Sky", "Cloud", "Star",
			},
			Colors: []string{"#E0E0E0", "#FFE0E0", "#E0FFE0", "#E0E0FF", "#FFF0E0", "#F0E0FF"},
			Styles: 3,
		},
		Shop: ShopConfig{
			DoubleJumpPrice: 50,
			Skins: []Skin{
				{ID: "default", Name: "Villager", Price: 0, Color: "#F5DEB3"},
				{ID: "golden", Name: "Golden", Price: 500, Color: "#FFD700"},
				{ID: "rainbow", Name: "Rainbow", Price: 1000, Color: "#FF69B4"},
				{ID: "fire", Name: "Fire", Price: 1500, Color: "#FF4500"},
				{ID: "ice", Name: "Ice", Price: 2000, Color: "#00BFFF"},
			},
		},
		Sky: SkyConfig{
			CycleHeight: 6000,
			DayColor:    "#87CEEB",
			NightColor:  "#191970",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
