// Package config provides YAML/TOML-based configuration loading and
// difficulty management for the climber.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ClimbConfig contains all tunables of the simulation. World units are the
// logical viewport units (400x600 by default), not terminal cells.
type ClimbConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport" toml:"viewport"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	World      WorldConfig      `yaml:"world" toml:"world"`
	Camera     CameraConfig     `yaml:"camera" toml:"camera"`
	Score      ScoreConfig      `yaml:"score" toml:"score"`
	Ghosts     GhostConfig      `yaml:"ghosts" toml:"ghosts"`
	Shop       ShopConfig       `yaml:"shop" toml:"shop"`
	Sky        SkyConfig        `yaml:"sky" toml:"sky"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ViewportConfig is the logical size of the visible region.
type ViewportConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PlayerConfig defines the player's bounding box and spawn point.
type PlayerConfig struct {
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	SpawnOffset float64 `yaml:"spawn_offset" toml:"spawn_offset"` // Distance of the spawn point above the view bottom
}

// PhysicsConfig defines integration constants. Velocities are in units per
// reference frame; elapsed time is normalized against ReferenceFrameMS.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity" toml:"gravity"`
	Friction         float64 `yaml:"friction" toml:"friction"`
	Acceleration     float64 `yaml:"acceleration" toml:"acceleration"`
	MaxSpeed         float64 `yaml:"max_speed" toml:"max_speed"`
	JumpImpulse      float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	SpringMultiplier float64 `yaml:"spring_multiplier" toml:"spring_multiplier"`
	LandingTolerance float64 `yaml:"landing_tolerance" toml:"landing_tolerance"`
	ThrustAccel      float64 `yaml:"thrust_accel" toml:"thrust_accel"`
	ThrustMaxRise    float64 `yaml:"thrust_max_rise" toml:"thrust_max_rise"` // Most negative vy thrust can reach
	ThrustDurationMS float64 `yaml:"thrust_duration_ms" toml:"thrust_duration_ms"`
	ReferenceFrameMS float64 `yaml:"reference_frame_ms" toml:"reference_frame_ms"`
	MaxElapsedMS     float64 `yaml:"max_elapsed_ms" toml:"max_elapsed_ms"`
}

// ThrustDuration returns the thrust effect length as a duration.
func (p PhysicsConfig) ThrustDuration() time.Duration {
	return msToDuration(p.ThrustDurationMS)
}

// ReferenceFrame returns the duration that maps to a time scale of 1.
func (p PhysicsConfig) ReferenceFrame() time.Duration {
	return msToDuration(p.ReferenceFrameMS)
}

// MaxElapsed returns the per-tick elapsed clamp.
func (p PhysicsConfig) MaxElapsed() time.Duration {
	return msToDuration(p.MaxElapsedMS)
}

// WorldConfig defines platform and pickup generation.
type WorldConfig struct {
	PlatformHeight float64 `yaml:"platform_height" toml:"platform_height"`
	MinWidth       float64 `yaml:"min_width" toml:"min_width"`
	WidthRange     float64 `yaml:"width_range" toml:"width_range"`
	SpringWidth    float64 `yaml:"spring_width" toml:"spring_width"`
	Spacing        float64 `yaml:"spacing" toml:"spacing"`
	InitialCount   int     `yaml:"initial_count" toml:"initial_count"`
	StartWidth     float64 `yaml:"start_width" toml:"start_width"`
	StartOffset    float64 `yaml:"start_offset" toml:"start_offset"` // Start platform distance above the view bottom
	MovingSpeed    float64 `yaml:"moving_speed" toml:"moving_speed"` // Moving platform speed is uniform in [-v, v)
	BreakDelayMS   float64 `yaml:"break_delay_ms" toml:"break_delay_ms"`

	ExtendMargin float64 `yaml:"extend_margin" toml:"extend_margin"`
	PruneAbove   float64 `yaml:"prune_above" toml:"prune_above"`
	PruneBelow   float64 `yaml:"prune_below" toml:"prune_below"`

	CoinChance float64 `yaml:"coin_chance" toml:"coin_chance"`
	CoinSize   float64 `yaml:"coin_size" toml:"coin_size"`
	CoinLift   float64 `yaml:"coin_lift" toml:"coin_lift"`
	CoinValue  int     `yaml:"coin_value" toml:"coin_value"`

	ThrustChance   float64 `yaml:"thrust_chance" toml:"thrust_chance"`
	ThrustInterval float64 `yaml:"thrust_interval" toml:"thrust_interval"`
	ThrustWindow   float64 `yaml:"thrust_window" toml:"thrust_window"`
	ThrustSize     float64 `yaml:"thrust_size" toml:"thrust_size"`
	ThrustLift     float64 `yaml:"thrust_lift" toml:"thrust_lift"`

	ReanchorSpan  float64 `yaml:"reanchor_span" toml:"reanchor_span"`
	ReanchorSkip  float64 `yaml:"reanchor_skip" toml:"reanchor_skip"`
	ReanchorHead  float64 `yaml:"reanchor_head" toml:"reanchor_head"`
	ReanchorClimb float64 `yaml:"reanchor_climb" toml:"reanchor_climb"`
}

// BreakDelay returns how long a broken platform lingers.
func (w WorldConfig) BreakDelay() time.Duration {
	return msToDuration(w.BreakDelayMS)
}

// CameraConfig defines the follow behavior.
type CameraConfig struct {
	Lead      float64 `yaml:"lead" toml:"lead"`           // Player sits at this fraction of the view height
	Smoothing float64 `yaml:"smoothing" toml:"smoothing"` // Fraction of the gap closed per tick
}

// ScoreConfig defines scoring and continuation.
type ScoreConfig struct {
	Scale          float64 `yaml:"scale" toml:"scale"` // World units per score point
	Continues      int     `yaml:"continues" toml:"continues"`
	ResumeFraction float64 `yaml:"resume_fraction" toml:"resume_fraction"`
	DeathMargin    float64 `yaml:"death_margin" toml:"death_margin"`
	FallTrigger    float64 `yaml:"fall_trigger" toml:"fall_trigger"`
}

// GhostConfig defines the synthetic ghost population.
type GhostConfig struct {
	MinScore     int          `yaml:"min_score" toml:"min_score"`
	MaxScore     int          `yaml:"max_score" toml:"max_score"`
	Step         int          `yaml:"step" toml:"step"`
	Jitter       int          `yaml:"jitter" toml:"jitter"`
	FloorScore   int          `yaml:"floor_score" toml:"floor_score"`
	RealSpacing  float64      `yaml:"real_spacing" toml:"real_spacing"`
	FakeSpacing  float64      `yaml:"fake_spacing" toml:"fake_spacing"`
	Cap          int          `yaml:"cap" toml:"cap"`
	Retries      int          `yaml:"retries" toml:"retries"`
	MinDensity   float64      `yaml:"min_density" toml:"min_density"`
	Curve        []Breakpoint `yaml:"curve" toml:"curve"`
	Bands        []Band       `yaml:"bands" toml:"bands"`
	SuffixChance float64      `yaml:"suffix_chance" toml:"suffix_chance"`
	Prefixes     []string     `yaml:"prefixes" toml:"prefixes"`
	Suffixes     []string     `yaml:"suffixes" toml:"suffixes"`
	Colors       []string     `yaml:"colors" toml:"colors"`
	Styles       int          `yaml:"styles" toml:"styles"`
}

// Breakpoint is one point of the piecewise-linear ghost density curve.
type Breakpoint struct {
	Score       int     `yaml:"score" toml:"score"`
	Probability float64 `yaml:"p" toml:"p"`
}

// Band is a score interval with a guaranteed minimum ghost count.
type Band struct {
	Min   int `yaml:"min" toml:"min"`
	Max   int `yaml:"max" toml:"max"`
	Count int `yaml:"count" toml:"count"`
}

// ShopConfig defines prices.
type ShopConfig struct {
	DoubleJumpPrice int    `yaml:"double_jump_price" toml:"double_jump_price"`
	Skins           []Skin `yaml:"skins" toml:"skins"`
}

// Skin is a purchasable player appearance.
type Skin struct {
	ID    string `yaml:"id" toml:"id"`
	Name  string `yaml:"name" toml:"name"`
	Price int    `yaml:"price" toml:"price"`
	Color string `yaml:"color" toml:"color"`
}

// SkyConfig defines the day/night cycle by height.
type SkyConfig struct {
	CycleHeight float64 `yaml:"cycle_height" toml:"cycle_height"`
	DayColor    string  `yaml:"day_color" toml:"day_color"`
	NightColor  string  `yaml:"night_color" toml:"night_color"`
}

// DifficultyConfig defines the optional moving-platform speed progression.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score" or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier" toml:"speed_multiplier"` // Added to moving speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Empty input means "keep config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
func (c ClimbConfig) Validate() error {
	switch {
	case c.Viewport.Width <= 0 || c.Viewport.Height <= 0:
		return fmt.Errorf("%w: viewport must be positive", ErrInvalidConfig)
	case c.World.Spacing <= 0:
		return fmt.Errorf("%w: world.spacing must be positive", ErrInvalidConfig)
	case c.World.MinWidth <= 0 || c.World.MinWidth+c.World.WidthRange > c.Viewport.Width:
		return fmt.Errorf("%w: platform widths must fit the viewport", ErrInvalidConfig)
	case c.Physics.ReferenceFrameMS <= 0:
		return fmt.Errorf("%w: physics.reference_frame_ms must be positive", ErrInvalidConfig)
	case c.Score.Scale <= 0:
		return fmt.Errorf("%w: score.scale must be positive", ErrInvalidConfig)
	case c.Score.Continues < 0:
		return fmt.Errorf("%w: score.continues must not be negative", ErrInvalidConfig)
	case c.Ghosts.Step <= 0:
		return fmt.Errorf("%w: ghosts.step must be positive", ErrInvalidConfig)
	case c.Ghosts.Cap <= 0:
		return fmt.Errorf("%w: ghosts.cap must be positive", ErrInvalidConfig)
	case len(c.Ghosts.Curve) == 0:
		return fmt.Errorf("%w: ghosts.curve needs at least one breakpoint", ErrInvalidConfig)
	case len(c.Ghosts.Prefixes) == 0 || len(c.Ghosts.Colors) == 0:
		return fmt.Errorf("%w: ghosts need prefixes and colors", ErrInvalidConfig)
	case len(c.Ghosts.Suffixes) == 0:
		return fmt.Errorf("%w: ghosts need suffixes", ErrInvalidConfig)
	case c.Ghosts.Styles <= 0:
		return fmt.Errorf("%w: ghosts.styles must be positive", ErrInvalidConfig)
	}
	for i := 1; i < len(c.Ghosts.Curve); i++ {
		if c.Ghosts.Curve[i].Score <= c.Ghosts.Curve[i-1].Score {
			return fmt.Errorf("%w: ghosts.curve scores must increase", ErrInvalidConfig)
		}
	}
	for _, b := range c.Ghosts.Bands {
		if b.Max <= b.Min {
			return fmt.Errorf("%w: ghost band %d-%d is empty", ErrInvalidConfig, b.Min, b.Max)
		}
	}
	return nil
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
