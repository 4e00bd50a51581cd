package climb

import (
	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// Player is the climber. Y grows downward; X is the left edge.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64

	Grounded            bool
	JumpImpulse         float64 // Negative: upward
	MaxSpeed            float64
	DoubleJumpAvailable bool
	DoubleJumpUsed      bool
}

func newPlayer(cfg config.ClimbConfig) Player {
	return Player{
		X:           cfg.Viewport.Width / 2,
		Y:           cfg.Viewport.Height - cfg.Player.SpawnOffset,
		W:           cfg.Player.Width,
		H:           cfg.Player.Height,
		JumpImpulse: cfg.Physics.JumpImpulse,
		MaxSpeed:    cfg.Physics.MaxSpeed,
	}
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Bottom returns the y of the player's feet.
func (p Player) Bottom() float64 {
	return p.Y + p.H
}

// PlatformKind is the platform variant.
type PlatformKind int

const (
	KindNormal PlatformKind = iota
	KindMoving
	KindBreakable
	KindSpring
)

// platformKinds is the uniform choice pool for generation.
var platformKinds = [...]PlatformKind{KindNormal, KindMoving, KindBreakable, KindSpring}

func (k PlatformKind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindMoving:
		return "moving"
	case KindBreakable:
		return "breakable"
	case KindSpring:
		return "spring"
	}
	return "unknown"
}

// Color returns the variant's display color.
func (k PlatformKind) Color() core.Color {
	switch k {
	case KindMoving:
		return core.ColorGreen
	case KindBreakable:
		return core.ColorRed
	case KindSpring:
		return core.ColorOrange
	}
	return core.ColorGray
}

// Platform is a landing surface. Speed and Dir are only meaningful for
// moving platforms, Broken only for breakable ones.
type Platform struct {
	ID   uint64
	X, Y float64
	W, H float64
	Kind PlatformKind

	Speed  float64
	Dir    float64
	Broken bool
}

// Box returns the platform's bounding box.
func (p Platform) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Color returns the display color, which follows the kind.
func (p Platform) Color() core.Color {
	return p.Kind.Color()
}

// Coin is a collectible worth Value currency.
type Coin struct {
	X, Y      float64
	Size      float64
	Value     int
	Phase     float64
	Collected bool
}

// Box returns the coin's bounding box.
func (c Coin) Box() core.Box {
	return core.Box{X: c.X, Y: c.Y, W: c.Size, H: c.Size}
}

// ThrustPickup grants temporary upward thrust.
type ThrustPickup struct {
	X, Y      float64
	Size      float64
	Phase     float64
	Collected bool
}

// Box returns the pickup's bounding box.
func (t ThrustPickup) Box() core.Box {
	return core.Box{X: t.X, Y: t.Y, W: t.Size, H: t.Size}
}
