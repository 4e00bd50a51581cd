package climb

import (
	"math"
	"slices"
	"time"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// Anim is the player's visual state, derived from vertical velocity.
type Anim int

const (
	AnimIdle Anim = iota
	AnimJumping
	AnimSuperJump
	AnimFalling
	AnimThrust
)

func (a Anim) String() string {
	switch a {
	case AnimJumping:
		return "jumping"
	case AnimSuperJump:
		return "superjump"
	case AnimFalling:
		return "falling"
	case AnimThrust:
		return "thrust"
	}
	return "idle"
}

func (g *Game) anim() Anim {
	vy := g.player.VY
	switch {
	case g.thrustLeft > 0:
		return AnimThrust
	case vy < -15:
		return AnimSuperJump
	case vy < -5:
		return AnimJumping
	case vy > 5:
		return AnimFalling
	}
	return AnimIdle
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State  RunState
	Paused bool
	Tick   time.Duration

	Viewport config.ViewportConfig
	Player   Player
	Anim     Anim
	CameraY  float64

	Platforms []Platform
	Coins     []Coin
	Pickups   []ThrustPickup
	Real      RealGhost
	Fakes     []FakeGhost

	Score         int
	HighScore     int
	LastScore     int
	NewRecord     bool
	ContinuesLeft int
	ResumePending bool
	ThrustLeft    time.Duration
	ThrustTotal   time.Duration

	TotalCoins   int
	RunCoins     int
	DoubleJumps  int
	Skin         config.Skin
	SoundEnabled bool

	Night bool
	Sky   core.Color
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:  g.state,
		Paused: g.paused,
		Tick:   g.clock,

		Viewport: g.cfg.Viewport,
		Player:   g.player,
		Anim:     g.anim(),
		CameraY:  g.camera.Y,

		Platforms: slices.Clone(g.world.Platforms),
		Coins:     slices.Clone(g.world.Coins),
		Pickups:   slices.Clone(g.world.Pickups),
		Real:      g.ghosts.Real,
		Fakes:     slices.Clone(g.ghosts.Fakes),

		Score:         g.score,
		HighScore:     g.highScore,
		LastScore:     g.lastScore,
		NewRecord:     g.newRecord,
		ContinuesLeft: g.continuesLeft,
		ResumePending: g.resumePending,
		ThrustLeft:    g.thrustLeft,
		ThrustTotal:   g.cfg.Physics.ThrustDuration(),

		TotalCoins:   g.economy.Coins(),
		RunCoins:     g.runCoins,
		DoubleJumps:  g.economy.DoubleJumps(),
		Skin:         g.economy.CurrentSkin(),
		SoundEnabled: g.soundEnabled,

		Night: IsNight(g.camera.Y, g.cfg.Sky),
		Sky:   SkyColor(g.camera.Y, g.cfg.Sky),
	}
}

// Hash folds the simulation-relevant fields for determinism checks.
func (s *Snapshot) Hash() uint64 {
	h := uint64(s.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(s.State)         //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(s.ContinuesLeft) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(s.Player.X)
	h = h*31 + math.Float64bits(s.Player.Y)
	h = h*31 + math.Float64bits(s.Player.VX)
	h = h*31 + math.Float64bits(s.Player.VY)
	h = h*31 + math.Float64bits(s.CameraY)

	for _, p := range s.Platforms {
		h = h*31 + p.ID
		h = h*31 + uint64(p.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
	}
	for _, c := range s.Coins {
		h = h*31 + math.Float64bits(c.X)
		h = h*31 + math.Float64bits(c.Y)
	}
	for _, f := range s.Fakes {
		h = h*31 + uint64(f.Score) //#nosec G115 -- hash computation
	}
	return h
}
