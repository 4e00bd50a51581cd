package climb

import (
	"math"
	"time"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// clampElapsed bounds a tick's elapsed time to [0, max elapsed].
func (g *Game) clampElapsed(elapsed time.Duration) time.Duration {
	return core.Clamp(elapsed, 0, g.cfg.Physics.MaxElapsed())
}

// timeScale normalizes elapsed time against the reference frame.
func (g *Game) timeScale(elapsed time.Duration) float64 {
	ref := g.cfg.Physics.ReferenceFrame()
	if ref <= 0 {
		return 1
	}
	return float64(elapsed) / float64(ref)
}

// stepPlayer runs the physics phase of a tick: forces, integration,
// landing, auto-jump, camera and the terminal-fall check. The world window
// is extended and pruned only after the collision pass.
func (g *Game) stepPlayer(in core.InputFrame, ts float64, elapsed time.Duration) {
	p := &g.player

	g.steer(in.Steer(), ts)
	g.applyVertical(ts, elapsed)

	p.X += p.VX * ts
	p.Y += p.VY * ts

	viewW := g.cfg.Viewport.Width
	if p.X < 0 {
		p.X = viewW
	} else if p.X > viewW {
		p.X = 0
	}

	if !core.Finite(p.X) || !core.Finite(p.Y) || !core.Finite(p.VX) || !core.Finite(p.VY) {
		g.recoverPlayer()
	}

	g.resolveLanding()
	g.autoJump()

	g.camera.Follow(p.Y)

	if p.Y > g.camera.Bottom()+g.cfg.Score.DeathMargin {
		g.gameOver()
		return
	}

	g.trackFall()

	g.world.Fill(g.camera.Y, g.score)
	g.world.Prune(g.camera.Y)
}

// steer accelerates toward the held direction or decays by friction.
func (g *Game) steer(dir int, ts float64) {
	p := &g.player
	accel := g.cfg.Physics.Acceleration * ts
	switch {
	case dir < 0:
		p.VX = max(p.VX-accel, -p.MaxSpeed)
	case dir > 0:
		p.VX = min(p.VX+accel, p.MaxSpeed)
	default:
		p.VX *= math.Pow(g.cfg.Physics.Friction, ts)
	}
}

// applyVertical applies either thrust or gravity. The thrust timer runs on
// elapsed time, not on the normalized scale.
func (g *Game) applyVertical(ts float64, elapsed time.Duration) {
	p := &g.player
	phys := g.cfg.Physics

	if g.thrustLeft <= 0 {
		p.VY += phys.Gravity * ts
		return
	}

	if p.VY > phys.ThrustMaxRise {
		p.VY -= phys.ThrustAccel * ts
	}
	p.VY = max(p.VY, phys.ThrustMaxRise)

	g.thrustLeft -= elapsed
	if g.thrustLeft < 0 {
		g.thrustLeft = 0
	}
}

// resolveLanding lands the player on the first eligible platform. Only a
// descending player can land.
func (g *Game) resolveLanding() bool {
	p := &g.player
	p.Grounded = false
	if p.VY <= 0 {
		return false
	}

	box := p.Box()
	bottom := p.Bottom()
	tolerance := g.cfg.Physics.LandingTolerance

	for i := range g.world.Platforms {
		pl := &g.world.Platforms[i]
		if pl.Broken || !box.OverlapsX(pl.Box()) {
			continue
		}
		if bottom <= pl.Y || bottom >= pl.Y+pl.H+tolerance {
			continue
		}
		g.land(pl)
		return true
	}
	return false
}

func (g *Game) land(pl *Platform) {
	p := &g.player
	p.Y = pl.Y - p.H
	p.VY = 0
	p.Grounded = true
	p.DoubleJumpAvailable = true
	p.DoubleJumpUsed = false
	g.landings++

	switch pl.Kind {
	case KindSpring:
		p.VY = p.JumpImpulse * g.cfg.Physics.SpringMultiplier
		p.Grounded = false
		g.emit(core.EventSpringBounce)
	case KindBreakable:
		pl.Broken = true
		id := pl.ID
		g.queue.Schedule(g.clock+g.cfg.World.BreakDelay(), func() {
			g.world.Remove(id)
		})
		g.emit(core.EventPlatformBroken)
	case KindNormal, KindMoving:
	}
}

// autoJump launches a grounded player and grants a double-jump charge.
func (g *Game) autoJump() bool {
	p := &g.player
	if !p.Grounded {
		return false
	}
	p.VY = p.JumpImpulse
	p.Grounded = false
	p.DoubleJumpAvailable = true
	p.DoubleJumpUsed = false
	g.autoJumps++
	return true
}

// DoubleJump spends a charge and a purchased credit for a mid-air jump.
func (g *Game) DoubleJump() bool {
	p := &g.player
	if g.state != StatePlaying || !p.DoubleJumpAvailable || p.DoubleJumpUsed {
		return false
	}
	if !g.economy.ConsumeDoubleJump() {
		return false
	}
	p.VY = p.JumpImpulse
	p.DoubleJumpUsed = true
	return true
}

// recoverPlayer replaces a corrupted position with a safe one.
func (g *Game) recoverPlayer() {
	p := &g.player
	g.logger.Warn("non-finite player state, respawning", "x", p.X, "y", p.Y, "vx", p.VX, "vy", p.VY)
	p.X = g.cfg.Viewport.Width / 2
	if !core.Finite(g.camera.Y) {
		g.camera.Reset(0)
	}
	p.Y = g.camera.Y + g.cfg.Viewport.Height*g.cfg.Score.ResumeFraction
	p.VX, p.VY = 0, 0
}

// trackFall remembers the camera and score at the start of a fall through
// the lower half of the view, and forgets them otherwise.
func (g *Game) trackFall() {
	p := g.player
	if p.VY > 0 && p.Y > g.camera.Y+g.cfg.Viewport.Height*g.cfg.Score.FallTrigger {
		if g.falling == nil {
			g.falling = &fallSnapshot{cameraY: g.camera.Y, score: g.score}
		}
		return
	}
	g.falling = nil
}

// collect picks up coins and thrust items touching the player.
func (g *Game) collect(ts float64) {
	box := g.player.Box()

	for i := range g.world.Coins {
		c := &g.world.Coins[i]
		if c.Collected || !box.Intersects(c.Box()) {
			continue
		}
		c.Collected = true
		g.runCoins += c.Value
		g.economy.AddCoins(c.Value)
		g.emit(core.EventCoinCollected)
	}

	for i := range g.world.Pickups {
		t := &g.world.Pickups[i]
		if t.Collected || !box.Intersects(t.Box()) {
			continue
		}
		t.Collected = true
		g.thrustLeft = g.cfg.Physics.ThrustDuration()
		g.emit(core.EventThrustStarted)
	}

	g.world.AnimatePickups(ts)
}
