package climb

import (
	"math"
	"slices"

	"github.com/vovakirdan/skyclimb/internal/config"
)

// maxFillPerTick bounds how many platforms one Fill call may add.
const maxFillPerTick = 64

// World owns the live platform window and the collectibles attached to it.
// The slices are arenas: pruning compacts them in place.
type World struct {
	cfg        config.WorldConfig
	viewW      float64
	viewH      float64
	rng        *Rand
	difficulty *config.DifficultyManager

	Platforms []Platform
	Coins     []Coin
	Pickups   []ThrustPickup

	nextID uint64
}

// NewWorld creates an empty world.
func NewWorld(cfg config.ClimbConfig, rng *Rand) *World {
	return &World{
		cfg:        cfg.World,
		viewW:      cfg.Viewport.Width,
		viewH:      cfg.Viewport.Height,
		rng:        rng,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		Platforms:  make([]Platform, 0, 32),
		Coins:      make([]Coin, 0, 16),
		Pickups:    make([]ThrustPickup, 0, 4),
	}
}

// Reconfigure swaps the tunables without touching live content.
func (w *World) Reconfigure(cfg config.ClimbConfig) {
	w.cfg = cfg.World
	w.viewW = cfg.Viewport.Width
	w.viewH = cfg.Viewport.Height
	w.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

// Clear drops all content. Platform IDs keep counting so stale references
// never match a new platform.
func (w *World) Clear() {
	w.Platforms = w.Platforms[:0]
	w.Coins = w.Coins[:0]
	w.Pickups = w.Pickups[:0]
}

// Seed builds the initial window: the start platform under the spawn point
// and evenly spaced platforms above it up to the prune ceiling.
func (w *World) Seed() {
	w.Clear()

	startY := w.viewH - w.cfg.StartOffset
	w.place(w.viewW/2-w.cfg.StartWidth/2, startY, w.cfg.StartWidth)

	ceiling := -w.cfg.PruneAbove
	for i := 1; i < w.cfg.InitialCount; i++ {
		y := startY - float64(i)*w.cfg.Spacing
		if y <= ceiling {
			break
		}
		w.Spawn(y, 0)
	}
}

// place adds a normal platform at an exact position.
func (w *World) place(x, y, width float64) Platform {
	w.nextID++
	p := Platform{
		ID:   w.nextID,
		X:    x,
		Y:    y,
		W:    width,
		H:    w.cfg.PlatformHeight,
		Kind: KindNormal,
	}
	w.Platforms = append(w.Platforms, p)
	return p
}

// Spawn generates one random platform at height y, plus its attachments.
// score feeds the optional difficulty progression.
func (w *World) Spawn(y float64, score int) Platform {
	kind := platformKinds[w.rng.Intn(len(platformKinds))]

	width := w.cfg.SpringWidth
	if kind != KindSpring {
		width = w.cfg.MinWidth + w.rng.Float64()*w.cfg.WidthRange
	}

	w.nextID++
	p := Platform{
		ID:   w.nextID,
		X:    w.rng.Float64() * (w.viewW - width),
		Y:    y,
		W:    width,
		H:    w.cfg.PlatformHeight,
		Kind: kind,
	}
	if kind == KindMoving {
		v := w.difficulty.MovingSpeed(w.cfg.MovingSpeed, score)
		p.Speed = w.rng.Uniform(-v, v)
		p.Dir = w.rng.Sign()
	}
	w.Platforms = append(w.Platforms, p)

	if w.rng.Chance(w.cfg.CoinChance) {
		w.Coins = append(w.Coins, Coin{
			X:     p.Box().CenterX() - w.cfg.CoinSize/2,
			Y:     p.Y - w.cfg.CoinLift,
			Size:  w.cfg.CoinSize,
			Value: w.cfg.CoinValue,
		})
	}

	if w.inThrustBand(y) && w.rng.Chance(w.cfg.ThrustChance) {
		w.Pickups = append(w.Pickups, ThrustPickup{
			X:    p.Box().CenterX() - w.cfg.ThrustSize/2,
			Y:    p.Y - w.cfg.ThrustLift,
			Size: w.cfg.ThrustSize,
		})
	}

	return p
}

// inThrustBand reports whether |y| sits just past a multiple of the
// thrust interval.
func (w *World) inThrustBand(y float64) bool {
	if w.cfg.ThrustInterval <= 0 {
		return false
	}
	h := math.Abs(y)
	base := math.Floor(h/w.cfg.ThrustInterval) * w.cfg.ThrustInterval
	return math.Abs(h-base) < w.cfg.ThrustWindow
}

// Topmost returns the smallest platform y, or false when the world is empty.
func (w *World) Topmost() (float64, bool) {
	if len(w.Platforms) == 0 {
		return 0, false
	}
	top := w.Platforms[0].Y
	for _, p := range w.Platforms[1:] {
		top = min(top, p.Y)
	}
	return top, true
}

// Extend adds exactly one platform one spacing above the current topmost.
// An empty world is reseeded at the bottom of the view instead.
func (w *World) Extend(cameraY float64, score int) Platform {
	top, ok := w.Topmost()
	if !ok {
		return w.Spawn(cameraY+w.viewH-w.cfg.StartOffset, score)
	}
	return w.Spawn(top-w.cfg.Spacing, score)
}

// Fill extends until the topmost platform is above the camera margin.
// It returns how many platforms were added.
func (w *World) Fill(cameraY float64, score int) int {
	added := 0
	for added < maxFillPerTick {
		top, ok := w.Topmost()
		if ok && top <= cameraY-w.cfg.ExtendMargin {
			break
		}
		w.Extend(cameraY, score)
		added++
	}
	return added
}

// Prune drops content outside the live window around the camera.
func (w *World) Prune(cameraY float64) {
	top := cameraY - w.cfg.PruneAbove
	bottom := cameraY + w.viewH + w.cfg.PruneBelow

	w.Platforms = slices.DeleteFunc(w.Platforms, func(p Platform) bool {
		return p.Y <= top || p.Y >= bottom
	})
	w.Coins = slices.DeleteFunc(w.Coins, func(c Coin) bool {
		return c.Collected || c.Y+c.Size > bottom || c.Y+w.cfg.CoinLift <= top
	})
	w.Pickups = slices.DeleteFunc(w.Pickups, func(t ThrustPickup) bool {
		return t.Collected || t.Y+t.Size > bottom || t.Y+w.cfg.ThrustLift <= top
	})
}

// Remove deletes a platform by ID. Unknown IDs are ignored.
func (w *World) Remove(id uint64) bool {
	before := len(w.Platforms)
	w.Platforms = slices.DeleteFunc(w.Platforms, func(p Platform) bool {
		return p.ID == id
	})
	return len(w.Platforms) != before
}

// Reanchor discards the window and rebuilds it around a resumed player:
// a symmetric band around playerY, a safe platform just below the player
// and a long run of content above.
func (w *World) Reanchor(playerX, playerY float64, score int) {
	w.Clear()

	span := w.cfg.ReanchorSpan
	for y := playerY - span; y <= playerY+span; y += w.cfg.Spacing {
		if math.Abs(y-playerY) < w.cfg.ReanchorSkip {
			continue
		}
		w.Spawn(y, score)
	}

	w.place(playerX-w.cfg.StartWidth/2, playerY+w.cfg.StartOffset, w.cfg.StartWidth)

	for y := playerY - w.cfg.ReanchorHead; y >= playerY-w.cfg.ReanchorClimb; y -= w.cfg.Spacing {
		w.Spawn(y, score)
	}
}

// MovePlatforms advances moving platforms and bounces them off the edges.
func (w *World) MovePlatforms(ts float64) {
	for i := range w.Platforms {
		p := &w.Platforms[i]
		if p.Kind != KindMoving {
			continue
		}
		v := p.Speed * p.Dir
		p.X += v * ts
		if (p.X <= 0 && v < 0) || (p.X+p.W >= w.viewW && v > 0) {
			p.Dir = -p.Dir
		}
		p.X = max(0, min(p.X, w.viewW-p.W))
	}
}

// AnimatePickups advances collectible animation phases.
func (w *World) AnimatePickups(ts float64) {
	for i := range w.Coins {
		w.Coins[i].Phase += 0.2 * ts
	}
	for i := range w.Pickups {
		w.Pickups[i].Phase += 0.15 * ts
	}
}
