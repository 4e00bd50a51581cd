package climb

import (
	"testing"
	"time"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// scriptedSource replays a fixed sequence of draws, cycling at the end.
type scriptedSource struct {
	values []float64
	i      int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func scripted(values ...float64) *Rand {
	return NewRandFrom(&scriptedSource{values: values})
}

// frame is one reference frame; ticking by it gives a time scale of 1.
func frame() time.Duration {
	return config.DefaultClimbConfig().Physics.MaxElapsed()
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(opts...)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

// newPlayingGame starts a run on a single wide normal platform so tests
// control every landing.
func newPlayingGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := newTestGame(t, opts...)
	g.Start()
	g.world.Clear()
	g.world.Coins = g.world.Coins[:0]
	g.world.Pickups = g.world.Pickups[:0]
	return g
}

func platformAt(id uint64, y float64, kind PlatformKind) Platform {
	return Platform{ID: id, X: 0, Y: y, W: 400, H: 20, Kind: kind}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

// forceFall drops the player far below the view and ticks once.
func forceFall(g *Game) core.StepResult {
	g.player.Y = g.camera.Y + g.cfg.Viewport.Height + 1000
	g.player.VY = 0
	return g.Tick(idle(), frame())
}

func countEvents(res core.StepResult, e core.Event) int {
	n := 0
	for _, ev := range res.Events {
		if ev == e {
			n++
		}
	}
	return n
}
