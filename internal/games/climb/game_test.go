package climb

import (
	"testing"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "climb" || g.Title() != "Sky Climb" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
	if g.RunState() != StateStart {
		t.Errorf("state = %v, expected start", g.RunState())
	}
}

// scriptedInput steers in long alternating stretches and jumps now and then.
func scriptedInput(tick int) core.InputFrame {
	in := core.NewInputFrame()
	switch (tick / 45) % 3 {
	case 0:
		in.Set(core.ActionLeft)
	case 1:
		in.Set(core.ActionRight)
	}
	if tick%97 == 0 {
		in.Set(core.ActionJump)
	}
	if tick > 0 && tick%400 == 0 {
		in.Set(core.ActionContinue)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

	a, b := New(), New()
	a.Reset(runtime)
	b.Reset(runtime)

	for i := range 1500 {
		in := scriptedInput(i)
		a.Tick(in, frame())
		b.Tick(in, frame())

		sa, sb := a.Snapshot(), b.Snapshot()
		if sa.Hash() != sb.Hash() {
			t.Fatalf("tick %d: hashes diverged", i)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a, b := New(), New()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	b.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2})
	a.Start()
	b.Start()

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("different seeds produced identical worlds")
	}
}

func TestApplyConfigTakesEffectOnNextRun(t *testing.T) {
	g := newPlayingGame(t)

	cfg := config.DefaultClimbConfig()
	cfg.Score.Continues = 5
	g.ApplyConfig(cfg)

	if g.ContinuesLeft() != config.DefaultClimbConfig().Score.Continues {
		t.Error("config applied mid-run")
	}
	g.Start()
	if g.ContinuesLeft() != 5 {
		t.Errorf("continues = %d after restart, expected 5", g.ContinuesLeft())
	}
}

func TestStepUsesRuntimeTickRate(t *testing.T) {
	g := newPlayingGame(t)
	before := g.clock
	g.Step(idle())

	want := min(core.RuntimeConfig{TickRate: 60}.TickInterval(), frame())
	if got := g.clock - before; got != want {
		t.Errorf("Step advanced %v, expected %v", got, want)
	}
}

func TestResetKeepsPersistentState(t *testing.T) {
	kv := NewMemoryKV()
	g := newPlayingGame(t, WithKV(kv))
	g.score = 77
	forceFall(g)
	g.Restart()

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})
	snap := g.Snapshot()
	if snap.HighScore != 77 || snap.LastScore != 77 {
		t.Errorf("after reset high=%d last=%d, expected 77", snap.HighScore, snap.LastScore)
	}
	if !snap.Real.Visible || snap.Real.Score != 77 {
		t.Errorf("real ghost = %+v", snap.Real)
	}
}
