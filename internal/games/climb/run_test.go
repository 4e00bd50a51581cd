package climb

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/skyclimb/internal/core"
)

func TestScoreFromHeight(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.player.Y = g.cfg.Viewport.Height - 1000
	g.updateScore()
	if g.score != 100 {
		t.Errorf("score = %d, expected 100", g.score)
	}

	// Falling back never lowers the score.
	g.player.Y = g.cfg.Viewport.Height - 500
	g.updateScore()
	if g.score != 100 {
		t.Errorf("score = %d after dropping, expected 100", g.score)
	}

	g.Start()
	g.player.Y = g.cfg.Viewport.Height + 500
	g.updateScore()
	if g.score != 0 {
		t.Errorf("score below the start line = %d, expected 0", g.score)
	}
}

func TestGameOverAndContinuesScenario(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.player.Y = g.cfg.Viewport.Height - 1000
	g.updateScore()
	if g.score != 100 {
		t.Fatalf("score = %d, expected 100", g.score)
	}

	res := forceFall(g)
	if countEvents(res, core.EventGameOver) != 1 {
		t.Fatalf("expected exactly one game over event, got %v", res.Events)
	}
	for range 5 {
		if res := g.Tick(idle(), frame()); res.Has(core.EventGameOver) {
			t.Fatal("game over fired again while already over")
		}
	}
	if !g.State().GameOver || !g.State().CanResume {
		t.Fatalf("state = %+v, expected game over with a continue", g.State())
	}

	if err := g.Resume(); err != nil {
		t.Fatalf("first Resume() = %v", err)
	}
	if g.ContinuesLeft() != 1 || g.RunState() != StatePlaying {
		t.Fatalf("after first resume: continues=%d state=%v", g.ContinuesLeft(), g.RunState())
	}
	if g.score != 100 {
		t.Errorf("score after resume = %d, expected 100", g.score)
	}

	forceFall(g)
	if err := g.Resume(); err != nil {
		t.Fatalf("second Resume() = %v", err)
	}
	if g.ContinuesLeft() != 0 {
		t.Fatalf("continues = %d, expected 0", g.ContinuesLeft())
	}

	forceFall(g)
	if g.State().CanResume {
		t.Error("CanResume should be false with no continues left")
	}
	if err := g.Resume(); !errors.Is(err, ErrNoContinues) {
		t.Errorf("third Resume() = %v, expected ErrNoContinues", err)
	}
	if g.RunState() != StateGameOver {
		t.Errorf("refused resume changed state to %v", g.RunState())
	}
}

func TestResumeWhilePlayingIsRefused(t *testing.T) {
	g := newTestGame(t)
	if err := g.Resume(); !errors.Is(err, ErrNotGameOver) {
		t.Errorf("Resume() on start screen = %v, expected ErrNotGameOver", err)
	}
	g.Start()
	if err := g.Resume(); !errors.Is(err, ErrNotGameOver) {
		t.Errorf("Resume() while playing = %v, expected ErrNotGameOver", err)
	}
	if g.ContinuesLeft() != g.cfg.Score.Continues {
		t.Errorf("continues = %d, refused resume must not spend one", g.ContinuesLeft())
	}
}

func TestResumeReconciliation(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.player.Y = g.cfg.Viewport.Height - 2345
	g.updateScore()
	const saved = 234
	if g.score != saved {
		t.Fatalf("score = %d, expected %d", g.score, saved)
	}

	forceFall(g)
	camera := g.savedCameraY
	if g.savedScore != saved {
		t.Fatalf("saved score = %d, expected %d", g.savedScore, saved)
	}

	if err := g.Resume(); err != nil {
		t.Fatal(err)
	}
	if g.camera.Y != camera {
		t.Errorf("camera = %v, expected restored %v", g.camera.Y, camera)
	}
	wantY := camera + g.cfg.Viewport.Height*g.cfg.Score.ResumeFraction
	if g.player.Y != wantY || g.refY != g.player.Y {
		t.Errorf("player Y = %v, ref = %v, expected both %v", g.player.Y, g.refY, wantY)
	}
	if g.player.VX != 0 || g.player.VY != 0 || g.player.Grounded {
		t.Errorf("player not at rest after resume: %+v", g.player)
	}

	g.updateScore()
	if g.score != saved {
		t.Errorf("score immediately after resume = %d, expected exactly %d", g.score, saved)
	}

	g.player.Y = g.refY - 55
	g.updateScore()
	if g.score != saved+5 {
		t.Errorf("score = %d, expected %d", g.score, saved+5)
	}
}

func TestResumeReanchorsWorld(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.player.Y = -5000
	g.camera.Y = -5400
	forceFall(g)

	if err := g.Resume(); err != nil {
		t.Fatal(err)
	}

	p := g.player
	found := false
	for _, pl := range g.world.Platforms {
		if pl.Y == p.Y+g.cfg.World.StartOffset && pl.Kind == KindNormal {
			found = true
		}
		if pl.Y > p.Y-g.cfg.World.ReanchorSkip && pl.Y < p.Y+g.cfg.World.ReanchorSkip {
			t.Errorf("platform at %v crowds the resumed player at %v", pl.Y, p.Y)
		}
	}
	if !found {
		t.Error("no safe platform under the resumed player")
	}
}

func TestResumeGateTwoPhase(t *testing.T) {
	var pending func(bool)
	g := newTestGame(t, WithResumeGate(func(done func(ok bool)) {
		pending = done
	}))
	g.Start()
	forceFall(g)

	if err := g.Resume(); err != nil {
		t.Fatal(err)
	}
	if !g.ResumePending() || g.RunState() != StateGameOver {
		t.Fatalf("pending=%v state=%v, expected a pending resume", g.ResumePending(), g.RunState())
	}
	if g.State().CanResume {
		t.Error("CanResume should be false while a resume is pending")
	}
	if err := g.Resume(); !errors.Is(err, ErrResumePending) {
		t.Errorf("second Resume() = %v, expected ErrResumePending", err)
	}

	// A denied confirmation still resumes.
	pending(false)
	if g.RunState() != StatePlaying || g.ContinuesLeft() != 1 {
		t.Errorf("state=%v continues=%d, expected playing with 1 left", g.RunState(), g.ContinuesLeft())
	}

	if err := g.CompleteResume(true); !errors.Is(err, ErrNoResume) {
		t.Errorf("CompleteResume() without request = %v, expected ErrNoResume", err)
	}
}

func TestRestartPersistsLastScoreAndPlacesGhost(t *testing.T) {
	kv := NewMemoryKV()
	g := newTestGame(t, WithKV(kv))
	g.Start()

	g.player.Y = g.cfg.Viewport.Height - 1370
	g.updateScore()
	const s = 137
	forceFall(g)

	res := g.Tick(core.NewInputFrame(core.ActionRestart), frame())
	if !res.Has(core.EventRestarted) {
		t.Fatal("expected a restart event")
	}

	if v, _, _ := kv.Get(KeyLastScore); v != "137" {
		t.Errorf("persisted last score = %q, expected 137", v)
	}
	if v, _, _ := kv.Get(KeyHighScore); v != "137" {
		t.Errorf("persisted high score = %q, expected 137", v)
	}

	ghost := g.Ghosts().Real
	if !ghost.Visible {
		t.Fatal("real ghost should be visible after a scored run")
	}
	if want := g.cfg.Viewport.Height - s*g.cfg.Score.Scale; ghost.Y != want {
		t.Errorf("real ghost Y = %v, expected %v", ghost.Y, want)
	}

	// A new session reads the same values back.
	g2 := newTestGame(t, WithKV(kv))
	g2.Start()
	if g2.Ghosts().Real.Score != s || g2.State().HighScore != s {
		t.Errorf("reloaded ghost=%d high=%d, expected %d", g2.Ghosts().Real.Score, g2.State().HighScore, s)
	}
}

func TestNoRealGhostWithoutPreviousScore(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	if g.Ghosts().Real.Visible {
		t.Error("real ghost visible on a first run")
	}
}

func TestNewHighScoreEvent(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(KeyHighScore, "50") //nolint:errcheck
	g := newTestGame(t, WithKV(kv))
	g.Start()

	g.player.Y = g.cfg.Viewport.Height - 400
	g.updateScore()
	if res := forceFall(g); res.Has(core.EventNewHighScore) {
		t.Error("score 40 should not beat 50")
	}

	g.Restart()
	g.player.Y = g.cfg.Viewport.Height - 900
	g.updateScore()
	res := forceFall(g)
	if !res.Has(core.EventNewHighScore) || !g.Snapshot().NewRecord {
		t.Error("score 90 should beat 50")
	}
	if v, _, _ := kv.Get(KeyHighScore); v != "90" {
		t.Errorf("persisted high score = %q, expected 90", v)
	}
}

func TestScoreMonotonicWithinSegment(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
		g.Start()

		inputs := rand.New(rand.NewSource(seed)) //#nosec G404 -- test input
		prev := g.score
		for tick := 0; tick < 3000; tick++ {
			in := core.NewInputFrame()
			switch inputs.Intn(3) {
			case 0:
				in.Set(core.ActionLeft)
			case 1:
				in.Set(core.ActionRight)
			}
			res := g.Tick(in, frame())
			if res.State.GameOver {
				break
			}
			if g.score < prev {
				t.Fatalf("seed %d tick %d: score dropped %d -> %d", seed, tick, prev, g.score)
			}
			prev = g.score
		}
	}
}

func TestRunRecorder(t *testing.T) {
	var runs []RunSummary
	g := newTestGame(t, WithRunRecorder(func(r RunSummary) { runs = append(runs, r) }))

	if _, ok := g.EndRun(); ok {
		t.Error("EndRun() on the start screen should not record")
	}

	g.Start()
	g.player.Y = g.cfg.Viewport.Height - 800
	g.updateScore()
	forceFall(g)

	if len(runs) != 1 {
		t.Fatalf("recorded %d runs at game over, expected 1", len(runs))
	}
	if runs[0].Score != 80 || runs[0].ContinuesUsed != 0 {
		t.Errorf("summary = %+v, expected score 80 with no continues", runs[0])
	}
	if _, ok := g.EndRun(); ok {
		t.Error("EndRun() after game over recorded the run again")
	}

	g.Resume() //nolint:errcheck
	forceFall(g)
	g.Restart()

	if len(runs) != 2 {
		t.Fatalf("recorded %d summaries, expected 2", len(runs))
	}
	if runs[1].Run != runs[0].Run {
		t.Errorf("resumed run reported as run %d, expected %d", runs[1].Run, runs[0].Run)
	}
	if runs[1].Score != 80 || runs[1].ContinuesUsed != 1 {
		t.Errorf("summary = %+v, expected score 80 with 1 continue", runs[1])
	}

	if _, ok := g.EndRun(); ok {
		t.Error("EndRun() recorded a run without a score")
	}
	g.player.Y = g.cfg.Viewport.Height - 500
	g.updateScore()
	if _, ok := g.EndRun(); !ok {
		t.Error("EndRun() should record the new run")
	}
	if _, ok := g.EndRun(); ok {
		t.Error("EndRun() recorded the same run twice")
	}
	if len(runs) != 3 || runs[2].Run == runs[0].Run {
		t.Errorf("runs = %+v, expected a third summary for a new run", runs)
	}
}

func TestZeroScoreGameOverIsNotRecorded(t *testing.T) {
	var runs []RunSummary
	g := newTestGame(t, WithRunRecorder(func(r RunSummary) { runs = append(runs, r) }))

	g.Start()
	forceFall(g)
	if !g.State().GameOver {
		t.Fatalf("state = %v, expected game over", g.RunState())
	}
	if len(runs) != 0 {
		t.Errorf("recorded %+v for a run without a score", runs)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	g.Tick(core.NewInputFrame(core.ActionPause), frame())
	if !g.State().Paused {
		t.Fatal("pause not applied")
	}
	before := g.Snapshot()
	for range 10 {
		g.Tick(idle(), frame())
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("simulation advanced while paused")
	}

	g.Tick(core.NewInputFrame(core.ActionPause), frame())
	if g.State().Paused {
		t.Error("second pause press should resume")
	}
}

func TestStartScreenWaitsForInput(t *testing.T) {
	g := newTestGame(t)
	for range 5 {
		g.Tick(idle(), frame())
	}
	if g.RunState() != StateStart {
		t.Fatalf("state = %v, expected start", g.RunState())
	}
	g.Tick(core.NewInputFrame(core.ActionJump), frame())
	if g.RunState() != StatePlaying {
		t.Errorf("state = %v after jump, expected playing", g.RunState())
	}
}

func TestSoundToggleIsPersisted(t *testing.T) {
	kv := NewMemoryKV()
	g := newTestGame(t, WithKV(kv))
	if !g.SoundEnabled() {
		t.Fatal("sound should default to on")
	}
	g.Tick(core.NewInputFrame(core.ActionSound), frame())
	if g.SoundEnabled() {
		t.Error("sound still on after toggle")
	}
	if v, _, _ := kv.Get(KeySoundEnabled); v != "false" {
		t.Errorf("persisted sound flag = %q, expected false", v)
	}
}
