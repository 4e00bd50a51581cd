package climb

import (
	"errors"
	"math"
	"time"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// RunState is the lifecycle phase of the climber.
type RunState int

const (
	StateStart RunState = iota
	StatePlaying
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

var (
	ErrNoContinues   = errors.New("climb: no continues left")
	ErrNotGameOver   = errors.New("climb: run is not over")
	ErrResumePending = errors.New("climb: resume already requested")
	ErrNoResume      = errors.New("climb: no resume was requested")
)

// ResumeGate confirms a resume out of band, for example after showing
// something to the player. It must eventually call done exactly once.
// done must be called from the goroutine that drives the game.
type ResumeGate func(done func(ok bool))

// ImmediateGate confirms every resume synchronously.
func ImmediateGate(done func(ok bool)) { done(true) }

// RunSummary describes a run for the history table. Run numbers the run
// within this game; a later summary with the same Run supersedes the
// earlier one, which happens when a run is resumed after a game over.
type RunSummary struct {
	Run           int
	Score         int
	Coins         int
	ContinuesUsed int
	Duration      time.Duration
}

// RunRecorder receives a run at each game over and when it is ended
// early. Runs without a score are not reported.
type RunRecorder func(RunSummary)

type fallSnapshot struct {
	cameraY float64
	score   int
}

// Start begins a fresh run.
func (g *Game) Start() {
	g.applyPendingConfig()

	g.state = StatePlaying
	g.paused = false
	g.score = 0
	g.continuesLeft = g.cfg.Score.Continues
	g.continuesUsed = 0
	g.hasRef = false
	g.refY = 0
	g.savedCameraY, g.savedScore = 0, 0
	g.falling = nil
	g.thrustLeft = 0
	g.newRecord = false
	g.resumePending = false

	g.player = newPlayer(g.cfg)
	g.camera = NewCamera(g.cfg.Camera, g.cfg.Viewport.Height)
	g.world.Seed()
	g.ghosts = g.ghostGen.Generate(g.lastScore)

	g.runSeq++
	g.runStart = g.clock
	g.runCoins = 0
	g.runRecorded = false

	g.logger.Debug("run started", "ghosts", len(g.ghosts.Fakes), "last_score", g.lastScore)
}

// gameOver ends the current segment. It fires once per segment.
func (g *Game) gameOver() {
	if g.state != StatePlaying {
		return
	}
	g.state = StateGameOver

	if g.falling != nil {
		g.savedCameraY, g.savedScore = g.falling.cameraY, g.falling.score
	} else {
		g.savedCameraY, g.savedScore = g.camera.Y, g.score
	}
	g.falling = nil
	g.thrustLeft = 0

	g.newRecord = false
	if g.score > g.highScore {
		g.highScore = g.score
		g.newRecord = true
		g.prefs.SetInt(KeyHighScore, g.highScore)
		g.emit(core.EventNewHighScore)
	}
	g.emit(core.EventGameOver)
	g.recordRun()

	g.logger.Info("game over", "score", g.score, "high", g.highScore, "continues", g.continuesLeft)
}

// Resume requests a continue. The configured gate decides when the
// continue is confirmed; with the default gate it happens immediately.
func (g *Game) Resume() error {
	if g.state != StateGameOver {
		return ErrNotGameOver
	}
	if g.resumePending {
		return ErrResumePending
	}
	if g.continuesLeft <= 0 {
		return ErrNoContinues
	}

	g.resumePending = true
	g.gate(func(ok bool) {
		if err := g.CompleteResume(ok); err != nil {
			g.logger.Debug("resume completion ignored", "err", err)
		}
	})
	return nil
}

// CompleteResume finishes a requested continue. A denied confirmation
// still resumes; it is only logged.
func (g *Game) CompleteResume(ok bool) error {
	if !g.resumePending {
		return ErrNoResume
	}
	g.resumePending = false
	if g.state != StateGameOver || g.continuesLeft <= 0 {
		return ErrNotGameOver
	}
	if !ok {
		g.logger.Warn("resume confirmation denied, resuming anyway")
	}
	g.resume()
	return nil
}

func (g *Game) resume() {
	g.continuesLeft--
	g.continuesUsed++

	g.camera.Reset(g.savedCameraY)
	g.score = g.savedScore

	p := &g.player
	p.Y = g.camera.Y + g.cfg.Viewport.Height*g.cfg.Score.ResumeFraction
	p.VX, p.VY = 0, 0
	p.Grounded = false
	g.refY = p.Y
	g.hasRef = true
	g.falling = nil
	g.runRecorded = false

	g.world.Reanchor(p.X, p.Y, g.score)

	g.state = StatePlaying
	g.emit(core.EventResumed)
	g.logger.Info("resumed", "score", g.score, "continues", g.continuesLeft)
}

// Restart records the current score as the last score and starts over.
func (g *Game) Restart() {
	g.finishRun()

	g.lastScore = g.score
	g.prefs.SetInt(KeyLastScore, g.lastScore)
	if g.score > g.highScore {
		g.highScore = g.score
		g.prefs.SetInt(KeyHighScore, g.highScore)
	}

	g.Start()
	g.emit(core.EventRestarted)
}

// EndRun reports the current run to the recorder if it has not been
// reported since its last game over. The platform calls it on quit.
func (g *Game) EndRun() (RunSummary, bool) {
	return g.finishRun()
}

func (g *Game) finishRun() (RunSummary, bool) {
	if g.state == StateStart || g.runRecorded {
		return RunSummary{}, false
	}
	return g.recordRun()
}

func (g *Game) recordRun() (RunSummary, bool) {
	if g.score <= 0 {
		return RunSummary{}, false
	}
	g.runRecorded = true
	summary := RunSummary{
		Run:           g.runSeq,
		Score:         g.score,
		Coins:         g.runCoins,
		ContinuesUsed: g.continuesUsed,
		Duration:      g.clock - g.runStart,
	}
	if g.recorder != nil {
		g.recorder(summary)
	}
	return summary, true
}

// updateScore derives the score from the climbed height. It only rises.
func (g *Game) updateScore() {
	scale := g.cfg.Score.Scale
	var s int
	if g.hasRef {
		s = g.savedScore + max(0, int(math.Floor((g.refY-g.player.Y)/scale)))
	} else {
		s = max(0, int(math.Floor((g.cfg.Viewport.Height-g.player.Y)/scale)))
	}
	if s > g.score {
		g.score = s
	}
}
