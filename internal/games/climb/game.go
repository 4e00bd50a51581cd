// Package climb implements the endless vertical climber: procedural
// platforms, auto-jumping physics, a smoothed camera, a score and continue
// state machine and a population of ghost height markers.
//
// A Game is a self-contained simulation context. It is not safe for
// concurrent use; the platform drives it from a single goroutine.
package climb

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// ghostSeedSalt separates the ghost RNG stream from the world stream.
const ghostSeedSalt = 0x5ca1ab1e

// Game is the climber simulation.
type Game struct {
	cfg        config.ClimbConfig
	pendingCfg *config.ClimbConfig
	runtime    core.RuntimeConfig

	logger   *log.Logger
	kv       KV
	gate     ResumeGate
	recorder RunRecorder

	rng      *Rand
	ghostRng *Rand
	world    *World
	ghostGen *GhostGenerator
	prefs    *Prefs
	economy  *Economy
	queue    DeferredQueue

	player Player
	camera Camera
	ghosts Population

	state  RunState
	paused bool
	clock  time.Duration

	score         int
	highScore     int
	lastScore     int
	continuesLeft int
	continuesUsed int
	hasRef        bool
	refY          float64
	savedCameraY  float64
	savedScore    int
	falling       *fallSnapshot
	thrustLeft    time.Duration
	newRecord     bool
	resumePending bool
	soundEnabled  bool

	runSeq      int
	runStart    time.Duration
	runCoins    int
	runRecorded bool

	landings  int
	autoJumps int
	events    []core.Event
}

// Option configures a Game.
type Option func(*Game)

// WithConfig sets the simulation tunables.
func WithConfig(cfg config.ClimbConfig) Option {
	return func(g *Game) { g.cfg = cfg }
}

// WithKV sets the persistent store. The default keeps values in memory.
func WithKV(kv KV) Option {
	return func(g *Game) { g.kv = kv }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithResumeGate sets the continue confirmation. The default confirms
// immediately.
func WithResumeGate(gate ResumeGate) Option {
	return func(g *Game) { g.gate = gate }
}

// WithRunRecorder sets a callback receiving every finished run.
func WithRunRecorder(r RunRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// New creates a climber waiting on its start screen.
func New(opts ...Option) *Game {
	g := &Game{
		cfg:    config.DefaultClimbConfig(),
		kv:     NewMemoryKV(),
		logger: log.New(io.Discard),
		gate:   ImmediateGate,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "climb"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sky Climb"
}

// Reset rebuilds the simulation for a new session and returns to the
// start screen. Persistent values are reloaded from the store.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.pendingCfg != nil {
		g.cfg = *g.pendingCfg
		g.pendingCfg = nil
	}

	g.rng = NewRand(runtime.Seed)
	g.ghostRng = NewRand(runtime.Seed ^ ghostSeedSalt)
	g.world = NewWorld(g.cfg, g.rng)
	g.ghostGen = NewGhostGenerator(g.cfg, g.ghostRng)
	g.prefs = newPrefs(g.kv, g.logger)
	g.economy = newEconomy(g.prefs, g.cfg.Shop)
	g.queue.Clear()

	g.highScore = g.prefs.Int(KeyHighScore)
	g.lastScore = g.prefs.Int(KeyLastScore)
	g.soundEnabled = g.prefs.Bool(KeySoundEnabled, true)

	g.state = StateStart
	g.paused = false
	g.clock = 0
	g.score = 0
	g.continuesLeft = g.cfg.Score.Continues
	g.continuesUsed = 0
	g.resumePending = false
	g.events = g.events[:0]

	g.player = newPlayer(g.cfg)
	g.camera = NewCamera(g.cfg.Camera, g.cfg.Viewport.Height)
	g.world.Seed()
	g.ghosts = g.ghostGen.Generate(g.lastScore)
}

// ApplyConfig stages a configuration for the next run. The current run
// keeps its tunables.
func (g *Game) ApplyConfig(cfg config.ClimbConfig) {
	g.pendingCfg = &cfg
}

func (g *Game) applyPendingConfig() {
	if g.pendingCfg == nil {
		return
	}
	g.cfg = *g.pendingCfg
	g.pendingCfg = nil
	g.world.Reconfigure(g.cfg)
	g.ghostGen = NewGhostGenerator(g.cfg, g.ghostRng)
	g.economy.shop = g.cfg.Shop
	g.logger.Info("configuration applied")
}

// Step advances the simulation by one tick of the runtime's tick rate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Tick(in, g.runtime.TickInterval())
}

// Tick advances the simulation by elapsed, which is clamped.
func (g *Game) Tick(in core.InputFrame, elapsed time.Duration) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionSound) {
		g.ToggleSound()
	}

	switch g.state {
	case StateStart:
		if in.Has(core.ActionJump) || in.Has(core.ActionContinue) {
			g.Start()
		}
		return g.result()
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.Restart()
		} else if in.Has(core.ActionContinue) {
			if err := g.Resume(); err != nil {
				g.logger.Debug("continue refused", "err", err)
			}
		}
		g.ghostGen.Animate(&g.ghosts)
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	elapsed = g.clampElapsed(elapsed)
	ts := g.timeScale(elapsed)
	g.clock += elapsed
	g.queue.RunDue(g.clock)

	if in.Has(core.ActionJump) {
		g.DoubleJump()
	}

	g.stepPlayer(in, ts, elapsed)
	if g.state != StatePlaying {
		return g.result()
	}

	g.world.MovePlatforms(ts)
	g.collect(ts)
	g.updateScore()
	g.ghostGen.Animate(&g.ghosts)

	return g.result()
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.state == StateGameOver,
		Paused:    g.paused,
		CanResume: g.state == StateGameOver && g.continuesLeft > 0 && !g.resumePending,
	}
}

// RunState returns the lifecycle phase.
func (g *Game) RunState() RunState {
	return g.state
}

// Economy exposes the shop.
func (g *Game) Economy() *Economy {
	return g.economy
}

// ContinuesLeft returns the remaining continue allowance.
func (g *Game) ContinuesLeft() int {
	return g.continuesLeft
}

// ResumePending reports whether a continue awaits confirmation.
func (g *Game) ResumePending() bool {
	return g.resumePending
}

// SoundEnabled returns the persisted sound flag.
func (g *Game) SoundEnabled() bool {
	return g.soundEnabled
}

// ToggleSound flips and persists the sound flag.
func (g *Game) ToggleSound() {
	g.soundEnabled = !g.soundEnabled
	g.prefs.SetBool(KeySoundEnabled, g.soundEnabled)
}

// Ghosts returns the current marker population.
func (g *Game) Ghosts() Population {
	return g.ghosts
}
