package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
	"github.com/vovakirdan/skyclimb/internal/games/climb"
	"github.com/vovakirdan/skyclimb/internal/storage"
)

// Defaults for GameOptions.
const (
	DefaultContinueDelay = 2 * time.Second
	statusDuration       = 3 * time.Second
)

// GameOptions wires a game screen to its collaborators. Every field is
// optional.
type GameOptions struct {
	Store         *storage.Store
	Player        string
	Config        *config.ClimbConfig
	Logger        *log.Logger
	Watcher       *config.Watcher
	ContinueDelay time.Duration
	// Clipboard receives the share text. Nil disables sharing, which is
	// the case over SSH where the server's clipboard is not the player's.
	Clipboard func(string) error
}

// continueMsg confirms a continue once its countdown has elapsed.
type continueMsg struct {
	done func(ok bool)
}

// configMsg carries a reloaded configuration.
type configMsg struct {
	cfg config.ClimbConfig
}

type configErrMsg struct {
	err error
}

// continueGate holds a continue request until the model schedules its
// countdown. The game calls Gate from inside Tick, so the command is
// picked up right after the tick.
type continueGate struct {
	delay   time.Duration
	pending func(ok bool)
}

func (g *continueGate) Gate(done func(ok bool)) {
	g.pending = done
}

func (g *continueGate) take() tea.Cmd {
	if g.pending == nil {
		return nil
	}
	done := g.pending
	g.pending = nil
	return tea.Tick(g.delay, func(time.Time) tea.Msg {
		return continueMsg{done: done}
	})
}

// GameModel is the Bubble Tea model for the game screen.
type GameModel struct {
	game      *climb.Game
	screen    *core.Screen
	styles    *styleCache
	config    core.RuntimeConfig
	logger    *log.Logger
	watcher   *config.Watcher
	clipboard func(string) error
	keyMapper *KeyMapper
	held      *HeldKeys
	gate      *continueGate

	tickGen     uint64
	lastTick    time.Time
	status      string
	statusUntil time.Time

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game screen. A zero seed is replaced by the time.
func NewGameModel(cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	delay := opts.ContinueDelay
	if delay <= 0 {
		delay = DefaultContinueDelay
	}

	gate := &continueGate{delay: delay}
	gameOpts := []climb.Option{
		climb.WithLogger(logger),
		climb.WithResumeGate(gate.Gate),
	}
	if opts.Config != nil {
		gameOpts = append(gameOpts, climb.WithConfig(*opts.Config))
	}
	if opts.Store != nil {
		gameOpts = append(gameOpts,
			climb.WithKV(opts.Store.KV(opts.Player)),
			climb.WithRunRecorder(runRecorder(opts.Store, opts.Player, logger)),
		)
	}

	game := climb.New(gameOpts...)
	game.Reset(cfg)

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		styles:    newStyleCache(),
		config:    cfg,
		logger:    logger,
		watcher:   opts.Watcher,
		clipboard: opts.Clipboard,
		keyMapper: NewKeyMapper(),
		held:      NewHeldKeys(HoldWindow),
		gate:      gate,
	}
}

// runRecorder saves runs to the history table. A resumed run updates the
// row saved at its previous game over.
func runRecorder(store *storage.Store, player string, logger *log.Logger) climb.RunRecorder {
	var lastRun int
	var lastID string
	return func(s climb.RunSummary) {
		rec := storage.RunRecord{
			Player:        player,
			Score:         s.Score,
			Coins:         s.Coins,
			ContinuesUsed: s.ContinuesUsed,
			Duration:      s.Duration,
		}
		if s.Run == lastRun {
			rec.ID = lastID
		}
		id, err := store.SaveRun(rec)
		if err != nil {
			logger.Warn("could not save run", "err", err)
			return
		}
		lastRun, lastID = s.Run, id
		logger.Debug("run saved", "id", id, "score", s.Score)
	}
}

// Init starts the tick loop and, when configured, the config watch.
func (m GameModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickInterval(), m.tickGen), waitForConfig(m.watcher))
}

// waitForConfig blocks until the watcher reports a reload or an error.
func waitForConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg := <-w.Updates:
			return configMsg{cfg: cfg}
		case err := <-w.Errors:
			return configErrMsg{err: err}
		case <-w.Done():
			return nil
		}
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick(msg.At)

	case continueMsg:
		msg.done(true)
		return m, nil

	case configMsg:
		m.game.ApplyConfig(msg.cfg)
		m.setStatus("Config reloaded, applies next run")
		m.logger.Info("config reloaded")
		return m, waitForConfig(m.watcher)

	case configErrMsg:
		m.logger.Warn("config reload failed", "err", msg.err)
		m.setStatus("Config error: " + msg.err.Error())
		return m, waitForConfig(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.game.EndRun()
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		st := m.game.State()
		if st.GameOver || st.Paused || m.game.RunState() == climb.StateStart {
			m.game.EndRun()
			m.held.Release()
			m.backToMenu = true
		}
		return m, nil
	}

	m.held.Press(action, time.Now())
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	elapsed := m.config.TickInterval()
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	in := m.held.Frame(now)
	if in.Has(core.ActionShare) {
		m.share()
	}

	res := m.game.Tick(in, elapsed)
	if res.Has(core.EventNewHighScore) {
		m.setStatus("New record!")
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickInterval(), m.tickGen)}
	if cmd := m.gate.take(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// share copies a one-line run summary.
func (m *GameModel) share() {
	if m.clipboard == nil {
		m.setStatus("Sharing is not available here")
		return
	}
	snap := m.game.Snapshot()
	text := fmt.Sprintf("I climbed to %d in Sky Climb (best %d)!", snap.Score, snap.HighScore)
	if err := m.clipboard(text); err != nil {
		m.logger.Warn("clipboard write failed", "err", err)
		m.setStatus("Could not copy to clipboard")
		return
	}
	m.setStatus("Copied: " + text)
}

func (m *GameModel) setStatus(s string) {
	m.status = s
	m.statusUntil = m.lastTick.Add(statusDuration)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.setStatus("Saved " + path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && !m.lastTick.After(m.statusUntil) {
		m.screen.DrawTextColored(0, m.screen.Height()-1, " "+m.status+" ", core.ColorGold)
	}
	return renderScreen(m.screen, m.styles)
}

// enter returns to the game screen from the menu with a fresh session.
func (m GameModel) enter(seed int64) (GameModel, tea.Cmd) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m.config.Seed = seed
	m.game.Reset(m.config)
	m.held.Release()
	m.lastTick = time.Time{}
	m.status = ""
	m.backToMenu = false
	m.tickGen++
	return m, tickCmd(m.config.TickInterval(), m.tickGen)
}

// Game exposes the simulation, e.g. for the shop screen.
func (m GameModel) Game() *climb.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in its own program, without the menu.
func Run(cfg core.RuntimeConfig, opts GameOptions) error {
	p := tea.NewProgram(NewGameModel(cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
