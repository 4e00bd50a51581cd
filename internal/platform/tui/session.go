package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// SessionModel manages the full session flow: menu -> game, shop or
// scores -> menu. It is the top-level model for local play and for SSH.
type SessionModel struct {
	opts   GameOptions
	config core.RuntimeConfig
	seed   int64

	current Screen
	menu    MenuModel
	game    GameModel
	shop    ShopModel
	scores  ScoreboardModel

	quitting bool
}

// NewSessionModel creates a session that opens on the menu. A non-zero
// seed is used for the first run only.
func NewSessionModel(cfg core.RuntimeConfig, opts GameOptions) SessionModel {
	m := SessionModel{
		opts:    opts,
		config:  cfg,
		seed:    cfg.Seed,
		current: ScreenMenu,
		game:    NewGameModel(cfg, opts),
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.game.Game().Snapshot(), m.config.ScreenW, m.config.ScreenH)
}

// Init starts the config watch. The tick loop starts with the first run.
func (m SessionModel) Init() tea.Cmd {
	return waitForConfig(m.opts.Watcher)
}

// Update routes messages to the active screen. Game traffic always goes
// to the game, which drops ticks from loops it has abandoned.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.game = m.forwardGame(msg)
		switch m.current {
		case ScreenMenu:
			m.menu = m.forwardMenu(msg)
		case ScreenShop:
			m.shop, _ = m.forwardShop(msg)
		case ScreenScores:
			m.scores, _ = m.forwardScores(msg)
		}
		return m, nil

	case TickMsg, continueMsg, configMsg, configErrMsg:
		newGame, cmd := m.game.Update(msg)
		if gm, ok := newGame.(GameModel); ok {
			m.game = gm
		}
		return m, cmd
	}

	switch m.current {
	case ScreenGame:
		return m.updateGame(msg)
	case ScreenShop:
		return m.updateShop(msg)
	case ScreenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) forwardGame(msg tea.Msg) GameModel {
	newGame, _ := m.game.Update(msg)
	if gm, ok := newGame.(GameModel); ok {
		return gm
	}
	return m.game
}

func (m SessionModel) forwardMenu(msg tea.Msg) MenuModel {
	newMenu, _ := m.menu.Update(msg)
	if mm, ok := newMenu.(MenuModel); ok {
		return mm
	}
	return m.menu
}

func (m SessionModel) forwardShop(msg tea.Msg) (ShopModel, tea.Cmd) {
	newShop, cmd := m.shop.Update(msg)
	if sm, ok := newShop.(ShopModel); ok {
		return sm, cmd
	}
	return m.shop, cmd
}

func (m SessionModel) forwardScores(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if sm, ok := newScores.(ScoreboardModel); ok {
		return sm, cmd
	}
	return m.scores, cmd
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.menu = m.forwardMenu(msg)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, nil
	}

	theme := ThemeFor(m.game.Game().Snapshot().Night)
	switch selected.Target {
	case ScreenGame:
		var cmd tea.Cmd
		m.game, cmd = m.game.enter(m.seed)
		m.seed = 0
		m.current = ScreenGame
		return m, cmd
	case ScreenShop:
		m.shop = NewShopModel(m.game.Game().Economy(), theme, m.config.ScreenW, m.config.ScreenH)
		m.current = ScreenShop
	case ScreenScores:
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Player, theme, m.config.ScreenW, m.config.ScreenH)
		m.current = ScreenScores
	}
	return m, nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newGame, cmd := m.game.Update(msg)
	if gm, ok := newGame.(GameModel); ok {
		m.game = gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		return m.backToMenu(), nil
	}
	return m, cmd
}

func (m SessionModel) updateShop(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.shop, cmd = m.forwardShop(msg)

	if m.shop.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.shop.IsGoingBack() {
		return m.backToMenu(), nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scores, cmd = m.forwardScores(msg)

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu(), nil
	}
	return m, cmd
}

func (m SessionModel) backToMenu() SessionModel {
	m.current = ScreenMenu
	m.menu = m.newMenu()
	return m
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case ScreenGame:
		return m.game.View()
	case ScreenShop:
		return m.shop.View()
	case ScreenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Current returns the active screen.
func (m SessionModel) Current() Screen {
	return m.current
}

// RunSession runs a full session with menu in its own program.
func RunSession(cfg core.RuntimeConfig, opts GameOptions) error {
	p := tea.NewProgram(NewSessionModel(cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
