package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/skyclimb/internal/games/climb"
)

// ShopKeyMap defines the key bindings for the shop.
type ShopKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Buy  key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ShopKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Buy, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ShopKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Buy}, {k.Back, k.Quit}}
}

// DefaultShopKeyMap returns default key bindings.
func DefaultShopKeyMap() ShopKeyMap {
	return ShopKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Buy: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "buy/select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// doubleJumpRow is the first shop row; skins follow in config order.
const doubleJumpRow = 0

// ShopModel is the Bubble Tea model for the shop screen.
type ShopModel struct {
	economy    *climb.Economy
	table      table.Model
	help       help.Model
	keys       ShopKeyMap
	theme      Theme
	width      int
	height     int
	status     string
	failed     bool
	quitting   bool
	goingBack  bool
	standalone bool
}

// NewShopModel creates a shop over the player's economy.
func NewShopModel(economy *climb.Economy, theme Theme, width, height int) ShopModel {
	m := ShopModel{
		economy: economy,
		help:    help.New(),
		keys:    DefaultShopKeyMap(),
		theme:   theme,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateRows()
	return m
}

func (m *ShopModel) createTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Item", Width: 16},
			{Title: "Price", Width: 8},
			{Title: "Status", Width: 14},
		}),
		table.WithFocused(true),
		table.WithHeight(max(4, min(m.height-10, len(m.economy.Skins())+2))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ShopModel) updateRows() {
	rows := []table.Row{{
		"Double jump",
		humanize.Comma(int64(m.economy.DoubleJumpPrice())),
		fmt.Sprintf("%d owned", m.economy.DoubleJumps()),
	}}
	for _, s := range m.economy.Skins() {
		status := ""
		switch {
		case s.Selected:
			status = "selected"
		case s.Owned:
			status = "owned"
		}
		rows = append(rows, table.Row{s.Name, humanize.Comma(int64(s.Price)), status})
	}
	m.table.SetRows(rows)
}

// Init initializes the shop model.
func (m ShopModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the shop.
func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Buy):
			m.buy(m.table.Cursor())
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// buy purchases the row, or selects it when it is an owned skin.
func (m *ShopModel) buy(row int) {
	var err error
	if row == doubleJumpRow {
		err = m.economy.BuyDoubleJump()
		if err == nil {
			m.setStatus("Bought a double jump", false)
		}
	} else {
		skins := m.economy.Skins()
		if row-1 >= len(skins) {
			return
		}
		s := skins[row-1]
		if !s.Owned {
			err = m.economy.BuySkin(s.ID)
		}
		if err == nil {
			err = m.economy.SelectSkin(s.ID)
		}
		if err == nil {
			m.setStatus(s.Name+" selected", false)
		}
	}

	if err != nil {
		switch {
		case errors.Is(err, climb.ErrInsufficientCoins):
			m.setStatus("Not enough coins", true)
		default:
			m.setStatus(err.Error(), true)
		}
	}
	m.updateRows()
}

func (m *ShopModel) setStatus(s string, failed bool) {
	m.status = s
	m.failed = failed
}

// View renders the shop.
func (m ShopModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(m.theme.Title.Render("SHOP"), m.width))
	b.WriteString("\n\n")
	coins := m.theme.Coins.Render(fmt.Sprintf("Coins: %s", humanize.Comma(int64(m.economy.Coins()))))
	b.WriteString(centerText(coins, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.theme.Border.Render(m.table.View()), m.width))
	b.WriteString("\n")

	if m.status != "" {
		style := m.theme.Status
		if m.failed {
			style = m.theme.Error
		}
		b.WriteString(centerText(style.Render(m.status), m.width))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ShopModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ShopModel) IsQuitting() bool {
	return m.quitting
}

// RunShop shows the shop in its own program.
func RunShop(economy *climb.Economy, width, height int) error {
	model := NewShopModel(economy, DayTheme(), width, height)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
