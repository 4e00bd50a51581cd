package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyclimb/internal/games/climb"
)

// Screen identifies a top-level screen of a session.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
	ScreenShop
	ScreenScores
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Title       string
	Description string
	Target      Screen
}

var menuItems = []MenuItem{
	{"Play", "Climb as high as you can", ScreenGame},
	{"Shop", "Spend coins on double jumps and skins", ScreenShop},
	{"High Scores", "Your best runs and everyone else's", ScreenScores},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	snap      climb.Snapshot
	theme     Theme
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a menu showing the player's stats from snap.
func NewMenuModel(snap climb.Snapshot, width, height int) MenuModel {
	return MenuModel{
		items:     menuItems,
		width:     width,
		height:    height,
		snap:      snap,
		theme:     ThemeFor(snap.Night),
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Title.Render("S K Y   C L I M B"), m.width))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Best %d   Last %d   Coins %d   Double jumps %d",
		m.snap.HighScore, m.snap.LastScore, m.snap.TotalCoins, m.snap.DoubleJumps)
	b.WriteString(centerText(m.theme.Subtitle.Render(stats), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := m.theme.ItemNormal.Render("  " + item.Title)
		if i == m.cursor {
			line = m.theme.ItemActive.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Description.Render(m.items[m.cursor].Description), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.Help.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
