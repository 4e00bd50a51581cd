package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles shared by the menu, shop and scoreboard.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Coins       lipgloss.Style
	Border      lipgloss.Style
	Help        lipgloss.Style
}

// DayTheme is used while the player is low enough to see a day sky.
func DayTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("#3CB371")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#E04040")),
		Coins:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// NightTheme swaps the accents for the night sky.
func NightTheme() Theme {
	theme := DayTheme()
	theme.Title = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0FF")).Bold(true)
	theme.ItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0E0FF")).Bold(true)
	theme.Border = theme.Border.BorderForeground(lipgloss.Color("#191970"))
	return theme
}

// ThemeFor picks the theme matching the sky of the last camera height.
func ThemeFor(night bool) Theme {
	if night {
		return NightTheme()
	}
	return DayTheme()
}
