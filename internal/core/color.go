package core

// Color is a foreground color for a screen cell, written as "#RRGGBB".
// The empty Color means the terminal default.
type Color string

// Palette used by the climber and its HUD.
const (
	ColorDefault   Color = ""
	ColorWhite     Color = "#FFFFFF"
	ColorGray      Color = "#8A8A8A"
	ColorGold      Color = "#FFD700"
	ColorOrange    Color = "#FF8C00"
	ColorRed       Color = "#E04040"
	ColorGreen     Color = "#3CB371"
	ColorSkyBlue   Color = "#87CEEB"
	ColorNightBlue Color = "#191970"
)
