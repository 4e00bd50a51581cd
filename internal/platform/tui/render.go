package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// styleCache keeps one lipgloss style per foreground/background pair.
type styleCache struct {
	styles map[[2]core.Color]lipgloss.Style
}

func newStyleCache() *styleCache {
	return &styleCache{styles: make(map[[2]core.Color]lipgloss.Style)}
}

func (c *styleCache) get(fg, bg core.Color) lipgloss.Style {
	k := [2]core.Color{fg, bg}
	if s, ok := c.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(bg))
	}
	c.styles[k] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, newStyleCache())
}

func renderScreen(s *core.Screen, cache *styleCache) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	bg := s.Background()

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cache.get(startColor, bg).Render(run.String()))
		}
	}
	return sb.String()
}
