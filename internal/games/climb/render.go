package climb

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// Glyphs
const (
	CoinChar       = 'o'
	CoinCharAlt    = 'O'
	ThrustChar     = 'J'
	BrokenChar     = '·'
	GhostLineChar  = '┄'
	RealGhostChar  = '━'
	ThrustBarChar  = '▮'
	ThrustBarSlots = 5
)

var platformGlyphs = map[PlatformKind]rune{
	KindNormal:    '═',
	KindMoving:    '≈',
	KindBreakable: '░',
	KindSpring:    '▲',
}

var animGlyphs = map[Anim]rune{
	AnimIdle:      '●',
	AnimJumping:   '▲',
	AnimSuperJump: '⇑',
	AnimFalling:   '▼',
	AnimThrust:    '✦',
}

// viewport maps world coordinates to screen cells through the camera.
type viewport struct {
	camera Camera
	sx, sy float64
	rows   int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	rows := max(0, dst.Height()-hudRows)
	return viewport{
		camera: Camera{Y: snap.CameraY, viewH: snap.Viewport.Height},
		sx:     float64(dst.Width()) / snap.Viewport.Width,
		sy:     float64(rows) / snap.Viewport.Height,
		rows:   rows,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor(v.camera.ToView(y)*v.sy))
}

func (v viewport) span(w float64) int {
	return max(1, int(math.Round(w*v.sx)))
}

func (v viewport) onField(row int) bool {
	return row >= hudRows && row < hudRows+v.rows
}

// Render draws the current state to dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot. It is separate from Game so recorded
// snapshots can be drawn too.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	dst.SetBackground(snap.Sky)
	v := newViewport(dst, snap)

	for _, f := range snap.Fakes {
		drawFakeGhost(dst, v, f)
	}
	if snap.Real.Visible {
		drawRealGhost(dst, v, snap.Real)
	}

	for _, p := range snap.Platforms {
		drawPlatform(dst, v, p)
	}
	for _, c := range snap.Coins {
		if c.Collected {
			continue
		}
		glyph := CoinChar
		if int(c.Phase)%2 == 1 {
			glyph = CoinCharAlt
		}
		if r := v.row(c.Y); v.onField(r) {
			dst.SetColored(v.col(c.Box().CenterX()), r, glyph, core.ColorGold)
		}
	}
	for _, t := range snap.Pickups {
		if t.Collected {
			continue
		}
		if r := v.row(t.Y); v.onField(r) {
			dst.SetColored(v.col(t.Box().CenterX()), r, ThrustChar, core.ColorOrange)
		}
	}

	drawPlayer(dst, v, snap)
	drawHUD(dst, snap)

	switch {
	case snap.State == StateStart:
		drawCenteredMessage(dst, "SKY CLIMB", "Space to start", "←/→ steer, Space double jump")
	case snap.State == StateGameOver:
		drawGameOver(dst, snap)
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawPlatform(dst *core.Screen, v viewport, p Platform) {
	if !v.camera.Visible(p.Y, p.H) {
		return
	}
	r := v.row(p.Y)
	if !v.onField(r) {
		return
	}
	glyph := platformGlyphs[p.Kind]
	if p.Broken {
		glyph = BrokenChar
	}
	dst.DrawHLine(v.col(p.X), r, v.span(p.W), glyph, p.Color())
}

func drawPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	p := snap.Player
	r := v.row(p.Y + p.H/2)
	if !v.onField(r) {
		return
	}
	color := core.Color(snap.Skin.Color)
	if color == core.ColorDefault {
		color = core.ColorWhite
	}
	dst.DrawHLine(v.col(p.X), r, v.span(p.W), animGlyphs[snap.Anim], color)
}

func drawFakeGhost(dst *core.Screen, v viewport, f FakeGhost) {
	r := v.row(f.Y)
	if !v.onField(r) {
		return
	}
	color := core.Color(f.Color)
	for x := 0; x < dst.Width(); x += 2 {
		dst.SetColored(x, r, GhostLineChar, color)
	}

	label := fmt.Sprintf(" %s %d ", f.Name, f.Score)
	n := utf8.RuneCountInString(label)
	var x int
	switch f.Style % 3 {
	case 0:
		x = 1
	case 1:
		x = (dst.Width() - n) / 2
	default:
		x = dst.Width() - n - 1
	}
	// Labels drift a cell left and right with their phase.
	x += int(math.Round(math.Sin(f.Phase)))
	dst.DrawTextColored(x, r, label, color)
}

func drawRealGhost(dst *core.Screen, v viewport, g RealGhost) {
	r := v.row(g.Y)
	if !v.onField(r) {
		return
	}
	dst.DrawHLine(0, r, dst.Width(), RealGhostChar, core.ColorWhite)
	label := fmt.Sprintf(" LAST %d ", g.Score)
	x := dst.Width() - utf8.RuneCountInString(label) - 2
	x += int(math.Round(math.Sin(g.Phase)))
	dst.DrawTextColored(x, r, label, core.ColorWhite)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	sky := "☀"
	if snap.Night {
		sky = "☾"
	}
	sound := "♪"
	if !snap.SoundEnabled {
		sound = "×"
	}
	left := fmt.Sprintf(" %d  BEST %d  %c%d  DJ %d  ♥%d ",
		snap.Score, snap.HighScore, CoinChar, snap.TotalCoins, snap.DoubleJumps, snap.ContinuesLeft)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	right := sky + " " + sound + " "
	if snap.ThrustLeft > 0 {
		right = thrustBar(snap) + " " + right
	}
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right), 0, right, core.ColorGold)
}

func thrustBar(snap Snapshot) string {
	total := max(snap.ThrustTotal, snap.ThrustLeft)
	filled := int(math.Ceil(float64(snap.ThrustLeft) / float64(total) * ThrustBarSlots))
	filled = core.Clamp(filled, 0, ThrustBarSlots)
	return strings.Repeat(string(ThrustBarChar), filled) + strings.Repeat(" ", ThrustBarSlots-filled)
}

func drawGameOver(dst *core.Screen, snap Snapshot) {
	lines := []string{fmt.Sprintf("Score: %d", snap.Score)}
	if snap.NewRecord {
		lines = append(lines, "NEW RECORD!")
	}
	switch {
	case snap.ResumePending:
		lines = append(lines, "Continuing...")
	case snap.ContinuesLeft > 0:
		lines = append(lines, fmt.Sprintf("C continue (%d left)  R restart", snap.ContinuesLeft))
	default:
		lines = append(lines, "R restart")
	}
	drawCenteredMessage(dst, "GAME OVER", lines...)
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	width := utf8.RuneCountInString(title)
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorGold)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
