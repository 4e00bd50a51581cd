package climb

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyclimb/internal/core"
)

func TestRenderStartScreen(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "SKY CLIMB") {
		t.Errorf("start screen missing title:\n%s", screen.String())
	}
	if screen.Background() == "" {
		t.Error("sky background not set")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t)
	g.Start()
	g.Tick(idle(), frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "BEST") {
		t.Errorf("HUD row = %q, expected BEST", hud)
	}
	if strings.Contains(screen.String(), "SKY CLIMB") {
		t.Error("start overlay still drawn while playing")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newPlayingGame(t)
	forceFall(g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"GAME OVER", "C continue (2 left)"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPlatformGlyphs(t *testing.T) {
	g := newPlayingGame(t)
	g.world.Platforms = append(g.world.Platforms,
		Platform{ID: 100, X: 0, Y: 300, W: 200, H: 20, Kind: KindSpring},
		Platform{ID: 101, X: 200, Y: 300, W: 200, H: 20, Kind: KindBreakable, Broken: true},
	)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, platformGlyphs[KindSpring]) {
		t.Error("spring platform not drawn")
	}
	if !strings.ContainsRune(out, BrokenChar) {
		t.Error("broken platform not drawn as broken")
	}
}

func TestRenderRealGhostLabel(t *testing.T) {
	g := newPlayingGame(t)
	g.ghosts.Real = RealGhost{Y: g.camera.Y + 200, Score: 42, Visible: true}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "LAST 42") {
		t.Errorf("real ghost label missing:\n%s", screen.String())
	}
}

func TestViewportFollowsCamera(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	snap.CameraY = -1000
	h := snap.Viewport.Height

	screen := core.NewScreen(80, 24)
	v := newViewport(screen, snap)
	if r := v.row(-1000); r != hudRows {
		t.Errorf("row(camera top) = %d, expected %d", r, hudRows)
	}
	if r := v.row(-1000 + h/2); r != hudRows+11 {
		t.Errorf("row(view middle) = %d, expected %d", r, hudRows+11)
	}

	snap.Platforms = []Platform{
		{ID: 1, X: 0, Y: -1000 - 100, W: 400, H: 20, Kind: KindSpring},
		{ID: 2, X: 0, Y: -1000 + h/2, W: 400, H: 20, Kind: KindSpring},
	}
	snap.Coins, snap.Pickups, snap.Fakes = nil, nil, nil
	snap.Real.Visible = false
	snap.State = StatePlaying
	snap.Anim = AnimIdle
	RenderSnapshot(screen, snap)
	spring := string(platformGlyphs[KindSpring])
	if strings.Contains(screen.Row(hudRows), spring) {
		t.Error("platform above the camera was drawn on the top row")
	}
	if !strings.Contains(screen.Row(hudRows+11), spring) {
		t.Errorf("platform in the middle of the view not drawn:\n%s", screen.String())
	}
}
