package climb

import (
	"github.com/vovakirdan/skyclimb/internal/config"
	"github.com/vovakirdan/skyclimb/internal/core"
)

// Camera is the vertical scroll offset of the view. It is the only
// transform between world and view coordinates.
type Camera struct {
	Y float64

	lead      float64
	smoothing float64
	viewH     float64
}

// NewCamera creates a camera at offset zero.
func NewCamera(cfg config.CameraConfig, viewH float64) Camera {
	return Camera{lead: cfg.Lead, smoothing: cfg.Smoothing, viewH: viewH}
}

// Follow moves the offset a fixed fraction toward the target that keeps the
// player at the lead line. Applied once per tick, not time-scaled.
func (c *Camera) Follow(playerY float64) {
	target := playerY - c.viewH*c.lead
	c.Y = core.Lerp(c.Y, target, c.smoothing)
}

// Reset jumps straight to an offset.
func (c *Camera) Reset(y float64) {
	c.Y = y
}

// Top returns the world y of the top edge of the view.
func (c Camera) Top() float64 {
	return c.Y
}

// Bottom returns the world y of the bottom edge of the view.
func (c Camera) Bottom() float64 {
	return c.Y + c.viewH
}

// ToView converts a world y into view coordinates.
func (c Camera) ToView(worldY float64) float64 {
	return worldY - c.Y
}

// Visible reports whether the vertical span [y, y+h) intersects the view.
func (c Camera) Visible(y, h float64) bool {
	return y+h > c.Top() && y < c.Bottom()
}
