package tower

import (
	"math"

	"github.com/vovakirdan/tower-climber/internal/config"
	"github.com/vovakirdan/tower-climber/internal/core"
)

// Camera is the vertical viewport offset. It only moves once the tracked
// point leaves the band between UpperBand and LowerBand.
type Camera struct {
	OffsetY float64

	cfg       config.CameraConfig
	screenW   int
	screenH   int
	maxOffset float64 // bottom of the world minus one screen
	unbounded bool    // no clamp at the top of the world
	ratchet   bool    // never scroll down
}

// NewCamera creates a camera for a world worldH pixels tall. Endless towers
// have no top clamp and never scroll back down.
func NewCamera(cfg config.CameraConfig, screenW, screenH, worldH int, endless bool) *Camera {
	return &Camera{
		cfg:       cfg,
		screenW:   screenW,
		screenH:   screenH,
		maxOffset: float64(max(worldH-screenH, 0)),
		unbounded: endless,
		ratchet:   endless,
	}
}

// Snap places the tracked point on the lower band immediately.
func (c *Camera) Snap(y int) {
	c.OffsetY = c.clamp(float64(y - c.cfg.LowerBand))
}

// Update follows y. A tracked point outside the band is put back on the
// band edge it crossed in the same call, so it is never more than one tick
// of movement below the lower band.
func (c *Camera) Update(y int) {
	screenY := float64(y) - c.OffsetY
	switch {
	case screenY < float64(c.cfg.UpperBand):
		c.OffsetY = float64(y - c.cfg.UpperBand)
	case screenY > float64(c.cfg.LowerBand) && !c.ratchet:
		c.OffsetY = float64(y - c.cfg.LowerBand)
	}
	c.OffsetY = c.clamp(c.OffsetY)
}

func (c *Camera) clamp(off float64) float64 {
	if off > c.maxOffset {
		off = c.maxOffset
	}
	if !c.unbounded && off < 0 {
		off = 0
	}
	return off
}

// Top returns the world Y of the viewport's top edge, floored.
func (c *Camera) Top() int {
	return int(math.Floor(c.OffsetY))
}

// Viewport returns the visible world rectangle.
func (c *Camera) Viewport() core.Rect {
	return core.NewRect(0, c.Top(), c.screenW, c.screenH)
}

// FallLine returns the world Y below which actors are lost.
func (c *Camera) FallLine() int {
	return c.Top() + c.screenH + c.cfg.FallMargin
}
