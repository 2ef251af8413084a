// Package hud draws the screen-space overlays: crosshair, status text and the
// movement direction indicator.
package hud

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"wirecam/core/linalg"
	"wirecam/core/render"
)

const crosshairArm = 10

// Tracker is the camera surface the movement indicator reads.
type Tracker interface {
	Position() linalg.Vec3
	Forward() linalg.Vec3
	LastOffset() linalg.Vec3
	Project(p linalg.Vec3) (x, y int, depth linalg.Scalar, ok bool)
}

// HUD holds the font state. It is not safe for concurrent use.
type HUD struct {
	font       tinyfont.Fonter
	lineHeight int16
	ascent     int16

	Crosshair render.Color
	Text      render.Color
	Indicator render.Color
}

func New() *HUD {
	f := &proggy.TinySZ8pt7b
	lh := int16(f.GetYAdvance())
	return &HUD{
		font:       f,
		lineHeight: lh,
		ascent:     lh * 3 / 4,
		Crosshair:  render.Yellow,
		Text:       render.White,
		Indicator:  render.Cyan,
	}
}

// LineHeight is the vertical advance between text lines in pixels.
func (h *HUD) LineHeight() int { return int(h.lineHeight) }

// TextWidth is the rendered width of s in pixels.
func (h *HUD) TextWidth(s string) int {
	_, w := tinyfont.LineWidth(h.font, s)
	return int(w)
}

// DrawCrosshair draws a plus sign at the center of the target.
func (h *HUD) DrawCrosshair(r *render.Rasterizer) {
	w, ht := r.T.Size()
	cx, cy := w/2, ht/2
	r.DrawLine(cx-crosshairArm, cy, cx+crosshairArm, cy, h.Crosshair)
	r.DrawLine(cx, cy-crosshairArm, cx, cy+crosshairArm, h.Crosshair)
}

// DrawText writes s with its top-left corner at x, y.
func (h *HUD) DrawText(t render.Target, x, y int, s string, c render.Color) {
	d := &displayer{t: t}
	tinyfont.WriteLine(d, h.font, int16(x), int16(y)+h.ascent, s, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// DrawStatus writes the status line near the bottom left corner.
func (h *HUD) DrawStatus(t render.Target, s string) {
	_, ht := t.Size()
	h.DrawText(t, 10, ht-60, s, h.Text)
}

// DrawMovement draws a short line showing the direction of the last move, ahead
// of the camera so that it projects onto the screen.
func (h *HUD) DrawMovement(r *render.Rasterizer, cam Tracker) {
	off := cam.LastOffset()
	if off.LengthSq() <= linalg.NormalizeFloorSq {
		return
	}
	anchor := cam.Position().Add(cam.Forward().Mul(20))
	tip := anchor.Add(off.Normalized().Mul(10))
	x0, y0, _, ok0 := cam.Project(anchor)
	x1, y1, _, ok1 := cam.Project(tip)
	if !ok0 || !ok1 {
		return
	}
	r.DrawLine(x0, y0, x1, y1, h.Indicator)
}

var _ drivers.Displayer = (*displayer)(nil)

// displayer adapts a render.Target to the tinyfont drawing surface.
type displayer struct {
	t render.Target
}

func (d *displayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *displayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), render.RGBA(c.R, c.G, c.B, c.A))
}

func (d *displayer) Display() error { return nil }
