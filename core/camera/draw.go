package camera

import (
	"wirecam/core/clip"
	"wirecam/core/linalg"
	"wirecam/core/scene"
)

// DrawStats counts what happened to each line handed to Draw.
type DrawStats struct {
	Lines    int // lines handed in
	Skipped  int // fewer than two points
	Rejected int // nothing left after clipping, or a degenerate w
	Clipped  int // drawn after at least one endpoint moved
	Drawn    int
}

// Draw renders lines through the camera into dst. Lines are clipped in
// homogeneous clip space before the perspective divide. Pixel coordinates are
// truncated toward zero.
func (c *Camera) Draw(lines []scene.Line, dst LineDrawer) DrawStats {
	st := DrawStats{Lines: len(lines)}
	if dst == nil {
		return st
	}
	viewProj := c.ViewProjection()
	col := c.s.LineColor

	for _, l := range lines {
		if len(l) < 2 {
			st.Skipped++
			continue
		}
		p1 := linalg.Point(l[0]).Transform(viewProj)
		p2 := linalg.Point(l[1]).Transform(viewProj)

		a, b, visible := clip.Segment(p1, p2)
		if !visible {
			st.Rejected++
			continue
		}
		x0, y0, ok0 := c.toScreen(a)
		x1, y1, ok1 := c.toScreen(b)
		if !ok0 || !ok1 {
			st.Rejected++
			continue
		}
		if a != p1 || b != p2 {
			st.Clipped++
		}
		dst.DrawLine(x0, y0, x1, y1, col)
		st.Drawn++
	}
	return st
}

// toScreen divides a clip-space point by w and maps NDC onto the viewport
// with Y pointing down.
func (c *Camera) toScreen(p linalg.Vec4) (x, y int, ok bool) {
	ndc, ok := p.PerspectiveDivide()
	if !ok {
		return 0, 0, false
	}
	hw := linalg.Scalar(c.s.Width) / 2
	hh := linalg.Scalar(c.s.Height) / 2
	return int(ndc.X*hw + hw), int(-ndc.Y*hh + hh), true
}

// Project maps a single world point to pixel coordinates and NDC depth. ok is
// false when the point is behind the near plane, past the far plane or has a
// degenerate w. Points left or right of the view are still mapped.
func (c *Camera) Project(p linalg.Vec3) (x, y int, depth linalg.Scalar, ok bool) {
	cp := linalg.Point(p).Transform(c.ViewProjection())
	if linalg.Abs(cp.W) < linalg.DivideEpsilon || cp.Z < 0 || cp.Z > cp.W {
		return 0, 0, 0, false
	}
	x, y, ok = c.toScreen(cp)
	if !ok {
		return 0, 0, 0, false
	}
	return x, y, cp.Z / cp.W, true
}
