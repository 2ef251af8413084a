package render

import (
	"image"
	"math"
)

// Rasterizer draws 2D primitives into a Target, optionally restricted to a clip
// rectangle. The zero Clip means the whole target.
type Rasterizer struct {
	T    Target
	Clip image.Rectangle
}

// NewRasterizer returns a rasterizer covering all of t.
func NewRasterizer(t Target) *Rasterizer { return &Rasterizer{T: t} }

// bounds is the clip rectangle intersected with the target.
func (r *Rasterizer) bounds() image.Rectangle {
	if r == nil || r.T == nil {
		return image.Rectangle{}
	}
	w, h := r.T.Size()
	full := image.Rect(0, 0, w, h)
	if r.Clip.Empty() {
		return full
	}
	return r.Clip.Intersect(full)
}

// Within returns a copy of r restricted to rect.
func (r *Rasterizer) Within(rect image.Rectangle) *Rasterizer {
	return &Rasterizer{T: r.T, Clip: rect.Intersect(r.bounds())}
}

func (r *Rasterizer) SetPixel(x, y int, c Color) {
	if !image.Pt(x, y).In(r.bounds()) {
		return
	}
	r.T.SetPixel(x, y, c)
}

// DrawLine draws a Bresenham line including both endpoints. The segment is
// clipped to the bounds first so far off-screen endpoints stay cheap.
func (r *Rasterizer) DrawLine(x0, y0, x1, y1 int, c Color) {
	b := r.bounds()
	if b.Empty() {
		return
	}
	x0, y0, x1, y1, ok := clipLine(b, x0, y0, x1, y1)
	if !ok {
		return
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Rasterizer) FillRect(rect image.Rectangle, c Color) {
	rect = rect.Intersect(r.bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r.T.SetPixel(x, y, c)
		}
	}
}

// StrokeRect outlines rect along its innermost pixels.
func (r *Rasterizer) StrokeRect(rect image.Rectangle, c Color) {
	if rect.Empty() {
		return
	}
	x0, y0 := rect.Min.X, rect.Min.Y
	x1, y1 := rect.Max.X-1, rect.Max.Y-1
	r.DrawLine(x0, y0, x1, y0, c)
	r.DrawLine(x0, y1, x1, y1, c)
	r.DrawLine(x0, y0, x0, y1, c)
	r.DrawLine(x1, y0, x1, y1, c)
}

// FillCircle fills the disc of radius rad around (cx, cy).
func (r *Rasterizer) FillCircle(cx, cy, rad int, c Color) {
	if rad < 0 {
		return
	}
	rr := rad * rad
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx*dx+dy*dy <= rr {
				r.SetPixel(cx+dx, cy+dy, c)
			}
		}
	}
}

// clipLine clips a segment to the pixel rectangle b (Liang-Barsky).
func clipLine(b image.Rectangle, x0, y0, x1, y1 int) (int, int, int, int, bool) {
	minX, minY := float64(b.Min.X), float64(b.Min.Y)
	maxX, maxY := float64(b.Max.X-1), float64(b.Max.Y-1)

	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)

	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{fx0 - minX, maxX - fx0, fy0 - minY, maxY - fy0}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	if t0 > 0 {
		x0 = int(math.Round(fx0 + t0*dx))
		y0 = int(math.Round(fy0 + t0*dy))
	}
	if t1 < 1 {
		x1 = int(math.Round(fx0 + t1*dx))
		y1 = int(math.Round(fy0 + t1*dy))
	}
	return x0, y0, x1, y1, true
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
