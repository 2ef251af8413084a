// Package minimap draws a top-down overlay of the scene around the camera.
package minimap

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"

	"wirecam/core/linalg"
	"wirecam/core/render"
	"wirecam/core/scene"
)

// CameraView is the part of the camera the minimap reads. The minimap never
// owns it and must not outlive it.
type CameraView interface {
	Position() linalg.Vec3
	Forward() linalg.Vec3
}

// Layout places the overlay on screen and scales the world into it.
type Layout struct {
	X, Y, W, H int
	Scale      linalg.Scalar // pixels per world unit
	FovH       linalg.Scalar // horizontal fan angle, radians
	Range      linalg.Scalar // fan length in pixels

	Background render.Color
	Border     render.Color
	Marker     render.Color
	Lines      render.Color
}

func DefaultLayout() Layout {
	return Layout{
		X: 10, Y: 10, W: 200, H: 200,
		Scale:      1.5,
		FovH:       linalg.DegToRad(75),
		Range:      60,
		Background: render.Black.WithAlpha(128),
		Border:     render.White,
		Marker:     render.Red,
		Lines:      render.Green,
	}
}

func (l Layout) Rect() image.Rectangle { return image.Rect(l.X, l.Y, l.X+l.W, l.Y+l.H) }

func (l Layout) center() (int, int) { return l.X + l.W/2, l.Y + l.H/2 }

type Option func(*Minimap)

func WithLayout(l Layout) Option { return func(m *Minimap) { m.layout = l } }

// Minimap is the top-down overlay.
type Minimap struct {
	cam    CameraView
	layout Layout
	log    zerolog.Logger
}

// New returns a minimap following cam. A nil cam is logged and leaves Draw a no-op.
func New(cam CameraView, log zerolog.Logger, opts ...Option) *Minimap {
	m := &Minimap{cam: cam, layout: DefaultLayout(), log: log.With().Str("component", "minimap").Logger()}
	for _, o := range opts {
		o(m)
	}
	if cam == nil {
		m.log.Warn().Msg("no camera attached, minimap disabled")
	}
	return m
}

func (m *Minimap) Layout() Layout { return m.layout }

// toView maps world x/z onto the overlay. +Z points down the screen.
func (m *Minimap) toView(p, cam linalg.Vec3) (int, int) {
	cx, cy := m.layout.center()
	x := linalg.Scalar(cx) + (p.X-cam.X)*m.layout.Scale
	y := linalg.Scalar(cy) + (p.Z-cam.Z)*m.layout.Scale
	return int(math32.Round(x)), int(math32.Round(y))
}

// Draw renders the overlay box, the camera marker with its view fan and the
// scene lines seen from above.
func (m *Minimap) Draw(r *render.Rasterizer, lines []scene.Line) {
	if m == nil || m.cam == nil || r == nil {
		return
	}
	l := m.layout
	box := l.Rect()
	r.FillRect(box, l.Background)
	r.StrokeRect(box, l.Border)

	in := r.Within(box)
	cx, cy := l.center()
	in.FillCircle(cx, cy, 4, l.Marker)

	fwd := m.cam.Forward()
	heading := math32.Atan2(fwd.X, fwd.Z)
	ray := func(a linalg.Scalar) (int, int) {
		s, c := math32.Sincos(a)
		return cx + int(s*l.Range), cy + int(c*l.Range)
	}
	fx, fy := ray(heading)
	lx, ly := ray(heading - l.FovH/2)
	rx, ry := ray(heading + l.FovH/2)
	in.DrawLine(cx, cy, fx, fy, l.Marker)
	in.DrawLine(cx, cy, lx, ly, l.Marker)
	in.DrawLine(cx, cy, rx, ry, l.Marker)
	in.DrawLine(lx, ly, rx, ry, l.Marker)

	pos := m.cam.Position()
	for _, ln := range lines {
		if len(ln) < 2 {
			continue
		}
		x0, y0 := m.toView(ln[0], pos)
		x1, y1 := m.toView(ln[1], pos)
		in.DrawLine(x0, y0, x1, y1, l.Lines)
	}
}
