package minimap

import (
	"bytes"
	"image"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wirecam/core/linalg"
	"wirecam/core/render"
	"wirecam/core/scene"
)

type fixedCamera struct {
	pos, fwd linalg.Vec3
}

func (c fixedCamera) Position() linalg.Vec3 { return c.pos }
func (c fixedCamera) Forward() linalg.Vec3  { return c.fwd }

// spy records pixels written outside a rectangle.
type spy struct {
	*render.RGB565Target
	allowed image.Rectangle
	written int
	outside []image.Point
}

func (s *spy) SetPixel(x, y int, c render.Color) {
	s.written++
	if !image.Pt(x, y).In(s.allowed) {
		s.outside = append(s.outside, image.Pt(x, y))
	}
	s.RGB565Target.SetPixel(x, y, c)
}

func TestNilCameraIsNoop(t *testing.T) {
	var buf bytes.Buffer
	m := New(nil, zerolog.New(&buf))
	assert.Contains(t, buf.String(), "minimap disabled")

	tg := &spy{RGB565Target: render.NewRGB565Target(320, 240)}
	m.Draw(render.NewRasterizer(tg), scene.Default())
	assert.Zero(t, tg.written)
}

func TestDrawStaysInsideViewport(t *testing.T) {
	cam := fixedCamera{pos: linalg.V3(0, 0, -50), fwd: linalg.AxisForward}
	m := New(cam, zerolog.Nop())
	tg := &spy{RGB565Target: render.NewRGB565Target(800, 600), allowed: m.Layout().Rect()}

	m.Draw(render.NewRasterizer(tg), scene.Default())
	require.Positive(t, tg.written)
	assert.Empty(t, tg.outside)
}

func TestMarkerAndHeading(t *testing.T) {
	cam := fixedCamera{pos: linalg.V3(500, 0, 500), fwd: linalg.AxisForward}
	m := New(cam, zerolog.Nop())
	tg := render.NewRGB565Target(800, 600)
	tg.Clear(render.Black)
	m.Draw(render.NewRasterizer(tg), nil)

	assert.Equal(t, render.Red, tg.At(110, 110), "marker")
	assert.Equal(t, render.Red, tg.At(110, 150), "forward ray points down the map for +Z")
	assert.Equal(t, render.White, tg.At(10, 10), "border")
	assert.NotEqual(t, render.Red, tg.At(110, 70), "nothing drawn behind the camera")

	// Turned to face +X the ray swings right.
	cam.fwd = linalg.AxisRight
	m = New(cam, zerolog.Nop())
	tg.Clear(render.Black)
	m.Draw(render.NewRasterizer(tg), nil)
	assert.Equal(t, render.Red, tg.At(150, 110))
}

func TestSceneLinesFollowCamera(t *testing.T) {
	cam := fixedCamera{pos: linalg.V3(0, 0, 0), fwd: linalg.AxisForward}
	m := New(cam, zerolog.Nop(), WithLayout(Layout{
		X: 0, Y: 0, W: 100, H: 100, Scale: 1, FovH: linalg.DegToRad(75), Range: 0,
		Background: render.Black, Border: render.Black, Marker: render.Black, Lines: render.Green,
	}))
	tg := render.NewRGB565Target(100, 100)
	m.Draw(render.NewRasterizer(tg), []scene.Line{scene.Segment(linalg.V3(10, 5, -20), linalg.V3(10, 5, 20))})

	assert.Equal(t, render.Green, tg.At(60, 30))
	assert.Equal(t, render.Green, tg.At(60, 70))
	assert.Equal(t, render.Black, tg.At(61, 50))
}
