package camera

import (
	"bytes"
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wirecam/core/linalg"
	"wirecam/core/render"
	"wirecam/core/scene"
)

type fakeInput struct {
	dx, dy int
	keys   map[Key]bool
}

func hold(keys ...Key) *fakeInput {
	in := &fakeInput{keys: map[Key]bool{}}
	for _, k := range keys {
		in.keys[k] = true
	}
	return in
}

func (f *fakeInput) PointerDelta() (int, int) { return f.dx, f.dy }
func (f *fakeInput) KeyDown(k Key) bool       { return f.keys[k] }

type segment struct{ x0, y0, x1, y1 int }

type lineRecorder struct {
	lines []segment
	color render.Color
}

func (r *lineRecorder) DrawLine(x0, y0, x1, y1 int, c render.Color) {
	r.lines = append(r.lines, segment{x0, y0, x1, y1})
	r.color = c
}

func newCamera(t *testing.T, mod func(*Settings)) *Camera {
	t.Helper()
	s := Default()
	if mod != nil {
		mod(&s)
	}
	c, err := New(s)
	require.NoError(t, err)
	return c
}

func assertVec(t *testing.T, want, got linalg.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-4, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, 1e-4, msgAndArgs...)
}

func TestNewValidates(t *testing.T) {
	tests := map[string]func(*Settings){
		"zero near":      func(s *Settings) { s.Near = 0 },
		"far below near": func(s *Settings) { s.Far = 0.05 },
		"zero height":    func(s *Settings) { s.Height = 0 },
		"negative pitch": func(s *Settings) { s.PitchLimit = -1 },
	}
	for name, mod := range tests {
		t.Run(name, func(t *testing.T) {
			s := Default()
			mod(&s)
			_, err := New(s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, linalg.ErrInvalidArgument))
		})
	}
}

func TestDefaultPose(t *testing.T) {
	c := newCamera(t, nil)
	assert.Equal(t, linalg.V3(0, 0, -50), c.Position())
	assertVec(t, linalg.AxisForward, c.Forward())
	assertVec(t, linalg.AxisRight, c.Right())
	assertVec(t, linalg.AxisUp, c.Up())

	want, err := linalg.BuildPerspective(linalg.DegToRad(60), 800.0/600.0, 0.1, 1000)
	require.NoError(t, err)
	assert.Equal(t, want, c.Projection())
}

func TestUpdateMoveForward(t *testing.T) {
	c := newCamera(t, nil)
	c.Update(hold(KeyForward))
	assertVec(t, linalg.V3(0, 0, -47.5), c.Position())
	assertVec(t, linalg.V3(0, 0, 2.5), c.LastOffset())
	assert.Equal(t, "Pos:(0.00,0.00,-47.50) Mouse:(0,0) Key: F1.00 R0.00 U0.00 Roll0.00", c.DebugInfo())
}

func TestUpdateMoveAxes(t *testing.T) {
	c := newCamera(t, nil)
	c.Update(hold(KeyRight, KeyUp))
	assertVec(t, linalg.V3(2.5, 2.5, -50), c.Position())

	c.Update(hold(KeyForward, KeyBack, KeyLeft, KeyRight))
	assertVec(t, linalg.V3(2.5, 2.5, -50), c.Position(), "opposing keys cancel")

	c.Update(hold(KeyDown, KeyLeft))
	assertVec(t, linalg.V3(0, 0, -50), c.Position())

	c.Update(nil)
	assertVec(t, linalg.V3(0, 0, -50), c.Position())
}

func TestUpdateYawPitchRoll(t *testing.T) {
	t.Run("yaw", func(t *testing.T) {
		c := newCamera(t, nil)
		c.Update(&fakeInput{dx: 900})
		assertVec(t, linalg.V3(1, 0, 0), c.Forward())
		assertVec(t, linalg.V3(0, 1, 0), c.Up())
	})
	t.Run("pitch", func(t *testing.T) {
		c := newCamera(t, nil)
		c.Update(&fakeInput{dy: 900})
		assertVec(t, linalg.V3(0, -1, 0), c.Forward())
		assertVec(t, linalg.V3(1, 0, 0), c.Right())
	})
	t.Run("roll", func(t *testing.T) {
		c := newCamera(t, nil)
		c.Update(hold(KeyRollRight))
		a := linalg.DegToRad(2)
		assertVec(t, linalg.V3(-math32.Sin(a), math32.Cos(a), 0), c.Up())
		assertVec(t, linalg.AxisForward, c.Forward())
	})
	t.Run("moves along rotated axes", func(t *testing.T) {
		in := hold(KeyForward)
		in.dx = 900
		c := newCamera(t, nil)
		c.Update(in)
		assertVec(t, linalg.V3(2.5, 0, -50), c.Position())
	})
}

func TestOrientationStaysNormalized(t *testing.T) {
	c := newCamera(t, nil)
	in := hold(KeyRollLeft, KeyForward)
	in.dx, in.dy = 37, -23
	for i := 0; i < 500; i++ {
		c.Update(in)
	}
	assert.InDelta(t, 1, c.Orientation().Length(), 1e-4)
	assert.InDelta(t, 0, c.Forward().Dot(c.Up()), 1e-4)
	assert.InDelta(t, 0, c.Forward().Dot(c.Right()), 1e-4)
}

func TestViewMatrix(t *testing.T) {
	c := newCamera(t, nil)
	pos := linalg.V3(3, -7, 11)
	c.SetPose(pos, linalg.FromAxisAngle(linalg.V3(1, 2, 3), 0.8))

	v := c.View()
	assertVec(t, linalg.Vec3{}, pos.TransformCoord(v), "camera position maps to the origin")
	assertVec(t, linalg.AxisForward, c.Forward().TransformNormal(v))
	assertVec(t, linalg.AxisRight, c.Right().TransformNormal(v))
	assertVec(t, linalg.AxisUp, c.Up().TransformNormal(v))

	ahead := pos.Add(c.Forward().Mul(10))
	assertVec(t, linalg.V3(0, 0, 10), ahead.TransformCoord(v))
}

func TestRotationOrder(t *testing.T) {
	mk := func(o RotationOrder) *Camera {
		return newCamera(t, func(s *Settings) {
			s.RotationOrder = o
			s.RollSpeed = linalg.DegToRad(90)
			s.MouseRate = linalg.DegToRad(1)
		})
	}

	world, local := mk(WorldRelative), mk(LocalRelative)
	step := &fakeInput{dx: 30, dy: -20}
	world.Update(step)
	local.Update(step)
	assertVec(t, world.Forward(), local.Forward(), "orders agree from identity")

	world, local = mk(WorldRelative), mk(LocalRelative)
	roll := hold(KeyRollRight)
	world.Update(roll)
	local.Update(roll)
	yaw := &fakeInput{dx: 90}
	world.Update(yaw)
	local.Update(yaw)

	assertVec(t, linalg.V3(0, 1, 0), world.Forward())
	assertVec(t, linalg.V3(-1, 0, 0), local.Forward())
}

func TestPitchLimit(t *testing.T) {
	mod := func(limit linalg.Scalar) func(*Settings) {
		return func(s *Settings) {
			s.MouseRate = linalg.DegToRad(1)
			s.PitchLimit = limit
		}
	}
	down := &fakeInput{dy: 6}

	c := newCamera(t, mod(linalg.DegToRad(10)))
	for i := 0; i < 3; i++ {
		c.Update(down)
	}
	assert.InDelta(t, linalg.DegToRad(10), c.PitchTotal(), 1e-5)
	a := linalg.DegToRad(10)
	assertVec(t, linalg.V3(0, -math32.Sin(a), math32.Cos(a)), c.Forward())

	c.Update(&fakeInput{dy: -4})
	assert.InDelta(t, linalg.DegToRad(6), c.PitchTotal(), 1e-5, "moving back off the limit is not clamped")

	free := newCamera(t, mod(0))
	for i := 0; i < 3; i++ {
		free.Update(down)
	}
	assert.InDelta(t, linalg.DegToRad(18), free.PitchTotal(), 1e-5)
}

func TestSetProjection(t *testing.T) {
	c := newCamera(t, nil)
	before := c.Projection()
	err := c.SetProjection(linalg.DegToRad(60), -1, 0.1, 1000)
	require.Error(t, err)
	assert.True(t, errors.Is(err, linalg.ErrInvalidArgument))
	assert.Equal(t, before, c.Projection())

	require.NoError(t, c.SetProjection(linalg.DegToRad(90), 1, 1, 100))
	assert.NotEqual(t, before, c.Projection())
	assert.InDelta(t, linalg.DegToRad(90), c.Fov(), 1e-6)
}

func TestDrawUnitCube(t *testing.T) {
	c := newCamera(t, nil)
	rec := &lineRecorder{}
	st := c.Draw(scene.Cube(linalg.Vec3{}, 0.5), rec)

	assert.Equal(t, DrawStats{Lines: 12, Drawn: 12}, st)
	require.Len(t, rec.lines, 12)
	assert.Equal(t, render.White, rec.color)
	for _, l := range rec.lines {
		for _, x := range []int{l.x0, l.x1} {
			assert.Greater(t, x, 0)
			assert.Less(t, x, 800)
		}
		for _, y := range []int{l.y0, l.y1} {
			assert.Greater(t, y, 0)
			assert.Less(t, y, 600)
		}
	}
}

func TestDrawDefaultScene(t *testing.T) {
	c := newCamera(t, nil)
	rec := &lineRecorder{}
	lines := scene.Default()
	st := c.Draw(lines, rec)

	assert.Equal(t, len(lines), st.Lines)
	assert.Equal(t, st.Lines, st.Drawn+st.Rejected+st.Skipped)
	assert.Positive(t, st.Clipped, "grid lines cross the near plane")
	assert.Len(t, rec.lines, st.Drawn)
	for _, l := range rec.lines {
		for _, x := range []int{l.x0, l.x1} {
			assert.GreaterOrEqual(t, x, 0)
			assert.LessOrEqual(t, x, 800)
		}
		for _, y := range []int{l.y0, l.y1} {
			assert.GreaterOrEqual(t, y, 0)
			assert.LessOrEqual(t, y, 600)
		}
	}
}

func TestDrawSkipsAndRejects(t *testing.T) {
	c := newCamera(t, nil)
	lines := []scene.Line{
		nil,
		{linalg.V3(0, 0, 0)},
		{linalg.V3(0, 0, -60), linalg.V3(1, 1, -70)}, // behind the camera
		{linalg.V3(-1, 0, 0), linalg.V3(1, 0, 0), linalg.V3(5, 5, 5)},
	}
	rec := &lineRecorder{}
	st := c.Draw(lines, rec)
	assert.Equal(t, DrawStats{Lines: 4, Skipped: 2, Rejected: 1, Drawn: 1}, st)

	assert.Equal(t, DrawStats{Lines: 4}, c.Draw(lines, nil))
}

func TestProject(t *testing.T) {
	c := newCamera(t, nil)
	x, y, depth, ok := c.Project(linalg.Vec3{})
	require.True(t, ok)
	assert.Equal(t, 400, x)
	assert.Equal(t, 300, y)
	assert.Greater(t, depth, linalg.Scalar(0))
	assert.Less(t, depth, linalg.Scalar(1))

	_, _, _, ok = c.Project(linalg.V3(0, 0, -100))
	assert.False(t, ok, "behind the camera")
	_, _, _, ok = c.Project(linalg.V3(0, 0, 5000))
	assert.False(t, ok, "past the far plane")
}

func TestDetailedDebugInfoIsLogged(t *testing.T) {
	var buf bytes.Buffer
	s := Default()
	c, err := New(s, WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	require.NoError(t, err)

	c.Update(hold(KeyForward))
	info := c.DetailedDebugInfo()
	assert.Contains(t, info, "Pos(x:0.0000,y:0.0000,z:-47.5000)")
	assert.Contains(t, info, "KeyIn(F:1.0000,R:0.0000,U:0.0000,Roll:0.0000)")
	assert.Contains(t, info, "MoveOffset(x:0.0000,y:0.0000,z:2.5000)")
	assert.Contains(t, buf.String(), "MoveOffset(x:0.0000,y:0.0000,z:2.5000)")

	buf.Reset()
	quiet, err := New(s, WithLogger(zerolog.New(&buf).Level(zerolog.InfoLevel)))
	require.NoError(t, err)
	quiet.Update(hold(KeyForward))
	assert.Empty(t, buf.String())
}

func TestParseHelpers(t *testing.T) {
	o, err := ParseRotationOrder("local")
	require.NoError(t, err)
	assert.Equal(t, LocalRelative, o)
	assert.Equal(t, "world", WorldRelative.String())
	_, err = ParseRotationOrder("sideways")
	assert.Error(t, err)

	for _, k := range Keys() {
		got, err := ParseKey(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err = ParseKey("jump")
	assert.Error(t, err)
}
