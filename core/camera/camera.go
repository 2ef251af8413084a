// Package camera implements a free-flying first-person camera: quaternion
// orientation driven by pointer and key input, the view/projection pipeline and
// wireframe drawing through a frustum clipper.
package camera

import (
	"fmt"

	"github.com/rs/zerolog"

	"wirecam/core/linalg"
	"wirecam/core/render"
)

// Settings configures a Camera. Angles are in radians.
type Settings struct {
	Position    linalg.Vec3
	Orientation linalg.Quat

	FovY      linalg.Scalar
	Width     int // viewport in pixels, also sets the aspect ratio
	Height    int
	Near, Far linalg.Scalar

	MoveSpeed linalg.Scalar // world units per tick
	MouseRate linalg.Scalar // radians per pointer unit
	RollSpeed linalg.Scalar // radians per tick

	RotationOrder RotationOrder
	PitchLimit    linalg.Scalar // 0 disables the clamp

	LineColor render.Color
}

// Default returns the stock camera: at (0,0,-50) looking down +Z with a 60°
// vertical field of view on an 800x600 viewport.
func Default() Settings {
	return Settings{
		Position:    linalg.V3(0, 0, -50),
		Orientation: linalg.QuatIdentity(),
		FovY:        linalg.DegToRad(60),
		Width:       800,
		Height:      600,
		Near:        0.1,
		Far:         1000,
		MoveSpeed:   2.5,
		MouseRate:   linalg.DegToRad(0.1),
		RollSpeed:   linalg.DegToRad(2),
		LineColor:   render.White,
	}
}

// Aspect is Width/Height.
func (s Settings) Aspect() linalg.Scalar {
	if s.Height == 0 {
		return 0
	}
	return linalg.Scalar(s.Width) / linalg.Scalar(s.Height)
}

type Option func(*Camera)

// WithLogger sets the sink for the per-tick debug trace.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Camera) { c.log = l }
}

// Camera is a first-person camera. It is not safe for concurrent use.
type Camera struct {
	s   Settings
	log zerolog.Logger

	position    linalg.Vec3
	orientation linalg.Quat

	fovY, aspect, near, far linalg.Scalar
	proj                    linalg.Mat4

	pitchTotal linalg.Scalar
	last       tick
}

// tick records what the last Update saw and did.
type tick struct {
	mouseX, mouseY      int
	yaw, pitch, roll    linalg.Scalar
	moveF, moveR, moveU linalg.Scalar
	rollIn              linalg.Scalar
	forward, right, up  linalg.Vec3
	offset              linalg.Vec3
}

// New builds a camera. Invalid projection parameters are returned as an error
// wrapping linalg.ErrInvalidArgument.
func New(s Settings, opts ...Option) (*Camera, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("camera: viewport %dx%d: %w", s.Width, s.Height, linalg.ErrInvalidArgument)
	}
	if s.PitchLimit < 0 {
		return nil, fmt.Errorf("camera: pitch limit %v: %w", s.PitchLimit, linalg.ErrInvalidArgument)
	}
	c := &Camera{s: s, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	if err := c.SetProjection(s.FovY, s.Aspect(), s.Near, s.Far); err != nil {
		return nil, err
	}
	c.SetPose(s.Position, s.Orientation)
	return c, nil
}

// SetProjection rebuilds the projection matrix. On error the previous
// projection stays in place.
func (c *Camera) SetProjection(fovY, aspect, near, far linalg.Scalar) error {
	m, err := linalg.BuildPerspective(fovY, aspect, near, far)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	c.fovY, c.aspect, c.near, c.far = fovY, aspect, near, far
	c.proj = m
	return nil
}

// SetPose places the camera. A zero quaternion means identity.
func (c *Camera) SetPose(pos linalg.Vec3, q linalg.Quat) {
	if q == (linalg.Quat{}) {
		q = linalg.QuatIdentity()
	}
	q.Normalize()
	c.position = pos
	c.orientation = q
	c.pitchTotal = 0
	c.last.forward, c.last.right, c.last.up = c.Forward(), c.Right(), c.Up()
}

func (c *Camera) Position() linalg.Vec3    { return c.position }
func (c *Camera) Orientation() linalg.Quat { return c.orientation }
func (c *Camera) Settings() Settings       { return c.s }

// Viewport returns the pixel size Draw maps NDC onto.
func (c *Camera) Viewport() (w, h int) { return c.s.Width, c.s.Height }

// Fov returns the vertical field of view in radians.
func (c *Camera) Fov() linalg.Scalar { return c.fovY }

// PitchTotal is the pitch accumulated over all updates since the last SetPose.
func (c *Camera) PitchTotal() linalg.Scalar { return c.pitchTotal }

// LastOffset is the world displacement applied by the last Update.
func (c *Camera) LastOffset() linalg.Vec3 { return c.last.offset }

func (c *Camera) Forward() linalg.Vec3 { return c.orientation.Rotate(linalg.AxisForward) }
func (c *Camera) Right() linalg.Vec3   { return c.orientation.Rotate(linalg.AxisRight) }
func (c *Camera) Up() linalg.Vec3      { return c.orientation.Rotate(linalg.AxisUp) }

// View is the inverse translation followed by the inverse rotation.
func (c *Camera) View() linalg.Mat4 {
	invT := linalg.Translation(c.position.Neg())
	invR := c.orientation.Conjugate().RotationMatrix()
	return invT.Mul(invR)
}

func (c *Camera) Projection() linalg.Mat4 { return c.proj }

// ViewProjection is View() * Projection().
func (c *Camera) ViewProjection() linalg.Mat4 { return c.View().Mul(c.proj) }
