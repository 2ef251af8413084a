package camera

import "wirecam/core/linalg"

// Update advances the camera by one tick of input. A nil input is treated as
// no input at all.
func (c *Camera) Update(in Input) {
	if in == nil {
		in = noInput{}
	}

	dx, dy := in.PointerDelta()
	c.last.mouseX, c.last.mouseY = dx, dy
	c.last.yaw = linalg.Scalar(dx) * c.s.MouseRate
	c.last.pitch = c.limitPitch(linalg.Scalar(dy) * c.s.MouseRate)
	c.last.rollIn = axis(in, KeyRollRight, KeyRollLeft)
	c.last.roll = c.last.rollIn * c.s.RollSpeed

	// Rotation axes come from the orientation before this tick.
	up, right, forward := c.Up(), c.Right(), c.Forward()
	yawQ := linalg.FromAxisAngle(up, c.last.yaw)
	pitchQ := linalg.FromAxisAngle(right, c.last.pitch)
	rollQ := linalg.FromAxisAngle(forward, c.last.roll)
	delta := rollQ.Mul(pitchQ).Mul(yawQ)

	c.orientation = c.s.RotationOrder.Apply(c.orientation, delta)
	c.orientation.Normalize()

	c.last.forward, c.last.right, c.last.up = c.Forward(), c.Right(), c.Up()

	c.last.moveF = axis(in, KeyForward, KeyBack)
	c.last.moveR = axis(in, KeyRight, KeyLeft)
	c.last.moveU = axis(in, KeyUp, KeyDown)

	var off linalg.Vec3
	off = off.Add(c.last.forward.Mul(c.last.moveF * c.s.MoveSpeed))
	off = off.Add(c.last.right.Mul(c.last.moveR * c.s.MoveSpeed))
	off = off.Add(c.last.up.Mul(c.last.moveU * c.s.MoveSpeed))
	c.last.offset = off
	c.position = c.position.Add(off)

	if e := c.log.Debug(); e.Enabled() {
		e.Msg(c.DetailedDebugInfo())
	}
}

type noInput struct{}

func (noInput) PointerDelta() (int, int) { return 0, 0 }
func (noInput) KeyDown(Key) bool         { return false }
