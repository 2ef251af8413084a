package camera

import (
	"fmt"

	"wirecam/core/linalg"
)

// RotationOrder selects how a tick's delta rotation composes with the current
// orientation.
type RotationOrder uint8

const (
	// WorldRelative applies orientation = delta * orientation.
	WorldRelative RotationOrder = iota
	// LocalRelative applies orientation = orientation * delta.
	LocalRelative
)

func (o RotationOrder) String() string {
	switch o {
	case WorldRelative:
		return "world"
	case LocalRelative:
		return "local"
	}
	return fmt.Sprintf("RotationOrder(%d)", uint8(o))
}

func ParseRotationOrder(s string) (RotationOrder, error) {
	switch s {
	case "", "world":
		return WorldRelative, nil
	case "local":
		return LocalRelative, nil
	}
	return 0, fmt.Errorf("camera: rotation order %q: want world or local", s)
}

func (o *RotationOrder) UnmarshalText(b []byte) error {
	v, err := ParseRotationOrder(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func (o RotationOrder) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Apply composes delta onto q.
func (o RotationOrder) Apply(q, delta linalg.Quat) linalg.Quat {
	if o == LocalRelative {
		return q.Mul(delta)
	}
	return delta.Mul(q)
}

// limitPitch returns the part of pitch that keeps the accumulated pitch within
// ±PitchLimit and records the new total. A zero limit lets everything through.
func (c *Camera) limitPitch(pitch linalg.Scalar) linalg.Scalar {
	next := c.pitchTotal + pitch
	if lim := c.s.PitchLimit; lim > 0 {
		next = linalg.Clamp(next, -lim, lim)
		pitch = next - c.pitchTotal
	}
	c.pitchTotal = next
	return pitch
}
