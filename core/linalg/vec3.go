package linalg

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a 3D vector or point.
type Vec3 struct {
	X, Y, Z Scalar
}

// Canonical axes. Forward is +Z (left-handed, looking into the screen).
var (
	AxisRight   = Vec3{1, 0, 0}
	AxisUp      = Vec3{0, 1, 0}
	AxisForward = Vec3{0, 0, 1}
)

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3         { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) Scalar { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSq() Scalar { return v.Dot(v) }

func (v Vec3) Length() Scalar { return math32.Sqrt(v.LengthSq()) }

// Normalize scales v to unit length in place. Vectors with a squared length at or
// below NormalizeFloorSq become the zero vector.
func (v *Vec3) Normalize() {
	lsq := v.LengthSq()
	if lsq <= NormalizeFloorSq {
		*v = Vec3{}
		return
	}
	inv := 1 / math32.Sqrt(lsq)
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
}

// Normalized returns a unit-length copy of v (or the zero vector, see Normalize).
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// TransformNormal applies the upper 3x3 of m to v as a row vector.
// Translation is ignored, which makes it the transform for directions.
func (v Vec3) TransformNormal(m Mat4) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// TransformCoord transforms the point v (w=1) by m and divides by the resulting w.
// A degenerate w yields the zero vector.
func (v Vec3) TransformCoord(m Mat4) Vec3 {
	p, ok := Point(v).Transform(m).PerspectiveDivide()
	if !ok {
		return Vec3{}
	}
	return p
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%.4f,%.4f,%.4f)", v.X, v.Y, v.Z)
}
