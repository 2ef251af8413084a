package linalg

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion (X, Y, Z vector part, W scalar part).
//
// Operations that need a rotation (RotationMatrix, Rotate) normalize first, so a
// quaternion that drifted from unit length still yields an orthonormal matrix.
type Quat struct {
	X, Y, Z, W Scalar
}

func QuatIdentity() Quat { return Quat{W: 1} }

// FromAxisAngle returns the rotation of rad radians about axis. The axis is
// normalized first; a near-zero axis yields the identity.
func FromAxisAngle(axis Vec3, rad Scalar) Quat {
	n := axis.Normalized()
	if n == (Vec3{}) {
		return QuatIdentity()
	}
	s, c := math32.Sincos(rad * 0.5)
	return Quat{X: n.X * s, Y: n.Y * s, Z: n.Z * s, W: c}
}

// Mul returns the Hamilton product q*r: the rotation r followed by q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
	}
}

// Conjugate negates the vector part. For unit quaternions this is the inverse.
func (q Quat) Conjugate() Quat { return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W} }

func (q Quat) LengthSq() Scalar { return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W }

func (q Quat) Length() Scalar { return math32.Sqrt(q.LengthSq()) }

// Normalize scales q to unit length in place; lengths at or below 1e-6 reset q
// to the identity.
func (q *Quat) Normalize() {
	l := q.Length()
	if l <= quatFloor {
		*q = QuatIdentity()
		return
	}
	inv := 1 / l
	q.X *= inv
	q.Y *= inv
	q.Z *= inv
	q.W *= inv
}

func (q Quat) Normalized() Quat {
	q.Normalize()
	return q
}

// RotationMatrix returns the row-vector rotation matrix of q: v.TransformNormal(m)
// rotates v by q.
func (q Quat) RotationMatrix() Mat4 {
	q.Normalize()

	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, xw := q.X*q.Y, q.X*q.Z, q.X*q.W
	yz, yw, zw := q.Y*q.Z, q.Y*q.W, q.Z*q.W

	m := Identity()
	m[0][0] = 1 - 2*(yy+zz)
	m[0][1] = 2 * (xy + zw)
	m[0][2] = 2 * (xz - yw)

	m[1][0] = 2 * (xy - zw)
	m[1][1] = 1 - 2*(xx+zz)
	m[1][2] = 2 * (yz + xw)

	m[2][0] = 2 * (xz + yw)
	m[2][1] = 2 * (yz - xw)
	m[2][2] = 1 - 2*(xx+yy)
	return m
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 { return v.TransformNormal(q.RotationMatrix()) }

func (q Quat) String() string {
	return fmt.Sprintf("(%.4f,%.4f,%.4f,%.4f)", q.X, q.Y, q.Z, q.W)
}
