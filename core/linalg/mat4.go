package linalg

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Mat4 is a row-major 4x4 matrix: m[row][col].
type Mat4 [4][4]Scalar

func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns a*b, C[i][j] = sum_k a[i][k]*b[k][j].
// With row vectors, v*(a*b) applies a first and b second.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[i][0]*b[0][j] +
				a[i][1]*b[1][j] +
				a[i][2]*b[2][j] +
				a[i][3]*b[3][j]
		}
	}
	return out
}

func (a Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = a[j][i]
		}
	}
	return out
}

// Equals compares element-wise within eps.
func (a Mat4) Equals(b Mat4, eps Scalar) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if !NearlyEqual(a[i][j], b[i][j], eps) {
				return false
			}
		}
	}
	return true
}

// Translation encodes v in row 3.
func Translation(v Vec3) Mat4 {
	m := Identity()
	m[3][0] = v.X
	m[3][1] = v.Y
	m[3][2] = v.Z
	return m
}

func Scale(v Vec3) Mat4 {
	m := Identity()
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	return m
}

// RotationX is a left-handed rotation about +X.
func RotationX(rad Scalar) Mat4 {
	s, c := math32.Sincos(rad)
	m := Identity()
	m[1][1], m[1][2] = c, s
	m[2][1], m[2][2] = -s, c
	return m
}

// RotationY is a left-handed rotation about +Y.
func RotationY(rad Scalar) Mat4 {
	s, c := math32.Sincos(rad)
	m := Identity()
	m[0][0], m[0][2] = c, -s
	m[2][0], m[2][2] = s, c
	return m
}

// RotationZ is a left-handed rotation about +Z.
func RotationZ(rad Scalar) Mat4 {
	s, c := math32.Sincos(rad)
	m := Identity()
	m[0][0], m[0][1] = c, s
	m[1][0], m[1][1] = -s, c
	return m
}

func (a Mat4) String() string {
	var b strings.Builder
	for i, row := range a {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%9.4f %9.4f %9.4f %9.4f]", row[0], row[1], row[2], row[3])
	}
	return b.String()
}
