package linalg

// Vec4 is a homogeneous point. W carries the perspective divisor.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Point lifts v to a homogeneous point with w=1.
func Point(v Vec3) Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1} }

// Transform returns the row-vector product v*m. W is taken from the product.
func (v Vec4) Transform(m Mat4) Vec4 {
	return Vec4{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// XYZ drops w without dividing.
func (v Vec4) XYZ() Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// PerspectiveDivide returns (x/w, y/w, z/w). ok is false when |w| <= DivideEpsilon.
func (v Vec4) PerspectiveDivide() (Vec3, bool) {
	if Abs(v.W) <= DivideEpsilon {
		return Vec3{}, false
	}
	inv := 1 / v.W
	return Vec3{X: v.X * inv, Y: v.Y * inv, Z: v.Z * inv}, true
}

// Lerp interpolates all four components: a + (b-a)*t.
func Lerp(a, b Vec4, t Scalar) Vec4 {
	return Vec4{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
		W: a.W + (b.W-a.W)*t,
	}
}
