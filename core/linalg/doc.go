// Package linalg holds the value types of the camera pipeline: Vec3, Vec4, Mat4
// and Quat, plus the perspective projection builder.
//
// Conventions:
//
//	Scalar is float32.
//	Mat4 is row-major and multiplies row vectors from the left: v' = v*M.
//	Translation lives in row 3, columns 0..2.
//	a.Mul(b) for quaternions applies b first, then a.
//	Projection is left-handed: view-space +Z looks into the screen and clip z
//	maps to [0,1] after the perspective divide.
//
// The package has no logging and no allocation in any operation.
package linalg
