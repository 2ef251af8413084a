package linalg

import (
	"math"

	"github.com/chewxy/math32"
)

// Scalar is the numeric type used by every linalg operation.
type Scalar = float32

const (
	// NormalizeFloorSq is the squared length at or below which a vector
	// normalizes to zero instead of dividing by a near-zero length.
	NormalizeFloorSq Scalar = 1e-12

	// DivideEpsilon is the smallest |w| (and the smallest clip denominator)
	// treated as non-degenerate.
	DivideEpsilon Scalar = 1e-6

	// quatFloor is the quaternion length below which Normalize resets to identity.
	quatFloor Scalar = 1e-6
)

// Pi as a Scalar.
const Pi Scalar = math.Pi

// DegToRad converts degrees to radians.
func DegToRad(deg Scalar) Scalar { return deg * (Pi / 180) }

// RadToDeg converts radians to degrees.
func RadToDeg(rad Scalar) Scalar { return rad * (180 / Pi) }

// Abs returns |v|.
func Abs(v Scalar) Scalar { return math32.Abs(v) }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi Scalar) Scalar {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearlyEqual reports whether |a-b| <= eps.
func NearlyEqual(a, b, eps Scalar) bool {
	return math32.Abs(a-b) <= eps
}
