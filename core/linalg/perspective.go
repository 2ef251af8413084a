package linalg

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidArgument reports projection parameters that cannot build a usable matrix.
var ErrInvalidArgument = errors.New("invalid argument")

// BuildPerspective returns a left-handed perspective projection.
//
// View-space z in [zNear, zFar] maps to [0,1] after the divide and the output w is
// the view-space z. It fails fast on aspect <= 0, zNear <= 0 or zFar <= zNear.
func BuildPerspective(fovY, aspect, zNear, zFar Scalar) (Mat4, error) {
	switch {
	case !(aspect > 0):
		return Mat4{}, fmt.Errorf("perspective: aspect %v must be > 0: %w", aspect, ErrInvalidArgument)
	case !(zNear > 0):
		return Mat4{}, fmt.Errorf("perspective: zNear %v must be > 0: %w", zNear, ErrInvalidArgument)
	case !(zFar > zNear):
		return Mat4{}, fmt.Errorf("perspective: zFar %v must be > zNear %v: %w", zFar, zNear, ErrInvalidArgument)
	}

	yScale := 1 / math32.Tan(fovY/2)
	xScale := yScale / aspect
	zRange := zFar / (zFar - zNear)

	var m Mat4
	m[0][0] = xScale
	m[1][1] = yScale
	m[2][2] = zRange
	m[2][3] = 1
	m[3][2] = -zNear * zRange
	return m, nil
}
