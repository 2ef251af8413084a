package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3NormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec3{
		V3(3, 4, 0),
		V3(-1, 2, -3),
		V3(1e-3, 0, 0),
		V3(250, -75, 1000),
	} {
		n := v.Normalized()
		assert.InDelta(t, 1.0, n.Length(), 1e-5, "normalized %v", v)

		inPlace := v
		inPlace.Normalize()
		assert.Equal(t, n, inPlace)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	var v Vec3
	v.Normalize()
	require.Equal(t, Vec3{}, v)

	tiny := V3(1e-7, 0, 0)
	require.Equal(t, Vec3{}, tiny.Normalized(), "below the floor normalizes to zero")
}

func TestVec3Ops(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)
	assert.Equal(t, V3(5, 7, 9), a.Add(b))
	assert.Equal(t, V3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, V3(2, 4, 6), a.Mul(2))
	assert.Equal(t, Scalar(32), a.Dot(b))
	assert.Equal(t, V3(0, 0, 1), AxisRight.Cross(AxisUp))
	assert.Equal(t, Scalar(14), a.LengthSq())
}

func TestVec3TransformNormalIgnoresTranslation(t *testing.T) {
	m := Translation(V3(10, 20, 30))
	assert.Equal(t, V3(1, 2, 3), V3(1, 2, 3).TransformNormal(m))
	assert.Equal(t, V3(11, 22, 33), V3(1, 2, 3).TransformCoord(m))
}

func TestVec4PerspectiveDivide(t *testing.T) {
	p, ok := Vec4{X: 2, Y: 4, Z: 6, W: 2}.PerspectiveDivide()
	require.True(t, ok)
	assert.Equal(t, V3(1, 2, 3), p)

	_, ok = Vec4{X: 1, Y: 1, Z: 1, W: 1e-7}.PerspectiveDivide()
	assert.False(t, ok)
}

func TestLerpAllComponents(t *testing.T) {
	a := Vec4{X: 0, Y: 0, Z: 0, W: 1}
	b := Vec4{X: 2, Y: 4, Z: 6, W: 3}
	assert.Equal(t, Vec4{X: 1, Y: 2, Z: 3, W: 2}, Lerp(a, b, 0.5))
	assert.Equal(t, a, Lerp(a, b, 0))
	assert.Equal(t, b, Lerp(a, b, 1))
}
