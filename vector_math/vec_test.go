package vector_math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormHasUnitLength(t *testing.T) {
	vs := []Vec3{
		{X: 1},
		{X: 3, Y: 4},
		{X: -0.001, Y: 0.002, Z: 0.0005},
		{X: 1e4, Y: -2e4, Z: 3e4},
		{X: 1e-23},
		{X: 3e19},
		{X: -2e-30, Y: 1e-30, Z: 2e-30},
		{X: 3e37, Y: -3e37, Z: 3e37},
	}
	for _, v := range vs {
		n, err := v.Norm()
		require.NoError(t, err, "%v", v)
		assert.InDelta(t, 1, n.Len(), tol, "%v", v)

		n4, err := v.Vec4(0).Norm()
		require.NoError(t, err, "%v", v)
		assert.InDelta(t, 1, n4.Len(), tol, "%v", v)
	}
}

func TestLenWithoutUnderflow(t *testing.T) {
	assert.InDelta(t, 5e-23, Vec3{X: 3e-23, Y: 4e-23}.Len(), 1e-28)
	assert.InDelta(t, 5e20, Vec3{X: 3e20, Y: 4e20}.Len(), 1e15)
	assert.InDelta(t, 5e20, Vec4{Z: 3e20, W: 4e20}.Len(), 1e15)
}

func TestNormZeroVector(t *testing.T) {
	_, err := Vec3{}.Norm()
	assert.ErrorIs(t, err, ErrZeroLength)
	_, err = Vec4{}.Norm()
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestNormNonFinite(t *testing.T) {
	_, err := Vec3{X: math32.NaN()}.Norm()
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = Vec3{Y: math32.Inf(-1)}.Norm()
	assert.ErrorIs(t, err, ErrNonFinite)
	_, err = Vec4{W: math32.Inf(1)}.Norm()
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestRotateAboutTinyAxis(t *testing.T) {
	m, err := Rotate(math32.Pi/2, 1e-23, 0, 0)
	require.NoError(t, err)
	assert.True(t, m.ApproxEqual(RotateX(math32.Pi/2), tol))
}

func TestCrossIsOrthogonal(t *testing.T) {
	pairs := [][2]Vec3{
		{{X: 1}, {Y: 1}},
		{{X: 1, Y: 2, Z: 3}, {X: -4, Y: 0.5, Z: 2}},
		{{X: 0.3, Y: -0.7, Z: 0.1}, {X: 5, Y: 5, Z: -5}},
	}
	for _, p := range pairs {
		c := p[0].Cross(p[1])
		assert.InDelta(t, 0, c.Dot(p[0]), 1e-4)
		assert.InDelta(t, 0, c.Dot(p[1]), 1e-4)
	}
	assert.Equal(t, Vec3{Z: 1}, Vec3{X: 1}.Cross(Vec3{Y: 1}))
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: 5, Z: 6}
	assert.Equal(t, Vec3{X: 5, Y: 7, Z: 9}, a.Add(b))
	assert.Equal(t, Vec3{X: -3, Y: -3, Z: -3}, a.Sub(b))
	assert.Equal(t, Vec3{X: 2, Y: 4, Z: 6}, a.ScalarMul(2))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, float32(5), Vec3{X: 3, Y: 4}.Len())
	assert.Equal(t, Vec4{X: 1, Y: 2, Z: 3, W: 1}, a.Vec4(1))
	assert.Equal(t, a, Vec3FromMgl(a.Mgl()))
}

func TestVec4Ops(t *testing.T) {
	a := Vec4{X: 1, Y: 2, Z: 3, W: 4}
	b := Vec4{X: 1, Y: 1, Z: 1, W: 1}
	assert.Equal(t, float32(10), a.Dot(b))
	assert.Equal(t, Vec4{X: 2, Y: 3, Z: 4, W: 5}, a.Add(b))
	assert.Equal(t, Vec4{Y: 1, Z: 2, W: 3}, a.Sub(b))
	assert.Equal(t, Vec4{X: 0.5, Y: 1, Z: 1.5, W: 2}, a.ScalarMul(0.5))
	assert.Equal(t, float32(2), b.Len())
	assert.Equal(t, Vec3{X: 1, Y: 2, Z: 3}, a.Vec3())
	assert.Equal(t, []float32{1, 2, 3, 4}, a.Slice(nil))

	n, err := b.Norm()
	require.NoError(t, err)
	assert.InDelta(t, 1, n.Len(), tol)
}

func TestVec2Ops(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	assert.Equal(t, Vec2{X: 2, Y: 4}, a.Add(a))
	assert.Equal(t, Vec2{}, a.Sub(a))
}
