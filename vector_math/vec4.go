package vector_math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec4 is a homogeneous vector. W is 1 for points and 0 for directions.
type Vec4 struct {
	X, Y, Z, W float32
}

func (v Vec4) Dot(w Vec4) float32 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z) + (v.W * w.W)
}

func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

func (v Vec4) ScalarMul(factor float32) Vec4 {
	return Vec4{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
		W: v.W * factor,
	}
}

// Len is the euclidean norm over all four components, w included.
func (v Vec4) Len() float32 {
	m := maxAbs(v.X, v.Y, v.Z, v.W)
	if m == 0 || math32.IsInf(m, 0) || math32.IsNaN(m) {
		return m
	}
	w := Vec4{X: v.X / m, Y: v.Y / m, Z: v.Z / m, W: v.W / m}
	return m * math32.Sqrt(w.Dot(w))
}

func (v Vec4) Norm() (Vec4, error) {
	m := maxAbs(v.X, v.Y, v.Z, v.W)
	if math32.IsNaN(m) || math32.IsInf(m, 0) {
		return Vec4{}, fmt.Errorf("normalize %v: %w", v, ErrNonFinite)
	}
	if m == 0 {
		return Vec4{}, fmt.Errorf("normalize %v: %w", v, ErrZeroLength)
	}
	w := Vec4{X: v.X / m, Y: v.Y / m, Z: v.Z / m, W: v.W / m}
	return w.ScalarMul(1 / math32.Sqrt(w.Dot(w))), nil
}

// Vec3 drops the homogeneous coordinate without dividing by it.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Slice appends the components to dst in x, y, z, w order.
func (v Vec4) Slice(dst []float32) []float32 {
	return append(dst, v.X, v.Y, v.Z, v.W)
}
