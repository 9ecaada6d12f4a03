package vector_math

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: (v.Y * w.Z) - (v.Z * w.Y),
		Y: (v.Z * w.X) - (v.X * w.Z),
		Z: (v.X * w.Y) - (v.Y * w.X),
	}
}

func (v Vec3) Dot(w Vec3) float32 {
	return (v.X * w.X) + (v.Y * w.Y) + (v.Z * w.Z)
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{
		X: v.X - w.X,
		Y: v.Y - w.Y,
		Z: v.Z - w.Z,
	}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{
		X: v.X + w.X,
		Y: v.Y + w.Y,
		Z: v.Z + w.Z,
	}
}

func (v Vec3) ScalarMul(factor float32) Vec3 {
	return Vec3{
		X: v.X * factor,
		Y: v.Y * factor,
		Z: v.Z * factor,
	}
}

// Len returns the euclidean norm of v. Components are scaled by the largest
// magnitude first so tiny and huge vectors neither underflow nor overflow.
func (v Vec3) Len() float32 {
	m := maxAbs(v.X, v.Y, v.Z)
	if m == 0 || math32.IsInf(m, 0) || math32.IsNaN(m) {
		return m
	}
	x, y, z := v.X/m, v.Y/m, v.Z/m
	return m * math32.Sqrt(x*x+y*y+z*z)
}

// Norm returns v scaled to unit length. The zero vector has no direction and
// yields ErrZeroLength, NaN or infinite components yield ErrNonFinite.
func (v Vec3) Norm() (Vec3, error) {
	m := maxAbs(v.X, v.Y, v.Z)
	if math32.IsNaN(m) || math32.IsInf(m, 0) {
		return Vec3{}, fmt.Errorf("normalize %v: %w", v, ErrNonFinite)
	}
	if m == 0 {
		return Vec3{}, fmt.Errorf("normalize %v: %w", v, ErrZeroLength)
	}
	w := Vec3{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
	l := math32.Sqrt(w.X*w.X + w.Y*w.Y + w.Z*w.Z)
	return Vec3{
		X: w.X / l,
		Y: w.Y / l,
		Z: w.Z / l,
	}, nil
}

// maxAbs is the largest component magnitude, NaN if any component is NaN.
func maxAbs(fs ...float32) float32 {
	var m float32
	for _, f := range fs {
		if math32.IsNaN(f) {
			return f
		}
		m = math32.Max(m, math32.Abs(f))
	}
	return m
}

// Vec4 extends v by the homogeneous coordinate w, 1 for points and 0 for directions.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func (v Vec3) Mgl() mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromMgl(v mgl32.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}
