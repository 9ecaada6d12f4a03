package vector_math

import (
	"fmt"

	"github.com/chewxy/math32"
)

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate moves points by (tx, ty, tz). Directions (w=0) are left untouched.
func Translate(tx, ty, tz float32) Mat4 {
	tm := Identity()
	tm[12] = tx
	tm[13] = ty
	tm[14] = tz
	return tm
}

func TranslateV(t Vec3) Mat4 {
	return Translate(t.X, t.Y, t.Z)
}

func Scale(sx, sy, sz float32) Mat4 {
	sm := Identity()
	sm[0] = sx
	sm[5] = sy
	sm[10] = sz
	return sm
}

func ScaleV(s Vec3) Mat4 {
	return Scale(s.X, s.Y, s.Z)
}

// RotateX rotates counter-clockwise about +X when looking from +X towards the origin.
func RotateX(theta float32) Mat4 {
	sin, cos := math32.Sincos(theta)
	m := Identity()
	m[5] = cos
	m[6] = sin
	m[9] = -sin
	m[10] = cos
	return m
}

// RotateY rotates counter-clockwise about +Y, taking (1,0,0) to (cos, 0, -sin).
func RotateY(theta float32) Mat4 {
	sin, cos := math32.Sincos(theta)
	m := Identity()
	m[0] = cos
	m[2] = -sin
	m[8] = sin
	m[10] = cos
	return m
}

// RotateZ rotates counter-clockwise about +Z.
func RotateZ(theta float32) Mat4 {
	sin, cos := math32.Sincos(theta)
	m := Identity()
	m[0] = cos
	m[1] = sin
	m[4] = -sin
	m[5] = cos
	return m
}

// RotateEuler applies roll about X first, then pitch about Y, then yaw about Z.
func RotateEuler(yaw, pitch, roll float32) Mat4 {
	return MultAll(RotateZ(yaw), RotateY(pitch), RotateX(roll))
}

// Rotate returns the rotation by theta radians about the axis (ax, ay, az).
// The axis does not need to be normalized but must not be the zero vector.
func Rotate(theta, ax, ay, az float32) (Mat4, error) {
	axis, err := Vec3{X: ax, Y: ay, Z: az}.Norm()
	if err != nil {
		return Identity(), fmt.Errorf("rotation axis: %w", err)
	}
	x, y, z := axis.X, axis.Y, axis.Z
	sinT, cosT := math32.Sincos(theta)
	t := 1 - cosT

	rm := Identity()
	rm[0] = cosT + t*x*x
	rm[1] = t*x*y + z*sinT
	rm[2] = t*x*z - y*sinT

	rm[4] = t*x*y - z*sinT
	rm[5] = cosT + t*y*y
	rm[6] = t*y*z + x*sinT

	rm[8] = t*x*z + y*sinT
	rm[9] = t*y*z - x*sinT
	rm[10] = cosT + t*z*z
	return rm, nil
}

func RotateV(theta float32, axis Vec3) (Mat4, error) {
	return Rotate(theta, axis.X, axis.Y, axis.Z)
}
