package vector_math

import "github.com/chewxy/math32"

// ToRad is a helper function to turn degree to radians
func ToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// ToDeg is a helper function to turn radians to degree
func ToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Apply multiplies v by m using the given homogeneous coordinate and drops w
// again, w=1 transforms v as a point and w=0 as a direction.
func Apply(v Vec3, w float32, m Mat4) Vec3 {
	return m.MulVec4(v.Vec4(w)).Vec3()
}
