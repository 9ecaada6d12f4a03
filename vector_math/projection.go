package vector_math

import (
	"fmt"

	"github.com/chewxy/math32"
)

// parallelTolerance is the smallest sine of the angle between forward and up
// that still yields a usable camera basis.
const parallelTolerance = 1e-6

// View builds a view matrix for a camera at eye looking along forward. Both
// forward and up are normalized here and up is re-orthogonalized against
// forward, so the caller only has to make sure they are not parallel.
func View(eye Vec4, forward Vec3, up Vec3) (Mat4, error) {
	f, err := forward.Norm()
	if err != nil {
		return Identity(), fmt.Errorf("view forward: %w", err)
	}
	upN, err := up.Norm()
	if err != nil {
		return Identity(), fmt.Errorf("view up: %w", err)
	}
	side := f.Cross(upN)
	if side.Len() < parallelTolerance {
		return Identity(), fmt.Errorf("view forward %v and up %v: %w", forward, up, ErrParallelVectors)
	}
	s, _ := side.Norm()
	u := s.Cross(f)
	p := eye.Vec3()

	m := Identity()
	m[0], m[4], m[8] = s.X, s.Y, s.Z
	m[1], m[5], m[9] = u.X, u.Y, u.Z
	m[2], m[6], m[10] = -f.X, -f.Y, -f.Z
	m[12] = -s.Dot(p)
	m[13] = -u.Dot(p)
	m[14] = f.Dot(p)
	return m, nil
}

// LookAt is View with the forward direction taken from eye towards target.
func LookAt(eye Vec3, target Vec3, up Vec3) (Mat4, error) {
	d := target.Sub(eye)
	if d.Len() == 0 {
		return Identity(), fmt.Errorf("look at target equals eye position: %w", ErrZeroLength)
	}
	return View(eye.Vec4(1), d, up)
}

// Orthographic maps the box of the given width and height centred on the view
// axis, between the near and far planes, to the OpenGL clip volume with depth
// in [-1, 1].
func Orthographic(width, height, near, far float32) (Mat4, error) {
	if !finite(width, height, near, far) || width <= 0 || height <= 0 || near >= far {
		return Identity(), fmt.Errorf(
			"orthographic width %v height %v near %v far %v: %w", width, height, near, far, ErrInvalidProjection,
		)
	}
	m := Identity()
	m[0] = 2 / width
	m[5] = 2 / height
	m[10] = -2 / (far - near)
	m[14] = -(far + near) / (far - near)
	return m, nil
}

// Perspective implemented after gluPerspective, fov is the vertical field of
// view in radians. A point on the near plane maps to NDC depth -1 and a point
// on the far plane to +1.
func Perspective(aspect, fov, near, far float32) (Mat4, error) {
	if !finite(aspect, fov, near, far) || aspect <= 0 || fov <= 0 || fov >= math32.Pi || near <= 0 || near >= far {
		return Identity(), fmt.Errorf(
			"perspective aspect %v fov %v near %v far %v: %w", aspect, fov, near, far, ErrInvalidProjection,
		)
	}
	f := 1 / math32.Tan(fov/2)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = (2 * far * near) / (near - far)
	return m, nil
}

func finite(fs ...float32) bool {
	for _, f := range fs {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}
