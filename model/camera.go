package model

import (
	"fmt"

	"github.com/chewxy/math32"

	vm "planet_skybox/vector_math"
)

const (
	CAM_PERSPECTIVE_PROJECTION  = iota
	CAM_ORTHOGRAPHIC_PROJECTION = iota
)

// maxPitch keeps the look direction away from the world up axis, where the
// view basis would degenerate.
const maxPitch = math32.Pi/2 - 0.01

// Camera is a free look camera. Yaw turns about the world up axis, pitch tilts
// the look direction up and down. With yaw and pitch at zero it looks down -Z.
// The render loop owns its camera and hands it to input handling by pointer.
type Camera struct {
	ProjectionType int

	Fov    float32 // vertical, in degrees
	Aspect float32
	Near   float32
	Far    float32
	// OrthoHeight is the height of the orthographic view volume, its width
	// follows from Aspect.
	OrthoHeight float32

	Pos        vm.Vec3
	Yaw        float32
	Pitch      float32
	LookTarget *vm.Vec3
	Up         vm.Vec3
}

func NewCamera(fov float32, near float32, far float32) *Camera {
	return &Camera{
		Fov:         fov,
		Aspect:      1,
		Near:        near,
		Far:         far,
		OrthoHeight: 2,
		LookTarget:  nil,
		Up:          vm.Vec3{Y: 1},
	}
}

// LookDir is the unit direction the camera faces when it has no target.
func (c *Camera) LookDir() vm.Vec3 {
	sinY, cosY := math32.Sincos(c.Yaw)
	sinP, cosP := math32.Sincos(c.Pitch)
	return vm.Vec3{X: -sinY * cosP, Y: sinP, Z: -cosY * cosP}
}

// Right is the unit direction to the right of LookDir, parallel to the ground.
func (c *Camera) Right() vm.Vec3 {
	sinY, cosY := math32.Sincos(c.Yaw)
	return vm.Vec3{X: cosY, Z: -sinY}
}

// Move translates the camera in world space.
func (c *Camera) Move(v vm.Vec3) {
	c.Pos = c.Pos.Add(v)
}

// MoveLocal moves along the look direction, to the right and along world up.
func (c *Camera) MoveLocal(forward, right, up float32) {
	d := c.LookDir().ScalarMul(forward).
		Add(c.Right().ScalarMul(right)).
		Add(c.Up.ScalarMul(up))
	c.Move(d)
}

// Turn changes yaw and pitch by the given amounts in radians. Pitch is clamped
// short of straight up and straight down.
func (c *Camera) Turn(dYaw, dPitch float32) {
	c.Yaw = math32.Mod(c.Yaw+dYaw, 2*math32.Pi)
	c.Pitch = math32.Max(-maxPitch, math32.Min(maxPitch, c.Pitch+dPitch))
}

func (c *Camera) SetTarget(v vm.Vec3) {
	c.LookTarget = &v
}

func (c *Camera) ClearTarget() {
	c.LookTarget = nil
}

func (c *Camera) GetProjection() (vm.Mat4, error) {
	switch c.ProjectionType {
	case CAM_PERSPECTIVE_PROJECTION:
		return vm.Perspective(c.Aspect, vm.ToRad(c.Fov), c.Near, c.Far)
	case CAM_ORTHOGRAPHIC_PROJECTION:
		return vm.Orthographic(c.OrthoHeight*c.Aspect, c.OrthoHeight, c.Near, c.Far)
	default:
		return vm.Identity(), fmt.Errorf("unknown projection type %d", c.ProjectionType)
	}
}

func (c *Camera) direction() vm.Vec3 {
	if c.LookTarget != nil {
		if d := c.LookTarget.Sub(c.Pos); d.Len() > 0 {
			return d
		}
	}
	return c.LookDir()
}

// GetView returns the world to camera transform.
func (c *Camera) GetView() (vm.Mat4, error) {
	return vm.View(c.Pos.Vec4(1), c.direction(), c.Up)
}

// GetOrientation is GetView without the translation. The skybox is drawn with
// it so it stays centred on the camera.
func (c *Camera) GetOrientation() (vm.Mat4, error) {
	return vm.View(vm.Vec4{W: 1}, c.direction(), c.Up)
}
