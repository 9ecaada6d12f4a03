package model

import (
	"github.com/chewxy/math32"

	vm "planet_skybox/vector_math"
)

// Planet moves a body model on a circular orbit about the world origin in the XZ plane while it
// spins about its own, optionally tilted, axis.
type Planet struct {
	Name string

	OrbitRadius float32
	OrbitPeriod float32 // seconds per orbit, 0 keeps the planet in place
	SpinPeriod  float32 // seconds per revolution, 0 disables spin
	Tilt        float32 // axial tilt in radians, about Z
	Scale       float32

	Body *Model
	Ring *Model // optional
}

func NewPlanet(name string, body *Model) *Planet {
	return &Planet{
		Name:  name,
		Scale: 1,
		Body:  body,
	}
}

func angle(t, period float32) float32 {
	if period == 0 {
		return 0
	}
	return 2 * math32.Pi * math32.Mod(t, period) / period
}

func (p *Planet) OrbitAngle(t float32) float32 {
	return angle(t, p.OrbitPeriod)
}

func (p *Planet) SpinAngle(t float32) float32 {
	return angle(t, p.SpinPeriod)
}

// carrier places the planet on its orbit and applies the axial tilt.
func (p *Planet) carrier(t float32) vm.Mat4 {
	orbit := vm.RotateY(p.OrbitAngle(t))
	translate := vm.Translate(p.OrbitRadius, 0, 0)
	return vm.MultAll(orbit, translate, vm.RotateZ(p.Tilt))
}

// ModelMatrix returns orbit × (translate × spin) × scale at time t, the spin carrying the tilt.
func (p *Planet) ModelMatrix(t float32) vm.Mat4 {
	orbit := vm.RotateY(p.OrbitAngle(t))
	translate := vm.Translate(p.OrbitRadius, 0, 0)
	spin := vm.Mult(vm.RotateZ(p.Tilt), vm.RotateY(p.SpinAngle(t)))
	scale := vm.Scale(p.Scale, p.Scale, p.Scale)
	return vm.Mult(vm.Mult(orbit, vm.Mult(translate, spin)), scale)
}

// RingMatrix follows the planet and its tilt but does not spin.
func (p *Planet) RingMatrix(t float32) vm.Mat4 {
	return vm.Mult(p.carrier(t), vm.Scale(p.Scale, p.Scale, p.Scale))
}

// Position is the planet centre in world space at time t.
func (p *Planet) Position(t float32) vm.Vec3 {
	return p.ModelMatrix(t).MulVec4(vm.Vec4{W: 1}).Vec3()
}

// Update writes the matrices for time t into the body and ring models.
func (p *Planet) Update(t float32) {
	if p.Body != nil {
		p.Body.ModelMat = p.ModelMatrix(t)
	}
	if p.Ring != nil {
		p.Ring.ModelMat = p.RingMatrix(t)
	}
}
