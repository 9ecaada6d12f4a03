package model

import (
	"fmt"

	"planet_skybox/geometry"
	vm "planet_skybox/vector_math"
)

func NewCubeModel(name string) (*Model, error) {
	mesh, err := geometry.NewCube()
	if err != nil {
		return nil, fmt.Errorf("cube model '%s': %w", name, err)
	}
	return NewModel(mesh, name), nil
}

func NewTexturedCubeModel(name string) (*Model, error) {
	mesh, err := geometry.NewTexturedCube()
	if err != nil {
		return nil, fmt.Errorf("textured cube model '%s': %w", name, err)
	}
	return NewModel(mesh, name), nil
}

func NewTetrahedronModel(name string) (*Model, error) {
	mesh, err := geometry.NewTetrahedron()
	if err != nil {
		return nil, fmt.Errorf("tetrahedron model '%s': %w", name, err)
	}
	return NewModel(mesh, name), nil
}

// NewSkyboxModel builds the inward facing box drawn around the camera. The box spans ±scale.
func NewSkyboxModel(name string, scale float32) (*Model, error) {
	mesh, err := geometry.NewSkybox()
	if err != nil {
		return nil, fmt.Errorf("skybox model '%s': %w", name, err)
	}
	m := NewModel(mesh, name)
	m.Kind = KindSkybox
	m.ModelMat = vm.Scale(scale, scale, scale)
	return m, nil
}

// NewSphereModel builds a planet body with lat bands from pole to pole and lon segments around.
func NewSphereModel(name string, r float32, lat, lon int) (*Model, error) {
	mesh, err := geometry.NewSphere(r, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("sphere model '%s': %w", name, err)
	}
	m := NewModel(mesh, name)
	m.Kind = KindPlanet
	return m, nil
}

func NewRingModel(name string, tube, radius float32, sub1, sub2 int) (*Model, error) {
	mesh, err := geometry.NewTorus(tube, radius, sub1, sub2)
	if err != nil {
		return nil, fmt.Errorf("ring model '%s': %w", name, err)
	}
	m := NewModel(mesh, name)
	m.Kind = KindRing
	return m, nil
}
