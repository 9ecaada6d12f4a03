package model

import (
	"errors"
	"fmt"
	"log"

	vm "planet_skybox/vector_math"
)

var (
	ErrModelNotFound  = errors.New("model not found")
	ErrDuplicateModel = errors.New("model name already in scene")
)

// Scene holds everything shown in the 3D world. Adding, removing and adjusting models happens here, the
// render loop only reads the Frame a Scene evaluates. A Scene is owned by a single goroutine.
type Scene struct {
	Cam *Camera

	models  []*Model
	planets []*Planet
}

func NewScene(cam *Camera) *Scene {
	return &Scene{Cam: cam}
}

// DefaultCam puts a perspective camera two units in front of the origin looking down -Z.
func DefaultCam() *Camera {
	cam := NewCamera(45, 0.1, 100)
	cam.ProjectionType = CAM_PERSPECTIVE_PROJECTION
	cam.Move(vm.Vec3{Z: 2})
	return cam
}

func (s *Scene) Models() []*Model {
	return s.models
}

func (s *Scene) Planets() []*Planet {
	return s.planets
}

func (s *Scene) FindInScene(name string) (*Model, error) {
	for i, v := range s.models {
		if v.Name == name {
			return s.models[i], nil
		}
	}
	return nil, fmt.Errorf("model '%s': %w", name, ErrModelNotFound)
}

// AddToScene appends a model. Names identify models in the scene and must be unique.
func (s *Scene) AddToScene(m *Model) error {
	if _, err := s.FindInScene(m.Name); err == nil {
		return fmt.Errorf("model '%s': %w", m.Name, ErrDuplicateModel)
	}
	s.models = append(s.models, m)
	log.Printf("Added model '%s' to scene, vertices: %d, triangles: %d", m.Name, m.Mesh.VertexCount(), m.Mesh.TriangleCount())
	return nil
}

// AddPlanet adds the planet's body and ring models and keeps the planet for per frame updates.
func (s *Scene) AddPlanet(p *Planet) error {
	if p.Body == nil {
		return fmt.Errorf("planet '%s' has no body model", p.Name)
	}
	if err := s.AddToScene(p.Body); err != nil {
		return err
	}
	if p.Ring != nil {
		if err := s.AddToScene(p.Ring); err != nil {
			s.RemoveFromScene(p.Body)
			return err
		}
	}
	s.planets = append(s.planets, p)
	return nil
}

// RemoveFromScene drops the reference to a model found in the scene.
// Comparison is done naively by name. A planet whose body is removed is dropped together with its ring.
func (s *Scene) RemoveFromScene(m *Model) {
	s.removeModel(m.Name)
	for i, p := range s.planets {
		if p.Body != nil && p.Body.Name == m.Name {
			s.planets = append(s.planets[:i], s.planets[i+1:]...)
			if p.Ring != nil {
				s.removeModel(p.Ring.Name)
			}
			break
		}
	}
}

func (s *Scene) removeModel(name string) {
	for i, v := range s.models {
		if v.Name == name {
			s.models = append(s.models[:i], s.models[i+1:]...)
			log.Printf("Removed model '%s' from scene", name)
			return
		}
	}
}

func (s *Scene) ClearScene() {
	log.Printf("Clearing scene, %d models", len(s.models))
	s.models = nil
	s.planets = nil
}

// Draw is one model to be drawn in a frame together with its per model context.
type Draw struct {
	Model   *Model
	Context ContextUniformBufferObject
}

// Frame is the scene evaluated at one point in time. Camera holds view and projection for regular
// models, Skybox holds the camera orientation without translation and the same projection.
type Frame struct {
	Time   float32
	Camera UniformBufferObject
	Skybox UniformBufferObject
	Draws  []Draw
}

// Frame moves every planet to time t and collects the uniform data for drawing.
func (s *Scene) Frame(t float32) (*Frame, error) {
	if s.Cam == nil {
		return nil, errors.New("scene has no camera")
	}
	view, err := s.Cam.GetView()
	if err != nil {
		return nil, fmt.Errorf("camera view: %w", err)
	}
	orientation, err := s.Cam.GetOrientation()
	if err != nil {
		return nil, fmt.Errorf("camera orientation: %w", err)
	}
	proj, err := s.Cam.GetProjection()
	if err != nil {
		return nil, fmt.Errorf("camera projection: %w", err)
	}

	for _, p := range s.planets {
		p.Update(t)
	}

	f := &Frame{
		Time:   t,
		Camera: NewUniformBufferObject(view, proj),
		Skybox: NewUniformBufferObject(orientation, proj),
		Draws:  make([]Draw, 0, len(s.models)),
	}
	for _, m := range s.models {
		f.Draws = append(f.Draws, Draw{
			Model:   m,
			Context: ContextUniformBufferObject{ModelType: uint32(m.Kind)},
		})
	}
	return f, nil
}
