// Package config reads the YAML scene description the demo is driven by.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid scene config")

// Projection selects the camera projection by name in the scene file.
type Projection int

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

func (p Projection) String() string {
	switch p {
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("projection(%d)", int(p))
	}
}

// UnmarshalYAML accepts "perspective" or "orthographic". An empty value keeps perspective.
func (p *Projection) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "perspective":
		*p = ProjectionPerspective
	case "orthographic", "ortho":
		*p = ProjectionOrthographic
	default:
		return fmt.Errorf("invalid projection %q", s)
	}
	return nil
}

func (p Projection) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// Scene is the complete scene file.
type Scene struct {
	Camera  Camera   `yaml:"camera"`
	Skybox  Skybox   `yaml:"skybox"`
	Planets []Planet `yaml:"planets"`
	Export  Export   `yaml:"export"`
}

type Camera struct {
	FovDeg      float32    `yaml:"fov_deg"`
	Aspect      float32    `yaml:"aspect"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	OrthoHeight float32    `yaml:"ortho_height"`
	Position    []float32  `yaml:"position,flow"`
	YawDeg      float32    `yaml:"yaw_deg"`
	PitchDeg    float32    `yaml:"pitch_deg"`
	Projection  Projection `yaml:"projection"`
}

type Skybox struct {
	Enabled *bool   `yaml:"enabled,omitempty"`
	Scale   float32 `yaml:"scale"`
}

// IsEnabled reports whether the skybox is drawn. It is unless the file turns it off.
func (s Skybox) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

type Planet struct {
	Name        string  `yaml:"name"`
	Radius      float32 `yaml:"radius"`
	OrbitRadius float32 `yaml:"orbit_radius"`
	OrbitPeriod float32 `yaml:"orbit_period"`
	SpinPeriod  float32 `yaml:"spin_period"`
	TiltDeg     float32 `yaml:"tilt_deg"`
	Scale       float32 `yaml:"scale"`
	Latitude    int     `yaml:"latitude"`
	Longitude   int     `yaml:"longitude"`
	Ring        *Ring   `yaml:"ring,omitempty"`
}

// Ring is a torus around a planet. Tube is the tube radius, Radius the distance of the tube centre
// from the planet centre.
type Ring struct {
	Tube   float32 `yaml:"tube"`
	Radius float32 `yaml:"radius"`
	Sub1   int     `yaml:"sub1"`
	Sub2   int     `yaml:"sub2"`
}

type Export struct {
	Dir       string  `yaml:"dir"`
	Frames    int     `yaml:"frames"`
	FrameStep float32 `yaml:"frame_step"` // seconds between baked frames
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals a scene, applies defaults and validates the result.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scene file: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Marshal writes the scene back as YAML.
func (s *Scene) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
