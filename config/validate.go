package config

import (
	"fmt"

	"github.com/chewxy/math32"
)

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

func bad(f float32) bool {
	return math32.IsNaN(f) || math32.IsInf(f, 0)
}

// Validate checks the values the geometry and projections cannot handle.
func (s *Scene) Validate() error {
	c := s.Camera
	for _, f := range []float32{c.FovDeg, c.Aspect, c.Near, c.Far, c.OrthoHeight, c.YawDeg, c.PitchDeg} {
		if bad(f) {
			return invalid("camera values must be finite")
		}
	}
	if c.FovDeg <= 0 || c.FovDeg >= 180 {
		return invalid("camera fov_deg %v outside (0, 180)", c.FovDeg)
	}
	if c.Aspect <= 0 {
		return invalid("camera aspect %v must be positive", c.Aspect)
	}
	if c.Near <= 0 || c.Near >= c.Far {
		return invalid("camera near %v and far %v need 0 < near < far", c.Near, c.Far)
	}
	if c.OrthoHeight <= 0 {
		return invalid("camera ortho_height %v must be positive", c.OrthoHeight)
	}
	if len(c.Position) != 3 {
		return invalid("camera position needs 3 components, got %d", len(c.Position))
	}
	if c.Projection != ProjectionPerspective && c.Projection != ProjectionOrthographic {
		return invalid("camera %v unknown", c.Projection)
	}

	// the skybox corners sit scale*√3 from the eye and must stay inside the far plane
	if s.Skybox.IsEnabled() && (s.Skybox.Scale <= 0 || s.Skybox.Scale*math32.Sqrt(3) >= c.Far || bad(s.Skybox.Scale)) {
		return invalid("skybox scale %v must be positive with its corners inside camera far %v", s.Skybox.Scale, c.Far)
	}

	names := make(map[string]bool, len(s.Planets))
	for i, p := range s.Planets {
		if p.Name == "" {
			return invalid("planet %d has no name", i)
		}
		if names[p.Name] {
			return invalid("planet '%s' defined twice", p.Name)
		}
		names[p.Name] = true
		if err := p.validate(); err != nil {
			return err
		}
	}

	if s.Export.Frames < 0 {
		return invalid("export frames %d must not be negative", s.Export.Frames)
	}
	if s.Export.FrameStep <= 0 || bad(s.Export.FrameStep) {
		return invalid("export frame_step %v must be positive", s.Export.FrameStep)
	}
	return nil
}

func (p Planet) validate() error {
	for _, f := range []float32{p.Radius, p.OrbitRadius, p.OrbitPeriod, p.SpinPeriod, p.TiltDeg, p.Scale} {
		if bad(f) {
			return invalid("planet '%s' values must be finite", p.Name)
		}
	}
	if p.Radius <= 0 {
		return invalid("planet '%s' radius %v must be positive", p.Name, p.Radius)
	}
	if p.Scale <= 0 {
		return invalid("planet '%s' scale %v must be positive", p.Name, p.Scale)
	}
	if p.OrbitRadius < 0 || p.OrbitPeriod < 0 || p.SpinPeriod < 0 {
		return invalid("planet '%s' orbit_radius, orbit_period and spin_period must not be negative", p.Name)
	}
	if p.Latitude < 3 || p.Longitude < 3 {
		return invalid("planet '%s' subdivisions %dx%d, need at least 3", p.Name, p.Latitude, p.Longitude)
	}
	if r := p.Ring; r != nil {
		if bad(r.Tube) || bad(r.Radius) || r.Tube <= 0 || r.Tube >= r.Radius {
			return invalid("planet '%s' ring needs 0 < tube < radius, got %v and %v", p.Name, r.Tube, r.Radius)
		}
		if r.Sub1 < 3 || r.Sub2 < 3 {
			return invalid("planet '%s' ring subdivisions %dx%d, need at least 3", p.Name, r.Sub1, r.Sub2)
		}
	}
	return nil
}
