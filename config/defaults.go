package config

const (
	DefaultFovDeg      = 45
	DefaultAspect      = 16.0 / 9.0
	DefaultNear        = 0.1
	DefaultFar         = 100
	DefaultOrthoHeight = 10
	DefaultSkyboxScale = 50
	DefaultPlanetScale = 1
	DefaultSubdivision = 50
	DefaultRingSub1    = 64
	DefaultRingSub2    = 16
	DefaultExportDir   = "out"
	DefaultFrames      = 120
	DefaultFrameStep   = 1.0 / 60.0
)

var defaultPosition = []float32{0, 2, 12}

func (s *Scene) applyDefaults() {
	c := &s.Camera
	if c.FovDeg == 0 {
		c.FovDeg = DefaultFovDeg
	}
	if c.Aspect == 0 {
		c.Aspect = DefaultAspect
	}
	if c.Near == 0 {
		c.Near = DefaultNear
	}
	if c.Far == 0 {
		c.Far = DefaultFar
	}
	if c.OrthoHeight == 0 {
		c.OrthoHeight = DefaultOrthoHeight
	}
	if len(c.Position) == 0 {
		c.Position = append([]float32(nil), defaultPosition...)
	}

	if s.Skybox.Scale == 0 {
		s.Skybox.Scale = DefaultSkyboxScale
	}

	for i := range s.Planets {
		p := &s.Planets[i]
		if p.Scale == 0 {
			p.Scale = DefaultPlanetScale
		}
		if p.Latitude == 0 {
			p.Latitude = DefaultSubdivision
		}
		if p.Longitude == 0 {
			p.Longitude = DefaultSubdivision
		}
		if p.Ring != nil {
			if p.Ring.Sub1 == 0 {
				p.Ring.Sub1 = DefaultRingSub1
			}
			if p.Ring.Sub2 == 0 {
				p.Ring.Sub2 = DefaultRingSub2
			}
		}
	}

	e := &s.Export
	if e.Dir == "" {
		e.Dir = DefaultExportDir
	}
	if e.Frames == 0 {
		e.Frames = DefaultFrames
	}
	if e.FrameStep == 0 {
		e.FrameStep = DefaultFrameStep
	}
}

// Default is the scene used when no scene file is given: three planets, one of them ringed.
func Default() *Scene {
	s := &Scene{
		Planets: []Planet{
			{Name: "mercury", Radius: 0.1, OrbitRadius: 2, OrbitPeriod: 4, SpinPeriod: 8},
			{Name: "earth", Radius: 0.3, OrbitRadius: 4, OrbitPeriod: 10, SpinPeriod: 1, TiltDeg: 23.4},
			{
				Name: "saturn", Radius: 0.6, OrbitRadius: 7, OrbitPeriod: 24, SpinPeriod: 0.5, TiltDeg: 26.7,
				Ring: &Ring{Tube: 0.08, Radius: 1.1},
			},
		},
	}
	s.applyDefaults()
	return s
}
