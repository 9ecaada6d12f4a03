package main

import (
	"fmt"
	"log"

	"planet_skybox/config"
	"planet_skybox/model"
	vm "planet_skybox/vector_math"
)

const skyboxName = "skybox"

func newCamera(c config.Camera) *model.Camera {
	cam := model.NewCamera(c.FovDeg, c.Near, c.Far)
	cam.Aspect = c.Aspect
	cam.OrthoHeight = c.OrthoHeight
	switch c.Projection {
	case config.ProjectionOrthographic:
		cam.ProjectionType = model.CAM_ORTHOGRAPHIC_PROJECTION
	default:
		cam.ProjectionType = model.CAM_PERSPECTIVE_PROJECTION
	}
	cam.Move(vm.Vec3{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]})
	cam.Turn(vm.ToRad(c.YawDeg), vm.ToRad(c.PitchDeg))
	return cam
}

func newPlanet(p config.Planet) (*model.Planet, error) {
	body, err := model.NewSphereModel(p.Name, p.Radius, p.Latitude, p.Longitude)
	if err != nil {
		return nil, err
	}
	planet := model.NewPlanet(p.Name, body)
	planet.OrbitRadius = p.OrbitRadius
	planet.OrbitPeriod = p.OrbitPeriod
	planet.SpinPeriod = p.SpinPeriod
	planet.Tilt = vm.ToRad(p.TiltDeg)
	planet.Scale = p.Scale
	if r := p.Ring; r != nil {
		planet.Ring, err = model.NewRingModel(p.Name+"-ring", r.Tube, r.Radius, r.Sub1, r.Sub2)
		if err != nil {
			return nil, err
		}
	}
	return planet, nil
}

// buildScene generates every mesh once. Per frame work is left to Scene.Frame.
func buildScene(cfg *config.Scene) (*model.Scene, error) {
	scene := model.NewScene(newCamera(cfg.Camera))

	if cfg.Skybox.IsEnabled() {
		sky, err := model.NewSkyboxModel(skyboxName, cfg.Skybox.Scale)
		if err != nil {
			return nil, err
		}
		if err := scene.AddToScene(sky); err != nil {
			return nil, err
		}
	}

	for _, p := range cfg.Planets {
		planet, err := newPlanet(p)
		if err != nil {
			return nil, fmt.Errorf("planet '%s': %w", p.Name, err)
		}
		if err := scene.AddPlanet(planet); err != nil {
			return nil, err
		}
	}
	return scene, nil
}

func describeScene(scene *model.Scene) {
	for _, m := range scene.Models() {
		in := model.VertexInputState(m.Mesh.Layout)
		ds := model.DepthStencilState(m.Kind)
		log.Printf(
			"Model '%s': layout %s, stride %d byte, %d attributes, depth write %d, vertex buffer %d byte, index buffer %d byte",
			m.Name,
			m.Mesh.Layout,
			in.PVertexBindingDescriptions[0].Stride,
			in.VertexAttributeDescriptionCount,
			ds.DepthWriteEnable,
			m.GetVBufferSize(),
			m.GetIdxBufferSize(),
		)
	}
	log.Printf("Uniform buffer %d byte, context uniform buffer %d byte, push constants %d byte, %d model descriptors",
		model.SizeOfUbo(), model.SizeOfCtxUbo(), model.PushConstantRanges()[0].Size,
		scene.ModelDescriptorPoolSizes()[0].DescriptorCount)
}
