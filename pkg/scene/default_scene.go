package scene

import (
	"fmt"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/geometry"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/integrator"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/material"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates the classic showcase: a large ground sphere, a
// diffuse center sphere, a hollow glass sphere on the left, and a polished
// metal sphere on the right, viewed from above and behind the left shoulder.
func NewDefaultScene() (*Scene, error) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)

	world := geometry.NewHittableList()
	spheres := []struct {
		center   core.Vec3
		radius   float64
		material core.Material
	}{
		{core.NewVec3(0, -100.5, -1), 100, ground},
		{core.NewVec3(0, 0, -1), 0.5, center},
		{core.NewVec3(-1, 0, -1), 0.5, left},
		// Negative radius turns the inner sphere inside out, leaving a
		// thin glass shell between it and the outer dielectric
		{core.NewVec3(-1, 0, -1), -0.4, left},
		{core.NewVec3(1, 0, -1), 0.5, right},
	}
	for _, s := range spheres {
		sphere, err := geometry.NewSphere(s.center, s.radius, s.material)
		if err != nil {
			return nil, fmt.Errorf("building default scene: %w", err)
		}
		world.Add(sphere)
	}

	config := renderer.DefaultCameraConfig()
	config.LookFrom = core.NewVec3(-2, 2, 1)
	config.LookAt = core.NewVec3(0, 0, -1)
	config.Up = core.NewVec3(0, 1, 0)

	top, bottom := integrator.DefaultBackground()
	return &Scene{
		World:        world,
		CameraConfig: config,
		TopColor:     top,
		BottomColor:  bottom,
	}, nil
}

// NewTwoSphereScene creates a minimal world: one small diffuse sphere
// resting on a large ground sphere, viewed head-on from the origin. Useful
// for quick renders and as a smoke-test scene.
func NewTwoSphereScene() (*Scene, error) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))

	groundSphere, err := geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	if err != nil {
		return nil, fmt.Errorf("building two-sphere scene: %w", err)
	}
	centerSphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center)
	if err != nil {
		return nil, fmt.Errorf("building two-sphere scene: %w", err)
	}

	config := renderer.DefaultCameraConfig()
	config.LookFrom = core.NewVec3(0, 0, 0)
	config.LookAt = core.NewVec3(0, 0, -1)
	config.VFov = 90.0

	top, bottom := integrator.DefaultBackground()
	return &Scene{
		World:        geometry.NewHittableList(groundSphere, centerSphere),
		CameraConfig: config,
		TopColor:     top,
		BottomColor:  bottom,
	}, nil
}
