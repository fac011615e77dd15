package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/geometry"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/material"
)

func newTestTracer(t *testing.T, objects ...core.Hittable) *PathTracer {
	t.Helper()
	top, bottom := DefaultBackground()
	return NewPathTracer(geometry.NewHittableList(objects...), top, bottom)
}

func testSphere(t *testing.T, center core.Vec3, radius float64, mat core.Material) *geometry.Sphere {
	t.Helper()
	sphere, err := geometry.NewSphere(center, radius, mat)
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return sphere
}

func TestPathTracer_DepthExhaustedReturnsBlack(t *testing.T) {
	// Depth is checked before the scene query, so even a ray aimed straight
	// at a sphere contributes black with no bounce budget
	sphere := testSphere(t, core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	tracer := newTestTracer(t, sphere)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color := tracer.RayColor(ray, 0, random)
	if color != (core.Vec3{}) {
		t.Errorf("Expected black at depth 0, got %v", color)
	}
}

func TestPathTracer_MissReturnsSkyGradient(t *testing.T) {
	tracer := newTestTracer(t)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"horizontal is the midpoint", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			color := tracer.RayColor(ray, 10, random)

			tolerance := 1e-12
			if math.Abs(color.X-tt.expected.X) > tolerance ||
				math.Abs(color.Y-tt.expected.Y) > tolerance ||
				math.Abs(color.Z-tt.expected.Z) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracer_GradientIgnoresDirectionMagnitude(t *testing.T) {
	tracer := newTestTracer(t)
	random := rand.New(rand.NewSource(42))

	unit := tracer.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0)), 10, random)
	scaled := tracer.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 25, 0)), 10, random)
	if unit != scaled {
		t.Errorf("Gradient should normalize the direction: %v vs %v", unit, scaled)
	}
}

func TestPathTracer_DepthTerminationOrdering(t *testing.T) {
	// One scatter is allowed at depth 1, but the recursive call then sees
	// depth 0 and returns black, so the whole path is black
	sphere := testSphere(t, core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	tracer := newTestTracer(t, sphere)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if color := tracer.RayColor(ray, 1, random); color != (core.Vec3{}) {
		t.Errorf("Expected black with a single bounce budget, got %v", color)
	}

	// With two bounces the scattered ray reaches the sky, so the result is
	// the albedo-modulated gradient: nonzero
	if color := tracer.RayColor(ray, 2, random); color == (core.Vec3{}) {
		t.Error("Expected nonzero color with two bounces")
	}
}

func TestPathTracer_AbsorptionReturnsBlack(t *testing.T) {
	// A fuzz-1 metal at grazing incidence absorbs some rays; absorbed paths
	// must contribute exactly black
	sphere := testSphere(t, core.NewVec3(0, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 1.0))
	tracer := newTestTracer(t, sphere)
	random := rand.New(rand.NewSource(42))

	// Grazing ray near the top of the sphere
	ray := core.NewRay(core.NewVec3(-2, 0.4999, -1), core.NewVec3(1, 0, 0))

	sawBlack := false
	for i := 0; i < 200; i++ {
		if tracer.RayColor(ray, 5, random) == (core.Vec3{}) {
			sawBlack = true
			break
		}
	}
	if !sawBlack {
		t.Error("Expected at least one absorbed (black) path at grazing incidence")
	}
}

func TestPathTracer_AttenuationCompounds(t *testing.T) {
	// A ray bouncing once off a diffuse surface and escaping to the sky is
	// the sky color componentwise-multiplied by the albedo; with a pure
	// color albedo the other channels must be scaled accordingly
	albedo := core.NewVec3(1.0, 0.5, 0.0)
	sphere := testSphere(t, core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(albedo))
	tracer := newTestTracer(t, sphere)
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		color := tracer.RayColor(ray, 3, random)
		if color.Z != 0 {
			t.Fatalf("Zero-albedo channel must stay zero, got %v", color)
		}
		if color.X < 0 || color.Y < 0 {
			t.Fatalf("Negative channel in %v", color)
		}
	}
}
