package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
)

func TestNewMetal_FuzzClamping(t *testing.T) {
	tests := []struct {
		name     string
		fuzz     float64
		expected float64
	}{
		{"negative clamps to zero", -0.5, 0.0},
		{"valid value unchanged", 0.3, 0.3},
		{"above one clamps to one", 2.5, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), tt.fuzz)
			if metal.Fuzz != tt.expected {
				t.Errorf("Expected fuzz %f, got %f", tt.expected, metal.Fuzz)
			}
		})
	}
}

func TestMetal_PerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	random := rand.New(rand.NewSource(42))

	normal := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		FrontFace: true,
	}

	// 45 degree incidence
	incoming := core.NewVec3(1, 0, -1).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 0, 1), incoming)

	scatter, didScatter := metal.Scatter(ray, hit, random)
	if !didScatter {
		t.Fatal("Expected mirror reflection to scatter")
	}

	// v - 2(v·n)n, exact with fuzz = 0
	expected := incoming.Subtract(normal.Multiply(2 * incoming.Dot(normal)))
	tolerance := 1e-12
	if math.Abs(scatter.Scattered.Direction.X-expected.X) > tolerance ||
		math.Abs(scatter.Scattered.Direction.Y-expected.Y) > tolerance ||
		math.Abs(scatter.Scattered.Direction.Z-expected.Z) > tolerance {
		t.Errorf("Expected reflection %v, got %v", expected, scatter.Scattered.Direction)
	}

	if scatter.Attenuation != metal.Albedo {
		t.Errorf("Expected attenuation %v, got %v", metal.Albedo, scatter.Attenuation)
	}
}

func TestMetal_FuzzAbsorption(t *testing.T) {
	// At grazing incidence with maximum fuzz, the perturbation regularly
	// pushes the reflection below the surface, which must absorb the ray
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	random := rand.New(rand.NewSource(42))

	normal := core.NewVec3(0, 0, 1)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		FrontFace: true,
	}
	grazing := core.NewVec3(1, 0, -0.01).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 0, 0.01), grazing)

	absorbed := 0
	for i := 0; i < 1000; i++ {
		scatter, didScatter := metal.Scatter(ray, hit, random)
		if !didScatter {
			absorbed++
			continue
		}
		// Every surviving scatter must be above the surface
		if scatter.Scattered.Direction.Dot(normal) <= 0 {
			t.Fatal("Scattered ray below the surface was not absorbed")
		}
	}

	if absorbed == 0 {
		t.Error("Expected some grazing rays to be absorbed with fuzz = 1")
	}
}
