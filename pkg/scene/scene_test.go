package scene

import (
	"testing"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/geometry"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/material"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/renderer"
)

func TestNewDefaultScene(t *testing.T) {
	s, err := NewDefaultScene()
	if err != nil {
		t.Fatalf("NewDefaultScene: %v", err)
	}

	if len(s.World.Objects) != 5 {
		t.Errorf("Expected 5 objects, got %d", len(s.World.Objects))
	}

	if s.CameraConfig.LookFrom != core.NewVec3(-2, 2, 1) {
		t.Errorf("Unexpected camera position %v", s.CameraConfig.LookFrom)
	}
	if s.CameraConfig.LookAt != core.NewVec3(0, 0, -1) {
		t.Errorf("Unexpected camera target %v", s.CameraConfig.LookAt)
	}

	// The camera config must be directly usable
	if _, err := renderer.NewCamera(s.CameraConfig); err != nil {
		t.Errorf("Scene camera config should construct a camera: %v", err)
	}
}

func TestNewDefaultScene_HollowGlassSphere(t *testing.T) {
	s, err := NewDefaultScene()
	if err != nil {
		t.Fatalf("NewDefaultScene: %v", err)
	}

	// The left sphere is hollow: an outer dielectric shell with a
	// negative-radius inner sphere sharing its center
	var outer, inner *geometry.Sphere
	for _, obj := range s.World.Objects {
		sphere, ok := obj.(*geometry.Sphere)
		if !ok {
			t.Fatalf("Expected only spheres in the default scene, got %T", obj)
		}
		if sphere.Center != core.NewVec3(-1, 0, -1) {
			continue
		}
		if sphere.Radius > 0 {
			outer = sphere
		} else {
			inner = sphere
		}
	}

	if outer == nil || inner == nil {
		t.Fatal("Expected an outer and an inner sphere at (-1, 0, -1)")
	}
	if inner.Radius != -0.4 {
		t.Errorf("Expected inner radius -0.4, got %f", inner.Radius)
	}
	if _, ok := outer.Material.(*material.Dielectric); !ok {
		t.Errorf("Expected dielectric shell, got %T", outer.Material)
	}
	if outer.Material != inner.Material {
		t.Error("Shell and inner sphere should share one material")
	}
}

func TestNewTwoSphereScene(t *testing.T) {
	s, err := NewTwoSphereScene()
	if err != nil {
		t.Fatalf("NewTwoSphereScene: %v", err)
	}

	if len(s.World.Objects) != 2 {
		t.Errorf("Expected 2 objects, got %d", len(s.World.Objects))
	}
	if s.CameraConfig.LookFrom != core.NewVec3(0, 0, 0) {
		t.Errorf("Unexpected camera position %v", s.CameraConfig.LookFrom)
	}
	if s.CameraConfig.VFov != 90.0 {
		t.Errorf("Expected 90 degree fov, got %f", s.CameraConfig.VFov)
	}
	if _, err := renderer.NewCamera(s.CameraConfig); err != nil {
		t.Errorf("Scene camera config should construct a camera: %v", err)
	}
}

func TestSceneBackgrounds(t *testing.T) {
	for _, build := range []func() (*Scene, error){NewDefaultScene, NewTwoSphereScene} {
		s, err := build()
		if err != nil {
			t.Fatalf("scene constructor: %v", err)
		}
		if s.TopColor != core.NewVec3(0.5, 0.7, 1.0) {
			t.Errorf("Expected sky-blue top color, got %v", s.TopColor)
		}
		if s.BottomColor != core.NewVec3(1, 1, 1) {
			t.Errorf("Expected white bottom color, got %v", s.BottomColor)
		}
	}
}
