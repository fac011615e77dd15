package core

import "math/rand"

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter produces an attenuation color and an outgoing ray for an
	// incoming ray at a surface hit. The second return value is false
	// when the material absorbed the ray.
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The outgoing scattered ray
	Attenuation Vec3 // Per-channel color loss applied to the scattered path
}

// Hittable is anything a ray can intersect. Hit must return the record
// with the smallest T inside the interval, or report no hit.
type Hittable interface {
	Hit(ray Ray, t Interval) (*HitRecord, bool)
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, oriented against the incoming ray
	T         float64  // Parameter t along the ray
	FrontFace bool     // Whether the ray hit the front (outside) face
	Material  Material // Material of the hit object
}

// NewHitRecord creates a hit record with the face-normal orientation step
// applied: FrontFace is true iff the ray opposes the outward normal, and
// Normal is flipped when the ray arrives from inside. Every Hittable must
// construct its records this way so that Normal.Dot(ray.Direction) <= 0.
func NewHitRecord(ray Ray, outwardNormal Vec3, t float64, material Material) *HitRecord {
	frontFace := ray.Direction.Dot(outwardNormal) < 0
	normal := outwardNormal
	if !frontFace {
		normal = outwardNormal.Negate()
	}
	return &HitRecord{
		Point:     ray.At(t),
		Normal:    normal,
		T:         t,
		FrontFace: frontFace,
		Material:  material,
	}
}
