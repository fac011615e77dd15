package geometry

import (
	"fmt"
	"math"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
)

// Sphere represents a sphere primitive.
//
// A negative radius is legal: the intersection math only depends on r²,
// but the outward normal (p-C)/r flips sign, which turns the sphere into
// an inverted shell. Nesting a negative-radius sphere inside a positive
// one of the same material models a hollow glass bubble.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere. The radius magnitude must be nonzero.
func NewSphere(center core.Vec3, radius float64, material core.Material) (*Sphere, error) {
	if radius == 0 {
		return nil, fmt.Errorf("sphere radius must be nonzero")
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}, nil
}

// Hit tests if a ray intersects the sphere within the given interval
func (s *Sphere) Hit(ray core.Ray, t core.Interval) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients with the half-b simplification
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)

	// Try the near root first; front/back face selection depends on it
	root := (-halfB - sqrtD) / a
	if !t.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !t.Contains(root) {
			return nil, false
		}
	}

	// Outward normal sign follows the radius, enabling inverted shells
	outwardNormal := ray.At(root).Subtract(s.Center).Multiply(1.0 / s.Radius)

	return core.NewHitRecord(ray, outwardNormal, root, s.Material), true
}
