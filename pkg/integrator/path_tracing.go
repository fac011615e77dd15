package integrator

import (
	"math/rand"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
)

// PathTracer computes the color carried by a camera ray with recursive
// unidirectional path tracing. The only light source is the background
// gradient; the terminal color of a path is the product of all material
// attenuations along it times the background (or black on absorption).
type PathTracer struct {
	world       core.Hittable
	topColor    core.Vec3
	bottomColor core.Vec3
}

// DefaultBackground returns the sky gradient colors: blue at the top,
// white at the bottom.
func DefaultBackground() (top, bottom core.Vec3) {
	return core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0)
}

// NewPathTracer creates a path tracer over the given world
func NewPathTracer(world core.Hittable, topColor, bottomColor core.Vec3) *PathTracer {
	return &PathTracer{
		world:       world,
		topColor:    topColor,
		bottomColor: bottomColor,
	}
}

// RayColor returns the color for a ray with the given remaining bounce
// budget. Depth exhaustion is checked before the scene query, so a ray
// arriving with no budget contributes black even when it would hit geometry.
func (pt *PathTracer) RayColor(ray core.Ray, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	// The 0.001 lower bound avoids self-intersection of bounce rays with
	// the surface they just left (shadow acne)
	hit, isHit := pt.world.Hit(ray, core.UniverseInterval(0.001))
	if !isHit {
		return pt.backgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.Vec3{} // absorbed
	}

	return scatter.Attenuation.MultiplyVec(pt.RayColor(scatter.Scattered, depth-1, random))
}

// backgroundGradient returns the sky color for a ray that missed everything
func (pt *PathTracer) backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-a)*bottom + a*top
	return pt.bottomColor.Multiply(1.0 - a).Add(pt.topColor.Multiply(a))
}
