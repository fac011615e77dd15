package core

import "math/rand"

// RandomInUnitSphere generates a random point inside the unit sphere
// by rejection sampling the [-1,1]³ cube.
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a uniformly distributed unit vector
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomOnHemisphere generates a unit vector on the hemisphere around normal
func RandomOnHemisphere(normal Vec3, random *rand.Rand) Vec3 {
	onUnitSphere := RandomUnitVector(random)
	if onUnitSphere.Dot(normal) > 0 {
		return onUnitSphere
	}
	return onUnitSphere.Negate()
}
