// Package scene assembles complete renderable worlds: geometry, materials,
// camera placement, and background colors.
package scene

import (
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/geometry"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/renderer"
)

// Scene bundles a world with the camera and background used to render it
type Scene struct {
	World        *geometry.HittableList
	CameraConfig renderer.CameraConfig

	// Background gradient endpoints for rays that miss all geometry
	TopColor    core.Vec3
	BottomColor core.Vec3
}
