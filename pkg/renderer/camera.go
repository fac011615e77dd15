package renderer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
)

// CameraConfig contains camera configuration. Zero-valued vector fields
// and sample counts fall back to the defaults in DefaultCameraConfig.
type CameraConfig struct {
	Width           int       // Rendered image width in pixels
	AspectRatio     float64   // Ratio of image width over height
	LookFrom        core.Vec3 // Point the camera is looking from
	LookAt          core.Vec3 // Point the camera is looking at
	Up              core.Vec3 // Camera-relative up direction
	VFov            float64   // Vertical field of view in degrees
	SamplesPerPixel int       // Random samples averaged per pixel
	MaxDepth        int       // Maximum ray bounce depth
}

// DefaultCameraConfig returns the canonical forward-looking camera
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:           400,
		AspectRatio:     16.0 / 9.0,
		LookFrom:        core.NewVec3(0, 0, -1),
		LookAt:          core.NewVec3(0, 0, 0),
		Up:              core.NewVec3(0, 1, 0),
		VFov:            20.0,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	merged := base
	if override.Width != 0 {
		merged.Width = override.Width
	}
	if override.AspectRatio != 0 {
		merged.AspectRatio = override.AspectRatio
	}
	if override.LookFrom != (core.Vec3{}) {
		merged.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Vec3{}) {
		merged.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		merged.Up = override.Up
	}
	if override.VFov != 0 {
		merged.VFov = override.VFov
	}
	if override.SamplesPerPixel != 0 {
		merged.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		merged.MaxDepth = override.MaxDepth
	}
	return merged
}

// Camera generates jittered per-pixel sample rays from a viewport derived
// once from the lens parameters. Immutable after construction, safe to
// share across render workers.
type Camera struct {
	config      CameraConfig
	height      int
	center      core.Vec3
	pixelDeltaU core.Vec3 // offset to the pixel to the right
	pixelDeltaV core.Vec3 // offset to the pixel below
	pixel00Loc  core.Vec3 // world location of pixel (0,0)'s sample center
	u, v, w     core.Vec3 // camera basis vectors
}

// NewCamera derives the viewport geometry from the config
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 {
		return nil, fmt.Errorf("camera width must be positive, got %d", config.Width)
	}
	if config.AspectRatio <= 0 {
		return nil, fmt.Errorf("camera aspect ratio must be positive, got %f", config.AspectRatio)
	}
	if config.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("samples per pixel must be positive, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth <= 0 {
		return nil, fmt.Errorf("max depth must be positive, got %d", config.MaxDepth)
	}

	height := int(float64(config.Width) / config.AspectRatio)
	if height <= 0 {
		return nil, fmt.Errorf("derived image height must be positive, got %d", height)
	}

	focalLength := config.LookFrom.Subtract(config.LookAt).Length()
	if focalLength == 0 {
		return nil, fmt.Errorf("look-from and look-at must differ")
	}

	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focalLength
	// Use the actual pixel-count ratio, not the nominal aspect ratio, so
	// the viewport matches the truncated image height exactly
	viewportWidth := viewportHeight * (float64(config.Width) / float64(height))

	center := config.LookFrom

	// Orthonormal basis for the camera coordinate frame
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(config.Width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	viewportUpperLeft := center.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		height:      height,
		center:      center,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		pixel00Loc:  pixel00Loc,
		u:           u,
		v:           v,
		w:           w,
	}, nil
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.config.Width }

// Height returns the derived image height in pixels
func (c *Camera) Height() int { return c.height }

// SamplesPerPixel returns the configured per-pixel sample count
func (c *Camera) SamplesPerPixel() int { return c.config.SamplesPerPixel }

// MaxDepth returns the configured bounce budget
func (c *Camera) MaxDepth() int { return c.config.MaxDepth }

// GetRay returns a randomly jittered camera ray for the pixel at (i, j)
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	pixelSample := pixelCenter.Add(c.pixelSampleSquare(random))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}

// pixelSampleSquare returns a random offset within the pixel cell
func (c *Camera) pixelSampleSquare(random *rand.Rand) core.Vec3 {
	px := -0.5 + random.Float64()
	py := -0.5 + random.Float64()
	return c.pixelDeltaU.Multiply(px).Add(c.pixelDeltaV.Multiply(py))
}
