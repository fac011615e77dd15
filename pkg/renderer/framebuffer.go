package renderer

import (
	"image"
	"image/color"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
)

// Framebuffer holds finished pixel colors in row-major order. Each channel
// is a display-ready floating value in [0, 256): averaged over samples,
// gamma-corrected and scaled, but not yet integer-quantized.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFramebuffer allocates a framebuffer of the given dimensions
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the pixel at (x, y)
func (fb *Framebuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores the pixel at (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// ToRGBA quantizes the framebuffer into an 8-bit image
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(p.X),
				G: uint8(p.Y),
				B: uint8(p.Z),
				A: 255,
			})
		}
	}
	return img
}

// finalizePixel converts an accumulated linear color into a display value:
// average over samples, gamma-2 correction, clamp, scale to [0, 256)
func finalizePixel(accum core.Vec3, samples int) core.Vec3 {
	averaged := accum.Multiply(1.0 / float64(samples))
	return averaged.GammaCorrect(2.0).Clamp(0.0, 0.999).Multiply(256)
}
