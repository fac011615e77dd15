// Package ppm implements the plain-text P3 image format used as the
// renderer's canonical output.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/renderer"
)

// MaxChannelValue is the maximum channel value declared in the header
const MaxChannelValue = 255

// Encode writes the framebuffer as a P3 image: the magic number, the
// dimensions, the maximum channel value, then one line per pixel of three
// space-separated channel values in row-major order. Framebuffer channels
// are display-ready floats in [0, 256) and are truncated to integers here.
func Encode(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", fb.Width, fb.Height, MaxChannelValue); err != nil {
		return err
	}

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			p := fb.At(x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", int(p.X), int(p.Y), int(p.Z)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// Header describes a parsed P3 header
type Header struct {
	Width    int
	Height   int
	MaxValue int
}

// DecodeHeader reads and validates a P3 header
func DecodeHeader(r io.Reader) (Header, error) {
	var magic string
	var h Header

	if _, err := fmt.Fscan(r, &magic); err != nil {
		return Header{}, fmt.Errorf("reading magic number: %w", err)
	}
	if magic != "P3" {
		return Header{}, fmt.Errorf("unsupported magic number %q", magic)
	}

	if _, err := fmt.Fscan(r, &h.Width, &h.Height, &h.MaxValue); err != nil {
		return Header{}, fmt.Errorf("reading dimensions: %w", err)
	}
	if h.Width <= 0 || h.Height <= 0 {
		return Header{}, fmt.Errorf("invalid dimensions %dx%d", h.Width, h.Height)
	}
	if h.MaxValue <= 0 {
		return Header{}, fmt.Errorf("invalid max channel value %d", h.MaxValue)
	}

	return h, nil
}
