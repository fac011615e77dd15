package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/ppm"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/renderer"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/scene"
)

// createScene builds the scene selected on the command line
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene()
	case "two-spheres":
		return scene.NewTwoSphereScene()
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

// encodeImage writes the framebuffer in the requested format
func encodeImage(w io.Writer, fb *renderer.Framebuffer, format string) error {
	switch format {
	case "ppm":
		return ppm.Encode(w, fb)
	case "png":
		return png.Encode(w, fb.ToRGBA())
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'two-spheres'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	output := flag.String("output", "output.ppm", "Output file path")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Weekend Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default     - Glass, diffuse, and metal spheres on a ground sphere")
		fmt.Println("  two-spheres - Minimal smoke-test scene viewed from the origin")
		return
	}

	fmt.Println("Starting Weekend Raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Using %s scene...\n", *sceneType)

	// Command line overrides layer on top of the scene's camera config
	config := renderer.MergeCameraConfig(selectedScene.CameraConfig, renderer.CameraConfig{
		Width:           *width,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
	})

	camera, err := renderer.NewCamera(config)
	if err != nil {
		fmt.Printf("Error creating camera: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(camera, selectedScene.World, selectedScene.TopColor, selectedScene.BottomColor)
	raytracer.SetNumWorkers(*workers)

	logger := renderer.NewDefaultLogger()
	var progressMu sync.Mutex
	lastDecile := -1
	raytracer.SetProgress(func(completed, total int) {
		progressMu.Lock()
		defer progressMu.Unlock()
		decile := completed * 10 / total
		if decile > lastDecile {
			lastDecile = decile
			logger.Printf("Rendered %d/%d rows (%d%%)\n", completed, total, completed*100/total)
		}
	})

	// Render the image
	startTime := time.Now()
	fb, stats, err := raytracer.Render()
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Image: %dx%d, %d samples per pixel, %d total samples\n",
		fb.Width, fb.Height, stats.SamplesPerPixel, stats.TotalSamples)

	file, err := os.Create(*output)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := encodeImage(file, fb, *format); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", *output)
}
