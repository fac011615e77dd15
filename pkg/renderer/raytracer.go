package renderer

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gabrielkryss/go-weekend-raytracer/pkg/core"
	"github.com/gabrielkryss/go-weekend-raytracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ProgressFunc receives completed and total row counts as rendering
// proceeds. Purely observational; it may be called from multiple worker
// goroutines and must be safe for concurrent use.
type ProgressFunc func(completedRows, totalRows int)

// Raytracer drives the render loop: it partitions image rows across a
// worker pool, traces every pixel sample, and joins the workers before
// returning the finished framebuffer.
type Raytracer struct {
	camera     *Camera
	integrator *integrator.PathTracer
	numWorkers int
	seed       int64
	progress   ProgressFunc
}

// NewRaytracer creates a raytracer for the given camera and world
func NewRaytracer(camera *Camera, world core.Hittable, topColor, bottomColor core.Vec3) *Raytracer {
	return &Raytracer{
		camera:     camera,
		integrator: integrator.NewPathTracer(world, topColor, bottomColor),
		numWorkers: runtime.NumCPU(),
		seed:       time.Now().UnixNano(),
	}
}

// SetNumWorkers sets the number of parallel row workers (0 = CPU count)
func (rt *Raytracer) SetNumWorkers(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	rt.numWorkers = n
}

// SetSeed fixes the base random seed. Rows derive their generators from
// it, so a fixed seed reproduces the same image across worker counts.
func (rt *Raytracer) SetSeed(seed int64) {
	rt.seed = seed
}

// SetProgress installs a progress sink
func (rt *Raytracer) SetProgress(progress ProgressFunc) {
	rt.progress = progress
}

// Render traces the full image and returns the framebuffer with stats.
// Rows are fanned out over an errgroup; every worker writes only its own
// rows, so the framebuffer needs no synchronization.
func (rt *Raytracer) Render() (*Framebuffer, RenderStats, error) {
	width := rt.camera.Width()
	height := rt.camera.Height()
	samples := rt.camera.SamplesPerPixel()

	fb := NewFramebuffer(width, height)
	rows := make(chan int)

	var completed atomic.Int64
	var g errgroup.Group
	for worker := 0; worker < rt.numWorkers; worker++ {
		g.Go(func() error {
			for j := range rows {
				// Per-row generator keyed off the base seed keeps the
				// output independent of row-to-worker assignment
				random := rand.New(rand.NewSource(rt.seed + int64(j)))
				rt.renderRow(j, fb, random)

				done := completed.Add(1)
				if rt.progress != nil {
					rt.progress(int(done), height)
				}
			}
			return nil
		})
	}

	for j := 0; j < height; j++ {
		rows <- j
	}
	close(rows)

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * samples,
		SamplesPerPixel: samples,
	}
	return fb, stats, nil
}

// renderRow traces every pixel of row j
func (rt *Raytracer) renderRow(j int, fb *Framebuffer, random *rand.Rand) {
	samples := rt.camera.SamplesPerPixel()
	maxDepth := rt.camera.MaxDepth()

	for i := 0; i < fb.Width; i++ {
		var accum core.Vec3
		for s := 0; s < samples; s++ {
			ray := rt.camera.GetRay(i, j, random)
			accum = accum.Add(rt.integrator.RayColor(ray, maxDepth, random))
		}
		fb.Set(i, j, finalizePixel(accum, samples))
	}
}
