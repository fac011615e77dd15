package renderer

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels     int // Total number of pixels rendered
	TotalSamples    int // Total number of samples taken
	SamplesPerPixel int // Samples taken for every pixel
}
