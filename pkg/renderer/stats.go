package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels       int           // Total number of pixels rendered
	TotalSamples      int           // Total number of samples taken
	SamplesPerPixel   int           // Samples taken per pixel
	NumWorkers        int           // Parallel workers used
	Elapsed           time.Duration // Wall time of the render
	MeanLuminance     float64       // Mean pixel luminance
	LuminanceVariance float64       // Variance of pixel luminance across the image
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// GetVariance returns the population variance of the sampled luminance
func (ps *PixelStats) GetVariance() float64 {
	if ps.SampleCount == 0 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return ps.LuminanceSqAccum/n - mean*mean
}

// ImageLuminanceStats returns the mean and unbiased variance of pixel luminance
func ImageLuminanceStats(img Image) (mean, variance float64) {
	luminances := make([]float64, 0, img.Width()*img.Height())
	for _, row := range img {
		for _, pixel := range row {
			luminances = append(luminances, pixel.Luminance())
		}
	}
	if len(luminances) == 0 {
		return 0, 0
	}
	if len(luminances) == 1 {
		return luminances[0], 0
	}
	return stat.MeanVariance(luminances, nil)
}
