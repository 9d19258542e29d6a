package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/pdf"
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

// Image is a linear-space render result, row-major from the top row down
type Image [][]core.Vec3

// NewImage allocates a black image
func NewImage(width, height int) Image {
	img := make(Image, height)
	for y := range img {
		img[y] = make([]core.Vec3, width)
	}
	return img
}

// Width returns the number of columns
func (img Image) Width() int {
	if len(img) == 0 {
		return 0
	}
	return len(img[0])
}

// Height returns the number of rows
func (img Image) Height() int {
	return len(img)
}

// frame is the read-only state shared by all workers during one render
type frame struct {
	camera *Camera
	world  geometry.Hittable
	lights pdf.Target
	image  Image
}

// rowSeed derives a scanline's sampler seed so output does not depend on scheduling
func rowSeed(seed int64, height, row int) int64 {
	return seed*int64(height) + int64(row)
}

// renderRow traces every pixel of one scanline with its own sampler
func (f *frame) renderRow(row int) int {
	c := f.camera
	sampler := core.NewSeededSampler(rowSeed(c.options.Seed, c.imageHeight, row))
	spp := c.options.SamplesPerPixel
	samples := 0

	for i := 0; i < c.options.ImageWidth; i++ {
		var pixel PixelStats
		for s := 0; s < spp; s++ {
			ray := c.GetRay(i, row, sampler)
			pixel.AddSample(c.integrator.RayColor(ray, f.world, f.lights, c.options.Background, sampler))
		}
		f.image[row][i] = pixel.GetColor()
		samples += pixel.SampleCount
	}

	return samples
}

// Render traces the scene into a linear-space image using a pool of scanline workers.
// lights may be nil to disable light sampling. If ctx is cancelled before every row
// finishes, the partial image is discarded and ctx.Err() is returned.
func (c *Camera) Render(ctx context.Context, world geometry.Hittable, lights pdf.Target) (Image, RenderStats, error) {
	startTime := time.Now()
	width, height := c.options.ImageWidth, c.imageHeight

	f := &frame{camera: c, world: world, lights: lights, image: NewImage(width, height)}
	pool := NewWorkerPool(f, height, c.options.NumWorkers)
	c.logger.Printf("Rendering %dx%d at %d spp (max depth %d) with %d workers\n",
		width, height, c.options.SamplesPerPixel, c.options.MaxDepth, pool.GetNumWorkers())

	pool.Start(ctx)
	go func() {
		defer pool.Stop()
		for row := 0; row < height; row++ {
			if !pool.SubmitTask(ctx, ScanlineTask{Row: row}) {
				return
			}
		}
	}()

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: c.options.SamplesPerPixel,
		NumWorkers:      pool.GetNumWorkers(),
	}
	completed := 0
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Skipped {
			continue
		}
		completed++
		stats.TotalSamples += result.Samples
		if completed%50 == 0 || completed == height {
			c.logger.Printf("Scanlines remaining: %d\n", height-completed)
		}
	}
	stats.Elapsed = time.Since(startTime)

	if completed < height {
		c.logger.Printf("Render cancelled after %d of %d scanlines\n", completed, height)
		return nil, stats, fmt.Errorf("render cancelled: %w", ctx.Err())
	}

	stats.MeanLuminance, stats.LuminanceVariance = ImageLuminanceStats(f.image)
	c.logger.Printf("Render completed in %v\n", stats.Elapsed)
	return f.image, stats, nil
}
