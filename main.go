package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Config holds the command line options; zero numeric fields keep the scene's own settings
type Config struct {
	SceneName   string
	Samples     int
	MaxDepth    int
	Width       int
	Workers     int
	Seed        int64
	Format      string
	OutputDir   string
	TexturePath string
}

func main() {
	// Parse command line flags
	cfg := Config{}
	flag.StringVar(&cfg.SceneName, "scene", "simple", "Scene to render (see -help for the list)")
	flag.IntVar(&cfg.Samples, "spp", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&cfg.MaxDepth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.IntVar(&cfg.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&cfg.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&cfg.Seed, "seed", 1, "Seed for scene construction and sampling")
	flag.StringVar(&cfg.Format, "format", "png", "Output format: 'png' or 'ppm'")
	flag.StringVar(&cfg.OutputDir, "output", "output", "Directory that receives output/<scene>/render_<timestamp>.<format>")
	flag.StringVar(&cfg.TexturePath, "texture", "", "Image (PNG, JPEG, BMP, TIFF) for the textured globes in 'earth' and 'final'")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, cfg, renderer.NewDefaultLogger())
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Monte Carlo Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, name := range scene.List() {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

// run builds the scene, renders it and writes the image, returning the output path
func run(ctx context.Context, cfg Config, logger core.Logger) (string, error) {
	format := strings.ToLower(cfg.Format)
	if format != "png" && format != "ppm" {
		return "", fmt.Errorf("unsupported output format %q", cfg.Format)
	}

	s, err := createScene(cfg.SceneName, cfg.Seed, cfg.TexturePath)
	if err != nil {
		return "", err
	}
	logger.Printf("Using %s scene...\n", s.Name)
	if bvh, ok := s.World.(*geometry.BVHNode); ok {
		stats := bvh.Stats()
		logger.Printf("BVH: %d shapes, %d nodes, %d leaves, max depth %d, avg depth %.1f\n",
			stats.TotalShapes, stats.TotalNodes, stats.LeafNodes, stats.MaxDepth, stats.AvgDepth)
	}

	camera, err := renderer.NewCamera(applyOverrides(s.Camera, cfg))
	if err != nil {
		return "", err
	}
	camera.SetLogger(logger)

	img, stats, err := camera.Render(ctx, s.World, s.Lights)
	if err != nil {
		return "", err
	}
	logger.Printf("Traced %d samples over %d pixels in %v (mean luminance %.4f)\n",
		stats.TotalSamples, stats.TotalPixels, stats.Elapsed, stats.MeanLuminance)

	// Create output directory for this scene
	outputDir := filepath.Join(cfg.OutputDir, s.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	filename := outputPath(outputDir, format, time.Now())
	if err := imageio.Save(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}

// createScene builds a registered scene, loading the globe texture when a path is given
func createScene(name string, seed int64, texturePath string) (*scene.Scene, error) {
	sceneCfg := scene.Config{Seed: seed}
	if texturePath != "" {
		texture, err := loaders.LoadImage(texturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load texture: %w", err)
		}
		sceneCfg.Texture = texture
	}

	s, err := scene.CreateWithConfig(name, sceneCfg)
	if err != nil {
		return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(scene.List(), ", "))
	}
	return s, nil
}

// applyOverrides replaces scene camera settings with any non-zero command line values
func applyOverrides(opts renderer.CameraOptions, cfg Config) renderer.CameraOptions {
	if cfg.Samples > 0 {
		opts.SamplesPerPixel = cfg.Samples
	}
	if cfg.MaxDepth > 0 {
		opts.MaxDepth = cfg.MaxDepth
	}
	if cfg.Width > 0 {
		opts.ImageWidth = cfg.Width
	}
	opts.NumWorkers = cfg.Workers
	opts.Seed = cfg.Seed
	return opts
}

// outputPath names a render file with a sortable timestamp
func outputPath(dir, format string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("render_%s.%s", now.Format("20060102_150405"), format))
}
