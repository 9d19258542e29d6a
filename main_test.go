package main

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		texture     string
		expectError bool
	}{
		{"simple scene", "simple", "", false},
		{"cornell scene", "cornell-box", "", false},
		{"final scene without texture", "final", "", false},
		{"unknown scene", "nonexistent", "", true},
		{"empty scene name", "", "", true},
		{"missing texture", "earth", "textures/nonexistent.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, 1, tt.texture)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if s.World == nil {
				t.Errorf("Scene '%s' has no world", tt.sceneType)
			}
		})
	}
}

func TestCreateScene_UnknownListsAvailable(t *testing.T) {
	_, err := createScene("nonexistent", 1, "")
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Fatalf("Expected ErrUnknownScene, got %v", err)
	}
	if !strings.Contains(err.Error(), "cornell-box") {
		t.Errorf("Expected available scenes in error, got %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	base := renderer.DefaultCameraOptions()

	kept := applyOverrides(base, Config{Seed: 3})
	if kept.SamplesPerPixel != base.SamplesPerPixel || kept.MaxDepth != base.MaxDepth || kept.ImageWidth != base.ImageWidth {
		t.Errorf("Zero flags should keep scene settings, got %+v", kept)
	}

	got := applyOverrides(base, Config{Samples: 7, MaxDepth: 3, Width: 64, Workers: 2, Seed: 9})
	if got.SamplesPerPixel != 7 || got.MaxDepth != 3 || got.ImageWidth != 64 || got.NumWorkers != 2 || got.Seed != 9 {
		t.Errorf("Flags not applied, got %+v", got)
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	got := outputPath(filepath.Join("output", "simple"), "ppm", now)
	expected := filepath.Join("output", "simple", "render_20240305_140709.ppm")

	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestRun_WritesImage(t *testing.T) {
	cfg := Config{
		SceneName: "quads",
		Samples:   1,
		MaxDepth:  2,
		Width:     16,
		Workers:   2,
		Seed:      1,
		Format:    "png",
		OutputDir: t.TempDir(),
	}

	filename, err := run(context.Background(), cfg, core.NopLogger{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if filepath.Dir(filename) != filepath.Join(cfg.OutputDir, "quads") {
		t.Errorf("Expected output under the scene directory, got %s", filename)
	}

	f, err := os.Open(filename)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("Expected 16x16 image, got %v", img.Bounds())
	}
}

func TestRun_RejectsFormat(t *testing.T) {
	_, err := run(context.Background(), Config{SceneName: "simple", Format: "gif", OutputDir: t.TempDir()}, core.NopLogger{})
	if err == nil {
		t.Error("Expected error for unsupported format")
	}
}
