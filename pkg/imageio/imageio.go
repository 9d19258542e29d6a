// Package imageio turns linear render output into 8-bit image files
package imageio

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Gamma is the display gamma applied before quantization
const Gamma = 2.2

var intensity = core.NewInterval(0, 0.999)

// quantize maps a gamma-corrected channel to 8 bits; NaN becomes 0
func quantize(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(256 * intensity.Clamp(c))
}

// ToColor converts one linear color to an opaque 8-bit display color
func ToColor(c core.Vec3) color.RGBA {
	c = c.GammaCorrect(Gamma)
	return color.RGBA{R: quantize(c.X), G: quantize(c.Y), B: quantize(c.Z), A: 255}
}

// ToRGBA converts a row-major, top-to-bottom linear image to display colors
func ToRGBA(pixels [][]core.Vec3) *image.RGBA {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, row := range pixels {
		for x, c := range row {
			img.SetRGBA(x, y, ToColor(c))
		}
	}
	return img
}

// WritePNG encodes pixels as a PNG
func WritePNG(w io.Writer, pixels [][]core.Vec3) error {
	if err := png.Encode(w, ToRGBA(pixels)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WritePPM encodes pixels as a plain-text (P3) PPM
func WritePPM(w io.Writer, pixels [][]core.Vec3) error {
	img := ToRGBA(pixels)
	bounds := img.Bounds()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := img.RGBAAt(x, y)
			fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}

// Save writes pixels to path, choosing the encoder from the file extension
func Save(path string, pixels [][]core.Vec3) error {
	var write func(io.Writer, [][]core.Vec3) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		write = WritePNG
	case ".ppm":
		write = WritePPM
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(file, pixels); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
