package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"math"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-pathtracer/pkg/core"
)

// DisplayGamma is the encoding gamma removed from decoded pixels
const DisplayGamma = 2.2

// ImageData contains loaded image data as a row-major Vec3 color array, top row first
type ImageData struct {
	Width  int
	Height int
	Format string // Decoder that read the image, e.g. "png"
	Pixels []core.Vec3
}

// LoadImage loads a PNG, JPEG, BMP or TIFF image and converts it to linear color
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes an image stream, detecting the format from its header
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				toLinear(float64(r)/65535.0),
				toLinear(float64(g)/65535.0),
				toLinear(float64(b)/65535.0),
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
	}, nil
}

func toLinear(c float64) float64 {
	return math.Pow(c, DisplayGamma)
}
