package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// ErrInvalidCamera is returned when camera options describe an empty image
var ErrInvalidCamera = errors.New("invalid camera options")

// CameraOptions is the flat camera and render configuration
type CameraOptions struct {
	AspectRatio     float64 // Image width over height
	ImageWidth      int     // Rendered image width in pixels
	SamplesPerPixel int     // Number of paths averaged per pixel
	MaxDepth        int     // Maximum ray bounce depth
	VFov            float64 // Vertical field of view in degrees
	LookFrom        core.Vec3
	LookAt          core.Vec3
	VUp             core.Vec3
	DefocusAngle    float64   // Aperture cone angle in degrees (0 = pinhole)
	FocusDist       float64   // Distance from LookFrom to the plane of perfect focus
	Background      core.Vec3 // Radiance returned for rays that escape the scene
	Seed            int64     // Base seed for per-scanline samplers
	NumWorkers      int       // Number of parallel workers (0 = use CPU count)
}

// DefaultCameraOptions returns sensible default values
func DefaultCameraOptions() CameraOptions {
	return CameraOptions{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            90,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
		Seed:            1,
		NumWorkers:      0,
	}
}

// Camera generates rays for rendering and drives the render loop
type Camera struct {
	options     CameraOptions
	imageHeight int

	pixel00      core.Vec3 // Center of pixel (0, 0), the top-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	u, v, w      core.Vec3 // Camera frame basis
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3

	integrator integrator.Integrator
	logger     core.Logger
}

// NewCamera validates options and derives the viewport. Rendering uses a path
// tracing integrator with the configured MaxDepth unless SetIntegrator is called.
func NewCamera(options CameraOptions) (*Camera, error) {
	if !(options.AspectRatio > 0) {
		return nil, fmt.Errorf("%w: aspect ratio must be positive, got %g", ErrInvalidCamera, options.AspectRatio)
	}
	if options.ImageWidth <= 0 {
		return nil, fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidCamera, options.ImageWidth)
	}
	imageHeight := int(float64(options.ImageWidth) / options.AspectRatio)
	if imageHeight <= 0 {
		return nil, fmt.Errorf("%w: image height for width %d and aspect ratio %g is zero",
			ErrInvalidCamera, options.ImageWidth, options.AspectRatio)
	}

	theta := options.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * options.FocusDist
	viewportWidth := viewportHeight * float64(options.ImageWidth) / float64(imageHeight)

	w := options.LookFrom.Subtract(options.LookAt).Normalize()
	u := options.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport runs left to right along u and top to bottom along -v
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)
	pixelDeltaU := viewportU.Divide(float64(options.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	upperLeft := options.LookFrom.
		Subtract(w.Multiply(options.FocusDist)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := options.FocusDist * math.Tan(options.DefocusAngle/2*math.Pi/180)

	return &Camera{
		options:      options,
		imageHeight:  imageHeight,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
		integrator:   integrator.NewPathTracingIntegrator(options.MaxDepth),
		logger:       NewDefaultLogger(),
	}, nil
}

// Options returns the options the camera was built from
func (c *Camera) Options() CameraOptions {
	return c.options
}

// Width returns the image width in pixels
func (c *Camera) Width() int {
	return c.options.ImageWidth
}

// Height returns the image height in pixels
func (c *Camera) Height() int {
	return c.imageHeight
}

// GetCameraForward returns the direction the camera looks in
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}

// SetIntegrator replaces the light transport algorithm
func (c *Camera) SetIntegrator(integrator integrator.Integrator) {
	c.integrator = integrator
}

// SetLogger replaces the progress logger
func (c *Camera) SetLogger(logger core.Logger) {
	c.logger = logger
}

// GetRay generates a camera ray through a random point in pixel (i, j), counted from the
// top-left corner, with a random time in [0, 1) for motion blur
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.options.LookFrom
	if c.options.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

// defocusDiskSample returns a random point on the thin lens around LookFrom
func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler.Get2D())
	return c.options.LookFrom.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
}
