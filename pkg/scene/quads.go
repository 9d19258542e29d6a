package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewQuadsScene creates five colored quads forming an open box around the camera axis
func NewQuadsScene(cfg Config, sampler core.Sampler) *Scene {
	world := geometry.NewHittableList(
		// Left (red)
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0),
			material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))),
		// Back (green)
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0),
			material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))),
		// Right (blue)
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0),
			material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))),
		// Upper (orange)
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4),
			material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))),
		// Lower (teal)
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4),
			material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))),
	)

	camera := cameraOptions()
	camera.AspectRatio = 1
	camera.VFov = 80
	camera.LookFrom = core.NewVec3(0, 0, 9)
	camera.LookAt = core.NewVec3(0, 0, 0)

	return &Scene{World: geometry.NewBVHFromList(world), Camera: camera}
}

// NewSimpleLightScene creates marble spheres lit by a spherical and a rectangular light
// against a black sky
func NewSimpleLightScene(cfg Config, sampler core.Sampler) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	sphereLight := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light)
	quadLight := geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		sphereLight,
		quadLight,
	)

	camera := cameraOptions()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.Background = core.NewVec3(0, 0, 0)

	return &Scene{
		World:  geometry.NewBVHFromList(world),
		Lights: geometry.NewHittableList(sphereLight, quadLight),
		Camera: camera,
	}
}

// NewTrianglesScene creates a single red triangle against a white sky
func NewTrianglesScene(cfg Config, sampler core.Sampler) *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	world := geometry.NewHittableList(
		geometry.NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), core.NewVec3(1, 0, 0), red),
	)

	camera := cameraOptions()
	camera.AspectRatio = 1
	camera.VFov = 40
	camera.SamplesPerPixel = 10
	camera.LookFrom = core.NewVec3(1, 0, -5)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.Background = core.NewVec3(1, 1, 1)

	return &Scene{World: geometry.NewBVHFromList(world), Camera: camera}
}
