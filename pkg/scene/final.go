package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

const (
	boxesPerSide  = 20
	foamParticles = 1000
)

// NewFinalScene creates the showcase scene: a field of random-height boxes, a moving sphere,
// glass, metal, subsurface and mist volumes, a textured globe, marble and a rotated cluster
// of small spheres
func NewFinalScene(cfg Config, sampler core.Sampler) *Scene {
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	world := geometry.NewHittableList(geometry.NewBVHFromList(boxes))

	light := geometry.NewQuad(core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265),
		material.NewDiffuseLight(core.NewVec3(7, 7, 7)))
	world.Add(light)

	center := core.NewVec3(400, 400, 200)
	world.Add(geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass shell around a blue scattering volume
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over everything
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globeTexture(cfg))))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewTexturedLambertian(material.NewNoiseTexture(0.2, sampler))))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	foam := geometry.NewHittableList()
	for i := 0; i < foamParticles; i++ {
		foam.Add(geometry.NewSphere(core.RandomVec3Range(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(geometry.NewRotateY(geometry.NewBVHFromList(foam), 15), core.NewVec3(-100, 270, 395)))

	camera := cameraOptions()
	camera.AspectRatio = 1
	camera.ImageWidth = 1000
	camera.SamplesPerPixel = 500
	camera.VFov = 40
	camera.LookFrom = core.NewVec3(478, 278, -600)
	camera.LookAt = core.NewVec3(270, 278, 0)
	camera.Background = core.NewVec3(0, 0, 0)

	return &Scene{
		World:  geometry.NewBVHFromList(world),
		Lights: geometry.NewHittableList(light),
		Camera: camera,
	}
}
