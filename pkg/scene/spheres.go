package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSimpleScene creates three spheres on a ground sphere, including a hollow glass sphere
func NewSimpleScene(cfg Config, sampler core.Sampler) *Scene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, material.NewDielectric(1.0/1.5)), // Air bubble
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)),
	)

	camera := cameraOptions()
	camera.LookFrom = core.NewVec3(-2, 2, 1)
	camera.VFov = 20
	camera.DefocusAngle = 10
	camera.FocusDist = 3.4

	return &Scene{World: geometry.NewBVHFromList(world), Camera: camera}
}

// NewBouncingSpheresScene creates a grid of small random spheres, the diffuse ones moving,
// around three large feature spheres on a checkered ground
func NewBouncingSpheresScene(cfg Config, sampler core.Sampler) *Scene {
	checker := material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3Range(sampler, 0, 1).MultiplyVec(core.RandomVec3Range(sampler, 0, 1))
				bounce := core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0)
				world.Add(geometry.NewMovingSphere(center, center.Add(bounce), 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	camera := cameraOptions()
	camera.ImageWidth = 600
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)
	camera.DefocusAngle = 0.6

	return &Scene{World: geometry.NewBVHFromList(world), Camera: camera}
}

// NewCheckeredSpheresScene creates two large touching checkered spheres
func NewCheckeredSpheresScene(cfg Config, sampler core.Sampler) *Scene {
	checker := material.NewTexturedLambertian(
		material.NewCheckerTextureFromColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	camera := cameraOptions()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)

	return &Scene{World: geometry.NewBVHFromList(world), Camera: camera}
}

// NewEarthScene creates a single textured globe
func NewEarthScene(cfg Config, sampler core.Sampler) *Scene {
	globe := geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(globeTexture(cfg)))

	camera := cameraOptions()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(0, 0, 12)
	camera.LookAt = core.NewVec3(0, 0, 0)

	return &Scene{World: geometry.NewBVHNode([]geometry.Hittable{globe}), Camera: camera}
}

// NewPerlinSpheresScene creates a marble sphere on a marble ground
func NewPerlinSpheresScene(cfg Config, sampler core.Sampler) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	camera := cameraOptions()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.LookAt = core.NewVec3(0, 0, 0)

	return &Scene{World: geometry.NewBVHFromList(world), Camera: camera}
}
