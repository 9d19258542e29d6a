package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellRoom returns the five walls of the Cornell box and its ceiling light
func cornellRoom(emission, lightCorner, lightU, lightV core.Vec3) (*geometry.HittableList, *geometry.Quad) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	ceilingLight := geometry.NewQuad(lightCorner, lightU, lightV, material.NewDiffuseLight(emission))

	walls := geometry.NewHittableList(
		// Right wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		ceilingLight,
		// Ceiling, floor and back wall (white)
		geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)

	return walls, ceilingLight
}

// cornellBlocks returns the tall and short boxes, rotated and moved into place
func cornellBlocks(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))

	return tall, short
}

func cornellCamera() renderer.CameraOptions {
	camera := cameraOptions()
	camera.AspectRatio = 1
	camera.ImageWidth = 600
	camera.SamplesPerPixel = 200
	camera.VFov = 40
	camera.LookFrom = core.NewVec3(278, 278, -800)
	camera.LookAt = core.NewVec3(278, 278, 0)
	camera.Background = core.NewVec3(0, 0, 0)
	return camera
}

// NewCornellScene creates a classic Cornell box scene with two white blocks and a
// light-sampled ceiling patch
func NewCornellScene(cfg Config, sampler core.Sampler) *Scene {
	world, light := cornellRoom(core.NewVec3(15, 15, 15),
		core.NewVec3(343, 554, 332), core.NewVec3(-130, 0, 0), core.NewVec3(0, 0, -105))

	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	world.Add(tall)
	world.Add(short)

	return &Scene{
		World:  geometry.NewBVHFromList(world),
		Lights: geometry.NewHittableList(light),
		Camera: cornellCamera(),
	}
}

// NewCornellSmokeScene fills the Cornell blocks with dark and light smoke under a wide,
// dimmer light
func NewCornellSmokeScene(cfg Config, sampler core.Sampler) *Scene {
	world, light := cornellRoom(core.NewVec3(7, 7, 7),
		core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305))

	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))
	world.Add(geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)))

	return &Scene{
		World:  geometry.NewBVHFromList(world),
		Lights: geometry.NewHittableList(light),
		Camera: cornellCamera(),
	}
}
