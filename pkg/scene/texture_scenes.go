package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// overviewCamera looks at the origin from a distance with a narrow field of view
func overviewCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 16.0 / 9.0,
	}
}

func textureSampling() renderer.SamplingConfig {
	return renderer.SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// NewCheckerScene creates two large spheres sharing one 3D checker texture
func NewCheckerScene() *Scene {
	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	checkerMat := material.NewTexturedLambertian(checker)

	return newScene(overviewCamera(), textureSampling(),
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checkerMat),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checkerMat),
	)
}

// NewUVCheckerScene mirrors the checker scene with textures that follow surface UV.
// The upper sphere carries a 2D checkerboard and the ground a vertical gradient.
func NewUVCheckerScene() *Scene {
	checkerboard := material.NewCheckerboardImageTexture(256, 128, 16,
		core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	gradient := material.NewGradientTexture(4, 64, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.2, 0.3, 0.1))

	return newScene(overviewCamera(), textureSampling(),
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(gradient)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(checkerboard)),
	)
}

// NewPerlinScene creates a noise-textured ground with a marble sphere on top
func NewPerlinScene(opts Options) *Scene {
	random := rand.New(rand.NewSource(opts.Seed))
	noise := material.NewNoiseTexture(4, random)
	marble := material.NewTurbulenceTexture(4, 7, random)

	return newScene(overviewCamera(), textureSampling(),
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(marble)),
	)
}

// NewEarthScene creates a single globe wrapped in an image texture.
// Without a texture path the globe shows a UV debug pattern; an unreadable file shows solid red.
func NewEarthScene(opts Options) *Scene {
	var texture *material.ImageTexture
	if opts.TexturePath == "" {
		texture = material.NewUVDebugTexture(256, 128)
	} else {
		texture = material.LoadImageTexture(opts.TexturePath)
	}

	cameraConfig := overviewCamera()
	cameraConfig.LookFrom = core.NewVec3(0, 0, 12)

	return newScene(cameraConfig, textureSampling(),
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	)
}
