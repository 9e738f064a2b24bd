package scene

import (
	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/geometry"
	"github.com/Eearslya/Rake/pkg/material"
)

// NewShowcaseWorld creates a material test scene: glass, metal and
// matte spheres over a checkered ground plane, with a rectangular
// area light overhead.
func NewShowcaseWorld() *World {
	world := NewWorld("Showcase")
	world.CameraPos = core.NewVec3(0, 2, 4)
	world.CameraTarget = core.NewVec3(0, 0.5, -1)
	world.VerticalFOV = 50.0
	world.CameraAperture = 0.05
	world.CameraFocusDistance = 5.5

	checker := material.NewCheckerColors(
		core.NewVec3(0.1, 0.1, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		material.DefaultCheckerScale,
	)

	world.Objects.Add(geometry.NewXZPlane(0, material.NewTexturedLambertian(checker)))
	world.Objects.Add(geometry.NewSphere(core.NewVec3(-2.2, 1, -1), 1, material.NewMetal(core.NewVec3(0.9, 0.7, 0.3), 0.05)))
	world.Objects.Add(geometry.NewSphere(core.NewVec3(0, 1, -1), 1, material.NewDielectric(1.5)))
	world.Objects.Add(geometry.NewSphere(core.NewVec3(2.2, 1, -1), 1, material.NewLambertian(core.NewVec3(0.2, 0.3, 0.8))))
	world.Objects.Add(geometry.NewXZRectangle(core.NewVec2(-1.5, -2), core.NewVec2(1.5, 0), 5, material.NewDiffuseLight(core.NewVec3(4, 4, 4))))

	world.Sky = material.NewGradientSky(
		core.NewVec3(1, 1, 1),
		core.NewVec3(0.5, 0.7, 1.0),
		0.5,
	)

	return world
}

// NewEnvironmentWorld creates a mirror-and-glass scene lit entirely by
// an equirectangular environment map. A missing map file renders cyan.
func NewEnvironmentWorld(hdrPath string, logger core.Logger) *World {
	world := NewWorld("Environment")
	world.CameraPos = core.NewVec3(0, 1, 3)
	world.CameraTarget = core.NewVec3(0, 0.5, 0)
	world.VerticalFOV = 60.0
	world.CameraAperture = 0.0
	world.CameraFocusDistance = 3.0

	env, _ := material.LoadImageTexture(hdrPath, logger)

	world.Objects.Add(geometry.NewSphere(core.NewVec3(-1.1, 0.5, 0), 0.5, material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0)))
	world.Objects.Add(geometry.NewSphere(core.NewVec3(1.1, 0.5, 0), 0.5, material.NewDielectric(1.5)))

	world.Sky = material.NewSolidSky(env)

	return world
}
