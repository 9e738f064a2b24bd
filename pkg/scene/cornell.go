package scene

import (
	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/geometry"
	"github.com/Eearslya/Rake/pkg/material"
)

// NewCornellWorld creates a Cornell box: colored side walls, white
// floor, ceiling and back wall, and a ceiling light. The only
// illumination is the light; the sky is black.
func NewCornellWorld() *World {
	world := NewWorld("Cornell Box")
	world.CameraPos = core.NewVec3(278, 278, -800)
	world.CameraTarget = core.NewVec3(278, 278, 0)
	world.VerticalFOV = 40.0
	world.CameraAperture = 0.0
	world.CameraFocusDistance = 800.0

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// Walls; rectangle Min/Max hold the two in-plane extents
	world.Objects.Add(geometry.NewYZRectangle(core.NewVec2(0, 0), core.NewVec2(555, 555), 555, green))
	world.Objects.Add(geometry.NewYZRectangle(core.NewVec2(0, 0), core.NewVec2(555, 555), 0, red))
	world.Objects.Add(geometry.NewXZRectangle(core.NewVec2(0, 0), core.NewVec2(555, 555), 0, white))
	world.Objects.Add(geometry.NewXZRectangle(core.NewVec2(0, 0), core.NewVec2(555, 555), 555, white))
	world.Objects.Add(geometry.NewXYRectangle(core.NewVec2(0, 0), core.NewVec2(555, 555), 555, white))

	world.Objects.Add(geometry.NewXZRectangle(core.NewVec2(213, 227), core.NewVec2(343, 332), 554, light))

	// Interior spheres stand in for the classic boxes
	world.Objects.Add(geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5)))
	world.Objects.Add(geometry.NewSphere(core.NewVec3(370, 120, 350), 120, material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.1)))

	world.Sky = material.NewSolidSkyColor(core.NewVec3(0, 0, 0))

	return world
}
