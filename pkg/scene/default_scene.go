package scene

import (
	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/geometry"
	"github.com/Eearslya/Rake/pkg/material"
)

// NewDefaultWorld creates the starter scene: a small matte sphere
// resting on a large ground sphere under a gradient sky
func NewDefaultWorld() *World {
	world := NewWorld("World")
	world.CameraPos = core.NewVec3(0, 0, 0)
	world.CameraTarget = core.NewVec3(0, 0, -1)
	world.CameraFocusDistance = 1.0

	center := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))

	world.Objects.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center))
	world.Objects.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))

	world.Sky = material.NewGradientSky(
		core.NewVec3(1, 1, 1),
		core.NewVec3(0.5, 0.7, 1.0),
		0.5,
	)

	return world
}
