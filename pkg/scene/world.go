package scene

import (
	"math/rand"

	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/geometry"
)

// World is a named scene: a list of hittables, a sky, and the camera
// parameters a trace is taken with. A world is immutable for the
// duration of any trace that references it.
type World struct {
	Name                string
	Objects             geometry.HittableList
	Sky                 core.SkyMaterial
	VerticalFOV         float64
	CameraPos           core.Vec3
	CameraTarget        core.Vec3
	CameraAperture      float64
	CameraFocusDistance float64
	BVH                 core.Hittable
}

// NewWorld creates an empty world with default camera parameters
func NewWorld(name string) *World {
	return &World{
		Name:                name,
		VerticalFOV:         90.0,
		CameraPos:           core.NewVec3(0, 0, 0),
		CameraTarget:        core.NewVec3(0, 0, -1),
		CameraAperture:      0.01,
		CameraFocusDistance: 100.0,
	}
}

// ConstructBVH builds the acceleration structure over the world's
// objects. It must be called before tracing; the tree is rebuilt on
// every call so object edits between traces take effect.
func (w *World) ConstructBVH() error {
	// Deterministic splits keep BVH layout reproducible across traces
	bvh, err := geometry.NewBVHFromList(&w.Objects, rand.New(rand.NewSource(int64(len(w.Objects.Objects)))))
	if err != nil {
		return err
	}
	w.BVH = bvh

	return nil
}
