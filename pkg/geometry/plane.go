package geometry

import (
	"math"

	"github.com/Eearslya/Rake/pkg/core"
)

// Planes are rectangles with infinite in-plane extent.

// NewXYPlane creates an infinite plane at z
func NewXYPlane(z float64, material core.Material) *XYRectangle {
	inf := math.Inf(1)
	return NewXYRectangle(core.NewVec2(-inf, -inf), core.NewVec2(inf, inf), z, material)
}

// NewXZPlane creates an infinite plane at y
func NewXZPlane(y float64, material core.Material) *XZRectangle {
	inf := math.Inf(1)
	return NewXZRectangle(core.NewVec2(-inf, -inf), core.NewVec2(inf, inf), y, material)
}

// NewYZPlane creates an infinite plane at x
func NewYZPlane(x float64, material core.Material) *YZRectangle {
	inf := math.Inf(1)
	return NewYZRectangle(core.NewVec2(-inf, -inf), core.NewVec2(inf, inf), x, material)
}
