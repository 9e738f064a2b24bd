package material

import (
	"math"

	"github.com/Eearslya/Rake/pkg/core"
)

// SolidTexture is a constant color
type SolidTexture struct {
	Albedo core.Vec3
}

// NewSolidTexture creates a texture with a constant color
func NewSolidTexture(albedo core.Vec3) *SolidTexture {
	return &SolidTexture{Albedo: albedo}
}

// Sample returns the constant color
func (t *SolidTexture) Sample(uv core.Vec2, p core.Vec3) core.Vec3 {
	return t.Albedo
}

// CheckerTexture alternates between two textures based on the sign of a
// 2D sine pattern over UV space
type CheckerTexture struct {
	Odd   core.Texture
	Even  core.Texture
	Scale core.Vec2
}

// DefaultCheckerScale is the pattern frequency used when none is given
var DefaultCheckerScale = core.NewVec2(10, 10)

// NewCheckerTexture creates a checker pattern from two textures
func NewCheckerTexture(odd, even core.Texture, scale core.Vec2) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Scale: scale}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(odd, even core.Vec3, scale core.Vec2) *CheckerTexture {
	return &CheckerTexture{
		Odd:   NewSolidTexture(odd),
		Even:  NewSolidTexture(even),
		Scale: scale,
	}
}

// Sample picks the odd or even texture from the sign of
// sin(scale.x*u) * sin(scale.y*v)
func (t *CheckerTexture) Sample(uv core.Vec2, p core.Vec3) core.Vec3 {
	sines := math.Sin(t.Scale.X*uv.X) * math.Sin(t.Scale.Y*uv.Y)
	if sines < 0 {
		return t.Odd.Sample(uv, p)
	}
	return t.Even.Sample(uv, p)
}
