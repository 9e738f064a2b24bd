package material

import (
	"math/rand"

	"github.com/Eearslya/Rake/pkg/core"
)

// DiffuseLight is an emissive material; incoming rays are absorbed
type DiffuseLight struct {
	Texture core.Texture
}

// NewDiffuseLight creates a light emitting a solid color
func NewDiffuseLight(color core.Vec3) *DiffuseLight {
	return &DiffuseLight{Texture: NewSolidTexture(color)}
}

// NewTexturedDiffuseLight creates a light emitting a texture sample
func NewTexturedDiffuseLight(texture core.Texture) *DiffuseLight {
	return &DiffuseLight{Texture: texture}
}

// Emit returns the texture sample at the hit point
func (d *DiffuseLight) Emit(uv core.Vec2, p core.Vec3) core.Vec3 {
	return d.Texture.Sample(uv, p)
}

// Scatter always absorbs; lights contribute emission only
func (d *DiffuseLight) Scatter(ray core.Ray, hit core.HitRecord, attenuation *core.Vec3, scattered *core.Ray, random *rand.Rand) bool {
	return false
}
