package material

import (
	"math/rand"

	"github.com/Eearslya/Rake/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Texture core.Texture
}

// NewLambertian creates a diffuse material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Texture: NewSolidTexture(albedo)}
}

// NewTexturedLambertian creates a diffuse material with a texture
func NewTexturedLambertian(texture core.Texture) *Lambertian {
	return &Lambertian{Texture: texture}
}

// Emit implements the Material interface; diffuse surfaces emit nothing
func (l *Lambertian) Emit(uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter bounces the ray into a random direction in the hemisphere
// around the normal. Near-zero directions fall back to the normal so
// the scattered ray is never degenerate.
func (l *Lambertian) Scatter(ray core.Ray, hit core.HitRecord, attenuation *core.Vec3, scattered *core.Ray, random *rand.Rand) bool {
	target := core.RandomInHemisphere(hit.Normal, random)
	if target.Length() < 0.001 {
		target = hit.Normal
	}

	*attenuation = l.Texture.Sample(hit.UV, hit.Point)
	*scattered = core.NewRay(hit.Point, target.Normalize())

	return true
}
