package material

import (
	"math/rand"

	"github.com/Eearslya/Rake/pkg/core"
)

// Metal represents a reflective material with adjustable roughness
type Metal struct {
	Albedo    core.Vec3
	Roughness float64 // 0.0 = perfect mirror, 1.0 = very rough
}

// NewMetal creates a new metal material. Roughness is clamped to [0, 1].
func NewMetal(albedo core.Vec3, roughness float64) *Metal {
	return &Metal{Albedo: albedo, Roughness: max(0.0, min(1.0, roughness))}
}

// Emit implements the Material interface; metals emit nothing
func (m *Metal) Emit(uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter reflects the ray about the normal, perturbed by roughness.
// Rays scattered below the surface horizon are absorbed.
func (m *Metal) Scatter(ray core.Ray, hit core.HitRecord, attenuation *core.Vec3, scattered *core.Ray, random *rand.Rand) bool {
	reflected := reflect(ray.Direction.Normalize(), hit.Normal).
		Add(core.RandomInUnitSphere(random).Multiply(m.Roughness))

	*attenuation = m.Albedo
	*scattered = core.NewRay(hit.Point, reflected.Normalize())

	return scattered.Direction.Dot(hit.Normal) > 0
}

// reflect mirrors v about the surface normal n: v - 2*dot(v,n)*n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
