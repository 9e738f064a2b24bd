package material

import (
	"math"
	"math/rand"

	"github.com/Eearslya/Rake/pkg/core"
)

// Dielectric represents a transparent material like glass that both
// reflects and refracts
type Dielectric struct {
	IndexOfRefraction float64
}

// NewDielectric creates a new dielectric material
func NewDielectric(index float64) *Dielectric {
	return &Dielectric{IndexOfRefraction: index}
}

// Emit implements the Material interface; dielectrics emit nothing
func (d *Dielectric) Emit(uv core.Vec2, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter refracts the ray when Snell's law permits and the Fresnel
// term allows, otherwise reflects. Clear glass absorbs nothing, so this
// always scatters.
func (d *Dielectric) Scatter(ray core.Ray, hit core.HitRecord, attenuation *core.Vec3, scattered *core.Ray, random *rand.Rand) bool {
	refractionRatio := d.IndexOfRefraction
	if hit.FrontFace {
		refractionRatio = 1.0 / d.IndexOfRefraction
	}

	cosTheta := math.Min(ray.Direction.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = reflect(ray.Direction, hit.Normal)
	} else {
		direction = refract(ray.Direction, hit.Normal, refractionRatio)
	}

	*attenuation = core.NewVec3(1, 1, 1)
	*scattered = core.NewRay(hit.Point, direction.Normalize())

	return true
}

// refract bends a unit vector through a surface with normal n by the
// ratio of refraction indices, per Snell's law
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// reflectance is Schlick's approximation of the Fresnel term
func reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
