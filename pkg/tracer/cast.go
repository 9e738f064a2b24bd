package tracer

import (
	"math"
	"math/rand"

	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/scene"
)

const (
	// maxDepth caps path recursion; a path this deep contributes black
	maxDepth = 50
	// tMinEpsilon keeps secondary rays from re-hitting the surface they
	// scattered off (shadow acne)
	tMinEpsilon = 0.001
)

// castRay returns the radiance arriving along a ray: emission plus
// attenuated recursion while the material scatters, emission alone when
// it absorbs, and the sky sample when the ray escapes the scene.
func castRay(ray core.Ray, world *scene.World, depth int, random *rand.Rand, raycasts *uint64) core.Vec3 {
	if depth >= maxDepth {
		return core.Vec3{}
	}
	*raycasts++

	var hit core.HitRecord
	if world.BVH.Hit(ray, tMinEpsilon, math.Inf(1), &hit) {
		emission := hit.Material.Emit(hit.UV, hit.Point)

		var attenuation core.Vec3
		var scattered core.Ray
		if hit.Material.Scatter(ray, hit, &attenuation, &scattered, random) {
			return emission.Add(attenuation.MultiplyVec(castRay(scattered, world, depth+1, random, raycasts)))
		}
		return emission
	}

	return world.Sky.Sample(ray)
}
