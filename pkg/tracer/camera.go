package tracer

import (
	"math"
	"math/rand"

	"github.com/Eearslya/Rake/pkg/core"
)

// Camera is a thin-lens camera. It is a pure function of its
// constructor arguments; GetRay is safe to call from any worker as long
// as each worker passes its own random generator.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	forward         core.Vec3
	right           core.Vec3
	up              core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera at position looking at target. Aperture
// controls depth of field; objects at focusDist are in focus.
func NewCamera(position, target core.Vec3, vFov, aspectRatio, aperture, focusDist float64) *Camera {
	theta := vFov * math.Pi / 180.0
	h := math.Tan(theta / 2.0)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	forward := position.Subtract(target).Normalize()
	right := core.NewVec3(0, 1, 0).Cross(forward).Normalize()
	up := forward.Cross(right)

	origin := position
	horizontal := right.Multiply(focusDist * viewportWidth)
	vertical := up.Multiply(focusDist * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(forward.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		forward:         forward,
		right:           right,
		up:              up,
		lensRadius:      aperture / 2.0,
	}
}

// GetRay generates a primary ray through viewport coordinates (s, t) in
// [0, 1], jittering the origin over the lens disk
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.right.Multiply(rd.X).Add(c.up.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset).
		Normalize()

	return core.NewRay(c.origin.Add(offset), direction)
}
