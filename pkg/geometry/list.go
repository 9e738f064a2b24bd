package geometry

import (
	"github.com/Eearslya/Rake/pkg/core"
)

// HittableList is an ordered collection of hittables. It is the input
// to BVH construction; hit testing iterates linearly.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list containing the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Bounds returns the union of all member bounds, or false when the list
// is empty or any member refuses to report bounds
func (l *HittableList) Bounds() (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	bounds := core.EmptyAABB()
	for _, object := range l.Objects {
		b, ok := object.Bounds()
		if !ok {
			return core.AABB{}, false
		}
		bounds = bounds.Union(b)
	}

	return bounds, true
}

// Hit tests the ray against every object, keeping the closest hit
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	var hit core.HitRecord
	hitAnything := false
	closest := tMax

	for _, object := range l.Objects {
		if object.Hit(ray, tMin, closest, &hit) {
			hitAnything = true
			closest = hit.Distance
			*rec = hit
		}
	}

	return hitAnything
}
