package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the empty-box sentinel: Min at +Inf, Max at -Inf.
// Union with any real box yields that box.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: NewVec3(inf, inf, inf),
		Max: NewVec3(-inf, -inf, -inf),
	}
}

// Hit tests if a ray intersects this AABB using the slab method on the
// ray's precomputed inverse direction. A ray parallel to a slab gets
// ±Inf slab distances, which min/max resolve correctly; one that starts
// on a face plane of that slab lies inside it and is not constrained by
// it. Grazing hits (interval of zero width) are accepted.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	t1 := (aabb.Min.X - ray.Origin.X) * ray.InvDirection.X
	t2 := (aabb.Max.X - ray.Origin.X) * ray.InvDirection.X
	t3 := (aabb.Min.Y - ray.Origin.Y) * ray.InvDirection.Y
	t4 := (aabb.Max.Y - ray.Origin.Y) * ray.InvDirection.Y
	t5 := (aabb.Min.Z - ray.Origin.Z) * ray.InvDirection.Z
	t6 := (aabb.Max.Z - ray.Origin.Z) * ray.InvDirection.Z
	t1, t2 = slabInterval(t1, t2)
	t3, t4 = slabInterval(t3, t4)
	t5, t6 = slabInterval(t5, t6)

	near := math.Max(tMin, math.Max(math.Max(math.Min(t1, t2), math.Min(t3, t4)), math.Min(t5, t6)))
	far := math.Min(tMax, math.Min(math.Min(math.Max(t1, t2), math.Max(t3, t4)), math.Max(t5, t6)))

	if far < 0 || near > far {
		return false
	}

	return true
}

// slabInterval maps the 0 * Inf = NaN slab distances of a parallel ray
// starting on a face plane to the whole line
func slabInterval(tA, tB float64) (float64, float64) {
	if math.IsNaN(tA) || math.IsNaN(tB) {
		return math.Inf(-1), math.Inf(1)
	}
	return tA, tB
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Contains reports whether other lies entirely inside this AABB
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
