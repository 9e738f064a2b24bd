package geometry

import (
	"github.com/Eearslya/Rake/pkg/core"
)

// Padding applied to a rectangle's bounding box along its flat axis so
// the box never collapses to zero thickness.
const rectBoundsPad = 0.0001

// primaryDir picks a canonical in-plane basis vector for a surface
// normal: the largest of the normal's cross products with the three
// world axes. Equal magnitudes keep the earlier axis. Valid for any
// non-degenerate normal, axis-aligned or not.
func primaryDir(normal core.Vec3) core.Vec3 {
	a := normal.Cross(core.NewVec3(1, 0, 0))
	b := normal.Cross(core.NewVec3(0, 1, 0))
	maxAB := a
	if a.Dot(a) < b.Dot(b) {
		maxAB = b
	}
	c := normal.Cross(core.NewVec3(0, 0, 1))
	if maxAB.Dot(maxAB) < c.Dot(c) {
		return c.Normalize()
	}
	return maxAB.Normalize()
}

// planarUV parameterizes a hit point by the canonical in-plane basis of
// the outward normal
func planarUV(outwardNormal, point core.Vec3) core.Vec2 {
	u := primaryDir(outwardNormal)
	v := outwardNormal.Cross(u)
	return core.NewVec2(u.Dot(point), v.Dot(point))
}

// XYRectangle is an axis-aligned rectangle on the plane z = Z
type XYRectangle struct {
	Min      core.Vec2
	Max      core.Vec2
	Z        float64
	Material core.Material
}

// NewXYRectangle creates a rectangle spanning [min, max] on the XY plane at z
func NewXYRectangle(min, max core.Vec2, z float64, material core.Material) *XYRectangle {
	return &XYRectangle{Min: min, Max: max, Z: z, Material: material}
}

// Bounds returns the rectangle's bounding box, padded along Z
func (r *XYRectangle) Bounds() (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.Min.X, r.Min.Y, r.Z-rectBoundsPad),
		core.NewVec3(r.Max.X, r.Max.Y, r.Z+rectBoundsPad),
	), true
}

// Hit tests if a ray intersects with the rectangle
func (r *XYRectangle) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	t := (r.Z - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return false
	}

	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.Min.X || x > r.Max.X || y < r.Min.Y || y > r.Max.Y {
		return false
	}

	rec.Distance = t
	rec.Point = ray.At(t)
	outwardNormal := core.NewVec3(0, 0, 1)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.Material = r.Material
	rec.UV = planarUV(outwardNormal, rec.Point)

	return true
}

// XZRectangle is an axis-aligned rectangle on the plane y = Y. Min and
// Max hold the (x, z) extents.
type XZRectangle struct {
	Min      core.Vec2
	Max      core.Vec2
	Y        float64
	Material core.Material
}

// NewXZRectangle creates a rectangle spanning [min, max] on the XZ plane at y
func NewXZRectangle(min, max core.Vec2, y float64, material core.Material) *XZRectangle {
	return &XZRectangle{Min: min, Max: max, Y: y, Material: material}
}

// Bounds returns the rectangle's bounding box, padded along Y
func (r *XZRectangle) Bounds() (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.Min.X, r.Y-rectBoundsPad, r.Min.Y),
		core.NewVec3(r.Max.X, r.Y+rectBoundsPad, r.Max.Y),
	), true
}

// Hit tests if a ray intersects with the rectangle
func (r *XZRectangle) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	t := (r.Y - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return false
	}

	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.Min.X || x > r.Max.X || z < r.Min.Y || z > r.Max.Y {
		return false
	}

	rec.Distance = t
	rec.Point = ray.At(t)
	outwardNormal := core.NewVec3(0, 1, 0)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.Material = r.Material
	rec.UV = planarUV(outwardNormal, rec.Point)

	return true
}

// YZRectangle is an axis-aligned rectangle on the plane x = X. Min and
// Max hold the (y, z) extents.
type YZRectangle struct {
	Min      core.Vec2
	Max      core.Vec2
	X        float64
	Material core.Material
}

// NewYZRectangle creates a rectangle spanning [min, max] on the YZ plane at x
func NewYZRectangle(min, max core.Vec2, x float64, material core.Material) *YZRectangle {
	return &YZRectangle{Min: min, Max: max, X: x, Material: material}
}

// Bounds returns the rectangle's bounding box, padded along X
func (r *YZRectangle) Bounds() (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X-rectBoundsPad, r.Min.X, r.Min.Y),
		core.NewVec3(r.X+rectBoundsPad, r.Max.X, r.Max.Y),
	), true
}

// Hit tests if a ray intersects with the rectangle
func (r *YZRectangle) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	t := (r.X - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return false
	}

	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Min.X || y > r.Max.X || z < r.Min.Y || z > r.Max.Y {
		return false
	}

	rec.Distance = t
	rec.Point = ray.At(t)
	outwardNormal := core.NewVec3(1, 0, 0)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.Material = r.Material
	rec.UV = planarUV(outwardNormal, rec.Point)

	return true
}
