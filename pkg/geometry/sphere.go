package geometry

import (
	"math"

	"github.com/Eearslya/Rake/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Bounds returns the axis-aligned bounding box for this sphere
func (s *Sphere) Bounds() (core.AABB, bool) {
	r := math.Abs(s.Radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(s.Center.Subtract(extent), s.Center.Add(extent)), true
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64, rec *core.HitRecord) bool {
	// Half-b form of the quadratic; a == 1 for unit ray directions
	oc := ray.Origin.Subtract(s.Center)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - c
	if discriminant < 0 {
		return false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := -halfB - sqrtD
	if root < tMin || root > tMax {
		root = -halfB + sqrtD
		if root < tMin || root > tMax {
			return false
		}
	}

	rec.Distance = root
	rec.Point = ray.At(root)
	outwardNormal := rec.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.Material = s.Material
	rec.UV = sphereUV(outwardNormal)

	return true
}

// sphereUV maps a point on the unit sphere to spherical UV coordinates
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi

	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
