package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Distance  float64  // Parameter t along the ray
	Normal    Vec3     // Surface normal, always facing against the incident ray
	FrontFace bool     // Whether the ray hit the front face
	UV        Vec2     // Surface parameterization at the hit point
	Material  Material // Material of the hit object
}

// SetFaceNormal stores the normal facing against the incident ray and
// records which side was hit
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
