package material

import (
	"math"

	"github.com/Eearslya/Rake/pkg/core"
)

// SolidSky samples a texture by the spherical mapping of the ray
// direction. With an environment-map texture this lights the scene from
// an image; with a solid texture it is a uniform background.
type SolidSky struct {
	Texture core.Texture
}

// NewSolidSky creates a sky from a texture
func NewSolidSky(texture core.Texture) *SolidSky {
	return &SolidSky{Texture: texture}
}

// NewSolidSkyColor creates a uniform sky
func NewSolidSkyColor(color core.Vec3) *SolidSky {
	return &SolidSky{Texture: NewSolidTexture(color)}
}

// Sample maps the ray direction to equirectangular UV coordinates and
// samples the texture
func (s *SolidSky) Sample(ray core.Ray) core.Vec3 {
	uv := core.NewVec2(
		math.Atan2(ray.Direction.Z, ray.Direction.X)*0.1591+0.5,
		math.Asin(ray.Direction.Y)*0.3183+0.5,
	)
	return s.Texture.Sample(uv, ray.Direction)
}

// GradientSky blends between two colors by the ray direction's height
type GradientSky struct {
	AlbedoA  core.Vec3
	AlbedoB  core.Vec3
	Gradient float64
}

// NewGradientSky creates a vertical gradient sky
func NewGradientSky(a, b core.Vec3, gradient float64) *GradientSky {
	return &GradientSky{AlbedoA: a, AlbedoB: b, Gradient: gradient}
}

// Sample lerps from A to B at t = gradient * (dir.y + 1)
func (s *GradientSky) Sample(ray core.Ray) core.Vec3 {
	t := s.Gradient * (ray.Direction.Y + 1.0)
	return s.AlbedoA.Lerp(s.AlbedoB, t)
}
