package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Eearslya/Rake/pkg/core"
)

func TestMetalPerfectMirror(t *testing.T) {
	mat := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)
	random := rand.New(rand.NewSource(42))

	// 45-degree incidence on a floor
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	var attenuation core.Vec3
	var scattered core.Ray
	if !mat.Scatter(ray, hit, &attenuation, &scattered, random) {
		t.Fatal("Expected mirror reflection to scatter")
	}

	want := core.NewVec3(1, 1, 0).Normalize()
	if scattered.Direction.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected reflection %v, got %v", want, scattered.Direction)
	}
	if attenuation != mat.Albedo {
		t.Errorf("Expected attenuation %v, got %v", mat.Albedo, attenuation)
	}
}

func TestMetalAbsorbsBelowHorizon(t *testing.T) {
	// With maximum roughness some scattered rays land below the
	// surface; those must be absorbed, never returned
	mat := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	random := rand.New(rand.NewSource(42))

	// Grazing incidence makes below-horizon perturbations common
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0).Normalize())
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	absorbed := 0
	for i := 0; i < 1000; i++ {
		var attenuation core.Vec3
		var scattered core.Ray
		if mat.Scatter(ray, hit, &attenuation, &scattered, random) {
			if scattered.Direction.Dot(hit.Normal) <= 0 {
				t.Fatal("Scattered ray below surface was not absorbed")
			}
		} else {
			absorbed++
		}
	}

	if absorbed == 0 {
		t.Error("Expected some absorption at grazing incidence with full roughness")
	}
}

func TestMetalRoughnessClamped(t *testing.T) {
	if m := NewMetal(core.NewVec3(1, 1, 1), 2.5); m.Roughness != 1.0 {
		t.Errorf("Expected roughness clamped to 1, got %v", m.Roughness)
	}
	if m := NewMetal(core.NewVec3(1, 1, 1), -0.5); m.Roughness != 0.0 {
		t.Errorf("Expected roughness clamped to 0, got %v", m.Roughness)
	}
}

func TestReflect(t *testing.T) {
	v := core.NewVec3(1, -1, 0).Normalize()
	n := core.NewVec3(0, 1, 0)

	r := reflect(v, n)
	want := core.NewVec3(1, 1, 0).Normalize()
	if r.Subtract(want).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", want, r)
	}
	if math.Abs(r.Length()-1.0) > 1e-12 {
		t.Errorf("Reflection of a unit vector must stay unit, got length %v", r.Length())
	}
}
