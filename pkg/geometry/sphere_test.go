package geometry

import (
	"math"
	"testing"

	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/material"
)

func TestSphereHitHeadOn(t *testing.T) {
	red := material.NewLambertian(core.NewVec3(1, 0, 0))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, red)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	var rec core.HitRecord
	if !sphere.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("Expected hit for ray through sphere center")
	}

	if math.Abs(rec.Distance-0.5) > 1e-12 {
		t.Errorf("Expected hit at t=0.5, got %v", rec.Distance)
	}
	if rec.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normal (0,0,1), got %v", rec.Normal)
	}
	if !rec.FrontFace {
		t.Error("Expected front face hit")
	}
	if rec.Material != core.Material(red) {
		t.Error("Expected hit record to carry the sphere's material")
	}

	// Spherical UV of the outward normal (0,0,1):
	// u = (atan2(-1, 0) + pi) / 2pi = 0.25, v = acos(0) / pi = 0.5
	if math.Abs(rec.UV.X-0.25) > 1e-12 || math.Abs(rec.UV.Y-0.5) > 1e-12 {
		t.Errorf("Expected UV (0.25, 0.5), got %v", rec.UV)
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1)))

	ray := core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1))
	var rec core.HitRecord
	if sphere.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Error("Expected miss for ray passing above sphere")
	}
}

func TestSphereHitFromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, material.NewDielectric(1.5))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	var rec core.HitRecord
	if !sphere.Hit(ray, 0.001, math.Inf(1), &rec) {
		t.Fatal("Expected hit from inside the sphere")
	}

	if rec.FrontFace {
		t.Error("Expected back face hit from inside")
	}
	// Normal must face against the ray
	if ray.Direction.Dot(rec.Normal) > 0 {
		t.Errorf("Normal %v points with ray", rec.Normal)
	}
}

func TestSphereHitRespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewLambertian(core.NewVec3(1, 1, 1)))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var rec core.HitRecord
	if sphere.Hit(ray, 0.001, 1.0, &rec) {
		t.Error("Expected miss when tMax stops short of sphere")
	}
	// Near intersection at t=1.5 excluded, far one at t=2.5 accepted
	if !sphere.Hit(ray, 2.0, math.Inf(1), &rec) {
		t.Fatal("Expected far intersection when near is excluded")
	}
	if math.Abs(rec.Distance-2.5) > 1e-12 {
		t.Errorf("Expected far hit at t=2.5, got %v", rec.Distance)
	}
}

func TestSphereBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil)

	bounds, ok := sphere.Bounds()
	if !ok {
		t.Fatal("Sphere must report bounds")
	}
	if bounds.Min != core.NewVec3(0.5, 1.5, 2.5) || bounds.Max != core.NewVec3(1.5, 2.5, 3.5) {
		t.Errorf("Unexpected bounds: %v", bounds)
	}
}

func TestSphereUVPoles(t *testing.T) {
	// acos is only defined on [-1,1]; the poles sit exactly on the
	// domain edge and must not produce NaN
	top := sphereUV(core.NewVec3(0, 1, 0))
	if math.IsNaN(top.X) || math.IsNaN(top.Y) {
		t.Errorf("NaN UV at top pole: %v", top)
	}
	if math.Abs(top.Y-1.0) > 1e-12 {
		t.Errorf("Expected v=1 at top pole, got %v", top.Y)
	}

	bottom := sphereUV(core.NewVec3(0, -1, 0))
	if math.Abs(bottom.Y) > 1e-12 {
		t.Errorf("Expected v=0 at bottom pole, got %v", bottom.Y)
	}
}
