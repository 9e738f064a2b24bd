package core

import (
	"math/rand"
	"testing"
)

func TestSetFaceNormalOrientation(t *testing.T) {
	outward := NewVec3(0, 0, 1)

	// Ray against the outward normal hits the front face
	var rec HitRecord
	rec.SetFaceNormal(NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -1)), outward)
	if !rec.FrontFace {
		t.Error("Expected front face hit")
	}
	if rec.Normal != outward {
		t.Errorf("Expected normal %v, got %v", outward, rec.Normal)
	}

	// Ray along the outward normal hits the back face; normal flips
	rec.SetFaceNormal(NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), outward)
	if rec.FrontFace {
		t.Error("Expected back face hit")
	}
	if rec.Normal != outward.Negate() {
		t.Errorf("Expected flipped normal, got %v", rec.Normal)
	}
}

func TestSetFaceNormalAlwaysAgainstRay(t *testing.T) {
	// The stored normal must never point with the incident ray
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		dir := RandomUnitVector(random)
		outward := RandomUnitVector(random)

		var rec HitRecord
		rec.SetFaceNormal(NewRay(Vec3{}, dir), outward)
		if dir.Dot(rec.Normal) > 0 {
			t.Fatalf("Normal %v points with ray %v", rec.Normal, dir)
		}
	}
}
