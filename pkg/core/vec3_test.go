package core

import (
	"math"
	"testing"
)

func TestVec3BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != NewVec3(5, 7, 9) {
		t.Errorf("Add: expected (5,7,9), got %v", got)
	}
	if got := b.Subtract(a); got != NewVec3(3, 3, 3) {
		t.Errorf("Subtract: expected (3,3,3), got %v", got)
	}
	if got := a.Multiply(2); got != NewVec3(2, 4, 6) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); got != NewVec3(4, 10, 18) {
		t.Errorf("MultiplyVec: expected (4,10,18), got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	if got := a.Negate(); got != NewVec3(-1, -2, -3) {
		t.Errorf("Negate: expected (-1,-2,-3), got %v", got)
	}
}

func TestVec3CrossProduct(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("x cross y: expected (0,0,1), got %v", got)
	}
	if got := y.Cross(x); got != NewVec3(0, 0, -1) {
		t.Errorf("y cross x: expected (0,0,-1), got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1.0) > 1e-12 {
		t.Errorf("Expected unit length, got %v", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6,0.8,0), got %v", v)
	}

	// The zero vector has no direction; Normalize must not produce NaN
	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 8)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at 0: expected %v, got %v", a, got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at 1: expected %v, got %v", b, got)
	}
	if got := a.Lerp(b, 0.5); got != NewVec3(1, 2, 4) {
		t.Errorf("Lerp at 0.5: expected (1,2,4), got %v", got)
	}
}

func TestVec3Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if v != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0,0.5,1), got %v", v)
	}
}

func TestVec3Component(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, want := range []float64{1, 2, 3} {
		if got := v.Component(axis); got != want {
			t.Errorf("Component(%d): expected %v, got %v", axis, want, got)
		}
	}
}
