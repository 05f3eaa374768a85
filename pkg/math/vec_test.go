package math

import "testing"

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if abs(v.Length()-1) > 1e-6 {
		t.Errorf("normalized length: got %f, want 1", v.Length())
	}
	if abs(v.X-0.6) > 1e-6 || abs(v.Y-0.8) > 1e-6 {
		t.Errorf("normalize: got %v, want (0.6, 0.8, 0)", v)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	v := Vec3{}.Normalize()
	if v != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", v)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y: got %v, want (0, 0, 1)", z)
	}
}

func TestVec3Dot(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}
	if got := a.Dot(b); got != 12 {
		t.Errorf("dot: got %f, want 12", got)
	}
}
