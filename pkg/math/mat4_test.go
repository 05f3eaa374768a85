package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestNoTranslation(t *testing.T) {
	m := Translate(5, 10, 15).Mul(RotateY(0.7))
	stripped := m.NoTranslation()

	if stripped[12] != 0 || stripped[13] != 0 || stripped[14] != 0 {
		t.Errorf("NoTranslation left (%f, %f, %f)", stripped[12], stripped[13], stripped[14])
	}
	// Rotation block untouched
	for _, i := range []int{0, 1, 2, 4, 5, 6, 8, 9, 10} {
		if stripped[i] != m[i] {
			t.Errorf("NoTranslation changed rotation element %d", i)
		}
	}
}

func TestTranslation(t *testing.T) {
	m := Translate(7, -2, 3)
	tr := m.Translation()
	if tr.X != 7 || tr.Y != -2 || tr.Z != 3 {
		t.Errorf("Translation: got %v", tr)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformDirection(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 and [11] should be -1 for a perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestInverseRoundTrip(t *testing.T) {
	m := Translate(3, -7, 12).Mul(RotateX(0.4)).Mul(RotateY(1.2)).Mul(Scale(2, 2, 2))
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("expected invertible matrix")
	}

	result := m.Mul(inv)
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(result[i]-id[i]) > 1e-4 {
			t.Errorf("M * M^-1 element %d: got %f, want %f", i, result[i], id[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	m := Scale(1, 1, 0) // rank-deficient
	_, ok := m.Inverse()
	if ok {
		t.Error("singular matrix should report ok=false")
	}
}

func TestInversePerspective(t *testing.T) {
	p := Perspective(0.785398, 16.0/9.0, 0.1, 1000.0)
	inv, ok := p.Inverse()
	if !ok {
		t.Fatal("perspective projection should be invertible")
	}

	result := inv.Mul(p)
	id := Identity()
	for i := 0; i < 16; i++ {
		if abs(result[i]-id[i]) > 1e-3 {
			t.Errorf("P^-1 * P element %d: got %f, want %f", i, result[i], id[i])
		}
	}
}

func TestLookAt(t *testing.T) {
	m := LookAt(Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}
	// Camera at +Z looking at origin: view translation moves eye to origin
	if abs(m[14]+5) > 0.001 {
		t.Errorf("LookAt translation z: got %f, want -5", m[14])
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
