package dome

import (
	gomath "math"
	"testing"

	"github.com/geoql/maplibre-gl-starfield/pkg/math"
)

func TestAlignCameraStripsTranslation(t *testing.T) {
	proj := math.Perspective(gomath.Pi/4, 16.0/9.0, 0.1, 100)
	view := math.LookAt(
		math.Vec3{X: 30, Y: -12, Z: 55},
		math.Vec3{X: 30, Y: -12, Z: 0},
		math.Vec3{Y: 1},
	)
	mvp := proj.Mul(view)

	cam, ok := alignCamera(proj, mvp)
	if !ok {
		t.Fatal("alignCamera failed on a regular perspective projection")
	}

	tr := cam.view.Translation()
	if tr.X != 0 || tr.Y != 0 || tr.Z != 0 {
		t.Errorf("aligned view carries translation %+v, want zero", tr)
	}

	// The rotation block must survive untouched
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			i := col*4 + row
			if gomath.Abs(float64(cam.view[i]-view[i])) > 1e-4 {
				t.Errorf("view[%d] = %v, want %v", i, cam.view[i], view[i])
			}
		}
	}
}

func TestAlignCameraVP(t *testing.T) {
	proj := math.Perspective(gomath.Pi/3, 1.5, 0.1, 100)
	view := math.LookAt(
		math.Vec3{X: 1, Y: 2, Z: 3},
		math.Vec3{},
		math.Vec3{Y: 1},
	)

	cam, ok := alignCamera(proj, proj.Mul(view))
	if !ok {
		t.Fatal("alignCamera failed")
	}

	want := proj.Mul(cam.view)
	for i := range want {
		if gomath.Abs(float64(cam.vp[i]-want[i])) > 1e-5 {
			t.Fatalf("vp[%d] = %v, want %v", i, cam.vp[i], want[i])
		}
	}
}

// Panning the host camera must not move the dome: two MVPs that differ only
// in camera position produce the same aligned view-projection.
func TestAlignCameraPanInvariant(t *testing.T) {
	proj := math.Perspective(gomath.Pi/4, 1, 0.1, 100)

	at := func(eye math.Vec3) math.Mat4 {
		view := math.LookAt(eye, math.Vec3{X: eye.X, Y: eye.Y, Z: eye.Z - 1}, math.Vec3{Y: 1})
		return proj.Mul(view)
	}

	a, ok := alignCamera(proj, at(math.Vec3{Z: 5}))
	if !ok {
		t.Fatal("alignCamera failed")
	}
	b, ok := alignCamera(proj, at(math.Vec3{X: 400, Y: -80, Z: 5}))
	if !ok {
		t.Fatal("alignCamera failed")
	}

	for i := range a.vp {
		if gomath.Abs(float64(a.vp[i]-b.vp[i])) > 1e-3 {
			t.Fatalf("vp[%d] differs under pan: %v vs %v", i, a.vp[i], b.vp[i])
		}
	}
}

func TestAlignCameraSingularProjection(t *testing.T) {
	singular := math.Scale(1, 1, 0)
	if _, ok := alignCamera(singular, math.Identity()); ok {
		t.Error("alignCamera accepted a singular projection")
	}
}
