package dome

import (
	"math"
	"testing"
)

func TestNewStateDefaults(t *testing.T) {
	s := newState(DefaultOptions())

	if s.sun.enabled {
		t.Error("sun should start disabled")
	}
	if s.u.fade != 1.0 {
		t.Errorf("fade = %v, want 1.0 with sun disabled", s.u.fade)
	}
	if s.galaxyBrightness != 0.35 {
		t.Errorf("galaxyBrightness = %v, want 0.35", s.galaxyBrightness)
	}

	// azimuth 180 / altitude 45 points south (-Z) and up
	d := s.u.sunDir
	if math.Abs(float64(d.X)) > 1e-4 ||
		math.Abs(float64(d.Y)-math.Sqrt2/2) > 1e-4 ||
		math.Abs(float64(d.Z)+math.Sqrt2/2) > 1e-4 {
		t.Errorf("sun direction = %+v, want south at 45 degrees", d)
	}
}

func TestFadeTracksAltitude(t *testing.T) {
	opts := DefaultOptions()
	opts.SunEnabled = true
	s := newState(opts)

	s.setSunPosition(180, 10)
	if s.u.fade != 0 {
		t.Errorf("fade at altitude 10 = %v, want 0", s.u.fade)
	}

	s.setSunPosition(180, -30)
	if s.u.fade != 1 {
		t.Errorf("fade at altitude -30 = %v, want 1", s.u.fade)
	}

	s.setSunPosition(180, -9)
	if s.u.fade <= 0 || s.u.fade >= 1 {
		t.Errorf("fade at altitude -9 = %v, want strictly inside (0, 1)", s.u.fade)
	}
}

func TestDisabledSunPinsFade(t *testing.T) {
	opts := DefaultOptions()
	opts.SunEnabled = true
	s := newState(opts)

	s.setSunPosition(180, 45) // full day
	if s.u.fade != 0 {
		t.Fatalf("fade = %v, want 0 before disabling", s.u.fade)
	}

	s.setSunEnabled(false)
	if s.u.fade != 1 {
		t.Errorf("fade = %v, want 1 with sun disabled", s.u.fade)
	}

	s.setSunEnabled(true)
	if s.u.fade != 0 {
		t.Errorf("fade = %v, want 0 after re-enabling", s.u.fade)
	}
}

func TestAutoFadeOffPinsFade(t *testing.T) {
	opts := DefaultOptions()
	opts.SunEnabled = true
	opts.AutoFadeStars = false
	s := newState(opts)

	s.setSunPosition(180, 45)
	if s.u.fade != 1 {
		t.Errorf("fade = %v, want 1 with auto-fade off", s.u.fade)
	}
}

func TestAltitudeClamped(t *testing.T) {
	s := newState(DefaultOptions())

	s.setSunPosition(0, 200)
	if s.sun.altitudeDeg != 90 {
		t.Errorf("altitude = %v, want clamp to 90", s.sun.altitudeDeg)
	}

	s.setSunPosition(0, -200)
	if s.sun.altitudeDeg != -90 {
		t.Errorf("altitude = %v, want clamp to -90", s.sun.altitudeDeg)
	}
}

func TestNegativeValuesFloorToZero(t *testing.T) {
	s := newState(DefaultOptions())

	s.setSunIntensity(-3)
	if s.sun.intensity != 0 {
		t.Errorf("intensity = %v, want 0", s.sun.intensity)
	}

	s.setSunSize(-50)
	if s.sun.sizeParam != 0 {
		t.Errorf("sizeParam = %v, want 0", s.sun.sizeParam)
	}
}

func TestCosRadiusTracksSize(t *testing.T) {
	s := newState(DefaultOptions())

	small := s.u.sunCosRadius
	s.setSunSize(300)
	if s.u.sunCosRadius >= small {
		t.Errorf("cosRadius did not shrink when the sun grew: %v -> %v", small, s.u.sunCosRadius)
	}
}
