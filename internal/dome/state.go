package dome

import (
	"github.com/geoql/maplibre-gl-starfield/pkg/celestial"
	"github.com/geoql/maplibre-gl-starfield/pkg/math"
)

// Options configures a Dome at construction time.
type Options struct {
	ID               string
	StarCount        int
	StarSize         float64
	StarColor        [3]float32
	GalaxyTextureURL string
	GalaxyBrightness float64
	SunEnabled       bool
	SunAzimuth       float64
	SunAltitude      float64
	SunSize          float64
	SunColor         [3]float32
	SunIntensity     float64
	AutoFadeStars    bool
}

// DefaultOptions returns the documented defaults: 4000 white stars, no
// galaxy panorama, sun disabled at azimuth 180 / altitude 45 with a warm
// amber color, auto-fade on.
func DefaultOptions() Options {
	return Options{
		ID:               "starfield",
		StarCount:        4000,
		StarSize:         2.0,
		StarColor:        [3]float32{1, 1, 1},
		GalaxyBrightness: 0.35,
		SunEnabled:       false,
		SunAzimuth:       180,
		SunAltitude:      45,
		SunSize:          100,
		SunColor:         [3]float32{1, 0.95, 0.85},
		SunIntensity:     1.5,
		AutoFadeStars:    true,
	}
}

// sunState is the mutable sun configuration. It is only changed through the
// Dome's update methods.
type sunState struct {
	azimuthDeg  float64
	altitudeDeg float64
	sizeParam   float64
	color       [3]float32
	intensity   float64
	enabled     bool
	autoFade    bool
}

// uniforms is the per-frame uniform state pushed to the GPU programs. Every
// derived value here is recomputed eagerly on mutation, never during Render.
type uniforms struct {
	sunDir       math.Vec3
	sunCosRadius float64
	fade         float64
}

// state couples the sun configuration with its derived uniform values.
type state struct {
	sun              sunState
	u                uniforms
	starColor        [3]float32
	galaxyBrightness float64
}

func newState(opts Options) *state {
	s := &state{
		sun: sunState{
			azimuthDeg:  opts.SunAzimuth,
			altitudeDeg: clampAltitude(opts.SunAltitude),
			sizeParam:   opts.SunSize,
			color:       opts.SunColor,
			intensity:   opts.SunIntensity,
			enabled:     opts.SunEnabled,
			autoFade:    opts.AutoFadeStars,
		},
		starColor:        opts.StarColor,
		galaxyBrightness: opts.GalaxyBrightness,
	}
	s.recompute()
	return s
}

// recompute refreshes all derived uniform values from the sun state.
func (s *state) recompute() {
	s.u.sunDir = celestial.Direction(s.sun.azimuthDeg, s.sun.altitudeDeg)
	s.u.sunCosRadius = celestial.AngularSizeCos(s.sun.sizeParam)

	// Disabling the sun disables the day/night effect entirely: the sky
	// stays fully visible. Same when auto-fade is off.
	if !s.sun.enabled || !s.sun.autoFade {
		s.u.fade = 1.0
		return
	}
	s.u.fade = celestial.TwilightFade(s.sun.altitudeDeg)
}

func (s *state) setSunPosition(azimuthDeg, altitudeDeg float64) {
	s.sun.azimuthDeg = azimuthDeg
	s.sun.altitudeDeg = clampAltitude(altitudeDeg)
	s.recompute()
}

func (s *state) setSunEnabled(enabled bool) {
	s.sun.enabled = enabled
	s.recompute()
}

func (s *state) setSunIntensity(v float64) {
	if v < 0 {
		v = 0
	}
	s.sun.intensity = v
	s.recompute()
}

func (s *state) setSunSize(v float64) {
	if v < 0 {
		v = 0
	}
	s.sun.sizeParam = v
	s.recompute()
}

func clampAltitude(alt float64) float64 {
	if alt > 90 {
		return 90
	}
	if alt < -90 {
		return -90
	}
	return alt
}
