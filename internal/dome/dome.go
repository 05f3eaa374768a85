// Package dome renders a celestial dome behind a host 3D view: a starfield,
// an optional galaxy panorama and a procedural sun, all locked at optical
// infinity and fading with a simulated day/night cycle.
//
// The dome implements layer.Layer. Everything below the layer boundary
// (camera alignment, twilight math, star generation, sun shading) works on
// plain data and carries no GL dependency, so it tests without a context.
package dome

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/geoql/maplibre-gl-starfield/internal/layer"
	"github.com/geoql/maplibre-gl-starfield/internal/logger"
)

// Dome is the celestial dome layer. Construct with New, hand to a host
// renderer, mutate through the Set* methods. Not safe for concurrent use;
// the host guarantees render calls never interleave with mutation.
type Dome struct {
	opts  Options
	state *state
	stars []starPoint

	host layer.Host

	starRend   *starRenderer
	galaxyRend *galaxyRenderer
	sunRend    *sunRenderer
}

// New creates a dome with the given options. No GL work happens until OnAdd;
// the star set is generated here and never again.
func New(opts Options) *Dome {
	if opts.StarCount < 0 {
		opts.StarCount = 0
	}
	return &Dome{
		opts:  opts,
		state: newState(opts),
		stars: generateStars(opts.StarCount, opts.StarSize),
	}
}

// OnAdd compiles the layer programs and uploads static geometry. Requires a
// current GL context. Kicks off the asynchronous galaxy fetch when a
// panorama URL was configured.
func (d *Dome) OnAdd(host layer.Host) error {
	d.host = host

	var err error
	d.starRend, err = newStarRenderer(d.stars)
	if err != nil {
		d.OnRemove()
		return fmt.Errorf("creating star renderer: %w", err)
	}

	d.sunRend, err = newSunRenderer()
	if err != nil {
		d.OnRemove()
		return fmt.Errorf("creating sun renderer: %w", err)
	}

	if d.opts.GalaxyTextureURL != "" {
		d.galaxyRend, err = newGalaxyRenderer()
		if err != nil {
			d.OnRemove()
			return fmt.Errorf("creating galaxy renderer: %w", err)
		}
		d.galaxyRend.fetch(d.opts.GalaxyTextureURL, d.requestRepaint)
	}

	logger.Info("dome layer added",
		zap.String("id", d.opts.ID),
		zap.Int("stars", len(d.stars)),
		zap.Bool("sun", d.state.sun.enabled),
		zap.Bool("galaxy", d.galaxyRend != nil))

	return nil
}

// Render draws the dome with a translation-stripped camera derived from the
// host's matrices. Layers draw back to front: galaxy, stars, sun.
func (d *Dome) Render(frame layer.Frame) {
	cam, ok := alignCamera(frame.Proj, frame.MVP)
	if !ok {
		// A real projection always inverts; skip this frame, retry next.
		logger.Debug("singular projection, skipping dome frame")
		return
	}

	if d.galaxyRend != nil {
		d.galaxyRend.poll()
	}

	// Dome fragments sit at depth 1.0; LEQUAL lets them pass against the
	// cleared depth without writing over scene geometry.
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)
	defer func() {
		gl.DepthMask(true)
		gl.DepthFunc(gl.LESS)
	}()

	fade := d.state.u.fade

	if d.galaxyRend != nil {
		gl.Disable(gl.BLEND)
		d.galaxyRend.render(cam.vp, d.state.galaxyBrightness, fade)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	d.starRend.render(cam.vp, d.state.starColor, fade)

	// Additive-style blend: the sun's alpha is its brightness
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	d.sunRend.render(cam.vp, d.state)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// OnRemove releases every GPU resource the dome created. Idempotent, and
// safe to call when OnAdd never ran or failed halfway.
func (d *Dome) OnRemove() {
	if d.starRend != nil {
		d.starRend.destroy()
		d.starRend = nil
	}
	if d.galaxyRend != nil {
		d.galaxyRend.destroy()
		d.galaxyRend = nil
	}
	if d.sunRend != nil {
		d.sunRend.destroy()
		d.sunRend = nil
	}
	d.host = nil
}

// SetSunPosition moves the sun. Azimuth is interpreted mod 360, altitude is
// clamped to [-90, 90]. Direction, angular radius and fade recompute
// immediately; no scene rebuild happens.
func (d *Dome) SetSunPosition(azimuthDeg, altitudeDeg float64) {
	d.state.setSunPosition(azimuthDeg, altitudeDeg)
	d.requestRepaint()
}

// SetSunEnabled toggles the sun. Disabling it also disables the day/night
// effect: the fade pins to 1.0 regardless of altitude.
func (d *Dome) SetSunEnabled(enabled bool) {
	d.state.setSunEnabled(enabled)
	d.requestRepaint()
}

// SetSunIntensity sets the sun brightness multiplier (negative clamps to 0).
func (d *Dome) SetSunIntensity(v float64) {
	d.state.setSunIntensity(v)
	d.requestRepaint()
}

// SetSunSize sets the angular-size parameter (100 ≈ 2 degree radius).
func (d *Dome) SetSunSize(v float64) {
	d.state.setSunSize(v)
	d.requestRepaint()
}

// Fade returns the current star/galaxy visibility multiplier in [0, 1].
func (d *Dome) Fade() float64 {
	return d.state.u.fade
}

// GalaxyReady reports whether the panorama texture has loaded.
func (d *Dome) GalaxyReady() bool {
	return d.galaxyRend != nil && d.galaxyRend.ready()
}

func (d *Dome) requestRepaint() {
	if d.host != nil {
		d.host.RequestRepaint()
	}
}
