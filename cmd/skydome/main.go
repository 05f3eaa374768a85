// Skydome is the demo viewer: a wireframe globe under the celestial dome.
// Drag to orbit, scroll to zoom, right-drag to pan. The sky never moves with
// the camera position, only with its orientation.
//
//	s          toggle the sun
//	up/down    sun altitude (sweeps through the twilight band)
//	left/right sun azimuth
//	f12        screenshot to ./screenshots
//	esc        quit
package main

import (
	gomath "math"
	"os"
	"sync/atomic"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/geoql/maplibre-gl-starfield/internal/config"
	"github.com/geoql/maplibre-gl-starfield/internal/dome"
	"github.com/geoql/maplibre-gl-starfield/internal/engine/camera"
	"github.com/geoql/maplibre-gl-starfield/internal/engine/capture"
	"github.com/geoql/maplibre-gl-starfield/internal/engine/window"
	"github.com/geoql/maplibre-gl-starfield/internal/layer"
	"github.com/geoql/maplibre-gl-starfield/internal/logger"
	"github.com/geoql/maplibre-gl-starfield/pkg/math"
)

// app is the layer host. The dome calls RequestRepaint from its fetch
// goroutine, so the flag is atomic.
type app struct {
	dirty atomic.Bool
}

func (a *app) RequestRepaint() { a.dirty.Store(true) }

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      "Skydome",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	if err := gl.Init(); err != nil {
		return err
	}
	logger.Info("OpenGL ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))))

	globe, err := newGlobeRenderer(1.0, 12, 24)
	if err != nil {
		return err
	}
	defer globe.destroy()

	host := &app{}
	sky := dome.New(dome.Options{
		ID:               "starfield",
		StarCount:        cfg.Dome.StarCount,
		StarSize:         cfg.Dome.StarSize,
		StarColor:        [3]float32{cfg.Dome.StarColor.R, cfg.Dome.StarColor.G, cfg.Dome.StarColor.B},
		GalaxyTextureURL: cfg.Dome.GalaxyTextureURL,
		GalaxyBrightness: cfg.Dome.GalaxyBrightness,
		SunEnabled:       cfg.Dome.SunEnabled,
		SunAzimuth:       cfg.Dome.SunAzimuth,
		SunAltitude:      cfg.Dome.SunAltitude,
		SunSize:          cfg.Dome.SunSize,
		SunColor:         [3]float32{cfg.Dome.SunColor.R, cfg.Dome.SunColor.G, cfg.Dome.SunColor.B},
		SunIntensity:     cfg.Dome.SunIntensity,
		AutoFadeStars:    cfg.Dome.AutoFade(),
	})
	if err := sky.OnAdd(host); err != nil {
		return err
	}
	defer sky.OnRemove()

	cam := camera.NewOrbitCamera()

	sunOn := cfg.Dome.SunEnabled
	sunAz := cfg.Dome.SunAzimuth
	sunAlt := cfg.Dome.SunAltitude

	host.dirty.Store(true)

	for {
		quit := false
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				quit = true

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_EXPOSED {
					host.RequestRepaint()
				}

			case *sdl.MouseMotionEvent:
				if e.State&sdl.ButtonLMask() != 0 {
					cam.HandleDrag(float32(e.XRel), float32(e.YRel))
					host.RequestRepaint()
				}
				if e.State&sdl.ButtonRMask() != 0 {
					cam.Pan(float32(-e.XRel), float32(e.YRel))
					host.RequestRepaint()
				}

			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float32(e.Y))
				host.RequestRepaint()

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					break
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					quit = true
				case sdl.K_s:
					sunOn = !sunOn
					sky.SetSunEnabled(sunOn)
					logger.Info("sun toggled", zap.Bool("enabled", sunOn))
				case sdl.K_UP:
					sunAlt = gomath.Min(sunAlt+1.5, 90)
					sky.SetSunPosition(sunAz, sunAlt)
				case sdl.K_DOWN:
					sunAlt = gomath.Max(sunAlt-1.5, -90)
					sky.SetSunPosition(sunAz, sunAlt)
				case sdl.K_LEFT:
					sunAz -= 5
					sky.SetSunPosition(sunAz, sunAlt)
				case sdl.K_RIGHT:
					sunAz += 5
					sky.SetSunPosition(sunAz, sunAlt)
				case sdl.K_F12:
					if err := screenshot(win); err != nil {
						logger.Warn("screenshot failed", zap.Error(err))
					}
				}
			}
		}
		if quit {
			break
		}

		if !host.dirty.Swap(false) {
			sdl.Delay(10)
			continue
		}

		width, height := win.DrawableSize()
		if height == 0 {
			height = 1
		}
		gl.Viewport(0, 0, width, height)
		gl.ClearColor(0.01, 0.01, 0.02, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		gl.Enable(gl.DEPTH_TEST)

		proj := math.Perspective(
			gomath.Pi/4,
			float32(width)/float32(height),
			0.1, 100,
		)
		view := cam.ViewMatrix()
		mvp := proj.Mul(view)

		// Opaque geometry first; the dome fills in behind it.
		globe.render(mvp, [3]float32{0.2, 0.55, 0.35})

		sky.Render(layer.Frame{
			Proj:   proj,
			MVP:    mvp,
			Width:  width,
			Height: height,
		})

		win.Swap()
	}

	return nil
}

func screenshot(win *window.Window) error {
	width, height := win.DrawableSize()
	pixels := make([]byte, int(width)*int(height)*4)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := capture.Screenshot("screenshots", "skydome", pixels, int(width), int(height))
	if err != nil {
		return err
	}
	logger.Info("screenshot saved", zap.String("path", path))
	return nil
}
