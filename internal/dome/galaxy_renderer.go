package dome

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/geoql/maplibre-gl-starfield/internal/dome/shaders"
	"github.com/geoql/maplibre-gl-starfield/internal/engine/shader"
	"github.com/geoql/maplibre-gl-starfield/internal/engine/texture"
	"github.com/geoql/maplibre-gl-starfield/internal/logger"
	"github.com/geoql/maplibre-gl-starfield/pkg/math"
)

// galaxyRenderer draws the equirectangular panorama on the dome cube. The
// texture arrives asynchronously; until it lands the layer draws nothing.
type galaxyRenderer struct {
	program uint32

	locVP         int32
	locPanorama   int32
	locBrightness int32
	locFade       int32

	vao uint32
	vbo uint32
	tex uint32

	// pending delivers the decoded panorama from the fetch goroutine to the
	// render thread, which owns the GL upload. Buffered so the goroutine
	// never blocks; a failed fetch simply never sends.
	pending chan *image.RGBA
}

func newGalaxyRenderer() (*galaxyRenderer, error) {
	gr := &galaxyRenderer{
		pending: make(chan *image.RGBA, 1),
	}

	program, err := shader.CompileProgram(shaders.DomeVertexShader, shaders.GalaxyFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("galaxy shader: %w", err)
	}
	gr.program = program

	gr.locVP = shader.GetUniform(program, "uVP")
	gr.locPanorama = shader.GetUniform(program, "uPanorama")
	gr.locBrightness = shader.GetUniform(program, "uBrightness")
	gr.locFade = shader.GetUniform(program, "uFade")

	gr.vao, gr.vbo = newDomeCube()

	return gr, nil
}

// fetch loads and decodes the panorama off the render thread, then asks the
// host for a repaint so the upload happens promptly. Failure leaves the
// galaxy layer absent for the dome's lifetime; there is no retry.
func (gr *galaxyRenderer) fetch(url string, repaint func()) {
	go func() {
		data, err := readTextureSource(url)
		if err != nil {
			logger.Warn("galaxy panorama fetch failed", zap.String("url", url), zap.Error(err))
			return
		}

		img, err := texture.DecodeRGBA(data)
		if err != nil {
			logger.Warn("galaxy panorama decode failed", zap.String("url", url), zap.Error(err))
			return
		}

		gr.pending <- img
		if repaint != nil {
			repaint()
		}
	}()
}

// readTextureSource fetches by HTTP(S) URL or reads a local file path.
func readTextureSource(url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Get(url)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		const maxPanoramaBytes = 64 << 20
		return io.ReadAll(io.LimitReader(resp.Body, maxPanoramaBytes))
	}
	return os.ReadFile(url)
}

// poll uploads a fetched panorama if one is waiting. Called once per frame
// on the render thread.
func (gr *galaxyRenderer) poll() {
	select {
	case img := <-gr.pending:
		gr.tex = texture.Upload(img)
		logger.Info("galaxy panorama loaded",
			zap.Int("width", img.Bounds().Dx()),
			zap.Int("height", img.Bounds().Dy()))
	default:
	}
}

// ready reports whether the panorama texture has been uploaded.
func (gr *galaxyRenderer) ready() bool {
	return gr.tex != 0
}

// render draws the panorama. Back-most layer: blending off, the panorama
// replaces the clear color entirely.
func (gr *galaxyRenderer) render(vp math.Mat4, brightness, fade float64) {
	if !gr.ready() {
		return
	}

	gl.UseProgram(gr.program)
	gl.UniformMatrix4fv(gr.locVP, 1, false, vp.Ptr())
	gl.Uniform1f(gr.locBrightness, float32(brightness))
	gl.Uniform1f(gr.locFade, float32(fade))

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, gr.tex)
	gl.Uniform1i(gr.locPanorama, 0)

	gl.BindVertexArray(gr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)
}

// destroy releases GL resources. Safe to call repeatedly.
func (gr *galaxyRenderer) destroy() {
	if gr.vao != 0 {
		gl.DeleteVertexArrays(1, &gr.vao)
		gr.vao = 0
	}
	if gr.vbo != 0 {
		gl.DeleteBuffers(1, &gr.vbo)
		gr.vbo = 0
	}
	if gr.tex != 0 {
		gl.DeleteTextures(1, &gr.tex)
		gr.tex = 0
	}
	if gr.program != 0 {
		gl.DeleteProgram(gr.program)
		gr.program = 0
	}
}
