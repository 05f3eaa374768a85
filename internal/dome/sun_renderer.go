package dome

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/geoql/maplibre-gl-starfield/internal/dome/shaders"
	"github.com/geoql/maplibre-gl-starfield/internal/engine/shader"
	"github.com/geoql/maplibre-gl-starfield/pkg/math"
)

// sunRenderer draws the procedural sun surface and corona. All the actual
// work happens per-pixel in the fragment shader; this side only pushes the
// uniform state each frame.
type sunRenderer struct {
	program uint32

	locVP        int32
	locSunDir    int32
	locCosRadius int32
	locSunColor  int32
	locIntensity int32

	vao uint32
	vbo uint32
}

func newSunRenderer() (*sunRenderer, error) {
	sr := &sunRenderer{}

	program, err := shader.CompileProgram(shaders.DomeVertexShader, shaders.SunFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("sun shader: %w", err)
	}
	sr.program = program

	sr.locVP = shader.GetUniform(program, "uVP")
	sr.locSunDir = shader.GetUniform(program, "uSunDir")
	sr.locCosRadius = shader.GetUniform(program, "uCosRadius")
	sr.locSunColor = shader.GetUniform(program, "uSunColor")
	sr.locIntensity = shader.GetUniform(program, "uIntensity")

	sr.vao, sr.vbo = newDomeCube()

	return sr, nil
}

// render pushes the sun uniforms and draws the dome cube. The fragment
// shader discards everything beyond 15 sun radii, so the per-frame cost is
// bounded by the glow's screen coverage, not the cube's.
func (sr *sunRenderer) render(vp math.Mat4, s *state) {
	if !s.sun.enabled || s.sun.intensity <= 0 {
		return
	}

	gl.UseProgram(sr.program)
	gl.UniformMatrix4fv(sr.locVP, 1, false, vp.Ptr())
	gl.Uniform3f(sr.locSunDir, s.u.sunDir.X, s.u.sunDir.Y, s.u.sunDir.Z)
	gl.Uniform1f(sr.locCosRadius, float32(s.u.sunCosRadius))
	gl.Uniform3f(sr.locSunColor, s.sun.color[0], s.sun.color[1], s.sun.color[2])
	gl.Uniform1f(sr.locIntensity, float32(s.sun.intensity))

	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)
}

// destroy releases GL resources. Safe to call repeatedly.
func (sr *sunRenderer) destroy() {
	if sr.vao != 0 {
		gl.DeleteVertexArrays(1, &sr.vao)
		sr.vao = 0
	}
	if sr.vbo != 0 {
		gl.DeleteBuffers(1, &sr.vbo)
		sr.vbo = 0
	}
	if sr.program != 0 {
		gl.DeleteProgram(sr.program)
		sr.program = 0
	}
}
