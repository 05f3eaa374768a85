package dome

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/geoql/maplibre-gl-starfield/internal/dome/shaders"
	"github.com/geoql/maplibre-gl-starfield/internal/engine/shader"
	"github.com/geoql/maplibre-gl-starfield/pkg/math"
)

// starRenderer draws the star set as round point sprites on the far plane.
type starRenderer struct {
	program uint32

	locVP    int32
	locColor int32
	locFade  int32

	vao   uint32
	vbo   uint32
	count int32
}

// newStarRenderer compiles the star program and uploads the generated star
// set. The vertex layout interleaves position, size and opacity.
func newStarRenderer(stars []starPoint) (*starRenderer, error) {
	sr := &starRenderer{}

	program, err := shader.CompileProgram(shaders.StarVertexShader, shaders.StarFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("star shader: %w", err)
	}
	sr.program = program

	sr.locVP = shader.GetUniform(program, "uVP")
	sr.locColor = shader.GetUniform(program, "uColor")
	sr.locFade = shader.GetUniform(program, "uFade")

	sr.count = int32(len(stars))
	if sr.count == 0 {
		return sr, nil
	}

	// pos(3) + size(1) + opacity(1)
	verts := make([]float32, 0, len(stars)*5)
	for _, s := range stars {
		verts = append(verts, s.pos[0], s.pos[1], s.pos[2], s.size, s.opacity)
	}

	gl.GenVertexArrays(1, &sr.vao)
	gl.BindVertexArray(sr.vao)

	gl.GenBuffers(1, &sr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, sr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	stride := int32(5 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 4*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return sr, nil
}

// render draws the stars with the aligned view-projection. fade scales every
// star's opacity; at 0 (full day) the draw is skipped outright.
func (sr *starRenderer) render(vp math.Mat4, color [3]float32, fade float64) {
	if sr.count == 0 || fade <= 0 {
		return
	}

	gl.UseProgram(sr.program)
	gl.UniformMatrix4fv(sr.locVP, 1, false, vp.Ptr())
	gl.Uniform3f(sr.locColor, color[0], color[1], color[2])
	gl.Uniform1f(sr.locFade, float32(fade))

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.BindVertexArray(sr.vao)
	gl.DrawArrays(gl.POINTS, 0, sr.count)
	gl.BindVertexArray(0)
}

// destroy releases GL resources. Safe to call repeatedly.
func (sr *starRenderer) destroy() {
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
