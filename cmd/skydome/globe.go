package main

import (
	"fmt"
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/geoql/maplibre-gl-starfield/internal/engine/shader"
	"github.com/geoql/maplibre-gl-starfield/pkg/math"
)

// The globe exists so the dome has something to sit behind: an opaque,
// depth-writing wireframe sphere at the world origin. Orbiting and panning
// the camera moves the globe on screen while the sky stays put.

const globeVertexShader = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 uMVP;

void main() {
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const globeFragmentShader = `#version 410 core
out vec4 fragColor;

uniform vec3 uColor;

void main() {
    fragColor = vec4(uColor, 1.0);
}
`

type globeRenderer struct {
	program uint32

	locMVP   int32
	locColor int32

	vao   uint32
	vbo   uint32
	count int32
}

// newGlobeRenderer builds a lat/long wireframe sphere of the given radius.
func newGlobeRenderer(radius float32, rings, segments int) (*globeRenderer, error) {
	gr := &globeRenderer{}

	program, err := shader.CompileProgram(globeVertexShader, globeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("globe shader: %w", err)
	}
	gr.program = program

	gr.locMVP = shader.GetUniform(program, "uMVP")
	gr.locColor = shader.GetUniform(program, "uColor")

	verts := globeWireVerts(radius, rings, segments)
	gr.count = int32(len(verts) / 3)

	gl.GenVertexArrays(1, &gr.vao)
	gl.BindVertexArray(gr.vao)

	gl.GenBuffers(1, &gr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return gr, nil
}

// globeWireVerts emits GL_LINES segments for latitude rings and meridians.
func globeWireVerts(radius float32, rings, segments int) []float32 {
	var verts []float32

	point := func(latDeg, lonDeg float64) (float32, float32, float32) {
		lat := latDeg * gomath.Pi / 180
		lon := lonDeg * gomath.Pi / 180
		return radius * float32(gomath.Cos(lat)*gomath.Sin(lon)),
			radius * float32(gomath.Sin(lat)),
			radius * float32(gomath.Cos(lat)*gomath.Cos(lon))
	}

	line := func(x0, y0, z0, x1, y1, z1 float32) {
		verts = append(verts, x0, y0, z0, x1, y1, z1)
	}

	// Latitude rings, poles excluded
	for i := 1; i < rings; i++ {
		lat := -90 + 180*float64(i)/float64(rings)
		for j := 0; j < segments; j++ {
			lon0 := 360 * float64(j) / float64(segments)
			lon1 := 360 * float64(j+1) / float64(segments)
			x0, y0, z0 := point(lat, lon0)
			x1, y1, z1 := point(lat, lon1)
			line(x0, y0, z0, x1, y1, z1)
		}
	}

	// Meridians, pole to pole
	for j := 0; j < segments; j++ {
		lon := 360 * float64(j) / float64(segments)
		for i := 0; i < rings; i++ {
			lat0 := -90 + 180*float64(i)/float64(rings)
			lat1 := -90 + 180*float64(i+1)/float64(rings)
			x0, y0, z0 := point(lat0, lon)
			x1, y1, z1 := point(lat1, lon)
			line(x0, y0, z0, x1, y1, z1)
		}
	}

	return verts
}

func (gr *globeRenderer) render(mvp math.Mat4, color [3]float32) {
	gl.UseProgram(gr.program)
	gl.UniformMatrix4fv(gr.locMVP, 1, false, mvp.Ptr())
	gl.Uniform3f(gr.locColor, color[0], color[1], color[2])

	gl.BindVertexArray(gr.vao)
	gl.DrawArrays(gl.LINES, 0, gr.count)
	gl.BindVertexArray(0)
}

func (gr *globeRenderer) destroy() {
	if gr.vao != 0 {
		gl.DeleteVertexArrays(1, &gr.vao)
		gr.vao = 0
	}
	if gr.vbo != 0 {
		gl.DeleteBuffers(1, &gr.vbo)
		gr.vbo = 0
	}
	if gr.program != 0 {
		gl.DeleteProgram(gr.program)
		gr.program = 0
	}
}
