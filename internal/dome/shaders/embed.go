// Package shaders provides the embedded GLSL sources for the dome layers.
// Programs are assembled by plain string composition: a common version
// header, plus the shared noise library for bodies that sample it. There is
// no runtime include resolution.
package shaders

import _ "embed"

const header = "#version 410 core\n"

//go:embed noise.glsl
var noiseLib string

//go:embed dome.vert
var domeVert string

//go:embed star.vert
var starVert string

//go:embed star.frag
var starFrag string

//go:embed galaxy.frag
var galaxyFrag string

//go:embed sun.frag
var sunFrag string

var (
	// StarVertexShader and StarFragmentShader render the star point sprites.
	StarVertexShader   = header + starVert
	StarFragmentShader = header + starFrag

	// DomeVertexShader is the shared vertex stage for the cube-projected
	// full-dome layers (galaxy panorama, sun surface).
	DomeVertexShader = header + domeVert

	// GalaxyFragmentShader samples the equirectangular panorama.
	GalaxyFragmentShader = header + galaxyFrag

	// SunFragmentShader is the procedural sun program with the shared noise
	// library spliced in ahead of the body.
	SunFragmentShader = header + noiseLib + sunFrag
)
