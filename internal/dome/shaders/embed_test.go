package shaders

import (
	"strings"
	"testing"
)

func TestComposedProgramsHaveSingleVersion(t *testing.T) {
	sources := map[string]string{
		"star.vert":   StarVertexShader,
		"star.frag":   StarFragmentShader,
		"dome.vert":   DomeVertexShader,
		"galaxy.frag": GalaxyFragmentShader,
		"sun.frag":    SunFragmentShader,
	}
	for name, src := range sources {
		if !strings.HasPrefix(src, "#version 410 core\n") {
			t.Errorf("%s: missing version header", name)
		}
		if n := strings.Count(src, "#version"); n != 1 {
			t.Errorf("%s: expected exactly one #version, got %d", name, n)
		}
		if !strings.Contains(src, "void main()") {
			t.Errorf("%s: no main entry point", name)
		}
	}
}

func TestSunProgramContainsNoiseLibrary(t *testing.T) {
	for _, fn := range []string{"float snoise(vec3", "float fbm(vec3"} {
		if !strings.Contains(SunFragmentShader, fn) {
			t.Errorf("sun program missing %q", fn)
		}
	}
	// The noise library must appear before its first use
	def := strings.Index(SunFragmentShader, "float fbm(vec3")
	use := strings.Index(SunFragmentShader, "float warp = fbm(")
	if def < 0 || use < 0 || def > use {
		t.Error("fbm definition must precede its use in the composed source")
	}
}
