package dome

import (
	gomath "math"

	"github.com/geoql/maplibre-gl-starfield/pkg/math"
	"github.com/geoql/maplibre-gl-starfield/pkg/noise"
)

// sunParams is everything the sun surface shading needs for one evaluation.
type sunParams struct {
	dir       math.Vec3 // unit sun direction
	cosRadius float64   // cosine of the angular radius
	color     [3]float64
	intensity float64
}

// Shading constants. The GLSL fragment shader in shaders/sun.frag carries
// the same values; change them in both places.
const (
	sunMaxGlowRadii = 15.0  // reject fragments beyond this many radii
	sunDiscEdge     = 1.05  // disc + near-limb shading applies below this
	sunRayInner     = 0.85  // coronal rays start here
	sunRayOuter     = 12.0  // and fade out by here
	sunMinBright    = 0.004 // below this the fragment is discarded
)

// shadeSun computes the RGBA contribution of the procedural sun for a
// fragment looking along dir (unit vector on the sky sphere). ok is false
// when the fragment contributes nothing and should be discarded. This is the
// reference implementation of the GPU path; the fragment shader mirrors it
// step for step.
func shadeSun(dir math.Vec3, p sunParams) (rgba [4]float64, ok bool) {
	cosAngle := clampF(float64(dir.Dot(p.dir)), -1, 1)
	angle := gomath.Acos(cosAngle)

	radius := gomath.Acos(clampF(p.cosRadius, -1, 1))
	if radius < 1e-6 {
		radius = 1e-6
	}

	// r is the angular distance in units of the sun's radius: 1 at the disc
	// edge, >1 in the corona.
	r := angle / radius
	if r > sunMaxGlowRadii {
		return rgba, false
	}

	// Local tangent frame around the sun direction. The up reference flips
	// to +X when the sun is near the zenith/nadir to avoid a degenerate
	// cross product. Noise is sampled in this frame so the surface pattern
	// does not spin as azimuth/altitude change.
	ref := math.Vec3{X: 0, Y: 1, Z: 0}
	if gomath.Abs(float64(p.dir.Y)) > 0.99 {
		ref = math.Vec3{X: 1, Y: 0, Z: 0}
	}
	t1 := ref.Cross(p.dir).Normalize()
	t2 := p.dir.Cross(t1)

	// Planar coordinates in radius units
	u := float64(dir.Dot(t1)) / radius
	v := float64(dir.Dot(t2)) / radius

	var disc float64
	if r < sunDiscEdge {
		// Domain warp: offset the sample position with a separate noise
		// read so the fbm bands never line up into a visible grid.
		warp := noise.FBM3(u*3.0+17.0, v*3.0-43.0, 2.3)

		n1 := noise.FBM3(u*4.0+warp*0.8, v*4.0+warp*0.8, 1.7)
		n2 := noise.FBM3(u*12.0+warp*0.5, v*12.0-warp*0.5, 5.3)
		n3 := noise.FBM3(u*28.0-warp*0.3, v*28.0+warp*0.3, 9.1)

		surface := 0.75 + 0.25*(0.55*n1+0.30*n2+0.15*n3)

		// Sunspots: darken where the low-frequency field is low
		spot := 0.5 * (n1 + 1.0)
		surface *= 1.0 - 0.65*gomath.Pow(1.0-spot, 2.5)

		// Limb brightening toward the edge, then a smooth falloff to zero
		rim := 1.0 + 0.35*r*r
		edge := 1.0 - smoothstepF(0.98, sunDiscEdge, r)

		disc = surface * rim * edge
	}

	// Corona: stacked exponential shells at different radii and decay rates
	corona := 0.60*gomath.Exp(-gomath.Pow(gomath.Max(r-1.0, 0)/0.12, 2.0)) +
		0.30*gomath.Exp(-gomath.Pow(gomath.Max(r-0.8, 0)/1.8, 2.0)) +
		0.12*gomath.Exp(-gomath.Pow(gomath.Max(r-1.0, 0)/5.0, 1.2))

	// Coronal rays: 1D angular noise at three rising frequencies, thinner
	// and weaker each octave, fading radially away from the disc.
	var rays float64
	if r > sunRayInner && r < sunRayOuter {
		proj := dir.Sub(p.dir.Scale(float32(cosAngle)))
		ang := gomath.Atan2(float64(proj.Dot(t2)), float64(proj.Dot(t1)))

		// Sampling on a circle keeps the pattern periodic in angle
		ca, sa := gomath.Cos(ang), gomath.Sin(ang)
		q1 := 0.5 + 0.5*noise.Noise3(ca*2.0, sa*2.0, 3.7)
		q2 := 0.5 + 0.5*noise.Noise3(ca*6.0, sa*6.0, 7.7)
		q3 := 0.5 + 0.5*noise.Noise3(ca*14.0, sa*14.0, 11.3)

		streak := 0.50*q1*q1 + 0.35*q2*q2*q2 + 0.15*gomath.Pow(q3, 5.0)
		rays = 0.35 * streak * gomath.Exp(-(r-sunRayInner)/3.0)
	}

	total := (disc + corona + rays) * p.intensity
	if total < sunMinBright {
		return rgba, false
	}

	// Warm gradient: brightness b maps to (b, b^2, b^4), so dim regions
	// shade toward deep orange while the core stays near-white, then the
	// configured sun color tints the result.
	b := clampF(total, 0, 1)
	rgba[0] = b * p.color[0]
	rgba[1] = b * b * p.color[1]
	rgba[2] = b * b * b * b * p.color[2]
	rgba[3] = b
	return rgba, true
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func smoothstepF(edge0, edge1, x float64) float64 {
	t := clampF((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
