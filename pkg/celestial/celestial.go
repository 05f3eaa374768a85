// Package celestial converts sky coordinates and drives the day/night fade.
// Azimuth/altitude are the horizontal coordinates familiar from astronomy:
// azimuth 0 degrees is north (+Z), 90 is east (+X); altitude 0 is the
// horizon, 90 the zenith (+Y).
package celestial

import (
	gomath "math"

	"github.com/geoql/maplibre-gl-starfield/pkg/math"
)

// Direction converts azimuth/altitude in degrees to a unit direction vector.
// Unit length holds for all inputs since cos/sin of the same angle compose
// to length one.
func Direction(azimuthDeg, altitudeDeg float64) math.Vec3 {
	az := azimuthDeg * gomath.Pi / 180.0
	alt := altitudeDeg * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(alt) * gomath.Sin(az)),
		Y: float32(gomath.Sin(alt)),
		Z: float32(gomath.Cos(alt) * gomath.Cos(az)),
	}
}

// AngularSizeCos maps a UI-scale sun size parameter to the cosine of the
// corresponding angular radius. A parameter of 100 gives a 2 degree radius.
// Shaders compare dot(dir, sunDir) against this value directly, avoiding an
// acos for the coarse inside/outside test.
func AngularSizeCos(sizeParam float64) float64 {
	deg := sizeParam / 100.0 * 2.0
	return gomath.Cos(deg * gomath.Pi / 180.0)
}

// TwilightFade maps sun altitude in degrees to a star/galaxy visibility
// multiplier in [0, 1]: 0 at or above the horizon, 1 at or below -18 degrees
// (astronomical night), with a smoothstep ramp between. The smoothstep shape
// is deliberate; a linear ramp reads as an abrupt cut near the horizon.
func TwilightFade(altitudeDeg float64) float64 {
	if altitudeDeg >= 0 {
		return 0
	}
	if altitudeDeg <= -18 {
		return 1
	}
	t := -altitudeDeg / 18.0
	return t * t * (3 - 2*t)
}
