package dome

import (
	"math"
	"math/rand/v2"
)

// starPoint is one star on the unit sphere. Points are generated once and
// never change; regenerating requires rebuilding the whole set.
type starPoint struct {
	pos     [3]float32 // unit direction
	size    float32
	opacity float32
}

// starSeed fixes the star layout so the same sky comes back every session.
const starSeed = 0x5eedc0de

// generateStars distributes count stars uniformly over the unit sphere.
// Directions come from inverse-CDF sampling (phi = acos(2u-1)); sampling
// theta and phi independently would cluster stars at the poles. Size spreads
// around baseSize by [0.4, 1.4); opacity lands in [0.15, 1.0).
func generateStars(count int, baseSize float64) []starPoint {
	if count <= 0 {
		return nil
	}

	rng := rand.New(rand.NewPCG(starSeed, starSeed>>16))
	stars := make([]starPoint, count)

	for i := range stars {
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)

		sinPhi := math.Sin(phi)
		stars[i] = starPoint{
			pos: [3]float32{
				float32(sinPhi * math.Cos(theta)),
				float32(math.Cos(phi)),
				float32(sinPhi * math.Sin(theta)),
			},
			size:    float32(baseSize * (0.4 + rng.Float64())),
			opacity: float32(0.15 + 0.85*rng.Float64()),
		}
	}

	return stars
}
