package dome

import (
	"math"
	"testing"
)

func TestGenerateStarsCount(t *testing.T) {
	if got := len(generateStars(4000, 2.0)); got != 4000 {
		t.Errorf("len = %d, want 4000", got)
	}
	if got := generateStars(0, 2.0); got != nil {
		t.Errorf("count 0 should produce no stars, got %d", len(got))
	}
	if got := generateStars(-5, 2.0); got != nil {
		t.Errorf("negative count should produce no stars, got %d", len(got))
	}
}

func TestGenerateStarsOnUnitSphere(t *testing.T) {
	for i, s := range generateStars(1000, 2.0) {
		n := math.Sqrt(float64(s.pos[0])*float64(s.pos[0]) +
			float64(s.pos[1])*float64(s.pos[1]) +
			float64(s.pos[2])*float64(s.pos[2]))
		if math.Abs(n-1) > 1e-6 {
			t.Fatalf("star %d has norm %v, want 1", i, n)
		}
	}
}

func TestGenerateStarsRanges(t *testing.T) {
	const base = 2.0
	for i, s := range generateStars(1000, base) {
		if s.size < 0.4*base || s.size >= 1.4*base {
			t.Fatalf("star %d size %v outside [%v, %v)", i, s.size, 0.4*base, 1.4*base)
		}
		if s.opacity < 0.15 || s.opacity >= 1.0 {
			t.Fatalf("star %d opacity %v outside [0.15, 1.0)", i, s.opacity)
		}
	}
}

func TestGenerateStarsDeterministic(t *testing.T) {
	a := generateStars(200, 2.0)
	b := generateStars(200, 2.0)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d differs between runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// A uniform sphere distribution should put roughly equal counts in each
// hemisphere; independent theta/phi sampling would pile stars at the poles.
func TestGenerateStarsNoPolarClustering(t *testing.T) {
	stars := generateStars(10000, 2.0)

	var upper int
	var polar int // within ~25 degrees of either pole, cap height 1-cos(25deg)
	for _, s := range stars {
		if s.pos[1] > 0 {
			upper++
		}
		if math.Abs(float64(s.pos[1])) > math.Cos(25*math.Pi/180) {
			polar++
		}
	}

	if upper < 4700 || upper > 5300 {
		t.Errorf("upper hemisphere holds %d of 10000 stars, want ~5000", upper)
	}

	// Two polar caps cover 2*(1-cos(25deg))/2 ~ 9.4% of the sphere
	want := 10000 * (1 - math.Cos(25*math.Pi/180))
	if float64(polar) < 0.7*want || float64(polar) > 1.3*want {
		t.Errorf("polar caps hold %d stars, want ~%.0f", polar, want)
	}
}
