package dome

import "github.com/geoql/maplibre-gl-starfield/pkg/math"

// alignedCamera is the per-frame render camera for the dome: the host's
// projection with a translation-stripped view, so the dome stays pinned at
// optical infinity no matter how the host camera pans. It lives for a single
// render call.
type alignedCamera struct {
	proj math.Mat4
	view math.Mat4 // translation column is zero by construction
	vp   math.Mat4 // proj * view, what the shaders consume
}

// alignCamera recovers the model-view matrix from the host's projection and
// combined MVP, zeroes its translation, and rebuilds the effective
// view-projection. ok is false when proj is singular; a valid perspective or
// orthographic projection always inverts, so the caller just skips the frame
// and retries on the next one.
func alignCamera(proj, mvp math.Mat4) (alignedCamera, bool) {
	invProj, ok := proj.Inverse()
	if !ok {
		return alignedCamera{}, false
	}

	view := invProj.Mul(mvp).NoTranslation()

	return alignedCamera{
		proj: proj,
		view: view,
		vp:   proj.Mul(view),
	}, true
}
