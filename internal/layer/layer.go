// Package layer defines the contract between a host renderer and custom
// layers drawn inside its frame. The host owns the GL context and the frame
// cadence; layers own their GPU resources and draw when asked.
package layer

import "github.com/geoql/maplibre-gl-starfield/pkg/math"

// Frame carries the per-frame inputs the host hands to every layer. It is
// plain data; no GL types cross this boundary.
type Frame struct {
	// Proj is the host camera's projection matrix.
	Proj math.Mat4
	// MVP is the combined model-view-projection matrix for the frame.
	MVP math.Mat4
	// Width and Height are the drawable size in pixels.
	Width, Height int32
}

// Host is the layer's handle back to the renderer that owns it.
type Host interface {
	// RequestRepaint asks the host to schedule another frame. Safe to call
	// from the render thread; state mutations call it so a paused host
	// picks up the change.
	RequestRepaint()
}

// Layer is a drawable owned by the host renderer. OnAdd is called once with
// a current GL context before the first Render; OnRemove must release every
// GPU resource the layer created and must be safe to call more than once,
// or without a prior OnAdd.
type Layer interface {
	OnAdd(host Host) error
	Render(frame Frame)
	OnRemove()
}
