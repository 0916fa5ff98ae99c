// Package wlcore declares the external-collaborator interfaces the core
// tree/transaction/seat engine is built against: a Wayland compositor
// toolkit (surfaces, outputs, scene graph, buffers) and nothing else. No
// concrete Wayland protocol handling lives here — "any implementation that
// satisfies the contract is acceptable" (spec §6). Package stub provides an
// in-memory implementation used by tests and as the zero-output fallback.
package wlcore

import "time"

// Rect is a pixel rectangle in layout coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Output is a physical (or headless) display with a layout-space rectangle
// supplied by the backend's output layout manager.
type Output interface {
	Name() string
	Geometry() Rect
}

// Buffer is a reference-counted snapshot of a surface's most recently
// committed contents, used to paper over the interregnum between a resize
// request and the client's acknowledgement.
type Buffer interface {
	Lock()
	Unlock()
}

// Surface is a client surface primitive: a toplevel view, a layer-shell
// surface, or a subsurface/popup.
type Surface interface {
	// Geometry is the surface's own reported content geometry (pre-resize).
	Geometry() Rect
	// IntegerPositioned is true for views (X11-style) that only accept
	// integer logical coordinates and so must be reconfigured even when
	// only their truncated position, not size, changed.
	IntegerPositioned() bool

	SurfaceAt(sx, sy float64) (child Surface, csx, csy float64, ok bool)
	SendEnter(o Output)
	SendLeave(o Output)
	SendFrameDone(t time.Time)
	// SendPointerButton and SendPointerAxis deliver a physical pointer
	// event to this surface, forwarded by the default seatop's hit-test
	// (spec §4.5, §4.7).
	SendPointerButton(button uint32, pressed bool)
	SendPointerAxis(horiz, vert float64)
	// Configure asks the client to resize/reposition to the given content
	// rectangle and returns an ack serial the client will later echo back.
	Configure(r Rect) uint32
	// SaveBuffers captures a refcounted snapshot of current buffers/geometry
	// for use while a resize is in flight.
	SaveBuffers() Buffer
	AcceptsTabletV2() bool

	OnCommit(f func())
	OnDestroy(f func())
	OnNewSubsurface(f func(Surface))
	OnMap(f func())
	OnUnmap(f func())
}
