package wlcore

// Layer is one of the five back-to-front scene layers named in spec §4.5.
type Layer int

const (
	LayerBackground Layer = iota
	LayerWorkspaces
	LayerUnmanaged
	LayerOverlay
	LayerPopups
)

var layerOrder = [...]Layer{LayerPopups, LayerOverlay, LayerUnmanaged, LayerWorkspaces, LayerBackground}

// HitTestOrder returns the five layers in the front-to-back order the hit
// tester must walk them.
func HitTestOrder() []Layer { return layerOrder[:] }

// LayerSurface is a layer-shell (background/top/overlay) surface. It is not
// a tiling tree entity; it exists only so hit-testing and seat focus can
// refer to it uniformly alongside *tree.Window.
type LayerSurface struct {
	Surface         Surface
	AcceptsKeyboard bool
	Exclusive       bool
}

// SceneHit is what a single scene-node hit test yields. Target is nil,
// *tree.Window, or *LayerSurface; kept as `any` so this package does not
// import internal/tree (which itself depends on wlcore.Surface).
type SceneHit struct {
	Output  Output
	Target  any
	Surface Surface
	SX, SY  float64
}

// Scene is the toolkit's scene graph: per-layer, per-node hit testing plus
// output enumeration. The layer-ordering walk itself (spec §4.5) is core
// logic and lives in internal/seat, not here.
type Scene interface {
	Outputs() []Output
	OutputAt(lx, ly float64) (Output, bool)
	HitTestLayer(layer Layer, lx, ly float64) (SceneHit, bool)
}
