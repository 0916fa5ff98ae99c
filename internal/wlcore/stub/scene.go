package stub

import "github.com/bwhmather/hayward/internal/wlcore"

// layerEntry is one placed surface within a scene layer.
type layerEntry struct {
	rect    wlcore.Rect
	surface wlcore.Surface
	target  any
	output  *Output
}

// Scene is an in-memory, front-to-back-ordered scene graph.
type Scene struct {
	outputs []*Output
	layers  map[wlcore.Layer][]layerEntry
}

func NewScene(outputs ...*Output) *Scene {
	return &Scene{outputs: outputs, layers: make(map[wlcore.Layer][]layerEntry)}
}

func (s *Scene) Outputs() []wlcore.Output {
	out := make([]wlcore.Output, len(s.outputs))
	for i, o := range s.outputs {
		out[i] = o
	}
	return out
}

func (s *Scene) OutputAt(lx, ly float64) (wlcore.Output, bool) {
	for _, o := range s.outputs {
		r := o.Geometry()
		if lx >= r.X && lx < r.X+r.W && ly >= r.Y && ly < r.Y+r.H {
			return o, true
		}
	}
	return nil, false
}

// Place registers a hit-testable surface in a layer, associated with an
// opaque Target (typically *tree.Window) the seat package will type-assert.
func (s *Scene) Place(layer wlcore.Layer, rect wlcore.Rect, surface wlcore.Surface, target any, output *Output) {
	s.layers[layer] = append(s.layers[layer], layerEntry{rect: rect, surface: surface, target: target, output: output})
}

// Clear empties every layer, used between test arrangements.
func (s *Scene) Clear() { s.layers = make(map[wlcore.Layer][]layerEntry) }

func (s *Scene) HitTestLayer(layer wlcore.Layer, lx, ly float64) (wlcore.SceneHit, bool) {
	entries := s.layers[layer]
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		r := e.rect
		if lx >= r.X && lx < r.X+r.W && ly >= r.Y && ly < r.Y+r.H {
			return wlcore.SceneHit{
				Output:  e.output,
				Target:  e.target,
				Surface: e.surface,
				SX:      lx - r.X,
				SY:      ly - r.Y,
			}, true
		}
	}
	return wlcore.SceneHit{}, false
}

// Toolkit is the in-memory wlcore.Toolkit used by tests and the headless
// fallback.
type Toolkit struct {
	scene *Scene

	onNewToplevel []func(wlcore.Surface, string, string)
}

func NewToolkit(scene *Scene) *Toolkit { return &Toolkit{scene: scene} }

func (t *Toolkit) Scene() wlcore.Scene { return t.scene }

// AddHeadlessOutput synthesizes a single 1920x1080 output so the
// compositor always has somewhere to place workspaces (spec §6 headless
// fallback).
func (t *Toolkit) AddHeadlessOutput() wlcore.Output {
	o := NewOutput("HEADLESS-1", wlcore.Rect{X: 0, Y: 0, W: 1920, H: 1080})
	t.scene.outputs = append(t.scene.outputs, o)
	return o
}

func (t *Toolkit) OnNewToplevel(f func(wlcore.Surface, string, string)) {
	t.onNewToplevel = append(t.onNewToplevel, f)
}

// SpawnToplevel simulates a client mapping a new toplevel surface, for use
// by tests and as the in-memory stand-in for a real backend's map event.
func (t *Toolkit) SpawnToplevel(surface *Surface, appID, title string) {
	for _, f := range t.onNewToplevel {
		f(surface, appID, title)
	}
	surface.Map()
}
