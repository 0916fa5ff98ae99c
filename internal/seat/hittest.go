package seat

import "github.com/bwhmather/hayward/internal/wlcore"

// HitResult is what scene-hit-testing found at a point (spec §4.5).
type HitResult struct {
	Output  wlcore.Output
	Window  any // *tree.Window, or nil
	Surface wlcore.Surface
	SX, SY  float64
}

// HitTest walks the scene layers front-to-back at (lx, ly) (spec §4.5):
//  1. reject if outside any output
//  2. walk popups -> overlay -> unmanaged -> workspaces -> background; the
//     first hit whose scene-node chain contains a Window or LayerSurface
//     terminates the search.
func HitTest(scene wlcore.Scene, lx, ly float64) (HitResult, bool) {
	output, ok := scene.OutputAt(lx, ly)
	if !ok {
		return HitResult{}, false
	}
	for _, layer := range wlcore.HitTestOrder() {
		hit, ok := scene.HitTestLayer(layer, lx, ly)
		if !ok {
			continue
		}
		return HitResult{Output: hit.Output, Window: hit.Target, Surface: hit.Surface, SX: hit.SX, SY: hit.SY}, true
	}
	return HitResult{Output: output}, true
}
