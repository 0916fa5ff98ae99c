package wlcore

// Toolkit aggregates the pieces of the compositor/shell toolkit the core
// consumes: output enumeration/layout and the scene graph. Rendering,
// DMA-BUF, and the display socket itself are the toolkit's concern and are
// not modeled here; the core only ever asks "where are my outputs" and
// "what's under this point".
type Toolkit interface {
	Scene() Scene
	// AddHeadlessOutput is invoked when the backend reports zero connected
	// outputs, so the compositor still has a renderable surface instead of
	// failing outright (spec §6 "headless fallback output").
	AddHeadlessOutput() Output
	// OnNewToplevel registers a callback invoked once per newly mapped
	// toplevel surface, with the app-id/title the shell needs to match
	// window rules and pick an initial workspace (spec §3.6, §6).
	OnNewToplevel(f func(surface Surface, appID, title string))
}
