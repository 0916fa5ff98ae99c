package tree

// Reconcile rewrites the derived fields of a moved subtree: workspace and
// output back-pointers and the `focused` flag (spec §4.1). There are four
// variants depending on where the window ended up.

// FocusQuery lets reconcile ask "is this window/column the seat's current
// focus" without internal/tree importing internal/seat (which itself
// imports tree).
type FocusQuery interface {
	IsFocusedWindow(w *Window) bool
}

var currentFocus FocusQuery

// SetFocusQuery installs the seat's focus oracle, called once at startup
// from cmd/haywardd wiring.
func SetFocusQuery(q FocusQuery) { currentFocus = q }

func isFocused(w *Window) bool {
	if currentFocus == nil {
		return false
	}
	return currentFocus.IsFocusedWindow(w)
}

// reconcileFloating refreshes w after it was attached to ws's floating
// layer.
func reconcileFloating(ws *Workspace, w *Window) {
	w.Pending.Workspace = ws
	w.Pending.Parent = nil
	w.Pending.Focused = isFocused(w)
}

// reconcileTiling refreshes w and its column after w was attached to c.
func reconcileTiling(c *Column, w *Window) {
	w.Pending.Parent = c
	w.Pending.Workspace = c.Pending.Workspace
	w.Pending.Focused = isFocused(w)
	if c.Pending.ActiveChild == w {
		c.Pending.Focused = w.Pending.Focused
	}
}

// reconcileDetached clears back-pointers on a window that was just removed
// from whatever held it. Fullscreen-reparent cleanup: if the window was
// its workspace's fullscreen window, that pointer is cleared too.
func reconcileDetached(w *Window) {
	if ws := w.Pending.Workspace; ws != nil && ws.Pending.Fullscreen == w {
		ws.Pending.Fullscreen = nil
	}
	w.Pending.Workspace = nil
	w.Pending.Parent = nil
	w.Pending.Focused = false
}

// reconcileWorkspace refreshes every column and window under ws after a
// structural change to the tiling sequence (e.g. a column insert shifting
// indices). Back-pointers are rewritten and focused flags recomputed
// top-down.
func reconcileWorkspace(ws *Workspace) {
	for _, c := range ws.Pending.Tiling {
		c.Pending.Workspace = ws
		for _, w := range c.Pending.Children {
			w.Pending.Parent = c
			w.Pending.Workspace = ws
			w.Pending.Focused = isFocused(w)
			if c.Pending.ActiveChild == w {
				c.Pending.Focused = w.Pending.Focused
			}
		}
	}
	for _, w := range ws.Pending.Floating {
		w.Pending.Workspace = ws
		w.Pending.Parent = nil
		w.Pending.Focused = isFocused(w)
	}
}
