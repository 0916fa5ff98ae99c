package tree

import (
	"github.com/bwhmather/hayward/internal/id"
	"github.com/bwhmather/hayward/internal/wlcore"
)

// Window wraps a single toolkit surface (spec §3.6). A window is either
// tiling (Parent set, belongs to a Column) or floating (Parent nil, listed
// directly on a Workspace), never both, and Pending.Fullscreen is
// independent of that axis.
type Window struct {
	id.Node

	View wlcore.Surface

	Title string

	Pending WindowState
	Current WindowState

	// MinW/MinH are "automatic" floating minimums until overridden by the
	// view itself (spec §4.2, DefaultFloatingMinW/H).
	MinW, MinH float64

	// savedBuffer/savedGeometry hold a reference-counted snapshot of the
	// view's last-painted contents, used by the transaction engine to keep
	// showing something sensible while a client resize is in flight (spec
	// §4.3 commit step).
	savedBuffer   wlcore.Buffer
	savedGeometry Rect

	// SurfaceOffsetX/Y translate the content rectangle's origin to where
	// the client surface is actually drawn, centering a view that hasn't
	// yet resized to match its content rectangle (view_center_surface,
	// spec §4.3 apply step).
	SurfaceOffsetX, SurfaceOffsetY float64

	// enteredOutputs tracks which outputs this window's view has been sent
	// a wl_surface.enter for, so apply's output-rediscovery step can send
	// enter/leave only on actual transitions (window_discover_outputs).
	enteredOutputs map[*Output]bool
}

// NewWindow wraps a newly mapped toolkit surface in a Window (spec §3.6).
// The caller is responsible for attaching the result to a Workspace via the
// internal/tree mutation API (WorkspaceAddFloating/WorkspaceInsertTiling+
// ColumnAddChild) before the next Arrange/CommitDirty.
func NewWindow(view wlcore.Surface) *Window {
	w := &Window{View: view, MinW: DefaultFloatingMinW, MinH: DefaultFloatingMinH}
	w.Node.Init(id.KindWindow)
	w.Pending.HeightFrac = 1
	return w
}

// RecenterSurface updates SurfaceOffsetX/Y so a view that hasn't resized to
// exactly match its new content rectangle still appears centered within it,
// rather than pinned to the top-left corner (view_center_surface in
// original_source, spec §4.3 apply step).
func (w *Window) RecenterSurface() {
	geom := w.View.Geometry()
	cr := w.Current.ContentRect
	w.SurfaceOffsetX = (cr.W - geom.W) / 2
	w.SurfaceOffsetY = (cr.H - geom.H) / 2
}

// DiscoverOutputs sends wl_surface.enter/leave to keep the view's
// entered-output set in sync with which outputs its current rectangle now
// intersects (window_discover_outputs in original_source, spec §4.3 apply
// step).
func (w *Window) DiscoverOutputs(outputs []*Output) {
	if w.enteredOutputs == nil {
		w.enteredOutputs = make(map[*Output]bool)
	}
	rect := w.Current.Rect
	for _, o := range outputs {
		intersects := rect.Intersects(o.Pending.Rect)
		was := w.enteredOutputs[o]
		switch {
		case intersects && !was:
			w.View.SendEnter(o.Backend)
			w.enteredOutputs[o] = true
		case !intersects && was:
			w.View.SendLeave(o.Backend)
			delete(w.enteredOutputs, o)
		}
	}
}

// SetFloating toggles between the tiling and floating surface populations.
// The caller must have already detached the window from its prior parent
// (column or workspace floating list) before calling this; SetFloating only
// flips the flag and clears the stale parent pointer.
func (w *Window) SetFloating(floating bool) {
	w.Pending.Floating = floating
	if floating {
		w.Pending.Parent = nil
	}
	w.Node.SetDirty()
}

// SetFullscreen sets or clears fullscreen for this window. Orthogonal to
// Floating (spec §3.6: "independent of the tiling/floating axis").
func (w *Window) SetFullscreen(fs bool) {
	w.Pending.Fullscreen = fs
	w.Node.SetDirty()
}

// SetSticky toggles whether this (floating) window follows its output
// across workspace switches rather than belonging to one workspace.
func (w *Window) SetSticky(sticky bool) {
	w.Pending.Sticky = sticky
	w.Node.SetDirty()
}

// SetUrgent sets or clears the urgency hint (spec §4.7: cleared on focus).
func (w *Window) SetUrgent(urgent bool) {
	w.Pending.Urgent = urgent
	w.Node.SetDirty()
}

// SetBorder sets the decoration kind and pixel width used by Arrange to
// compute ContentRect from Rect.
func (w *Window) SetBorder(b Border, width float64) {
	w.Pending.Border = b
	w.Pending.BorderWidth = width
	w.Node.SetDirty()
}

// IsTiling reports whether w currently belongs to a column.
func (w *Window) IsTiling() bool { return !w.Pending.Floating && w.Pending.Parent != nil }

// SavedBuffer returns the view snapshot taken while a resize was in
// flight, or nil if none is held.
func (w *Window) SavedBuffer() wlcore.Buffer { return w.savedBuffer }

// HasSavedBuffer reports whether a snapshot is currently held.
func (w *Window) HasSavedBuffer() bool { return w.savedBuffer != nil }

// SetSavedBuffer stores a view snapshot and the geometry it was taken at
// (view_save_buffer in original_source).
func (w *Window) SetSavedBuffer(b wlcore.Buffer, geom Rect) {
	w.savedBuffer = b
	w.savedGeometry = geom
}

// ClearSavedBuffer releases the held snapshot (view_remove_saved_buffer).
func (w *Window) ClearSavedBuffer() {
	if w.savedBuffer != nil {
		w.savedBuffer.Unlock()
	}
	w.savedBuffer = nil
}
