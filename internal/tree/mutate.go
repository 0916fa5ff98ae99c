package tree

// This file is the public tree mutation API (spec §4.1): attach, detach,
// reorder, set-geometry, set-flag. Every mutation touches only pending
// state and marks its node dirty; attach/detach additionally run reconcile
// on the moved subtree.

// WorkspaceAddFloating attaches w to ws's floating layer. w must be
// detached (Pending.Parent nil and not already listed on any workspace).
func WorkspaceAddFloating(ws *Workspace, w *Window) {
	ws.Pending.Floating = append(ws.Pending.Floating, w)
	w.Pending.Floating = true
	w.Pending.Parent = nil
	reconcileFloating(ws, w)
	ws.Node.SetDirty()
}

// WorkspaceRemoveFloating detaches w from ws's floating layer, leaving it
// reachable only from the caller.
func WorkspaceRemoveFloating(ws *Workspace, w *Window) {
	for i, c := range ws.Pending.Floating {
		if c == w {
			ws.Pending.Floating = append(ws.Pending.Floating[:i], ws.Pending.Floating[i+1:]...)
			break
		}
	}
	reconcileDetached(w)
	if len(ws.Pending.Floating) == 0 && ws.Pending.FocusMode == FocusFloating {
		ws.Pending.FocusMode = FocusTiling
	}
	ws.Node.SetDirty()
}

// WorkspaceInsertTiling creates (or reuses, if col is non-nil) a tiling
// column on ws at index, attaching it to output's priority preference.
func WorkspaceInsertTiling(ws *Workspace, output *Output, col *Column, index int) *Column {
	if col == nil {
		col = newColumn(ws)
	}
	col.Pending.Workspace = ws
	if index < 0 {
		index = 0
	}
	if index > len(ws.Pending.Tiling) {
		index = len(ws.Pending.Tiling)
	}
	tiling := append(ws.Pending.Tiling, nil)
	copy(tiling[index+1:], tiling[index:])
	tiling[index] = col
	ws.Pending.Tiling = tiling
	if ws.Pending.ActiveColumn == nil {
		ws.Pending.ActiveColumn = col
	}
	if output != nil {
		ws.RaiseOutputPriority(output)
	}
	reconcileWorkspace(ws)
	ws.Node.SetDirty()
	return col
}

// WorkspaceRemoveTiling detaches col from ws's tiling sequence. col must be
// empty; destroying a non-empty column is the caller's mistake.
func WorkspaceRemoveTiling(ws *Workspace, col *Column) {
	for i, c := range ws.Pending.Tiling {
		if c == col {
			ws.Pending.Tiling = append(ws.Pending.Tiling[:i], ws.Pending.Tiling[i+1:]...)
			break
		}
	}
	if ws.Pending.ActiveColumn == col {
		ws.Pending.ActiveColumn = nil
		if len(ws.Pending.Tiling) > 0 {
			ws.Pending.ActiveColumn = ws.Pending.Tiling[0]
		}
	}
	col.Pending.Workspace = nil
	ws.Node.SetDirty()
}

// ColumnAddChild appends w as c's last child (column_add_child).
func ColumnAddChild(c *Column, w *Window) {
	w.Pending.Floating = false
	w.Pending.Parent = c
	c.AddChild(w)
	reconcileTiling(c, w)
}

// ColumnInsertChild inserts w at index i within c (column_insert_child).
func ColumnInsertChild(c *Column, w *Window, i int) {
	w.Pending.Floating = false
	w.Pending.Parent = c
	c.InsertChild(w, i)
	reconcileTiling(c, w)
}

// ColumnAddSibling inserts w immediately before or after fixed within
// fixed's column (column_add_sibling).
func ColumnAddSibling(fixed *Window, w *Window, after bool) {
	c := fixed.Pending.Parent
	if c == nil {
		return
	}
	idx := -1
	for i, child := range c.Pending.Children {
		if child == fixed {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	if after {
		idx++
	}
	ColumnInsertChild(c, w, idx)
}

// WindowMoveToColumn detaches w from its current parent (if any) and
// attaches it to c (window_move_to_column).
func WindowMoveToColumn(w *Window, c *Column) {
	if old := w.Pending.Parent; old != nil {
		old.RemoveChild(w)
		reconcileDetached(w)
	} else if w.Pending.Floating {
		if ws := w.Pending.Workspace; ws != nil {
			WorkspaceRemoveFloating(ws, w)
		}
	}
	ColumnAddChild(c, w)
}

// WindowMoveToWorkspace detaches w from wherever it is and attaches it as a
// floating window on ws (window_move_to_workspace).
func WindowMoveToWorkspace(w *Window, ws *Workspace) {
	if old := w.Pending.Parent; old != nil {
		old.RemoveChild(w)
		reconcileDetached(w)
	} else if w.Pending.Floating {
		if oldWS := w.Pending.Workspace; oldWS != nil {
			WorkspaceRemoveFloating(oldWS, w)
		}
	}
	WorkspaceAddFloating(ws, w)
}

// WindowSetFloating changes w's tiling/floating axis in place, reconciling
// its attachment to the appropriate population of the same workspace.
func WindowSetFloating(w *Window, floating bool) {
	if w.Pending.Floating == floating {
		return
	}
	ws := w.Pending.Workspace
	if floating {
		if c := w.Pending.Parent; c != nil {
			c.RemoveChild(w)
		}
		if ws != nil {
			WorkspaceAddFloating(ws, w)
		}
	} else {
		if ws != nil {
			WorkspaceRemoveFloating(ws, w)
			// Reinsert into the workspace's most recently active column
			// rather than always opening a new one (spec.md §8 scenario
			// 2; original_source/hayward/tree/window.c window_set_floating,
			// ~490-499).
			col := ws.Pending.ActiveColumn
			if col == nil {
				col = WorkspaceInsertTiling(ws, nil, nil, len(ws.Pending.Tiling))
			}
			ColumnAddChild(col, w)
		}
	}
}

// DestroyWindow detaches w from whatever it is attached to and marks it
// destroying, ready for the transaction engine to free once every
// referencing instruction has been applied (N1). Callers wire this to the
// view's OnDestroy.
func DestroyWindow(w *Window) {
	if c := w.Pending.Parent; c != nil {
		c.RemoveChild(w)
		if c.IsEmpty() {
			if ws := c.Pending.Workspace; ws != nil {
				WorkspaceRemoveTiling(ws, c)
			}
		}
		reconcileDetached(w)
	} else if w.Pending.Floating {
		if ws := w.Pending.Workspace; ws != nil {
			WorkspaceRemoveFloating(ws, w)
		}
	}
	w.Node.BeginDestroy()
	w.Node.SetDirty()
}

// WindowSetFullscreen sets or clears w's fullscreen flag, updates the
// owning workspace's fullscreen pointer, and emits an IPC event
// (fullscreen_change, spec §4.1 "Fullscreen changes ... emit an IPC event").
func WindowSetFullscreen(w *Window, fullscreen bool, emit func(w *Window, fullscreen bool)) {
	w.SetFullscreen(fullscreen)
	if ws := w.Pending.Workspace; ws != nil {
		if fullscreen {
			ws.SetFullscreen(w)
		} else if ws.Pending.Fullscreen == w {
			ws.SetFullscreen(nil)
		}
	}
	if emit != nil {
		emit(w, fullscreen)
	}
}
