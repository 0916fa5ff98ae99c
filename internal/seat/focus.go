package seat

import (
	"time"

	"github.com/bwhmather/hayward/internal/tree"
)

// SetFocusWindow computes the new focused workspace (new.Pending.Workspace
// if non-nil, else keep the current one) and delegates to the internal
// focus transition (seat_set_focus_window in original_source, spec §4.6).
func (s *Seat) SetFocusWindow(w *tree.Window) {
	var newWS *tree.Workspace
	if w != nil {
		newWS = w.Pending.Workspace
	}
	if newWS == nil {
		newWS = s.FocusedWorkspace()
	}
	s.setFocusInternal(newWS, w)
}

// SetFocusWorkspace focuses a workspace's active window (its fullscreen
// window, else its active column's active child), or the workspace itself
// if it has none (seat_set_focus_workspace).
func (s *Seat) SetFocusWorkspace(ws *tree.Workspace) {
	var w *tree.Window
	if ws != nil {
		if fs := ws.Pending.Fullscreen; fs != nil {
			w = fs
		} else if c := ws.Pending.ActiveColumn; c != nil {
			w = c.Pending.ActiveChild
		}
	}
	s.setFocusInternal(ws, w)
}

func (s *Seat) setFocusInternal(newWorkspace *tree.Workspace, newWindow *tree.Window) {
	lastWindow := s.FocusedWindow()
	lastWorkspace := s.FocusedWorkspace()

	if newWindow != nil && s.windowObstructedByFullscreen(newWindow) {
		return
	}
	if newWindow != nil && s.sessionLocked {
		return
	}
	if newWindow != nil && !s.clientAllowed(newWindow) {
		return
	}

	var newOutputLastWS *tree.Workspace
	if newWorkspace != nil && newWorkspace.Output != nil {
		newOutputLastWS = s.ActiveWorkspaceForOutput(newWorkspace.Output)
	}

	if newWorkspace != lastWorkspace && newWorkspace != nil {
		s.bumpWorkspace(newWorkspace)
		if s.OnWorkspaceFocus != nil {
			s.OnWorkspaceFocus(lastWorkspace, newWorkspace)
		}

		if newOutputLastWS != nil && newOutputLastWS != newWorkspace {
			s.migrateStickyFloaters(newOutputLastWS, newWorkspace)
		}
	}

	if lastWindow != nil && newWindow != lastWindow {
		lastWindow.Pending.Focused = false
		lastWindow.Node.SetDirty()
		if p := lastWindow.Pending.Parent; p != nil {
			p.Node.SetDirty()
		}
	}
	if newWindow != lastWindow && s.OnWindowFocus != nil {
		s.OnWindowFocus(lastWindow, newWindow)
	}

	if newWindow != nil && newWindow != lastWindow {
		s.bumpWindow(newWindow)
		newWindow.Pending.Focused = true
		newWindow.Node.SetDirty()
		if p := newWindow.Pending.Parent; p != nil {
			p.Node.SetDirty()
			p.Pending.ActiveChild = newWindow
			if ws := newWindow.Pending.Workspace; ws != nil {
				ws.Pending.ActiveColumn = p
				ws.Node.SetDirty()
			}
		}

		if newWindow.Pending.Urgent {
			s.handleUrgentOnFocus(newWindow, lastWorkspace, newWorkspace)
		}
	}

	s.hasFocus = newWindow != nil

	if newOutputLastWS != nil && newOutputLastWS != newWorkspace && newOutputLastWS.IsEmpty() {
		s.removeWorkspace(newOutputLastWS)
	}
	if lastWorkspace != nil && lastWorkspace != newOutputLastWS && lastWorkspace != newWorkspace && lastWorkspace.IsEmpty() {
		s.removeWorkspace(lastWorkspace)
	}
}

// windowObstructedByFullscreen refuses focus to a window hidden behind its
// workspace's fullscreen window, unless w is a transient-for ancestor of
// it (spec §4.6). Transient-for tracking is not modeled in the window-tree
// spec, so this reduces to "is w itself the fullscreen window".
func (s *Seat) windowObstructedByFullscreen(w *tree.Window) bool {
	ws := w.Pending.Workspace
	if ws == nil || ws.Pending.Fullscreen == nil {
		return false
	}
	return ws.Pending.Fullscreen != w
}

func (s *Seat) bumpWindow(w *tree.Window) {
	s.TrackWindow(w)
	elem := s.windowElems[w]
	s.windowStack.MoveToFront(elem)
}

func (s *Seat) bumpWorkspace(ws *tree.Workspace) {
	s.TrackWorkspace(ws)
	elem := s.workspaceElems[ws]
	s.workspaceStack.MoveToFront(elem)
}

// migrateStickyFloaters reparents every sticky floating window on from's
// floating layer onto to, since sticky windows follow their output rather
// than a single workspace (spec §4.6).
func (s *Seat) migrateStickyFloaters(from, to *tree.Workspace) {
	floaters := append([]*tree.Window(nil), from.Pending.Floating...)
	for _, f := range floaters {
		if f.Pending.Sticky {
			tree.WorkspaceRemoveFloating(from, f)
			tree.WorkspaceAddFloating(to, f)
		}
	}
}

// handleUrgentOnFocus clears urgency immediately for a same-workspace
// focus, or starts the urgent timer for a cross-workspace focus (spec
// §4.6, §4.7).
func (s *Seat) handleUrgentOnFocus(w *tree.Window, lastWS, newWS *tree.Workspace) {
	if _, pending := s.urgentTimers[w]; pending {
		return
	}
	if lastWS != nil && lastWS != newWS && s.UrgentTimeout > 0 {
		s.armUrgentTimer(w, s.UrgentTimeout)
		return
	}
	w.SetUrgent(false)
}

// armUrgentTimer is overridden by cmd/haywardd wiring to use the real
// event loop's timer; by default it fires synchronously after the given
// duration using time.AfterFunc so the package is independently usable in
// tests.
var timerFactory = func(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

func (s *Seat) armUrgentTimer(w *tree.Window, d time.Duration) {
	cancel := timerFactory(d, func() {
		delete(s.urgentTimers, w)
		w.SetUrgent(false)
	})
	s.urgentTimers[w] = cancel
}

func (s *Seat) removeWorkspace(ws *tree.Workspace) {
	if ws.Output != nil {
		ws.Output = nil
	}
	s.root.RemoveWorkspace(ws)
}

// findFocusReplacement implements the three-tier search from spec §4.6 /
// original_source seat_get_focus_inactive's destroy-time caller: ranges
// over the MRU stack (excluding destroyed itself, already removed) and
// picks the first match.
func (s *Seat) findFocusReplacement(destroyed *tree.Window) *tree.Window {
	// Read Pending rather than Current: UntrackWindow runs synchronously
	// from the view's destroy callback, ahead of whatever transaction last
	// committed, so Pending is the only state guaranteed to still reflect
	// how the window was attached right before detachment.
	wasFullscreen := destroyed.Pending.Fullscreen
	wasFloating := destroyed.Pending.Floating
	sameColumn := destroyed.Pending.Parent

	var anyVisible, anyFloatingVisible, sameColumnWin, sameWSTiling, anyTiling *tree.Window

	for e := s.windowStack.Front(); e != nil; e = e.Next() {
		w := e.Value.(*tree.Window)
		if w == destroyed || w.Destroying() {
			continue
		}
		ws := w.Pending.Workspace
		if ws == nil || !s.root.IsWorkspaceVisible(ws) {
			continue
		}
		if anyVisible == nil {
			anyVisible = w
		}
		if w.Pending.Floating && anyFloatingVisible == nil {
			anyFloatingVisible = w
		}
		if sameColumn != nil && w.Pending.Parent == sameColumn && sameColumnWin == nil {
			sameColumnWin = w
		}
		if !w.Pending.Floating && !w.Pending.Fullscreen {
			if sameWSTiling == nil && ws == destroyed.Pending.Workspace {
				sameWSTiling = w
			}
			if anyTiling == nil {
				anyTiling = w
			}
		}
	}

	switch {
	case wasFullscreen:
		return anyVisible
	case wasFloating:
		// Prefer another floating window; fall back to a tiling window on
		// a visible workspace rather than dropping focus entirely (spec
		// §8 scenario 5).
		if anyFloatingVisible != nil {
			return anyFloatingVisible
		}
		if sameWSTiling != nil {
			return sameWSTiling
		}
		return anyTiling
	default:
		if sameColumnWin != nil {
			return sameColumnWin
		}
		if sameWSTiling != nil {
			return sameWSTiling
		}
		return anyTiling
	}
}
