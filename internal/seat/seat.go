// Package seat implements the input/focus engine: per-seat MRU focus
// stacks, hit-testing, seatops, pointer constraints and input device
// aggregation (spec §§3.6, 4.4-4.8).
package seat

import (
	"container/list"
	"time"

	"github.com/bwhmather/hayward/internal/inputdevice"
	"github.com/bwhmather/hayward/internal/log"
	"github.com/bwhmather/hayward/internal/tree"
	"github.com/bwhmather/hayward/internal/wlcore"
)

// Capability is one bit of the seat's aggregate device capability set
// (spec §4.4).
type Capability int

const (
	CapKeyboard Capability = 1 << iota
	CapPointer
	CapTouch
	CapTabletPointerEmulation
)

// Seat owns one user's input focus and pointer/touch/tablet routing state.
type Seat struct {
	Name string

	root  *tree.Root
	scene wlcore.Scene

	// windowStack/workspaceStack are MRU lists: Front() is most-recently
	// focused. list.Element.Value is *tree.Window / *tree.Workspace
	// respectively.
	windowStack    *list.List
	workspaceStack *list.List

	windowElems    map[*tree.Window]*list.Element
	workspaceElems map[*tree.Workspace]*list.Element

	hasFocus bool

	devices      map[string]*inputdevice.Device
	capabilities Capability

	cursor *Cursor

	op Seatop

	// exclusiveClient, when non-empty, restricts focus/input to surfaces
	// belonging to one client (spec §4.6; client identity is opaque here,
	// real client-matching lives in the wlcore backend).
	exclusiveClient string

	// focusedLayer, when non-nil, is a layer-shell surface holding
	// keyboard focus; internal window focus still
	// tracks the window that would otherwise be focused (spec §4.6).
	focusedLayer wlcore.Surface

	urgentTimers map[*tree.Window]func()

	sessionLocked bool

	// constrainedWindow is the window whose view owns the cursor's active
	// pointer constraint, if any (spec §4.8).
	constrainedWindow *tree.Window

	// simulatingPointerFromTouch/pointerTouchID and
	// simulatingPointerFromToolTip/toolButtons track touch- and
	// tablet-tool-driven pointer emulation so overlapping touch points or
	// tool tips don't each independently press and release the simulated
	// pointer button (spec §4.5).
	simulatingPointerFromTouch   bool
	pointerTouchID               int32
	simulatingPointerFromToolTip bool
	toolButtons                  int

	OnWindowFocus     func(old, new *tree.Window)
	OnWorkspaceFocus  func(old, new *tree.Workspace)
	UrgentTimeout      time.Duration
}

func NewSeat(name string, root *tree.Root, scene wlcore.Scene) *Seat {
	s := &Seat{
		Name:           name,
		root:           root,
		scene:          scene,
		windowStack:    list.New(),
		workspaceStack: list.New(),
		windowElems:    make(map[*tree.Window]*list.Element),
		workspaceElems: make(map[*tree.Workspace]*list.Element),
		devices:        make(map[string]*inputdevice.Device),
		urgentTimers:   make(map[*tree.Window]func()),
		UrgentTimeout:  200 * time.Millisecond,
	}
	s.op = &DefaultSeatop{seat: s}
	s.cursor = newCursor(s)
	return s
}

// IsFocusedWindow implements tree.FocusQuery, letting reconcile ask "is
// this the seat's current window focus" without tree importing seat.
func (s *Seat) IsFocusedWindow(w *tree.Window) bool {
	return s.hasFocus && s.windowStack.Len() > 0 && s.windowStack.Front().Value.(*tree.Window) == w
}

// TrackWindow registers a newly created window in the MRU stack at the
// back (least-recently-focused) position.
func (s *Seat) TrackWindow(w *tree.Window) {
	if _, ok := s.windowElems[w]; ok {
		return
	}
	s.windowElems[w] = s.windowStack.PushBack(w)
}

// UntrackWindow removes a destroyed window from the stack and, if it held
// focus, picks a replacement per the priority search (spec §4.6).
func (s *Seat) UntrackWindow(w *tree.Window) {
	elem, ok := s.windowElems[w]
	if !ok {
		return
	}
	wasFocused := s.windowStack.Front() == elem
	s.windowStack.Remove(elem)
	delete(s.windowElems, w)
	if wasFocused {
		s.hasFocus = false
		if replacement := s.findFocusReplacement(w); replacement != nil {
			s.SetFocusWindow(replacement)
		}
	}
}

func (s *Seat) TrackWorkspace(ws *tree.Workspace) {
	if _, ok := s.workspaceElems[ws]; ok {
		return
	}
	s.workspaceElems[ws] = s.workspaceStack.PushBack(ws)
}

func (s *Seat) UntrackWorkspace(ws *tree.Workspace) {
	elem, ok := s.workspaceElems[ws]
	if !ok {
		return
	}
	s.workspaceStack.Remove(elem)
	delete(s.workspaceElems, ws)
}

// AddDevice registers a new input device and re-derives the seat's
// capability set (spec §4.4).
func (s *Seat) AddDevice(d *inputdevice.Device) {
	s.devices[d.Name] = d
	s.recomputeCapabilities()
	d.ApplyProfile()
}

// RemoveDevice unregisters a device. Losing the pointer capability clears
// the cursor image; a subsequent AddDevice with pointer capability
// restores the default "left_ptr" image (spec §4.4).
func (s *Seat) RemoveDevice(name string) {
	delete(s.devices, name)
	hadPointer := s.capabilities&CapPointer != 0
	s.recomputeCapabilities()
	if hadPointer && s.capabilities&CapPointer == 0 {
		s.cursor.Clear()
	}
}

func (s *Seat) recomputeCapabilities() {
	var caps Capability
	for _, d := range s.devices {
		switch d.Type {
		case inputdevice.TypeKeyboard:
			caps |= CapKeyboard
		case inputdevice.TypePointer:
			caps |= CapPointer
		case inputdevice.TypeTouch:
			caps |= CapTouch
		case inputdevice.TypeTabletTool:
			caps |= CapTabletPointerEmulation
		}
	}
	gained := caps&CapPointer != 0 && s.capabilities&CapPointer == 0
	s.capabilities = caps
	if gained {
		s.cursor.SetDefault()
	}
}

func (s *Seat) Capabilities() Capability { return s.capabilities }

// SetExclusiveClient restricts focus and input delivery to one client, or
// clears the restriction when id is empty.
func (s *Seat) SetExclusiveClient(id string) {
	s.exclusiveClient = id
	if id != "" {
		if s.hasFocus {
			w := s.FocusedWindow()
			if w != nil && !s.clientAllowed(w) {
				s.SetFocusWindow(nil)
			}
		}
	}
}

// clientAllowed is a stand-in for the real client-identity check, which is
// the wlcore backend's concern (spec Non-goals exclude the wire protocol).
func (s *Seat) clientAllowed(w *tree.Window) bool {
	return s.exclusiveClient == ""
}

func (s *Seat) SetSessionLocked(locked bool) {
	s.sessionLocked = locked
	if locked {
		s.SetFocusWindow(nil)
	}
}

// FocusedWindow returns the top of the window MRU stack iff hasFocus.
func (s *Seat) FocusedWindow() *tree.Window {
	if !s.hasFocus || s.windowStack.Len() == 0 {
		return nil
	}
	return s.windowStack.Front().Value.(*tree.Window)
}

// FocusedWorkspace returns the top of the workspace MRU stack.
func (s *Seat) FocusedWorkspace() *tree.Workspace {
	if s.workspaceStack.Len() == 0 {
		return nil
	}
	return s.workspaceStack.Front().Value.(*tree.Workspace)
}

// ActiveWorkspaceForOutput returns the most-recently-focused workspace in
// the seat's MRU stack that currently lives on o.
func (s *Seat) ActiveWorkspaceForOutput(o *tree.Output) *tree.Workspace {
	for e := s.workspaceStack.Front(); e != nil; e = e.Next() {
		ws := e.Value.(*tree.Workspace)
		if ws.Output == o {
			return ws
		}
	}
	return nil
}

// CursorPosition returns the cursor's current layout-space coordinates.
func (s *Seat) CursorPosition() (float64, float64) { return s.cursor.X, s.cursor.Y }

// MoveCursorTo moves the cursor to the given layout-space coordinates,
// applying any active pointer constraint and routing motion to the current
// seatop (spec §4.5, §4.8).
func (s *Seat) MoveCursorTo(lx, ly float64) { s.cursor.MoveTo(lx, ly) }

// PointerButton delivers a physical pointer button event to the active
// seatop (spec §4.5, §4.7).
func (s *Seat) PointerButton(button uint32, pressed bool) {
	if s.op != nil {
		s.op.Button(s, button, pressed)
	}
}

// PointerAxis delivers a scroll/axis event to the active seatop.
func (s *Seat) PointerAxis(horiz, vert float64) {
	if s.op != nil {
		s.op.PointerAxis(s, horiz, vert)
	}
}

// SetPointerConstraint installs a pointer constraint scoped to w's view:
// either a confined region or, with an empty region and locked=true, a
// zero-area lock at the cursor's current position (spec §4.8). This is the
// seat-side half of a zwp_pointer_constraints_v1 request.
func (s *Seat) SetPointerConstraint(w *tree.Window, locked bool, region wlcore.Rect, hasHint bool, hintX, hintY float64) {
	s.constrainedWindow = w
	s.cursor.SetConstraint(&Constraint{
		Surface: w.View,
		Locked:  locked,
		Region:  region,
		HasHint: hasHint,
		HintX:   hintX,
		HintY:   hintY,
	})
}

// ReleasePointerConstraint removes the active pointer constraint, warping
// the cursor to the client's hint (if any) relative to the window's view
// origin: window.content_x - view.geometry.x + hint (spec §4.8).
func (s *Seat) ReleasePointerConstraint() {
	w := s.constrainedWindow
	s.constrainedWindow = nil
	if w == nil {
		s.cursor.SetConstraint(nil)
		return
	}
	originX := w.Current.ContentRect.X - w.View.Geometry().X
	originY := w.Current.ContentRect.Y - w.View.Geometry().Y
	s.cursor.ReleaseConstraint(originX, originY)
}

// ReleaseConstraintIfOwner drops the active pointer constraint without
// performing the hint warp if w is the window being destroyed out from
// under it (its geometry is no longer meaningful).
func (s *Seat) ReleaseConstraintIfOwner(w *tree.Window) {
	if s.constrainedWindow == w {
		s.constrainedWindow = nil
		s.cursor.SetConstraint(nil)
	}
}

func (s *Seat) logf(format string, args ...any) { log.Debugf("seat %s: "+format, append([]any{s.Name}, args...)...) }
