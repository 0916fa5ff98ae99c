package seat

import (
	"github.com/bwhmather/hayward/internal/tree"
	"github.com/bwhmather/hayward/internal/wlcore"
)

// Seatop is the seat's strategy vtable (spec §4.7): button, pointer
// motion/axis, rebase, tablet events, end, unref-window and
// allow-set-cursor. It has no render method. Each concrete seatop implements only the subset that
// differs from the default no-op behavior embedded via BaseSeatop.
type Seatop interface {
	Button(s *Seat, button uint32, pressed bool)
	PointerMotion(s *Seat, dx, dy float64)
	PointerAxis(s *Seat, horiz, vert float64)
	Rebase(s *Seat)
	TabletToolTip(s *Seat, down bool)
	TabletToolMotion(s *Seat, dx, dy float64)
	End(s *Seat)
	// UnrefWindow lets a seatop abort cleanly when the window it is
	// operating on is destroyed mid-operation.
	UnrefWindow(s *Seat, w *tree.Window)
	AllowSetCursor() bool
}

// BaseSeatop gives every concrete seatop a no-op implementation of the
// methods it doesn't care about.
type BaseSeatop struct{}

func (BaseSeatop) Button(*Seat, uint32, bool)       {}
func (BaseSeatop) PointerMotion(*Seat, float64, float64) {}
func (BaseSeatop) PointerAxis(*Seat, float64, float64)   {}
func (BaseSeatop) Rebase(*Seat)                      {}
func (BaseSeatop) TabletToolTip(*Seat, bool)          {}
func (BaseSeatop) TabletToolMotion(*Seat, float64, float64) {}
func (BaseSeatop) End(*Seat)                          {}
func (BaseSeatop) UnrefWindow(*Seat, *tree.Window)    {}
func (BaseSeatop) AllowSetCursor() bool               { return true }

// SetSeatop ends the current seatop and installs a new one (spec §4.7).
func (s *Seat) SetSeatop(op Seatop) {
	if s.op != nil {
		s.op.End(s)
	}
	s.op = op
}

// DefaultSeatop hit-tests under the cursor and forwards events to whatever
// surface is found there; it is the seatop active whenever no grab/drag is
// in progress.
type DefaultSeatop struct {
	BaseSeatop
	seat *Seat
}

func (d *DefaultSeatop) Rebase(s *Seat) {
	hit, ok := HitTest(s.scene, s.cursor.X, s.cursor.Y)
	if !ok {
		return
	}
	if hit.Surface != nil {
		hit.Surface.SendEnter(hit.Output)
	}
}

// Button forwards a physical button event to whatever surface is under the
// cursor (spec §4.7: "default ... forwards to the surface under the
// pointer").
func (d *DefaultSeatop) Button(s *Seat, button uint32, pressed bool) {
	hit, ok := HitTest(s.scene, s.cursor.X, s.cursor.Y)
	if !ok || hit.Surface == nil {
		return
	}
	hit.Surface.SendPointerButton(button, pressed)
}

// PointerAxis forwards a scroll event the same way Button does.
func (d *DefaultSeatop) PointerAxis(s *Seat, horiz, vert float64) {
	hit, ok := HitTest(s.scene, s.cursor.X, s.cursor.Y)
	if !ok || hit.Surface == nil {
		return
	}
	hit.Surface.SendPointerAxis(horiz, vert)
}

// DownSeatop forwards all button events to one surface until the
// initiating button is released (spec §4.7 "down"). Pointer motion is not
// forwarded: wlcore.Surface has no motion delivery.
type DownSeatop struct {
	BaseSeatop
	surface wlcore.Surface
	button  uint32
}

func NewDownSeatop(surface wlcore.Surface, button uint32) Seatop {
	return &DownSeatop{surface: surface, button: button}
}

func (d *DownSeatop) Button(s *Seat, button uint32, pressed bool) {
	if d.surface != nil {
		d.surface.SendPointerButton(button, pressed)
	}
	if button == d.button && !pressed {
		s.SetSeatop(&DefaultSeatop{seat: s})
	}
}

// moveFloatingSeatop drags a floating window under the cursor (spec §4.7
// "move-floating").
type moveFloatingSeatop struct {
	BaseSeatop
	window     *tree.Window
	startX, startY float64
	origRect   tree.Rect
}

func NewMoveFloatingSeatop(w *tree.Window) Seatop {
	return &moveFloatingSeatop{window: w, origRect: w.Pending.Rect}
}

func (m *moveFloatingSeatop) PointerMotion(s *Seat, dx, dy float64) {
	m.window.Pending.Rect.X += dx
	m.window.Pending.Rect.Y += dy
	m.window.Node.SetDirty()
}

func (m *moveFloatingSeatop) UnrefWindow(s *Seat, w *tree.Window) {
	if w == m.window {
		s.SetSeatop(&DefaultSeatop{seat: s})
	}
}

// moveTilingSeatop reorders a tiling window by dragging it over siblings.
// The threshold variant waits until the pointer has moved past a small
// radius before detaching the window from its column (spec §4.7).
type moveTilingSeatop struct {
	BaseSeatop
	window     *tree.Window
	threshold  float64
	detached   bool
	accumDX, accumDY float64
}

func NewMoveTilingSeatop(w *tree.Window, threshold float64) Seatop {
	return &moveTilingSeatop{window: w, threshold: threshold, detached: threshold <= 0}
}

func (m *moveTilingSeatop) PointerMotion(s *Seat, dx, dy float64) {
	if !m.detached {
		m.accumDX += dx
		m.accumDY += dy
		if m.accumDX*m.accumDX+m.accumDY*m.accumDY >= m.threshold*m.threshold {
			m.detached = true
			tree.WindowSetFloating(m.window, true)
		}
		return
	}
	m.window.Pending.Rect.X += dx
	m.window.Pending.Rect.Y += dy
	m.window.Node.SetDirty()
}

func (m *moveTilingSeatop) UnrefWindow(s *Seat, w *tree.Window) {
	if w == m.window {
		s.SetSeatop(&DefaultSeatop{seat: s})
	}
}

// resizeFloatingSeatop resizes a floating window by dragging an edge/corner
// (spec §4.7 "resize-floating").
type resizeFloatingSeatop struct {
	BaseSeatop
	window *tree.Window
	edgeX, edgeY int // -1, 0, or 1: which edge(s) the drag grabbed
}

func NewResizeFloatingSeatop(w *tree.Window, edgeX, edgeY int) Seatop {
	return &resizeFloatingSeatop{window: w, edgeX: edgeX, edgeY: edgeY}
}

func (r *resizeFloatingSeatop) PointerMotion(s *Seat, dx, dy float64) {
	rect := &r.window.Pending.Rect
	if r.edgeX < 0 {
		rect.X += dx
		rect.W -= dx
	} else if r.edgeX > 0 {
		rect.W += dx
	}
	if r.edgeY < 0 {
		rect.Y += dy
		rect.H -= dy
	} else if r.edgeY > 0 {
		rect.H += dy
	}
	r.window.Node.SetDirty()
}

func (r *resizeFloatingSeatop) UnrefWindow(s *Seat, w *tree.Window) {
	if w == r.window {
		s.SetSeatop(&DefaultSeatop{seat: s})
	}
}

// resizeTilingSeatop resizes a tiling window by adding horizontal pointer
// motion to its column's width_fraction (spec §4.7 "resize-tiling").
// Vertical motion is ignored; the window's height_fraction is not changed.
type resizeTilingSeatop struct {
	BaseSeatop
	window *tree.Window
}

func NewResizeTilingSeatop(w *tree.Window) Seatop {
	return &resizeTilingSeatop{window: w}
}

func (r *resizeTilingSeatop) PointerMotion(s *Seat, dx, dy float64) {
	c := r.window.Pending.Parent
	if c == nil {
		return
	}
	ws := c.Pending.Workspace
	if ws == nil || ws.Pending.Rect.W == 0 {
		return
	}
	c.Pending.WidthFraction += dx / ws.Pending.Rect.W
	c.Node.SetDirty()
}

func (r *resizeTilingSeatop) UnrefWindow(s *Seat, w *tree.Window) {
	if w == r.window {
		s.SetSeatop(&DefaultSeatop{seat: s})
	}
}
