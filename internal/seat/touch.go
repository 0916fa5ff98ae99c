package seat

import "github.com/bwhmather/hayward/internal/wlcore"

// ButtonLeft is the evdev BTN_LEFT code used to synthesize a pointer click
// out of a touch point or tablet tool tip (linux/input-event-codes.h).
const ButtonLeft = 0x110

// TouchDown starts tracking a touch point and, if no other touch point is
// already driving the simulated pointer, routes it through the seatop as a
// synthetic left-button press at its down location (spec §4.5: touch input
// drives the pointer seatop machinery when no native touch handling
// applies).
func (s *Seat) TouchDown(touchID int32, lx, ly float64) {
	if s.simulatingPointerFromTouch {
		return
	}
	s.simulatingPointerFromTouch = true
	s.pointerTouchID = touchID
	s.cursor.MoveTo(lx, ly)
	s.PointerButton(ButtonLeft, true)
}

// TouchMotion updates the simulated pointer position for the touch point
// currently driving it; motion from any other concurrent touch point is
// ignored.
func (s *Seat) TouchMotion(touchID int32, lx, ly float64) {
	if !s.simulatingPointerFromTouch || touchID != s.pointerTouchID {
		return
	}
	s.cursor.MoveTo(lx, ly)
}

// TouchUp ends the touch point driving the simulated pointer, releasing the
// synthetic button press. A lifted touch point that wasn't driving the
// pointer is a no-op.
func (s *Seat) TouchUp(touchID int32) {
	if !s.simulatingPointerFromTouch || touchID != s.pointerTouchID {
		return
	}
	s.simulatingPointerFromTouch = false
	s.PointerButton(ButtonLeft, false)
}

// TabletToolTip handles a tablet tool's tip touching down or lifting.
// Surfaces that accept the native tablet-v2 protocol get the event routed
// to the seatop's tablet-specific handler; everything else gets a
// synthesized left-button press, shared across however many tool tips are
// concurrently down so the first tip-up doesn't release a press a second
// tip is still holding (spec §4.5).
func (s *Seat) TabletToolTip(surface wlcore.Surface, down bool) {
	if surface != nil && surface.AcceptsTabletV2() {
		s.op.TabletToolTip(s, down)
		return
	}
	if down {
		if s.toolButtons == 0 {
			s.simulatingPointerFromToolTip = true
			s.PointerButton(ButtonLeft, true)
		}
		s.toolButtons++
		return
	}
	if s.toolButtons == 0 {
		return
	}
	s.toolButtons--
	if s.toolButtons == 0 && s.simulatingPointerFromToolTip {
		s.simulatingPointerFromToolTip = false
		s.PointerButton(ButtonLeft, false)
	}
}

// TabletToolMotion moves the cursor for a tablet tool hovering over
// surface, using the seatop's native tablet motion callback when the
// surface accepts tablet-v2 and falling back to ordinary simulated-pointer
// motion otherwise.
func (s *Seat) TabletToolMotion(surface wlcore.Surface, lx, ly float64) {
	if surface != nil && surface.AcceptsTabletV2() {
		dx, dy := lx-s.cursor.X, ly-s.cursor.Y
		s.cursor.X, s.cursor.Y = lx, ly
		s.op.TabletToolMotion(s, dx, dy)
		return
	}
	s.cursor.MoveTo(lx, ly)
}
