package seat

import "github.com/bwhmather/hayward/internal/inputdevice"

// Cursor owns the seat's pointer position and current image (spec §4.5,
// §4.4 "default cursor image").
type Cursor struct {
	seat *Seat

	X, Y float64

	theme *inputdevice.CursorTheme
	shape string
	size  int

	constraint *Constraint
}

func newCursor(s *Seat) *Cursor {
	return &Cursor{seat: s, shape: "left_ptr", size: 24}
}

// SetTheme installs the active cursor theme; SetDefault re-selects the
// default shape within it.
func (c *Cursor) SetTheme(t *inputdevice.CursorTheme, size int) {
	c.theme = t
	c.size = size
	c.SetDefault()
}

// SetDefault restores the "left_ptr" shape, used when the pointer
// capability is (re)gained (spec §4.4).
func (c *Cursor) SetDefault() { c.SetShape("left_ptr") }

// SetShape changes the displayed cursor image by theme-relative name.
func (c *Cursor) SetShape(name string) {
	c.shape = name
}

// Clear removes the cursor image entirely, used when the pointer
// capability is lost (spec §4.4).
func (c *Cursor) Clear() {
	c.shape = ""
}

// Frames returns the current shape's animation frames, or nil if no theme
// is loaded or the cursor is cleared.
func (c *Cursor) Frames() []inputdevice.CursorFrame {
	if c.theme == nil || c.shape == "" {
		return nil
	}
	return c.theme.Shape(c.shape)
}

// MoveTo updates the cursor position, applying any active pointer
// constraint (spec §4.8) before committing the new coordinates and routing
// the result to the current seatop.
func (c *Cursor) MoveTo(lx, ly float64) {
	nx, ny := lx, ly
	if c.constraint != nil {
		nx, ny = c.constraint.Clip(c.X, c.Y, lx, ly)
	}
	dx, dy := nx-c.X, ny-c.Y
	c.X, c.Y = nx, ny
	if c.seat.op != nil {
		c.seat.op.PointerMotion(c.seat, dx, dy)
	}
}

// Rebase re-evaluates the current hit-test target under the cursor without
// moving it, used after any transaction applies (cursor_rebase_all in
// original_source).
func (c *Cursor) Rebase() {
	if c.seat.op != nil {
		c.seat.op.Rebase(c.seat)
	}
}
