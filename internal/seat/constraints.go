package seat

import "github.com/bwhmather/hayward/internal/wlcore"

// Constraint is a client-installed pointer constraint: either a confined
// region or a zero-area lock (spec §4.8).
type Constraint struct {
	Surface wlcore.Surface
	Locked  bool
	// Region, when non-empty, is the confine region in layout
	// coordinates; an empty Region with Locked=false does not restrict
	// motion at all.
	Region wlcore.Rect

	// Hint is the client-supplied cursor-position hint (surface-local),
	// applied as a warp target when a lock is released.
	HasHint   bool
	HintX, HintY float64
}

// Clip applies the constraint to a proposed pointer move from (ox,oy) to
// (nx,ny), both in layout coordinates, returning the constrained target.
func (c *Constraint) Clip(ox, oy, nx, ny float64) (float64, float64) {
	if c.Locked {
		return ox, oy
	}
	if c.Region.Empty() {
		return nx, ny
	}
	cx := clampf(nx, c.Region.X, c.Region.X+c.Region.W)
	cy := clampf(ny, c.Region.Y, c.Region.Y+c.Region.H)
	return cx, cy
}

func clampf(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetConstraint installs a new constraint on the cursor, replacing any
// prior one for the same or a different surface.
func (c *Cursor) SetConstraint(con *Constraint) {
	c.constraint = con
}

// ReleaseConstraint removes the active constraint. If it was a lock and
// the client supplied a position hint, the cursor warps to
// surface_origin + hint (spec §4.8).
func (c *Cursor) ReleaseConstraint(surfaceOriginX, surfaceOriginY float64) {
	con := c.constraint
	c.constraint = nil
	if con == nil {
		return
	}
	if con.Locked && con.HasHint {
		c.X = surfaceOriginX + con.HintX
		c.Y = surfaceOriginY + con.HintY
	}
}
