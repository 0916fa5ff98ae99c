package tree

// Arrange recomputes pending pixel rectangles for every Output/Workspace/
// Column/Window under r (spec §4.2). It is a pure function of pending
// state: it never touches Current, and it is always safe to call more than
// once before a commit.
func Arrange(r *Root) {
	for _, o := range r.Outputs {
		arrangeOutput(o)
	}
}

func arrangeOutput(o *Output) {
	o.Pending.Rect = o.Backend.Geometry()
	ws := o.Pending.ActiveWorkspace
	if ws == nil {
		return
	}
	arrangeWorkspace(ws, o.Pending.Rect)
}

func arrangeWorkspace(ws *Workspace, outputRect Rect) {
	ws.Pending.Rect = workspaceInnerRect(ws, outputRect)

	if fs := ws.Pending.Fullscreen; fs != nil {
		fs.Pending.Rect = outputRect
		fs.Pending.ContentRect = outputRect
		// The other windows are still laid out below; arrangeColumn skips
		// only the fullscreen window itself.
	}

	arrangeTiling(ws)
	arrangeFloating(ws, outputRect)
}

// workspaceInnerRect subtracts outer gaps and the smart-gap policy from the
// output's rectangle, clamping so a MinSaneSize area always survives (P8).
func workspaceInnerRect(ws *Workspace, outputRect Rect) Rect {
	g := ws.Gaps
	top, left, right, bottom := g.OuterTop, g.OuterLeft, g.OuterRight, g.OuterBottom

	single := hasSingleVisibleContainer(ws)
	switch g.Smart {
	case SmartGapsOn:
		if single {
			top, left, right, bottom = 0, 0, 0, 0
		}
	case SmartGapsInverse:
		if !single {
			top, left, right, bottom = 0, 0, 0, 0
		}
	}

	rect := Rect{
		X: outputRect.X + left,
		Y: outputRect.Y + top,
		W: outputRect.W - left - right,
		H: outputRect.H - top - bottom,
	}
	return clampMinSane(rect, outputRect)
}

// hasSingleVisibleContainer implements the resolved "single visible
// container" definition (SPEC_FULL.md §9): the hayward lineage counts
// tiling columns plus non-sticky floating windows together at the
// workspace level, not per-child.
func hasSingleVisibleContainer(ws *Workspace) bool {
	count := len(ws.Pending.Tiling)
	for _, w := range ws.Pending.Floating {
		if !w.Pending.Sticky {
			count++
		}
	}
	return count == 1
}

func clampMinSane(rect, outputRect Rect) Rect {
	if rect.W < MinSaneSize {
		excess := MinSaneSize - rect.W
		rect.X -= excess / 2
		rect.W = MinSaneSize
	}
	if rect.H < MinSaneSize {
		excess := MinSaneSize - rect.H
		rect.Y -= excess / 2
		rect.H = MinSaneSize
	}
	rect.X = clamp(rect.X, outputRect.X, outputRect.X+outputRect.W-rect.W)
	rect.Y = clamp(rect.Y, outputRect.Y, outputRect.Y+outputRect.H-rect.H)
	return rect
}

// arrangeTiling normalizes column width fractions and lays out each column's share of the workspace's long axis, then
// recurses into each column's children.
func arrangeTiling(ws *Workspace) {
	cols := ws.Pending.Tiling
	if len(cols) == 0 {
		return
	}
	normalizeWidthFractions(cols)

	rect := ws.Pending.Rect
	x := rect.X
	for _, c := range cols {
		w := rect.W * c.Pending.WidthFraction
		c.Pending.Rect = Rect{X: x, Y: rect.Y, W: w, H: rect.H}
		x += w
		arrangeColumn(c)
	}
}

// normalizeWidthFractions gives any zero-fraction column an equal slice of
// the remaining space, then rescales every fraction so the set sums to 1
// (spec §4.2). newColumn starts columns at 1, not 0, so a column inserted
// beside columns whose fractions already sum to 1 ends up with half the
// width rather than an equal share.
func normalizeWidthFractions(cols []*Column) {
	var fixedSum float64
	var zeroCount int
	for _, c := range cols {
		if c.Pending.WidthFraction <= 0 {
			zeroCount++
		} else {
			fixedSum += c.Pending.WidthFraction
		}
	}
	if zeroCount > 0 {
		remaining := 1 - fixedSum
		if remaining < 0 {
			remaining = 0
		}
		share := remaining / float64(zeroCount)
		for _, c := range cols {
			if c.Pending.WidthFraction <= 0 {
				c.Pending.WidthFraction = share
			}
		}
	}
	var total float64
	for _, c := range cols {
		total += c.Pending.WidthFraction
	}
	if total <= 0 {
		equal := 1 / float64(len(cols))
		for _, c := range cols {
			c.Pending.WidthFraction = equal
		}
		return
	}
	for _, c := range cols {
		c.Pending.WidthFraction /= total
	}
}

func arrangeColumn(c *Column) {
	children := c.Pending.Children
	if len(children) == 0 {
		return
	}
	rect := c.Pending.Rect

	ws := c.Pending.Workspace
	policyMask := hideEdgeBordersMask(ws)

	switch c.Pending.Layout {
	case LayoutStacked:
		const titlebarHeight = 24.0
		reserved := titlebarHeight * float64(len(children))
		content := Rect{X: rect.X, Y: rect.Y + reserved, W: rect.W, H: rect.H - reserved}
		for _, w := range children {
			if w.Pending.Fullscreen {
				continue
			}
			w.Pending.Rect = content
			arrangeWindowContent(w, ws, policyMask)
		}
	default: // LayoutSplit
		normalizeHeightFractions(children)
		y := rect.Y
		for _, w := range children {
			h := rect.H * w.Pending.HeightFrac
			if w.Pending.Fullscreen {
				y += h
				continue
			}
			w.Pending.Rect = Rect{X: rect.X, Y: y, W: rect.W, H: h}
			y += h
			arrangeWindowContent(w, ws, policyMask)
		}
	}
}

func normalizeHeightFractions(children []*Window) {
	var total float64
	for _, w := range children {
		total += w.Pending.HeightFrac
	}
	if total <= 0 {
		equal := 1 / float64(len(children))
		for _, w := range children {
			w.Pending.HeightFrac = equal
		}
		return
	}
	for _, w := range children {
		w.Pending.HeightFrac /= total
	}
}

// arrangeWindowContent derives ContentRect from Rect for a window, using its
// border kind's insets and suppressing the insets on any side that both
// touches ws's usable rectangle edge and is masked out by ws's
// HideEdgeBorders policy (spec §6).
func arrangeWindowContent(w *Window, ws *Workspace, policyMask edgeMask) {
	l, t, r, b := w.Pending.Border.ContentInsets(w.Pending.BorderWidth, 24.0)
	rect := w.Pending.Rect

	if ws != nil && policyMask != 0 {
		touching := touchesEdges(rect, ws.Pending.Rect) & policyMask
		if touching&edgeLeft != 0 {
			l = 0
		}
		if touching&edgeTop != 0 {
			t = 0
		}
		if touching&edgeRight != 0 {
			r = 0
		}
		if touching&edgeBottom != 0 {
			b = 0
		}
	}

	w.Pending.ContentRect = Rect{
		X: rect.X + l,
		Y: rect.Y + t,
		W: rect.W - l - r,
		H: rect.H - t - b,
	}
}

// touchesEdges reports which sides of rect coincide with the corresponding
// side of outer, within a sub-pixel tolerance.
func touchesEdges(rect, outer Rect) edgeMask {
	const eps = 0.5
	var m edgeMask
	if rect.X <= outer.X+eps {
		m |= edgeLeft
	}
	if rect.Y <= outer.Y+eps {
		m |= edgeTop
	}
	if rect.X+rect.W >= outer.X+outer.W-eps {
		m |= edgeRight
	}
	if rect.Y+rect.H >= outer.Y+outer.H-eps {
		m |= edgeBottom
	}
	return m
}

// hideEdgeBordersMask returns which border sides ws's HideEdgeBorders policy
// suppresses, independent of whether any particular window actually touches
// that edge (spec §6).
func hideEdgeBordersMask(ws *Workspace) edgeMask {
	if ws == nil {
		return 0
	}
	switch ws.HideEdgeBorders {
	case HideEdgeBordersVertical:
		return edgeLeft | edgeRight
	case HideEdgeBordersHorizontal:
		return edgeTop | edgeBottom
	case HideEdgeBordersBoth:
		return edgeLeft | edgeTop | edgeRight | edgeBottom
	case HideEdgeBordersSmart:
		if hasSingleVisibleContainer(ws) && !ws.Gaps.hasAnyGap() {
			return edgeLeft | edgeTop | edgeRight | edgeBottom
		}
		return 0
	case HideEdgeBordersSmartNoGaps:
		if hasSingleVisibleContainer(ws) {
			return edgeLeft | edgeTop | edgeRight | edgeBottom
		}
		return 0
	default:
		return 0
	}
}

// arrangeFloating clamps each floating window's pending size to its
// configured (or automatic) minimum and the current output's maximum, then
// derives its content rectangle.
func arrangeFloating(ws *Workspace, outputRect Rect) {
	policyMask := hideEdgeBordersMask(ws)
	for _, w := range ws.Pending.Floating {
		if w.Pending.Fullscreen {
			continue
		}
		minW, minH := w.MinW, w.MinH
		if minW <= 0 {
			minW = DefaultFloatingMinW
		}
		if minH <= 0 {
			minH = DefaultFloatingMinH
		}
		rect := w.Pending.Rect
		rect.W = clamp(rect.W, minW, outputRect.W)
		rect.H = clamp(rect.H, minH, outputRect.H)
		w.Pending.Rect = rect
		arrangeWindowContent(w, ws, policyMask)
	}
}
