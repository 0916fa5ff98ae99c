package tree

import "github.com/bwhmather/hayward/internal/id"

// Column is a vertical run of tiling windows sharing one horizontal slot in
// a workspace (spec §3.4). In LayoutSplit mode children are stacked by
// HeightFrac; in LayoutStacked mode only ActiveChild is shown full-height.
type Column struct {
	id.Node

	Pending ColumnState
	Current ColumnState
}

func newColumn(ws *Workspace) *Column {
	c := &Column{}
	c.Node.Init(id.KindColumn)
	c.Pending.Workspace = ws
	c.Pending.WidthFraction = 1
	return c
}

// AddChild appends w to the end of the column's children (column_add_child
// in original_source) and makes it the active child.
func (c *Column) AddChild(w *Window) {
	c.Pending.Children = append(c.Pending.Children, w)
	c.Pending.ActiveChild = w
	c.Node.SetDirty()
}

// InsertChild inserts w at index i (column_insert_child in original_source).
func (c *Column) InsertChild(w *Window, i int) {
	if i < 0 {
		i = 0
	}
	if i > len(c.Pending.Children) {
		i = len(c.Pending.Children)
	}
	children := append(c.Pending.Children, nil)
	copy(children[i+1:], children[i:])
	children[i] = w
	c.Pending.Children = children
	if c.Pending.ActiveChild == nil {
		c.Pending.ActiveChild = w
	}
	c.Node.SetDirty()
}

// RemoveChild detaches w from the column. Callers are responsible for
// reattaching it elsewhere or destroying it.
func (c *Column) RemoveChild(w *Window) {
	idx := -1
	for i, child := range c.Pending.Children {
		if child == w {
			idx = i
			c.Pending.Children = append(c.Pending.Children[:i], c.Pending.Children[i+1:]...)
			break
		}
	}
	if c.Pending.ActiveChild == w {
		c.Pending.ActiveChild = nil
		if n := len(c.Pending.Children); n > 0 {
			if idx >= n {
				idx = n - 1
			}
			if idx < 0 {
				idx = 0
			}
			c.Pending.ActiveChild = c.Pending.Children[idx]
		}
	}
	c.Node.SetDirty()
}

// IsEmpty reports whether the column has no children left and should be
// destroyed.
func (c *Column) IsEmpty() bool {
	return len(c.Pending.Children) == 0
}

// SetLayout switches between split and stacked child display.
func (c *Column) SetLayout(l ColumnLayout) {
	c.Pending.Layout = l
	c.Node.SetDirty()
}

// SetWidthFraction sets this column's share of the workspace's tiling
// width, to be renormalized across siblings by the caller (spec §4.2).
func (c *Column) SetWidthFraction(f float64) {
	c.Pending.WidthFraction = f
	c.Node.SetDirty()
}

// SiblingIndex returns this column's position among its workspace's tiling
// columns, or -1 if detached.
func (c *Column) SiblingIndex() int {
	ws := c.Pending.Workspace
	if ws == nil {
		return -1
	}
	for i, sib := range ws.Pending.Tiling {
		if sib == c {
			return i
		}
	}
	return -1
}
