package tree

import "github.com/bwhmather/hayward/internal/id"

// DirtyNode pairs a node's generic handle with its concrete entity, so a
// caller outside this package (internal/txn) can type-switch on Entity to
// copy kind-specific state without tree needing to know about txn.
type DirtyNode struct {
	Handle id.NodeHandle
	Entity any
}

// CollectDirty walks the whole tree under r and returns every node whose
// dirty bit is set: root first, then every output, then each workspace
// followed by its columns, their children and its floating windows (mirrors
// server.dirty_nodes in original_source, which is an append-ordered list
// rather than a walk, but our callers only need the set, not call order).
func (r *Root) CollectDirty() []DirtyNode {
	var out []DirtyNode
	if r.Dirty() {
		out = append(out, DirtyNode{Handle: &r.Node, Entity: r})
	}
	for _, o := range r.Outputs {
		if o.Dirty() {
			out = append(out, DirtyNode{Handle: &o.Node, Entity: o})
		}
	}
	for _, ws := range r.Pending.Workspaces {
		if ws.Dirty() {
			out = append(out, DirtyNode{Handle: &ws.Node, Entity: ws})
		}
		for _, c := range ws.Pending.Tiling {
			if c.Dirty() {
				out = append(out, DirtyNode{Handle: &c.Node, Entity: c})
			}
			for _, w := range c.Pending.Children {
				if w.Dirty() {
					out = append(out, DirtyNode{Handle: &w.Node, Entity: w})
				}
			}
		}
		for _, w := range ws.Pending.Floating {
			if w.Dirty() {
				out = append(out, DirtyNode{Handle: &w.Node, Entity: w})
			}
		}
	}
	return out
}
