// Package txn implements the transaction engine: the single mechanism that
// promotes tree entities' pending state to current (spec §4.3). It is the
// only code in the module allowed to write *.Current fields or destroy tree
// entities.
package txn

import (
	"github.com/bwhmather/hayward/internal/id"
	"github.com/bwhmather/hayward/internal/tree"
)

// instruction is one record per dirty node per transaction (spec §4.3). The
// Entity/*State pair mirrors the C union of per-kind state structs; only
// the field matching Entity's concrete type is meaningful.
type instruction struct {
	nodeID uint64
	entity any

	rootState      tree.RootState
	outputState    tree.OutputState
	workspaceState tree.WorkspaceState
	columnState    tree.ColumnState
	windowState    tree.WindowState

	serial        uint32
	serverRequest bool
	waiting       bool
}

func (i *instruction) NodeID() uint64 { return i.nodeID }

var _ id.Instruction = (*instruction)(nil)

// copyState snapshots the entity's current pending state into the
// instruction (copy_*_state in original_source). Child-list fields use each
// State's Clone() so later pending mutation cannot retroactively change
// what this transaction commits (S1).
func (inst *instruction) copyState(e any) {
	switch v := e.(type) {
	case *tree.Root:
		inst.rootState = v.Pending.Clone()
	case *tree.Output:
		inst.outputState = v.Pending
	case *tree.Workspace:
		inst.workspaceState = v.Pending.Clone()
	case *tree.Column:
		inst.columnState = v.Pending.Clone()
	case *tree.Window:
		inst.windowState = v.Pending.Clone()
	}
}
