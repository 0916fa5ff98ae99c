// Package id implements the node-identity primitives shared by every tree
// entity: stable 64-bit ids, a typed kind tag, the dirty/destroying bits and
// transaction refcount, and a one-shot destroy signal.
package id

import "sync/atomic"

// Kind tags which concrete entity a Node backs.
type Kind int

const (
	KindRoot Kind = iota
	KindOutput
	KindWorkspace
	KindColumn
	KindWindow
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindOutput:
		return "output"
	case KindWorkspace:
		return "workspace"
	case KindColumn:
		return "column"
	case KindWindow:
		return "window"
	default:
		return "unknown"
	}
}

var nextID atomic.Uint64

// New allocates a process-unique id. Zero is never returned so it can serve
// as a null/absent sentinel.
func New() uint64 {
	return nextID.Add(1)
}

// Instruction is implemented by *txn.Instruction; declared here only so Node
// can hold a back-pointer without internal/id importing internal/txn.
type Instruction interface {
	NodeID() uint64
}

// Node is embedded by every tree entity (Root, Output, Workspace, Column,
// Window). It owns identity, dirty/destroy bookkeeping, and the destroy
// signal (N1, N2 in the spec).
type Node struct {
	id   uint64
	kind Kind

	dirty      bool
	destroying bool
	ntxnrefs   int

	instruction Instruction

	destroySignal Signal[uint64]
}

// Init must be called exactly once, by the owning entity's constructor.
func (n *Node) Init(kind Kind) {
	n.id = New()
	n.kind = kind
}

func (n *Node) ID() uint64 { return n.id }
func (n *Node) Kind() Kind { return n.kind }

func (n *Node) Dirty() bool      { return n.dirty }
func (n *Node) Destroying() bool { return n.destroying }
func (n *Node) TxnRefs() int     { return n.ntxnrefs }

// SetDirty marks the node as needing to appear in the next commit (N2). It
// is idempotent and just flips the bit; there is no separate dirty list,
// the commit step finds dirty nodes by walking the tree.
func (n *Node) SetDirty() { n.dirty = true }

// ClearDirty is called by the transaction engine's accumulate step.
func (n *Node) ClearDirty() { n.dirty = false }

// BeginDestroy marks the node destroying. It does not free anything: per N1
// the transaction engine is the sole destructor, once ntxnrefs reaches zero.
func (n *Node) BeginDestroy() {
	if n.destroying {
		return
	}
	n.destroying = true
	n.destroySignal.Emit(n.id)
}

// OnDestroy subscribes to the one-shot destroy signal. Returns an unsubscribe
// function.
func (n *Node) OnDestroy(f func(id uint64)) func() {
	return n.destroySignal.Connect(f)
}

// IncRef/DecRef track ntxnrefs as instructions referencing this node are
// created/destroyed by the transaction engine.
func (n *Node) IncRef() { n.ntxnrefs++ }

// DecRef returns true if, after decrementing, the node is both destroying and
// unreferenced — i.e. it is now safe, and the caller's responsibility, to
// free the backing entity (N1).
func (n *Node) DecRef() bool {
	n.ntxnrefs--
	return n.destroying && n.ntxnrefs == 0
}

func (n *Node) Instruction() Instruction        { return n.instruction }
func (n *Node) SetInstruction(i Instruction)    { n.instruction = i }
func (n *Node) ClearInstructionIf(i Instruction) {
	if n.instruction == i {
		n.instruction = nil
	}
}

// NodeHandle is the subset of Node's promoted methods the transaction
// engine needs to track a dirty node generically, regardless of which
// concrete entity embeds it. Every *Root/*Output/*Workspace/*Column/*Window
// satisfies this automatically via its embedded Node.
type NodeHandle interface {
	ID() uint64
	Kind() Kind
	Dirty() bool
	ClearDirty()
	Destroying() bool
	IncRef()
	DecRef() bool
	Instruction() Instruction
	SetInstruction(Instruction)
	ClearInstructionIf(Instruction)
}
