package txn

import (
	"time"

	"github.com/bwhmather/hayward/internal/id"
	"github.com/bwhmather/hayward/internal/log"
	"github.com/bwhmather/hayward/internal/tree"
)

// Scheduler lets the engine start and cancel the single timeout timer
// without depending on internal/loop directly, so it can be driven by
// either the real epoll loop or a fake clock in tests.
type Scheduler interface {
	After(d time.Duration, f func()) (cancel func())
}

// transaction is one in-flight batch of instructions (spec §4.3). At most
// two exist at a time: the one currently applying ("queued") and the one
// still accumulating ("pending").
type transaction struct {
	instructions []*instruction
	numWaiting   int
	numConfigs   int
	commitTime   time.Time
	cancelTimer  func()
}

// Debug holds the three debug knobs named in spec §4.3.
type Debug struct {
	NoAtomic   bool
	TxnWait    bool
	TxnTimings bool
}

// Engine is the sole code path allowed to promote a tree's pending state to
// current, and the sole destructor of tree entities (spec §4.3, N1).
type Engine struct {
	root      *tree.Root
	scheduler Scheduler
	debug     Debug

	// TxnTimeoutMs is the per-transaction client-reply deadline (default
	// 200ms per spec §4.3; configurable via internal/config).
	TxnTimeoutMs int

	pending *transaction
	queued  *transaction

	byNode map[uint64]*instruction
}

func NewEngine(root *tree.Root, scheduler Scheduler, debug Debug) *Engine {
	return &Engine{
		root:         root,
		scheduler:    scheduler,
		debug:        debug,
		TxnTimeoutMs: 200,
		byNode:       make(map[uint64]*instruction),
	}
}

// CommitDirty is the accumulate step (spec §4.3 step 1): it walks the
// tree's dirty nodes, finds-or-creates an instruction on the pending
// transaction for each, and clears the dirty bit. serverRequest
// distinguishes a server-initiated layout change from one merely echoing a
// client-initiated commit (transaction_commit_dirty vs
// transaction_commit_dirty_client in original_source).
func (e *Engine) CommitDirty(serverRequest bool) {
	dirty := e.root.CollectDirty()
	if len(dirty) == 0 {
		return
	}
	if e.pending == nil {
		e.pending = &transaction{}
	}
	for _, d := range dirty {
		e.addNode(e.pending, d, serverRequest)
		d.Handle.ClearDirty()
	}
	e.commitPending()
}

func (e *Engine) addNode(t *transaction, d tree.DirtyNode, serverRequest bool) {
	var inst *instruction
	if d.Handle.TxnRefs() > 0 {
		inst = e.byNode[d.Handle.ID()]
	}
	if inst == nil {
		inst = &instruction{nodeID: d.Handle.ID(), entity: d.Entity, serverRequest: serverRequest}
		t.instructions = append(t.instructions, inst)
		e.byNode[d.Handle.ID()] = inst
		d.Handle.IncRef()
	} else if serverRequest {
		inst.serverRequest = true
	}
	inst.copyState(d.Entity)
}

// commitPending promotes the pending transaction to queued, if none is
// already queued, and begins committing it.
func (e *Engine) commitPending() {
	if e.queued != nil {
		return
	}
	if e.pending == nil {
		return
	}
	t := e.pending
	e.pending = nil
	e.queued = t
	e.commit(t)
	e.progress()
}

// commit is the commit step (spec §4.3 step 3): send resize requests to
// views whose content rectangle changed, save buffer snapshots, arm the
// timeout timer.
func (e *Engine) commit(t *transaction) {
	log.Debugf("txn: committing with %d instructions", len(t.instructions))
	t.numWaiting = 0
	now := time.Now()
	for _, inst := range t.instructions {
		w, ok := inst.entity.(*tree.Window)
		if !ok {
			continue
		}
		hidden := e.isHidden(w)
		if e.shouldConfigure(w, inst, hidden) {
			inst.serial = w.View.Configure(inst.windowState.ContentRect)
			if !hidden {
				inst.waiting = true
				t.numWaiting++
			}
			w.View.SendFrameDone(now)
		}
		if !hidden && !w.HasSavedBuffer() {
			if buf := w.View.SaveBuffers(); buf != nil {
				w.SetSavedBuffer(buf, inst.windowState.Rect)
			}
		}
	}
	t.numConfigs = t.numWaiting
	if e.debug.TxnTimings {
		t.commitTime = now
	}
	if e.debug.NoAtomic {
		t.numWaiting = 0
	} else if e.debug.TxnWait {
		t.numWaiting += 1 << 20
	}

	if t.numWaiting > 0 {
		timeout := time.Duration(e.TxnTimeoutMs) * time.Millisecond
		t.cancelTimer = e.scheduler.After(timeout, func() { e.handleTimeout(t) })
	}
}

// shouldConfigure mirrors should_configure in original_source, generalized
// by SPEC_FULL.md §4 supplement to any X11-style view's truncated-position
// rule rather than XWayland specifically.
func (e *Engine) shouldConfigure(w *tree.Window, inst *instruction, hidden bool) bool {
	if w.Destroying() {
		return false
	}
	if !inst.serverRequest {
		return false
	}
	cur := w.Current.ContentRect
	next := inst.windowState.ContentRect
	if w.View.IntegerPositioned() {
		if int(cur.X) != int(next.X) || int(cur.Y) != int(next.Y) {
			return true
		}
	}
	return cur.W != next.W || cur.H != next.H
}

// isHidden reports whether w is currently invisible: detached, or attached
// to a workspace that is not shown on any output.
func (e *Engine) isHidden(w *tree.Window) bool {
	if w.Destroying() {
		return true
	}
	ws := w.Pending.Workspace
	if ws == nil {
		return true
	}
	return !e.root.IsWorkspaceVisible(ws)
}

func (e *Engine) handleTimeout(t *transaction) {
	log.Debugf("txn: timed out with %d still waiting", t.numWaiting)
	t.numWaiting = 0
	e.progress()
}

// progress is transaction_progress: apply the queued transaction once
// nothing is waiting, then chain into whatever accumulated meanwhile (spec
// §4.3 step 7).
func (e *Engine) progress() {
	if e.queued == nil || e.queued.numWaiting > 0 {
		return
	}
	t := e.queued
	e.apply(t)
	e.destroy(t)
	e.queued = nil

	if e.pending != nil {
		e.commitPending()
	}
}

// apply is the apply step (spec §4.3 step 5): swap each instruction's
// state into the entity's current.
func (e *Engine) apply(t *transaction) {
	log.Debugf("txn: applying")
	if e.debug.TxnTimings {
		ms := float64(time.Since(t.commitTime)) / float64(time.Millisecond)
		log.Debugf("txn: %.1fms waiting (%.1f frames at 60Hz)", ms, ms/(1000.0/60))
	}
	for _, inst := range t.instructions {
		switch v := inst.entity.(type) {
		case *tree.Root:
			v.Current = inst.rootState
		case *tree.Output:
			v.Current = inst.outputState
		case *tree.Workspace:
			v.Current = inst.workspaceState
		case *tree.Column:
			v.Current = inst.columnState
		case *tree.Window:
			applyWindow(e.root, v, inst)
		}
	}
}

// applyWindow is apply_window_state: damage the old location, swap state,
// release the saved buffer unless the window is being destroyed and still
// referenced elsewhere, re-center the surface within its new content
// rectangle, damage the new location, and rediscover which outputs it now
// intersects (original_source/hayward/desktop/transaction.c
// apply_window_state, spec §4.3 apply step).
func applyWindow(root *tree.Root, w *tree.Window, inst *instruction) {
	old := w.Current.Rect
	root.Damage(old)

	w.Current = inst.windowState
	if w.HasSavedBuffer() {
		if !w.Destroying() || w.TxnRefs() == 1 {
			w.ClearSavedBuffer()
		}
	}

	if !w.Destroying() {
		w.RecenterSurface()
		w.DiscoverOutputs(root.Outputs)
	}
	root.Damage(w.Current.Rect)
}

// destroy is the destroy step (spec §4.3 step 6): free every instruction,
// decrementing ntxnrefs, freeing entities whose refcount reaches zero while
// destroying (N1).
func (e *Engine) destroy(t *transaction) {
	if t.cancelTimer != nil {
		t.cancelTimer()
	}
	for _, inst := range t.instructions {
		handle, ok := inst.entity.(id.NodeHandle)
		if !ok {
			continue
		}
		handle.ClearInstructionIf(inst)
		delete(e.byNode, inst.nodeID)
		if handle.DecRef() {
			// The concrete entity's owning package (tree) is responsible
			// for unlinking it from any remaining index; by the time we
			// get here it has already been detached from its parent.
			log.Debugf("txn: destroying node %d", inst.nodeID)
		}
	}
}

// NotifyReadyBySerial matches notify_ready_by_serial: a client acked a
// specific configure serial.
func (e *Engine) NotifyReadyBySerial(w *tree.Window, serial uint32) {
	inst := e.byNode[w.ID()]
	if inst == nil || inst.serial != serial {
		return
	}
	e.setInstructionReady(inst)
}

// NotifyReadyByGeometry matches notify_ready_by_geometry: a client without
// serial tracking (e.g. an X11 view) acked by reaching a geometry.
func (e *Engine) NotifyReadyByGeometry(w *tree.Window, rect tree.Rect) {
	inst := e.byNode[w.ID()]
	if inst == nil {
		return
	}
	want := inst.windowState.ContentRect
	if int(want.X) != int(rect.X) || int(want.Y) != int(rect.Y) || want.W != rect.W || want.H != rect.H {
		return
	}
	e.setInstructionReady(inst)
}

func (e *Engine) setInstructionReady(inst *instruction) {
	if !inst.waiting || e.queued == nil {
		return
	}
	if e.queued.numWaiting > 0 {
		e.queued.numWaiting--
		if e.queued.numWaiting == 0 && e.queued.cancelTimer != nil {
			e.queued.cancelTimer()
		}
	}
	inst.waiting = false
	e.progress()
}
