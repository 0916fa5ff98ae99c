package txn

import (
	"testing"
	"time"

	"github.com/bwhmather/hayward/internal/tree"
	"github.com/bwhmather/hayward/internal/wlcore"
	"github.com/bwhmather/hayward/internal/wlcore/stub"
)

// fakeScheduler captures the timeout callback instead of arming a real
// timer, so tests can fire "transaction timeout" deterministically.
type fakeScheduler struct {
	fn func()
}

func (f *fakeScheduler) After(d time.Duration, fn func()) func() {
	f.fn = fn
	return func() { f.fn = nil }
}

func (f *fakeScheduler) fire() {
	if f.fn == nil {
		return
	}
	fn := f.fn
	f.fn = nil
	fn()
}

func setupEngine(t *testing.T) (*tree.Root, *tree.Workspace, *tree.Window, *fakeScheduler, *Engine) {
	t.Helper()
	root := tree.NewRoot()
	out := root.AddOutput(stub.NewOutput("test", wlcore.Rect{W: 800, H: 600}))
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)

	w := tree.NewWindow(stub.NewSurface(wlcore.Rect{W: 0, H: 0}, false))
	col := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	tree.ColumnAddChild(col, w)
	w.SetBorder(tree.BorderNormal, 2)

	tree.Arrange(root)

	sched := &fakeScheduler{}
	e := NewEngine(root, sched, Debug{})
	return root, ws, w, sched, e
}

// TestCommitBlocksApplyUntilAcked is P3 (atomicity): a window whose client
// hasn't acked its resize must keep showing its pre-transaction Current
// geometry until the timeout (or ack) promotes it — never a partial mix.
func TestCommitBlocksApplyUntilAcked(t *testing.T) {
	_, _, w, _, e := setupEngine(t)
	before := w.Current.Rect

	e.CommitDirty(true)

	if w.Current.Rect != before {
		t.Fatalf("applied before ack/timeout: Current.Rect = %v, want unchanged %v", w.Current.Rect, before)
	}
	if e.queued == nil || e.queued.numWaiting == 0 {
		t.Fatalf("want a queued transaction still waiting on a client ack")
	}
}

// TestTransactionTimeoutPromotesCurrent is spec §8 scenario 4: a client that
// never acks still gets its geometry promoted once txn_timeout_ms elapses,
// and the engine accepts further commits afterwards.
func TestTransactionTimeoutPromotesCurrent(t *testing.T) {
	_, ws, w, sched, e := setupEngine(t)
	want := w.Pending.Rect

	e.CommitDirty(true)
	sched.fire()

	if w.Current.Rect != want {
		t.Fatalf("after timeout, Current.Rect = %v, want %v", w.Current.Rect, want)
	}
	if e.queued != nil {
		t.Fatalf("want no transaction left queued after timeout promotion")
	}

	// A subsequent commit must proceed normally rather than staying wedged.
	w.Pending.Rect.H += 10
	w.Node.SetDirty()
	ws.Node.SetDirty()
	e.CommitDirty(true)
	sched.fire()
	if w.Current.Rect.H != want.H+10 {
		t.Fatalf("follow-up commit did not apply: got H=%v, want %v", w.Current.Rect.H, want.H+10)
	}
}

// TestCoalescing is P6: repeated CommitDirty calls while a transaction is
// still in flight (waiting on a client ack) must never grow past the
// pending+queued pair — later mutations coalesce into the still-pending
// transaction rather than queuing a third.
func TestCoalescing(t *testing.T) {
	_, ws, w, sched, e := setupEngine(t)

	e.CommitDirty(true) // now queued, waiting on ack
	if e.queued == nil {
		t.Fatalf("want a queued transaction")
	}

	for i := 0; i < 5; i++ {
		w.Pending.Rect.H += 1
		w.Node.SetDirty()
		ws.Node.SetDirty()
		e.CommitDirty(true)

		if e.queued == nil {
			t.Fatalf("iteration %d: lost the in-flight queued transaction", i)
		}
	}

	finalH := w.Pending.Rect.H

	// However many commits piled up while the first was in flight, they
	// must resolve in at most two timeout rounds (the in-flight
	// transaction, then whatever chained after it) rather than one per
	// CommitDirty call.
	for rounds := 0; e.queued != nil && rounds < 2; rounds++ {
		sched.fire()
	}
	if e.queued != nil {
		t.Fatalf("transaction still queued after two timeout rounds; coalescing did not bound the chain")
	}
	if w.Current.Rect.H != finalH {
		t.Fatalf("want all coalesced mutations to converge to the latest pending value %v, got %v", finalH, w.Current.Rect.H)
	}
}

// TestWindowDestroyLifecycle is P4: a window destroyed while still
// referenced by an in-flight transaction keeps destroying=true and
// ntxnrefs>0 until the engine's destroy step frees it, at which point
// ntxnrefs must be 0 and it must be unreachable from the tree.
func TestWindowDestroyLifecycle(t *testing.T) {
	_, ws, w, sched, e := setupEngine(t)

	e.CommitDirty(true) // queued, waiting on the client's ack
	if w.TxnRefs() == 0 {
		t.Fatalf("want the in-flight instruction to hold a reference")
	}

	tree.DestroyWindow(w)
	if !w.Destroying() {
		t.Fatalf("want window marked destroying")
	}
	if w.TxnRefs() == 0 {
		t.Fatalf("want ntxnrefs > 0 while the outstanding transaction still references the destroying window")
	}
	for _, c := range ws.Pending.Tiling {
		for _, child := range c.Pending.Children {
			if child == w {
				t.Fatalf("want destroyed window already unlinked from its column")
			}
		}
	}

	sched.fire() // times out the outstanding transaction, triggering apply+destroy

	if w.TxnRefs() != 0 {
		t.Fatalf("want ntxnrefs = 0 once the destroying window's transaction is freed, got %d", w.TxnRefs())
	}
}
