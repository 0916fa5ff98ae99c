package tree_test

import (
	"testing"

	"github.com/bwhmather/hayward/internal/tree"
	"github.com/bwhmather/hayward/internal/wlcore"
	"github.com/bwhmather/hayward/internal/wlcore/stub"
)

func newTestOutput(t *testing.T, r *tree.Root, rect wlcore.Rect) *tree.Output {
	t.Helper()
	return r.AddOutput(stub.NewOutput("test", rect))
}

func newTestWindow() *tree.Window {
	return tree.NewWindow(stub.NewSurface(wlcore.Rect{W: 100, H: 100}, false))
}

// ownership asserts P1: a window is either parented by a column or listed on
// its workspace's floating layer, never both and never neither.
func ownership(t *testing.T, w *tree.Window, ws *tree.Workspace) {
	t.Helper()
	tiling := w.Pending.Parent != nil
	var floating bool
	for _, f := range ws.Pending.Floating {
		if f == w {
			floating = true
		}
	}
	if tiling == floating {
		t.Fatalf("window ownership violated: tiling=%v floating=%v", tiling, floating)
	}
}

// TestOpenInSplit is spec §8 scenario 1: three windows mapped sequentially
// into an empty workspace end up in one column, in order, with the last one
// as the column's active child, each getting an equal height share.
func TestOpenInSplit(t *testing.T) {
	root := tree.NewRoot()
	out := newTestOutput(t, root, wlcore.Rect{W: 1200, H: 900})
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)

	a, b, c := newTestWindow(), newTestWindow(), newTestWindow()
	col := tree.WorkspaceInsertTiling(ws, out, nil, len(ws.Pending.Tiling))
	tree.ColumnAddChild(col, a)
	tree.ColumnAddChild(col, b)
	tree.ColumnAddChild(col, c)

	if len(ws.Pending.Tiling) != 1 {
		t.Fatalf("want 1 column, got %d", len(ws.Pending.Tiling))
	}
	got := col.Pending.Children
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("want order [A,B,C], got %v", got)
	}
	if col.Pending.ActiveChild != c {
		t.Fatalf("want active_child = C")
	}

	tree.Arrange(root)
	wantH := ws.Pending.Rect.H / 3
	for i, w := range got {
		if diff := w.Pending.Rect.H - wantH; diff > 0.001 || diff < -0.001 {
			t.Errorf("window %d height = %v, want %v", i, w.Pending.Rect.H, wantH)
		}
	}
}

// TestFloatingRoundTrip is spec §8 scenario 2.
func TestFloatingRoundTrip(t *testing.T) {
	root := tree.NewRoot()
	out := newTestOutput(t, root, wlcore.Rect{W: 1200, H: 900})
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)

	a := newTestWindow()
	col := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	tree.ColumnAddChild(col, a)
	ownership(t, a, ws)

	a.SetBorder(tree.BorderNormal, 2)
	tree.WindowSetFloating(a, true)
	ownership(t, a, ws)

	if col.IsEmpty() {
		tree.WorkspaceRemoveTiling(ws, col)
	}
	if len(ws.Pending.Tiling) != 0 {
		t.Fatalf("want column freed once empty, still have %d", len(ws.Pending.Tiling))
	}
	found := false
	for _, f := range ws.Pending.Floating {
		if f == a {
			found = true
		}
	}
	if !found {
		t.Fatalf("want A appended to workspace.floating")
	}

	tree.Arrange(root)
	wantW := 0.5 * ws.Pending.Rect.W
	wantH := 0.75 * ws.Pending.Rect.H
	if a.Pending.Rect.W > wantW+0.001 {
		t.Errorf("floating width %v exceeds 0.5x workspace width %v", a.Pending.Rect.W, wantW)
	}
	if a.Pending.Rect.H > wantH+0.001 {
		t.Errorf("floating height %v exceeds 0.75x workspace height %v", a.Pending.Rect.H, wantH)
	}
	if a.Pending.Rect.W < tree.DefaultFloatingMinW {
		t.Errorf("floating width %v below min %v", a.Pending.Rect.W, tree.DefaultFloatingMinW)
	}

	// Setting back to tiled must reinsert into the workspace's most
	// recently active column rather than opening a fresh one.
	col2 := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	b := newTestWindow()
	tree.ColumnAddChild(col2, b)
	ws.Pending.ActiveColumn = col2

	tree.WindowSetFloating(a, false)
	ownership(t, a, ws)
	if len(ws.Pending.Tiling) != 1 {
		t.Fatalf("want reinsertion into existing column, got %d columns", len(ws.Pending.Tiling))
	}
	if a.Pending.Parent != col2 {
		t.Fatalf("want A reinserted into the workspace's active column, got parent %v want %v", a.Pending.Parent, col2)
	}
}

// TestFullscreenHidesSiblings is spec §8 scenario 3.
func TestFullscreenHidesSiblings(t *testing.T) {
	root := tree.NewRoot()
	out := newTestOutput(t, root, wlcore.Rect{W: 1200, H: 900})
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)

	a, b := newTestWindow(), newTestWindow()
	col := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	tree.ColumnAddChild(col, a)
	tree.ColumnAddChild(col, b)

	tree.WindowSetFullscreen(a, true, nil)
	if ws.Pending.Fullscreen != a {
		t.Fatalf("want workspace.fullscreen = A")
	}

	tree.Arrange(root)
	outRect := out.Pending.Rect
	if a.Pending.Rect != outRect {
		t.Fatalf("fullscreen window rect = %v, want full output rect %v", a.Pending.Rect, outRect)
	}
	if a.Pending.ContentRect != outRect {
		t.Fatalf("fullscreen window content rect = %v, want %v (no borders)", a.Pending.ContentRect, outRect)
	}

	tree.WindowSetFullscreen(a, false, nil)
	if ws.Pending.Fullscreen != nil {
		t.Fatalf("want workspace.fullscreen cleared")
	}
}

// TestArrangeIdempotent is P7: arranging twice in a row must not change any
// pending rectangle the second time.
func TestArrangeIdempotent(t *testing.T) {
	root := tree.NewRoot()
	out := newTestOutput(t, root, wlcore.Rect{W: 1200, H: 900})
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)
	ws.Gaps = tree.WorkspaceGaps{Inner: 4, OuterTop: 8, OuterLeft: 8, OuterRight: 8, OuterBottom: 8}

	col1 := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	col2 := tree.WorkspaceInsertTiling(ws, out, nil, 1)
	a, b, c := newTestWindow(), newTestWindow(), newTestWindow()
	tree.ColumnAddChild(col1, a)
	tree.ColumnAddChild(col1, b)
	tree.ColumnAddChild(col2, c)
	fl := newTestWindow()
	tree.WorkspaceAddFloating(ws, fl)

	tree.Arrange(root)
	first := snapshotRects(ws)
	tree.Arrange(root)
	second := snapshotRects(ws)

	if len(first) != len(second) {
		t.Fatalf("rect count changed between passes: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("rect %d changed on second pass: %v -> %v", i, first[i], second[i])
		}
	}
}

func snapshotRects(ws *tree.Workspace) []tree.Rect {
	var out []tree.Rect
	out = append(out, ws.Pending.Rect)
	for _, c := range ws.Pending.Tiling {
		out = append(out, c.Pending.Rect)
		for _, w := range c.Pending.Children {
			out = append(out, w.Pending.Rect, w.Pending.ContentRect)
		}
	}
	for _, w := range ws.Pending.Floating {
		out = append(out, w.Pending.Rect, w.Pending.ContentRect)
	}
	return out
}

// TestGapClamp is P8: gaps configured larger than the output can never
// shrink the workspace's usable rectangle below MinSaneSize on either axis.
func TestGapClamp(t *testing.T) {
	root := tree.NewRoot()
	out := newTestOutput(t, root, wlcore.Rect{W: 150, H: 150})
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)
	ws.Gaps = tree.WorkspaceGaps{OuterTop: 1000, OuterLeft: 1000, OuterRight: 1000, OuterBottom: 1000}

	tree.Arrange(root)
	if ws.Pending.Rect.W < tree.MinSaneSize {
		t.Errorf("workspace width %v below MinSaneSize %v", ws.Pending.Rect.W, tree.MinSaneSize)
	}
	if ws.Pending.Rect.H < tree.MinSaneSize {
		t.Errorf("workspace height %v below MinSaneSize %v", ws.Pending.Rect.H, tree.MinSaneSize)
	}
}

// TestDestroyWindowFreesEmptyColumn exercises DestroyWindow end-to-end: a
// lone tiling window's column is freed and the node is marked destroying,
// ready for the transaction engine to reclaim (N1).
func TestDestroyWindowFreesEmptyColumn(t *testing.T) {
	root := tree.NewRoot()
	out := newTestOutput(t, root, wlcore.Rect{W: 800, H: 600})
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)

	a := newTestWindow()
	col := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	tree.ColumnAddChild(col, a)

	tree.DestroyWindow(a)

	if !a.Destroying() {
		t.Fatalf("want window marked destroying")
	}
	if len(ws.Pending.Tiling) != 0 {
		t.Fatalf("want empty column freed, still have %d", len(ws.Pending.Tiling))
	}
}

// TestHideEdgeBordersSmartNoGaps verifies the SmartNoGaps policy suppresses
// a lone window's edge-touching insets even when outer gaps are configured,
// unlike plain Smart which requires the absence of gaps.
func TestHideEdgeBordersSmartNoGaps(t *testing.T) {
	root := tree.NewRoot()
	out := newTestOutput(t, root, wlcore.Rect{W: 800, H: 600})
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)
	ws.Gaps = tree.WorkspaceGaps{OuterTop: 10, OuterLeft: 10, OuterRight: 10, OuterBottom: 10}
	ws.HideEdgeBorders = tree.HideEdgeBordersSmartNoGaps

	a := newTestWindow()
	a.SetBorder(tree.BorderNormal, 4)
	col := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	tree.ColumnAddChild(col, a)

	tree.Arrange(root)
	if a.Pending.ContentRect != a.Pending.Rect {
		t.Errorf("SmartNoGaps: want borders fully suppressed for lone window, content rect %v != rect %v", a.Pending.ContentRect, a.Pending.Rect)
	}
}
