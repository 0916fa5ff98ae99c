package seat_test

import (
	"testing"

	"github.com/bwhmather/hayward/internal/seat"
	"github.com/bwhmather/hayward/internal/tree"
	"github.com/bwhmather/hayward/internal/wlcore"
	"github.com/bwhmather/hayward/internal/wlcore/stub"
)

func newTestWindow(rect wlcore.Rect) (*tree.Window, *stub.Surface) {
	sfc := stub.NewSurface(rect, false)
	return tree.NewWindow(sfc), sfc
}

func setupSeat(t *testing.T) (*tree.Root, *tree.Workspace, *stub.Scene, *seat.Seat) {
	t.Helper()
	backend := stub.NewOutput("test", wlcore.Rect{W: 1000, H: 1000})
	root := tree.NewRoot()
	out := root.AddOutput(backend)
	ws := root.CreateWorkspace("1")
	out.SetActiveWorkspace(ws)
	scene := stub.NewScene(backend)
	s := seat.NewSeat("seat0", root, scene)
	tree.SetFocusQuery(s)
	return root, ws, scene, s
}

// TestFocusStackInvariant is P5: has_focus is true iff the window stack is
// non-empty, its top is currently attached to the tree, and it is not
// obstructed by a fullscreen sibling.
func TestFocusStackInvariant(t *testing.T) {
	root, ws, _, s := setupSeat(t)
	out := root.Outputs[0]

	a, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	col := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	tree.ColumnAddChild(col, a)

	if s.FocusedWindow() != nil {
		t.Fatalf("want no focus before SetFocusWindow")
	}

	s.SetFocusWindow(a)
	if s.FocusedWindow() != a {
		t.Fatalf("want A focused")
	}

	b, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	tree.ColumnAddChild(col, b)
	tree.WindowSetFullscreen(b, true, nil)
	s.SetFocusWindow(b)
	if s.FocusedWindow() != b {
		t.Fatalf("want B (the fullscreen window itself) focusable")
	}

	// A is now obstructed by B's fullscreen; focusing A must be refused,
	// leaving B still focused.
	s.SetFocusWindow(a)
	if s.FocusedWindow() != b {
		t.Fatalf("want focus refused for a window obstructed by fullscreen, got %v", s.FocusedWindow())
	}
}

// TestFocusReplacementAcrossFloating is spec §8 scenario 5: destroying a
// focused floating window hands focus to another visible floating window if
// one exists, never to a window on a hidden workspace.
func TestFocusReplacementAcrossFloating(t *testing.T) {
	root, ws, _, s := setupSeat(t)
	out := root.Outputs[0]

	f1, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	tree.WorkspaceAddFloating(ws, f1)
	s.TrackWindow(f1)
	s.SetFocusWindow(f1)

	col := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	t1, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	tree.ColumnAddChild(col, t1)
	s.TrackWindow(t1)

	// No second floating window yet: destroying F1 should fall back to the
	// tiling window on the same (visible) workspace. UntrackWindow runs
	// ahead of detachment, mirroring the destroy-callback ordering in
	// cmd/haywardd (windows.go).
	s.UntrackWindow(f1)
	tree.WorkspaceRemoveFloating(ws, f1)
	if s.FocusedWindow() != t1 {
		t.Fatalf("want fallback to tiling window T1, got %v", s.FocusedWindow())
	}

	// Re-run with a second floating window present: it must win over the
	// tiling fallback.
	root2, ws2, _, s2 := setupSeat(t)
	out2 := root2.Outputs[0]
	f1b, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	f2, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	tree.WorkspaceAddFloating(ws2, f1b)
	tree.WorkspaceAddFloating(ws2, f2)
	s2.TrackWindow(f1b)
	s2.TrackWindow(f2)
	s2.SetFocusWindow(f1b)

	col2 := tree.WorkspaceInsertTiling(ws2, out2, nil, 0)
	t1b, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	tree.ColumnAddChild(col2, t1b)
	s2.TrackWindow(t1b)

	s2.UntrackWindow(f1b)
	tree.WorkspaceRemoveFloating(ws2, f1b)
	if s2.FocusedWindow() != f2 {
		t.Fatalf("want fallback to floating window F2 over tiling T1, got %v", s2.FocusedWindow())
	}

	// A hidden workspace's windows must never be chosen.
	root3, ws3, _, s3 := setupSeat(t)
	hiddenWS := root3.CreateWorkspace("2")
	f1c, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	tree.WorkspaceAddFloating(ws3, f1c)
	s3.TrackWindow(f1c)
	s3.SetFocusWindow(f1c)

	hiddenW, _ := newTestWindow(wlcore.Rect{W: 100, H: 100})
	tree.WorkspaceAddFloating(hiddenWS, hiddenW)
	s3.TrackWindow(hiddenW)

	s3.UntrackWindow(f1c)
	tree.WorkspaceRemoveFloating(ws3, f1c)
	if got := s3.FocusedWindow(); got == hiddenW {
		t.Fatalf("want focus never handed to a window on a hidden workspace")
	}
}

// TestPointerConstraintReleaseHint is spec §8 scenario 6: releasing a
// locked pointer constraint with a client-supplied hint warps the cursor to
// window.content_x - view.geometry.x + hint (and likewise for y).
func TestPointerConstraintReleaseHint(t *testing.T) {
	root, ws, _, s := setupSeat(t)
	out := root.Outputs[0]

	w, sfc := newTestWindow(wlcore.Rect{W: 50, H: 50})
	col := tree.WorkspaceInsertTiling(ws, out, nil, 0)
	tree.ColumnAddChild(col, w)
	w.Current.ContentRect = wlcore.Rect{X: 100, Y: 200, W: 50, H: 50}

	s.SetPointerConstraint(w, true, wlcore.Rect{}, true, 10, 20)
	s.ReleasePointerConstraint()

	wantX := w.Current.ContentRect.X - sfc.Geometry().X + 10
	wantY := w.Current.ContentRect.Y - sfc.Geometry().Y + 20
	gotX, gotY := s.CursorPosition()
	if gotX != wantX || gotY != wantY {
		t.Fatalf("cursor warped to (%v,%v), want (%v,%v)", gotX, gotY, wantX, wantY)
	}
}

// TestDefaultSeatopForwardsButtonAndAxis exercises the default seatop's
// hit-test-and-forward path for physical button and scroll events.
func TestDefaultSeatopForwardsButtonAndAxis(t *testing.T) {
	_, _, scene, s := setupSeat(t)
	out := scene.Outputs()[0]

	_, sfc := newTestWindow(wlcore.Rect{W: 100, H: 100})
	scene.Place(wlcore.LayerWorkspaces, wlcore.Rect{X: 0, Y: 0, W: 100, H: 100}, sfc, nil, out.(*stub.Output))

	s.MoveCursorTo(10, 10)
	s.PointerButton(seat.ButtonLeft, true)
	s.PointerAxis(0, 5)

	btns := sfc.PointerButtonEvents()
	if len(btns) != 1 || btns[0].Button != seat.ButtonLeft || !btns[0].Pressed {
		t.Fatalf("want one left-button press delivered, got %v", btns)
	}
	axes := sfc.PointerAxisEvents()
	if len(axes) != 1 || axes[0].Vert != 5 {
		t.Fatalf("want one vertical-axis event delivered, got %v", axes)
	}
}

// TestTouchDrivesSimulatedPointer is spec §4.5: a touch point with no
// native handling drives the default seatop as a synthesized left-button
// press/release, and a second concurrent touch point must not
// independently re-press or early-release the simulated button.
func TestTouchDrivesSimulatedPointer(t *testing.T) {
	_, _, scene, s := setupSeat(t)
	out := scene.Outputs()[0]

	_, sfc := newTestWindow(wlcore.Rect{W: 100, H: 100})
	scene.Place(wlcore.LayerWorkspaces, wlcore.Rect{X: 0, Y: 0, W: 100, H: 100}, sfc, nil, out.(*stub.Output))

	s.TouchDown(1, 10, 10)
	s.TouchDown(2, 20, 20) // second touch point while the first still drives the pointer: ignored
	s.TouchUp(2)           // lifting the non-driving point must not release the button
	if btns := sfc.PointerButtonEvents(); len(btns) != 1 || !btns[0].Pressed {
		t.Fatalf("want exactly one press and no premature release, got %v", btns)
	}
	s.TouchUp(1)
	btns := sfc.PointerButtonEvents()
	if len(btns) != 2 || btns[1].Pressed {
		t.Fatalf("want the driving touch point's release delivered, got %v", btns)
	}
}
