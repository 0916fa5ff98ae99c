package main

import (
	"context"
	"strings"

	"github.com/bwhmather/hayward/internal/ipc"
	"github.com/bwhmather/hayward/internal/seat"
	"github.com/bwhmather/hayward/internal/tree"
	"github.com/bwhmather/hayward/internal/txn"
	"github.com/bwhmather/hayward/internal/wlcore"
)

// buildCommandTable wires the IPC command dispatch table to the live
// tree/seat/engine, implementing the handful of mutations an external
// client (a bar, a keybinding daemon) needs to drive the compositor.
func buildCommandTable(root *tree.Root, s *seat.Seat, engine *txn.Engine, server *ipc.Server, commit func()) ipc.CommandTable {
	return ipc.CommandTable{
		"workspace": func(ctx context.Context, args []string) ipc.Reply {
			if len(args) < 1 {
				return ipc.Reply{Status: ipc.StatusInvalid, Error: "usage: workspace <name>"}
			}
			name := strings.Join(args, " ")
			ws := root.FindWorkspace(name)
			if ws == nil {
				ws = root.CreateWorkspace(name)
			}
			s.SetFocusWorkspace(ws)
			commit()
			return ipc.Reply{Status: ipc.StatusSuccess}
		},
		"focus": func(ctx context.Context, args []string) ipc.Reply {
			w := s.FocusedWindow()
			if w == nil {
				return ipc.Reply{Status: ipc.StatusFailure, Error: "no focused window"}
			}
			return ipc.Reply{Status: ipc.StatusSuccess, Data: w.ID()}
		},
		"fullscreen": func(ctx context.Context, args []string) ipc.Reply {
			w := s.FocusedWindow()
			if w == nil {
				return ipc.Reply{Status: ipc.StatusFailure, Error: "no focused window"}
			}
			tree.WindowSetFullscreen(w, !w.Pending.Fullscreen, func(w *tree.Window, fullscreen bool) {
				server.Broadcast(ipc.Event{WindowFullscreenMode: &ipc.WindowFullscreenMode{ID: w.ID(), Fullscreen: fullscreen}})
			})
			commit()
			return ipc.Reply{Status: ipc.StatusSuccess}
		},
		"floating": func(ctx context.Context, args []string) ipc.Reply {
			w := s.FocusedWindow()
			if w == nil {
				return ipc.Reply{Status: ipc.StatusFailure, Error: "no focused window"}
			}
			tree.WindowSetFloating(w, !w.Pending.Floating)
			server.Broadcast(ipc.Event{WindowFloating: &ipc.WindowFloating{ID: w.ID(), Floating: w.Pending.Floating}})
			commit()
			return ipc.Reply{Status: ipc.StatusSuccess}
		},
		// pointer-lock/pointer-confine/pointer-release are the seat-side
		// entry points a zwp_pointer_constraints_v1 handler (or a test)
		// drives to install/release a constraint on the focused window's
		// view (spec §4.8).
		"pointer-lock": func(ctx context.Context, args []string) ipc.Reply {
			w := s.FocusedWindow()
			if w == nil {
				return ipc.Reply{Status: ipc.StatusFailure, Error: "no focused window"}
			}
			s.SetPointerConstraint(w, true, wlcore.Rect{}, false, 0, 0)
			return ipc.Reply{Status: ipc.StatusSuccess}
		},
		"pointer-confine": func(ctx context.Context, args []string) ipc.Reply {
			w := s.FocusedWindow()
			if w == nil {
				return ipc.Reply{Status: ipc.StatusFailure, Error: "no focused window"}
			}
			s.SetPointerConstraint(w, false, w.Current.ContentRect, false, 0, 0)
			return ipc.Reply{Status: ipc.StatusSuccess}
		},
		"pointer-release": func(ctx context.Context, args []string) ipc.Reply {
			s.ReleasePointerConstraint()
			return ipc.Reply{Status: ipc.StatusSuccess}
		},
	}
}

// wireEvents hooks the seat's focus-change callbacks up to the IPC event
// stream (spec §9: every focus transition is externally observable).
func wireEvents(s *seat.Seat, server *ipc.Server) {
	s.OnWindowFocus = func(old, new *tree.Window) {
		var ev ipc.WindowFocus
		if new != nil {
			id := new.ID()
			ev.ID = &id
		}
		server.Broadcast(ipc.Event{WindowFocus: &ev})
	}
	s.OnWorkspaceFocus = func(old, new *tree.Workspace) {
		ev := ipc.WorkspaceFocus{}
		if old != nil {
			id := old.ID()
			ev.OldID = &id
		}
		if new != nil {
			ev.NewID = new.ID()
		}
		server.Broadcast(ipc.Event{WorkspaceFocus: &ev})
	}
}
