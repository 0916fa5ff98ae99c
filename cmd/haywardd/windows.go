package main

import (
	"github.com/bwhmather/hayward/internal/config"
	"github.com/bwhmather/hayward/internal/ipc"
	"github.com/bwhmather/hayward/internal/seat"
	"github.com/bwhmather/hayward/internal/tree"
	"github.com/bwhmather/hayward/internal/wlcore"
)

// wireToplevels registers the callback that turns a toolkit-reported new
// surface into a tree.Window: match window rules, attach it tiling or
// floating on its target workspace, focus it, and arm its destroy handler
// (spec §3.6, §6 window rules).
func wireToplevels(toolkit wlcore.Toolkit, root *tree.Root, cfg *config.Config, s *seat.Seat, commit func(), server *ipc.Server) {
	toolkit.OnNewToplevel(func(view wlcore.Surface, appID, title string) {
		w := tree.NewWindow(view)
		w.Title = title

		floating, fullscreen, sticky := false, false, false
		ws := s.FocusedWorkspace()
		for _, rule := range config.MatchRules(cfg.Rules, appID, title) {
			if rule.Floating != nil {
				floating = *rule.Floating
			}
			if rule.Fullscreen != nil {
				fullscreen = *rule.Fullscreen
			}
			if rule.Sticky != nil {
				sticky = *rule.Sticky
			}
			if rule.Workspace != "" {
				target := root.FindWorkspace(rule.Workspace)
				if target == nil {
					target = root.CreateWorkspace(rule.Workspace)
				}
				ws = target
			}
		}
		if ws == nil {
			ws = root.Pending.ActiveWorkspace
		}

		if floating {
			tree.WorkspaceAddFloating(ws, w)
		} else {
			col := ws.Pending.ActiveColumn
			if col == nil {
				col = tree.WorkspaceInsertTiling(ws, nil, nil, len(ws.Pending.Tiling))
			}
			tree.ColumnAddChild(col, w)
		}
		w.SetFloating(floating)
		w.SetSticky(sticky)
		if fullscreen {
			tree.WindowSetFullscreen(w, true, func(w *tree.Window, fs bool) {
				server.Broadcast(ipc.Event{WindowFullscreenMode: &ipc.WindowFullscreenMode{ID: w.ID(), Fullscreen: fs}})
			})
		}

		view.OnDestroy(func() {
			s.ReleaseConstraintIfOwner(w)
			s.UntrackWindow(w)
			tree.DestroyWindow(w)
			server.Broadcast(ipc.Event{WindowClose: &ipc.WindowClose{ID: w.ID()}})
			commit()
		})

		s.SetFocusWindow(w)
		server.Broadcast(ipc.Event{WindowNew: &ipc.WindowNew{ID: w.ID(), AppID: appID, Title: title}})
		commit()
	})
}
