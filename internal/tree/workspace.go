package tree

import (
	"github.com/bwhmather/hayward/internal/id"
)

// Workspace holds one screen's worth of windows: a tiling column sequence
// plus an independent floating layer (spec §3.4). At most one output shows
// a given workspace at a time.
type Workspace struct {
	id.Node

	Name string

	// Output is the output currently showing this workspace, nil if the
	// workspace is not visible anywhere.
	Output *Output

	// OutputPriority lists, in descending preference, the outputs this
	// workspace would like to be shown on (SPEC_FULL.md §3 supplement).
	OutputPriority []*Output

	Gaps    WorkspaceGaps
	Pending WorkspaceState
	Current WorkspaceState

	// HideEdgeBorders is this workspace's border-suppression policy
	// (spec §6), set from config.HideEdgeBorders when the workspace is
	// created or reconfigured.
	HideEdgeBorders HideEdgeBorders
}

// WorkspaceGaps holds the per-workspace gap configuration consumed by
// Arrange (spec §4.2).
type WorkspaceGaps struct {
	Inner     float64
	OuterTop  float64
	OuterLeft float64
	OuterRight  float64
	OuterBottom float64
	Smart     SmartGaps
}

// hasAnyGap reports whether any inner or outer gap is configured, used by
// HideEdgeBordersSmart to decide whether gaps already separate a lone
// container from the screen edge.
func (g WorkspaceGaps) hasAnyGap() bool {
	return g.Inner > 0 || g.OuterTop > 0 || g.OuterLeft > 0 || g.OuterRight > 0 || g.OuterBottom > 0
}

func newWorkspace(name string) *Workspace {
	ws := &Workspace{Name: name}
	ws.Node.Init(id.KindWorkspace)
	return ws
}

// IsEmpty reports whether the workspace has nothing worth keeping around:
// no tiling columns, and no non-sticky floating windows. Sticky floating
// windows follow the output rather than a particular workspace and so do
// not, by themselves, keep a workspace alive (resolved in SPEC_FULL.md §9:
// hayward lineage definition, counted at workspace level not per-child).
func (ws *Workspace) IsEmpty() bool {
	if len(ws.Pending.Tiling) > 0 {
		return false
	}
	for _, w := range ws.Pending.Floating {
		if !w.Pending.Sticky {
			return false
		}
	}
	return true
}

// RaiseOutputPriority moves o to the front of the workspace's output
// preference list, creating the entry if absent (workspace_output_raise_priority
// in original_source).
func (ws *Workspace) RaiseOutputPriority(o *Output) {
	ws.RemoveOutputPriority(o)
	ws.OutputPriority = append([]*Output{o}, ws.OutputPriority...)
}

// RemoveOutputPriority drops o from the preference list, if present.
func (ws *Workspace) RemoveOutputPriority(o *Output) {
	for i, c := range ws.OutputPriority {
		if c == o {
			ws.OutputPriority = append(ws.OutputPriority[:i], ws.OutputPriority[i+1:]...)
			return
		}
	}
}

// HighestAvailableOutput returns the most-preferred output from the
// priority list that is still attached to root, falling back to the first
// output in root.Outputs if the list is empty or exhausted
// (workspace_output_get_highest_available in original_source).
func (ws *Workspace) HighestAvailableOutput(r *Root) *Output {
	for _, pref := range ws.OutputPriority {
		for _, o := range r.Outputs {
			if o == pref {
				return o
			}
		}
	}
	if len(r.Outputs) > 0 {
		return r.Outputs[0]
	}
	return nil
}

// SetFocusMode switches which of the workspace's two surface populations
// (tiling / floating) holds focus (spec §3.5).
func (ws *Workspace) SetFocusMode(m FocusMode) {
	ws.Pending.FocusMode = m
	ws.Node.SetDirty()
}

// SetFullscreen sets or clears the workspace's fullscreen window. A nil w
// clears it.
func (ws *Workspace) SetFullscreen(w *Window) {
	ws.Pending.Fullscreen = w
	ws.Node.SetDirty()
}
