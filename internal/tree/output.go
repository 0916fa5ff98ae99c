package tree

import (
	"github.com/bwhmather/hayward/internal/id"
	"github.com/bwhmather/hayward/internal/wlcore"
)

// Output is a physical or headless display (spec §3.2). Root carries only
// pending/current (no resize acks needed, per spec §3.3).
type Output struct {
	id.Node

	Backend wlcore.Output

	// WorkspacePriority lists, in descending preference, the workspaces that
	// would like to be shown on this output if nothing else claims it.
	WorkspacePriority []*Workspace

	Pending OutputState
	Current OutputState
}

func newOutput(backend wlcore.Output) *Output {
	o := &Output{Backend: backend}
	o.Node.Init(id.KindOutput)
	r := backend.Geometry()
	o.Pending.Rect = r
	o.Current.Rect = r
	return o
}

func (o *Output) Name() string { return o.Backend.Name() }

// Geometry returns the output's pending rectangle as reported by the
// backend layout manager (spec §4.2 Arrangement: "An Output's rectangle
// comes from the backend layout manager").
func (o *Output) Geometry() Rect { return o.Pending.Rect }

// SetActiveWorkspace makes ws the one workspace visible on this output,
// updating the workspace's output back-pointer.
func (o *Output) SetActiveWorkspace(ws *Workspace) {
	o.Pending.ActiveWorkspace = ws
	if ws != nil {
		ws.Output = o
	}
	o.Node.SetDirty()
}
