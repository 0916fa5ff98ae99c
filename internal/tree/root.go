package tree

import (
	"sort"
	"strconv"

	"github.com/bwhmather/hayward/internal/id"
	"github.com/bwhmather/hayward/internal/wlcore"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Root is the single process-wide tree root: it owns every Output and
// Workspace. There is exactly one per process (spec §9 "Global compositor
// state").
type Root struct {
	id.Node

	Outputs    []*Output
	Pending    RootState
	Current    RootState
	OnDirty    func(*Root)

	// OnDamage is invoked whenever a screen-space rectangle needs
	// repainting (spec §4.3 apply step: "damage the old and new screen
	// regions"). The real backend wires this to its renderer; tests and
	// the headless build may leave it nil.
	OnDamage func(Rect)

	collator *collate.Collator
}

// Damage reports a rectangle of screen space that needs repainting.
func (r *Root) Damage(rect Rect) {
	if rect.Empty() {
		return
	}
	if r.OnDamage != nil {
		r.OnDamage(rect)
	}
}

func NewRoot() *Root {
	r := &Root{collator: collate.New(language.Und)}
	r.Node.Init(id.KindRoot)
	return r
}

func (r *Root) markDirty() {
	r.Node.SetDirty()
	if r.OnDirty != nil {
		r.OnDirty(r)
	}
}

// AddOutput registers a newly discovered backend output.
func (r *Root) AddOutput(backend wlcore.Output) *Output {
	o := newOutput(backend)
	r.Outputs = append(r.Outputs, o)
	r.markDirty()
	return o
}

// RemoveOutput detaches an output from the root. Workspaces that preferred
// it are not reassigned here; the caller moves them first, using
// Workspace.HighestAvailableOutput to pick each one's surviving output.
func (r *Root) RemoveOutput(o *Output) {
	for i, c := range r.Outputs {
		if c == o {
			r.Outputs = append(r.Outputs[:i], r.Outputs[i+1:]...)
			break
		}
	}
	o.BeginDestroy()
	r.markDirty()
}

// CreateWorkspace creates and attaches a new workspace. An empty name
// triggers auto-naming with the lowest unused positive integer (SPEC_FULL.md
// §3 supplement).
func (r *Root) CreateWorkspace(name string) *Workspace {
	if name == "" {
		name = r.nextAutoName()
	}
	ws := newWorkspace(name)
	r.Pending.Workspaces = append(r.Pending.Workspaces, ws)
	r.sortWorkspaces()
	r.markDirty()
	return ws
}

func (r *Root) nextAutoName() string {
	used := make(map[int]bool)
	for _, ws := range r.Pending.Workspaces {
		if n, err := strconv.Atoi(ws.Name); err == nil {
			used[n] = true
		}
	}
	for n := 1; ; n++ {
		if !used[n] {
			return strconv.Itoa(n)
		}
	}
}

// sortWorkspaces keeps Root.Pending.Workspaces in a stable, locale-aware
// name order; x/text/collate gives correct ordering for non-ASCII workspace
// names (numeric-looking names still sort as plain strings here — ordering
// is cosmetic only, workspace identity never depends on it).
func (r *Root) sortWorkspaces() {
	sort.SliceStable(r.Pending.Workspaces, func(i, j int) bool {
		return r.collator.CompareString(r.Pending.Workspaces[i].Name, r.Pending.Workspaces[j].Name) < 0
	})
}

// RemoveWorkspace detaches a workspace that has become empty and invisible
// (workspace_consider_destroy in original_source).
func (r *Root) RemoveWorkspace(ws *Workspace) {
	for i, c := range r.Pending.Workspaces {
		if c == ws {
			r.Pending.Workspaces = append(r.Pending.Workspaces[:i], r.Pending.Workspaces[i+1:]...)
			break
		}
	}
	if r.Pending.ActiveWorkspace == ws {
		r.Pending.ActiveWorkspace = nil
	}
	ws.BeginDestroy()
	r.markDirty()
}

// FindWorkspace returns the workspace with the given name, if any.
func (r *Root) FindWorkspace(name string) *Workspace {
	for _, ws := range r.Pending.Workspaces {
		if ws.Name == name {
			return ws
		}
	}
	return nil
}

// IsWorkspaceVisible reports whether ws is the active workspace of any
// output, i.e. root_get_active_workspace() == ws in original_source,
// generalized to one active workspace per output.
func (r *Root) IsWorkspaceVisible(ws *Workspace) bool {
	if ws.Destroying() {
		return false
	}
	for _, o := range r.Outputs {
		if o.Pending.ActiveWorkspace == ws {
			return true
		}
	}
	return false
}
