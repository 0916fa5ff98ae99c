// Package ipc implements the compositor's control socket: a
// newline-delimited JSON tagged-union event stream plus an argument-vector
// command dispatch table (spec §9 "external-facing protocol", SPEC_FULL.md
// §6 Go-shape specifics — adapted from the teacher's niri-event tagged
// struct idiom).
package ipc

// Event is the tagged union of everything the core reports over the
// socket. Exactly one field is non-nil per event, matching the teacher's
// NiriEvent shape.
type Event struct {
	WindowNew             *WindowNew             `json:"window_new,omitempty"`
	WindowClose           *WindowClose           `json:"window_close,omitempty"`
	WindowFocus           *WindowFocus           `json:"window_focus,omitempty"`
	WindowTitle           *WindowTitle           `json:"window_title,omitempty"`
	WindowUrgent          *WindowUrgent          `json:"window_urgent,omitempty"`
	WindowMark            *WindowMark            `json:"window_mark,omitempty"`
	WindowMove            *WindowMove            `json:"window_move,omitempty"`
	WindowFloating        *WindowFloating        `json:"window_floating,omitempty"`
	WindowFullscreenMode  *WindowFullscreenMode  `json:"window_fullscreen_mode,omitempty"`

	WorkspaceInit  *WorkspaceInit  `json:"workspace_init,omitempty"`
	WorkspaceEmpty *WorkspaceEmpty `json:"workspace_empty,omitempty"`
	WorkspaceFocus *WorkspaceFocus `json:"workspace_focus,omitempty"`
	WorkspaceUrgent *WorkspaceUrgent `json:"workspace_urgent,omitempty"`
	Reload          *Reload          `json:"reload,omitempty"`
}

type WindowNew struct {
	ID    uint64 `json:"id"`
	AppID string `json:"app_id"`
	Title string `json:"title"`
}

type WindowClose struct {
	ID uint64 `json:"id"`
}

type WindowFocus struct {
	ID *uint64 `json:"id"`
}

type WindowTitle struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}

type WindowUrgent struct {
	ID     uint64 `json:"id"`
	Urgent bool   `json:"urgent"`
}

type WindowMark struct {
	ID    uint64   `json:"id"`
	Marks []string `json:"marks"`
}

type WindowMove struct {
	ID          uint64 `json:"id"`
	WorkspaceID uint64 `json:"workspace_id"`
}

type WindowFloating struct {
	ID       uint64 `json:"id"`
	Floating bool   `json:"floating"`
}

type WindowFullscreenMode struct {
	ID         uint64 `json:"id"`
	Fullscreen bool   `json:"fullscreen"`
}

type WorkspaceInit struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type WorkspaceEmpty struct {
	ID uint64 `json:"id"`
}

type WorkspaceFocus struct {
	OldID *uint64 `json:"old_id"`
	NewID uint64  `json:"new_id"`
}

type WorkspaceUrgent struct {
	ID     uint64 `json:"id"`
	Urgent bool   `json:"urgent"`
}

type Reload struct {
	Error string `json:"error,omitempty"`
}
