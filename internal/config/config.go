package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bwhmather/hayward/internal/config/jsonc"
)

// wire is the on-disk JSONC shape; enum fields decode via the small
// UnmarshalJSON wrapper types below, mirroring the teacher's
// Mode.UnmarshalJSON pattern.
type wire struct {
	FocusWrapping           *focusWrappingWire           `json:"focus_wrapping"`
	MouseWarping            *mouseWarpingWire            `json:"mouse_warping"`
	HideEdgeBorders         *hideEdgeBordersWire         `json:"hide_edge_borders"`
	PopupDuringFullscreen   *popupDuringFullscreenWire   `json:"popup_during_fullscreen"`
	FocusOnWindowActivation *focusOnActivationWire       `json:"focus_on_window_activation"`
	Xwayland                *xwaylandModeWire            `json:"xwayland"`
	HideCursorWhenTyping    *hideCursorWire              `json:"hide_cursor_when_typing"`

	SmartGaps      *int     `json:"smart_gaps"`
	InnerGap       *float64 `json:"gaps_inner"`
	OuterGapTop    *float64 `json:"gaps_outer_top"`
	OuterGapRight  *float64 `json:"gaps_outer_right"`
	OuterGapBottom *float64 `json:"gaps_outer_bottom"`
	OuterGapLeft   *float64 `json:"gaps_outer_left"`

	BorderWidth    *float64 `json:"border_width"`
	TitlebarHeight *float64 `json:"titlebar_height"`

	TxnTimeoutMs    *int `json:"txn_timeout_ms"`
	UrgentTimeoutMs *int `json:"urgent_timeout_ms"`

	Rules      []windowRuleWire `json:"window_rules"`
	DevicePath *string          `json:"device_profiles"`
}

type windowRuleWire struct {
	AppID      string `json:"app_id"`
	Title      string `json:"title"`
	Floating   *bool  `json:"floating"`
	Fullscreen *bool  `json:"fullscreen"`
	Sticky     *bool  `json:"sticky"`
	Workspace  string `json:"workspace"`
}

// Load reads path, strips JSONC comments, and decodes it over the builtin
// defaults, returning a fully typed Config.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	var w wire
	if err := jsonc.Unmarshal(raw, &w); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	applyWire(&cfg, &w)
	for i := range cfg.Rules {
		if err := cfg.Rules[i].Compile(); err != nil {
			return cfg, fmt.Errorf("config: %s: rule %d: %w", path, i, err)
		}
	}
	return cfg, nil
}

func applyWire(cfg *Config, w *wire) {
	if w.FocusWrapping != nil {
		cfg.FocusWrapping = w.FocusWrapping.v
	}
	if w.MouseWarping != nil {
		cfg.MouseWarping = w.MouseWarping.v
	}
	if w.HideEdgeBorders != nil {
		cfg.HideEdgeBorders = w.HideEdgeBorders.v
	}
	if w.PopupDuringFullscreen != nil {
		cfg.PopupDuringFullscreen = w.PopupDuringFullscreen.v
	}
	if w.FocusOnWindowActivation != nil {
		cfg.FocusOnWindowActivation = w.FocusOnWindowActivation.v
	}
	if w.Xwayland != nil {
		cfg.XwaylandMode = w.Xwayland.v
	}
	if w.HideCursorWhenTyping != nil {
		cfg.HideCursorWhenTyping = w.HideCursorWhenTyping.v
	}
	if w.SmartGaps != nil {
		cfg.SmartGaps = *w.SmartGaps
	}
	if w.InnerGap != nil {
		cfg.InnerGap = *w.InnerGap
	}
	if w.OuterGapTop != nil {
		cfg.OuterGap[0] = *w.OuterGapTop
	}
	if w.OuterGapRight != nil {
		cfg.OuterGap[1] = *w.OuterGapRight
	}
	if w.OuterGapBottom != nil {
		cfg.OuterGap[2] = *w.OuterGapBottom
	}
	if w.OuterGapLeft != nil {
		cfg.OuterGap[3] = *w.OuterGapLeft
	}
	if w.BorderWidth != nil {
		cfg.BorderWidth = *w.BorderWidth
	}
	if w.TitlebarHeight != nil {
		cfg.TitlebarHeight = *w.TitlebarHeight
	}
	if w.TxnTimeoutMs != nil {
		cfg.TxnTimeout = time.Duration(*w.TxnTimeoutMs) * time.Millisecond
	}
	if w.UrgentTimeoutMs != nil {
		cfg.UrgentTimeout = time.Duration(*w.UrgentTimeoutMs) * time.Millisecond
	}
	if w.DevicePath != nil {
		cfg.DevicePath = *w.DevicePath
	}
	if w.Rules != nil {
		cfg.Rules = make([]WindowRule, len(w.Rules))
		for i, r := range w.Rules {
			cfg.Rules[i] = WindowRule{
				AppIDPattern: r.AppID,
				TitlePattern: r.Title,
				Floating:     r.Floating,
				Fullscreen:   r.Fullscreen,
				Sticky:       r.Sticky,
				Workspace:    r.Workspace,
			}
		}
	}
}

type focusWrappingWire struct{ v FocusWrapping }

func (e *focusWrappingWire) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "none":
		e.v = FocusWrapNone
	case "yes":
		e.v = FocusWrapYes
	case "force":
		e.v = FocusWrapForce
	default:
		return fmt.Errorf("unknown focus_wrapping: %s", s)
	}
	return nil
}

type mouseWarpingWire struct{ v MouseWarping }

func (e *mouseWarpingWire) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "none":
		e.v = MouseWarpNone
	case "output":
		e.v = MouseWarpOutput
	case "container":
		e.v = MouseWarpContainer
	default:
		return fmt.Errorf("unknown mouse_warping: %s", s)
	}
	return nil
}

type hideEdgeBordersWire struct{ v HideEdgeBorders }

func (e *hideEdgeBordersWire) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "none":
		e.v = HideEdgeBordersNone
	case "vertical":
		e.v = HideEdgeBordersVertical
	case "horizontal":
		e.v = HideEdgeBordersHorizontal
	case "both":
		e.v = HideEdgeBordersBoth
	case "smart":
		e.v = HideEdgeBordersSmart
	case "smart_no_gaps":
		e.v = HideEdgeBordersSmartNoGaps
	default:
		return fmt.Errorf("unknown hide_edge_borders: %s", s)
	}
	return nil
}

type popupDuringFullscreenWire struct{ v PopupDuringFullscreen }

func (e *popupDuringFullscreenWire) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "smart":
		e.v = PopupDuringFullscreenSmart
	case "ignore":
		e.v = PopupDuringFullscreenIgnore
	case "leave_fullscreen":
		e.v = PopupDuringFullscreenLeave
	default:
		return fmt.Errorf("unknown popup_during_fullscreen: %s", s)
	}
	return nil
}

type focusOnActivationWire struct{ v FocusOnWindowActivation }

func (e *focusOnActivationWire) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "smart":
		e.v = FocusOnActivationSmart
	case "urgent":
		e.v = FocusOnActivationUrgent
	case "focus":
		e.v = FocusOnActivationFocus
	case "none":
		e.v = FocusOnActivationNone
	default:
		return fmt.Errorf("unknown focus_on_window_activation: %s", s)
	}
	return nil
}

type xwaylandModeWire struct{ v XwaylandMode }

func (e *xwaylandModeWire) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "disabled":
		e.v = XwaylandDisabled
	case "lazy":
		e.v = XwaylandLazy
	case "eager":
		e.v = XwaylandEager
	default:
		return fmt.Errorf("unknown xwayland: %s", s)
	}
	return nil
}

type hideCursorWire struct{ v HideCursorWhenTyping }

func (e *hideCursorWire) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "default":
		e.v = HideCursorWhenTypingDefault
	case "enable":
		e.v = HideCursorWhenTypingEnable
	case "disable":
		e.v = HideCursorWhenTypingDisable
	default:
		return fmt.Errorf("unknown hide_cursor_when_typing: %s", s)
	}
	return nil
}
