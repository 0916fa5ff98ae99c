// Package config decodes the compositor's JSONC configuration file and
// YAML device-profile documents into typed records (SPEC_FULL.md §6 Go-shape
// specifics), and matches window rules against new windows.
package config

import "time"

type FocusWrapping int

const (
	FocusWrapNone FocusWrapping = iota
	FocusWrapYes
	FocusWrapForce
)

type MouseWarping int

const (
	MouseWarpNone MouseWarping = iota
	MouseWarpOutput
	MouseWarpContainer
)

type HideEdgeBorders int

const (
	HideEdgeBordersNone HideEdgeBorders = iota
	HideEdgeBordersVertical
	HideEdgeBordersHorizontal
	HideEdgeBordersBoth
	HideEdgeBordersSmart
	HideEdgeBordersSmartNoGaps
)

type PopupDuringFullscreen int

const (
	PopupDuringFullscreenSmart PopupDuringFullscreen = iota
	PopupDuringFullscreenIgnore
	PopupDuringFullscreenLeave
)

type FocusOnWindowActivation int

const (
	FocusOnActivationSmart FocusOnWindowActivation = iota
	FocusOnActivationUrgent
	FocusOnActivationFocus
	FocusOnActivationNone
)

type XwaylandMode int

const (
	XwaylandDisabled XwaylandMode = iota
	XwaylandLazy
	XwaylandEager
)

type HideCursorWhenTyping int

const (
	HideCursorWhenTypingDefault HideCursorWhenTyping = iota
	HideCursorWhenTypingEnable
	HideCursorWhenTypingDisable
)

// Config is the fully decoded, typed configuration (spec §6 "config as
// typed enums", SPEC_FULL.md §4 supplements).
type Config struct {
	FocusWrapping           FocusWrapping
	MouseWarping            MouseWarping
	HideEdgeBorders         HideEdgeBorders
	PopupDuringFullscreen   PopupDuringFullscreen
	FocusOnWindowActivation FocusOnWindowActivation
	XwaylandMode            XwaylandMode
	HideCursorWhenTyping    HideCursorWhenTyping

	SmartGaps int // tree.SmartGaps, kept as int to avoid importing tree here

	InnerGap   float64
	OuterGap   [4]float64 // top, right, bottom, left
	BorderWidth float64
	TitlebarHeight float64

	// TxnTimeout and UrgentTimeout are the two timer durations the
	// transaction engine and focus policy consume (spec §4.3, §4.6).
	TxnTimeout    time.Duration
	UrgentTimeout time.Duration

	Rules    []WindowRule
	DevicePath string // path to the YAML device-profiles document, if any
}

// Default returns hayward's built-in defaults before any config file is
// applied.
func Default() Config {
	return Config{
		TxnTimeout:    200 * time.Millisecond,
		UrgentTimeout: 200 * time.Millisecond,
		BorderWidth:   2,
		TitlebarHeight: 24,
	}
}
