// Package inputdevice models the libinput-style configuration knobs for
// keyboard/pointer/touch/tablet devices and the YAML device-profile
// matching used to apply them (spec §4.4, SPEC_FULL.md §4 supplement).
package inputdevice

// Type classifies a device by the input it produces.
type Type int

const (
	TypeKeyboard Type = iota
	TypePointer
	TypeTouch
	TypeTabletTool
	TypeTabletPad
	TypeSwitch
)

func (t Type) String() string {
	switch t {
	case TypeKeyboard:
		return "keyboard"
	case TypePointer:
		return "pointer"
	case TypeTouch:
		return "touch"
	case TypeTabletTool:
		return "tablet_tool"
	case TypeTabletPad:
		return "tablet_pad"
	case TypeSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// ClickMethod selects how a touchpad distinguishes button clicks.
type ClickMethod int

const (
	ClickMethodNone ClickMethod = iota
	ClickMethodButtonAreas
	ClickMethodClickfinger
)

// TapButtonMap selects which buttons 1/2/3-finger taps produce.
type TapButtonMap int

const (
	TapButtonMapLRM TapButtonMap = iota
	TapButtonMapLMR
)

// Knobs holds the per-device libinput-style configuration applied on
// device add and on config reload (spec §4.4).
type Knobs struct {
	AccelProfile   string // "none", "flat", "adaptive"
	AccelSpeed     float64
	NaturalScroll  bool
	Tap            bool
	TapButtonMap   TapButtonMap
	ClickMethod    ClickMethod
	DisableWhileTyping bool
	MiddleEmulation    bool
	LeftHanded         bool
	ScrollMethod       string // "none", "two_finger", "edge", "on_button_down"
	ScrollButton       uint32

	// MapToOutput names the output this device's motion is confined/mapped
	// to, empty meaning unconstrained.
	MapToOutput string
	// MapToRegion, if W/H are non-zero, confines motion to a sub-rectangle
	// of the mapped output in the 0..1 normalized range.
	MapToRegionX, MapToRegionY, MapToRegionW, MapToRegionH float64
}

// DefaultKnobs returns libinput's own factory defaults.
func DefaultKnobs() Knobs {
	return Knobs{
		AccelProfile: "adaptive",
		AccelSpeed:   0,
		Tap:          false,
		ClickMethod:  ClickMethodButtonAreas,
		ScrollMethod: "two_finger",
	}
}

// Device is one physical or virtual input device known to a seat.
type Device struct {
	Name       string
	Vendor     uint32
	Product    uint32
	Type       Type
	Knobs      Knobs
	IsBuiltin  bool

	// apply is set by the backend at registration time; ApplyProfile calls
	// it after Knobs change so the wlcore/libinput layer can push the new
	// configuration down to the real device.
	apply func(*Device)
}

func New(name string, vendor, product uint32, typ Type, isBuiltin bool, apply func(*Device)) *Device {
	return &Device{
		Name: name, Vendor: vendor, Product: product, Type: typ,
		Knobs: DefaultKnobs(), IsBuiltin: isBuiltin, apply: apply,
	}
}

// ApplyProfile pushes the device's current Knobs to the backend. It does
// not look up a profile itself; callers overlay one with Profile.Apply
// beforehand.
func (d *Device) ApplyProfile() {
	if d.apply != nil {
		d.apply(d)
	}
}

// IsBuiltinPortName reports whether an output port name looks like a
// built-in display (prefix eDP, LVDS or DSI). It checks only the name; it
// does not count how many such outputs exist.
func IsBuiltinPortName(port string) bool {
	for _, prefix := range []string{"eDP", "LVDS", "DSI"} {
		if len(port) >= len(prefix) && port[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}
