package inputdevice

// Profile is a YAML-configured device preset matched against a device's
// vendor/product/type; its set fields are overlaid on the device's Knobs,
// which start at DefaultKnobs (SPEC_FULL.md §4 supplement). It is decoded by internal/config from a device-profiles
// YAML document; this package only matches and applies it.
type Profile struct {
	Name    string `yaml:"name"`
	Vendor  *uint32 `yaml:"vendor,omitempty"`
	Product *uint32 `yaml:"product,omitempty"`
	Type    string  `yaml:"type,omitempty"`

	AccelProfile       *string  `yaml:"accel_profile,omitempty"`
	AccelSpeed         *float64 `yaml:"accel_speed,omitempty"`
	NaturalScroll      *bool    `yaml:"natural_scroll,omitempty"`
	Tap                *bool    `yaml:"tap,omitempty"`
	DisableWhileTyping *bool    `yaml:"disable_while_typing,omitempty"`
	LeftHanded         *bool    `yaml:"left_handed,omitempty"`
	MapToOutput        *string  `yaml:"map_to_output,omitempty"`
}

// Matches reports whether p should apply to d: any of vendor/product/type
// left unset in the profile are wildcards.
func (p Profile) Matches(d *Device) bool {
	if p.Vendor != nil && *p.Vendor != d.Vendor {
		return false
	}
	if p.Product != nil && *p.Product != d.Product {
		return false
	}
	if p.Type != "" && p.Type != d.Type.String() {
		return false
	}
	return true
}

// Apply overlays the profile's set fields onto d.Knobs.
func (p Profile) Apply(d *Device) {
	if p.AccelProfile != nil {
		d.Knobs.AccelProfile = *p.AccelProfile
	}
	if p.AccelSpeed != nil {
		d.Knobs.AccelSpeed = *p.AccelSpeed
	}
	if p.NaturalScroll != nil {
		d.Knobs.NaturalScroll = *p.NaturalScroll
	}
	if p.Tap != nil {
		d.Knobs.Tap = *p.Tap
	}
	if p.DisableWhileTyping != nil {
		d.Knobs.DisableWhileTyping = *p.DisableWhileTyping
	}
	if p.LeftHanded != nil {
		d.Knobs.LeftHanded = *p.LeftHanded
	}
	if p.MapToOutput != nil {
		d.Knobs.MapToOutput = *p.MapToOutput
	}
}

// SelectProfile returns the first matching profile in priority order, or
// nil if none match.
func SelectProfile(profiles []Profile, d *Device) *Profile {
	for i := range profiles {
		if profiles[i].Matches(d) {
			return &profiles[i]
		}
	}
	return nil
}
