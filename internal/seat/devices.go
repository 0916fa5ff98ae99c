package seat

import (
	"github.com/bwhmather/hayward/internal/inputdevice"
	"github.com/bwhmather/hayward/internal/tree"
)

// AutoMapBuiltin maps touch and tablet devices to the single built-in
// display output, if the heuristic in SPEC_FULL.md §4 supplement applies:
// the device's port name starts with eDP/LVDS/DSI, and exactly one such
// output exists among root's outputs.
func (s *Seat) AutoMapBuiltin(d *inputdevice.Device, port string) {
	if d.Type != inputdevice.TypeTouch && d.Type != inputdevice.TypeTabletTool {
		return
	}
	if !inputdevice.IsBuiltinPortName(port) {
		return
	}
	builtin := s.findSingleBuiltinOutput()
	if builtin == nil {
		return
	}
	d.Knobs.MapToOutput = builtin.Name()
	d.ApplyProfile()
}

func (s *Seat) findSingleBuiltinOutput() *tree.Output {
	var found *tree.Output
	for _, o := range s.root.Outputs {
		if inputdevice.IsBuiltinPortName(o.Name()) {
			if found != nil {
				return nil
			}
			found = o
		}
	}
	return found
}

// ApplyDeviceProfiles re-applies matching profiles to every registered
// device, used on a config reload (spec §4.4 "on add and on configuration
// reload").
func (s *Seat) ApplyDeviceProfiles(profiles []inputdevice.Profile) {
	for _, d := range s.devices {
		if p := inputdevice.SelectProfile(profiles, d); p != nil {
			p.Apply(d)
		}
		d.ApplyProfile()
	}
}
