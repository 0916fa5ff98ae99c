package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bwhmather/hayward/internal/inputdevice"
)

// deviceProfileDoc is the top-level shape of a device-profiles YAML
// document (SPEC_FULL.md §4 supplement).
type deviceProfileDoc struct {
	Profiles []inputdevice.Profile `yaml:"profiles"`
}

// LoadDeviceProfiles reads and decodes a YAML device-profiles document
// from path.
func LoadDeviceProfiles(path string) ([]inputdevice.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read device profiles: %w", err)
	}
	var doc deviceProfileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: decode device profiles: %w", err)
	}
	return doc.Profiles, nil
}
