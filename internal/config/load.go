package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a topology from a YAML file.
//
// Keys absent from the file keep their defaults. The result is not
// validated: callers layer command-line overrides on top first.
func LoadFile(path string) (*Topology, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topology file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML topology document over the defaults.
func Parse(data []byte) (*Topology, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	t.applyDefaults()
	return &t, nil
}
