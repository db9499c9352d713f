package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads, defaults and validates a flow file.
func LoadFile(path string) (*Flow, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flow file: %w", err)
	}
	return Parse(data)
}

// Parse decodes, defaults and validates a flow from YAML.
func Parse(data []byte) (*Flow, error) {
	var f Flow
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	f.applyDefaults()

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("flow validation failed: %w", err)
	}
	return &f, nil
}

// Load returns the flow at path, or the default flow when path is empty.
func Load(path string) (*Flow, error) {
	if path == "" {
		return DefaultFlow(), nil
	}
	return LoadFile(path)
}

// Marshal encodes the flow as YAML.
func (f *Flow) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal flow: %w", err)
	}
	return data, nil
}
