package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML suite file from the given path.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Suite.
func Parse(data []byte) (*Suite, error) {
	var s Suite

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse suite YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&s)

	return &s, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Suite) {
	if s.Version == "" {
		s.Version = "1"
	}

	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("%s#%d", c.Op, i+1)
		}
	}
}

// Marshal serializes a Suite to YAML.
func Marshal(s *Suite) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Suite to the given path.
func WriteFile(s *Suite, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal suite: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write suite file %s: %w", path, err)
	}

	return nil
}
