package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	s, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s invalid: %w", path, err)
	}
	return s, nil
}

// LoadUnchecked reads a scenario file without validating it. Useful for
// debugging partial inputs.
func LoadUnchecked(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &s, nil
}
