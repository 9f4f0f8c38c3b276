package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadFile reads a rule set from a YAML file of the shape:
//
//	high:
//	  - metric: Revenue
//	    operator: "<"
//	    value: -20
//	medium:
//	  - metric: Bid Rate
//	    operator: Between
//	    value: -10
//	    high: -5
//
// The whole file is rejected when any rule fails validation.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML rule set.
func Parse(data []byte) (Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Set{}, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Set{}, fmt.Errorf("invalid rules: %w", err)
	}
	return s, nil
}
