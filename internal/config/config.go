package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Language   string               `yaml:"language,omitempty"`
	WordList   string               `yaml:"word-list,omitempty"`
	Measures   []string             `yaml:"measures,omitempty"`
	Ignore     []string             `yaml:"ignore,omitempty"`
	Thresholds map[string]Threshold `yaml:"thresholds,omitempty"`
	Overrides  []Override           `yaml:"overrides,omitempty"`
}

// Override applies threshold settings to files matching glob patterns.
type Override struct {
	Files      []string             `yaml:"files"`
	Thresholds map[string]Threshold `yaml:"thresholds"`
}

// Threshold is a YAML union: a bare number is an upper bound, false
// disables the threshold (useful in overrides), and a mapping sets
// max and min explicitly.
type Threshold struct {
	Max      *float64
	Min      *float64
	Disabled bool
}

// UnmarshalYAML implements custom YAML unmarshalling for Threshold.
// It handles three forms:
//   - 12.5 -> Max=12.5
//   - false -> Disabled=true
//   - {max: 12.5, min: 3} -> bounds as given
func (t *Threshold) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var b bool
		if err := value.Decode(&b); err == nil {
			if b {
				return fmt.Errorf("threshold must be a number, false, or a mapping")
			}
			*t = Threshold{Disabled: true}
			return nil
		}

		var n float64
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("invalid threshold: %w", err)
		}
		*t = Threshold{Max: &n}
		return nil
	}

	if value.Kind == yaml.MappingNode {
		var bounds struct {
			Max *float64 `yaml:"max"`
			Min *float64 `yaml:"min"`
		}
		if err := value.Decode(&bounds); err != nil {
			return fmt.Errorf("invalid threshold: %w", err)
		}
		if bounds.Max == nil && bounds.Min == nil {
			return fmt.Errorf("threshold needs max or min")
		}
		*t = Threshold{Max: bounds.Max, Min: bounds.Min}
		return nil
	}

	return fmt.Errorf("threshold must be a number, false, or a mapping, got %v", value.Kind)
}

// MarshalYAML renders a Threshold back into its compact YAML form.
func (t Threshold) MarshalYAML() (any, error) {
	if t.Disabled {
		return false, nil
	}
	if t.Min == nil && t.Max != nil {
		return *t.Max, nil
	}
	return struct {
		Max *float64 `yaml:"max,omitempty"`
		Min *float64 `yaml:"min,omitempty"`
	}{t.Max, t.Min}, nil
}
