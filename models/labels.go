package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LabelRule configures one row of the labeled-metric locator table:
// which text patterns recognize the label and which tie-break strategy
// selects a value from the candidates in its window.
type LabelRule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	// Strategy is one of "max", "first", "small_int".
	Strategy string `yaml:"strategy"`
	// Threshold bounds the small_int preference; ignored otherwise.
	Threshold float64 `yaml:"threshold,omitempty"`
}

// LabelConfig is the optional YAML override for the built-in label table.
type LabelConfig struct {
	Labels []LabelRule `yaml:"labels"`
}

// LoadLabelConfig reads a label table override from a YAML file.
func LoadLabelConfig(path string) (*LabelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read label config: %w", err)
	}

	var config LabelConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse label config: %w", err)
	}

	for i, rule := range config.Labels {
		if rule.Name == "" {
			return nil, fmt.Errorf("label config entry %d: missing name", i)
		}
		if rule.Pattern == "" {
			return nil, fmt.Errorf("label config entry %d (%s): missing pattern", i, rule.Name)
		}
	}

	return &config, nil
}
