package layout

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads the optional configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	// Validate the same ranges the CLI enforces.
	if config.Mode != "" {
		if _, ok := ParseMode(config.Mode); !ok {
			return nil, fmt.Errorf("config mode %q must be wall, perimeter, or ambient", config.Mode)
		}
	}
	if config.Depth != nil && (*config.Depth < 0 || *config.Depth > 1) {
		return nil, fmt.Errorf("config depth %.4g out of range [0, 1]", *config.Depth)
	}
	if config.EdgeBias != nil && (*config.EdgeBias < 0 || *config.EdgeBias > 1) {
		return nil, fmt.Errorf("config edgeBias %.4g out of range [0, 1]", *config.EdgeBias)
	}

	return &config, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ApplyOptions overlays the config file's values onto opts, leaving any
// field alone when the config does not set it. Explicit zeros in the file
// apply like any other value. Flag values set explicitly on the command
// line take precedence and are reapplied by the caller.
func (c *Config) ApplyOptions(opts *Options) {
	if c.Mode != "" {
		if mode, ok := ParseMode(c.Mode); ok {
			opts.Mode = mode
		}
	}
	if c.BoundaryAware {
		opts.BoundaryAware = true
	}
	if c.Group != nil {
		opts.Group = *c.Group
	}
	if c.Depth != nil {
		opts.Depth = *c.Depth
	}
	if c.EdgeBias != nil {
		opts.EdgeBias = *c.EdgeBias
	}
}
