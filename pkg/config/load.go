package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// OccluderLayouts lists the built-in occluder sets a probe can use.
var OccluderLayouts = []string{"none", "sphere", "box", "wall"}

var logLevels = []string{"debug", "info", "warn", "error"}

// Load loads configuration with priority: defaults < file. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile merges a YAML file over cfg. Unknown keys are rejected so
// typos in light settings do not silently fall back to defaults.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks every section and reports all problems at once. The
// light is validated by building it.
func (c *Config) Validate() error {
	var err error

	if _, lightErr := c.Light.Build(); lightErr != nil {
		err = multierr.Append(err, lightErr)
	}
	if !slices.Contains(OccluderLayouts, c.Probe.Occluders) {
		err = multierr.Append(err, fmt.Errorf("probe.occluders %q: want one of %v", c.Probe.Occluders, OccluderLayouts))
	}
	if c.Probe.Grid.Enabled() {
		if gridErr := c.Probe.Grid.Grid().Validate(); gridErr != nil {
			err = multierr.Append(err, fmt.Errorf("probe.grid: %w", gridErr))
		}
	}
	if !slices.Contains(logLevels, c.Logging.Level) {
		err = multierr.Append(err, fmt.Errorf("logging.level %q: want one of %v", c.Logging.Level, logLevels))
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Save writes cfg as YAML to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}
