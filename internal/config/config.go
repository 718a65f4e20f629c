// Package config loads the optional YAML deck configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultMinDisplay keeps fast actions from flashing by unnoticed.
const DefaultMinDisplay = 500 * time.Millisecond

// Config is the deck configuration file (slides.yaml).
// Pointer fields distinguish "unset" from an explicit false.
type Config struct {
	Name          string        `yaml:"name"`
	Width         int           `yaml:"width"`
	Boxing        *bool         `yaml:"boxing"`
	Strikethrough string        `yaml:"strikethrough"`
	Hyperlinks    *bool         `yaml:"hyperlinks"`
	MinDisplay    time.Duration `yaml:"min_display"`
	Shell         string        `yaml:"shell"`
	Python        string        `yaml:"python"`
	IPython       string        `yaml:"ipython"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	yes := true
	return Config{
		Boxing:        &yes,
		Strikethrough: "dim",
		Hyperlinks:    &yes,
		MinDisplay:    DefaultMinDisplay,
		Shell:         "bash",
		Python:        "python3",
		IPython:       "ipython",
	}
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read deck config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that yaml cannot constrain.
func (c Config) Validate() error {
	switch c.Strikethrough {
	case "", "dim", "strike":
	default:
		return fmt.Errorf("strikethrough must be dim or strike, got %q", c.Strikethrough)
	}
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative")
	}
	if c.MinDisplay < 0 {
		return fmt.Errorf("min_display must not be negative")
	}
	return nil
}
