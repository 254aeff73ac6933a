package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LogConfig controls structured-log output
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json", "text"
	Output string `yaml:"output"` // "stdout", "stderr", or a file path
}

// Config holds session configuration. The terminal stage is deliberately
// configuration rather than a property of the stage sequence: pick-list
// selection excludes it by literal name match.
type Config struct {
	Stages          []string  `yaml:"stages"`
	TerminalStage   string    `yaml:"terminal_stage"`
	WindowDays      int       `yaml:"window_days"`
	HistoryCapacity int       `yaml:"history_capacity"`
	Log             LogConfig `yaml:"log"`
}

// Default returns the built-in session configuration
func Default() Config {
	return Config{
		Stages: []string{
			"Material Acquisition",
			"Carpentry",
			"Sanding",
			"Painting / Finishing",
			"Assembly",
			"Packaging",
			"Dispatch",
			"Delivered",
		},
		TerminalStage:   "Delivered",
		WindowDays:      7,
		HistoryCapacity: 50,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// Load reads a YAML configuration file over the defaults
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration invariants
func (c Config) Validate() error {
	if len(c.Stages) == 0 {
		return fmt.Errorf("stages cannot be empty")
	}
	if c.TerminalStage == "" {
		return fmt.Errorf("terminal_stage cannot be empty")
	}
	if c.WindowDays <= 0 {
		return fmt.Errorf("window_days must be positive, got %d", c.WindowDays)
	}
	if c.HistoryCapacity <= 0 {
		return fmt.Errorf("history_capacity must be positive, got %d", c.HistoryCapacity)
	}
	return nil
}
