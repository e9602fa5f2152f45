package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given. It may be absent.
const DefaultPath = "thompson.yaml"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	LogLevel string      `yaml:"log_level"`
	Graph    GraphConfig `yaml:"graph"`
	Match    MatchConfig `yaml:"match"`
}

type GraphConfig struct {
	Format string `yaml:"format"` // dot or mermaid
	Output string `yaml:"output"` // file name, "-" for stdout
}

type MatchConfig struct {
	ShowStats bool `yaml:"show_stats"`
	Strict    bool `yaml:"strict"`
}

func Default() Config {
	return Config{
		LogLevel: "warn",
		Graph:    GraphConfig{Format: "dot", Output: "-"},
	}
}

// Load reads the YAML file at path on top of Default. A missing file is only
// an error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Graph.Format {
	case "dot", "mermaid":
	default:
		return fmt.Errorf("%w: graph.format %q, want dot or mermaid", ErrInvalid, c.Graph.Format)
	}
	if c.Graph.Output == "" {
		return fmt.Errorf("%w: graph.output is empty", ErrInvalid)
	}
	return nil
}
