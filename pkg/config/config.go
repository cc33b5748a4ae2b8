// Package config loads capband configuration from TOML, YAML, or JSON files.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/paybench/capband/pkg/models"
)

// Config holds all configuration options for capband.
type Config struct {
	// Spread targets the selector picks representative rows for
	Targets []TargetConfig `koanf:"targets" toml:"targets"`

	// Cap ratios tabulated in the summary table
	Cuts []float64 `koanf:"cuts" toml:"cuts"`

	// Plot rendering settings
	Plot PlotConfig `koanf:"plot" toml:"plot"`

	// Output settings
	Output OutputConfig `koanf:"output" toml:"output"`
}

// TargetConfig is one spread target: a label and a sigma/mu ratio.
type TargetConfig struct {
	Label string  `koanf:"label" toml:"label"`
	Ratio float64 `koanf:"ratio" toml:"ratio"`
}

// PlotConfig controls the density plot artifact.
type PlotConfig struct {
	Samples int    `koanf:"samples" toml:"samples"`
	Output  string `koanf:"output" toml:"output"`
	Title   string `koanf:"title" toml:"title"`
}

// OutputConfig controls report formatting.
type OutputConfig struct {
	Format  string `koanf:"format" toml:"format"` // text, json, markdown, toon
	Color   bool   `koanf:"color" toml:"color"`
	Verbose bool   `koanf:"verbose" toml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Targets: []TargetConfig{
			{Label: "narrow", Ratio: 0.05},
			{Label: "typical", Ratio: 0.10},
			{Label: "wide", Ratio: 0.18},
		},
		Cuts: []float64{0.95, 0.90},
		Plot: PlotConfig{
			Samples: 241,
			Output:  "capband.html",
			Title:   "Salary Cap Percentile Drops",
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// SpreadTargets converts the configured targets to the model type consumed
// by the selector.
func (c *Config) SpreadTargets() []models.SpreadTarget {
	targets := make([]models.SpreadTarget, len(c.Targets))
	for i, t := range c.Targets {
		targets[i] = models.SpreadTarget{Label: t.Label, Ratio: t.Ratio}
	}
	return targets
}

// Load loads configuration from a file, layered over the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	// Replace, not append: a configured target list stands on its own.
	if k.Exists("targets") {
		cfg.Targets = nil
	}
	if k.Exists("cuts") {
		cfg.Cuts = nil
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations and falls back to defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"capband.toml",
		"capband.yaml",
		"capband.yml",
		"capband.json",
		".capband.toml",
		".capband.yaml",
		".capband.yml",
		".capband.json",
	}

	searchDirs := []string{".", ".capband"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}
