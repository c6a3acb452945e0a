// File: pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file searched for at the first
// input root.
const FileName = ".contextra.yaml"

// Config holds file-sourced defaults for a bundle run. Command-line flags
// override any value set here.
type Config struct {
	Output           string   `yaml:"output"`
	Tree             string   `yaml:"tree"`
	TokenLimit       int      `yaml:"token_limit"`
	MaxFileSizeKB    int      `yaml:"max_file_size_kb"`
	MaxWorkers       int      `yaml:"max_workers"`
	Exclude          []string `yaml:"exclude"`
	IgnoreDirs       []string `yaml:"ignore_dirs"`
	IgnoreExtensions []string `yaml:"ignore_extensions"`
	IncludeSummaries bool     `yaml:"include_summaries"`
	SummariesFile    string   `yaml:"summaries_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:        "contextra-out.txt",
		TokenLimit:    0,
		MaxFileSizeKB: 1024,
		MaxWorkers:    0,
	}
}

// Load reads configuration from an explicit path, or from FileName under
// root when path is empty. A missing file is not an error; the defaults
// are returned unchanged.
func Load(path, root string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadSummaries reads a YAML file mapping file paths to summary strings,
// as produced by an external summarization step.
func LoadSummaries(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summaries %s: %w", path, err)
	}
	summaries := make(map[string]string)
	if err := yaml.Unmarshal(data, &summaries); err != nil {
		return nil, fmt.Errorf("parse summaries %s: %w", path, err)
	}
	return summaries, nil
}
