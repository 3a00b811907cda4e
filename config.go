package xmlgrep

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/briantilley/xmlgrep/search"
)

// Config mirrors the optional .xmlgrep.yaml file. Zero values fall back to
// the defaults (depth-first, all matches, no trimming, two-space indent).
type Config struct {
	Strategy string `yaml:"strategy"`
	Mode     string `yaml:"mode"`
	Strict   bool   `yaml:"strict"`
	Indent   int    `yaml:"indent"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{Strategy: "dfs", Mode: "all", Indent: 2}
}

// LoadConfig reads a YAML configuration file. A missing file is not an
// error; it yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("xmlgrep: reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("xmlgrep: parsing config %s: %w", path, err)
	}
	if cfg.Strategy == "" {
		cfg.Strategy = "dfs"
	}
	if cfg.Mode == "" {
		cfg.Mode = "all"
	}
	if cfg.Indent <= 0 {
		cfg.Indent = 2
	}
	return cfg, nil
}

// Options validates the config strings and converts them to query Options.
func (c Config) Options() (Options, error) {
	strat, err := search.ParseStrategy(c.Strategy)
	if err != nil {
		return Options{}, err
	}
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return Options{}, err
	}
	return Options{Strategy: strat, Mode: mode, Strict: c.Strict}, nil
}
