package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Tagger contains the tag vocabulary configuration.
type Tagger struct {
	Tags []string `toml:"tags"`
}

// Emission contains configuration for the per-tag language models.
type Emission struct {
	// Corpora maps a tag to a word-frequency file for that language.
	Corpora   map[string]string `toml:"corpora"`
	Smoothing float64           `toml:"smoothing"`
}

// Corpus contains configuration for tagged-corpus based estimation.
type Corpus struct {
	Path      string  `toml:"path"`
	Smoothing float64 `toml:"smoothing"`
}

// Logging contains log output configuration.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the full application configuration.
type Config struct {
	Tagger   Tagger   `toml:"tagger"`
	Emission Emission `toml:"emission"`
	Corpus   Corpus   `toml:"corpus"`
	Logging  Logging  `toml:"logging"`

	// Transitions optionally fixes the transition table inline instead of
	// estimating it from corpus.path.
	Transitions map[string]map[string]float64 `toml:"transitions"`
}

// Default returns a configuration with usable defaults and no data sources.
func Default() *Config {
	return &Config{
		Tagger:   Tagger{Tags: []string{"ENG", "SPA"}},
		Emission: Emission{Smoothing: 1.0},
		Corpus:   Corpus{Smoothing: 1.0},
		Logging:  Logging{Level: "info", Format: "text"},
	}
}

// Load reads and validates a TOML configuration file. Values not present in
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
