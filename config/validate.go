package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTagger(); err != nil {
		return err
	}
	if err := c.validateEmission(); err != nil {
		return err
	}
	if err := c.validateTransitions(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTagger() error {
	if len(c.Tagger.Tags) == 0 {
		return errors.New("tagger.tags must list at least one tag")
	}
	seen := make(map[string]bool, len(c.Tagger.Tags))
	for _, tag := range c.Tagger.Tags {
		if tag == "" {
			return errors.New("tagger.tags must not contain empty tags")
		}
		if seen[tag] {
			return fmt.Errorf("tagger.tags contains %q twice", tag)
		}
		seen[tag] = true
	}
	return nil
}

func (c *Config) validateEmission() error {
	if c.Emission.Smoothing < 0 {
		return errors.New("emission.smoothing must not be negative")
	}
	known := make(map[string]bool, len(c.Tagger.Tags))
	for _, tag := range c.Tagger.Tags {
		known[tag] = true
	}
	for tag, path := range c.Emission.Corpora {
		if !known[tag] {
			return fmt.Errorf("emission.corpora names tag %q, which is not in tagger.tags", tag)
		}
		if path == "" {
			return fmt.Errorf("emission.corpora path for tag %q is empty", tag)
		}
	}
	return nil
}

func (c *Config) validateTransitions() error {
	if c.Transitions == nil {
		return nil
	}
	for _, src := range c.Tagger.Tags {
		row, ok := c.Transitions[src]
		if !ok {
			return fmt.Errorf("transitions is missing a row for tag %q", src)
		}
		for _, dst := range c.Tagger.Tags {
			p, ok := row[dst]
			if !ok {
				return fmt.Errorf("transitions is missing entry %q -> %q", src, dst)
			}
			if p <= 0 || p > 1 {
				return fmt.Errorf("transitions[%q][%q] = %v, want a probability in (0,1]", src, dst, p)
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
