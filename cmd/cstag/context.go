package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaskiratSingh23/cstag/config"
	"github.com/JaskiratSingh23/cstag/corpus"
	"github.com/JaskiratSingh23/cstag/hmm"
	"github.com/JaskiratSingh23/cstag/langmodel"
	"github.com/JaskiratSingh23/cstag/logging"
	"github.com/JaskiratSingh23/cstag/tagger"
)

// commandContext holds lazily initialized shared state for subcommands.
type commandContext struct {
	configPath *string

	cfg    *config.Config
	logger *slog.Logger
}

func newCommandContext(configPath *string) *commandContext {
	return &commandContext{configPath: configPath}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	if *c.configPath == "" {
		c.cfg = config.Default()
		return c.cfg, nil
	}
	cfg, err := config.Load(*c.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", *c.configPath, err)
	}
	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

// buildTagger assembles a tagger from the configured data sources: per-tag
// emission corpora plus either an inline transition table or one estimated
// from the tagged corpus. A tagged corpus also backfills emissions for tags
// with no dedicated corpus file.
func (c *commandContext) buildTagger() (*tagger.Tagger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	lm := langmodel.New(cfg.Tagger.Tags, cfg.Emission.Smoothing)
	for tag, path := range cfg.Emission.Corpora {
		if err := lm.Load(tag, path); err != nil {
			return nil, fmt.Errorf("load emission corpus for %s: %w", tag, err)
		}
		logger.Debug("loaded emission corpus", "tag", tag, "path", path, "vocab", lm.Vocab(tag))
	}

	var trans hmm.TransitionTable
	if cfg.Transitions != nil {
		trans = cfg.Transitions
	}

	if cfg.Corpus.Path != "" {
		sents, err := corpus.Load(cfg.Corpus.Path)
		if err != nil {
			return nil, fmt.Errorf("load tagged corpus: %w", err)
		}
		logger.Debug("loaded tagged corpus", "path", cfg.Corpus.Path, "sentences", len(sents))
		if trans == nil {
			trans = corpus.EstimateTransitions(sents, cfg.Tagger.Tags, cfg.Corpus.Smoothing)
		}
		if len(cfg.Emission.Corpora) == 0 {
			corpus.TrainEmissions(lm, sents)
		}
	}

	if trans == nil {
		return nil, errors.New("no transition source: set [transitions] or corpus.path in the config")
	}
	return tagger.New(cfg.Tagger.Tags, trans, lm)
}
