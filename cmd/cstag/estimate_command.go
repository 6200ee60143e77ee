package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/JaskiratSingh23/cstag/corpus"
)

func newEstimateCommand(ctx *commandContext) *cobra.Command {
	var corpusFlag string
	var smoothingFlag float64

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate a transition table from a tagged corpus and print it as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			path := corpusFlag
			if path == "" {
				path = cfg.Corpus.Path
			}
			if path == "" {
				return fmt.Errorf("no tagged corpus: pass --corpus or set corpus.path")
			}

			sents, err := corpus.Load(path)
			if err != nil {
				return err
			}
			// Without an explicit config the tag set comes from the corpus.
			tags := cfg.Tagger.Tags
			if *ctx.configPath == "" {
				if observed := corpus.TagSet(sents); len(observed) > 0 {
					tags = observed
				}
			}
			logger.Info("estimating transitions", "path", path, "sentences", len(sents), "tags", len(tags))

			trans := corpus.EstimateTransitions(sents, tags, smoothingFlag)
			out, err := toml.Marshal(map[string]any{"transitions": trans})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusFlag, "corpus", "", "Tagged corpus to count tag bigrams from")
	cmd.Flags().Float64Var(&smoothingFlag, "smoothing", 1.0, "Additive smoothing mass per transition cell")
	return cmd
}
