package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/JaskiratSingh23/cstag/corpus"
)

func newEvalCommand(ctx *commandContext) *cobra.Command {
	var corpusFlag string

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate tagging accuracy against a gold-tagged corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			tg, err := ctx.buildTagger()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			path := corpusFlag
			if path == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				path = cfg.Corpus.Path
			}
			if path == "" {
				return fmt.Errorf("no evaluation corpus: pass --corpus or set corpus.path")
			}

			sents, err := corpus.Load(path)
			if err != nil {
				return err
			}
			logger.Info("evaluating", "path", path, "sentences", len(sents))

			res, err := corpus.Evaluate(tg, sents)
			if err != nil {
				return err
			}
			printResult(cmd, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusFlag, "corpus", "", "Gold-tagged corpus to evaluate against")
	return cmd
}

func printResult(cmd *cobra.Command, res *corpus.Result) {
	headers := []string{"Tag", "Tokens", "Correct", "Accuracy"}
	var rows [][]string
	for _, tag := range res.Tags() {
		tr := res.PerTag[tag]
		rows = append(rows, []string{
			tag,
			fmt.Sprintf("%d", tr.Total),
			fmt.Sprintf("%d", tr.Correct),
			fmt.Sprintf("%.2f%%", tr.Accuracy()*100),
		})
	}
	rows = append(rows, []string{
		"all",
		fmt.Sprintf("%d", res.Total),
		fmt.Sprintf("%d", res.Correct),
		fmt.Sprintf("%.2f%%", res.Accuracy()*100),
	})

	out := cmd.OutOrStdout()
	if stdoutIsTerminal() {
		fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignLeft, alignRight, alignRight, alignRight}))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", row[0], row[1], row[2], row[3])
	}
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
