package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaskiratSingh23/cstag/tagger"
)

func newTagCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "tag [text...]",
		Short: "Tag each word of a code-switched text with its language",
		RunE: func(cmd *cobra.Command, args []string) error {
			tg, err := ctx.buildTagger()
			if err != nil {
				return err
			}

			if len(args) > 0 {
				return tagLine(cmd, tg, strings.Join(args, " "))
			}

			// Interactive / piped mode: one sentence per line.
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := tagLine(cmd, tg, line); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}
}

func tagLine(cmd *cobra.Command, tg *tagger.Tagger, line string) error {
	tagged, err := tg.TagText(line)
	if err != nil {
		return err
	}
	pairs := make([]string, len(tagged))
	for i, tw := range tagged {
		pairs[i] = tw.Word + "/" + tw.Tag
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(pairs, " "))
	return nil
}
