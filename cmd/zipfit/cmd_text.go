package main

import (
	"bytes"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zipflab/zipfit/dataset"
	"github.com/zipflab/zipfit/fit"
	"github.com/zipflab/zipfit/histogram"
)

func newTextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "text FILE",
		Short: "Fit the rank-frequency distribution of words in a text file",
		Long: `Fit the rank-frequency distribution of words in a text file.

The file is split into whitespace-separated tokens, token occurrences are
counted, and the counts are ranked and fitted. Natural-language text
typically yields a slope near -1 with a high R².`,
		Args: cobra.ExactArgs(1),
		RunE: runText,
	}
}

func runText(cmd *cobra.Command, args []string) error {
	data, err := dataset.Load(args[0])
	if err != nil {
		return err
	}

	counter := histogram.NewCounter()
	tokens, err := counter.AddTokens(bytes.NewReader(data))
	if err != nil {
		return err
	}
	slog.Debug("tokenized corpus", "file", args[0], "tokens", tokens, "distinct", counter.Len())

	res, err := fit.ByRank(counter.Counts(), fitOptions(cmd)...)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)

	return nil
}
