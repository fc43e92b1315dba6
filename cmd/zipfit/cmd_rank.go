package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zipflab/zipfit/dataset"
	"github.com/zipflab/zipfit/fit"
)

func newRankCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rank FILE",
		Short: "Fit a rank-frequency distribution from a counts file",
		Long: `Fit a rank-frequency distribution from a counts file.

The file holds one strictly positive count per line; blank lines and '#'
comments are skipped. Ranks are synthesized automatically: the largest count
gets rank 1.`,
		Args: cobra.ExactArgs(1),
		RunE: runRank,
	}
}

func runRank(cmd *cobra.Command, args []string) error {
	counts, err := dataset.ReadCounts(args[0])
	if err != nil {
		return err
	}
	slog.Debug("loaded counts", "file", args[0], "n", len(counts))

	res, err := fit.ByRank(counts, fitOptions(cmd)...)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)

	return nil
}
