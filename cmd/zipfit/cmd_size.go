package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zipflab/zipfit/dataset"
	"github.com/zipflab/zipfit/fit"
)

func newSizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "size FILE",
		Short: "Fit a size-frequency distribution from a pairs file",
		Long: `Fit a size-frequency distribution from a pairs file.

The file holds one "size count" pair per line; blank lines and '#' comments
are skipped. The sizes are used as the x-axis keys exactly as given, with no
sorting or rank synthesis.`,
		Args: cobra.ExactArgs(1),
		RunE: runSize,
	}
}

func runSize(cmd *cobra.Command, args []string) error {
	sizes, counts, err := dataset.ReadPairs(args[0])
	if err != nil {
		return err
	}
	slog.Debug("loaded pairs", "file", args[0], "n", len(sizes))

	res, err := fit.BySize(sizes, counts, fitOptions(cmd)...)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), res)

	return nil
}
