package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/zipflab/zipfit/fit"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zipfit",
		Short: "Fit Zipf power-law trendlines to count distributions",
		Long: `Zipfit fits power-law (Zipf) trendlines to count distributions.

It performs a least-squares regression in log-log space and reports the
slope, the y-intercept and the R² of the best-fit line. Input files may be
compressed with Zstd (.zst), S2 (.s2) or LZ4 (.lz4).`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("f32", false, "Narrow fitted values to single precision")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if *debugLogging {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: "15:04:05",
			}),
		))
	}

	cmd.AddCommand(newRankCommand())
	cmd.AddCommand(newSizeCommand())
	cmd.AddCommand(newTextCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}

// fitOptions translates persistent flags into fit options.
func fitOptions(cmd *cobra.Command) []fit.Option {
	var opts []fit.Option
	if f32, _ := cmd.Flags().GetBool("f32"); f32 {
		opts = append(opts, fit.WithSinglePrecision())
	}

	return opts
}

func printResult(w io.Writer, res fit.Result) {
	fmt.Fprintf(w, "slope=%.6g r2=%.6g yintercept=%.6g\n", res.Slope, res.R2, res.YIntercept)
}
