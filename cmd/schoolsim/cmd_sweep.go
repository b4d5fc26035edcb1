package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/talgya/greenhouse/internal/ensemble"
)

// newSweepCmd runs the scenario many times over consecutive seeds and
// prints aggregate statistics, separating structural outcomes from noise.
func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a seed ensemble and print aggregate statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, _ := cmd.Flags().GetInt("runs")
			years, _ := cmd.Flags().GetInt("years")
			workers, _ := cmd.Flags().GetInt("workers")

			cfg, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			baseSeed := seedFlag(cmd)

			slog.Info("ensemble starting",
				"scenario", cfg.Name,
				"runs", runs,
				"years", years,
				"base_seed", baseSeed,
				"workers", workers,
			)
			start := time.Now()

			summary, err := ensemble.Run(cfg, ensemble.Options{
				Runs:     runs,
				Years:    years,
				BaseSeed: baseSeed,
				Workers:  workers,
			})
			if err != nil {
				return err
			}
			slog.Info("ensemble finished", "elapsed", time.Since(start).Round(time.Millisecond))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== Ensemble: %d runs x %d years (seeds %d..%d) ===\n",
				summary.Runs, summary.Years, summary.BaseSeed, summary.BaseSeed+int64(summary.Runs)-1)
			printStats(out, "Burnout index", summary.Burnout)
			printStats(out, "Efficiency (true)", summary.TrueEfficiency)
			printStats(out, "Efficiency (recognized)", summary.RecognizedEfficiency)
			printStats(out, "Student exit rate", summary.StudentExitRate)
			printStats(out, "Future hope ratio", summary.HopeRatio)
			printStats(out, "Staff who left", summary.StaffLeft)
			return nil
		},
	}

	cmd.Flags().Int("runs", 100, "number of replicates")
	cmd.Flags().Int("years", envInt("SCHOOLSIM_YEARS", 5), "years per replicate")
	cmd.Flags().Int("workers", 0, "parallel workers (0 = one per CPU)")
	return cmd
}

func printStats(w io.Writer, label string, s ensemble.Stats) {
	fmt.Fprintf(w, "%-24s mean=%.3f min=%.3f max=%.3f sd=%.3f\n", label, s.Mean, s.Min, s.Max, s.StdDev)
}
