package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/greenhouse/internal/history"
	"github.com/talgya/greenhouse/internal/report"
	"github.com/talgya/greenhouse/internal/scenario"
)

// newRunCmd runs one seeded simulation end to end: reports before, yearly
// ticks, reports after, and optionally every metric into SQLite.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and print the full reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			years, _ := cmd.Flags().GetInt("years")
			dbPath, _ := cmd.Flags().GetString("db")
			quiet, _ := cmd.Flags().GetBool("quiet")

			cfg, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			seed := seedFlag(cmd)

			scene, err := scenario.Build(cfg, seed)
			if err != nil {
				return err
			}
			eco := scene.School

			var out io.Writer = cmd.OutOrStdout()
			if quiet {
				// Reports still run so outcomes get resolved for recording.
				out = io.Discard
			}

			var rec *history.Recorder
			var runID string
			if dbPath != "" {
				rec, err = history.Open(dbPath)
				if err != nil {
					return err
				}
				defer rec.Close()

				runID, err = rec.BeginRun(cfg.Name, cfg.School, seed, years)
				if err != nil {
					return err
				}
				slog.Info("recording run", "db", dbPath, "run_id", runID)
			}

			slog.Info("scenario ready",
				"scenario", cfg.Name,
				"school", cfg.School,
				"seed", seed,
				"staff", len(eco.Staff()),
				"students", len(eco.Students()),
			)

			report.Summary(out, eco)
			report.SurvivalTable(out, eco, scene.World)
			if err := report.Scores(out, eco, scene.Utilities); err != nil {
				return err
			}

			for y := 0; y < years; y++ {
				eco.SimulateYear()
				slog.Info("year complete",
					"year", eco.YearsSimulated,
					"burnout", fmt.Sprintf("%.3f", eco.Workforce.Burnout),
					"efficiency_true", fmt.Sprintf("%.3f", eco.Output.TrueEfficiency),
					"exit_rate", fmt.Sprintf("%.3f", eco.Workforce.StudentExitRate),
				)
				if rec != nil {
					if err := rec.RecordYear(runID, eco); err != nil {
						return err
					}
				}
			}

			fmt.Fprintln(out)
			report.Summary(out, eco)
			report.SurvivalTable(out, eco, scene.World)
			report.Reintegration(out, eco, scene.World)
			report.Trajectories(out, eco, scene.World)
			if err := report.Scores(out, eco, scene.Utilities); err != nil {
				return err
			}
			report.Epilogue(out, eco)

			if rec != nil {
				if err := rec.RecordOutcomes(runID, eco.Actors); err != nil {
					return err
				}
				if err := rec.FinishRun(runID); err != nil {
					return err
				}
				slog.Info("run recorded", "run_id", runID, "years", eco.YearsSimulated)
			}
			return nil
		},
	}

	cmd.Flags().Int("years", envInt("SCHOOLSIM_YEARS", 5), "years to simulate")
	cmd.Flags().String("db", os.Getenv("SCHOOLSIM_DB"), "SQLite file to record the run into (empty disables)")
	cmd.Flags().Bool("quiet", false, "suppress report output, keep logs and recording")
	return cmd
}
