// Command schoolsim runs the protected-school ecosystem simulation: single
// runs with full reports, Monte Carlo sweeps over seeds, and a serve mode
// that advances a run on a timer for observation over HTTP.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/talgya/greenhouse/internal/scenario"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "schoolsim",
		Short: "Protected-school ecosystem simulator",
		Long: `schoolsim evolves a small protected school year by year while a harsher
world shifts outside. It reports who would survive out there, which
students carry forward, and how far the recognized KPIs drift from what
is actually happening.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().String("scenario", "", "scenario YAML file (default: built-in demo)")
	rootCmd.PersistentFlags().Int64("seed", envInt64("SCHOOLSIM_SEED", 42), "random seed")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("schoolsim version %s\n", version)
		},
	}
}

// setupLogging sends structured logs to stderr so report output on stdout
// stays clean enough to pipe.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadScenario returns the built-in demo or the file named by --scenario.
func loadScenario(cmd *cobra.Command) (*scenario.Config, error) {
	path, _ := cmd.Flags().GetString("scenario")
	if path == "" {
		return scenario.Default(), nil
	}
	return scenario.LoadFromFile(path)
}

func seedFlag(cmd *cobra.Command) int64 {
	seed, _ := cmd.Flags().GetInt64("seed")
	return seed
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func envInt(key string, fallback int) int {
	return int(envInt64(key, int64(fallback)))
}
