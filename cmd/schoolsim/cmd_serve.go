package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/talgya/greenhouse/internal/api"
	"github.com/talgya/greenhouse/internal/scenario"
)

// newServeCmd keeps one simulation alive, advancing a year every tick of a
// wall-clock timer, and serves its state over the HTTP API.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Advance a run on a timer and expose it over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")
			interval, _ := cmd.Flags().GetDuration("interval")
			maxYears, _ := cmd.Flags().GetInt("max-years")

			cfg, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			seed := seedFlag(cmd)

			scene, err := scenario.Build(cfg, seed)
			if err != nil {
				return err
			}

			collector, err := api.NewCollector(prometheus.NewRegistry())
			if err != nil {
				return err
			}
			collector.Observe(scene.School)

			adminKey := os.Getenv("SCHOOLSIM_ADMIN_KEY")
			if adminKey == "" {
				slog.Warn("SCHOOLSIM_ADMIN_KEY not set, admin POST endpoints are disabled")
			}

			srv := &api.Server{
				School:    scene.School,
				World:     scene.World,
				Utilities: scene.Utilities,
				Port:      port,
				AdminKey:  adminKey,
				Metrics:   collector,
			}
			srv.Start()

			fmt.Printf("School is open: %s with %d staff and %d students (seed %d).\n",
				cfg.School, len(scene.School.Staff()), len(scene.School.Students()), seed)
			fmt.Printf("API:     http://localhost:%d/api/v1/status\n", port)
			fmt.Printf("Metrics: http://localhost:%d/metrics\n", port)
			fmt.Println("Serving... (Ctrl+C to stop)")

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case <-ticker.C:
					if maxYears > 0 && srv.Years() >= maxYears {
						continue
					}
					srv.Advance()
					slog.Info("year advanced", "year", srv.Years())
				case sig := <-sigCh:
					slog.Info("received signal, shutting down", "signal", sig.String())
					return nil
				}
			}
		},
	}

	cmd.Flags().Int("port", envInt("SCHOOLSIM_PORT", 8080), "HTTP port")
	cmd.Flags().Duration("interval", 2*time.Second, "wall-clock time per simulated year")
	cmd.Flags().Int("max-years", 0, "stop advancing after this many years (0 = no limit)")
	return cmd
}
