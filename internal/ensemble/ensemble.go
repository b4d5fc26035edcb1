// Package ensemble runs many independent replicates of one scenario and
// aggregates how they end. Replicates share nothing but the config: each
// gets its own ecosystem, world, and seeded stream, so workers never
// contend and the worker count cannot change the numbers.
package ensemble

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/talgya/greenhouse/internal/forecast"
	"github.com/talgya/greenhouse/internal/scenario"
)

// Options controls an ensemble run.
type Options struct {
	Runs     int   // number of replicates
	Years    int   // simulated years per replicate
	BaseSeed int64 // replicate i runs with seed BaseSeed+i
	Workers  int   // 0 means NumCPU
}

// Result captures where one replicate ended.
type Result struct {
	Seed                 int64
	Burnout              float64
	TrueEfficiency       float64
	RecognizedEfficiency float64
	StudentExitRate      float64
	HopeRatio            float64
	StaffLeft            int
}

// Stats summarizes one quantity across replicates.
type Stats struct {
	Mean   float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summary aggregates an ensemble.
type Summary struct {
	Runs     int
	Years    int
	BaseSeed int64

	Burnout              Stats
	TrueEfficiency       Stats
	RecognizedEfficiency Stats
	StudentExitRate      Stats
	HopeRatio            Stats
	StaffLeft            Stats
}

// Run executes opts.Runs replicates of cfg and aggregates them. Replicate i
// always uses seed BaseSeed+i, so the summary is reproducible regardless of
// worker count or scheduling.
func Run(cfg *scenario.Config, opts Options) (*Summary, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("ensemble: runs must be positive, got %d", opts.Runs)
	}
	if opts.Years <= 0 {
		return nil, fmt.Errorf("ensemble: years must be positive, got %d", opts.Years)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Runs {
		workers = opts.Runs
	}

	results := make([]Result, opts.Runs)
	errs := make([]error, opts.Runs)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = runOne(cfg, opts.BaseSeed+int64(i), opts.Years)
			}
		}()
	}
	for i := 0; i < opts.Runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return summarize(results, opts), nil
}

// runOne plays a single replicate to the end and reads off its final state.
// The trajectory coin flips are resolved the same way the reporting phase
// would, just without the table.
func runOne(cfg *scenario.Config, seed int64, years int) (Result, error) {
	scene, err := scenario.Build(cfg, seed)
	if err != nil {
		return Result{}, err
	}

	eco := scene.School
	for y := 0; y < years; y++ {
		eco.SimulateYear()
	}

	total, hopeful := 0, 0
	staffLeft := 0
	for _, a := range eco.Actors {
		if a.IsStaff() {
			if a.HasLeftSystem {
				staffLeft++
			}
			continue
		}
		if !a.IsStudent() {
			continue
		}
		total++
		p := forecast.FutureHopeProbability(eco, scene.World, a)
		if scene.World.Roll(p) {
			hopeful++
		}
	}
	ratio := 0.0
	if total > 0 {
		ratio = float64(hopeful) / float64(total)
	}

	return Result{
		Seed:                 seed,
		Burnout:              eco.Workforce.Burnout,
		TrueEfficiency:       eco.Output.TrueEfficiency,
		RecognizedEfficiency: eco.Output.RecognizedEfficiency,
		StudentExitRate:      eco.Workforce.StudentExitRate,
		HopeRatio:            ratio,
		StaffLeft:            staffLeft,
	}, nil
}

func summarize(results []Result, opts Options) *Summary {
	pick := func(f func(Result) float64) Stats {
		values := make([]float64, len(results))
		for i, r := range results {
			values[i] = f(r)
		}
		return computeStats(values)
	}

	return &Summary{
		Runs:     opts.Runs,
		Years:    opts.Years,
		BaseSeed: opts.BaseSeed,

		Burnout:              pick(func(r Result) float64 { return r.Burnout }),
		TrueEfficiency:       pick(func(r Result) float64 { return r.TrueEfficiency }),
		RecognizedEfficiency: pick(func(r Result) float64 { return r.RecognizedEfficiency }),
		StudentExitRate:      pick(func(r Result) float64 { return r.StudentExitRate }),
		HopeRatio:            pick(func(r Result) float64 { return r.HopeRatio }),
		StaffLeft:            pick(func(r Result) float64 { return float64(r.StaffLeft) }),
	}
}

func computeStats(values []float64) Stats {
	s := Stats{Min: values[0], Max: values[0]}

	sum := 0.0
	for _, v := range values {
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Mean = sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - s.Mean
		variance += d * d
	}
	s.StdDev = math.Sqrt(variance / float64(len(values)))

	return s
}
