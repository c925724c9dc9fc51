// Package sweep runs final-state searches over many seeded boards in parallel.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"golboard/pkg/core"
	"golboard/pkg/life"
)

// Options configure a sweep. Boards are seeded Seed, Seed+1, ... Seed+Count-1.
type Options struct {
	Width       int
	Height      int
	Count       int
	Seed        int64
	MaxAttempts int
	Workers     int
}

// Run is the outcome for a single seed.
type Run struct {
	Seed            int64
	InitialDensity  float64
	FinalPopulation int
	Result          life.Result
}

// Summary aggregates a sweep.
type Summary struct {
	Runs     []Run
	Outcomes map[life.Outcome]int
	// Periods counts settled runs by cycle length (1 = still life).
	Periods map[int]int
	// MeanSettle is the mean generation at which settled runs first entered
	// their final pattern.
	MeanSettle     float64
	MeanDensity    float64
	SettledPercent float64
}

// Execute seeds and searches every board. Boards are independent, so they run
// concurrently on up to opts.Workers goroutines; each board is only touched by
// the goroutine that owns it.
func Execute(ctx context.Context, opts Options) (Summary, error) {
	if _, err := life.NewBoard(0, opts.Width, opts.Height); err != nil {
		return Summary{}, err
	}
	if opts.Count < 0 {
		return Summary{}, fmt.Errorf("sweep: count must not be negative, got %d", opts.Count)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	runs := make([]Run, opts.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			runs[i] = runSeed(opts, opts.Seed+int64(i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return summarize(runs), nil
}

func runSeed(opts Options, seed int64) Run {
	b, _ := life.NewBoard(seed, opts.Width, opts.Height)
	life.Seed(b, core.NewRNG(seed))
	density := float64(b.Population()) / float64(opts.Width*opts.Height)
	res := life.Stabilize(b, opts.MaxAttempts)
	return Run{Seed: seed, InitialDensity: density, FinalPopulation: b.Population(), Result: res}
}

func summarize(runs []Run) Summary {
	s := Summary{Runs: runs, Outcomes: map[life.Outcome]int{}, Periods: map[int]int{}}
	if len(runs) == 0 {
		return s
	}
	settled, settleSum := 0, 0
	for _, r := range runs {
		s.Outcomes[r.Result.Outcome]++
		s.MeanDensity += r.InitialDensity
		if r.Result.Reached() {
			settled++
			settleSum += r.Result.FirstSeen
			s.Periods[r.Result.Period]++
		}
	}
	s.MeanDensity /= float64(len(runs))
	s.SettledPercent = 100 * float64(settled) / float64(len(runs))
	if settled > 0 {
		s.MeanSettle = float64(settleSum) / float64(settled)
	}
	return s
}

// Slowest returns up to n settled runs ordered by how long they took to
// settle, longest first.
func (s Summary) Slowest(n int) []Run {
	var out []Run
	for _, r := range s.Runs {
		if r.Result.Reached() {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Result.FirstSeen != out[j].Result.FirstSeen {
			return out[i].Result.FirstSeen > out[j].Result.FirstSeen
		}
		return out[i].Seed < out[j].Seed
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
