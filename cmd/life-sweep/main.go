package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"golboard/internal/sweep"
	"golboard/pkg/life"
)

func main() {
	width := flag.Int("w", life.DefaultWidth, "board width")
	height := flag.Int("h", life.DefaultHeight, "board height")
	count := flag.Int("count", 1000, "number of seeds to simulate")
	seed := flag.Int64("seed", 1, "first seed")
	attempts := flag.Int("max-attempts", 500, "generations searched per board")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "slowest settling seeds to list")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d boards of %dx%d (%d workers, %d attempts)\n", *count, *width, *height, *workers, *attempts)
	start := time.Now()
	sum, err := sweep.Execute(ctx, sweep.Options{
		Width:       *width,
		Height:      *height,
		Count:       *count,
		Seed:        *seed,
		MaxAttempts: *attempts,
		Workers:     *workers,
	})
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nOutcomes (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, o := range []life.Outcome{life.Stable, life.Cyclic, life.Exhausted} {
		fmt.Printf("  %-9s %d\n", o, sum.Outcomes[o])
	}
	fmt.Printf("settled=%.1f%% meanSettle=%.1f meanDensity=%.3f\n", sum.SettledPercent, sum.MeanSettle, sum.MeanDensity)

	periods := make([]int, 0, len(sum.Periods))
	for p := range sum.Periods {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	fmt.Println("\nPeriods:")
	for _, p := range periods {
		fmt.Printf("  %3d: %d\n", p, sum.Periods[p])
	}

	fmt.Printf("\nSlowest %d:\n", *top)
	for i, run := range sum.Slowest(*top) {
		fmt.Printf("%2d) seed=%d settledAt=%d period=%d density=%.3f finalPop=%d\n",
			i+1, run.Seed, run.Result.FirstSeen, run.Result.Period, run.InitialDensity, run.FinalPopulation)
	}
}
