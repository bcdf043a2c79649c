package main

import (
	"flag"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"hexterra/internal/terrain"
	"hexterra/pkg/core"
)

type paramSet struct {
	landRatio     float64
	peakMult      float64
	lakeThreshold float64
	seed          int64
}

func (p paramSet) String() string {
	return fmt.Sprintf("land=%.2f peak=%.2f lake=%.2f seed=%d",
		p.landRatio, p.peakMult, p.lakeThreshold, p.seed)
}

type scenarioResult struct {
	params       paramSet
	landFraction float64
	landError    float64
	seaLevel     float64
	iterations   int
	riverCorners int
	seaCenters   int
	lakeCenters  int
	err          error
}

func main() {
	width := flag.Int("width", 96, "map width in cells")
	height := flag.Int("height", 72, "map height in cells")
	seeds := flag.Int("seeds", 3, "seeds to average per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	baseCfg := terrain.DefaultConfig()
	baseCfg.Width = *width
	baseCfg.Height = *height

	landOptions := []float64{0.3, 0.4, 0.5, 0.6}
	peakOptions := []float64{1.0, 1.1, 1.25, 1.5}
	lakeOptions := []float64{0.15, 0.3, 0.5}

	var sets []paramSet
	for _, land := range landOptions {
		for _, peak := range peakOptions {
			for _, lake := range lakeOptions {
				for s := 0; s < *seeds; s++ {
					sets = append(sets, paramSet{
						landRatio:     land,
						peakMult:      peak,
						lakeThreshold: lake,
						seed:          baseCfg.Seed + int64(s),
					})
				}
			}
		}
	}

	// Interleave cheap and expensive scenarios across the workers.
	core.NewRNG(1).Source().Shuffle(len(sets), func(i, j int) {
		sets[i], sets[j] = sets[j], sets[i]
	})

	fmt.Printf("Sweeping %d scenarios (%d workers, %dx%d cells)\n",
		len(sets), *workers, *width, *height)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		if res.err != nil {
			fmt.Printf("FAILED %s: %v\n", res.params, res.err)
			continue
		}
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].landError != all[j].landError {
			return all[i].landError < all[j].landError
		}
		return all[i].params.String() < all[j].params.String()
	})
	elapsed := time.Since(start)

	fmt.Printf("\nTop 10 by land-ratio accuracy (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) land=%.3f (err %.4f) seaLevel=%.3f iters=%d rivers=%d seas=%d lakes=%d %s\n",
			i+1, res.landFraction, res.landError, res.seaLevel, res.iterations,
			res.riverCorners, res.seaCenters, res.lakeCenters, res.params)
	}
}

func runScenario(base terrain.Config, params paramSet) scenarioResult {
	cfg := base
	cfg.Seed = params.seed
	cfg.Params.LandRatio = params.landRatio
	cfg.Params.PeakMultiplier = params.peakMult
	cfg.Params.LakeThreshold = params.lakeThreshold

	data, err := terrain.Generate(cfg)
	if err != nil {
		return scenarioResult{params: params, err: err}
	}

	stats := data.Stats()
	return scenarioResult{
		params:       params,
		landFraction: stats.LandFraction,
		landError:    math.Abs(stats.LandFraction - params.landRatio),
		seaLevel:     stats.SeaLevel,
		iterations:   stats.CalibrationIterations,
		riverCorners: stats.RiverCorners,
		seaCenters:   stats.SeaCenters,
		lakeCenters:  stats.LakeCenters,
	}
}
