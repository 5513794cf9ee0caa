package montecarlo

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"portfolio-analyzer/internal/id"
	"portfolio-analyzer/internal/model"
)

// Result is the immutable outcome of one engine run. Paths and FinalValues
// are produced fresh per call and never mutated after creation.
type Result struct {
	ID          string                  `json:"id"`
	CreatedAt   time.Time               `json:"created_at"`
	Paths       [][]model.PathPoint     `json:"simulation_paths"`
	FinalValues []float64               `json:"final_values"`
	Stats       Statistics              `json:"statistics"`
	Request     model.SimulationRequest `json:"parameters"`
}

// Options configure an Engine.
type Options struct {
	// Seed fixes the randomness of a batch. Identical seed and request give
	// a byte-identical Result regardless of worker count, because each path
	// derives its own stream from (seed, path index).
	Seed int64

	// Workers is the number of goroutines simulating paths. Zero or
	// negative means GOMAXPROCS.
	Workers int
}

// Engine orchestrates a Monte Carlo batch: validate the request, simulate N
// independent paths, aggregate the final-value distribution.
type Engine struct {
	seed    int64
	workers int
}

func New(opts Options) *Engine {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{seed: opts.Seed, workers: workers}
}

// Run executes the batch. Validation failures return *model.ValidationError
// before any path is simulated. Cancellation is cooperative: the context is
// checked between path iterations, never mid-path, so a caller timeout
// terminates within roughly one path's cost.
func (e *Engine) Run(ctx context.Context, req *model.SimulationRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	paths := make([][]model.PathPoint, req.NumSimulations)
	summaries := make([]pathSummary, req.NumSimulations)

	if err := e.simulateAll(ctx, req, paths, summaries); err != nil {
		return nil, err
	}

	finalValues := make([]float64, req.NumSimulations)
	for i, p := range paths {
		finalValues[i] = p[len(p)-1].PortfolioValue
	}

	return &Result{
		ID:          id.New(),
		CreatedAt:   time.Now().UTC(),
		Paths:       paths,
		FinalValues: finalValues,
		Stats:       Aggregate(finalValues, req, summaries),
		Request:     *req,
	}, nil
}

func (e *Engine) simulateAll(ctx context.Context, req *model.SimulationRequest, paths [][]model.PathPoint, summaries []pathSummary) error {
	workers := e.workers
	if workers > req.NumSimulations {
		workers = req.NumSimulations
	}

	if workers <= 1 {
		for i := range paths {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("simulation cancelled after %d paths: %w", i, err)
			}
			paths[i], summaries[i] = simulatePath(req, e.pathSampler(i))
		}
		return nil
	}

	// Workers write to disjoint indexes, so the result slices need no lock.
	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				paths[i], summaries[i] = simulatePath(req, e.pathSampler(i))
			}
		}()
	}

	var cancelled error
feed:
	for i := 0; i < req.NumSimulations; i++ {
		if err := ctx.Err(); err != nil {
			cancelled = fmt.Errorf("simulation cancelled after %d paths: %w", i, err)
			break feed
		}
		select {
		case <-ctx.Done():
			cancelled = fmt.Errorf("simulation cancelled after %d paths: %w", i, ctx.Err())
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	return cancelled
}

// pathSampler derives the independent randomness stream for one path. The
// multiplier spreads consecutive indexes across the seed space so adjacent
// paths do not share correlated low bits. Mixing happens in uint64 because
// the multiplier exceeds the int64 range; overflow wrap is intended.
func (e *Engine) pathSampler(pathIndex int) *Sampler {
	seed := e.seed + int64(uint64(pathIndex)*0x9E3779B97F4A7C15)
	return NewSampler(rand.New(rand.NewSource(seed)))
}
