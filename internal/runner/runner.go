package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/torus/internal/life"
	"github.com/san-kum/torus/internal/metrics"
)

// Observer is notified after every generation, starting with the seed (0).
type Observer interface {
	OnGeneration(gen int, g *life.Grid) error
}

type Config struct {
	Delay time.Duration
	// Generations to run; 0 runs until the context is canceled.
	Generations int
	StopOnCycle bool
}

// Cycle describes the first repeated state: the generation at Start
// reappears every Period generations. States are compared cell by cell.
type Cycle struct {
	Start  int `json:"start"`
	Period int `json:"period"`
}

type Result struct {
	Generations int
	Population  []int
	Metrics     map[string]float64
	Cycle       *Cycle
}

type Runner struct {
	metrics     []metrics.Metric
	observers   []Observer
	fingerprint func(*life.Grid) uint64
}

func New() *Runner {
	return &Runner{
		metrics:     make([]metrics.Metric, 0),
		observers:   make([]Observer, 0),
		fingerprint: (*life.Grid).Fingerprint,
	}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, g *life.Grid, cfg Config) (*Result, error) {
	if cfg.Generations < 0 {
		return nil, fmt.Errorf("generations must not be negative, got %d", cfg.Generations)
	}
	if cfg.Delay < 0 {
		return nil, fmt.Errorf("delay must not be negative, got %v", cfg.Delay)
	}

	capacity := cfg.Generations + 1
	if cfg.Generations == 0 {
		capacity = 256
	}
	result := &Result{
		Population: make([]int, 0, capacity),
		Metrics:    make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	seen := newHistory(g, r.fingerprint)
	seen.visit(0, g)
	if err := r.observe(0, g, result); err != nil {
		return result, err
	}

	for gen := 1; cfg.Generations == 0 || gen <= cfg.Generations; gen++ {
		select {
		case <-ctx.Done():
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		life.Advance(g)
		result.Generations = gen

		if err := r.observe(gen, g, result); err != nil {
			r.collect(result)
			return result, err
		}

		if result.Cycle == nil {
			if start, ok := seen.visit(gen, g); ok {
				result.Cycle = &Cycle{Start: start, Period: gen - start}
				if cfg.StopOnCycle {
					break
				}
			}
		}

		if cfg.Delay > 0 && gen != cfg.Generations {
			if err := wait(ctx, cfg.Delay); err != nil {
				r.collect(result)
				return result, err
			}
		}
	}

	r.collect(result)
	return result, nil
}

func (r *Runner) observe(gen int, g *life.Grid, result *Result) error {
	result.Population = append(result.Population, g.Population())
	for _, m := range r.metrics {
		m.Observe(gen, g)
	}
	for _, obs := range r.observers {
		if err := obs.OnGeneration(gen, g); err != nil {
			return fmt.Errorf("generation %d: %w", gen, err)
		}
	}
	return nil
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
