// Package sweep runs many seeded simulations across a range of initial
// probabilities and aggregates how the populations settle.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/san-kum/torus/internal/life"
	"github.com/san-kum/torus/internal/metrics"
	"github.com/san-kum/torus/internal/rng"
	"github.com/san-kum/torus/internal/runner"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSweep = errors.New("sweep: invalid sweep definition")

// Sweep defines a probability sweep. Each of Steps probabilities in
// [ProbMin, ProbMax] is run Runs times with seeds SeedStart, SeedStart+1, ...
type Sweep struct {
	Height      int     `yaml:"height"`
	Width       int     `yaml:"width"`
	ProbMin     float64 `yaml:"prob_min"`
	ProbMax     float64 `yaml:"prob_max"`
	Steps       int     `yaml:"steps"`
	Runs        int     `yaml:"runs"`
	SeedStart   int64   `yaml:"seed_start"`
	Generations int     `yaml:"generations"`
	Workers     int     `yaml:"workers"`
}

func DefaultSweep() *Sweep {
	return &Sweep{
		Height:      20,
		Width:       100,
		ProbMin:     0.05,
		ProbMax:     0.5,
		Steps:       10,
		Runs:        8,
		SeedStart:   1,
		Generations: 200,
	}
}

// LoadSweep loads a sweep from a YAML file
func LoadSweep(path string) (*Sweep, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sw := DefaultSweep()
	if err := yaml.Unmarshal(data, sw); err != nil {
		return nil, err
	}
	if err := sw.Validate(); err != nil {
		return nil, err
	}
	return sw, nil
}

func (s *Sweep) Validate() error {
	switch {
	case s.Height < life.MinDimension || s.Width < life.MinDimension:
		return fmt.Errorf("%w: grid must be at least %dx%d", ErrInvalidSweep, life.MinDimension, life.MinDimension)
	case s.ProbMin < 0 || s.ProbMax > 1 || s.ProbMin > s.ProbMax:
		return fmt.Errorf("%w: need 0 <= prob_min <= prob_max <= 1", ErrInvalidSweep)
	case s.Steps < 1 || s.Runs < 1:
		return fmt.Errorf("%w: steps and runs must be positive", ErrInvalidSweep)
	case s.Generations < 1:
		return fmt.Errorf("%w: generations must be positive", ErrInvalidSweep)
	case s.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidSweep)
	}
	return nil
}

// Probabilities returns the evenly spaced probabilities of the sweep.
func (s *Sweep) Probabilities() []float64 {
	if s.Steps == 1 {
		return []float64{s.ProbMin}
	}
	step := (s.ProbMax - s.ProbMin) / float64(s.Steps-1)
	out := make([]float64, s.Steps)
	for i := range out {
		out[i] = s.ProbMin + float64(i)*step
	}
	return out
}

// Point aggregates the runs at one probability.
type Point struct {
	Probability  float64
	FinalDensity float64
	MeanDensity  float64
	CycleRate    float64
	Extinct      float64
}

type outcome struct {
	final   float64
	mean    float64
	cycled  bool
	extinct bool
}

// Run executes every run of the sweep. Each run owns its grid; runs execute
// concurrently on up to Workers goroutines (GOMAXPROCS when zero).
func Run(ctx context.Context, s *Sweep) ([]Point, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	probs := s.Probabilities()
	outcomes := make([][]outcome, len(probs))
	for i := range outcomes {
		outcomes[i] = make([]outcome, s.Runs)
	}

	workers := s.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, p := range probs {
		for j := 0; j < s.Runs; j++ {
			eg.Go(func() error {
				o, err := runOne(ctx, s, p, s.SeedStart+int64(j))
				if err != nil {
					return fmt.Errorf("p=%.3f seed=%d: %w", p, s.SeedStart+int64(j), err)
				}
				outcomes[i][j] = o
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	points := make([]Point, len(probs))
	for i, p := range probs {
		pt := Point{Probability: p}
		for _, o := range outcomes[i] {
			pt.FinalDensity += o.final
			pt.MeanDensity += o.mean
			if o.cycled {
				pt.CycleRate++
			}
			if o.extinct {
				pt.Extinct++
			}
		}
		n := float64(s.Runs)
		pt.FinalDensity /= n
		pt.MeanDensity /= n
		pt.CycleRate /= n
		pt.Extinct /= n
		points[i] = pt
	}
	return points, nil
}

func runOne(ctx context.Context, s *Sweep, p float64, seed int64) (outcome, error) {
	g, err := life.CreateGrid(s.Height, s.Width, rng.New(seed, p))
	if err != nil {
		return outcome{}, err
	}

	r := runner.New()
	density := metrics.NewDensity()
	r.AddMetric(density)

	result, err := r.Run(ctx, g, runner.Config{Generations: s.Generations, StopOnCycle: true})
	if err != nil {
		return outcome{}, err
	}

	cells := float64(s.Height * s.Width)
	final := result.Population[len(result.Population)-1]
	return outcome{
		final:   float64(final) / cells,
		mean:    density.Value(),
		cycled:  result.Cycle != nil,
		extinct: final == 0,
	}, nil
}
