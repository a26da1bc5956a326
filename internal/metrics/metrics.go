// Package metrics summarizes a run generation by generation.
package metrics

import "github.com/san-kum/torus/internal/life"

// Metric observes every generation of a run and reduces it to one value.
type Metric interface {
	Name() string
	Observe(gen int, g *life.Grid)
	Value() float64
	Reset()
}

// Defaults returns the metrics recorded for every run.
func Defaults() []Metric {
	return []Metric{NewPopulation(), NewDensity(), NewChurn()}
}

// Population reports the living cell count of the last observed generation.
type Population struct {
	last int
}

func NewPopulation() *Population { return &Population{} }

func (p *Population) Name() string { return "population" }

func (p *Population) Observe(gen int, g *life.Grid) {
	p.last = g.Population()
}

func (p *Population) Value() float64 { return float64(p.last) }

func (p *Population) Reset() { p.last = 0 }

// Density is the mean fraction of living cells over all observed generations.
type Density struct {
	total   float64
	samples int
}

func NewDensity() *Density { return &Density{} }

func (d *Density) Name() string { return "density" }

func (d *Density) Observe(gen int, g *life.Grid) {
	d.total += float64(g.Population()) / float64(g.Height()*g.Width())
	d.samples++
}

func (d *Density) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.total / float64(d.samples)
}

func (d *Density) Reset() {
	d.total = 0
	d.samples = 0
}

// Churn is the mean fraction of cells that changed state between
// consecutive observed generations.
type Churn struct {
	prev    []life.Cell
	total   float64
	samples int
}

func NewChurn() *Churn { return &Churn{} }

func (c *Churn) Name() string { return "churn" }

func (c *Churn) Observe(gen int, g *life.Grid) {
	cells := g.Cells()
	if c.prev != nil && len(c.prev) == len(cells) {
		changed := 0
		for i := range cells {
			if cells[i] != c.prev[i] {
				changed++
			}
		}
		c.total += float64(changed) / float64(len(cells))
		c.samples++
	}
	c.prev = cells
}

func (c *Churn) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

func (c *Churn) Reset() {
	c.prev = nil
	c.total = 0
	c.samples = 0
}
