// Package rng provides seeded random draws for seeding simulations.
package rng

import "math/rand/v2"

// DefaultProbability is the chance that a seeded cell starts alive.
const DefaultProbability = 0.2

// Bernoulli draws booleans that are true with probability p.
type Bernoulli struct {
	r *rand.Rand
	p float64
}

// New returns a deterministic source for the given seed. p is clamped to [0, 1].
func New(seed int64, p float64) *Bernoulli {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return &Bernoulli{r: rand.New(rand.NewPCG(uint64(seed), 0)), p: p}
}

func (b *Bernoulli) Bool() bool {
	return b.r.Float64() < b.p
}

func (b *Bernoulli) Probability() float64 { return b.p }
