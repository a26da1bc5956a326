package rng

import "testing"

func TestBernoulli_Deterministic(t *testing.T) {
	a := New(42, 0.5)
	b := New(42, 0.5)
	for i := 0; i < 1000; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestBernoulli_Clamp(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		want float64
	}{
		{"negative", -0.5, 0},
		{"above one", 1.5, 1},
		{"in range", 0.2, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(1, tt.p).Probability(); got != tt.want {
				t.Errorf("Probability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBernoulli_Extremes(t *testing.T) {
	never := New(7, 0)
	always := New(7, 1)
	for i := 0; i < 500; i++ {
		if never.Bool() {
			t.Fatal("p=0 produced true")
		}
		if !always.Bool() {
			t.Fatal("p=1 produced false")
		}
	}
}

func TestBernoulli_Rate(t *testing.T) {
	src := New(3, DefaultProbability)
	const n = 100000
	hits := 0
	for i := 0; i < n; i++ {
		if src.Bool() {
			hits++
		}
	}
	rate := float64(hits) / n
	if rate < 0.19 || rate > 0.21 {
		t.Errorf("rate = %.4f, want about %.2f", rate, DefaultProbability)
	}
}
