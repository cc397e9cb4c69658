package framework

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestDominates(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name string
		a, b []float64
		want bool
	}{
		{"strictly better everywhere", []float64{1, 1}, []float64{2, 2}, true},
		{"better in one, equal in the rest", []float64{1, 2}, []float64{1, 3}, true},
		{"identical vectors", []float64{2, 2}, []float64{2, 2}, false},
		{"trade-off", []float64{1, 4}, []float64{2, 3}, false},
		{"worse everywhere", []float64{5, 5}, []float64{1, 1}, false},
		{"negative objectives", []float64{-3, -1}, []float64{-2, 0}, true},
		{"single objective", []float64{1}, []float64{2}, true},
		{"single objective equal", []float64{1}, []float64{1}, false},
		{"nan on the right", []float64{1, 1}, []float64{nan, 2}, false},
		{"nan on the left", []float64{nan, 2}, []float64{1, 1}, false},
		{"nan on both sides", []float64{nan, 1}, []float64{nan, 2}, false},
		{"all nan", []float64{nan, nan}, []float64{nan, nan}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dominates(Individual{Objectives: tt.a}, Individual{Objectives: tt.b})
			if got != tt.want {
				t.Errorf("Dominates(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Domination must be a strict partial order: irreflexive and asymmetric.
func TestDominatesStrictness(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := 0; trial < 1000; trial++ {
		a := Individual{Objectives: randomVector(rng)}
		b := Individual{Objectives: randomVector(rng)}

		if Dominates(a, a) {
			t.Fatalf("individual dominates itself: %v", a.Objectives)
		}
		if Dominates(a, b) && Dominates(b, a) {
			t.Fatalf("mutual domination between %v and %v", a.Objectives, b.Objectives)
		}
	}
}

// Draw from a coarse grid so equal components and duplicate vectors show up.
func randomVector(rng *rand.Rand) []float64 {
	v := make([]float64, 3)
	for i := range v {
		v[i] = float64(rng.IntN(4))
	}
	return v
}
