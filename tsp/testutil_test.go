// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: literal fixtures, seeded random instances and a few
// tour projections used by assertions.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourlab/tsp"
)

const (
	// epsTiny absorbs the 1e-9 length stabilization when comparing two
	// independently summed lengths of the same cycle.
	epsTiny = 1e-9

	// seedDet is the deterministic seed used by sampling tests.
	seedDet = int64(42)
)

// triangle345 is the 3-4-5 right triangle: (0,0) → (3,0) → (3,4).
func triangle345() []tsp.City {
	return tsp.NewCities([2]float64{0, 0}, [2]float64{3, 0}, [2]float64{3, 4})
}

// unitSquare lists the corners of the unit square counter-clockwise.
func unitSquare() []tsp.City {
	return tsp.NewCities([2]float64{0, 0}, [2]float64{1, 0}, [2]float64{1, 1}, [2]float64{0, 1})
}

// randomCities places n cities uniformly in [0,100)² from seed.
func randomCities(n int, seed int64) []tsp.City {
	r := rand.New(rand.NewSource(seed))
	pts := make([][2]float64, n)

	var i int
	for i = range pts {
		pts[i] = [2]float64{100 * r.Float64(), 100 * r.Float64()}
	}

	return tsp.NewCities(pts...)
}

// ids projects a tour onto its city IDs.
func ids(t tsp.Tour) []int {
	out := make([]int, len(t))
	for i, c := range t {
		out[i] = c.ID
	}

	return out
}

// factorial returns n! for small n (0! == 1).
func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}

	return f
}

// mustLength returns TourLength(t) and fails the test on error.
func mustLength(t *testing.T, tour tsp.Tour) float64 {
	t.Helper()
	l, err := tsp.TourLength(tour)
	if err != nil {
		t.Fatalf("TourLength(%v): %v", tour, err)
	}

	return l
}

// Repeat runs fn k times as subtests, to lock in deterministic behavior.
func Repeat(t *testing.T, k int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < k; i++ {
		t.Run("", fn)
	}
}
