// Package tsp — tour metrics.
//
// This file provides the length of a tour and the argmin over a sequence of
// candidate tours. Lengths are never cached on a Tour: they are recomputed from
// the cities on demand, so a tour can never carry a stale length.
//
// Design:
//   - Strict sentinels from types.go on invalid input.
//   - Stable summation: lengths are rounded to 1e-9 so that rotations and
//     reversals of one cycle report identical lengths across platforms.
//   - ShortestTour consumes lazy sequences (iter.Seq) without materializing them.
package tsp

import (
	"iter"
	"math"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns the cyclic length of tour: the sum of Distance between
// consecutive cities plus the closing edge from the last city back to the first.
//
// Contract:
//   - len(tour) ≥ 1; a single-city tour is a self-loop of length 0.
//   - Returns ErrEmptyTour for an empty tour.
//
// Complexity: O(n).
func TourLength(tour Tour) (float64, error) {
	var n = len(tour)
	if n == 0 {
		return 0, ErrEmptyTour
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += Distance(tour[i], tour[(i+1)%n])
	}

	return round1e9(sum), nil
}

// ShortestTour returns the tour of minimum TourLength among tours.
// Ties are broken by first-seen order, so the result is deterministic whenever
// the sequence order is. A materialized slice can be passed as slices.Values(s).
//
// Contract:
//   - tours yields at least one non-empty tour; an empty sequence returns
//     ErrNoCandidates, an empty candidate returns ErrEmptyTour.
//   - The returned tour is the candidate value itself (not a copy).
//
// Complexity: O(m·n) for m candidate tours of n cities.
func ShortestTour(tours iter.Seq[Tour]) (Tour, error) {
	var (
		best    Tour
		bestLen = math.Inf(1)
		seen    bool
		l       float64
		err     error
	)
	for t := range tours {
		l, err = TourLength(t)
		if err != nil {
			return nil, err
		}
		// Strict comparison keeps the first of equally short tours.
		if !seen || l < bestLen {
			best, bestLen, seen = t, l, true
		}
	}
	if !seen {
		return nil, ErrNoCandidates
	}

	return best, nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
