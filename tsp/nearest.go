// Package tsp — nearest-neighbour heuristics.
//
// NNTSP is a two-state walk:
//
//	WALKING — the unvisited set is non-empty: step to the nearest unvisited
//	          city, append it to the tour and drop it from the set.
//	DONE    — the unvisited set is empty: the tour is complete.
//
// The unvisited set is a slice of the input cities in input order, minus the
// start. It is owned by a single walk and shrinks by exactly one city per step.
// Membership is by city value (ID and coordinates), so cities that share
// coordinates are never merged.
//
// Tie-break: among equally near cities the one that comes first in the
// unvisited slice (i.e. first in input order) wins. NNTSP is therefore fully
// deterministic for a given city order and start.
package tsp

import (
	"slices"

	"github.com/samber/lo"
)

// NearestNeighbor returns the member of remaining closest to current.
// Ties go to the first minimal element in remaining.
//
// Errors: ErrEmptyRemaining if remaining is empty.
//
// Complexity: O(len(remaining)).
func NearestNeighbor(current City, remaining []City) (City, error) {
	if len(remaining) == 0 {
		return City{}, ErrEmptyRemaining
	}

	// MinBy replaces the running minimum only on a strict improvement.
	return lo.MinBy(remaining, func(a, b City) bool {
		return Distance(current, a) < Distance(current, b)
	}), nil
}

// NNTSP builds a tour greedily: start at start, then repeatedly go to the
// nearest city not yet visited.
//
// Contract:
//   - cities is a non-empty set without duplicate values.
//   - start is a member of cities.
//
// Errors: ErrEmptyCities, ErrDuplicateCity, ErrStartNotFound.
//
// Complexity: O(n²) time, O(n) space.
func NNTSP(cities []City, start City) (Tour, error) {
	if err := validateCities(cities); err != nil {
		return nil, err
	}
	si := indexOfCity(cities, start)
	if si < 0 {
		return nil, ErrStartNotFound
	}

	return nnWalk(cities, si), nil
}

// nnWalk runs the WALKING/DONE loop from cities[si]. Inputs are pre-validated.
func nnWalk(cities []City, si int) Tour {
	var (
		tour      = make(Tour, 1, len(cities))
		unvisited = slices.Delete(slices.Clone(cities), si, si+1)
		next      City
		at        int
	)
	tour[0] = cities[si]

	for len(unvisited) > 0 {
		// unvisited is non-empty here, so NearestNeighbor cannot fail.
		next, _ = NearestNeighbor(tour[len(tour)-1], unvisited)
		tour = append(tour, next)
		at = slices.Index(unvisited, next)
		unvisited = slices.Delete(unvisited, at, at+1)
	}

	return tour
}

// RepeatedNNTSP runs NNTSP from every city in starts and returns the shortest
// resulting tour. The result is never longer than any single NNTSP(cities, s)
// with s in starts; ties go to the earliest start.
//
// Errors: ErrEmptyCities, ErrDuplicateCity, ErrNoCandidates (empty starts),
// ErrStartNotFound (a start outside cities).
//
// Complexity: O(len(starts)·n²) time, O(n) space per walk.
func RepeatedNNTSP(cities []City, starts []City) (Tour, error) {
	if err := validateCities(cities); err != nil {
		return nil, err
	}
	if len(starts) == 0 {
		return nil, ErrNoCandidates
	}

	// Resolve every start up front: no tour is built for a bad start set.
	idx := make([]int, len(starts))

	var i int
	for i = range starts {
		if idx[i] = indexOfCity(cities, starts[i]); idx[i] < 0 {
			return nil, ErrStartNotFound
		}
	}

	return ShortestTour(func(yield func(Tour) bool) {
		for _, si := range idx {
			if !yield(nnWalk(cities, si)) {
				return
			}
		}
	})
}

// SampledNNTSP runs RepeatedNNTSP from k start cities sampled with seed
// (see SampleStarts). k == AllStarts or k ≥ n uses every city.
//
// Errors: those of SampleStarts and RepeatedNNTSP.
//
// Complexity: O(k·n²) time.
func SampledNNTSP(cities []City, k int, seed int64) (Tour, error) {
	starts, err := SampleStarts(cities, k, rngFromSeed(seed))
	if err != nil {
		return nil, err
	}

	return RepeatedNNTSP(cities, starts)
}
