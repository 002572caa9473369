// Package tsp — exhaustive search.
//
// AllTours enumerates every permutation of the cities (n! tours) and is the
// naive baseline: each cycle is counted n times (once per rotation) and twice
// more for its two directions. NonRedundantTours canonicalizes rotations by
// fixing the first input city and permuting only the rest ((n-1)! tours).
// Both directions of a cycle are still produced on purpose: the enumeration
// stays correct for non-symmetric distances and remains a plain permutation.
//
// Enumeration is index based: gonum's combin.PermutationGenerator produces
// permutations of 0..m-1 which are mapped back onto the cities, with the
// fixed prefix (index 0 for the non-redundant variant) prepended.
//
// Both generators return lazy, finite sequences (iter.Seq). Ranging over a
// sequence again restarts the enumeration and reproduces the same tours in the
// same order. Every yielded tour is a fresh slice owned by the consumer.
//
// Complexity: O(n!·n) for AllToursTSP, O((n-1)!·n) for ExhaustiveTSP. Both are
// intractable beyond roughly 10–12 cities.
package tsp

import (
	"iter"
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// AllTours returns every ordering of cities as a lazy sequence of n! tours.
// For n∈{0,1} the sequence holds exactly one tour (empty or singleton).
func AllTours(cities []City) iter.Seq[Tour] {
	var cs = slices.Clone(cities)

	return func(yield func(Tour) bool) {
		permuteTail(cs, 0, yield)
	}
}

// NonRedundantTours returns the (n-1)! tours that start with cities[0],
// followed by every ordering of the remaining cities.
// For n∈{0,1} the sequence holds exactly one tour (empty or singleton).
func NonRedundantTours(cities []City) iter.Seq[Tour] {
	var cs = slices.Clone(cities)

	return func(yield func(Tour) bool) {
		permuteTail(cs, 1, yield)
	}
}

// ExhaustiveTSP returns an optimal tour: the shortest of NonRedundantTours.
// The returned tour starts with cities[0]; among equally short tours the
// first one enumerated wins.
//
// Errors: ErrEmptyCities, ErrDuplicateCity.
//
// Complexity: O((n-1)!·n) time, O(n) space.
func ExhaustiveTSP(cities []City) (Tour, error) {
	if err := validateCities(cities); err != nil {
		return nil, err
	}

	return ShortestTour(NonRedundantTours(cities))
}

// AllToursTSP returns an optimal tour by scoring every permutation.
// It is the brute-force baseline of ExhaustiveTSP and n times slower.
//
// Errors: ErrEmptyCities, ErrDuplicateCity.
//
// Complexity: O(n!·n) time, O(n) space.
func AllToursTSP(cities []City) (Tour, error) {
	if err := validateCities(cities); err != nil {
		return nil, err
	}

	return ShortestTour(AllTours(cities))
}

// permuteTail yields cities[:fixed] followed by each permutation of
// cities[fixed:]. It stops as soon as yield returns false.
//
// Contract: 0 ≤ fixed; fixed is clamped to len(cities).
//
// Complexity: O(m!·n) for m = n-fixed.
func permuteTail(cities []City, fixed int, yield func(Tour) bool) {
	var n = len(cities)
	if fixed > n {
		fixed = n
	}
	var m = n - fixed

	// Zero or one free position: exactly one ordering.
	if m <= 1 {
		yield(append(Tour{}, cities...))
		return
	}

	var (
		gen  = combin.NewPermutationGenerator(m, m)
		perm = make([]int, m)
		t    Tour
		i, p int
	)
	for gen.Next() {
		gen.Permutation(perm)

		t = make(Tour, n)
		copy(t, cities[:fixed])
		for i, p = range perm {
			t[fixed+i] = cities[fixed+p]
		}
		if !yield(t) {
			return
		}
	}
}
