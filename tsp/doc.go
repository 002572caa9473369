// Package tsp provides tour-search algorithms for the Euclidean Travelling
// Salesperson Problem over a finite set of 2-D points (cities).
//
// It covers the classic progression from exact to heuristic search:
//
//   - AllToursTSP — brute force over every permutation.
//
//   - Complexity: O(n!·n)
//
//   - ExhaustiveTSP — brute force with the first city fixed, which removes the
//     n-fold rotational redundancy while keeping both directions.
//
//   - Complexity: O((n-1)!·n)
//
//   - NNTSP — greedy nearest-neighbour walk from a given start.
//
//   - Complexity: O(n²)
//
//   - RepeatedNNTSP / SampledNNTSP — best nearest-neighbour walk over several
//     (or k randomly sampled) start cities.
//
//   - Complexity: O(k·n²)
//
// Tours are plain []City values interpreted cyclically: the last city connects
// back to the first. Tour length is always recomputed from the cities
// (TourLength) and is never stored.
//
// Exhaustive search is only practical for n≲10–12 cities; that limit is
// inherent to the approach and is not guarded against.
//
// All functions are pure and deterministic for deterministic inputs. Random
// start sampling is driven by a caller-provided *rand.Rand or seed. Errors
// are sentinels from types.go and are matched with errors.Is against either a
// specific sentinel or one of the kinds ErrInvalidInput / ErrArgumentRange.
package tsp
