// Package tsp - validation utilities shared by exact/heuristic solvers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time where n is the number of cities; one O(n) set allocation.
package tsp

// validateCities verifies that cities is a non-empty set: no city value may
// appear twice, otherwise a tour could not visit "each city exactly once".
//
// Complexity: O(n) time, O(n) extra space.
func validateCities(cities []City) error {
	if len(cities) == 0 {
		return ErrEmptyCities
	}
	seen := make(map[City]struct{}, len(cities))

	var (
		c  City
		ok bool
	)
	for _, c = range cities {
		if _, ok = seen[c]; ok {
			return ErrDuplicateCity
		}
		seen[c] = struct{}{}
	}

	return nil
}

// indexOfCity returns the position of c in cities, or -1.
//
// Complexity: O(n).
func indexOfCity(cities []City, c City) int {
	var i int
	for i = range cities {
		if cities[i] == c {
			return i
		}
	}

	return -1
}
