package tsp

import "math/rand"

// SampleStarts chooses the start cities for a multi-start search.
//
// If k == AllStarts or k ≥ len(cities) it returns a copy of all cities in
// input order. Otherwise it returns k distinct cities chosen uniformly at
// random with rng, in the order they were drawn; this bounds RepeatedNNTSP to
// O(k·n²). A nil rng uses the package's deterministic default stream.
//
// Errors: ErrSampleSize for k < 0.
//
// Complexity: O(n) time, O(n) space.
func SampleStarts(cities []City, k int, rng *rand.Rand) ([]City, error) {
	if k < 0 {
		return nil, ErrSampleSize
	}
	var n = len(cities)
	if k == AllStarts || k >= n {
		return append([]City{}, cities...), nil
	}

	out := make([]City, k)
	for i, j := range sampleIndices(n, k, rng) {
		out[i] = cities[j]
	}

	return out, nil
}
