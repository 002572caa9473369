// Package tsp - seeded randomness for start sampling.
//
// Every random choice in this package flows from a *rand.Rand built by
// rngFromSeed, so a seed fully determines SampleStarts and SampledNNTSP.
// There is no wall-clock seeding.
//
// A *rand.Rand is not safe for concurrent use; give each goroutine its own.
package tsp

import "math/rand"

// defaultRNGSeed stands in for seed 0.
const defaultRNGSeed int64 = 1

// rngFromSeed seeds a new stream with seed, or with defaultRNGSeed when seed is 0.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// NewRand exposes the package seeding policy to collaborators that need to
// replay a sample: NewRand(seed) yields the stream SampledNNTSP(…, seed) uses.
func NewRand(seed int64) *rand.Rand {
	return rngFromSeed(seed)
}

// sampleIndices returns k distinct indices drawn uniformly from 0..n-1 using a
// partial Fisher–Yates shuffle: only the first k positions are settled.
// If rng==nil, the default deterministic stream is used (seed==0 policy).
//
// Contract: 0 ≤ k ≤ n.
//
// Complexity: O(n) time (identity init) + O(k) swaps, O(n) space.
func sampleIndices(n, k int, rng *rand.Rand) []int {
	var r = rng
	if r == nil {
		r = rngFromSeed(0)
	}

	p := make([]int, n)

	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + r.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}

	return p[:k]
}
