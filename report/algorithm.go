// Package report times tour-search algorithms and prints their results.
//
// It is the benchmarking collaborator of package tsp: it wraps a call to an
// algorithm, verifies the returned tour, and reports the tour length and the
// elapsed time. Over many instances it summarises lengths and run times and
// compares algorithms against each other.
//
// Errors returned by an algorithm are passed through unchanged, so callers
// can still match tsp sentinels with errors.Is. Logging goes through the
// logr.Logger carried by the context (klog.FromContext).
package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tourlab/tsp"
	"github.com/samber/lo"
)

var (
	// ErrUnknownAlgorithm is returned by Lookup for a name it cannot resolve.
	ErrUnknownAlgorithm = errors.New("report: unknown algorithm")

	// ErrInvalidTour is returned when an algorithm's tour is not a
	// permutation of its input cities.
	ErrInvalidTour = errors.New("report: algorithm returned an invalid tour")
)

// SolveFunc computes a tour of cities.
type SolveFunc func(cities []tsp.City) (tsp.Tour, error)

// Algorithm is a named SolveFunc.
type Algorithm struct {
	Name  string
	Solve SolveFunc
}

// Names of the built-in algorithms.
const (
	AllTours   = "alltours"
	Exhaustive = "exhaustive"
	NN         = "nn"
	RepeatedNN = "repeated_nn"
	SampledNN  = "sampled_nn"
)

// Builtin returns the package tsp algorithms in order of increasing speed.
// samples and seed configure SampledNN (see tsp.SampledNNTSP); NN starts
// from the first city.
func Builtin(samples int, seed int64) []Algorithm {
	return []Algorithm{
		{Name: AllTours, Solve: tsp.AllToursTSP},
		{Name: Exhaustive, Solve: tsp.ExhaustiveTSP},
		{Name: RepeatedNN, Solve: func(cs []tsp.City) (tsp.Tour, error) {
			return tsp.RepeatedNNTSP(cs, cs)
		}},
		{Name: SampledNN, Solve: func(cs []tsp.City) (tsp.Tour, error) {
			return tsp.SampledNNTSP(cs, samples, seed)
		}},
		{Name: NN, Solve: firstCityNN},
	}
}

// firstCityNN runs tsp.NNTSP from cities[0].
func firstCityNN(cities []tsp.City) (tsp.Tour, error) {
	if len(cities) == 0 {
		return nil, tsp.ErrEmptyCities
	}

	return tsp.NNTSP(cities, cities[0])
}

// Lookup picks the algorithms called names from algs, in the order of names.
//
// Errors: ErrUnknownAlgorithm naming the first unresolved name.
func Lookup(algs []Algorithm, names ...string) ([]Algorithm, error) {
	out := make([]Algorithm, 0, len(names))
	for _, name := range names {
		alg, ok := lo.Find(algs, func(a Algorithm) bool { return a.Name == name })
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
		out = append(out, alg)
	}

	return out, nil
}
