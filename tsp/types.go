package tsp

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below wraps exactly one of them, so callers may
// match either the precise condition or the broad kind with errors.Is.
var (
	// ErrInvalidInput reports an empty or inconsistent input collection.
	ErrInvalidInput = errors.New("tsp: invalid input")

	// ErrArgumentRange reports a numeric argument outside its accepted range.
	ErrArgumentRange = errors.New("tsp: argument out of range")
)

var (
	// ErrEmptyCities is returned when a search is asked to tour zero cities.
	ErrEmptyCities = fmt.Errorf("%w: empty city set", ErrInvalidInput)

	// ErrEmptyTour is returned when the length of a zero-city tour is requested.
	ErrEmptyTour = fmt.Errorf("%w: empty tour", ErrInvalidInput)

	// ErrNoCandidates is returned by ShortestTour on an empty sequence of tours
	// (and therefore by RepeatedNNTSP on an empty set of starts).
	ErrNoCandidates = fmt.Errorf("%w: no candidate tours", ErrInvalidInput)

	// ErrEmptyRemaining is returned by NearestNeighbor when nothing is left to visit.
	ErrEmptyRemaining = fmt.Errorf("%w: no remaining cities", ErrInvalidInput)

	// ErrStartNotFound is returned when a start city is not part of the city set.
	ErrStartNotFound = fmt.Errorf("%w: start city not in city set", ErrInvalidInput)

	// ErrDuplicateCity is returned when the same city value (ID and coordinates)
	// appears twice in a city set. Cities sharing coordinates must carry distinct IDs.
	ErrDuplicateCity = fmt.Errorf("%w: duplicate city", ErrInvalidInput)

	// ErrSampleSize is returned by SampleStarts for a negative sample size.
	ErrSampleSize = fmt.Errorf("%w: negative sample size", ErrArgumentRange)
)

// AllStarts asks SampleStarts (and SampledNNTSP) for every city as a start.
const AllStarts = 0
