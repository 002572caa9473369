// Package tsp — tours: validity, rotation, reversal, comparison.
//
// This file contains compact utilities that operate purely on tour structure,
// without computing any distance:
//   - ValidTour: multiset check of a tour against its city set.
//   - RotateTourToStart: cyclic shift so the tour begins at a given city.
//   - ReverseTour: the same cycle traversed in the opposite direction.
//   - CopyTour: independent copy of a tour.
//   - EqualToursModuloRotation: equality under rotation (same direction).
//   - String: compact printable representation for tests/debug.
//
// Design:
//   - Helpers never log and never panic; failures are sentinels from types.go.
//   - Inputs are never mutated; every transformation returns a fresh tour.
package tsp

import (
	"slices"
	"strconv"
	"strings"
)

// Tour is an ordered sequence of cities interpreted as a cycle: the last
// city connects back to the first. A valid tour of a city set holds each
// city of the set exactly once.
type Tour []City

// String returns e.g. "[#0(0,0) #1(3,0) #2(3,4) | #0]", where the vertical
// bar marks the closing edge back to the first city.
//
// Complexity: O(n).
func (t Tour) String() string {
	if len(t) == 0 {
		return "[]"
	}

	var b strings.Builder
	b.WriteByte('[')
	for i, c := range t {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteString(" | #")
	b.WriteString(strconv.Itoa(t[0].ID))
	b.WriteByte(']')

	return b.String()
}

// ValidTour reports whether tour visits every city of cities exactly once:
// the lengths match and both hold the same multiset of city values.
// It is meant for verification, not for the search hot path.
//
// Complexity: O(n) time, O(n) space.
func ValidTour(tour Tour, cities []City) bool {
	if len(tour) != len(cities) {
		return false
	}

	count := make(map[City]int, len(cities))
	for _, c := range cities {
		count[c]++
	}
	for _, c := range tour {
		if count[c] == 0 {
			return false
		}
		count[c]--
	}

	return true
}

// RotateTourToStart returns a fresh copy of tour shifted so that out[0] == start.
// The cyclic order (and therefore the length) is unchanged.
//
// Returns ErrEmptyTour for an empty tour and ErrStartNotFound if start is not
// part of the tour.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour Tour, start City) (Tour, error) {
	if len(tour) == 0 {
		return nil, ErrEmptyTour
	}
	pivot := slices.Index(tour, start)
	if pivot < 0 {
		return nil, ErrStartNotFound
	}

	var (
		n   = len(tour)
		out = make(Tour, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// ReverseTour returns a fresh copy of tour traversed in the opposite direction,
// keeping the first city in place: [a b c d] → [a d c b].
//
// Complexity: O(n) time, O(n) space.
func ReverseTour(tour Tour) Tour {
	out := CopyTour(tour)
	if len(out) > 2 {
		slices.Reverse(out[1:])
	}

	return out
}

// CopyTour returns an independent copy of the input tour.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour Tour) Tour {
	if tour == nil {
		return nil
	}

	return slices.Clone(tour)
}

// EqualToursModuloRotation checks equality of two tours under rotation
// (same direction). Two empty tours are equal.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b Tour) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	p := slices.Index(b, a[0])
	if p < 0 {
		return false
	}

	var (
		n = len(a)
		i int
	)
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}
