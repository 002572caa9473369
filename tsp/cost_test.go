// Package tsp_test validates tour metrics: TourLength, ValidTour and ShortestTour.
// Contract: strict sentinels, deterministic outcomes, table-driven structure.
package tsp_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourLength(t *testing.T) {
	single := tsp.City{ID: 9, X: 4, Y: 4}

	tests := []struct {
		name string
		tour tsp.Tour
		want float64
	}{
		{name: "triangle 3-4-5", tour: tsp.Tour(triangle345()), want: 12},
		{name: "unit square", tour: tsp.Tour(unitSquare()), want: 4},
		{name: "single city self-loop", tour: tsp.Tour{single}, want: 0},
		{name: "two cities out and back", tour: tsp.Tour(tsp.NewCities([2]float64{0, 0}, [2]float64{0, 2.5})), want: 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tsp.TourLength(tc.tour)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTourLength_Empty(t *testing.T) {
	_, err := tsp.TourLength(nil)
	require.ErrorIs(t, err, tsp.ErrEmptyTour)
	require.ErrorIs(t, err, tsp.ErrInvalidInput)
}

func TestTourLength_RotationAndReversalInvariant(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		tour := tsp.Tour(randomCities(9, seed))
		base := mustLength(t, tour)

		for _, c := range tour {
			rot, err := tsp.RotateTourToStart(tour, c)
			require.NoError(t, err)
			assert.InDelta(t, base, mustLength(t, rot), epsTiny, "rotation to %v", c)
			assert.InDelta(t, base, mustLength(t, tsp.ReverseTour(rot)), epsTiny, "reversal from %v", c)
		}
	}
}

func TestValidTour(t *testing.T) {
	cs := unitSquare()
	twin := tsp.City{ID: 7, X: 0, Y: 0} // same coordinates as cs[0], different city

	tests := []struct {
		name string
		tour tsp.Tour
		want bool
	}{
		{name: "identity", tour: tsp.Tour(cs), want: true},
		{name: "permuted", tour: tsp.Tour{cs[2], cs[0], cs[3], cs[1]}, want: true},
		{name: "too short", tour: tsp.Tour{cs[0], cs[1], cs[2]}, want: false},
		{name: "too long", tour: tsp.Tour{cs[0], cs[1], cs[2], cs[3], cs[0]}, want: false},
		{name: "duplicate replaces missing", tour: tsp.Tour{cs[0], cs[1], cs[1], cs[3]}, want: false},
		{name: "coordinate twin is not the same city", tour: tsp.Tour{twin, cs[1], cs[2], cs[3]}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tsp.ValidTour(tc.tour, cs))
		})
	}

	assert.True(t, tsp.ValidTour(nil, nil), "empty tour of empty set")
}

func TestShortestTour(t *testing.T) {
	cs := unitSquare()
	crossed := tsp.Tour{cs[0], cs[2], cs[1], cs[3]} // 2 + 2·√2
	perimeter := tsp.Tour{cs[0], cs[1], cs[2], cs[3]}
	reversed := tsp.ReverseTour(perimeter)

	t.Run("argmin", func(t *testing.T) {
		got, err := tsp.ShortestTour(slices.Values([]tsp.Tour{crossed, perimeter}))
		require.NoError(t, err)
		assert.Equal(t, perimeter, got)
	})

	t.Run("single candidate", func(t *testing.T) {
		got, err := tsp.ShortestTour(slices.Values([]tsp.Tour{crossed}))
		require.NoError(t, err)
		assert.Equal(t, crossed, got)
	})

	t.Run("ties keep first seen", func(t *testing.T) {
		got, err := tsp.ShortestTour(slices.Values([]tsp.Tour{crossed, reversed, perimeter}))
		require.NoError(t, err)
		assert.Equal(t, reversed, got)
	})

	t.Run("empty sequence", func(t *testing.T) {
		_, err := tsp.ShortestTour(slices.Values([]tsp.Tour{}))
		require.ErrorIs(t, err, tsp.ErrNoCandidates)
	})

	t.Run("empty candidate", func(t *testing.T) {
		_, err := tsp.ShortestTour(slices.Values([]tsp.Tour{perimeter, {}}))
		require.ErrorIs(t, err, tsp.ErrEmptyTour)
	})
}
