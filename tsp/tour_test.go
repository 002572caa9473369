package tsp_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateTourToStart(t *testing.T) {
	cs := unitSquare()
	tour := tsp.Tour(cs)

	got, err := tsp.RotateTourToStart(tour, cs[2])
	require.NoError(t, err)
	if diff := cmp.Diff(tsp.Tour{cs[2], cs[3], cs[0], cs[1]}, got); diff != "" {
		t.Fatalf("rotated tour mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, tsp.Tour(unitSquare()), tour, "input must not be mutated")

	_, err = tsp.RotateTourToStart(tour, tsp.City{ID: 99})
	require.ErrorIs(t, err, tsp.ErrStartNotFound)

	_, err = tsp.RotateTourToStart(nil, cs[0])
	require.ErrorIs(t, err, tsp.ErrEmptyTour)
}

func TestReverseTour(t *testing.T) {
	cs := unitSquare()

	got := tsp.ReverseTour(tsp.Tour(cs))
	if diff := cmp.Diff(tsp.Tour{cs[0], cs[3], cs[2], cs[1]}, got); diff != "" {
		t.Fatalf("reversed tour mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, ids(tsp.Tour(cs)), "input must not be mutated")
	assert.Nil(t, tsp.ReverseTour(nil))
}

func TestEqualToursModuloRotation(t *testing.T) {
	cs := unitSquare()
	tour := tsp.Tour(cs)
	rot, err := tsp.RotateTourToStart(tour, cs[3])
	require.NoError(t, err)

	assert.True(t, tsp.EqualToursModuloRotation(tour, rot))
	assert.False(t, tsp.EqualToursModuloRotation(tour, tsp.ReverseTour(tour)), "direction matters")
	assert.False(t, tsp.EqualToursModuloRotation(tour, tour[:3]))
	assert.True(t, tsp.EqualToursModuloRotation(nil, tsp.Tour{}))
}

func TestCopyTour_Independent(t *testing.T) {
	tour := tsp.Tour(triangle345())
	cp := tsp.CopyTour(tour)
	cp[0] = tsp.City{ID: 42}

	assert.Equal(t, 0, tour[0].ID)
	assert.Nil(t, tsp.CopyTour(nil))
}

func TestTour_String(t *testing.T) {
	assert.Equal(t, "[#0(0,0) #1(3,0) #2(3,4) | #0]", tsp.Tour(triangle345()).String())
	assert.Equal(t, "[]", tsp.Tour(nil).String())
}
