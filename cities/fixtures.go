package cities

import (
	"slices"

	"github.com/katalvlaran/tourlab/tsp"
	"github.com/samber/lo"
)

// fixtures holds literal coordinate lists. They are copied into fresh city
// slices on every Fixture call; nothing here is shared mutable state.
var fixtures = map[string][][2]float64{
	// 3-4-5 right triangle, perimeter 12.
	"triangle345": {{0, 0}, {3, 0}, {3, 4}},

	// Unit square corners, counter-clockwise; optimal perimeter 4.
	"square": {{0, 0}, {1, 0}, {1, 1}, {0, 1}},

	// Eight points on a circle of radius 10 in scrambled order.
	"circle8": {
		{10, 0}, {-7.0710678118654755, -7.0710678118654755}, {0, 10}, {7.0710678118654755, -7.0710678118654755},
		{-10, 0}, {7.0710678118654755, 7.0710678118654755}, {0, -10}, {-7.0710678118654755, 7.0710678118654755},
	},

	// Coincident coordinates that must remain distinct cities.
	"duplicates": {{0, 0}, {5, 5}, {0, 0}, {5, 0}, {5, 5}},

	// Ten cities on a 900×600 board, small enough for exhaustive search.
	"board10": {
		{595, 224}, {32, 506}, {423, 57}, {877, 412}, {184, 290},
		{743, 131}, {306, 555}, {65, 94}, {512, 398}, {811, 580},
	},
}

// Fixture returns a fresh copy of the named city set with IDs 0..n-1.
//
// Errors: ErrUnknownFixture.
func Fixture(name string) ([]tsp.City, error) {
	pts, ok := fixtures[name]
	if !ok {
		return nil, ErrUnknownFixture
	}

	return tsp.NewCities(pts...), nil
}

// FixtureNames lists the known fixtures in lexical order.
func FixtureNames() []string {
	names := lo.Keys(fixtures)
	slices.Sort(names)

	return names
}
