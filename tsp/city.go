// Package tsp - geometry primitives.
//
// A City is a plain comparable value. Its identity is the whole value, so two
// cities placed on the same coordinates stay distinct as long as their IDs
// differ. Generators (NewCities, cities.Generate) assign IDs 0..n-1.
package tsp

import (
	"fmt"
	"math"
)

// City is an immutable 2-D point visited by a tour.
type City struct {
	// ID distinguishes cities that share coordinates.
	ID int

	X, Y float64
}

// String renders the city as "#id(x,y)".
func (c City) String() string {
	return fmt.Sprintf("#%d(%g,%g)", c.ID, c.X, c.Y)
}

// NewCities builds a city set from coordinate pairs, assigning IDs in
// argument order starting at 0.
//
// Complexity: O(n) time, O(n) space.
func NewCities(points ...[2]float64) []City {
	out := make([]City, len(points))

	var i int
	for i = range points {
		out[i] = City{ID: i, X: points[i][0], Y: points[i][1]}
	}

	return out
}

// Distance returns the Euclidean distance between a and b.
// It is symmetric, non-negative and zero iff the coordinates coincide.
//
// Complexity: O(1).
func Distance(a, b City) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
