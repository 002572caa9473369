package cities

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tourlab/tsp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrBadDimensions is returned by Generate for n < 0 or a non-positive
	// (or NaN) width/height.
	ErrBadDimensions = fmt.Errorf("%w: cities: bad dimensions", tsp.ErrArgumentRange)

	// ErrUnknownFixture is returned by Fixture for a name it does not know.
	ErrUnknownFixture = errors.New("cities: unknown fixture")

	// ErrMalformedFile is returned by Load when the YAML document does not
	// describe a list of cities.
	ErrMalformedFile = errors.New("cities: malformed city file")
)

// DefaultSeed replaces a zero seed, so that Generate(n, w, h, 0) is still
// reproducible.
const DefaultSeed int64 = 42

// Generate places n cities uniformly at random in [0,width)×[0,height).
// Coordinates are floored to integers, so coincident cities are possible;
// they stay distinct through their IDs 0..n-1.
//
// The same (n, width, height, seed) always yields the same cities. seed == 0
// uses DefaultSeed.
//
// Complexity: O(n).
func Generate(n int, width, height float64, seed int64) ([]tsp.City, error) {
	// !(x > 0) also rejects NaN.
	if n < 0 || !(width > 0) || !(height > 0) {
		return nil, ErrBadDimensions
	}
	if seed == 0 {
		seed = DefaultSeed
	}

	// Both axes draw from one source, alternating x then y per city.
	var (
		src = rand.NewSource(uint64(seed))
		xs  = distuv.Uniform{Min: 0, Max: width, Src: src}
		ys  = distuv.Uniform{Min: 0, Max: height, Src: src}
		out = make([]tsp.City, n)
		i   int
	)
	for i = range out {
		out[i] = tsp.City{ID: i, X: math.Floor(xs.Rand()), Y: math.Floor(ys.Rand())}
	}

	return out, nil
}

// Instances returns count city sets of n cities, generated with the
// consecutive seeds seed, seed+1, … so that a benchmark over them can be
// replayed exactly.
func Instances(count, n int, width, height float64, seed int64) ([][]tsp.City, error) {
	if count < 0 {
		return nil, ErrBadDimensions
	}

	out := make([][]tsp.City, count)
	for i := range out {
		cs, err := Generate(n, width, height, seed+int64(i))
		if err != nil {
			return nil, err
		}
		out[i] = cs
	}

	return out, nil
}
