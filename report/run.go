package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/tourlab/tsp"
	"k8s.io/klog/v2"
)

// Result is the outcome of one algorithm run on one city set.
type Result struct {
	Algorithm string
	Cities    int
	Tour      tsp.Tour
	Length    float64
	Elapsed   time.Duration
}

// String renders r as "<name>: <n> city tour with length <len> in <secs> secs".
func (r Result) String() string {
	return fmt.Sprintf("%s: %s city tour with length %s in %.3f secs",
		r.Algorithm,
		humanize.Comma(int64(r.Cities)),
		humanize.FormatFloat("#,###.#", r.Length),
		r.Elapsed.Seconds(),
	)
}

// Run times alg on cities and checks that the tour visits every city once.
// Only the Solve call is timed; the validity check is not.
//
// Errors: whatever alg returns, unchanged; ErrInvalidTour.
func Run(ctx context.Context, alg Algorithm, cities []tsp.City) (Result, error) {
	logger := klog.FromContext(ctx).WithValues("algorithm", alg.Name, "cities", len(cities))

	start := time.Now()
	tour, err := alg.Solve(cities)
	elapsed := time.Since(start)
	if err != nil {
		logger.V(2).Info("Algorithm failed", "err", err)
		return Result{}, err
	}
	if !tsp.ValidTour(tour, cities) {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidTour, alg.Name)
	}

	length, err := tsp.TourLength(tour)
	if err != nil {
		return Result{}, err
	}
	logger.V(2).Info("Tour found", "length", length, "elapsed", elapsed)

	return Result{
		Algorithm: alg.Name,
		Cities:    len(cities),
		Tour:      tour,
		Length:    length,
		Elapsed:   elapsed,
	}, nil
}

// RunAndReport is Run followed by printing the Result line to w.
// Nothing is printed when Run fails.
func RunAndReport(ctx context.Context, w io.Writer, alg Algorithm, cities []tsp.City) (Result, error) {
	res, err := Run(ctx, alg, cities)
	if err != nil {
		return Result{}, err
	}
	if _, err = fmt.Fprintln(w, res); err != nil {
		return Result{}, err
	}

	return res, nil
}
