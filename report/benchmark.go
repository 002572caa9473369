package report

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
	"k8s.io/klog/v2"
)

// Summary aggregates the results of one algorithm over many city sets.
type Summary struct {
	Algorithm string
	Runs      int

	MeanLength   float64
	MedianLength float64
	MaxLength    float64

	TotalTime time.Duration
	MeanTime  time.Duration
	P90Time   time.Duration
	MaxTime   time.Duration
}

// Benchmark runs alg once on every instance and summarises the results.
// ctx is checked before each instance.
//
// Errors: tsp.ErrNoCandidates if instances is empty; ctx.Err(); the first
// error of Run.
func Benchmark(ctx context.Context, alg Algorithm, instances [][]tsp.City) (Summary, error) {
	if len(instances) == 0 {
		return Summary{}, tsp.ErrNoCandidates
	}

	results := make([]Result, 0, len(instances))
	for _, cities := range instances {
		if err := ctx.Err(); err != nil {
			return Summary{}, err
		}
		res, err := Run(ctx, alg, cities)
		if err != nil {
			return Summary{}, err
		}
		results = append(results, res)
	}

	sum, err := summarize(alg.Name, results)
	if err != nil {
		return Summary{}, err
	}
	klog.FromContext(ctx).V(1).Info("Benchmark done",
		"algorithm", sum.Algorithm, "runs", sum.Runs,
		"meanLength", sum.MeanLength, "totalTime", sum.TotalTime)

	return sum, nil
}

func summarize(name string, results []Result) (Summary, error) {
	lengths := lo.Map(results, func(r Result, _ int) float64 { return r.Length })
	times := lo.Map(results, func(r Result, _ int) float64 { return float64(r.Elapsed) })

	s := Summary{Algorithm: name, Runs: len(results)}

	var err error
	if s.MeanLength, err = stats.Mean(lengths); err != nil {
		return Summary{}, err
	}
	if s.MedianLength, err = stats.Median(lengths); err != nil {
		return Summary{}, err
	}
	if s.MaxLength, err = stats.Max(lengths); err != nil {
		return Summary{}, err
	}

	total, err := stats.Sum(times)
	if err != nil {
		return Summary{}, err
	}
	mean, err := stats.Mean(times)
	if err != nil {
		return Summary{}, err
	}
	p90, err := stats.PercentileNearestRank(times, 90)
	if err != nil {
		return Summary{}, err
	}
	maxT, err := stats.Max(times)
	if err != nil {
		return Summary{}, err
	}
	s.TotalTime = time.Duration(total)
	s.MeanTime = time.Duration(mean)
	s.P90Time = time.Duration(p90)
	s.MaxTime = time.Duration(maxT)

	return s, nil
}

// Compare benchmarks every algorithm on the same instances and prints a
// table to w. The ratio column is each mean length over the first
// algorithm's mean length.
//
// Errors: tsp.ErrNoCandidates if algs or instances is empty; the first
// error of Benchmark.
func Compare(ctx context.Context, w io.Writer, algs []Algorithm, instances [][]tsp.City) ([]Summary, error) {
	if len(algs) == 0 {
		return nil, tsp.ErrNoCandidates
	}

	out := make([]Summary, 0, len(algs))
	for _, alg := range algs {
		s, err := Benchmark(ctx, alg, instances)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "algorithm\truns\tmean length\tmedian length\tratio\tmean time\tp90 time\ttotal time")
	base := out[0].MeanLength
	for _, s := range out {
		ratio := 1.0
		if base > 0 {
			ratio = s.MeanLength / base
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%.3f\t%s\t%s\t%s\n",
			s.Algorithm,
			s.Runs,
			humanize.FormatFloat("#,###.#", s.MeanLength),
			humanize.FormatFloat("#,###.#", s.MedianLength),
			ratio,
			s.MeanTime.Round(time.Microsecond),
			s.P90Time.Round(time.Microsecond),
			s.TotalTime.Round(time.Microsecond),
		)
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	return out, nil
}
