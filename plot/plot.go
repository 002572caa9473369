// Package plot draws tours as standalone HTML charts.
//
// A tour is rendered as a closed line through its cities (the last city is
// joined back to the first) with the start city as a separate, larger
// marker. Plotting only consumes tours; it never feeds back into the search.
package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/katalvlaran/tourlab/tsp"
)

// Tour renders tour as an HTML line chart titled title and writes it to w.
//
// Errors: tsp.ErrEmptyTour for an empty tour, or the writer's error.
func Tour(w io.Writer, tour tsp.Tour, title string) error {
	if len(tour) == 0 {
		return tsp.ErrEmptyTour
	}
	length, err := tsp.TourLength(tour)
	if err != nil {
		return err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d cities, length %.1f", len(tour), length),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "y",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	line.AddSeries("tour", tourPoints(tour)).
		AddSeries("start", []opts.LineData{{
			Name:       tour[0].String(),
			Value:      []float64{tour[0].X, tour[0].Y},
			Symbol:     "diamond",
			SymbolSize: 16,
		}})

	return line.Render(w)
}

// TourFile renders tour into the HTML file at path, creating or truncating it.
func TourFile(path string, tour tsp.Tour, title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Tour(f, tour, title); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// tourPoints lists the tour's coordinates with the first city repeated at the
// end, so the drawn line closes the cycle.
func tourPoints(tour tsp.Tour) []opts.LineData {
	var (
		n   = len(tour)
		out = make([]opts.LineData, 0, n+1)
		c   tsp.City
	)
	for i := 0; i <= n; i++ {
		c = tour[i%n]
		out = append(out, opts.LineData{
			Name:       c.String(),
			Value:      []float64{c.X, c.Y},
			Symbol:     "circle",
			SymbolSize: 8,
		})
	}

	return out
}
