// Command tourlab runs the tour-search algorithms on a city set and reports
// tour lengths and run times.
//
//	tourlab --cities 9 --algorithms exhaustive,repeated_nn,nn
//	tourlab --fixture circle8 --plot-dir out
//	tourlab --cities 8 --repeat 20 --algorithms exhaustive,nn,sampled_nn --samples 3
//	tourlab --config run.yaml --seed 7
//
// A --config file supplies defaults; flags given on the command line win.
// Cities come from --cities-file, else --fixture, else are generated.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/tourlab/cities"
	"github.com/katalvlaran/tourlab/config"
	"github.com/katalvlaran/tourlab/plot"
	"github.com/katalvlaran/tourlab/report"
	"github.com/katalvlaran/tourlab/tsp"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

func main() {
	ctx := klog.NewContext(context.Background(), klog.Background())

	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		klog.ErrorS(err, "tourlab failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	algs, err := report.Lookup(report.Builtin(cfg.Samples, cfg.Seed), cfg.Algorithms...)
	if err != nil {
		return err
	}
	logger := klog.FromContext(ctx)

	if cfg.Repeat > 1 {
		instances, err := cities.Instances(cfg.Repeat, cfg.Cities, cfg.Width, cfg.Height, cfg.Seed)
		if err != nil {
			return err
		}
		logger.Info("Benchmarking", "algorithms", cfg.Algorithms, "instances", cfg.Repeat, "cities", cfg.Cities)
		_, err = report.Compare(ctx, stdout, algs, instances)
		return err
	}

	cs, source, err := loadCities(cfg)
	if err != nil {
		return err
	}
	logger.V(1).Info("Cities ready", "source", source, "count", len(cs))

	if cfg.PlotDir != "" {
		if err = os.MkdirAll(cfg.PlotDir, 0o755); err != nil {
			return err
		}
	}
	for _, alg := range algs {
		res, err := report.RunAndReport(ctx, stdout, alg, cs)
		if err != nil {
			return fmt.Errorf("%s: %w", alg.Name, err)
		}
		if cfg.PlotDir != "" {
			if err = writePlot(logger, cfg.PlotDir, source, res); err != nil {
				return err
			}
		}
	}

	return nil
}

// parseConfig builds the run configuration: defaults, then the --config
// file, then every flag that was set explicitly.
func parseConfig(args []string) (config.Config, error) {
	var (
		fs         = pflag.NewFlagSet("tourlab", pflag.ContinueOnError)
		def        = config.Default()
		flags      = def
		configPath string
	)
	fs.StringVar(&configPath, "config", "", "YAML file with run settings; explicit flags override it")
	fs.IntVar(&flags.Cities, "cities", def.Cities, "number of generated cities")
	fs.Float64Var(&flags.Width, "width", def.Width, "width of the board cities are generated on")
	fs.Float64Var(&flags.Height, "height", def.Height, "height of the board cities are generated on")
	fs.Int64Var(&flags.Seed, "seed", def.Seed, "seed for city generation and start sampling")
	fs.IntVar(&flags.Samples, "samples", def.Samples, "start cities tried by sampled_nn (0 means all)")
	fs.IntVar(&flags.Repeat, "repeat", def.Repeat, "benchmark over this many generated instances when > 1")
	fs.StringSliceVar(&flags.Algorithms, "algorithms", def.Algorithms,
		"algorithms to run: "+strings.Join(algorithmNames(), ", "))
	fs.StringVar(&flags.Fixture, "fixture", "",
		"named city set instead of generated cities: "+strings.Join(cities.FixtureNames(), ", "))
	fs.StringVar(&flags.CitiesFile, "cities-file", "", "YAML city file; takes precedence over --fixture")
	fs.StringVar(&flags.PlotDir, "plot-dir", "", "directory for one HTML tour chart per algorithm")

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)

	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := def
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return config.Config{}, err
		}
	}

	for name, apply := range map[string]func(){
		"cities":      func() { cfg.Cities = flags.Cities },
		"width":       func() { cfg.Width = flags.Width },
		"height":      func() { cfg.Height = flags.Height },
		"seed":        func() { cfg.Seed = flags.Seed },
		"samples":     func() { cfg.Samples = flags.Samples },
		"repeat":      func() { cfg.Repeat = flags.Repeat },
		"algorithms":  func() { cfg.Algorithms = flags.Algorithms },
		"fixture":     func() { cfg.Fixture = flags.Fixture },
		"cities-file": func() { cfg.CitiesFile = flags.CitiesFile },
		"plot-dir":    func() { cfg.PlotDir = flags.PlotDir },
	} {
		if fs.Changed(name) {
			apply()
		}
	}

	return cfg, nil
}

// loadCities returns the city set selected by cfg and a short description
// of where it came from.
func loadCities(cfg config.Config) ([]tsp.City, string, error) {
	switch {
	case cfg.CitiesFile != "":
		cs, err := cities.LoadFile(cfg.CitiesFile)
		return cs, filepath.Base(cfg.CitiesFile), err
	case cfg.Fixture != "":
		cs, err := cities.Fixture(cfg.Fixture)
		return cs, cfg.Fixture, err
	default:
		cs, err := cities.Generate(cfg.Cities, cfg.Width, cfg.Height, cfg.Seed)
		return cs, fmt.Sprintf("%d random cities (seed %d)", cfg.Cities, cfg.Seed), err
	}
}

func writePlot(logger logr.Logger, dir, source string, res report.Result) error {
	path := filepath.Join(dir, res.Algorithm+".html")
	if err := plot.TourFile(path, res.Tour, fmt.Sprintf("%s on %s", res.Algorithm, source)); err != nil {
		return err
	}
	logger.V(1).Info("Wrote tour chart", "algorithm", res.Algorithm, "path", path)

	return nil
}

func algorithmNames() []string {
	algs := report.Builtin(0, 0)
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.Name
	}

	return names
}
