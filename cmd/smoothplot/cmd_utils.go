package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"berkotech.co/smoothplot/config"
	"berkotech.co/smoothplot/dataset"
	"berkotech.co/smoothplot/scatterplot"
	"berkotech.co/smoothplot/smooth"
)

// cliFlags holds the flag values of one command tree.
type cliFlags struct {
	verbose    bool
	configPath string
	columns    dataset.Columns

	smoother   string
	degree     int
	keepDups   bool
	lowFrac    float64
	lowIt      int
	lowDelta   float64
	splSmooth  float64
	curveLabel string

	// render only
	outPath string
	title   string
	grid    bool
}

func (f *cliFlags) addInputFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML settings file")
	fs.StringVarP(&f.columns.X, "x", "x", "x", "x column")
	fs.StringVarP(&f.columns.Y, "y", "y", "y", "y column")
	fs.StringVar(&f.columns.Weight, "weight", "", "spline weight column")
	fs.StringVar(&f.columns.Color, "color-by", "", "column mapped to marker colors")

	fs.StringVarP(&f.smoother, "smoother", "s", "", "linear, poly, lowess or splines")
	fs.IntVarP(&f.degree, "degree", "d", 1, "poly or spline degree")
	fs.BoolVar(&f.keepDups, "keep-dups", false, "fit duplicate x values individually")
	fs.Float64Var(&f.lowFrac, "frac", 0.66, "lowess window fraction")
	fs.IntVar(&f.lowIt, "iter", 3, "lowess robustness iterations")
	fs.Float64Var(&f.lowDelta, "delta", 0, "lowess interpolation distance")
	fs.Float64Var(&f.splSmooth, "spl-smooth", 0, "spline residual bound, 0 interpolates")
	fs.StringVar(&f.curveLabel, "label", "", "legend label of the curve")
}

// loadOptions reads the settings file, if any, and applies the flags the
// user set on top of it.
func (f *cliFlags) loadOptions(flags *pflag.FlagSet) (scatterplot.Options, error) {
	cfg := &config.Config{}
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return scatterplot.Options{}, err
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		return opts, err
	}

	if flags.Changed("smoother") {
		if opts.Smooth.Method, err = smooth.ParseMethod(f.smoother); err != nil {
			return opts, err
		}
	}
	if flags.Changed("degree") {
		opts.Smooth.Degree = f.degree
	}
	if flags.Changed("keep-dups") {
		opts.Smooth.AvoidDuplicates = !f.keepDups
	}
	if flags.Changed("frac") {
		opts.Smooth.LowessFrac = f.lowFrac
	}
	if flags.Changed("iter") {
		opts.Smooth.LowessIter = f.lowIt
	}
	if flags.Changed("delta") {
		opts.Smooth.LowessDelta = f.lowDelta
	}
	if flags.Changed("spl-smooth") {
		opts.Smooth.SplineSmooth = f.splSmooth
	}
	if flags.Changed("label") {
		opts.Curve.Label = f.curveLabel
	}
	return opts, nil
}

func (f *cliFlags) readDataset(path string) (*dataset.Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ds, err := dataset.ReadCSV(file, f.columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// xValues returns the numeric x values, converting dates to days.
func xValues(ds *dataset.Dataset) []float64 {
	if !ds.Dated() {
		return ds.X
	}
	xs := make([]float64, len(ds.Times))
	for i, t := range ds.Times {
		xs[i] = scatterplot.Days(t)
	}
	return xs
}
