package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"berkotech.co/smoothplot/dataset"
	"berkotech.co/smoothplot/smooth"
)

func newFitCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fit [data.csv]",
		Short: "Prints the fitted smoothing curve as CSV",
		Long:  `Fits the selected smoother to the x and y columns of the CSV file and writes the curve, one "x,y" row per distinct x, to standard output. Dated x columns are written back as dates.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd, f, args[0])
		},
	}
}

func runFit(cmd *cobra.Command, f *cliFlags, path string) error {
	opts, err := f.loadOptions(cmd.Flags())
	if err != nil {
		return err
	}
	if opts.Smooth.Method == smooth.None {
		return errors.New("fit: no smoother selected, use --smoother")
	}
	ds, err := f.readDataset(path)
	if err != nil {
		return err
	}
	opts.Smooth.SplineWeights = ds.Weights

	curve, err := smooth.Fit(xValues(ds), ds.Y, opts.Smooth)
	if err != nil {
		return err
	}
	slog.Debug("curve fitted", "method", curve.Method, "points", curve.Len(), "r2", curve.R2)
	return dataset.WriteCSV(cmd.OutOrStdout(), curve, ds.Dated())
}
