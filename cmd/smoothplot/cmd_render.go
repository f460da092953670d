package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"berkotech.co/smoothplot/scatterplot"
)

func newRenderCmd(f *cliFlags) *cobra.Command {
	renderCmd := &cobra.Command{
		Use:   "render [data.csv]",
		Short: "Draws the scatter plot to an image file",
		Long:  `Draws the x and y columns of the CSV file as a scatter plot and saves it. The output extension selects the format: png, jpg, svg, pdf, eps or tif.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, f, args[0])
		},
	}
	renderCmd.Flags().StringVarP(&f.outPath, "out", "o", "plot.png", "output image")
	renderCmd.Flags().StringVarP(&f.title, "title", "t", "", "plot title")
	renderCmd.Flags().BoolVar(&f.grid, "grid", false, "draw grid lines")
	return renderCmd
}

func runRender(cmd *cobra.Command, f *cliFlags, path string) error {
	opts, err := f.loadOptions(cmd.Flags())
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("title") {
		opts.Title = f.title
	}
	if cmd.Flags().Changed("grid") {
		opts.Grid = f.grid
	}

	ds, err := f.readDataset(path)
	if err != nil {
		return err
	}
	if opts.XLabel == "" {
		opts.XLabel = f.columns.X
	}
	if opts.YLabel == "" {
		opts.YLabel = f.columns.Y
	}
	opts.Scatter.ColorValues = ds.ColorValues
	opts.Smooth.SplineWeights = ds.Weights

	var fig *scatterplot.Figure
	if ds.Dated() {
		fig, err = scatterplot.PlotTimes(ds.Times, ds.Y, opts)
	} else {
		fig, err = scatterplot.Plot(ds.X, ds.Y, opts)
	}
	if err != nil {
		return err
	}
	if err := fig.Save(f.outPath); err != nil {
		return err
	}
	slog.Info("plot saved", "path", f.outPath, "points", ds.Len(), "smoother", opts.Smooth.Method)
	return nil
}
