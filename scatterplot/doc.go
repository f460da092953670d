// Package scatterplot renders a scatter of paired observations with an
// optional smoothing curve on top, using gonum/plot.
//
// The smoothing curve comes from package smooth; everything else in Options
// is cosmetic and maps onto gonum/plot styles:
//
//	opts := scatterplot.DefaultOptions()
//	opts.Smooth.Method = smooth.Lowess
//	opts.Title = "Height vs weight"
//	opts.Curve.Color = "firebrick"
//
//	fig, err := scatterplot.Plot(xs, ys, opts)
//	if err != nil {
//		return err
//	}
//	return fig.Save("trend.png")
//
// PlotTimes does the same for dated observations, labelling the x axis with
// years.
package scatterplot
