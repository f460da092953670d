// Package dataset loads paired observations from CSV files and writes fitted
// curves back out, both through gota data frames.
package dataset

import (
	"fmt"
	"io"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"berkotech.co/smoothplot/scatterplot"
	"berkotech.co/smoothplot/smooth"
)

// DateLayouts are tried in order on non-numeric x columns.
var DateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "2006/01/02"}

// Columns names the CSV columns to read. Weight and Color are optional.
type Columns struct {
	X, Y   string
	Weight string
	Color  string
}

// Dataset holds one row per observation. Times is set instead of X when the
// x column holds dates.
type Dataset struct {
	X     []float64
	Times []time.Time
	Y     []float64

	Weights     []float64
	ColorValues []float64
}

// Dated reports whether the x values are dates.
func (d *Dataset) Dated() bool { return d.Times != nil }

// Len returns the number of observations.
func (d *Dataset) Len() int { return len(d.Y) }

// ReadCSV reads a headed CSV document.
func ReadCSV(r io.Reader, cols Columns) (*Dataset, error) {
	df := dataframe.ReadCSV(r)
	if df.Err != nil {
		return nil, fmt.Errorf("dataset: read csv: %w", df.Err)
	}

	ds := &Dataset{}
	x, err := column(df, cols.X)
	if err != nil {
		return nil, err
	}
	if numeric(x) {
		ds.X = x.Float()
	} else if ds.Times, err = parseTimes(x); err != nil {
		return nil, err
	}

	if ds.Y, err = floatColumn(df, cols.Y); err != nil {
		return nil, err
	}
	if cols.Weight != "" {
		if ds.Weights, err = floatColumn(df, cols.Weight); err != nil {
			return nil, err
		}
	}
	if cols.Color != "" {
		if ds.ColorValues, err = floatColumn(df, cols.Color); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func column(df dataframe.DataFrame, name string) (series.Series, error) {
	for _, n := range df.Names() {
		if n == name {
			return df.Col(name), nil
		}
	}
	return series.Series{}, fmt.Errorf("%w: %q (have %v)", ErrColumn, name, df.Names())
}

func numeric(s series.Series) bool {
	return s.Type() == series.Float || s.Type() == series.Int
}

func floatColumn(df dataframe.DataFrame, name string) ([]float64, error) {
	s, err := column(df, name)
	if err != nil {
		return nil, err
	}
	if !numeric(s) {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, name)
	}
	return s.Float(), nil
}

func parseTimes(s series.Series) ([]time.Time, error) {
	records := s.Records()
	ts := make([]time.Time, len(records))
	for i, rec := range records {
		t, err := parseTime(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d %q", ErrDate, i+1, rec)
		}
		ts[i] = t
	}
	return ts, nil
}

func parseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range DateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// WriteCSV writes the curve as "x,y" rows. Dated curves write x as dates.
func WriteCSV(w io.Writer, curve *smooth.Curve, dated bool) error {
	var x series.Series
	if dated {
		days := make([]string, curve.Len())
		for i, d := range curve.X {
			days[i] = scatterplot.DayTime(d).Format("2006-01-02")
		}
		x = series.New(days, series.String, "x")
	} else {
		x = series.New(curve.X, series.Float, "x")
	}
	df := dataframe.New(x, series.New(curve.Y, series.Float, "y"))
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w)
}
