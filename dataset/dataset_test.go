package dataset_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"berkotech.co/smoothplot/dataset"
	"berkotech.co/smoothplot/smooth"
)

const heights = `Gender,Height,Weight,Index
Male,174,96,4
Male,189,87,2
Female,185,110,4
Female,195,104,3
Male,149,61,3
`

func TestReadCSVNumeric(t *testing.T) {
	ds, err := dataset.ReadCSV(strings.NewReader(heights), dataset.Columns{
		X: "Height", Y: "Weight", Color: "Index",
	})
	require.NoError(t, err)
	assert.False(t, ds.Dated())
	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, []float64{174, 189, 185, 195, 149}, ds.X)
	assert.Equal(t, []float64{96, 87, 110, 104, 61}, ds.Y)
	assert.Equal(t, []float64{4, 2, 4, 3, 3}, ds.ColorValues)
	assert.Nil(t, ds.Weights)
}

func TestReadCSVDates(t *testing.T) {
	in := "day,value\n2020-01-01,1.5\n2020-02-01,2.5\n2021-03-15,4\n"
	ds, err := dataset.ReadCSV(strings.NewReader(in), dataset.Columns{X: "day", Y: "value"})
	require.NoError(t, err)
	require.True(t, ds.Dated())
	assert.Equal(t, time.Date(2021, time.March, 15, 0, 0, 0, 0, time.UTC), ds.Times[2])
	assert.Equal(t, []float64{1.5, 2.5, 4}, ds.Y)
}

func TestReadCSVErrors(t *testing.T) {
	_, err := dataset.ReadCSV(strings.NewReader(heights), dataset.Columns{X: "Height", Y: "Age"})
	assert.ErrorIs(t, err, dataset.ErrColumn)

	_, err = dataset.ReadCSV(strings.NewReader(heights), dataset.Columns{X: "Height", Y: "Gender"})
	assert.ErrorIs(t, err, dataset.ErrNotNumeric)

	_, err = dataset.ReadCSV(strings.NewReader(heights), dataset.Columns{X: "Gender", Y: "Weight"})
	assert.ErrorIs(t, err, dataset.ErrDate)
}

func TestWriteCSV(t *testing.T) {
	curve := &smooth.Curve{X: []float64{1, 2, 3}, Y: []float64{2, 4, 6}}
	var b bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&b, curve, false))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "x,y", lines[0])

	ds, err := dataset.ReadCSV(&b, dataset.Columns{X: "x", Y: "y"})
	require.NoError(t, err)
	assert.Equal(t, curve.X, ds.X)
	assert.Equal(t, curve.Y, ds.Y)
}

func TestWriteCSVDated(t *testing.T) {
	curve := &smooth.Curve{X: []float64{18262, 18263}, Y: []float64{1, 2}}
	var b bytes.Buffer
	require.NoError(t, dataset.WriteCSV(&b, curve, true))
	assert.Contains(t, b.String(), "2020-01-01")
	assert.Contains(t, b.String(), "2020-01-02")
}
