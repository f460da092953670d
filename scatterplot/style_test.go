package scatterplot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestParseColor(t *testing.T) {
	c, err := parseColor("", 0)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = parseColor("Red", 0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, c)

	c, err = parseColor("firebrick", 0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 178, G: 34, B: 34, A: 255}, c)

	c, err = parseColor("#0f0", 0.5)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{G: 255, A: 128}, c)

	c, err = parseColor("#10203040", 0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	_, err = parseColor("#zzzzzz", 0)
	assert.ErrorIs(t, err, ErrColor)
}

func TestDashes(t *testing.T) {
	ds, err := dashes("-", 2)
	require.NoError(t, err)
	assert.Nil(t, ds)

	ds, err = dashes("--", 2)
	require.NoError(t, err)
	assert.Equal(t, []vg.Length{7.4, 3.2}, ds)

	ds, err = dashes("dashdot", 1)
	require.NoError(t, err)
	assert.Len(t, ds, 4)

	_, err = dashes("wavy", 1)
	assert.ErrorIs(t, err, ErrLineStyle)
}

func TestColorMaps(t *testing.T) {
	names := ColorMaps()
	assert.Len(t, names, 6)
	assert.Contains(t, names, "smooth-blue-red")
	assert.Contains(t, names, "smooth-purple-orange")
	for _, name := range names {
		cm, err := colorMap(name)
		require.NoError(t, err, name)
		cm.SetMin(0)
		cm.SetMax(1)
		_, err = cm.At(0.5)
		assert.NoError(t, err, name)
	}
	_, err := colorMap("rainbow")
	assert.ErrorIs(t, err, ErrColorMap)
}

func TestYearTicks(t *testing.T) {
	min := yearDay(2000) - 10
	max := yearDay(2030) + 10
	ticks := yearTicks{}.Ticks(min, max)
	require.Len(t, ticks, 31)

	var labelled int
	for _, tk := range ticks {
		if tk.Label != "" {
			labelled++
		}
	}
	assert.Equal(t, 8, labelled, "every fourth year on a 31 year range")
	assert.Equal(t, "2000", ticks[0].Label)
}

func TestMarkerRadius(t *testing.T) {
	assert.Equal(t, vg.Points(2), markerRadius(16, circle))
	assert.Equal(t, vg.Points(1), markerRadius(16, point))
}
