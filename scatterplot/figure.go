package scatterplot

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"berkotech.co/smoothplot/smooth"
)

// Formats lists the output formats understood by Save and Render.
var Formats = []string{"png", "jpg", "jpeg", "svg", "pdf", "eps", "tif", "tiff"}

// Figure is a rendered-ready scatter plot.
type Figure struct {
	Plot *plot.Plot
	// Curve is the fitted smoothing curve, nil without smoothing.
	Curve         *smooth.Curve
	Width, Height vg.Length
}

// Save writes the figure to path; the extension selects the format.
func (f *Figure) Save(path string) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !knownFormat(ext) {
		return fmt.Errorf("scatterplot: unsupported file format %q", ext)
	}
	return f.Plot.Save(f.Width, f.Height, path)
}

// Render encodes the figure in format and writes it to w.
func (f *Figure) Render(w io.Writer, format string) error {
	format = strings.ToLower(format)
	if !knownFormat(format) {
		return fmt.Errorf("scatterplot: unsupported format %q", format)
	}
	wt, err := f.Plot.WriterTo(f.Width, f.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Bytes returns the figure encoded in format.
func (f *Figure) Bytes(format string) ([]byte, error) {
	var b bytes.Buffer
	if err := f.Render(&b, format); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func knownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}
