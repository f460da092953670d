// Package config reads plot settings from YAML files.
//
// A settings file mirrors scatterplot.Options with snake_case keys:
//
//	smoother: lowess
//	low_frac: 0.3
//	title: Weight by height
//	figsize: [8, 6]
//	scatter:
//	  marker: s
//	  color: steelblue
//	curve:
//	  color: firebrick
//	  line_style: "--"
//
// Omitted keys keep the scatterplot defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"berkotech.co/smoothplot/scatterplot"
	"berkotech.co/smoothplot/smooth"
)

// ErrInvalid wraps every validation failure of a settings file.
var ErrInvalid = errors.New("config: invalid settings")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the YAML form of scatterplot.Options.
type Config struct {
	Smoother           string  `yaml:"smoother" validate:"omitempty,oneof=none linear poly polyfit lowess splines spline"`
	AvoidDupsForSmooth *bool   `yaml:"avoid_dups_for_smooth"`
	Degree             *int    `yaml:"degree" validate:"omitempty,gte=0"`
	LowFrac            float64 `yaml:"low_frac" validate:"gte=0,lte=1"`
	LowIt              *int    `yaml:"low_it" validate:"omitempty,gte=0"`
	LowDelta           float64 `yaml:"low_delta" validate:"gte=0"`
	SplSmooth          float64 `yaml:"spl_smooth" validate:"gte=0"`

	Title   string    `yaml:"title"`
	XLabel  string    `yaml:"x_label"`
	YLabel  string    `yaml:"y_label"`
	XTicks  []float64 `yaml:"x_ticks"`
	YLimit  []float64 `yaml:"y_limit" validate:"omitempty,len=2"`
	FigSize []float64 `yaml:"figsize" validate:"omitempty,len=2,dive,gt=0"`
	Grid    bool      `yaml:"grid"`

	Scatter Scatter `yaml:"scatter"`
	Curve   Curve   `yaml:"curve"`
}

// Scatter holds the marker settings.
type Scatter struct {
	MarkerSize float64  `yaml:"marker_size" validate:"gte=0"`
	Marker     string   `yaml:"marker" validate:"omitempty,oneof=o . s ^ v D + x"`
	Color      string   `yaml:"color"`
	ColorMap   string   `yaml:"cmap"`
	VMin       *float64 `yaml:"vmin"`
	VMax       *float64 `yaml:"vmax"`
	Alpha      float64  `yaml:"alpha" validate:"gte=0,lte=1"`
	LineWidths float64  `yaml:"linewidths" validate:"gte=0"`
	EdgeColor  string   `yaml:"edgecolors"`
}

// Curve holds the smoothing curve settings.
type Curve struct {
	Color     string  `yaml:"color"`
	Alpha     float64 `yaml:"alpha" validate:"gte=0,lte=1"`
	LineStyle string  `yaml:"line_style" validate:"omitempty,oneof=- -- : -. solid dashed dotted dashdot"`
	LineWidth float64 `yaml:"line_width" validate:"gte=0"`
	Label     string  `yaml:"label"`
}

// Load reads and validates the settings file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML settings document. Unknown keys are
// rejected; an empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints and that the settings produce valid
// plot options.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, fe := range verrs {
				fields[i] = fmt.Sprintf("%s (%s=%s)", fe.Namespace(), fe.Tag(), fe.Param())
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(fields, ", "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	opts, err := c.Options()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options converts the settings into plot options, starting from
// scatterplot.DefaultOptions.
func (c *Config) Options() (scatterplot.Options, error) {
	o := scatterplot.DefaultOptions()

	m, err := smooth.ParseMethod(c.Smoother)
	if err != nil {
		return o, err
	}
	o.Smooth.Method = m
	if c.AvoidDupsForSmooth != nil {
		o.Smooth.AvoidDuplicates = *c.AvoidDupsForSmooth
	}
	if c.Degree != nil {
		o.Smooth.Degree = *c.Degree
	}
	if c.LowFrac > 0 {
		o.Smooth.LowessFrac = c.LowFrac
	}
	if c.LowIt != nil {
		o.Smooth.LowessIter = *c.LowIt
	}
	o.Smooth.LowessDelta = c.LowDelta
	o.Smooth.SplineSmooth = c.SplSmooth

	o.Title, o.XLabel, o.YLabel = c.Title, c.XLabel, c.YLabel
	o.XTicks = c.XTicks
	o.Grid = c.Grid
	if len(c.YLimit) == 2 {
		o.YLimit = &scatterplot.Range{Min: c.YLimit[0], Max: c.YLimit[1]}
	}
	if len(c.FigSize) == 2 {
		o.Width, o.Height = c.FigSize[0], c.FigSize[1]
	}

	s := c.Scatter
	if s.MarkerSize > 0 {
		o.Scatter.MarkerSize = s.MarkerSize
	}
	if s.Marker != "" {
		o.Scatter.Marker = s.Marker
	}
	if s.Color != "" {
		o.Scatter.Color = s.Color
	}
	if s.ColorMap != "" {
		o.Scatter.ColorMap = s.ColorMap
	}
	o.Scatter.VMin, o.Scatter.VMax = s.VMin, s.VMax
	o.Scatter.Alpha = s.Alpha
	o.Scatter.LineWidths = s.LineWidths
	o.Scatter.EdgeColor = s.EdgeColor

	cv := c.Curve
	if cv.Color != "" {
		o.Curve.Color = cv.Color
	}
	o.Curve.Alpha = cv.Alpha
	if cv.LineStyle != "" {
		o.Curve.LineStyle = cv.LineStyle
	}
	if cv.LineWidth > 0 {
		o.Curve.LineWidth = cv.LineWidth
	}
	o.Curve.Label = cv.Label
	return o, nil
}
