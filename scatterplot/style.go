package scatterplot

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
)

// shortColors are the single letter color codes.
var shortColors = map[string]color.NRGBA{
	"b": {B: 255, A: 255},
	"g": {G: 128, A: 255},
	"r": {R: 255, A: 255},
	"c": {G: 191, B: 191, A: 255},
	"m": {R: 191, B: 191, A: 255},
	"y": {R: 191, G: 191, A: 255},
	"k": {A: 255},
	"w": {R: 255, G: 255, B: 255, A: 255},
}

// parseColor resolves a color name, single letter code or hex string. An
// empty name yields nil. alpha in (0,1] scales the resulting opacity.
func parseColor(name string, alpha float64) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return nil, nil
	}
	var c color.NRGBA
	switch {
	case strings.HasPrefix(s, "#"):
		var err error
		if c, err = parseHex(s[1:]); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrColor, name)
		}
	default:
		if sc, ok := shortColors[s]; ok {
			c = sc
		} else if nc, ok := colornames.Map[s]; ok {
			c = color.NRGBA{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
		} else {
			return nil, fmt.Errorf("%w: %q", ErrColor, name)
		}
	}
	return withAlpha(c, alpha), nil
}

func parseHex(s string) (color.NRGBA, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("hex color of length %d", len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 || alpha >= 1 || c == nil {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// dashes returns the dash pattern of a line style for a line of the given
// width. A solid line has no dashes.
func dashes(style string, width vg.Length) ([]vg.Length, error) {
	if width <= 0 {
		width = 1
	}
	scale := func(ds ...float64) []vg.Length {
		out := make([]vg.Length, len(ds))
		for i, d := range ds {
			out[i] = vg.Length(d) * width
		}
		return out
	}
	switch strings.TrimSpace(style) {
	case "", "-", "solid":
		return nil, nil
	case "--", "dashed":
		return scale(3.7, 1.6), nil
	case ":", "dotted":
		return scale(1, 1.65), nil
	case "-.", "dashdot":
		return scale(6.4, 1.6, 1, 1.6), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrLineStyle, style)
}

var colorMaps = map[string]func() palette.ColorMap{
	"smooth-blue-red":      func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"smooth-purple-orange": func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
	"kindlmann":            moreland.Kindlmann,
	"extended-kindlmann":   moreland.ExtendedKindlmann,
	"black-body":           moreland.BlackBody,
	"extended-black-body":  moreland.ExtendedBlackBody,
}

// ColorMaps lists the accepted color map names.
func ColorMaps() []string {
	names := make([]string, 0, len(colorMaps))
	for name := range colorMaps {
		names = append(names, name)
	}
	return names
}

func colorMap(name string) (palette.ColorMap, error) {
	if name == "" {
		name = "smooth-blue-red"
	}
	mk, ok := colorMaps[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown map %q", ErrColorMap, name)
	}
	return mk(), nil
}
