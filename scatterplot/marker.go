package scatterplot

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

type shape int

const (
	circle shape = iota
	point
	square
	triangleUp
	triangleDown
	diamond
	plus
	cross
)

var markers = map[string]shape{
	"o": circle,
	".": point,
	"s": square,
	"^": triangleUp,
	"v": triangleDown,
	"D": diamond,
	"+": plus,
	"x": cross,
}

// markerGlyph draws filled markers with an optional outline and line markers
// stroked in the glyph color.
type markerGlyph struct {
	shape shape
	edge  draw.LineStyle
}

// markerRadius converts a marker area in points squared to a radius.
func markerRadius(area float64, s shape) vg.Length {
	if area <= 0 {
		area = 1
	}
	r := vg.Points(math.Sqrt(area) / 2)
	if s == point {
		r /= 2
	}
	return r
}

// DrawGlyph implements draw.GlyphDrawer.
func (g markerGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	switch g.shape {
	case plus, cross:
		width := g.edge.Width
		if width <= 0 {
			width = vg.Points(1)
		}
		c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: width})
		var p vg.Path
		if g.shape == plus {
			p.Move(vg.Point{X: pt.X - r, Y: pt.Y})
			p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
			p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
			p.Line(vg.Point{X: pt.X, Y: pt.Y + r})
		} else {
			d := r / math.Sqrt2
			p.Move(vg.Point{X: pt.X - d, Y: pt.Y - d})
			p.Line(vg.Point{X: pt.X + d, Y: pt.Y + d})
			p.Move(vg.Point{X: pt.X - d, Y: pt.Y + d})
			p.Line(vg.Point{X: pt.X + d, Y: pt.Y - d})
		}
		c.Stroke(p)
		return
	}

	p := g.outline(pt, r)
	c.SetColor(sty.Color)
	c.Fill(p)
	if g.edge.Color != nil && g.edge.Width > 0 {
		c.SetLineStyle(g.edge)
		c.Stroke(p)
	}
}

func (g markerGlyph) outline(pt vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	switch g.shape {
	case circle, point:
		p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
		p.Arc(pt, r, 0, 2*math.Pi)
	case square:
		d := r * 0.9
		p.Move(vg.Point{X: pt.X - d, Y: pt.Y - d})
		p.Line(vg.Point{X: pt.X + d, Y: pt.Y - d})
		p.Line(vg.Point{X: pt.X + d, Y: pt.Y + d})
		p.Line(vg.Point{X: pt.X - d, Y: pt.Y + d})
	case triangleUp, triangleDown:
		sign := vg.Length(1)
		if g.shape == triangleDown {
			sign = -1
		}
		dx := r * vg.Length(math.Sqrt(3)) / 2
		p.Move(vg.Point{X: pt.X, Y: pt.Y + sign*r})
		p.Line(vg.Point{X: pt.X + dx, Y: pt.Y - sign*r/2})
		p.Line(vg.Point{X: pt.X - dx, Y: pt.Y - sign*r/2})
	case diamond:
		p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
		p.Line(vg.Point{X: pt.X + r*0.75, Y: pt.Y})
		p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
		p.Line(vg.Point{X: pt.X - r*0.75, Y: pt.Y})
	}
	p.Close()
	return p
}

// newMarker builds the glyph for a marker name; edge may be nil.
func newMarker(name string, edge color.Color, width float64) markerGlyph {
	g := markerGlyph{shape: markers[name]}
	if edge != nil {
		if width <= 0 {
			width = 1
		}
		g.edge = draw.LineStyle{Color: edge, Width: vg.Points(width)}
	} else if width > 0 {
		g.edge.Width = vg.Points(width)
	}
	return g
}
