// Package export writes a scene out as SVG or DXF. Both formats are plain
// text; the writers stream to an io.Writer and never need the view transform,
// only the model geometry.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/scene"
)

// SVGOptions controls the generated document.
type SVGOptions struct {
	// Padding is the margin in model units added around the scene bounds.
	Padding float64

	// Stroke is the stroke color, default "#000000".
	Stroke string

	// StrokeWidth in model units, default 1.
	StrokeWidth float64
}

func (o *SVGOptions) fill() {
	if o.Stroke == "" {
		o.Stroke = "#000000"
	}
	if o.StrokeWidth <= 0 {
		o.StrokeWidth = 1
	}
}

// WriteSVG writes the scene as a standalone SVG document. Model space is Y
// up; SVG is Y down, so the writer flips Y while mapping the padded scene
// bounds onto the viewBox. Arcs become elliptical-arc path commands with
// equal radii; the sweep flag follows the arc's travel direction after the
// Y flip.
func WriteSVG(w io.Writer, s *scene.Scene, opts SVGOptions) error {
	opts.fill()
	bounds := s.Bounds()
	if bounds.IsEmpty() {
		bounds = geom.BoundingBox{Min: geom.Pt(-1, -1), Max: geom.Pt(1, 1)}
	}
	bounds.Min = bounds.Min.Sub(geom.Pt(opts.Padding, opts.Padding))
	bounds.Max = bounds.Max.Add(geom.Pt(opts.Padding, opts.Padding))
	toSVG := func(p geom.Point) geom.Point {
		return geom.Pt(p.X-bounds.Min.X, bounds.Max.Y-p.Y)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %g %g\">\n",
		bounds.Width(), bounds.Height())
	fmt.Fprintf(&b, "  <g fill=\"none\" stroke=\"%s\" stroke-width=\"%g\">\n",
		opts.Stroke, opts.StrokeWidth)

	for _, obj := range s.Objects() {
		switch p := obj.(type) {
		case *scene.Line:
			a, c := toSVG(p.Seg.Start), toSVG(p.Seg.End)
			fmt.Fprintf(&b, "    <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\"/>\n",
				a.X, a.Y, c.X, c.Y)
		case *scene.Arc:
			start, end := toSVG(p.Arc.StartPoint), toSVG(p.Arc.EndPoint)
			large := 0
			if p.Arc.LargeArc {
				large = 1
			}
			fmt.Fprintf(&b, "    <path d=\"M %g %g A %g %g 0 %d %d %g %g\"/>\n",
				start.X, start.Y, p.Arc.Radius, p.Arc.Radius, large, svgSweep(p.Arc), end.X, end.Y)
		default:
			return fmt.Errorf("export: unsupported primitive %q", obj.Kind())
		}
	}

	b.WriteString("  </g>\n</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// svgSweep returns the SVG sweep flag for an arc. Travel runs start point,
// arc midpoint, end point; a counter-clockwise turn in Y-up model space
// becomes sweep 0 once the document's Y flip is applied, a clockwise turn
// becomes sweep 1.
func svgSweep(a geom.Arc) int {
	m := a.Midpoint().Sub(a.StartPoint)
	e := a.EndPoint.Sub(a.StartPoint)
	if m.X*e.Y-m.Y*e.X > 0 {
		return 0
	}
	return 1
}
