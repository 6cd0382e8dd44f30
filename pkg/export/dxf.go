package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/draftcad/draftcad/pkg/scene"
)

// dxfLayer is the layer name all exported entities land on.
const dxfLayer = "0"

// WriteDXF writes the scene as a minimal DXF drawing: an ENTITIES section of
// LINE and ARC records. DXF shares the model's conventions, Y up and arc
// angles in degrees counter-clockwise from +X, so geometry passes through
// unchanged apart from the radian-to-degree conversion.
func WriteDXF(w io.Writer, s *scene.Scene) error {
	var b strings.Builder
	b.WriteString("0\nSECTION\n2\nENTITIES\n")

	for _, obj := range s.Objects() {
		switch p := obj.(type) {
		case *scene.Line:
			fmt.Fprintf(&b, "0\nLINE\n8\n%s\n", dxfLayer)
			fmt.Fprintf(&b, "10\n%g\n20\n%g\n", p.Seg.Start.X, p.Seg.Start.Y)
			fmt.Fprintf(&b, "11\n%g\n21\n%g\n", p.Seg.End.X, p.Seg.End.Y)
		case *scene.Arc:
			start := p.Arc.StartAngle * 180 / math.Pi
			end := p.Arc.EndAngle * 180 / math.Pi
			if end >= 360 {
				end -= 360
			}
			fmt.Fprintf(&b, "0\nARC\n8\n%s\n", dxfLayer)
			fmt.Fprintf(&b, "10\n%g\n20\n%g\n", p.Arc.Center.X, p.Arc.Center.Y)
			fmt.Fprintf(&b, "40\n%g\n", p.Arc.Radius)
			fmt.Fprintf(&b, "50\n%g\n51\n%g\n", start, end)
		default:
			return fmt.Errorf("export: unsupported primitive %q", obj.Kind())
		}
	}

	b.WriteString("0\nENDSEC\n0\nEOF\n")
	_, err := io.WriteString(w, b.String())
	return err
}
