package geom

import (
	"fmt"
	"math"
)

// Segment count bounds for adaptive tessellation. The lower bound keeps
// curves from looking faceted when zoomed far out; the upper bound caps the
// per-frame cost of a single arc.
const (
	MinSegments = 10
	MaxSegments = 1000

	// PreviewSegments is the fixed low-detail budget for live previews that
	// are recomputed on every pointer move.
	PreviewSegments = 15
)

// Tessellate approximates the arc with a polyline of segments+1 points.
// Sample i lies at angle StartAngle + (i/segments)·Span. The first and last
// points are reconstructed from the angle range and radius rather than
// copied from the arc's input points, so float error stays consistent along
// the polyline. Tessellate is a pure function: the same inputs always
// reproduce the same output.
//
// Tessellate panics when segments <= 0. No legitimate caller requests zero
// or negative detail, so this is treated as a programming error rather than
// a recoverable condition.
func Tessellate(arc Arc, segments int) []Point {
	if segments <= 0 {
		panic(fmt.Sprintf("geom: tessellation segment count %d out of range", segments))
	}

	span := arc.Span()
	points := make([]Point, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		points[i] = arc.PointAt(arc.StartAngle + t*span)
	}
	return points
}

// SegmentCount chooses an adaptive tessellation detail for the arc.
// unitsPerPixel is the current view scale (model units per device pixel) and
// minPixelSpacing the desired minimum on-screen distance between consecutive
// polyline vertices. The result is clamped to [MinSegments, MaxSegments].
func SegmentCount(arc Arc, unitsPerPixel, minPixelSpacing float64) int {
	if unitsPerPixel <= 0 || minPixelSpacing <= 0 {
		return MinSegments
	}

	pixels := arc.Length() / unitsPerPixel
	n := int(math.Floor(pixels / minPixelSpacing))
	if n < MinSegments {
		return MinSegments
	}
	if n > MaxSegments {
		return MaxSegments
	}
	return n
}

// PreviewPolyline returns the live-preview geometry for an in-progress
// three-point arc: the tessellated arc when the points admit one, or the
// straight polyline through the three points when they are collinear. A
// degenerate triple never fails the interaction; the preview simply stays
// straight until the pointer moves to a non-collinear position.
func PreviewPolyline(p1, p2, p3 Point, epsilon float64) []Point {
	arc, err := SolveArc(p1, p2, p3, epsilon)
	if err != nil {
		return []Point{p1, p2, p3}
	}
	return Tessellate(arc, PreviewSegments)
}
