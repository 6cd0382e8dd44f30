package geom

import "math"

// Line is a straight segment between two model-space points.
type Line struct {
	Start Point
	End   Point
}

// Length returns the segment length.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Angle returns the direction of the segment in radians,
// counter-clockwise from +X.
func (l Line) Angle() float64 {
	return l.Start.Angle(l.End)
}

// Midpoint returns the middle of the segment.
func (l Line) Midpoint() Point {
	return Point{
		X: (l.Start.X + l.End.X) / 2,
		Y: (l.Start.Y + l.End.Y) / 2,
	}
}

// BoundingBox returns the axis-aligned box covering the segment.
func (l Line) BoundingBox() BoundingBox {
	bb := NewBoundingBox()
	bb.Expand(l.Start)
	bb.Expand(l.End)
	return bb
}

// DistanceTo returns the minimum distance from p to the segment.
func (l Line) DistanceTo(p Point) float64 {
	return math.Sqrt(DistancePointSegmentSq(p, l.Start, l.End))
}

// DistancePointSegmentSq returns the squared minimum distance from p to the
// segment ab. Degenerate segments (a == b) reduce to point distance.
func DistancePointSegmentSq(p, a, b Point) float64 {
	l2 := a.DistanceSq(b)
	if l2 == 0 {
		return p.DistanceSq(a)
	}

	// Project p onto the line through ab and clamp to the segment.
	t := ((p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)) / l2
	t = math.Max(0, math.Min(1, t))

	proj := Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
	return p.DistanceSq(proj)
}
