package geom

import (
	"errors"
	"math"
)

// DefaultEpsilon is the collinearity tolerance for SolveArc, in squared
// drawing units. Callers working at very large or very small drawing scales
// should pass their own value instead.
const DefaultEpsilon = 1e-10

// ErrCollinearPoints is returned by SolveArc when the three input points
// have no unique circumscribing circle. This includes coincident points.
var ErrCollinearPoints = errors.New("geom: three points are collinear")

// Arc is a circular arc described by its center, radius and angle range.
// Angles are in radians; EndAngle >= StartAngle and may exceed 2π to express
// an arc that crosses the 0/2π boundary. Arcs are produced by SolveArc and
// never mutated afterwards.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
	StartPoint Point
	EndPoint   Point

	// LargeArc is true when the swept angle exceeds π. It exists for
	// exchange formats (the SVG large-arc flag); internal logic works with
	// the angle range directly.
	LargeArc bool
}

// SolveArc computes the arc running from p1 to p3 through the waypoint p2.
// The circle through the three points is found in Cramer determinant form,
// which has no special cases for vertical or horizontal chords. epsilon is
// the collinearity tolerance in squared drawing units; pass DefaultEpsilon
// unless the drawing scale demands otherwise.
//
// Returns ErrCollinearPoints when the points are collinear or numerically
// indistinguishable from collinear, including when any two coincide.
func SolveArc(p1, p2, p3 Point, epsilon float64) (Arc, error) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	x3, y3 := p3.X, p3.Y

	delta := 2 * (x1*(y2-y3) + x2*(y3-y1) + x3*(y1-y2))
	if math.Abs(delta) < epsilon {
		return Arc{}, ErrCollinearPoints
	}

	sq1 := x1*x1 + y1*y1
	sq2 := x2*x2 + y2*y2
	sq3 := x3*x3 + y3*y3

	center := Point{
		X: (sq1*(y2-y3) + sq2*(y3-y1) + sq3*(y1-y2)) / delta,
		Y: (sq1*(x3-x2) + sq2*(x1-x3) + sq3*(x2-x1)) / delta,
	}
	radius := center.Distance(p1)

	start, end := arcAngles(center, p1, p2, p3)

	return Arc{
		Center:     center,
		Radius:     radius,
		StartAngle: start,
		EndAngle:   end,
		StartPoint: p1,
		EndPoint:   p3,
		LargeArc:   end-start > math.Pi,
	}, nil
}

// arcAngles picks the angular interval [start, end] that runs from p1 to p3
// while passing through the waypoint p2. All three angles are normalized to
// [0, 2π) and the six total orderings are enumerated; the interval end is
// pushed past 2π when the arc crosses the wrap boundary. Comparisons are
// epsilon-widened so angles coinciding at 0/2π do not flip the ordering.
func arcAngles(center, p1, p2, p3 Point) (start, end float64) {
	theta1 := NormalizeAngle(center.Angle(p1))
	theta2 := NormalizeAngle(center.Angle(p2))
	theta3 := NormalizeAngle(center.Angle(p3))

	const eps = 1e-10
	le := func(a, b float64) bool { return a < b+eps }

	switch {
	case le(theta1, theta2) && le(theta2, theta3): // θ1 ≤ θ2 ≤ θ3
		return theta1, theta3
	case le(theta1, theta3) && le(theta3, theta2): // θ1 ≤ θ3 ≤ θ2
		return theta3, theta1 + 2*math.Pi
	case le(theta2, theta1) && le(theta1, theta3): // θ2 ≤ θ1 ≤ θ3
		return theta3, theta1 + 2*math.Pi
	case le(theta2, theta3) && le(theta3, theta1): // θ2 ≤ θ3 ≤ θ1
		return theta1, theta3 + 2*math.Pi
	case le(theta3, theta1) && le(theta1, theta2): // θ3 ≤ θ1 ≤ θ2
		return theta1, theta3 + 2*math.Pi
	default: // θ3 ≤ θ2 ≤ θ1
		return theta3, theta1
	}
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Span returns the swept angle in radians (always >= 0).
func (a Arc) Span() float64 {
	return a.EndAngle - a.StartAngle
}

// Length returns the arc length in drawing units.
func (a Arc) Length() float64 {
	return a.Radius * a.Span()
}

// PointAt returns the point on the arc's circle at the given angle
// (radians).
func (a Arc) PointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// Midpoint returns the point halfway along the arc.
func (a Arc) Midpoint() Point {
	return a.PointAt(a.StartAngle + a.Span()/2)
}

// ContainsAngle reports whether the normalized angle lies within the swept
// range, accounting for intervals that extend past 2π.
func (a Arc) ContainsAngle(angle float64) bool {
	angle = NormalizeAngle(angle)
	if angle >= a.StartAngle && angle <= a.EndAngle {
		return true
	}
	return angle+2*math.Pi <= a.EndAngle
}

// BoundingBox returns the axis-aligned box covering the arc, not the whole
// circle: the extremes at 0, π/2, π and 3π/2 count only when the arc
// actually crosses them.
func (a Arc) BoundingBox() BoundingBox {
	bb := NewBoundingBox()
	bb.Expand(a.PointAt(a.StartAngle))
	bb.Expand(a.PointAt(a.EndAngle))

	for quadrant := 0.0; quadrant < 2*math.Pi; quadrant += math.Pi / 2 {
		if a.ContainsAngle(quadrant) {
			bb.Expand(a.PointAt(quadrant))
		}
	}
	return bb
}

// DistanceTo returns the minimum distance from p to the arc. When p faces
// the swept range the distance is radial; otherwise it is the distance to
// the nearer endpoint.
func (a Arc) DistanceTo(p Point) float64 {
	if a.ContainsAngle(a.Center.Angle(p)) {
		return math.Abs(a.Center.Distance(p) - a.Radius)
	}
	d1 := p.Distance(a.PointAt(a.StartAngle))
	d2 := p.Distance(a.PointAt(a.EndAngle))
	return math.Min(d1, d2)
}
