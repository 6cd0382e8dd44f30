// Package geom provides the 2D geometry core for DraftCAD: points, line
// segments, circular arcs solved from three points, and curve tessellation.
//
// Coordinates are plain float64 pairs. Whether a point lives in model space
// (drawing units, Y up) or device space (pixels, Y down) is a convention of
// the caller; the two are never mixed inside this package.
package geom

import "math"

// Point is an immutable 2D point or vector.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromPolar returns the point at distance r and angle theta (radians,
// counter-clockwise from +X) from the origin point.
func FromPolar(origin Point, r, theta float64) Point {
	return Point{
		X: origin.X + r*math.Cos(theta),
		Y: origin.Y + r*math.Sin(theta),
	}
}

// Add returns p + q component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q component-wise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceSq returns the squared distance from p to q. Cheaper than
// Distance when only comparisons are needed (hit testing).
func (p Point) DistanceSq(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Angle returns the angle of the vector from p to q in radians,
// counter-clockwise from +X, in (-π, π].
func (p Point) Angle(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// ApproxEqual reports whether p and q coincide within tol in each
// coordinate. Geometric predicates compare with a tolerance; storage and
// serialization round-trips stay exact.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}
