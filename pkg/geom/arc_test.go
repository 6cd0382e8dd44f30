package geom

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestSolveArcCircumscription(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Point
	}{
		{"quarter turn", Pt(0, 5), Pt(5, 5), Pt(5, 0)},
		{"half circle radius 10", Pt(10, 0), Pt(0, 10), Pt(-10, 0)},
		{"generic triple", Pt(1, 2), Pt(4, 5), Pt(7, 2)},
		{"negative quadrant", Pt(-3, -1), Pt(-5, -4), Pt(-1, -6)},
		{"tiny radius", Pt(0.001, 0), Pt(0, 0.001), Pt(-0.001, 0)},
		{"offset from origin", Pt(1000, 0), Pt(1050, 50), Pt(1100, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := SolveArc(tt.p1, tt.p2, tt.p3, DefaultEpsilon)
			if err != nil {
				t.Fatalf("SolveArc() error: %v", err)
			}

			// Every input point must lie on the solved circle.
			for _, p := range []Point{tt.p1, tt.p2, tt.p3} {
				d := arc.Center.Distance(p)
				if math.Abs(d-arc.Radius) > 1e-9*math.Max(1, arc.Radius) {
					t.Errorf("distance(center, %v) = %v, want radius %v", p, d, arc.Radius)
				}
			}

			if arc.Radius <= 0 {
				t.Errorf("Radius = %v, want > 0", arc.Radius)
			}
			if arc.EndAngle < arc.StartAngle {
				t.Errorf("EndAngle %v < StartAngle %v", arc.EndAngle, arc.StartAngle)
			}
		})
	}
}

func TestSolveArcWaypointContainment(t *testing.T) {
	// The chosen direction must always pass through the middle point,
	// whichever of the six angle orderings the triple lands in.
	tests := []struct {
		name       string
		p1, p2, p3 Point
	}{
		{"short arc ccw", Pt(10, 0), Pt(0, 10), Pt(-10, 0)},
		{"short arc cw", Pt(-10, 0), Pt(0, 10), Pt(10, 0)},
		{"long way around", Pt(10, 0), Pt(0, -10), Pt(-10, 0)},
		{"wrap over zero", Pt(0, -10), Pt(10, 0), Pt(0, 10)},
		{"wrap the other way", Pt(0, 10), Pt(10, 0), Pt(0, -10)},
		{"waypoint near start", Pt(10, 0), Pt(9.8, 2), Pt(-10, 0)},
		{"waypoint near end", Pt(10, 0), Pt(-9.8, 2), Pt(-10, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := SolveArc(tt.p1, tt.p2, tt.p3, DefaultEpsilon)
			if err != nil {
				t.Fatalf("SolveArc() error: %v", err)
			}

			waypoint := arc.Center.Angle(tt.p2)
			if !arc.ContainsAngle(waypoint) {
				t.Errorf("waypoint angle %v outside [%v, %v]",
					NormalizeAngle(waypoint), arc.StartAngle, arc.EndAngle)
			}
		})
	}
}

func TestSolveArcCollinear(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Point
		wantErr    bool
	}{
		{"exact diagonal", Pt(0, 0), Pt(1, 1), Pt(2, 2), true},
		{"horizontal", Pt(0, 0), Pt(1, 0), Pt(2, 0), true},
		{"vertical", Pt(3, -1), Pt(3, 4), Pt(3, 9), true},
		{"coincident first two", Pt(1, 1), Pt(1, 1), Pt(2, 5), true},
		{"all coincident", Pt(2, 2), Pt(2, 2), Pt(2, 2), true},
		{"nearly collinear above tolerance", Pt(0, 0), Pt(1, 1), Pt(2, 2.0000001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := SolveArc(tt.p1, tt.p2, tt.p3, DefaultEpsilon)
			if tt.wantErr {
				if !errors.Is(err, ErrCollinearPoints) {
					t.Fatalf("SolveArc() error = %v, want ErrCollinearPoints", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("SolveArc() unexpected error: %v", err)
			}
			// A nearly collinear triple solves to a very large circle.
			if arc.Radius < 1e5 {
				t.Errorf("Radius = %v, want very large", arc.Radius)
			}
		})
	}
}

func TestSolveArcEpsilonTunable(t *testing.T) {
	// The same triple flips between solvable and collinear depending on the
	// caller's tolerance.
	p1, p2, p3 := Pt(0, 0), Pt(1, 1), Pt(2, 2.0000001)

	if _, err := SolveArc(p1, p2, p3, DefaultEpsilon); err != nil {
		t.Fatalf("SolveArc(default epsilon) error: %v", err)
	}
	if _, err := SolveArc(p1, p2, p3, 1e-3); !errors.Is(err, ErrCollinearPoints) {
		t.Fatalf("SolveArc(coarse epsilon) error = %v, want ErrCollinearPoints", err)
	}
}

func TestSolveArcQuarterTurn(t *testing.T) {
	// (0,5), (5,5), (5,0) circumscribe around (2.5, 2.5); the waypoint sits
	// at 45° from the center.
	arc, err := SolveArc(Pt(0, 5), Pt(5, 5), Pt(5, 0), DefaultEpsilon)
	if err != nil {
		t.Fatalf("SolveArc() error: %v", err)
	}

	if !arc.Center.ApproxEqual(Pt(2.5, 2.5), 1e-9) {
		t.Errorf("Center = %v, want (2.5, 2.5)", arc.Center)
	}
	wantRadius := math.Sqrt(12.5)
	if !almostEqual(arc.Radius, wantRadius, 1e-9) {
		t.Errorf("Radius = %v, want %v", arc.Radius, wantRadius)
	}
	if !arc.ContainsAngle(math.Pi / 4) {
		t.Errorf("arc [%v, %v] does not pass through 45°", arc.StartAngle, arc.EndAngle)
	}
}

func TestSolveArcHalfCircle(t *testing.T) {
	arc, err := SolveArc(Pt(10, 0), Pt(0, 10), Pt(-10, 0), DefaultEpsilon)
	if err != nil {
		t.Fatalf("SolveArc() error: %v", err)
	}

	if !arc.Center.ApproxEqual(Pt(0, 0), 0.01) {
		t.Errorf("Center = %v, want origin", arc.Center)
	}
	if !almostEqual(arc.Radius, 10, 0.01) {
		t.Errorf("Radius = %v, want 10", arc.Radius)
	}
	if !almostEqual(arc.Span(), math.Pi, 1e-9) {
		t.Errorf("Span() = %v, want π", arc.Span())
	}
}

func TestArcLargeArcFlag(t *testing.T) {
	tests := []struct {
		name       string
		p1, p2, p3 Point
		want       bool
	}{
		{"quarter-ish arc", Pt(10, 0), Pt(7.07, 7.07), Pt(0, 10), false},
		{"three-quarter arc", Pt(10, 0), Pt(0, -10), Pt(0, 10), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			arc, err := SolveArc(tt.p1, tt.p2, tt.p3, DefaultEpsilon)
			if err != nil {
				t.Fatalf("SolveArc() error: %v", err)
			}
			if arc.LargeArc != tt.want {
				t.Errorf("LargeArc = %v (span %v), want %v", arc.LargeArc, arc.Span(), tt.want)
			}
		})
	}
}

func TestArcBoundingBox(t *testing.T) {
	// Upper half circle: the box covers the top extreme but not the bottom
	// of the full circle.
	arc, err := SolveArc(Pt(10, 0), Pt(0, 10), Pt(-10, 0), DefaultEpsilon)
	if err != nil {
		t.Fatalf("SolveArc() error: %v", err)
	}

	bb := arc.BoundingBox()
	if !almostEqual(bb.Min.X, -10, 1e-9) || !almostEqual(bb.Max.X, 10, 1e-9) {
		t.Errorf("X range [%v, %v], want [-10, 10]", bb.Min.X, bb.Max.X)
	}
	if !almostEqual(bb.Min.Y, 0, 1e-9) || !almostEqual(bb.Max.Y, 10, 1e-9) {
		t.Errorf("Y range [%v, %v], want [0, 10]", bb.Min.Y, bb.Max.Y)
	}
}

func TestArcDistanceTo(t *testing.T) {
	arc, err := SolveArc(Pt(10, 0), Pt(0, 10), Pt(-10, 0), DefaultEpsilon)
	if err != nil {
		t.Fatalf("SolveArc() error: %v", err)
	}

	tests := []struct {
		name string
		p    Point
		want float64
	}{
		{"outside facing the arc", Pt(0, 12), 2},
		{"inside facing the arc", Pt(0, 7), 3},
		{"below, nearest endpoint", Pt(10, -5), 5},
		{"on the arc", Pt(0, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arc.DistanceTo(tt.p); !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("DistanceTo(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-4 * math.Pi, 0},
	}

	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); !almostEqual(got, tt.want, 1e-12) {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
