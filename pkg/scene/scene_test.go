package scene

import (
	"math"
	"testing"

	"github.com/draftcad/draftcad/pkg/geom"
)

func mustArc(t *testing.T, p1, p2, p3 geom.Point) geom.Arc {
	t.Helper()
	arc, err := geom.SolveArc(p1, p2, p3, geom.DefaultEpsilon)
	if err != nil {
		t.Fatalf("SolveArc() error: %v", err)
	}
	return arc
}

func TestSceneAddRemove(t *testing.T) {
	s := New()

	changes := 0
	s.OnChange(func() { changes++ })

	l1 := &Line{Seg: geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(10, 0)}}
	l2 := &Line{Seg: geom.Line{Start: geom.Pt(0, 5), End: geom.Pt(10, 5)}}

	s.Add(l1)
	s.Add(l2)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	s.Remove(l1)
	if s.Len() != 1 || s.Objects()[0] != l2 {
		t.Fatalf("Remove left %d objects", s.Len())
	}

	// Removing an absent object is a no-op.
	s.Remove(l1)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d after removing absent object", s.Len())
	}

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d after Clear", s.Len())
	}

	if changes != 4 {
		t.Errorf("change notifications = %d, want 4", changes)
	}
}

func TestSceneBounds(t *testing.T) {
	s := New()
	if !s.Bounds().IsEmpty() {
		t.Fatal("empty scene should report empty bounds")
	}

	s.Add(&Line{Seg: geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(10, 10)}})
	s.Add(&Line{Seg: geom.Line{Start: geom.Pt(-5, 2), End: geom.Pt(3, 20)}})

	bb := s.Bounds()
	if bb.Min != geom.Pt(-5, 0) || bb.Max != geom.Pt(10, 20) {
		t.Errorf("Bounds() = [%v, %v], want [(-5,0), (10,20)]", bb.Min, bb.Max)
	}
}

func TestNearestWithin(t *testing.T) {
	s := New()
	horizontal := &Line{Seg: geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(100, 0)}}
	vertical := &Line{Seg: geom.Line{Start: geom.Pt(0, 10), End: geom.Pt(0, 100)}}
	s.Add(horizontal)
	s.Add(vertical)

	tests := []struct {
		name   string
		p      geom.Point
		radius float64
		want   Primitive
	}{
		{"near horizontal", geom.Pt(50, 3), 5, horizontal},
		{"near vertical", geom.Pt(2, 50), 5, vertical},
		{"too far", geom.Pt(50, 50), 5, nil},
		{"ties go to closest", geom.Pt(1, 5), 20, horizontal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.NearestWithin(tt.p, tt.radius); got != tt.want {
				t.Errorf("NearestWithin(%v, %v) = %v, want %v", tt.p, tt.radius, got, tt.want)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	arc := mustArc(t, geom.Pt(10, 0), geom.Pt(0, 10), geom.Pt(-10, 0))
	objs := []Primitive{
		&Line{Seg: geom.Line{Start: geom.Pt(1.5, -2.25), End: geom.Pt(3, 4)}, Style: "solid"},
		&Arc{Arc: arc},
	}

	data, err := MarshalPrimitives(objs)
	if err != nil {
		t.Fatalf("MarshalPrimitives() error: %v", err)
	}

	decoded, err := UnmarshalPrimitives(data)
	if err != nil {
		t.Fatalf("UnmarshalPrimitives() error: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("decoded %d objects, want 2", len(decoded))
	}

	line, ok := decoded[0].(*Line)
	if !ok {
		t.Fatalf("object 0 is %T, want *Line", decoded[0])
	}
	// Stored coordinates round-trip exactly.
	if line.Seg.Start != geom.Pt(1.5, -2.25) || line.Seg.End != geom.Pt(3, 4) {
		t.Errorf("line round-trip changed coordinates: %+v", line.Seg)
	}
	if line.Style != "solid" {
		t.Errorf("Style = %q, want solid", line.Style)
	}

	got, ok := decoded[1].(*Arc)
	if !ok {
		t.Fatalf("object 1 is %T, want *Arc", decoded[1])
	}
	if got.Arc.Center != arc.Center || got.Arc.Radius != arc.Radius {
		t.Errorf("arc center/radius changed: %+v", got.Arc)
	}
	if got.Arc.StartAngle != arc.StartAngle || got.Arc.EndAngle != arc.EndAngle {
		t.Errorf("arc angles changed: %+v", got.Arc)
	}
	if got.Arc.LargeArc != arc.LargeArc {
		t.Errorf("LargeArc = %v, want %v", got.Arc.LargeArc, arc.LargeArc)
	}
	// Derived endpoints agree with the angle range.
	if !got.Arc.StartPoint.ApproxEqual(arc.PointAt(arc.StartAngle), 1e-9) {
		t.Errorf("StartPoint = %v", got.Arc.StartPoint)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown type", `[{"type":"spline"}]`},
		{"line without endpoints", `[{"type":"line"}]`},
		{"arc without center", `[{"type":"arc","radius":5}]`},
		{"arc with bad radius", `[{"type":"arc","center":{"x":0,"y":0},"radius":-1}]`},
		{"not json", `{{{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalPrimitives([]byte(tt.data)); err == nil {
				t.Error("UnmarshalPrimitives() succeeded, want error")
			}
		})
	}
}

func TestArcPrimitiveQueries(t *testing.T) {
	arc := mustArc(t, geom.Pt(10, 0), geom.Pt(0, 10), geom.Pt(-10, 0))
	prim := &Arc{Arc: arc}

	if prim.Kind() != "arc" {
		t.Errorf("Kind() = %q", prim.Kind())
	}
	if d := prim.DistanceTo(geom.Pt(0, 12)); math.Abs(d-2) > 1e-9 {
		t.Errorf("DistanceTo() = %v, want 2", d)
	}
}
