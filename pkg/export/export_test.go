package export

import (
	"strings"
	"testing"

	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/scene"
)

func testScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New()
	s.Add(&scene.Line{Seg: geom.Line{Start: geom.Pt(0, 0), End: geom.Pt(100, 0)}})
	arc, err := geom.SolveArc(geom.Pt(-10, 0), geom.Pt(0, 10), geom.Pt(10, 0), geom.DefaultEpsilon)
	if err != nil {
		t.Fatal(err)
	}
	s.Add(&scene.Arc{Arc: arc})
	return s
}

func TestWriteSVG(t *testing.T) {
	var b strings.Builder
	if err := WriteSVG(&b, testScene(t), SVGOptions{Padding: 5}); err != nil {
		t.Fatal(err)
	}
	got := b.String()

	// Bounds are x [-10, 100], y [0, 10]; plus 5 padding each side.
	if !strings.Contains(got, `viewBox="0 0 120 20"`) {
		t.Fatalf("viewBox missing or wrong:\n%s", got)
	}
	// Line (0,0)-(100,0): x offset +15, y flipped about max 15.
	if !strings.Contains(got, `<line x1="15" y1="15" x2="115" y2="15"/>`) {
		t.Fatalf("line element missing:\n%s", got)
	}
	// Arc from (-10,0) over (0,10) to (10,0): radius 10, small arc,
	// clockwise travel in model space becomes sweep 1 after the Y flip.
	if !strings.Contains(got, `<path d="M 5 15 A 10 10 0 0 1 25 15"/>`) {
		t.Fatalf("arc path missing:\n%s", got)
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Fatal("document not closed")
	}
}

func TestSVGSweepFollowsOrientation(t *testing.T) {
	ccw, err := geom.SolveArc(geom.Pt(10, 0), geom.Pt(0, 10), geom.Pt(-10, 0), geom.DefaultEpsilon)
	if err != nil {
		t.Fatal(err)
	}
	if got := svgSweep(ccw); got != 0 {
		t.Fatalf("counter-clockwise arc sweep = %d, want 0", got)
	}
	cw, err := geom.SolveArc(geom.Pt(-10, 0), geom.Pt(0, 10), geom.Pt(10, 0), geom.DefaultEpsilon)
	if err != nil {
		t.Fatal(err)
	}
	if got := svgSweep(cw); got != 1 {
		t.Fatalf("clockwise arc sweep = %d, want 1", got)
	}
}

func TestWriteSVGEmptyScene(t *testing.T) {
	var b strings.Builder
	if err := WriteSVG(&b, scene.New(), SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), `viewBox="0 0 2 2"`) {
		t.Fatalf("empty scene should emit a unit viewBox:\n%s", b.String())
	}
}

func TestWriteDXF(t *testing.T) {
	var b strings.Builder
	if err := WriteDXF(&b, testScene(t)); err != nil {
		t.Fatal(err)
	}
	got := b.String()

	if !strings.HasPrefix(got, "0\nSECTION\n2\nENTITIES\n") {
		t.Fatalf("missing ENTITIES header:\n%s", got)
	}
	if !strings.Contains(got, "0\nLINE\n8\n0\n10\n0\n20\n0\n11\n100\n21\n0\n") {
		t.Fatalf("LINE record missing:\n%s", got)
	}
	// Half circle on top: 0deg to 180deg, radius 10, center origin.
	if !strings.Contains(got, "0\nARC\n8\n0\n10\n0\n20\n0\n40\n10\n50\n0\n51\n180\n") {
		t.Fatalf("ARC record missing:\n%s", got)
	}
	if !strings.HasSuffix(got, "0\nENDSEC\n0\nEOF\n") {
		t.Fatal("missing trailer")
	}
}
