package tools

import (
	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/scene"
)

// ArcTool builds arcs through three placed points: start, a waypoint the arc
// must pass through, and the end. While the third point tracks the cursor the
// preview is a fixed-budget tessellation, falling back to a straight polyline
// whenever the three points are collinear.
type ArcTool struct {
	ctx *Context

	pts       []geom.Point
	cursor    geom.Point
	hasCursor bool
}

func NewArcTool(ctx *Context) *ArcTool {
	return &ArcTool{ctx: ctx}
}

func (t *ArcTool) Name() string { return "arc" }

func (t *ArcTool) Activate()   { t.reset() }
func (t *ArcTool) Deactivate() { t.reset() }

func (t *ArcTool) reset() {
	t.pts = t.pts[:0]
	t.hasCursor = false
}

func (t *ArcTool) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		if ev.Button == ButtonSecondary {
			return t.cancel()
		}
		if ev.Button != ButtonPrimary {
			return false
		}
		return t.PlacePoint(t.ctx.Camera.ScreenToWorld(ev.Pos))
	case PointerMove:
		t.cursor = t.ctx.Camera.ScreenToWorld(ev.Pos)
		t.hasCursor = true
		return len(t.pts) > 0
	}
	return false
}

func (t *ArcTool) HandleKey(ev KeyEvent) bool {
	if ev.Name == "Escape" {
		return t.cancel()
	}
	return false
}

func (t *ArcTool) cancel() bool {
	if len(t.pts) == 0 {
		return false
	}
	t.pts = t.pts[:0]
	return true
}

// PlacePoint accumulates one of the three construction points. The third
// point commits the arc; if the three points turn out collinear the commit is
// rejected and the tool keeps waiting for a usable end point.
func (t *ArcTool) PlacePoint(p geom.Point) bool {
	t.cursor = p
	t.hasCursor = true
	if len(t.pts) < 2 {
		t.pts = append(t.pts, p)
		return true
	}
	arc, err := geom.SolveArc(t.pts[0], t.pts[1], p, geom.DefaultEpsilon)
	if err != nil {
		return false
	}
	t.ctx.Scene.Add(&scene.Arc{Arc: arc})
	t.pts = t.pts[:0]
	return true
}

func (t *ArcTool) LastPoint() (geom.Point, bool) {
	if n := len(t.pts); n > 0 {
		return t.pts[n-1], true
	}
	return geom.Point{}, false
}

func (t *ArcTool) Preview() []geom.Point {
	if !t.hasCursor {
		return nil
	}
	switch len(t.pts) {
	case 1:
		return []geom.Point{t.pts[0], t.cursor}
	case 2:
		return geom.PreviewPolyline(t.pts[0], t.pts[1], t.cursor, geom.DefaultEpsilon)
	}
	return nil
}
