package tools

import (
	"fmt"
	"math"

	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/scene"
	"github.com/draftcad/draftcad/pkg/settings"
)

// LineTool builds line segments from two placed points. Points arrive either
// as primary clicks or as typed coordinates routed through PlacePoint; both
// paths share the same accumulation so a click-then-type construction behaves
// exactly like two clicks.
type LineTool struct {
	ctx *Context

	start     geom.Point
	hasStart  bool
	cursor    geom.Point
	hasCursor bool
}

func NewLineTool(ctx *Context) *LineTool {
	return &LineTool{ctx: ctx}
}

func (t *LineTool) Name() string { return "line" }

func (t *LineTool) Activate()   { t.reset() }
func (t *LineTool) Deactivate() { t.reset() }

func (t *LineTool) reset() {
	t.hasStart = false
	t.hasCursor = false
}

func (t *LineTool) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		if ev.Button == ButtonSecondary {
			return t.cancel()
		}
		if ev.Button != ButtonPrimary {
			return false
		}
		return t.PlacePoint(t.lockAxis(t.ctx.Camera.ScreenToWorld(ev.Pos), ev.Modifiers))
	case PointerMove:
		t.cursor = t.lockAxis(t.ctx.Camera.ScreenToWorld(ev.Pos), ev.Modifiers)
		t.hasCursor = true
		return t.hasStart
	}
	return false
}

// lockAxis snaps p onto the horizontal or vertical through the pending start
// point, whichever is closer, while Shift is held.
func (t *LineTool) lockAxis(p geom.Point, mods Modifiers) geom.Point {
	if !t.hasStart || !mods.Contain(ModShift) {
		return p
	}
	d := p.Sub(t.start)
	if math.Abs(d.X) >= math.Abs(d.Y) {
		return geom.Pt(p.X, t.start.Y)
	}
	return geom.Pt(t.start.X, p.Y)
}

func (t *LineTool) HandleKey(ev KeyEvent) bool {
	if ev.Name == "Escape" {
		return t.cancel()
	}
	return false
}

func (t *LineTool) cancel() bool {
	if !t.hasStart {
		return false
	}
	t.hasStart = false
	return true
}

// PlacePoint accumulates one construction point. The first call anchors the
// segment; the second commits it to the scene and returns the tool to idle.
func (t *LineTool) PlacePoint(p geom.Point) bool {
	if !t.hasStart {
		t.start = p
		t.hasStart = true
		t.cursor = p
		t.hasCursor = true
		return true
	}
	t.ctx.Scene.Add(&scene.Line{Seg: geom.Line{Start: t.start, End: p}})
	t.hasStart = false
	return true
}

func (t *LineTool) LastPoint() (geom.Point, bool) {
	if t.hasStart {
		return t.start, true
	}
	return geom.Point{}, false
}

func (t *LineTool) Preview() []geom.Point {
	if !t.hasStart || !t.hasCursor {
		return nil
	}
	return []geom.Point{t.start, t.cursor}
}

// Readout describes the in-progress segment for the status bar, honoring the
// configured angle unit. It returns "" when no segment is in progress.
func (t *LineTool) Readout() string {
	if !t.hasStart || !t.hasCursor {
		return ""
	}
	d := t.start.Distance(t.cursor)
	a := t.start.Angle(t.cursor)
	if t.ctx.Settings.AngleUnits() == settings.Degrees {
		return fmt.Sprintf("len %.3f  ang %.2f°", d, a*180/math.Pi)
	}
	return fmt.Sprintf("len %.3f  ang %.4f rad", d, a)
}
