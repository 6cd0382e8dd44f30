package tools

import "github.com/draftcad/draftcad/pkg/geom"

// PanTool drags the view. Motion is fed to the camera incrementally so the
// grabbed model point stays under the cursor at any zoom or rotation.
type PanTool struct {
	ctx *Context

	dragging bool
	last     geom.Point
}

func NewPanTool(ctx *Context) *PanTool {
	return &PanTool{ctx: ctx}
}

func (t *PanTool) Name() string { return "pan" }

func (t *PanTool) Activate()   { t.dragging = false }
func (t *PanTool) Deactivate() { t.dragging = false }

func (t *PanTool) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		if ev.Button != ButtonPrimary {
			return false
		}
		t.dragging = true
		t.last = ev.Pos
	case PointerMove:
		if !t.dragging {
			return false
		}
		t.ctx.Camera.Pan(ev.Pos.X-t.last.X, ev.Pos.Y-t.last.Y)
		t.last = ev.Pos
		return true
	case PointerUp:
		t.dragging = false
	}
	return false
}

func (t *PanTool) HandleKey(ev KeyEvent) bool {
	if ev.Name == "Escape" && t.dragging {
		t.dragging = false
		return true
	}
	return false
}

func (t *PanTool) Preview() []geom.Point { return nil }
