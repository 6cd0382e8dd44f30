package tools

import (
	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/scene"
)

// deletePickRadius is the hit-test tolerance in device pixels. It is divided
// by the zoom before querying the scene so the clickable band around an
// object is the same on screen at every zoom level.
const deletePickRadius = 10.0

// DeleteTool removes the primitive nearest the cursor. Moving the pointer
// highlights the current candidate; a primary click deletes it.
type DeleteTool struct {
	ctx *Context

	highlight scene.Primitive
}

func NewDeleteTool(ctx *Context) *DeleteTool {
	return &DeleteTool{ctx: ctx}
}

func (t *DeleteTool) Name() string { return "delete" }

func (t *DeleteTool) Activate()   { t.highlight = nil }
func (t *DeleteTool) Deactivate() { t.highlight = nil }

func (t *DeleteTool) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		if ev.Button != ButtonPrimary || t.highlight == nil {
			return false
		}
		t.ctx.Scene.Remove(t.highlight)
		t.highlight = nil
		return true
	case PointerMove:
		model := t.ctx.Camera.ScreenToWorld(ev.Pos)
		hit := t.ctx.Scene.NearestWithin(model, deletePickRadius*t.ctx.Camera.UnitsPerPixel())
		if hit == t.highlight {
			return false
		}
		t.highlight = hit
		return true
	}
	return false
}

func (t *DeleteTool) HandleKey(ev KeyEvent) bool { return false }

// Highlighted reports the primitive that would be removed by a click.
func (t *DeleteTool) Highlighted() scene.Primitive { return t.highlight }

func (t *DeleteTool) Preview() []geom.Point { return nil }
