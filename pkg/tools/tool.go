package tools

import (
	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/render"
	"github.com/draftcad/draftcad/pkg/scene"
	"github.com/draftcad/draftcad/pkg/settings"
)

// Context bundles the shared state a tool operates on. The camera converts
// between device and model coordinates, the scene receives committed
// primitives, and settings supply the construction mode and angle unit.
type Context struct {
	Camera   *render.Camera
	Scene    *scene.Scene
	Settings *settings.Settings
}

// Tool is one interactive mode. Exactly one tool is active at a time; the
// Controller enforces that. Event handlers return true when the viewport
// needs a redraw.
type Tool interface {
	Name() string

	// Activate resets the tool to its idle state. Deactivate discards any
	// in-progress construction.
	Activate()
	Deactivate()

	HandlePointer(ev PointerEvent) bool
	HandleKey(ev KeyEvent) bool

	// Preview returns the model-space polyline to draw as transient
	// feedback, or nil when the tool has nothing in progress.
	Preview() []geom.Point
}

// PointPlacer is implemented by construction tools whose accumulation step
// can also be driven by typed coordinate input. PlacePoint is the single
// entry point used by both pointer clicks and parsed coordinate commits, so
// the two input paths cannot diverge.
type PointPlacer interface {
	PlacePoint(p geom.Point) bool

	// LastPoint reports the most recently accumulated point, used as the
	// reference for relative and polar coordinate entry.
	LastPoint() (geom.Point, bool)
}
