// Package render maintains the view onto a drawing: the camera that maps
// between model and device coordinates, adaptive tessellation caching, the
// background grid, and the smooth zoom/rotation animations.
package render

import (
	"math"

	"github.com/draftcad/draftcad/pkg/geom"
)

// Zoom limits in device pixels per model unit.
const (
	MinZoom = 0.001
	MaxZoom = 1000.0
)

// ViewState is the serializable snapshot of a camera. Pan is the model-space
// point shown at the viewport center, zoom is in device pixels per model
// unit, rotation in degrees. The zero value of Zoom is repaired to the
// identity view on restore, so a missing field in a project file loads as
// the default view.
type ViewState struct {
	PanX     float64 `json:"pan_x"`
	PanY     float64 `json:"pan_y"`
	Zoom     float64 `json:"zoom"`
	Rotation float64 `json:"rotation"`
}

// IdentityView is the view state of a fresh camera.
var IdentityView = ViewState{Zoom: 1}

// Camera owns the composed pan/zoom/rotation state and converts between
// model coordinates (drawing units, Y up) and device coordinates (pixels,
// Y down, origin top-left).
//
// The composition order is fixed and shared by both directions:
// model→device subtracts the pan, scales by the zoom, rotates by the view
// rotation, then translates to the viewport center with the Y flip.
// device→model applies the exact inverse sequence. Panning therefore moves
// in current screen directions, not in the unrotated drawing axes.
//
// A Camera is not safe for concurrent mutation; all interaction runs on the
// single event-processing goroutine.
type Camera struct {
	center   geom.Point // model point at the viewport center
	zoom     float64    // device pixels per model unit, always > 0
	rotation float64    // degrees, always in [0, 360)

	width  int // viewport size in pixels
	height int
}

// NewCamera creates an identity camera for the given viewport size.
func NewCamera(width, height int) *Camera {
	return &Camera{zoom: 1, width: width, height: height}
}

// Resize updates the viewport size. The model point at the viewport center
// stays fixed.
func (c *Camera) Resize(width, height int) {
	c.width = width
	c.height = height
}

// ViewportSize returns the current viewport size in pixels.
func (c *Camera) ViewportSize() (width, height int) {
	return c.width, c.height
}

// Zoom returns the current zoom in device pixels per model unit.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// Rotation returns the view rotation in degrees, in [0, 360).
func (c *Camera) Rotation() float64 {
	return c.rotation
}

// UnitsPerPixel returns the view scale as model units per device pixel,
// the form the tessellation LOD policy consumes.
func (c *Camera) UnitsPerPixel() float64 {
	return 1 / c.zoom
}

// WorldToScreen maps a model-space point to device pixels.
func (c *Camera) WorldToScreen(p geom.Point) geom.Point {
	x := (p.X - c.center.X) * c.zoom
	y := (p.Y - c.center.Y) * c.zoom

	if c.rotation != 0 {
		rad := c.rotation * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	return geom.Point{
		X: x + float64(c.width)/2,
		Y: float64(c.height)/2 - y,
	}
}

// ScreenToWorld maps a device pixel to model space. It is the exact inverse
// of WorldToScreen; downstream readouts consume the result as-is and must
// never flip Y again.
func (c *Camera) ScreenToWorld(p geom.Point) geom.Point {
	x := p.X - float64(c.width)/2
	y := float64(c.height)/2 - p.Y

	if c.rotation != 0 {
		rad := -c.rotation * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		x, y = x*cos-y*sin, x*sin+y*cos
	}

	return geom.Point{
		X: x/c.zoom + c.center.X,
		Y: y/c.zoom + c.center.Y,
	}
}

// Pan moves the view by a device-pixel delta, in current screen directions:
// dragging right always moves the drawing right on screen regardless of the
// view rotation.
func (c *Camera) Pan(deltaX, deltaY float64) {
	dx := deltaX / c.zoom
	dy := -deltaY / c.zoom // device Y grows downward

	if c.rotation != 0 {
		rad := -c.rotation * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		dx, dy = dx*cos-dy*sin, dx*sin+dy*cos
	}

	c.center.X -= dx
	c.center.Y -= dy
}

// ZoomAt scales the zoom by factor while keeping the model point under the
// given device anchor stationary on screen.
func (c *Camera) ZoomAt(anchor geom.Point, factor float64) {
	before := c.ScreenToWorld(anchor)

	c.zoom = clampZoom(c.zoom * factor)

	after := c.ScreenToWorld(anchor)
	c.center.X += before.X - after.X
	c.center.Y += before.Y - after.Y
}

// SetZoomAt sets an absolute zoom preserving the anchor, for animated zoom
// steps that interpolate toward a target.
func (c *Camera) SetZoomAt(anchor geom.Point, zoom float64) {
	before := c.ScreenToWorld(anchor)

	c.zoom = clampZoom(zoom)

	after := c.ScreenToWorld(anchor)
	c.center.X += before.X - after.X
	c.center.Y += before.Y - after.Y
}

// Rotate adds delta degrees to the view rotation, normalized into [0, 360).
func (c *Camera) Rotate(delta float64) {
	c.rotation = normalizeDegrees(c.rotation + delta)
}

// ZoomToFit frames the given model-space bounds: zoom becomes the largest
// value at which the bounds, inset by padding pixels on every side, fit the
// viewport, and the bounds' center maps to the viewport center. The
// effective viewport is shrunk by the current rotation so rotated content
// still fits. Empty bounds reset to the identity view.
func (c *Camera) ZoomToFit(bounds geom.BoundingBox, padding float64) {
	if bounds.IsEmpty() {
		c.center = geom.Point{}
		c.zoom = 1
		return
	}

	w := bounds.Width()
	h := bounds.Height()
	if w < 1e-9 {
		w = 1e-9
	}
	if h < 1e-9 {
		h = 1e-9
	}

	availW := math.Max(1, float64(c.width)-2*padding)
	availH := math.Max(1, float64(c.height)-2*padding)

	// A rotated drawing occupies a larger axis-aligned footprint on screen.
	rad := c.rotation * math.Pi / 180
	cos, sin := math.Abs(math.Cos(rad)), math.Abs(math.Sin(rad))
	effW := availW*cos + availH*sin
	effH := availW*sin + availH*cos

	c.zoom = clampZoom(math.Min(effW/w, effH/h))
	c.center = bounds.Center()
}

// VisibleBounds returns the model-space box covering the viewport. Under
// rotation all four screen corners map to different model extremes, so all
// four are folded in; grid and axes rendering iterate over this range.
func (c *Camera) VisibleBounds() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	bb.Expand(c.ScreenToWorld(geom.Pt(0, 0)))
	bb.Expand(c.ScreenToWorld(geom.Pt(float64(c.width), 0)))
	bb.Expand(c.ScreenToWorld(geom.Pt(0, float64(c.height))))
	bb.Expand(c.ScreenToWorld(geom.Pt(float64(c.width), float64(c.height))))
	return bb
}

// ViewState returns a snapshot for persistence.
func (c *Camera) ViewState() ViewState {
	return ViewState{
		PanX:     c.center.X,
		PanY:     c.center.Y,
		Zoom:     c.zoom,
		Rotation: c.rotation,
	}
}

// SetViewState restores a snapshot. Malformed persisted state is repaired
// rather than rejected: a non-positive or non-finite zoom falls back to the
// identity zoom with a logged warning, and the rotation is normalized. Scene
// loading never aborts on a bad view record.
func (c *Camera) SetViewState(vs ViewState) {
	zoom := vs.Zoom
	if zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		Logger().Warn("repairing invalid view state zoom",
			"zoom", vs.Zoom, "fallback", IdentityView.Zoom)
		zoom = IdentityView.Zoom
	}

	c.center = geom.Pt(vs.PanX, vs.PanY)
	c.zoom = clampZoom(zoom)
	c.rotation = normalizeDegrees(vs.Rotation)
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
