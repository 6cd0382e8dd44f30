package render

import (
	"math"

	"github.com/draftcad/draftcad/pkg/geom"
)

// ZoomAnimation eases the camera zoom toward a target while keeping the
// model point under the cursor stationary, the same contract as a direct
// ZoomAt. The frame loop calls Step once per frame; interpolation runs at a
// fixed fraction per step, so the zoom approaches the target exponentially
// and snaps once within a small threshold.
type ZoomAnimation struct {
	camera *Camera

	target    float64
	anchor    geom.Point
	hasAnchor bool
	active    bool

	// Speed is the interpolation fraction per step in (0, 1].
	Speed float64
}

// NewZoomAnimation creates an animation driving the given camera.
func NewZoomAnimation(camera *Camera) *ZoomAnimation {
	return &ZoomAnimation{camera: camera, target: camera.Zoom(), Speed: 0.15}
}

// Start begins (or retargets) an animation toward the given zoom. The
// anchor is the device point to hold stationary; pass ok=false to zoom
// about the viewport center.
func (za *ZoomAnimation) Start(target float64, anchor geom.Point, ok bool) {
	za.target = clampZoom(target)
	za.anchor = anchor
	za.hasAnchor = ok
	za.active = true
}

// Target returns the zoom the animation is heading for; successive scroll
// ticks compound on this rather than on the lagging actual zoom.
func (za *ZoomAnimation) Target() float64 {
	if za.active {
		return za.target
	}
	return za.camera.Zoom()
}

// Active reports whether the animation still has frames to run.
func (za *ZoomAnimation) Active() bool {
	return za.active
}

// Step advances one frame, returning true while the animation is running.
func (za *ZoomAnimation) Step() bool {
	if !za.active {
		return false
	}

	current := za.camera.Zoom()
	if math.Abs(current-za.target) < 0.001*za.target {
		za.applyZoom(za.target)
		za.active = false
		return false
	}

	za.applyZoom(current + (za.target-current)*za.Speed)
	return true
}

func (za *ZoomAnimation) applyZoom(zoom float64) {
	if za.hasAnchor {
		za.camera.SetZoomAt(za.anchor, zoom)
		return
	}
	w, h := za.camera.ViewportSize()
	za.camera.SetZoomAt(geom.Pt(float64(w)/2, float64(h)/2), zoom)
}

// RotationStep is the angle of one rotation command in degrees.
const RotationStep = 90.0

// RotationAnimation eases the view rotation toward a target angle in fixed
// 90° increments. New rotation commands are ignored while a previous one is
// still in flight, which keeps repeated keypresses from skipping ahead.
type RotationAnimation struct {
	camera *Camera

	start    float64
	target   float64
	progress float64
	active   bool

	// StepFraction is the progress gained per Step in (0, 1].
	StepFraction float64
}

// NewRotationAnimation creates an animation driving the given camera.
func NewRotationAnimation(camera *Camera) *RotationAnimation {
	return &RotationAnimation{camera: camera, StepFraction: 0.2}
}

// Start begins rotating by RotationStep degrees, clockwise or counter-
// clockwise. Returns false when an animation is already running.
func (ra *RotationAnimation) Start(clockwise bool) bool {
	if ra.active {
		return false
	}

	ra.start = ra.camera.Rotation()
	if clockwise {
		ra.target = ra.start + RotationStep
	} else {
		ra.target = ra.start - RotationStep
	}
	ra.progress = 0
	ra.active = true
	return true
}

// Active reports whether a rotation is in flight.
func (ra *RotationAnimation) Active() bool {
	return ra.active
}

// Step advances one frame, returning true while the animation is running.
func (ra *RotationAnimation) Step() bool {
	if !ra.active {
		return false
	}

	ra.progress += ra.StepFraction
	if ra.progress >= 1 {
		ra.setRotation(ra.target)
		ra.active = false
		return false
	}

	// Ease-out: fast start, gentle landing.
	t := 1 - (1-ra.progress)*(1-ra.progress)
	ra.setRotation(ra.start + (ra.target-ra.start)*t)
	return true
}

func (ra *RotationAnimation) setRotation(deg float64) {
	ra.camera.rotation = normalizeDegrees(deg)
}
