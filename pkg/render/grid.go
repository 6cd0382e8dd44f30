package render

import (
	"math"

	"github.com/draftcad/draftcad/pkg/geom"
)

// MajorGridInterval makes every n-th grid line a major line.
const MajorGridInterval = 5

// minorGridZoomCutoff hides minor lines when zoomed out far enough that
// they would only add clutter and draw cost.
const minorGridZoomCutoff = 0.5

// GridLine is one grid line at a constant model-space coordinate.
type GridLine struct {
	Value float64 // model X for vertical lines, model Y for horizontal ones
	Major bool
}

// Grid is the set of grid lines covering the current viewport, computed in
// model space; the renderer maps the endpoints through the camera.
type Grid struct {
	Step       float64
	Vertical   []GridLine // constant-X lines
	Horizontal []GridLine // constant-Y lines
	Bounds     geom.BoundingBox
}

// BuildGrid computes the grid of the given model-space step for everything
// the camera can currently see. Under rotation the visible bounds cover all
// four screen corners, so rotated views get full coverage. Minor lines are
// dropped when the zoom falls below a cutoff; major lines (every
// MajorGridInterval-th) always survive.
func BuildGrid(c *Camera, step float64) Grid {
	if step <= 0 {
		return Grid{Step: step}
	}

	bounds := c.VisibleBounds()
	showMinor := c.Zoom() >= minorGridZoomCutoff

	g := Grid{Step: step, Bounds: bounds}
	g.Vertical = gridLines(bounds.Min.X, bounds.Max.X, step, showMinor)
	g.Horizontal = gridLines(bounds.Min.Y, bounds.Max.Y, step, showMinor)
	return g
}

func gridLines(min, max, step float64, showMinor bool) []GridLine {
	start := int(math.Floor(min / step))
	end := int(math.Ceil(max / step))

	lines := make([]GridLine, 0, end-start+1)
	for i := start; i <= end; i++ {
		major := i%MajorGridInterval == 0
		if !major && !showMinor {
			continue
		}
		lines = append(lines, GridLine{Value: float64(i) * step, Major: major})
	}
	return lines
}
