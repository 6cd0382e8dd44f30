// Package settings carries the application configuration consumed by the
// drawing core: construction input mode, angle units, grid step and theme
// colors. The store is an explicit object handed to whoever needs it, not
// ambient global state; interested components subscribe to change
// notifications.
package settings

// ConstructionMode selects how the coordinate panel interprets a pair of
// typed numbers when building a line.
type ConstructionMode string

const (
	// Cartesian reads two numbers as (x, y).
	Cartesian ConstructionMode = "cartesian"
	// Polar reads two numbers as (length, angle°) relative to the previous
	// accumulated point.
	Polar ConstructionMode = "polar"
)

// AngleUnit selects how angles are displayed in readouts.
type AngleUnit string

const (
	Degrees AngleUnit = "degrees"
	Radians AngleUnit = "radians"
)

// Colors is the drawing theme consumed by the viewer.
type Colors struct {
	CanvasBackground string
	GridMinor        string
	GridMajor        string
	Object           string
	Preview          string
	Highlight        string
}

// Settings is the mutable application configuration.
type Settings struct {
	lineConstructionMode ConstructionMode
	angleUnits           AngleUnit
	gridStep             float64
	colors               Colors

	onChange []func()
}

// Defaults returns the settings a fresh install starts with.
func Defaults() *Settings {
	return &Settings{
		lineConstructionMode: Cartesian,
		angleUnits:           Degrees,
		gridStep:             50,
		colors: Colors{
			CanvasBackground: "#2D2D2D",
			GridMinor:        "#3A3A3A",
			GridMajor:        "#555555",
			Object:           "#DDDDDD",
			Preview:          "#7A86CC",
			Highlight:        "#FF4444",
		},
	}
}

// OnChange registers a callback invoked after every setting change.
func (s *Settings) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

func (s *Settings) notify() {
	for _, fn := range s.onChange {
		fn()
	}
}

// LineConstructionMode returns the current construction input mode.
func (s *Settings) LineConstructionMode() ConstructionMode {
	return s.lineConstructionMode
}

// SetLineConstructionMode switches between cartesian and polar input.
// Unknown values fall back to cartesian.
func (s *Settings) SetLineConstructionMode(mode ConstructionMode) {
	if mode != Polar {
		mode = Cartesian
	}
	if mode == s.lineConstructionMode {
		return
	}
	s.lineConstructionMode = mode
	s.notify()
}

// AngleUnits returns the display unit for angles.
func (s *Settings) AngleUnits() AngleUnit {
	return s.angleUnits
}

// SetAngleUnits switches the angle display unit. Unknown values fall back
// to degrees.
func (s *Settings) SetAngleUnits(u AngleUnit) {
	if u != Radians {
		u = Degrees
	}
	if u == s.angleUnits {
		return
	}
	s.angleUnits = u
	s.notify()
}

// GridStep returns the grid spacing in model units.
func (s *Settings) GridStep() float64 {
	return s.gridStep
}

// SetGridStep updates the grid spacing; non-positive values are ignored.
func (s *Settings) SetGridStep(step float64) {
	if step <= 0 || step == s.gridStep {
		return
	}
	s.gridStep = step
	s.notify()
}

// Colors returns the current theme.
func (s *Settings) Colors() Colors {
	return s.colors
}

// SetColors replaces the theme.
func (s *Settings) SetColors(c Colors) {
	s.colors = c
	s.notify()
}
