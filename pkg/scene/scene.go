// Package scene holds the drawing's document model: the ordered list of
// finalized primitives, hit-test queries for the delete tool, and the JSON
// shapes used by project files.
package scene

import (
	"github.com/draftcad/draftcad/pkg/geom"
)

// Primitive is a finalized drawable object.
type Primitive interface {
	// Kind returns the type discriminator used in project files
	// ("line", "arc").
	Kind() string

	// BoundingBox returns the model-space extent.
	BoundingBox() geom.BoundingBox

	// DistanceTo returns the minimum model-space distance from p to the
	// primitive, for hit testing.
	DistanceTo(p geom.Point) float64
}

// Line is a finalized straight segment.
type Line struct {
	Seg   geom.Line
	Style string
}

func (l *Line) Kind() string                    { return "line" }
func (l *Line) BoundingBox() geom.BoundingBox   { return l.Seg.BoundingBox() }
func (l *Line) DistanceTo(p geom.Point) float64 { return l.Seg.DistanceTo(p) }

// Arc is a finalized circular arc.
type Arc struct {
	Arc   geom.Arc
	Style string
}

func (a *Arc) Kind() string                    { return "arc" }
func (a *Arc) BoundingBox() geom.BoundingBox   { return a.Arc.BoundingBox() }
func (a *Arc) DistanceTo(p geom.Point) float64 { return a.Arc.DistanceTo(p) }

// Scene is the ordered collection of drawn primitives. Construction tools
// only ever hand it finished objects; in-progress points never reach the
// scene. Mutations happen on the single event-processing goroutine.
type Scene struct {
	objects  []Primitive
	onChange []func()
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// OnChange registers a callback invoked after every mutation. Used by the
// viewer to request a redraw.
func (s *Scene) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

func (s *Scene) notify() {
	for _, fn := range s.onChange {
		fn()
	}
}

// Objects returns the primitives in insertion order. Callers must not
// modify the returned slice.
func (s *Scene) Objects() []Primitive {
	return s.objects
}

// Len returns the number of primitives.
func (s *Scene) Len() int {
	return len(s.objects)
}

// Add appends a finalized primitive.
func (s *Scene) Add(p Primitive) {
	s.objects = append(s.objects, p)
	s.notify()
}

// Remove deletes the given primitive if present.
func (s *Scene) Remove(p Primitive) {
	for i, obj := range s.objects {
		if obj == p {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			s.notify()
			return
		}
	}
}

// Clear removes every primitive.
func (s *Scene) Clear() {
	if len(s.objects) == 0 {
		return
	}
	s.objects = s.objects[:0]
	s.notify()
}

// Bounds returns the box covering all primitives; empty for an empty scene.
func (s *Scene) Bounds() geom.BoundingBox {
	bb := geom.NewBoundingBox()
	for _, obj := range s.objects {
		bb.ExpandBox(obj.BoundingBox())
	}
	return bb
}

// NearestWithin returns the primitive closest to the model-space point p
// within the given radius, or nil when nothing is close enough. At most one
// primitive is ever reported.
func (s *Scene) NearestWithin(p geom.Point, radius float64) Primitive {
	var nearest Primitive
	best := radius
	for _, obj := range s.objects {
		if d := obj.DistanceTo(p); d <= best {
			best = d
			nearest = obj
		}
	}
	return nearest
}
