package geom

// BoundingBox is an axis-aligned rectangle in model space.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox creates an empty bounding box. Expand grows it to cover
// points; an empty box stays empty until the first Expand.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: 1e18, Y: 1e18},
		Max: Point{X: -1e18, Y: -1e18},
	}
}

// IsEmpty reports whether the box covers no area and no points.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Width returns the extent of the box along X.
func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

// Height returns the extent of the box along Y.
func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the midpoint of the box.
func (bb BoundingBox) Center() Point {
	return Point{
		X: (bb.Min.X + bb.Max.X) / 2,
		Y: (bb.Min.Y + bb.Max.Y) / 2,
	}
}

// Contains reports whether p lies inside the box (borders inclusive).
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

// Intersects reports whether the two boxes overlap.
func (bb BoundingBox) Intersects(other BoundingBox) bool {
	return bb.Min.X <= other.Max.X && bb.Max.X >= other.Min.X &&
		bb.Min.Y <= other.Max.Y && bb.Max.Y >= other.Min.Y
}

// Expand grows the box to include p.
func (bb *BoundingBox) Expand(p Point) {
	if p.X < bb.Min.X {
		bb.Min.X = p.X
	}
	if p.Y < bb.Min.Y {
		bb.Min.Y = p.Y
	}
	if p.X > bb.Max.X {
		bb.Max.X = p.X
	}
	if p.Y > bb.Max.Y {
		bb.Max.Y = p.Y
	}
}

// ExpandBox grows the box to include another box.
func (bb *BoundingBox) ExpandBox(other BoundingBox) {
	if !other.IsEmpty() {
		bb.Expand(other.Min)
		bb.Expand(other.Max)
	}
}
