package render

import "github.com/draftcad/draftcad/pkg/geom"

// TessellationCache memoizes polylines for a single arc, keyed by segment
// count, so redrawing the same arc at an unchanged zoom costs a map lookup.
// Arcs are immutable, so invalidation is simply "new arc, new cache".
//
// The cache is not safe for concurrent use; it lives with the single-threaded
// draw loop.
type TessellationCache struct {
	arc    geom.Arc
	bysegs map[int][]geom.Point
}

// NewTessellationCache creates a cache for one arc.
func NewTessellationCache(arc geom.Arc) *TessellationCache {
	return &TessellationCache{
		arc:    arc,
		bysegs: make(map[int][]geom.Point),
	}
}

// Arc returns the cached arc.
func (tc *TessellationCache) Arc() geom.Arc {
	return tc.arc
}

// Points returns the arc tessellated into the given number of segments,
// computing and memoizing it on first request. Callers must not modify the
// returned slice.
func (tc *TessellationCache) Points(segments int) []geom.Point {
	if points, ok := tc.bysegs[segments]; ok {
		return points
	}
	points := geom.Tessellate(tc.arc, segments)
	tc.bysegs[segments] = points
	Logger().Debug("tessellation cached", "segments", segments, "entries", len(tc.bysegs))
	return points
}

// Len returns the number of memoized segment counts.
func (tc *TessellationCache) Len() int {
	return len(tc.bysegs)
}
