package scene

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/draftcad/draftcad/pkg/geom"
)

// pointRecord is the {x, y} shape shared by all primitive records.
type pointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// primitiveRecord is the on-disk shape of one primitive, discriminated by
// Type. Unused fields stay at their zero value and are omitted.
type primitiveRecord struct {
	Type  string `json:"type"`
	Style string `json:"style,omitempty"`

	// line
	Start *pointRecord `json:"start,omitempty"`
	End   *pointRecord `json:"end,omitempty"`

	// arc; angles are stored in radians, matching the descriptor
	Center     *pointRecord `json:"center,omitempty"`
	Radius     float64      `json:"radius,omitempty"`
	StartAngle float64      `json:"start_angle,omitempty"`
	EndAngle   float64      `json:"end_angle,omitempty"`
}

// MarshalPrimitives encodes primitives as a JSON array of type-discriminated
// records. Coordinates are stored exactly; no tolerance is applied on the
// serialization path.
func MarshalPrimitives(objs []Primitive) ([]byte, error) {
	records := make([]primitiveRecord, 0, len(objs))
	for _, obj := range objs {
		switch o := obj.(type) {
		case *Line:
			records = append(records, primitiveRecord{
				Type:  "line",
				Style: o.Style,
				Start: &pointRecord{X: o.Seg.Start.X, Y: o.Seg.Start.Y},
				End:   &pointRecord{X: o.Seg.End.X, Y: o.Seg.End.Y},
			})
		case *Arc:
			records = append(records, primitiveRecord{
				Type:       "arc",
				Style:      o.Style,
				Center:     &pointRecord{X: o.Arc.Center.X, Y: o.Arc.Center.Y},
				Radius:     o.Arc.Radius,
				StartAngle: o.Arc.StartAngle,
				EndAngle:   o.Arc.EndAngle,
			})
		default:
			return nil, fmt.Errorf("scene: cannot encode primitive kind %q", obj.Kind())
		}
	}
	return json.MarshalIndent(records, "", "  ")
}

// UnmarshalPrimitives decodes a JSON array produced by MarshalPrimitives.
// Records with an unknown type fail; a whole project never silently loses
// objects.
func UnmarshalPrimitives(data []byte) ([]Primitive, error) {
	var records []primitiveRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("scene: decoding objects: %w", err)
	}

	objs := make([]Primitive, 0, len(records))
	for i, rec := range records {
		switch rec.Type {
		case "line":
			if rec.Start == nil || rec.End == nil {
				return nil, fmt.Errorf("scene: object %d: line missing endpoints", i)
			}
			objs = append(objs, &Line{
				Seg: geom.Line{
					Start: geom.Pt(rec.Start.X, rec.Start.Y),
					End:   geom.Pt(rec.End.X, rec.End.Y),
				},
				Style: rec.Style,
			})
		case "arc":
			if rec.Center == nil || rec.Radius <= 0 {
				return nil, fmt.Errorf("scene: object %d: arc missing center or radius", i)
			}
			objs = append(objs, &Arc{
				Arc:   arcFromRecord(rec),
				Style: rec.Style,
			})
		default:
			return nil, fmt.Errorf("scene: object %d: unknown type %q", i, rec.Type)
		}
	}
	return objs, nil
}

// arcFromRecord rebuilds the full descriptor from the stored center, radius
// and angle range; endpoints and the large-arc flag are derived, not stored.
func arcFromRecord(rec primitiveRecord) geom.Arc {
	a := geom.Arc{
		Center:     geom.Pt(rec.Center.X, rec.Center.Y),
		Radius:     rec.Radius,
		StartAngle: rec.StartAngle,
		EndAngle:   rec.EndAngle,
	}
	a.StartPoint = a.PointAt(a.StartAngle)
	a.EndPoint = a.PointAt(a.EndAngle)
	a.LargeArc = a.EndAngle-a.StartAngle > math.Pi
	return a
}
