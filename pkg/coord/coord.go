// Package coord parses typed coordinate-panel input into model points.
//
// Supported forms:
//
//	10, 20      two numbers, interpreted per the construction mode:
//	            cartesian = absolute (x, y), polar = (length, angle°)
//	            relative to the previous accumulated point
//	@10, 20     relative cartesian offset from the previous point
//	10<45       polar: length 10 at 45°, relative to the previous point
//	@10<45      same as 10<45
//
// Both input paths, pointer clicks and typed coordinates, converge on the
// same point-accumulation logic in the tools package; this package only
// turns text into a model point.
package coord

import (
	"fmt"
	"math"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/settings"
)

// coordLexer tokenizes coordinate-panel input.
var coordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?\d+(\.\d+)?([eE][-+]?\d+)?`},
	{Name: "At", Pattern: `@`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Lt", Pattern: `<`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Expr is one parsed coordinate entry.
type Expr struct {
	Relative bool     `parser:"@At?"`
	A        float64  `parser:"@Number"`
	CartB    *float64 `parser:"( Comma @Number"`
	PolarB   *float64 `parser:"| Lt @Number )"`
}

var parser = participle.MustBuild[Expr](
	participle.Lexer(coordLexer),
	participle.Elide("Whitespace"),
)

// Parse parses one coordinate entry.
func Parse(input string) (Expr, error) {
	expr, err := parser.ParseString("", input)
	if err != nil {
		return Expr{}, fmt.Errorf("coord: parsing %q: %w", input, err)
	}
	return *expr, nil
}

// Polar reports whether the entry used the explicit length<angle form.
func (e Expr) Polar() bool {
	return e.PolarB != nil
}

// Resolve converts the entry to a model point. prev is the previously
// accumulated construction point, the origin for every relative form. The
// construction mode decides how a plain two-number entry is read; the
// explicit @ and < markers override it.
func (e Expr) Resolve(prev geom.Point, mode settings.ConstructionMode) geom.Point {
	switch {
	case e.Polar():
		return polarOffset(prev, e.A, *e.PolarB)
	case e.Relative:
		return prev.Add(geom.Pt(e.A, *e.CartB))
	case mode == settings.Polar:
		return polarOffset(prev, e.A, *e.CartB)
	default:
		return geom.Pt(e.A, *e.CartB)
	}
}

// polarOffset returns prev displaced by length at angleDeg degrees,
// counter-clockwise from +X in model space.
func polarOffset(prev geom.Point, length, angleDeg float64) geom.Point {
	return geom.FromPolar(prev, length, angleDeg*math.Pi/180)
}
