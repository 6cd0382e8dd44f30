package coord

import (
	"testing"

	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/settings"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantErr  bool
		relative bool
		polar    bool
		a, b     float64
	}{
		{"absolute pair", "10, 20", false, false, false, 10, 20},
		{"no space", "10,20", false, false, false, 10, 20},
		{"negative and decimal", "-1.5, 2.25", false, false, false, -1.5, 2.25},
		{"scientific notation", "1e3, -2.5e-1", false, false, false, 1000, -0.25},
		{"relative pair", "@5, -3", false, true, false, 5, -3},
		{"polar", "10<45", false, false, true, 10, 45},
		{"relative polar", "@10<45", false, true, true, 10, 45},
		{"polar with spaces", "7.5 < 90", false, false, true, 7.5, 90},
		{"empty", "", true, false, false, 0, 0},
		{"single number", "10", true, false, false, 0, 0},
		{"trailing junk", "10, 20, 30", true, false, false, 0, 0},
		{"word", "ten, twenty", true, false, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}

			if expr.Relative != tt.relative {
				t.Errorf("Relative = %v, want %v", expr.Relative, tt.relative)
			}
			if expr.Polar() != tt.polar {
				t.Errorf("Polar() = %v, want %v", expr.Polar(), tt.polar)
			}
			if expr.A != tt.a {
				t.Errorf("A = %v, want %v", expr.A, tt.a)
			}
			b := expr.CartB
			if tt.polar {
				b = expr.PolarB
			}
			if b == nil || *b != tt.b {
				t.Errorf("B = %v, want %v", b, tt.b)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	prev := geom.Pt(100, 50)

	tests := []struct {
		name  string
		input string
		mode  settings.ConstructionMode
		want  geom.Point
	}{
		{"cartesian absolute", "10, 20", settings.Cartesian, geom.Pt(10, 20)},
		{"cartesian relative", "@10, 20", settings.Cartesian, geom.Pt(110, 70)},
		{"polar mode plain pair", "10, 90", settings.Polar, geom.Pt(100, 60)},
		{"at marker overrides polar mode", "@30, 40", settings.Polar, geom.Pt(130, 90)},
		{"explicit polar overrides cartesian mode", "10<90", settings.Cartesian, geom.Pt(100, 60)},
		{"polar 45 degrees", "10<45", settings.Polar, geom.Pt(100 + 10*0.7071067811865476, 50 + 10*0.7071067811865476)},
		{"polar zero angle", "5<0", settings.Cartesian, geom.Pt(105, 50)},
		{"polar negative angle", "10<-90", settings.Cartesian, geom.Pt(100, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			got := expr.Resolve(prev, tt.mode)
			if !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}
