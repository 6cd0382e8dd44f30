package ui

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/render"
	"github.com/draftcad/draftcad/pkg/scene"
	"github.com/draftcad/draftcad/pkg/tools"
)

// arcPixelSpacing is the minimum on-screen spacing between tessellation
// vertices, in pixels. Feeds the adaptive segment count.
const arcPixelSpacing = 2.0

type canvasState struct {
	tag         struct{}
	lastPointer geom.Point
	caches      map[scene.Primitive]*render.TessellationCache
}

// dropCaches throws away memoized tessellations after any scene mutation.
func (cs *canvasState) dropCaches() { cs.caches = nil }

func (cs *canvasState) cacheFor(p scene.Primitive, arc geom.Arc) *render.TessellationCache {
	if cs.caches == nil {
		cs.caches = make(map[scene.Primitive]*render.TessellationCache)
	}
	tc, ok := cs.caches[p]
	if !ok {
		tc = render.NewTessellationCache(arc)
		cs.caches[p] = tc
	}
	return tc
}

func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	a.camera.Resize(size.X, size.Y)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &a.canvas.tag)

	a.handleKeys(gtx)
	a.handlePointer(gtx)

	colors := a.cfg.Colors()
	paint.FillShape(gtx.Ops, parseHexColor(colors.CanvasBackground), clip.Rect{Max: size}.Op())

	a.drawGrid(gtx, parseHexColor(colors.GridMinor), parseHexColor(colors.GridMajor))
	a.drawScene(gtx, parseHexColor(colors.Object), parseHexColor(colors.Highlight))
	a.drawPreview(gtx, parseHexColor(colors.Preview))

	return layout.Dimensions{Size: size}
}

func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: key.NameEscape},
			key.Filter{Name: key.NameSpace},
			key.Filter{Name: "R"},
			key.Filter{Name: key.NameLeftArrow},
		)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		switch ke.Name {
		case key.NameEscape:
			if a.ctl.HandleKey(tools.KeyEvent{Name: "Escape"}) {
				gtx.Execute(op.InvalidateCmd{})
			}
		case key.NameSpace:
			a.camera.ZoomToFit(a.scn.Bounds(), 20)
			gtx.Execute(op.InvalidateCmd{})
		case "R":
			a.rotAnim.Start(true)
			gtx.Execute(op.InvalidateCmd{})
		case key.NameLeftArrow:
			a.rotAnim.Start(false)
			gtx.Execute(op.InvalidateCmd{})
		}
	}
}

func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  &a.canvas.tag,
			Kinds:   pointer.Press | pointer.Release | pointer.Drag | pointer.Move | pointer.Scroll | pointer.Cancel,
			ScrollY: pointer.ScrollRange{Min: -1000, Max: 1000},
		})
		if !ok {
			break
		}
		pev, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		pos := geom.Pt(float64(pev.Position.X), float64(pev.Position.Y))
		var mods tools.Modifiers
		if pev.Modifiers.Contain(key.ModShift) {
			mods |= tools.ModShift
		}
		if pev.Modifiers.Contain(key.ModCtrl) {
			mods |= tools.ModCtrl
		}

		switch pev.Kind {
		case pointer.Scroll:
			if pev.Scroll.Y == 0 {
				continue
			}
			factor := 1.1
			if pev.Scroll.Y > 0 {
				factor = 1 / 1.1
			}
			a.zoomAnim.Start(a.zoomAnim.Target()*factor, pos, true)
			gtx.Execute(op.InvalidateCmd{})

		case pointer.Press:
			button := tools.ButtonPrimary
			if pev.Buttons == pointer.ButtonSecondary {
				button = tools.ButtonSecondary
			}
			if a.ctl.HandlePointer(tools.PointerEvent{Kind: tools.PointerDown, Pos: pos, Button: button, Modifiers: mods}) {
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Move, pointer.Drag:
			a.canvas.lastPointer = pos
			if a.ctl.HandlePointer(tools.PointerEvent{Kind: tools.PointerMove, Pos: pos, Modifiers: mods}) {
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Release:
			if a.ctl.HandlePointer(tools.PointerEvent{Kind: tools.PointerUp, Pos: pos, Button: tools.ButtonPrimary, Modifiers: mods}) {
				gtx.Execute(op.InvalidateCmd{})
			}

		case pointer.Cancel:
			// Pointer capture lost; drop any in-progress construction.
			if a.ctl.HandleKey(tools.KeyEvent{Name: "Escape"}) {
				gtx.Execute(op.InvalidateCmd{})
			}
		}
	}
}

func (a *App) drawGrid(gtx layout.Context, minor, major color.NRGBA) {
	step := a.cfg.GridStep()
	grid := render.BuildGrid(a.camera, step)
	if grid.Step <= 0 {
		return
	}
	b := grid.Bounds
	for _, gl := range grid.Vertical {
		col := minor
		if gl.Major {
			col = major
		}
		a.strokeModelLine(gtx, geom.Pt(gl.Value, b.Min.Y), geom.Pt(gl.Value, b.Max.Y), col, 1)
	}
	for _, gl := range grid.Horizontal {
		col := minor
		if gl.Major {
			col = major
		}
		a.strokeModelLine(gtx, geom.Pt(b.Min.X, gl.Value), geom.Pt(b.Max.X, gl.Value), col, 1)
	}

	// Model axes, drawn over the grid.
	axis := major
	axis.A = 255
	if b.Min.X <= 0 && b.Max.X >= 0 {
		a.strokeModelLine(gtx, geom.Pt(0, b.Min.Y), geom.Pt(0, b.Max.Y), axis, 1.5)
	}
	if b.Min.Y <= 0 && b.Max.Y >= 0 {
		a.strokeModelLine(gtx, geom.Pt(b.Min.X, 0), geom.Pt(b.Max.X, 0), axis, 1.5)
	}
}

func (a *App) drawScene(gtx layout.Context, object, highlight color.NRGBA) {
	hl := a.deleteTool.Highlighted()
	for _, obj := range a.scn.Objects() {
		col := object
		if obj == hl {
			col = highlight
		}
		switch p := obj.(type) {
		case *scene.Line:
			a.strokeModelLine(gtx, p.Seg.Start, p.Seg.End, col, 1.5)
		case *scene.Arc:
			segments := geom.SegmentCount(p.Arc, a.camera.UnitsPerPixel(), arcPixelSpacing)
			pts := a.canvas.cacheFor(obj, p.Arc).Points(segments)
			a.strokeModelPolyline(gtx, pts, col, 1.5)
		}
	}
}

func (a *App) drawPreview(gtx layout.Context, col color.NRGBA) {
	pts := a.preview()
	if len(pts) < 2 {
		return
	}
	a.strokeModelPolyline(gtx, pts, col, 1)
}

func (a *App) strokeModelLine(gtx layout.Context, from, to geom.Point, col color.NRGBA, width float32) {
	a.strokeModelPolyline(gtx, []geom.Point{from, to}, col, width)
}

func (a *App) strokeModelPolyline(gtx layout.Context, pts []geom.Point, col color.NRGBA, width float32) {
	if len(pts) < 2 {
		return
	}
	var path clip.Path
	path.Begin(gtx.Ops)
	s := a.camera.WorldToScreen(pts[0])
	path.MoveTo(f32.Pt(float32(s.X), float32(s.Y)))
	for _, p := range pts[1:] {
		s = a.camera.WorldToScreen(p)
		path.LineTo(f32.Pt(float32(s.X), float32(s.Y)))
	}
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: width}.Op())
}

// parseHexColor reads a #RRGGBB string, falling back to opaque white on
// malformed input.
func parseHexColor(s string) color.NRGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	hex := func(hi, lo byte) (uint8, bool) {
		digit := func(c byte) (uint8, bool) {
			switch {
			case c >= '0' && c <= '9':
				return c - '0', true
			case c >= 'a' && c <= 'f':
				return c - 'a' + 10, true
			case c >= 'A' && c <= 'F':
				return c - 'A' + 10, true
			}
			return 0, false
		}
		h, ok1 := digit(hi)
		l, ok2 := digit(lo)
		return h<<4 | l, ok1 && ok2
	}
	r, ok1 := hex(s[1], s[2])
	g, ok2 := hex(s[3], s[4])
	b, ok3 := hex(s[5], s[6])
	if !ok1 || !ok2 || !ok3 {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
