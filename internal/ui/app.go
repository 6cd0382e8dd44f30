// Package ui is the Gio drawing application: a toolbar, the drawing canvas,
// a coordinate entry field and a status readout. All geometry lives in the
// pkg packages; this package only routes input events into the tool
// controller and paints what the camera projects.
package ui

import (
	"fmt"
	"image/color"
	"log"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/draftcad/draftcad/pkg/geom"
	"github.com/draftcad/draftcad/pkg/render"
	"github.com/draftcad/draftcad/pkg/scene"
	"github.com/draftcad/draftcad/pkg/settings"
	"github.com/draftcad/draftcad/pkg/tools"
)

type toolButton struct {
	tool  string
	label string
	icon  *widget.Icon
	click widget.Clickable
}

// App drives the Gio drawing window.
type App struct {
	Window *app.Window
	Theme  *material.Theme

	ops op.Ops

	camera *render.Camera
	scn    *scene.Scene
	cfg    *settings.Settings

	ctl        *tools.Controller
	lineTool   *tools.LineTool
	arcTool    *tools.ArcTool
	deleteTool *tools.DeleteTool

	zoomAnim *render.ZoomAnimation
	rotAnim  *render.RotationAnimation

	canvas canvasState

	toolButtons []*toolButton
	fitBtn      widget.Clickable
	rotCCWBtn   widget.Clickable
	rotCWBtn    widget.Clickable
	modeBtn     widget.Clickable

	coordEditor widget.Editor
	coordErr    string
}

// New wires the window, theme, camera, scene and tools together. The scene
// may already hold objects loaded from a project file.
func New(window *app.Window, scn *scene.Scene, cfg *settings.Settings, view render.ViewState) *App {
	if scn == nil {
		scn = scene.New()
	}
	if cfg == nil {
		cfg = settings.Defaults()
	}
	camera := render.NewCamera(1000, 800)
	camera.SetViewState(view)

	a := &App{
		Window: window,
		Theme:  material.NewTheme(),
		camera: camera,
		scn:    scn,
		cfg:    cfg,
	}
	a.Theme.Palette = material.Palette{
		Bg:         color.NRGBA{R: 45, G: 45, B: 45, A: 255},
		Fg:         color.NRGBA{R: 221, G: 221, B: 221, A: 255},
		ContrastBg: color.NRGBA{R: 122, G: 134, B: 204, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
	}
	a.coordEditor.SingleLine = true
	a.coordEditor.Submit = true

	ctx := &tools.Context{Camera: camera, Scene: scn, Settings: cfg}
	a.lineTool = tools.NewLineTool(ctx)
	a.arcTool = tools.NewArcTool(ctx)
	a.deleteTool = tools.NewDeleteTool(ctx)
	a.ctl = tools.NewController(ctx)
	a.ctl.Register(a.lineTool)
	a.ctl.Register(a.arcTool)
	a.ctl.Register(tools.NewPanTool(ctx))
	a.ctl.Register(a.deleteTool)
	if err := a.ctl.Activate("line"); err != nil {
		log.Printf("ui: %v", err)
	}

	a.zoomAnim = render.NewZoomAnimation(camera)
	a.rotAnim = render.NewRotationAnimation(camera)

	a.initToolbar()
	scn.OnChange(func() {
		a.canvas.dropCaches()
		window.Invalidate()
	})
	cfg.OnChange(func() { window.Invalidate() })
	return a
}

// Run processes window events until the window is closed.
func (a *App) Run() error {
	for {
		switch ev := a.Window.Event().(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// Camera exposes the view for saving the project on exit.
func (a *App) Camera() *render.Camera { return a.camera }

func (a *App) initToolbar() {
	makeIcon := func(data []byte, name string) *widget.Icon {
		icon, err := widget.NewIcon(data)
		if err != nil {
			log.Printf("ui: failed to load %s icon: %v", name, err)
			return nil
		}
		return icon
	}
	a.toolButtons = []*toolButton{
		{tool: "line", label: "Line", icon: makeIcon(icons.ContentCreate, "line")},
		{tool: "arc", label: "Arc", icon: makeIcon(icons.ImageLooks, "arc")},
		{tool: "pan", label: "Pan", icon: makeIcon(icons.ActionPanTool, "pan")},
		{tool: "delete", label: "Delete", icon: makeIcon(icons.ActionDelete, "delete")},
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Run one animation step per frame while anything is active.
	if a.zoomAnim.Step() || a.rotAnim.Step() {
		gtx.Execute(op.InvalidateCmd{})
	}

	paint.FillShape(gtx.Ops, a.Theme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.layoutCanvas),
		layout.Rigid(a.layoutStatus),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(8), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			children := make([]layout.FlexChild, 0, len(a.toolButtons)*2+8)
			active := ""
			if t := a.ctl.Active(); t != nil {
				active = t.Name()
			}
			for _, tb := range a.toolButtons {
				for tb.click.Clicked(gtx) {
					if err := a.ctl.Activate(tb.tool); err != nil {
						log.Printf("ui: %v", err)
					}
					a.invalidate()
				}
				children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					btn := material.IconButton(a.Theme, &tb.click, tb.icon, tb.label)
					btn.Size = unit.Dp(22)
					btn.Inset = layout.UniformInset(unit.Dp(7))
					if tb.tool != active {
						btn.Background = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
					}
					return btn.Layout(gtx)
				}))
				children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout))
			}

			for a.fitBtn.Clicked(gtx) {
				a.camera.ZoomToFit(a.scn.Bounds(), 20)
				a.invalidate()
			}
			for a.rotCCWBtn.Clicked(gtx) {
				a.rotAnim.Start(false)
				a.invalidate()
			}
			for a.rotCWBtn.Clicked(gtx) {
				a.rotAnim.Start(true)
				a.invalidate()
			}
			for a.modeBtn.Clicked(gtx) {
				mode := settings.Polar
				if a.cfg.LineConstructionMode() == settings.Polar {
					mode = settings.Cartesian
				}
				a.cfg.SetLineConstructionMode(mode)
			}

			children = append(children,
				layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
				layout.Rigid(a.plainButton(&a.fitBtn, "Fit")),
				layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
				layout.Rigid(a.plainButton(&a.rotCCWBtn, "⟲ 90")),
				layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
				layout.Rigid(a.plainButton(&a.rotCWBtn, "⟳ 90")),
				layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
				layout.Rigid(a.plainButton(&a.modeBtn, string(a.cfg.LineConstructionMode()))),
				layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
				layout.Flexed(1, a.layoutCoordField),
			)
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
		})
}

func (a *App) plainButton(click *widget.Clickable, label string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		btn := material.Button(a.Theme, click, label)
		btn.Inset = layout.UniformInset(unit.Dp(6))
		return btn.Layout(gtx)
	}
}

func (a *App) layoutCoordField(gtx layout.Context) layout.Dimensions {
	for {
		ev, ok := a.coordEditor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.SubmitEvent); ok {
			text := a.coordEditor.Text()
			if _, err := a.ctl.CommitTyped(text); err != nil {
				a.coordErr = err.Error()
			} else {
				a.coordErr = ""
				a.coordEditor.SetText("")
			}
			a.invalidate()
		}
	}
	hint := "x, y"
	if a.cfg.LineConstructionMode() == settings.Polar {
		hint = "length, angle°"
	}
	ed := material.Editor(a.Theme, &a.coordEditor, hint)
	return ed.Layout(gtx)
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	name := "none"
	if t := a.ctl.Active(); t != nil {
		name = t.Name()
	}
	cursor := a.camera.ScreenToWorld(a.canvas.lastPointer)
	text := fmt.Sprintf("%s  |  x %.3f  y %.3f  |  zoom %.0f%%  rot %.0f°",
		name, cursor.X, cursor.Y, a.camera.Zoom()*100, a.camera.Rotation())
	if r := a.lineTool.Readout(); r != "" {
		text += "  |  " + r
	}
	if a.coordErr != "" {
		text += "  |  " + a.coordErr
	}

	return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(12), Right: unit.Dp(12)}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			lbl := material.Body2(a.Theme, text)
			lbl.Color = color.NRGBA{R: 170, G: 170, B: 170, A: 255}
			return lbl.Layout(gtx)
		})
}

func (a *App) invalidate() {
	if a.Window != nil {
		a.Window.Invalidate()
	}
}

// Preview convenience used by the canvas.
func (a *App) preview() []geom.Point { return a.ctl.Preview() }
