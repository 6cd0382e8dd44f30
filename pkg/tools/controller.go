package tools

import (
	"fmt"

	"github.com/draftcad/draftcad/pkg/coord"
	"github.com/draftcad/draftcad/pkg/geom"
)

// Controller owns the registered tools and guarantees that at most one is
// active. All pointer and key events flow through it to the active tool, as
// does typed coordinate input.
type Controller struct {
	ctx    *Context
	tools  map[string]Tool
	order  []string
	active Tool
}

func NewController(ctx *Context) *Controller {
	return &Controller{ctx: ctx, tools: make(map[string]Tool)}
}

// Register adds a tool under its own name. Registering two tools with the
// same name is a programming error.
func (c *Controller) Register(t Tool) {
	name := t.Name()
	if _, dup := c.tools[name]; dup {
		panic("tools: duplicate tool " + name)
	}
	c.tools[name] = t
	c.order = append(c.order, name)
}

// Names returns the registered tool names in registration order.
func (c *Controller) Names() []string {
	return append([]string(nil), c.order...)
}

// Activate switches to the named tool, deactivating the current one first so
// its in-progress construction is discarded. Activating the already-active
// tool resets it.
func (c *Controller) Activate(name string) error {
	t, ok := c.tools[name]
	if !ok {
		return fmt.Errorf("tools: unknown tool %q", name)
	}
	if c.active != nil {
		c.active.Deactivate()
	}
	c.active = t
	t.Activate()
	return nil
}

// Deactivate leaves the controller with no active tool.
func (c *Controller) Deactivate() {
	if c.active != nil {
		c.active.Deactivate()
		c.active = nil
	}
}

// Active returns the current tool, or nil.
func (c *Controller) Active() Tool { return c.active }

func (c *Controller) HandlePointer(ev PointerEvent) bool {
	if c.active == nil {
		return false
	}
	return c.active.HandlePointer(ev)
}

func (c *Controller) HandleKey(ev KeyEvent) bool {
	if c.active == nil {
		return false
	}
	return c.active.HandleKey(ev)
}

// Preview returns the active tool's transient polyline, or nil.
func (c *Controller) Preview() []geom.Point {
	if c.active == nil {
		return nil
	}
	return c.active.Preview()
}

// CommitTyped parses a coordinate expression and places the resulting point
// with the active tool. Relative and polar forms resolve against the tool's
// last accumulated point, or the origin when the tool is idle.
func (c *Controller) CommitTyped(input string) (bool, error) {
	placer, ok := c.active.(PointPlacer)
	if !ok {
		return false, fmt.Errorf("tools: active tool does not accept coordinates")
	}
	expr, err := coord.Parse(input)
	if err != nil {
		return false, err
	}
	prev, _ := placer.LastPoint()
	return placer.PlacePoint(expr.Resolve(prev, c.ctx.Settings.LineConstructionMode())), nil
}
