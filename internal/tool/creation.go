package tool

import (
	"fmt"
	"math"
	"strings"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/geom"
	"FigureEditor/internal/state"
)

// placement is the shape and transform of a figure being dragged out from
// anchor a to pointer b.
type placement struct {
	shape    figure.Shape
	center   geom.Point
	rotation float64
}

type builder func(cs state.CurrentStyle, a, b geom.Point) placement

// boxed builds figures inscribed in the box with corners a and b.
func boxed(shape func(cs state.CurrentStyle, hw, hh float64) figure.Shape) builder {
	return func(cs state.CurrentStyle, a, b geom.Point) placement {
		return placement{
			shape:  shape(cs, math.Abs(b.X-a.X)/2, math.Abs(b.Y-a.Y)/2),
			center: geom.Pt((a.X+b.X)/2, (a.Y+b.Y)/2),
		}
	}
}

// radial builds figures centered on a whose first vertex follows b.
func radial(shape func(cs state.CurrentStyle, r float64) figure.Shape) builder {
	return func(cs state.CurrentStyle, a, b geom.Point) placement {
		d := b.Sub(a)
		return placement{shape: shape(cs, d.Length()), center: a, rotation: d.Angle()}
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// circle keeps the box square: its side is the larger drag extent and it
// grows from a toward b.
func circle(_ state.CurrentStyle, a, b geom.Point) placement {
	d := b.Sub(a)
	r := math.Max(math.Abs(d.X), math.Abs(d.Y)) / 2
	return placement{
		shape:  figure.CircleShape{Radius: r},
		center: a.Add(geom.Pt(sign(d.X)*r, sign(d.Y)*r)),
	}
}

var builders = map[figure.Kind]builder{
	figure.Ellipse: boxed(func(_ state.CurrentStyle, hw, hh float64) figure.Shape {
		return figure.EllipseShape{RX: hw, RY: hh}
	}),
	figure.Rectangle: boxed(func(_ state.CurrentStyle, hw, hh float64) figure.Shape {
		return figure.RectShape{HalfWidth: hw, HalfHeight: hh}
	}),
	figure.RoundedRectangle: boxed(func(cs state.CurrentStyle, hw, hh float64) figure.Shape {
		return figure.RoundRectShape{HalfWidth: hw, HalfHeight: hh, Radius: cs.CornerRadius}
	}),
	figure.NGon: radial(func(cs state.CurrentStyle, r float64) figure.Shape {
		return figure.NGonShape{Sides: cs.NGonSides, Radius: r}
	}),
	figure.Star: radial(func(cs state.CurrentStyle, r float64) figure.Shape {
		return figure.StarShape{Points: cs.StarPoints, Outer: r, Inner: r * cs.StarRatio}
	}),
	figure.Circle: circle,
}

type createState int

const (
	idle createState = iota
	awaitSecondPoint
	awaitVertex
)

// DragCreator builds a figure from a press, a drag and a release. The
// working figure is added to the drawing on press so it shows while being
// shaped; history is recorded before that.
type DragCreator struct {
	env     *Env
	kind    figure.Kind
	build   builder
	state   createState
	anchor  geom.Point
	style   state.CurrentStyle
	working *figure.Figure
}

// NewDragCreator returns the creation controller of a kind drawn by
// dragging. Polygons use NewPolygonCreator.
func NewDragCreator(kind figure.Kind, env *Env) *DragCreator {
	b, ok := builders[kind]
	if !ok {
		panic(fmt.Sprintf("tool: %s is not drawn by dragging", kind))
	}
	return &DragCreator{env: env, kind: kind, build: b}
}

func (c *DragCreator) Active() bool { return c.state != idle }

func (c *DragCreator) Hint() string {
	if c.state == idle {
		return fmt.Sprintf("Press and drag to draw a %s", kindLabel(c.kind))
	}
	return fmt.Sprintf("Release to finish the %s", kindLabel(c.kind))
}

// Press anchors a new figure. The second press of a double click is
// ignored: its first press already went through Press and Release.
func (c *DragCreator) Press(e Event) {
	if c.state != idle || e.Button != ButtonPrimary || e.Clicks >= 2 {
		return
	}
	c.style = c.env.Drawing.Current()
	c.anchor = e.Pos
	pl := c.build(c.style, e.Pos, e.Pos)
	c.env.History.Record()
	c.working = figure.New(pl.shape, pl.center, c.style.Style)
	c.working.SetRotation(pl.rotation)
	c.env.Drawing.Add(c.working)
	c.state = awaitSecondPoint
}

func (c *DragCreator) Drag(e Event) {
	if c.state != awaitSecondPoint {
		return
	}
	c.shape(e.Pos)
	c.env.Drawing.Touch()
}

func (c *DragCreator) Move(Event) {}

func (c *DragCreator) Release(e Event) {
	if c.state != awaitSecondPoint {
		return
	}
	c.shape(e.Pos)
	f := c.working
	if err := f.Validate(); err != nil {
		c.abandon()
		c.env.logger().Debug("creation refused", "kind", c.kind, "error", err)
		c.env.status(fmt.Sprintf("Cannot create %s: %v", kindLabel(c.kind), err))
		return
	}
	c.working = nil
	c.state = idle
	c.env.Drawing.Touch()
	c.env.logger().Debug("figure created", "kind", c.kind, "center", f.Center())
}

func (c *DragCreator) shape(p geom.Point) {
	pl := c.build(c.style, c.anchor, p)
	// The kind of the working figure never changes.
	_ = c.working.Reshape(pl.shape)
	c.working.MoveTo(pl.center)
	c.working.SetRotation(pl.rotation)
}

func (c *DragCreator) Cancel() bool {
	if c.state == idle {
		return false
	}
	c.abandon()
	return true
}

// abandon removes the working figure and drops the record taken on press,
// leaving no trace in history.
func (c *DragCreator) abandon() {
	c.env.Drawing.Remove(c.working)
	_ = c.env.History.Discard()
	c.working = nil
	c.state = idle
}

func kindLabel(k figure.Kind) string {
	switch k {
	case figure.NGon:
		return "n-gon"
	case figure.RoundedRectangle:
		return "rounded rectangle"
	}
	return strings.ToLower(k.String())
}
