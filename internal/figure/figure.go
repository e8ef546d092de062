// Package figure implements the figures of a drawing: a closed family of
// shape kinds sharing one affine transform, a fill and edge paint, an edge
// line type and width, and a selection flag.
package figure

import (
	"math"
	"reflect"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"FigureEditor/internal/geom"
)

// Figure is a single styled shape placed in world coordinates.
//
// The world transform is Translate(center) * Rotate(rotation) *
// Scale(scaleX, scaleY) applied to the local outline of the shape.
type Figure struct {
	id       uuid.UUID
	shape    Shape
	center   geom.Point
	rotation float64
	scaleX   float64
	scaleY   float64
	style    Style
	selected bool
}

// New returns an unselected figure with an identity rotation and scale.
// The shape is not validated: working figures under construction may be
// degenerate until they are committed.
func New(shape Shape, center geom.Point, style Style) *Figure {
	return &Figure{
		id:     uuid.New(),
		shape:  shape.clone(),
		center: center,
		scaleX: 1,
		scaleY: 1,
		style:  style.Normalized(),
	}
}

// ID identifies the figure; clones keep the ID of their original.
func (f *Figure) ID() uuid.UUID { return f.id }

// Kind returns the shape kind, fixed at construction.
func (f *Figure) Kind() Kind { return f.shape.Kind() }

// Shape returns a copy of the kind-specific parameters.
func (f *Figure) Shape() Shape { return f.shape.clone() }

// Reshape replaces the kind-specific parameters. The kind cannot change.
func (f *Figure) Reshape(s Shape) error {
	if s == nil || s.Kind() != f.Kind() {
		return errors.Wrapf(ErrInvalidFigureParameters, "cannot reshape a %s", f.Kind())
	}
	f.shape = s.clone()
	return nil
}

func (f *Figure) Center() geom.Point { return f.center }

// MoveTo places the figure center at c.
func (f *Figure) MoveTo(c geom.Point) { f.center = c }

func (f *Figure) Rotation() float64 { return f.rotation }

// SetRotation sets the absolute rotation in radians.
func (f *Figure) SetRotation(angle float64) { f.rotation = angle }

// Scale returns the local scale factors.
func (f *Figure) Scale() (sx, sy float64) { return f.scaleX, f.scaleY }

func (f *Figure) Style() Style       { return f.style }
func (f *Figure) Fill() Paint        { return f.style.Fill }
func (f *Figure) Edge() Paint        { return f.style.Edge }
func (f *Figure) LineType() LineType { return f.style.LineType }
func (f *Figure) LineWidth() int     { return f.style.LineWidth }

func (f *Figure) Selected() bool       { return f.selected }
func (f *Figure) SetSelected(sel bool) { f.selected = sel }

// HasFill reports whether the figure paints its interior.
func (f *Figure) HasFill() bool {
	return !f.style.Fill.IsNone()
}

// HasStroke reports whether the figure paints its edge.
func (f *Figure) HasStroke() bool {
	return f.style.LineType != LineNone && !f.style.Edge.IsNone()
}

// Visible reports whether the figure paints anything. Invisible figures are
// kept in the drawing but are never hit.
func (f *Figure) Visible() bool {
	return f.HasFill() || f.HasStroke()
}

// Transform returns the local-to-world matrix.
func (f *Figure) Transform() geom.Matrix {
	return geom.Translate(f.center.X, f.center.Y).
		Multiply(geom.Rotate(f.rotation)).
		Multiply(geom.Scale(f.scaleX, f.scaleY))
}

// Outline returns the outline in world coordinates.
func (f *Figure) Outline() *geom.Path {
	return f.shape.Path().Transform(f.Transform())
}

// Contains reports whether p lies in the interior of the outline, using the
// even-odd rule, whether or not the figure is filled.
func (f *Figure) Contains(p geom.Point) bool {
	return f.Outline().Contains(p)
}

// BoundingBox returns the axis-aligned box enclosing the world outline.
func (f *Figure) BoundingBox() geom.Rect {
	return f.Outline().BoundingBox()
}

// ApplyStyle sets fill, edge, line type and line width at once.
func (f *Figure) ApplyStyle(s Style) {
	f.style = s.Normalized()
}

// Translate moves the figure by (dx, dy).
func (f *Figure) Translate(dx, dy float64) {
	f.center = f.center.Add(geom.Pt(dx, dy))
}

// RotateBy turns the figure around its own center.
func (f *Figure) RotateBy(angle float64) {
	f.rotation += angle
}

// RotateAbout turns the figure by angle around pivot: the center orbits the
// pivot and the figure's own rotation grows by the same angle.
func (f *Figure) RotateAbout(angle float64, pivot geom.Point) {
	f.center = pivot.Add(f.center.Sub(pivot).Rotate(angle))
	f.rotation += angle
}

func checkFactor(v float64) error {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidTransform, "scale factor %g", v)
	}
	return nil
}

// ScaleBy multiplies the local scale factors, keeping the center in place.
func (f *Figure) ScaleBy(sx, sy float64) error {
	return f.ScaleAbout(sx, sy, f.center)
}

// ScaleAbout scales the figure by (sx, sy) with pivot as the fixed point.
// The factors compose in the figure's local frame, so a rotated figure is
// stretched along its own axes.
func (f *Figure) ScaleAbout(sx, sy float64, pivot geom.Point) error {
	if err := checkFactor(sx); err != nil {
		return err
	}
	if err := checkFactor(sy); err != nil {
		return err
	}
	d := f.center.Sub(pivot)
	f.center = pivot.Add(geom.Pt(d.X*sx, d.Y*sy))
	f.scaleX *= sx
	f.scaleY *= sy
	return nil
}

// Validate checks the kind-specific parameters and the transform.
func (f *Figure) Validate() error {
	if err := f.shape.validate(); err != nil {
		return errors.Wrapf(err, "%s", f.Kind())
	}
	if err := checkFactor(f.scaleX); err != nil {
		return err
	}
	return checkFactor(f.scaleY)
}

// Clone returns a deep copy that shares no state with f.
func (f *Figure) Clone() *Figure {
	c := *f
	c.shape = f.shape.clone()
	return &c
}

// Equal reports whether g has the same identity, shape, transform and style
// as f. Selection is transient and not compared.
func (f *Figure) Equal(g *Figure) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.id == g.id &&
		f.center == g.center &&
		f.rotation == g.rotation &&
		f.scaleX == g.scaleX &&
		f.scaleY == g.scaleY &&
		f.style == g.style &&
		reflect.DeepEqual(f.shape, g.shape)
}

// Info is the summary shown for the figure under the pointer.
type Info struct {
	Kind      Kind
	Fill      Paint
	Edge      Paint
	LineType  LineType
	LineWidth int
	Center    geom.Point
}

// Info returns the figure summary.
func (f *Figure) Info() Info {
	return Info{
		Kind:      f.Kind(),
		Fill:      f.style.Fill,
		Edge:      f.style.Edge,
		LineType:  f.style.LineType,
		LineWidth: f.style.LineWidth,
		Center:    f.center,
	}
}
