package figure

import (
	"math"

	"github.com/pkg/errors"

	"FigureEditor/internal/geom"
)

// Shape holds the kind-specific parameters of a figure, expressed in the
// figure's local frame (centered on the origin, before rotation and scale).
// The set of implementations is closed; the variants are the types below.
type Shape interface {
	Kind() Kind
	// Path returns the local outline.
	Path() *geom.Path
	validate() error
	clone() Shape
}

// CircleShape is a circle of the given radius.
type CircleShape struct {
	Radius float64
}

// EllipseShape is an axis-aligned ellipse with radii RX and RY.
type EllipseShape struct {
	RX, RY float64
}

// RectShape is a rectangle given by its half extents.
type RectShape struct {
	HalfWidth, HalfHeight float64
}

// RoundRectShape is a rectangle with rounded corners. Radius is clamped to
// the smaller half extent when the outline is built.
type RoundRectShape struct {
	HalfWidth, HalfHeight float64
	Radius                float64
}

// PolygonShape is an arbitrary closed polygon.
type PolygonShape struct {
	Vertices []geom.Point
}

// NGonShape is a regular polygon inscribed in a circle of the given radius.
type NGonShape struct {
	Sides  int
	Radius float64
}

// StarShape is a star with Points tips.
type StarShape struct {
	Points       int
	Outer, Inner float64
}

func (CircleShape) Kind() Kind    { return Circle }
func (EllipseShape) Kind() Kind   { return Ellipse }
func (RectShape) Kind() Kind      { return Rectangle }
func (RoundRectShape) Kind() Kind { return RoundedRectangle }
func (PolygonShape) Kind() Kind   { return Polygon }
func (NGonShape) Kind() Kind      { return NGon }
func (StarShape) Kind() Kind      { return Star }

func (s CircleShape) Path() *geom.Path {
	return geom.Ellipse(geom.Point{}, s.Radius, s.Radius)
}

func (s EllipseShape) Path() *geom.Path {
	return geom.Ellipse(geom.Point{}, s.RX, s.RY)
}

func (s RectShape) Path() *geom.Path {
	return geom.Rectangle(geom.Point{}, s.HalfWidth, s.HalfHeight)
}

func (s RoundRectShape) Path() *geom.Path {
	return geom.RoundRectangle(geom.Point{}, s.HalfWidth, s.HalfHeight, s.Radius)
}

func (s PolygonShape) Path() *geom.Path {
	return geom.Polygon(s.Vertices)
}

func (s NGonShape) Path() *geom.Path {
	return geom.RegularPolygon(s.Sides, s.Radius)
}

func (s StarShape) Path() *geom.Path {
	return geom.Star(s.Points, s.Outer, s.Inner)
}

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errors.Wrapf(ErrInvalidFigureParameters, "%s must be positive, got %g", name, v)
	}
	return nil
}

func (s CircleShape) validate() error {
	return positive("radius", s.Radius)
}

func (s EllipseShape) validate() error {
	if err := positive("x radius", s.RX); err != nil {
		return err
	}
	return positive("y radius", s.RY)
}

func (s RectShape) validate() error {
	if err := positive("half width", s.HalfWidth); err != nil {
		return err
	}
	return positive("half height", s.HalfHeight)
}

func (s RoundRectShape) validate() error {
	if err := positive("half width", s.HalfWidth); err != nil {
		return err
	}
	if err := positive("half height", s.HalfHeight); err != nil {
		return err
	}
	if math.IsNaN(s.Radius) || s.Radius < 0 {
		return errors.Wrapf(ErrInvalidFigureParameters, "corner radius must not be negative, got %g", s.Radius)
	}
	return nil
}

func (s PolygonShape) validate() error {
	distinct := 0
	for i, v := range s.Vertices {
		if !v.Finite() {
			return errors.Wrapf(ErrInvalidFigureParameters, "vertex %d is not finite", i)
		}
		if i == 0 || v.Distance(s.Vertices[i-1]) > 1e-9 {
			distinct++
		}
	}
	if distinct < 3 {
		return errors.Wrapf(ErrInvalidFigureParameters, "polygon needs at least 3 vertices, got %d", distinct)
	}
	return nil
}

func (s NGonShape) validate() error {
	if s.Sides < 3 {
		return errors.Wrapf(ErrInvalidFigureParameters, "ngon needs at least 3 sides, got %d", s.Sides)
	}
	return positive("radius", s.Radius)
}

func (s StarShape) validate() error {
	if s.Points < 3 {
		return errors.Wrapf(ErrInvalidFigureParameters, "star needs at least 3 points, got %d", s.Points)
	}
	if err := positive("inner radius", s.Inner); err != nil {
		return err
	}
	if err := positive("outer radius", s.Outer); err != nil {
		return err
	}
	if s.Inner >= s.Outer {
		return errors.Wrapf(ErrInvalidFigureParameters, "inner radius %g must be below outer radius %g", s.Inner, s.Outer)
	}
	return nil
}

func (s CircleShape) clone() Shape    { return s }
func (s EllipseShape) clone() Shape   { return s }
func (s RectShape) clone() Shape      { return s }
func (s RoundRectShape) clone() Shape { return s }
func (s NGonShape) clone() Shape      { return s }
func (s StarShape) clone() Shape      { return s }

func (s PolygonShape) clone() Shape {
	v := make([]geom.Point, len(s.Vertices))
	copy(v, s.Vertices)
	return PolygonShape{Vertices: v}
}
