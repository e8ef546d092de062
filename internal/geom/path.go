package geom

import "math"

// PathElement is one drawing command of a Path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight segment to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath back to its first point.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of subpaths made of lines and cubic curves.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo adds a line from the current point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve from the current point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path commands. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no commands.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	elems := make([]PathElement, len(p.elements))
	copy(elems, p.elements)
	return &Path{elements: elems, start: p.start, current: p.current}
}

// Transform returns a new path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out.elements = append(out.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			out.elements = append(out.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case CubicTo:
			out.elements = append(out.elements, CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			})
		case Close:
			out.elements = append(out.elements, e)
		}
	}
	out.start = m.TransformPoint(p.start)
	out.current = m.TransformPoint(p.current)
	return out
}

// DefaultTolerance is the flattening tolerance used for hit-testing and
// bounding boxes, in world units.
const DefaultTolerance = 0.25

// Flatten converts the path to polylines, one per subpath. Curves are
// subdivided until the chord deviates less than tolerance from the curve.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	var (
		polys   [][]Point
		current []Point
		last    Point
	)
	flush := func() {
		if len(current) > 0 {
			polys = append(polys, current)
			current = nil
		}
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current = []Point{e.Point}
			last = e.Point
		case LineTo:
			if len(current) == 0 {
				current = []Point{last}
			}
			current = append(current, e.Point)
			last = e.Point
		case CubicTo:
			if len(current) == 0 {
				current = []Point{last}
			}
			current = flattenCubic(current, last, e.Control1, e.Control2, e.Point, tolerance)
			last = e.Point
		case Close:
			if len(current) > 0 {
				last = current[0]
			}
			flush()
		}
	}
	flush()
	return polys
}

func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	// Segment count from the second difference bound of the control polygon.
	dd := math.Max(
		p0.Sub(p1.Mul(2)).Add(p2).Length(),
		p1.Sub(p2.Mul(2)).Add(p3).Length(),
	)
	n := int(math.Ceil(math.Sqrt(0.75 * dd / tolerance)))
	if n < 1 {
		n = 1
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		dst = append(dst, Point{
			X: u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X,
			Y: u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y,
		})
	}
	return dst
}

// Contains reports whether pt lies inside the path using the even-odd rule.
// Every subpath is treated as closed.
func (p *Path) Contains(pt Point) bool {
	inside := false
	for _, poly := range p.Flatten(DefaultTolerance) {
		if crossings(poly, pt)%2 == 1 {
			inside = !inside
		}
	}
	return inside
}

// crossings counts the edges of the closed polyline crossed by a ray cast
// from pt towards +x.
func crossings(poly []Point, pt Point) int {
	n := len(poly)
	if n < 3 {
		return 0
	}
	count := 0
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if pt.X < x {
				count++
			}
		}
	}
	return count
}

// BoundingBox returns the axis-aligned box enclosing the flattened path.
// An empty path yields an empty Rect.
func (p *Path) BoundingBox() Rect {
	box := EmptyRect()
	for _, poly := range p.Flatten(DefaultTolerance) {
		for _, pt := range poly {
			box = box.Extend(pt)
		}
	}
	return box
}
