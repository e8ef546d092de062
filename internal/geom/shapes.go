package geom

import "math"

// kappa is the control point distance for a quarter-circle cubic.
const kappa = 0.5522847498

// Ellipse returns an ellipse centered on c with radii rx, ry.
func Ellipse(c Point, rx, ry float64) *Path {
	kx, ky := kappa*rx, kappa*ry
	p := NewPath()
	p.MoveTo(c.X+rx, c.Y)
	p.CubicTo(c.X+rx, c.Y+ky, c.X+kx, c.Y+ry, c.X, c.Y+ry)
	p.CubicTo(c.X-kx, c.Y+ry, c.X-rx, c.Y+ky, c.X-rx, c.Y)
	p.CubicTo(c.X-rx, c.Y-ky, c.X-kx, c.Y-ry, c.X, c.Y-ry)
	p.CubicTo(c.X+kx, c.Y-ry, c.X+rx, c.Y-ky, c.X+rx, c.Y)
	p.Close()
	return p
}

// Rectangle returns the rectangle centered on c with half extents hw, hh.
func Rectangle(c Point, hw, hh float64) *Path {
	p := NewPath()
	p.MoveTo(c.X-hw, c.Y-hh)
	p.LineTo(c.X+hw, c.Y-hh)
	p.LineTo(c.X+hw, c.Y+hh)
	p.LineTo(c.X-hw, c.Y+hh)
	p.Close()
	return p
}

// RoundRectangle returns a rectangle with rounded corners. The radius is
// clamped to half the smaller side.
func RoundRectangle(c Point, hw, hh, r float64) *Path {
	hw, hh = math.Abs(hw), math.Abs(hh)
	r = math.Max(0, math.Min(r, math.Min(hw, hh)))
	if r == 0 {
		return Rectangle(c, hw, hh)
	}
	x0, y0 := c.X-hw, c.Y-hh
	x1, y1 := c.X+hw, c.Y+hh
	k := kappa * r

	p := NewPath()
	p.MoveTo(x0+r, y0)
	p.LineTo(x1-r, y0)
	p.CubicTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	p.LineTo(x1, y1-r)
	p.CubicTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	p.LineTo(x0+r, y1)
	p.CubicTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	p.LineTo(x0, y0+r)
	p.CubicTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	p.Close()
	return p
}

// Polygon returns the closed polygon through vertices.
func Polygon(vertices []Point) *Path {
	p := NewPath()
	for i, v := range vertices {
		if i == 0 {
			p.MoveTo(v.X, v.Y)
		} else {
			p.LineTo(v.X, v.Y)
		}
	}
	if len(vertices) > 0 {
		p.Close()
	}
	return p
}

// RegularPolygonVertices returns the vertices of a regular polygon centered
// on the origin, the first vertex lying on the +x axis.
func RegularPolygonVertices(sides int, radius float64) []Point {
	if sides < 3 {
		return nil
	}
	step := 2 * math.Pi / float64(sides)
	pts := make([]Point, sides)
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * step)
		pts[i] = Point{X: radius * cos, Y: radius * sin}
	}
	return pts
}

// RegularPolygon returns a regular polygon centered on the origin.
func RegularPolygon(sides int, radius float64) *Path {
	return Polygon(RegularPolygonVertices(sides, radius))
}

// StarVertices returns the alternating outer and inner vertices of a star
// centered on the origin. Outer vertex k lies at angle 2πk/points and the
// inner vertex that follows it at the halfway angle.
func StarVertices(points int, outer, inner float64) []Point {
	if points < 3 {
		return nil
	}
	step := math.Pi / float64(points)
	pts := make([]Point, 2*points)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		sin, cos := math.Sincos(float64(i) * step)
		pts[i] = Point{X: r * cos, Y: r * sin}
	}
	return pts
}

// Star returns a star centered on the origin.
func Star(points int, outer, inner float64) *Path {
	return Polygon(StarVertices(points, outer, inner))
}
