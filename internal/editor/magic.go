package editor

import (
	"math"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/geom"
)

// magicShapes has one shape of each kind, in figure.Kinds order.
var magicShapes = []figure.Shape{
	figure.CircleShape{Radius: 35},
	figure.EllipseShape{RX: 50, RY: 30},
	figure.RectShape{HalfWidth: 45, HalfHeight: 30},
	figure.RoundRectShape{HalfWidth: 45, HalfHeight: 30, Radius: 12},
	figure.PolygonShape{Vertices: []geom.Point{{X: -40, Y: 30}, {X: 0, Y: -35}, {X: 40, Y: 30}, {X: 0, Y: 10}}},
	figure.NGonShape{Sides: 6, Radius: 38},
	figure.StarShape{Points: 5, Outer: 40, Inner: 18},
}

// magicDraw appends one figure of each kind on a four-column grid, each
// with its own fill, edge, line type and width.
func (e *Editor) magicDraw() {
	fills := figure.FillPaintNames
	edges := figure.EdgePaintNames
	figs := make([]*figure.Figure, 0, len(magicShapes))
	for i, shape := range magicShapes {
		center := geom.Pt(float64(80+(i%4)*140), float64(80+(i/4)*140))
		f := figure.New(shape, center, figure.Style{
			Fill:      magicPaint(fills, i+2),
			Edge:      magicPaint(edges, i),
			LineType:  []figure.LineType{figure.LineSolid, figure.LineDashed}[i%2],
			LineWidth: 1 + 2*i,
		})
		f.SetRotation(float64(i) * math.Pi / 12)
		figs = append(figs, f)
	}
	e.drawing.AddAll(figs...)
	e.log.Debug("magic draw", "figures", len(magicShapes))
}

// magicPaint picks the i-th palette paint of names, skipping Others.
func magicPaint(names []string, i int) figure.Paint {
	for {
		name := names[i%len(names)]
		if p, ok := figure.LookupPaint(name); ok {
			return p
		}
		i++
	}
}
