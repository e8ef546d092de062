package tool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FigureEditor/internal/figure"
	"FigureEditor/internal/geom"
	"FigureEditor/internal/history"
	"FigureEditor/internal/state"
)

type fixture struct {
	env    *Env
	status []string
}

func newFixture() *fixture {
	fx := &fixture{}
	d := state.NewDrawing()
	fx.env = &Env{
		Drawing: d,
		History: history.New[*figure.Figure](d),
		Status:  func(s string) { fx.status = append(fx.status, s) },
	}
	return fx
}

func press(x, y float64) Event {
	return Event{Pos: geom.Pt(x, y), Button: ButtonPrimary, Clicks: 1}
}

func drag(c Controller, from, to geom.Point) {
	c.Press(Event{Pos: from, Button: ButtonPrimary, Clicks: 1})
	c.Drag(Event{Pos: to, Button: ButtonPrimary})
	c.Release(Event{Pos: to, Button: ButtonPrimary})
}

func TestCreateRectangleAndUndo(t *testing.T) {
	fx := newFixture()
	d := fx.env.Drawing
	require.NoError(t, d.SetCurrentStyle(state.CurrentStyle{
		Kind: figure.Rectangle,
		Style: figure.Style{
			Fill:      figure.MustPaint("Red"),
			Edge:      figure.MustPaint("Black"),
			LineType:  figure.LineSolid,
			LineWidth: 2,
		},
		NGonSides:    6,
		StarPoints:   5,
		StarRatio:    0.5,
		CornerRadius: 10,
	}))

	c := ForKind(d.Current().Kind, fx.env)
	c.Press(press(10, 10))
	assert.True(t, c.Active())
	assert.Equal(t, 1, d.Len(), "the working figure shows while dragging")
	c.Drag(Event{Pos: geom.Pt(50, 40), Button: ButtonPrimary})
	c.Release(Event{Pos: geom.Pt(50, 40), Button: ButtonPrimary})
	assert.False(t, c.Active())

	require.Equal(t, 1, d.Len())
	f := d.At(0)
	assert.Equal(t, figure.RectShape{HalfWidth: 20, HalfHeight: 15}, f.Shape())
	assert.Equal(t, geom.Pt(30, 25), f.Center())
	assert.Equal(t, figure.MustPaint("Red"), f.Fill())
	assert.Equal(t, 2, f.LineWidth())

	require.NoError(t, fx.env.History.Undo())
	assert.Zero(t, d.Len())
}

func TestCreateReversedDrag(t *testing.T) {
	fx := newFixture()
	drag(NewDragCreator(figure.Ellipse, fx.env), geom.Pt(50, 40), geom.Pt(10, 10))
	f := fx.env.Drawing.At(0)
	assert.Equal(t, figure.EllipseShape{RX: 20, RY: 15}, f.Shape())
	assert.Equal(t, geom.Pt(30, 25), f.Center())
}

func TestCreateCircleIsSquare(t *testing.T) {
	fx := newFixture()
	drag(NewDragCreator(figure.Circle, fx.env), geom.Pt(10, 10), geom.Pt(-30, 20))
	f := fx.env.Drawing.At(0)
	assert.Equal(t, figure.CircleShape{Radius: 20}, f.Shape())
	assert.Equal(t, geom.Pt(-10, 30), f.Center())
}

func TestCreateRoundedRectangleUsesCornerRadius(t *testing.T) {
	fx := newFixture()
	require.NoError(t, fx.env.Drawing.SetCornerRadius(4))
	drag(NewDragCreator(figure.RoundedRectangle, fx.env), geom.Pt(0, 0), geom.Pt(40, 20))
	assert.Equal(t, figure.RoundRectShape{HalfWidth: 20, HalfHeight: 10, Radius: 4}, fx.env.Drawing.At(0).Shape())
}

func TestCreateRadialKinds(t *testing.T) {
	fx := newFixture()
	d := fx.env.Drawing
	require.NoError(t, d.SetNGonSides(8))
	drag(NewDragCreator(figure.NGon, fx.env), geom.Pt(100, 100), geom.Pt(100, 130))
	ngon := d.At(0)
	assert.Equal(t, figure.NGonShape{Sides: 8, Radius: 30}, ngon.Shape())
	assert.Equal(t, geom.Pt(100, 100), ngon.Center())
	assert.InDelta(t, math.Pi/2, ngon.Rotation(), 1e-9)

	drag(NewDragCreator(figure.Star, fx.env), geom.Pt(0, 0), geom.Pt(40, 0))
	star := d.At(1)
	assert.Equal(t, figure.StarShape{Points: 5, Outer: 40, Inner: 20}, star.Shape())
	assert.Zero(t, star.Rotation())
}

func TestCreateDegenerateRefused(t *testing.T) {
	fx := newFixture()
	c := NewDragCreator(figure.Rectangle, fx.env)
	drag(c, geom.Pt(10, 10), geom.Pt(10, 40))

	assert.Zero(t, fx.env.Drawing.Len())
	assert.False(t, fx.env.History.CanUndo(), "a refused figure leaves no history")
	require.Len(t, fx.status, 1)
	assert.Contains(t, fx.status[0], "Cannot create rectangle")
	assert.False(t, c.Active())
}

func TestCreateCancel(t *testing.T) {
	fx := newFixture()
	c := NewDragCreator(figure.Star, fx.env)
	assert.False(t, c.Cancel())
	c.Press(press(0, 0))
	c.Drag(Event{Pos: geom.Pt(30, 30), Button: ButtonPrimary})
	assert.True(t, c.Cancel())
	assert.Zero(t, fx.env.Drawing.Len())
	assert.False(t, fx.env.History.CanUndo())

	// A release after a cancel does nothing.
	c.Release(Event{Pos: geom.Pt(30, 30), Button: ButtonPrimary})
	assert.Zero(t, fx.env.Drawing.Len())
}

func TestCreateIgnoresDoubleClick(t *testing.T) {
	fx := newFixture()
	c := NewDragCreator(figure.Rectangle, fx.env)
	c.Press(Event{Pos: geom.Pt(5, 5), Button: ButtonPrimary, Clicks: 2})
	assert.False(t, c.Active())
	assert.Zero(t, fx.env.Drawing.Len())
	assert.False(t, fx.env.History.CanUndo())
}

func TestCreateIgnoresSecondaryButton(t *testing.T) {
	fx := newFixture()
	c := NewDragCreator(figure.Ellipse, fx.env)
	c.Press(Event{Pos: geom.Pt(1, 1), Button: ButtonSecondary})
	assert.False(t, c.Active())
	assert.Zero(t, fx.env.Drawing.Len())
}

func TestPolygonCloseOnFirstVertex(t *testing.T) {
	fx := newFixture()
	c := NewPolygonCreator(fx.env)
	assert.Equal(t, "Click to set first vertex", c.Hint())

	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 30}} {
		c.Press(press(p.X, p.Y))
		c.Release(press(p.X, p.Y))
	}
	c.Move(Event{Pos: geom.Pt(0, 30)})
	require.True(t, c.Active())
	assert.Equal(t, 1, fx.env.Drawing.Len())

	c.Press(press(3, 2))
	assert.False(t, c.Active())

	f := fx.env.Drawing.At(0)
	assert.Equal(t, geom.Pt(20, 10), f.Center())
	assert.Equal(t, []geom.Point{{X: -20, Y: -10}, {X: 10, Y: -10}, {X: 10, Y: 20}},
		f.Shape().(figure.PolygonShape).Vertices)
	assert.True(t, f.Contains(geom.Pt(25, 5)))
	assert.True(t, fx.env.History.CanUndo())
}

func TestPolygonDoubleClick(t *testing.T) {
	fx := newFixture()
	c := NewPolygonCreator(fx.env)
	c.Press(press(0, 0))
	c.Press(press(40, 0))
	c.Press(press(40, 40))
	c.Press(press(0, 40))
	c.Press(Event{Pos: geom.Pt(0, 40), Button: ButtonPrimary, Clicks: 2})

	require.False(t, c.Active())
	f := fx.env.Drawing.At(0)
	assert.Len(t, f.Shape().(figure.PolygonShape).Vertices, 4, "the double click adds no vertex")
	assert.Equal(t, geom.Pt(20, 20), f.Center())
}

func TestPolygonTooFewVertices(t *testing.T) {
	fx := newFixture()
	c := NewPolygonCreator(fx.env)
	c.Press(press(0, 0))
	c.Press(press(10, 0))
	c.Press(Event{Pos: geom.Pt(10, 0), Button: ButtonPrimary, Clicks: 2})

	assert.False(t, c.Active())
	assert.Zero(t, fx.env.Drawing.Len())
	assert.False(t, fx.env.History.CanUndo())
	require.NotEmpty(t, fx.status)
	assert.Contains(t, fx.status[0], "Cannot create polygon")
}

func TestPolygonEscape(t *testing.T) {
	fx := newFixture()
	c := NewPolygonCreator(fx.env)
	c.Press(press(0, 0))
	c.Press(press(10, 0))
	assert.True(t, c.Cancel())
	assert.Zero(t, fx.env.Drawing.Len())
	assert.False(t, fx.env.History.CanUndo())
}

func TestForKind(t *testing.T) {
	env := newFixture().env
	for _, k := range figure.Kinds {
		c := ForKind(k, env)
		if k == figure.Polygon {
			assert.IsType(t, &PolygonCreator{}, c)
		} else {
			assert.IsType(t, &DragCreator{}, c)
		}
	}
}
